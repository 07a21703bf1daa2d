package gomap

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/yamlkit/yamldoc/ir"
)

// ToIR converts a Go value to an ir.Node tree using reflection. Struct
// fields appear in declaration order under their yaml tag name (or the
// field name when untagged); map entries are sorted by key for determinism.
//
// The intended use is documenting a default-valued configuration object:
// convert the default instance with ToIR, its doc tags with DescribeIR,
// and hand both trees to docgen.Document.
func ToIR(v any) (*ir.Node, error) {
	if v == nil {
		return ir.Null(), nil
	}
	w := &walker{visiting: map[uintptr]bool{}}
	return w.value(reflect.ValueOf(v), "")
}

type walker struct {
	visiting map[uintptr]bool
}

func (w *walker) value(val reflect.Value, fieldPath string) (*ir.Node, error) {
	if !val.IsValid() {
		return ir.Null(), nil
	}

	typ := val.Type()
	kind := typ.Kind()

	if kind == reflect.Ptr {
		if val.IsNil() {
			return ir.Null(), nil
		}
		ptr := val.Pointer()
		if w.visiting[ptr] {
			return nil, &MarshalError{
				FieldPath: fieldPath,
				Message:   "circular reference",
			}
		}
		w.visiting[ptr] = true
		defer delete(w.visiting, ptr)
		return w.value(val.Elem(), fieldPath)
	}

	switch kind {
	case reflect.String:
		return ir.FromString(val.String()), nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return ir.FromInt(val.Int()), nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return ir.FromInt(int64(val.Uint())), nil

	case reflect.Float32, reflect.Float64:
		return ir.FromFloat(val.Float()), nil

	case reflect.Bool:
		return ir.FromBool(val.Bool()), nil

	case reflect.Slice, reflect.Array:
		return w.slice(val, fieldPath)

	case reflect.Map:
		return w.irMap(val, fieldPath)

	case reflect.Struct:
		return w.irStruct(val, fieldPath)

	case reflect.Interface:
		if val.IsNil() {
			return ir.Null(), nil
		}
		return w.value(val.Elem(), fieldPath)

	default:
		return nil, &MarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("unsupported type: %s", typ),
		}
	}
}

func (w *walker) slice(val reflect.Value, fieldPath string) (*ir.Node, error) {
	length := val.Len()
	elements := make([]*ir.Node, 0, length)
	for i := 0; i < length; i++ {
		elemNode, err := w.value(val.Index(i), fmt.Sprintf("%s[%d]", fieldPath, i))
		if err != nil {
			return nil, err
		}
		elements = append(elements, elemNode)
	}
	return ir.FromSlice(elements), nil
}

func (w *walker) irMap(val reflect.Value, fieldPath string) (*ir.Node, error) {
	if val.IsNil() {
		return ir.Null(), nil
	}
	if val.Type().Key().Kind() != reflect.String {
		return nil, &MarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("map keys must be strings, got %s", val.Type().Key()),
		}
	}
	irMap := make(map[string]*ir.Node, val.Len())
	iter := val.MapRange()
	for iter.Next() {
		key := iter.Key().String()
		valueNode, err := w.value(iter.Value(), joinPath(fieldPath, key))
		if err != nil {
			return nil, err
		}
		irMap[key] = valueNode
	}
	return ir.FromMap(irMap), nil
}

// irStruct converts a struct to a mapping node with fields in declaration
// order. Embedded structs are flattened into the parent mapping.
func (w *walker) irStruct(val reflect.Value, fieldPath string) (*ir.Node, error) {
	typ := val.Type()
	kvs := []ir.KeyVal{}
	seen := map[string]bool{}

	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		fieldVal := val.Field(i)

		if field.Anonymous {
			embedded := fieldVal
			if embedded.Kind() == reflect.Ptr {
				if embedded.IsNil() {
					continue
				}
				embedded = embedded.Elem()
			}
			if embedded.Kind() != reflect.Struct {
				continue
			}
			embeddedNode, err := w.irStruct(embedded, fieldPath)
			if err != nil {
				return nil, err
			}
			for j, keyNode := range embeddedNode.Fields {
				name := keyNode.String
				if seen[name] {
					return nil, &MarshalError{
						FieldPath: fieldPath,
						Message:   fmt.Sprintf("field name conflict: embedded struct field %q conflicts with existing field", name),
					}
				}
				seen[name] = true
				kvs = append(kvs, ir.KeyVal{Key: keyNode, Val: embeddedNode.Values[j]})
			}
			continue
		}

		name := fieldName(field)
		if name == "" {
			continue
		}
		fieldNode, err := w.value(fieldVal, joinPath(fieldPath, name))
		if err != nil {
			return nil, err
		}
		if seen[name] {
			return nil, &MarshalError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("duplicate field name %q", name),
			}
		}
		seen[name] = true
		kvs = append(kvs, ir.KeyVal{Key: ir.FromString(name), Val: fieldNode})
	}
	return ir.FromKeyVals(kvs), nil
}

// fieldName returns the mapping key for a struct field: the first element
// of its yaml tag, or the field name when untagged. A "-" tag skips the
// field (empty return).
func fieldName(field reflect.StructField) string {
	tag, ok := field.Tag.Lookup("yaml")
	if !ok {
		return field.Name
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}

func joinPath(fieldPath, name string) string {
	if fieldPath == "" {
		return name
	}
	return fieldPath + "." + name
}
