package gomap

import (
	"reflect"

	"github.com/yamlkit/yamldoc/debug"
	"github.com/yamlkit/yamldoc/ir"
)

// DescriptionKey mirrors docgen.DescriptionKey; duplicated here to keep
// gomap independent of the renderer.
const DescriptionKey = "__description__"

// Describer provides the description text for a struct type itself,
// rendered as the __description__ entry of its description mapping.
type Describer interface {
	Describe() string
}

// DescribeIR builds a description tree for v's type from doc struct tags.
// For each exported struct field, the doc:"..." tag supplies the comment
// text; nested structs become description mappings whose __description__
// entry comes from the field's doc tag (or the nested type's Describe
// method). Fields without any description beneath them are omitted.
//
// The result mirrors the shape ToIR produces for v and is nil-safe to pass
// to docgen.Document: a value with no doc tags anywhere yields a null node,
// which suppresses all comments.
func DescribeIR(v any) (*ir.Node, error) {
	if v == nil {
		return ir.Null(), nil
	}
	d := &typeWalker{visiting: map[reflect.Type]bool{}}
	node, err := d.describe(reflect.TypeOf(v))
	if err != nil {
		return nil, err
	}
	if node == nil {
		node = ir.Null()
	}
	if debug.Gomap() {
		debug.Logf("description tree for %T:\n%v\n", v, node)
	}
	return node, nil
}

type typeWalker struct {
	visiting map[reflect.Type]bool
}

// describe returns the description node for a type, or nil when nothing
// under it carries a description.
func (d *typeWalker) describe(t reflect.Type) (*ir.Node, error) {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, nil
	}
	if d.visiting[t] {
		return nil, nil
	}
	d.visiting[t] = true
	defer delete(d.visiting, t)

	kvs := []ir.KeyVal{}
	if text := describerText(t); text != "" {
		kvs = append(kvs, ir.KeyVal{
			Key: ir.FromString(DescriptionKey),
			Val: ir.FromString(text),
		})
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		if field.Anonymous {
			embedded, err := d.describe(field.Type)
			if err != nil {
				return nil, err
			}
			if embedded == nil {
				continue
			}
			for j, keyNode := range embedded.Fields {
				// the parent's own __description__ wins over an
				// embedded type's
				if keyNode.String == DescriptionKey {
					continue
				}
				kvs = append(kvs, ir.KeyVal{Key: keyNode, Val: embedded.Values[j]})
			}
			continue
		}

		name := fieldName(field)
		if name == "" {
			continue
		}
		text := field.Tag.Get("doc")
		nested, err := d.describe(field.Type)
		if err != nil {
			return nil, err
		}
		entry := fieldDescription(text, nested)
		if entry == nil {
			continue
		}
		kvs = append(kvs, ir.KeyVal{Key: ir.FromString(name), Val: entry})
	}

	if len(kvs) == 0 {
		return nil, nil
	}
	return ir.FromKeyVals(kvs), nil
}

// fieldDescription combines a field's own doc text with the description
// mapping of its type. A doc tag on the field overrides the nested type's
// __description__ entry.
func fieldDescription(text string, nested *ir.Node) *ir.Node {
	if nested == nil {
		if text == "" {
			return nil
		}
		return ir.FromString(text)
	}
	if text == "" {
		return nested
	}
	kvs := []ir.KeyVal{{
		Key: ir.FromString(DescriptionKey),
		Val: ir.FromString(text),
	}}
	for i, keyNode := range nested.Fields {
		if keyNode.String == DescriptionKey {
			continue
		}
		kvs = append(kvs, ir.KeyVal{Key: keyNode, Val: nested.Values[i]})
	}
	return ir.FromKeyVals(kvs)
}

var describerType = reflect.TypeOf((*Describer)(nil)).Elem()

func describerText(t reflect.Type) string {
	if reflect.PtrTo(t).Implements(describerType) {
		return reflect.New(t).Interface().(Describer).Describe()
	}
	return ""
}
