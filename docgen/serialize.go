package docgen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/yamlkit/yamldoc/ir"
)

// serializeLeaf renders a leaf node (null, bool, number, string, tagged)
// in its canonical YAML text form, trailing newline included. The caller's
// key or dash prefix has already positioned the cursor, so no indentation
// is added here.
func serializeLeaf(node *ir.Node) (string, error) {
	switch node.Type {
	case ir.NullType:
		return "null\n", nil
	case ir.BoolType:
		return strconv.FormatBool(node.Bool) + "\n", nil
	case ir.NumberType:
		v, err := numberText(node)
		if err != nil {
			return "", err
		}
		return v + "\n", nil
	case ir.StringType:
		d, err := yaml.Marshal(node.String)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrSerialize, err)
		}
		return string(d), nil
	case ir.TaggedType:
		return serializeTagged(node)
	default:
		return "", fmt.Errorf("%w: %s is not a leaf", ErrSerialize, node.Type)
	}
}

func numberText(node *ir.Node) (string, error) {
	switch {
	case node.Int64 != nil:
		return strconv.FormatInt(*node.Int64, 10), nil
	case node.Float64 != nil:
		v := strconv.FormatFloat(*node.Float64, 'f', -1, 64)
		// whole floats keep a decimal point so they round-trip as floats
		if !strings.Contains(v, ".") {
			v += ".0"
		}
		return v, nil
	case node.Number != "":
		if _, err := strconv.ParseFloat(node.Number, 64); err != nil {
			return "", fmt.Errorf("%w: malformed number literal %q", ErrSerialize, node.Number)
		}
		return node.Number, nil
	default:
		return "", fmt.Errorf("%w: number node without a value", ErrSerialize)
	}
}

// serializeTagged renders a tagged node as its "!name" label followed by
// the inner value: on the same line for a scalar inner, on following lines
// for a composite one.
func serializeTagged(node *ir.Node) (string, error) {
	inner := node.Inner()
	if inner == nil {
		return "", fmt.Errorf("%w: tagged node %q without inner value", ErrSerialize, node.Tag)
	}
	if inner.Type.IsLeaf() {
		s, err := serializeLeaf(inner)
		if err != nil {
			return "", err
		}
		return node.Tag + " " + s, nil
	}
	v, err := nodeToAny(inner)
	if err != nil {
		return "", err
	}
	d, err := yaml.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSerialize, err)
	}
	return node.Tag + "\n" + string(d), nil
}

// nodeToAny converts a node to the plain Go value yaml.Marshal expects,
// using yaml.MapSlice for mappings so entry order survives.
func nodeToAny(node *ir.Node) (any, error) {
	switch node.Type {
	case ir.NullType:
		return nil, nil
	case ir.BoolType:
		return node.Bool, nil
	case ir.NumberType:
		switch {
		case node.Int64 != nil:
			return *node.Int64, nil
		case node.Float64 != nil:
			return *node.Float64, nil
		default:
			f, err := strconv.ParseFloat(node.Number, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: malformed number literal %q", ErrSerialize, node.Number)
			}
			return f, nil
		}
	case ir.StringType:
		return node.String, nil
	case ir.TaggedType:
		s, err := serializeTagged(node)
		if err != nil {
			return nil, err
		}
		return strings.TrimSuffix(s, "\n"), nil
	case ir.ListType:
		res := make([]any, len(node.Values))
		for i, v := range node.Values {
			av, err := nodeToAny(v)
			if err != nil {
				return nil, err
			}
			res[i] = av
		}
		return res, nil
	case ir.MappingType:
		res := make(yaml.MapSlice, len(node.Fields))
		for i, f := range node.Fields {
			av, err := nodeToAny(node.Values[i])
			if err != nil {
				return nil, err
			}
			res[i] = yaml.MapItem{Key: ir.KeyText(f), Value: av}
		}
		return res, nil
	}
	return nil, fmt.Errorf("%w: unsupported node type %s", ErrSerialize, node.Type)
}
