package parse

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"

	"github.com/yamlkit/yamldoc/debug"
	"github.com/yamlkit/yamldoc/ir"
)

var ErrParse = errors.New("parse error")

// Parse reads a single YAML document into an ir.Node tree. Mapping entry
// order and custom "!name" tags are preserved; anchors and aliases are
// resolved by substitution. Multi-document streams are rejected.
func Parse(data []byte) (*ir.Node, error) {
	f, err := parser.ParseBytes(data, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	switch len(f.Docs) {
	case 0:
		return ir.Null(), nil
	case 1:
	default:
		return nil, fmt.Errorf("%w: expected a single document, got %d", ErrParse, len(f.Docs))
	}
	body := f.Docs[0].Body
	if body == nil {
		return ir.Null(), nil
	}
	c := &converter{anchors: map[string]*ir.Node{}}
	node, err := c.node(body)
	if err != nil {
		return nil, err
	}
	if debug.Parse() {
		debug.Logf("parsed document:\n%v\n", node)
	}
	return node, nil
}

type converter struct {
	anchors map[string]*ir.Node
}

func (c *converter) node(n ast.Node) (*ir.Node, error) {
	switch x := n.(type) {
	case *ast.MappingNode:
		return c.mapping(x.Values)
	case *ast.MappingValueNode:
		// a single-pair document parses as a bare mapping value
		return c.mapping([]*ast.MappingValueNode{x})
	case *ast.SequenceNode:
		return c.sequence(x)
	case *ast.StringNode:
		return ir.FromString(x.Value), nil
	case *ast.LiteralNode:
		return ir.FromString(x.Value.Value), nil
	case *ast.IntegerNode:
		return integerNode(x)
	case *ast.FloatNode:
		return ir.FromFloat(x.Value), nil
	case *ast.BoolNode:
		return ir.FromBool(x.Value), nil
	case *ast.NullNode:
		return ir.Null(), nil
	case *ast.InfinityNode:
		return ir.FromFloat(x.Value), nil
	case *ast.NanNode:
		return ir.FromFloat(math.NaN()), nil
	case *ast.MergeKeyNode:
		return ir.FromString("<<"), nil
	case *ast.TagNode:
		return c.tagged(x)
	case *ast.AnchorNode:
		return c.anchor(x)
	case *ast.AliasNode:
		return c.alias(x)
	default:
		return nil, fmt.Errorf("%w: unsupported YAML node %T", ErrParse, n)
	}
}

func (c *converter) mapping(values []*ast.MappingValueNode) (*ir.Node, error) {
	kvs := make([]ir.KeyVal, 0, len(values))
	for _, mv := range values {
		key, err := c.node(mv.Key)
		if err != nil {
			return nil, err
		}
		val, err := c.node(mv.Value)
		if err != nil {
			return nil, err
		}
		kvs = append(kvs, ir.KeyVal{Key: key, Val: val})
	}
	return ir.FromKeyVals(kvs), nil
}

func (c *converter) sequence(seq *ast.SequenceNode) (*ir.Node, error) {
	elts := make([]*ir.Node, 0, len(seq.Values))
	for _, v := range seq.Values {
		elt, err := c.node(v)
		if err != nil {
			return nil, err
		}
		elts = append(elts, elt)
	}
	return ir.FromSlice(elts), nil
}

func integerNode(x *ast.IntegerNode) (*ir.Node, error) {
	switch v := x.Value.(type) {
	case int64:
		return ir.FromInt(v), nil
	case uint64:
		if v <= math.MaxInt64 {
			return ir.FromInt(int64(v)), nil
		}
		// out of int64 range, keep the literal text
		return &ir.Node{Type: ir.NumberType, Number: x.GetToken().Value}, nil
	case int:
		return ir.FromInt(int64(v)), nil
	default:
		return nil, fmt.Errorf("%w: unsupported integer representation %T", ErrParse, x.Value)
	}
}

// tagged wraps custom "!name" tags in a TaggedType node. Standard "!!"
// tags are not re-interpreted; their inner value passes through as parsed.
func (c *converter) tagged(x *ast.TagNode) (*ir.Node, error) {
	inner, err := c.node(x.Value)
	if err != nil {
		return nil, err
	}
	tag := x.Start.Value
	if strings.HasPrefix(tag, "!!") {
		return inner, nil
	}
	return ir.Tagged(tag, inner), nil
}

func (c *converter) anchor(x *ast.AnchorNode) (*ir.Node, error) {
	node, err := c.node(x.Value)
	if err != nil {
		return nil, err
	}
	c.anchors[x.Name.GetToken().Value] = node
	return node, nil
}

func (c *converter) alias(x *ast.AliasNode) (*ir.Node, error) {
	name := x.Value.GetToken().Value
	node, ok := c.anchors[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown anchor %q", ErrParse, name)
	}
	return node.Clone(), nil
}
