package ir

import (
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Node is a recursive tagged union representing a single YAML value.
// Values are placed in fields depending on the node type:
//
//   - MappingType: Fields[i] is the key node for the value at Values[i].
//     Keys are unique and entry order is significant.
//   - ListType: Values holds the elements in order.
//   - TaggedType: Tag holds the "!name" label and Values[0] the inner node.
//   - NumberType: Int64 or Float64 when representable, otherwise the
//     literal text is kept under Number as a fallback.
//   - StringType, BoolType: String and Bool respectively.
type Node struct {
	Type Type

	Fields []*Node
	Values []*Node

	Tag string

	String  string
	Bool    bool
	Number  string
	Int64   *int64
	Float64 *float64
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Type = y.Type
	dst.Tag = y.Tag
	dst.String = y.String
	dst.Bool = y.Bool
	dst.Number = y.Number
	if y.Int64 != nil {
		i := *y.Int64
		dst.Int64 = &i
	}
	if y.Float64 != nil {
		f := *y.Float64
		dst.Float64 = &f
	}
	if y.Fields != nil {
		dst.Fields = make([]*Node, len(y.Fields))
		for i, yf := range y.Fields {
			dst.Fields[i] = yf.Clone()
		}
	}
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
		for i, yv := range y.Values {
			dst.Values[i] = yv.Clone()
		}
	}
	return dst
}

func FromString(v string) *Node {
	return &Node{
		Type:   StringType,
		String: v,
	}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  NumberType,
		Int64: &v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: &f,
	}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func Null() *Node {
	return &Node{Type: NullType}
}

// Tagged wraps inner in a node carrying a custom "!name" tag.
func Tagged(tag string, inner *Node) *Node {
	if inner == nil {
		inner = Null()
	}
	return &Node{
		Type:   TaggedType,
		Tag:    tag,
		Values: []*Node{inner},
	}
}

// Inner returns the wrapped node of a tagged node, nil otherwise.
func (y *Node) Inner() *Node {
	if y.Type != TaggedType || len(y.Values) == 0 {
		return nil
	}
	return y.Values[0]
}

// FromMap builds a mapping node with string keys in sorted key order.
// Use FromKeyVals when entry order matters.
func FromMap(yMap map[string]*Node) *Node {
	res := &Node{Type: MappingType}
	res.Fields = make([]*Node, len(yMap))
	res.Values = make([]*Node, len(yMap))
	keys := slices.Sorted(maps.Keys(yMap))
	for i, key := range keys {
		res.Fields[i] = FromString(key)
		res.Values[i] = yMap[key]
	}
	return res
}

type KeyVal struct {
	Key *Node
	Val *Node
}

// FromKeyVals builds a mapping node preserving the given entry order.
// A nil key becomes a null node.
func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{Type: MappingType}
	res.Fields = make([]*Node, len(kvs))
	res.Values = make([]*Node, len(kvs))
	for i := range kvs {
		kv := &kvs[i]
		if kv.Key == nil {
			kv.Key = Null()
		}
		res.Fields[i] = kv.Key
		res.Values[i] = kv.Val
	}
	return res
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{Type: ListType}
	res.Values = make([]*Node, len(ySlice))
	copy(res.Values, ySlice)
	return res
}

// Get returns the value of the mapping entry whose key has canonical text
// equal to field, or nil if y is not a mapping or has no such entry.
func Get(y *Node, field string) *Node {
	if y == nil || y.Type != MappingType {
		return nil
	}
	n := len(y.Fields)
	for i := range n {
		if KeyText(y.Fields[i]) == field {
			return y.Values[i]
		}
	}
	return nil
}

// KeyText renders a node in its canonical single-line text form, used for
// mapping keys. String keys render verbatim; other scalars use their YAML
// literal form; composite keys use a compact flow form. This is the stable
// fallback representation for non-string keys.
func KeyText(y *Node) string {
	if y == nil {
		return "null"
	}
	switch y.Type {
	case NullType:
		return "null"
	case BoolType:
		return strconv.FormatBool(y.Bool)
	case NumberType:
		switch {
		case y.Int64 != nil:
			return strconv.FormatInt(*y.Int64, 10)
		case y.Float64 != nil:
			return strconv.FormatFloat(*y.Float64, 'f', -1, 64)
		default:
			return y.Number
		}
	case StringType:
		return y.String
	case TaggedType:
		return y.Tag + " " + KeyText(y.Inner())
	case ListType:
		elts := make([]string, len(y.Values))
		for i, v := range y.Values {
			elts[i] = KeyText(v)
		}
		return "[" + strings.Join(elts, ", ") + "]"
	case MappingType:
		elts := make([]string, len(y.Fields))
		for i, f := range y.Fields {
			elts[i] = KeyText(f) + ": " + KeyText(y.Values[i])
		}
		return "{" + strings.Join(elts, ", ") + "}"
	}
	return "<unknown>"
}

// Visit calls f on y and, when f returns true for the pre-order call,
// on each of y's values recursively. f is called again with isPost true
// after the values have been visited.
func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}
