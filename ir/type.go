package ir

import "fmt"

type Type int

const (
	NullType Type = iota
	BoolType
	NumberType
	StringType
	ListType
	MappingType
	TaggedType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		NullType:    "Null",
		BoolType:    "Bool",
		NumberType:  "Number",
		StringType:  "String",
		ListType:    "List",
		MappingType: "Mapping",
		TaggedType:  "Tagged",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Null":    NullType,
		"Bool":    BoolType,
		"Number":  NumberType,
		"String":  StringType,
		"List":    ListType,
		"Mapping": MappingType,
		"Tagged":  TaggedType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		NullType,
		BoolType,
		NumberType,
		StringType,
		ListType,
		MappingType,
		TaggedType,
	}
}

// IsLeaf reports whether nodes of type t have no children for traversal
// purposes. Tagged nodes wrap an inner node but are rendered opaquely,
// so they count as leaves.
func (t Type) IsLeaf() bool {
	switch t {
	case ListType, MappingType:
		return false
	default:
		return true
	}
}
