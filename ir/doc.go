// Package ir provides the value representation documented by yamldoc.
//
// # Overview
//
// A YAML document (or any value produced programmatically, e.g. from a
// default-valued configuration struct via the gomap package) is represented
// as a tree of nodes. The IR works as a recursive tagged union structure,
// where values are placed in fields depending on the node type.
//
// # Node Types
//
// The Type field indicates the node's type:
//
//   - NullType: null value
//   - BoolType: boolean (true/false)
//   - NumberType: numeric value (int64 or float64, with a literal fallback)
//   - StringType: string value
//   - ListType: ordered sequence of nodes
//   - MappingType: key-value pairs (fields and values, order preserved)
//   - TaggedType: a value carrying a custom "!name" tag
//
// # Creating Nodes
//
// Use constructor functions to create nodes:
//
//	node := ir.FromString("hello")
//	num := ir.FromInt(42)
//	obj := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: ir.FromString("key"), Val: ir.FromString("value")},
//	})
//	arr := ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)})
//
// # Structure Constraints
//
// For MappingType nodes, Fields[i] is the key for the value at Values[i],
// so there will always be the same number of fields as values. Keys are
// unique and may themselves be arbitrary nodes; KeyText defines their
// canonical text form. Entry order is preserved by all operations in this
// module; FromMap is the one constructor that sorts (for determinism when
// starting from a Go map).
//
// Number values are placed under Int64 if integral, Float64 if floating
// point, or kept as literal text under Number when neither can represent
// them.
//
// Trees are acyclic by construction. Node structures are not safe for
// concurrent mutation; read-only sharing across goroutines is fine.
package ir
