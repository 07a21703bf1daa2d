// Package docgen renders an ir.Node tree as a human-readable annotated
// listing, overlaying free-text comments from a parallel description tree.
//
// # Usage
//
//	value, _ := parse.Parse(dataYAML)
//	desc, _ := parse.Parse(descYAML)
//	out, err := docgen.Document(value, desc)
//
// Given data {foo: {bar: 42}} and description
// {foo: {__description__: "Description for foo", bar: "Description for bar"}},
// the output is:
//
//	# Description for foo
//	foo (Mapping):
//	    # Description for bar
//	    bar (Number): 42
//
// Each field renders as "<key> (<TypeLabel>): <value>" indented four spaces
// per nesting level, with "# " comment lines above annotated fields and
// "- " markers for list items. Descriptions never flow into list elements.
//
// # Related Packages
//
//   - github.com/yamlkit/yamldoc/ir - value representation
//   - github.com/yamlkit/yamldoc/parse - parse YAML text into ir nodes
//   - github.com/yamlkit/yamldoc/gomap - build value and description trees
//     from default-valued Go structs
package docgen
