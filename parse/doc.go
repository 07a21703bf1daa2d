// Package parse loads YAML text into ir.Node trees for documentation
// rendering.
//
// Unlike decoding into map[string]any, parsing goes through the YAML
// syntax tree so that mapping entry order is preserved verbatim and custom
// "!name" tags survive as TaggedType nodes. The renderer depends on both.
//
// # Related Packages
//
//   - github.com/yamlkit/yamldoc/ir - value representation
//   - github.com/yamlkit/yamldoc/docgen - renders parsed trees
package parse
