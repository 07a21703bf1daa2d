// Package gomap converts Go values to ir.Node trees.
//
// The primary use is documenting a default-valued configuration struct:
// ToIR turns the default instance into the data tree and DescribeIR turns
// its doc struct tags into the matching description tree, so that
// docgen.Document can render an annotated listing without any hand-written
// YAML.
//
//	type Server struct {
//	    Addr string `yaml:"addr" doc:"address to listen on"`
//	    Port int    `yaml:"port" doc:"TCP port"`
//	}
//
//	value, _ := gomap.ToIR(Server{Addr: "localhost", Port: 8080})
//	desc, _ := gomap.DescribeIR(Server{})
//	out, _ := docgen.Document(value, desc)
//
// Struct fields convert in declaration order under their yaml tag names,
// embedded structs are flattened, and map entries are sorted by key.
package gomap
