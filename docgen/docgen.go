package docgen

import (
	"bytes"
	"io"
	"strings"

	"github.com/yamlkit/yamldoc/ir"
)

// DescriptionKey is the reserved mapping key naming the comment text for
// the mapping's enclosing key in a description tree. It is a protocol
// convention between description authors and this renderer; a field with
// this name in the data tree itself is documented like any other field.
const DescriptionKey = "__description__"

const indentUnit = "    "

type docState struct {
	Color func(ir.Type, ColorAttr, string) string
}

// Document renders value as an annotated, indented listing showing each
// field's name, inferred type and value, overlaying comments found in
// description. description mirrors the shape of value: a mapping entry's
// description is looked up under the same key, a string hit is the comment,
// a mapping hit carries the comment under DescriptionKey and provides the
// descriptions for the entry's children. description may be nil, in which
// case no comments are emitted.
//
// Document is pure and safe to call from concurrent goroutines. Recursion
// depth equals the nesting depth of value.
func Document(value, description *ir.Node, opts ...Option) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(value, description, buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Encode is the writer form of Document.
func Encode(value, description *ir.Node, w io.Writer, opts ...Option) error {
	ds := &docState{}
	for _, opt := range opts {
		opt(ds)
	}
	return document(value, description, w, ds, 0)
}

func document(node, desc *ir.Node, w io.Writer, ds *docState, level int) error {
	switch node.Type {
	case ir.MappingType:
		return documentMapping(node, desc, w, ds, level)
	case ir.ListType:
		return documentList(node, w, ds, level)
	default:
		return documentLeaf(node, w, ds)
	}
}

func documentMapping(node, desc *ir.Node, w io.Writer, ds *docState, level int) error {
	// A nested mapping starts on the line after its "key (Mapping): "
	// header; the top-level mapping does not.
	if level > 0 {
		if err := writeString(w, "\n"); err != nil {
			return err
		}
	}
	for i, key := range node.Fields {
		val := node.Values[i]
		descVal := lookupDescription(desc, key)
		if comment, ok := commentText(descVal); ok {
			if err := writeIndent(w, level); err != nil {
				return err
			}
			line := "# " + comment
			if ds.Color != nil {
				line = ds.Color(val.Type, CommentColor, line)
			}
			if err := writeString(w, line+"\n"); err != nil {
				return err
			}
		}
		if err := writeIndent(w, level); err != nil {
			return err
		}
		if err := writeKeyLine(key, val, w, ds); err != nil {
			return err
		}
		if err := document(val, descVal, w, ds, level+1); err != nil {
			return err
		}
	}
	return nil
}

func documentList(node *ir.Node, w io.Writer, ds *docState, level int) error {
	if err := writeString(w, "\n"); err != nil {
		return err
	}
	for _, v := range node.Values {
		if err := writeIndent(w, level); err != nil {
			return err
		}
		marker := "- "
		if ds.Color != nil {
			marker = ds.Color(ir.ListType, SepColor, "-") + " "
		}
		if err := writeString(w, marker); err != nil {
			return err
		}
		// List elements never carry descriptions; the description tree
		// does not track sequence positions.
		if err := document(v, nil, w, ds, level+1); err != nil {
			return err
		}
	}
	return nil
}

func documentLeaf(node *ir.Node, w io.Writer, ds *docState) error {
	s, err := serializeLeaf(node)
	if err != nil {
		return err
	}
	if ds.Color != nil {
		s = strings.TrimSuffix(s, "\n")
		s = ds.Color(node.Type, ValueColor, s) + "\n"
	}
	return writeString(w, s)
}

// lookupDescription resolves the description node for a mapping entry key.
// Only a mapping-shaped description is consulted; any other shape means no
// descriptions apply at this position.
func lookupDescription(desc, key *ir.Node) *ir.Node {
	if desc == nil || desc.Type != ir.MappingType {
		return nil
	}
	return ir.Get(desc, ir.KeyText(key))
}

// commentText extracts the comment for an entry from its description node:
// a plain string is the comment itself, a mapping carries it under
// DescriptionKey. Other shapes yield no comment.
func commentText(descVal *ir.Node) (string, bool) {
	if descVal == nil {
		return "", false
	}
	switch descVal.Type {
	case ir.StringType:
		return descVal.String, true
	case ir.MappingType:
		d := ir.Get(descVal, DescriptionKey)
		if d != nil && d.Type == ir.StringType {
			return d.String, true
		}
	}
	return "", false
}

func writeKeyLine(key, val *ir.Node, w io.Writer, ds *docState) error {
	k := ir.KeyText(key)
	label := val.Type.String()
	sep1, sep2 := " (", "): "
	if ds.Color != nil {
		k = ds.Color(ir.MappingType, FieldColor, k)
		label = ds.Color(val.Type, TypeColor, label)
		sep1 = ds.Color(ir.MappingType, SepColor, sep1)
		sep2 = ds.Color(ir.MappingType, SepColor, sep2)
	}
	return writeString(w, k+sep1+label+sep2)
}

func writeIndent(w io.Writer, level int) error {
	if level == 0 {
		return nil
	}
	return writeString(w, strings.Repeat(indentUnit, level))
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}
