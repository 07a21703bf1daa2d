package docgen

import (
	"errors"
	"strings"
	"testing"

	"github.com/yamlkit/yamldoc/internal/textdiff"
	"github.com/yamlkit/yamldoc/ir"
)

func mapping(kvs ...ir.KeyVal) *ir.Node {
	return ir.FromKeyVals(kvs)
}

func kv(key string, val *ir.Node) ir.KeyVal {
	return ir.KeyVal{Key: ir.FromString(key), Val: val}
}

func checkDocument(t *testing.T, value, desc *ir.Node, want string) {
	t.Helper()
	got, err := Document(value, desc)
	if err != nil {
		t.Fatalf("Document error: %v", err)
	}
	if got != want {
		t.Errorf("unexpected output:\n%s", textdiff.Lines(want, got))
	}
}

func TestDocumentSimple(t *testing.T) {
	value := mapping(
		kv("foo", mapping(
			kv("bar", ir.FromInt(42)),
		)),
	)
	desc := mapping(
		kv("foo", mapping(
			kv(DescriptionKey, ir.FromString("Description for foo")),
			kv("bar", ir.FromString("Description for bar")),
		)),
	)
	want := "# Description for foo\n" +
		"foo (Mapping): \n" +
		"    # Description for bar\n" +
		"    bar (Number): 42\n"
	checkDocument(t, value, desc, want)
}

func TestDocumentNoDescription(t *testing.T) {
	value := mapping(
		kv("a", ir.FromInt(1)),
		kv("b", mapping(
			kv("c", ir.FromSlice([]*ir.Node{
				ir.FromString("x"),
				mapping(kv("d", ir.FromBool(true))),
			})),
		)),
	)
	got, err := Document(value, nil)
	if err != nil {
		t.Fatalf("Document error: %v", err)
	}
	if strings.Contains(got, "# ") {
		t.Errorf("expected no comment lines, got:\n%s", got)
	}
}

func TestTypeLabels(t *testing.T) {
	tcs := []struct {
		name string
		val  *ir.Node
		want string
	}{
		{"null", ir.Null(), "k (Null): null\n"},
		{"bool", ir.FromBool(true), "k (Bool): true\n"},
		{"number", ir.FromInt(42), "k (Number): 42\n"},
		{"string", ir.FromString("hello"), "k (String): hello\n"},
		{"list", ir.FromSlice([]*ir.Node{ir.FromInt(1)}), "k (List): \n    - 1\n"},
		{"mapping", mapping(kv("x", ir.FromInt(1))), "k (Mapping): \n    x (Number): 1\n"},
		{"tagged", ir.Tagged("!custom", ir.FromInt(1)), "k (Tagged): !custom 1\n"},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			checkDocument(t, mapping(kv("k", tc.val)), nil, tc.want)
		})
	}
}

func TestDescriptionFieldPriority(t *testing.T) {
	value := mapping(
		kv("outer", mapping(
			kv("inner", ir.FromInt(1)),
			kv("other", ir.FromInt(2)),
		)),
	)
	desc := mapping(
		kv("outer", mapping(
			kv(DescriptionKey, ir.FromString("X")),
			kv("inner", ir.FromString("inner text")),
		)),
	)
	want := "# X\n" +
		"outer (Mapping): \n" +
		"    # inner text\n" +
		"    inner (Number): 1\n" +
		"    other (Number): 2\n"
	checkDocument(t, value, desc, want)
}

func TestListSuppression(t *testing.T) {
	value := mapping(
		kv("items", ir.FromSlice([]*ir.Node{
			mapping(kv("name", ir.FromString("a"))),
			mapping(kv("name", ir.FromString("b"))),
		})),
	)
	desc := mapping(
		kv("items", mapping(
			kv("name", ir.FromString("should never appear")),
		)),
	)
	got, err := Document(value, desc)
	if err != nil {
		t.Fatalf("Document error: %v", err)
	}
	if strings.Contains(got, "# ") {
		t.Errorf("descriptions flowed into list elements:\n%s", got)
	}
	want := "items (List): \n" +
		"    - name (String): a\n" +
		"    - name (String): b\n"
	if got != want {
		t.Errorf("unexpected output:\n%s", textdiff.Lines(want, got))
	}
}

func TestMismatchedShapeDescription(t *testing.T) {
	value := mapping(kv("foo", ir.FromInt(1)))
	for _, desc := range []*ir.Node{
		mapping(kv("foo", ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)}))),
		mapping(kv("foo", ir.FromInt(3))),
		mapping(kv("foo", ir.FromBool(false))),
		mapping(kv("foo", ir.Null())),
		mapping(kv("foo", ir.Tagged("!x", ir.FromString("t")))),
		mapping(kv("bar", ir.FromString("wrong key"))),
		ir.FromString("not a mapping"),
		ir.Null(),
	} {
		checkDocument(t, value, desc, "foo (Number): 1\n")
	}
}

func TestEmptyContainers(t *testing.T) {
	t.Run("top-level empty mapping", func(t *testing.T) {
		checkDocument(t, mapping(), nil, "")
	})
	t.Run("nested empty mapping", func(t *testing.T) {
		checkDocument(t, mapping(kv("a", mapping())), nil, "a (Mapping): \n")
	})
	t.Run("nested empty list", func(t *testing.T) {
		checkDocument(t, mapping(kv("a", ir.FromSlice(nil))), nil, "a (List): \n")
	})
	t.Run("top-level empty list", func(t *testing.T) {
		checkDocument(t, ir.FromSlice(nil), nil, "\n")
	})
}

func TestDataDescriptionKeyNotSpecial(t *testing.T) {
	// __description__ is reserved in description trees only; in the data
	// tree it documents like any other field.
	value := mapping(
		kv(DescriptionKey, ir.FromString("just data")),
		kv("a", ir.FromInt(1)),
	)
	want := "__description__ (String): just data\n" +
		"a (Number): 1\n"
	checkDocument(t, value, nil, want)
}

func TestOrderPreservation(t *testing.T) {
	value := mapping(
		kv("zebra", ir.FromInt(1)),
		kv("apple", ir.FromInt(2)),
		kv("mango", ir.FromInt(3)),
	)
	// description key order is irrelevant to output order
	desc := mapping(
		kv("apple", ir.FromString("a")),
		kv("mango", ir.FromString("m")),
		kv("zebra", ir.FromString("z")),
	)
	want := "# z\n" +
		"zebra (Number): 1\n" +
		"# a\n" +
		"apple (Number): 2\n" +
		"# m\n" +
		"mango (Number): 3\n"
	checkDocument(t, value, desc, want)

	first, err := Document(value, desc)
	if err != nil {
		t.Fatalf("Document error: %v", err)
	}
	second, err := Document(value, desc)
	if err != nil {
		t.Fatalf("Document error: %v", err)
	}
	if first != second {
		t.Errorf("rendering is not deterministic")
	}
}

func TestNonStringKeys(t *testing.T) {
	value := ir.FromKeyVals([]ir.KeyVal{
		{Key: ir.FromInt(42), Val: ir.FromString("n")},
		{Key: ir.FromBool(true), Val: ir.FromString("b")},
		{Key: ir.Null(), Val: ir.FromString("z")},
	})
	want := "42 (String): n\n" +
		"true (String): b\n" +
		"null (String): z\n"
	checkDocument(t, value, nil, want)
}

func TestLeafForms(t *testing.T) {
	tcs := []struct {
		name string
		val  *ir.Node
		want string
	}{
		{"top-level int", ir.FromInt(42), "42\n"},
		{"float", ir.FromFloat(31.2), "31.2\n"},
		{"whole float", ir.FromFloat(42), "42.0\n"},
		{"numeric-looking string", ir.FromString("42"), "\"42\"\n"},
		{"big number literal", &ir.Node{Type: ir.NumberType, Number: "123456789123456789123456789"}, "123456789123456789123456789\n"},
		{"tagged composite", ir.Tagged("!wrap", mapping(kv("a", ir.FromInt(1)))), "!wrap\na: 1\n"},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			checkDocument(t, tc.val, nil, tc.want)
		})
	}
}

func TestSerializationError(t *testing.T) {
	bad := &ir.Node{Type: ir.NumberType}
	value := mapping(
		kv("ok", ir.FromInt(1)),
		kv("nested", mapping(kv("bad", bad))),
	)
	s, err := Document(value, nil)
	if err == nil {
		t.Fatalf("expected serialization error, got output:\n%s", s)
	}
	if !errors.Is(err, ErrSerialize) {
		t.Errorf("expected ErrSerialize, got: %v", err)
	}
	if s != "" {
		t.Errorf("expected no usable output on error, got %q", s)
	}

	malformed := &ir.Node{Type: ir.NumberType, Number: "not-a-number"}
	if _, err := Document(mapping(kv("bad", malformed)), nil); !errors.Is(err, ErrSerialize) {
		t.Errorf("expected ErrSerialize for malformed literal, got: %v", err)
	}

	untagged := &ir.Node{Type: ir.TaggedType, Tag: "!x"}
	if _, err := Document(mapping(kv("bad", untagged)), nil); !errors.Is(err, ErrSerialize) {
		t.Errorf("expected ErrSerialize for tagged node without inner value, got: %v", err)
	}
}

func TestMustDocument(t *testing.T) {
	value := mapping(kv("a", ir.FromInt(1)))
	if got := MustDocument(value, nil); got != "a (Number): 1\n" {
		t.Errorf("unexpected output %q", got)
	}
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for unserializable value")
		}
	}()
	MustDocument(mapping(kv("bad", &ir.Node{Type: ir.NumberType})), nil)
}
