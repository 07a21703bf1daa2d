package gomap

import (
	"errors"
	"strings"
	"testing"

	"github.com/yamlkit/yamldoc/ir"
)

func TestToIRScalars(t *testing.T) {
	tcs := []struct {
		name string
		in   any
		want *ir.Node
	}{
		{"nil", nil, ir.Null()},
		{"string", "x", ir.FromString("x")},
		{"int", 42, ir.FromInt(42)},
		{"uint", uint8(7), ir.FromInt(7)},
		{"float", 1.5, ir.FromFloat(1.5)},
		{"bool", true, ir.FromBool(true)},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ToIR(tc.in)
			if err != nil {
				t.Fatalf("ToIR error: %v", err)
			}
			if ir.Compare(got, tc.want) != 0 {
				t.Errorf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestToIRStructOrder(t *testing.T) {
	type Conf struct {
		Zebra string `yaml:"zebra"`
		Apple int    // untagged, uses field name
		Skip  string `yaml:"-"`
		Port  int    `yaml:"port,omitempty"`
	}
	node, err := ToIR(Conf{Zebra: "z", Apple: 1, Skip: "no", Port: 80})
	if err != nil {
		t.Fatalf("ToIR error: %v", err)
	}
	if node.Type != ir.MappingType || len(node.Fields) != 3 {
		t.Fatalf("unexpected node: %+v", node)
	}
	for i, want := range []string{"zebra", "Apple", "port"} {
		if node.Fields[i].String != want {
			t.Errorf("field %d: got %q, want %q", i, node.Fields[i].String, want)
		}
	}
}

func TestToIRNested(t *testing.T) {
	type Inner struct {
		N int `yaml:"n"`
	}
	type Outer struct {
		Inner   Inner    `yaml:"inner"`
		Ptr     *Inner   `yaml:"ptr"`
		NilPtr  *Inner   `yaml:"nilPtr"`
		Names   []string `yaml:"names"`
		ByName  map[string]int
		Any     any `yaml:"any"`
		NilAny  any `yaml:"nilAny"`
	}
	node, err := ToIR(Outer{
		Inner:  Inner{N: 1},
		Ptr:    &Inner{N: 2},
		Names:  []string{"a", "b"},
		ByName: map[string]int{"z": 26, "a": 1},
		Any:    "dyn",
	})
	if err != nil {
		t.Fatalf("ToIR error: %v", err)
	}
	if v := ir.Get(ir.Get(node, "inner"), "n"); v == nil || *v.Int64 != 1 {
		t.Errorf("inner.n: %+v", v)
	}
	if v := ir.Get(ir.Get(node, "ptr"), "n"); v == nil || *v.Int64 != 2 {
		t.Errorf("ptr.n: %+v", v)
	}
	if v := ir.Get(node, "nilPtr"); v == nil || v.Type != ir.NullType {
		t.Errorf("nilPtr: %+v", v)
	}
	names := ir.Get(node, "names")
	if names == nil || names.Type != ir.ListType || len(names.Values) != 2 {
		t.Errorf("names: %+v", names)
	}
	byName := ir.Get(node, "ByName")
	if byName == nil || byName.Type != ir.MappingType {
		t.Fatalf("ByName: %+v", byName)
	}
	// map entries sort by key
	if byName.Fields[0].String != "a" || byName.Fields[1].String != "z" {
		t.Errorf("map order: %+v", byName.Fields)
	}
	if v := ir.Get(node, "any"); v == nil || v.String != "dyn" {
		t.Errorf("any: %+v", v)
	}
	if v := ir.Get(node, "nilAny"); v == nil || v.Type != ir.NullType {
		t.Errorf("nilAny: %+v", v)
	}
}

func TestToIREmbedded(t *testing.T) {
	type Base struct {
		ID int `yaml:"id"`
	}
	type Wrapper struct {
		Base
		Name string `yaml:"name"`
	}
	node, err := ToIR(Wrapper{Base: Base{ID: 9}, Name: "n"})
	if err != nil {
		t.Fatalf("ToIR error: %v", err)
	}
	if len(node.Fields) != 2 || node.Fields[0].String != "id" || node.Fields[1].String != "name" {
		t.Errorf("embedded flattening: %+v", node.Fields)
	}
}

func TestToIREmbeddedConflict(t *testing.T) {
	type Base struct {
		Name string `yaml:"name"`
	}
	type Wrapper struct {
		Base
		Name string `yaml:"name"`
	}
	_, err := ToIR(Wrapper{})
	var me *MarshalError
	if err == nil || !errors.As(err, &me) {
		t.Fatalf("expected MarshalError, got: %v", err)
	}
	if !strings.Contains(err.Error(), "conflict") {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestToIRCircular(t *testing.T) {
	type Person struct {
		Name string
		Boss *Person
	}
	person := &Person{Name: "Alice"}
	person.Boss = person

	_, err := ToIR(person)
	if err == nil {
		t.Fatal("expected error for circular reference")
	}
	if !strings.Contains(err.Error(), "circular") {
		t.Errorf("expected error message to contain 'circular', got: %v", err)
	}
}

func TestToIRUnsupported(t *testing.T) {
	type Bad struct {
		C chan int `yaml:"c"`
	}
	_, err := ToIR(Bad{})
	var me *MarshalError
	if err == nil || !errors.As(err, &me) {
		t.Fatalf("expected MarshalError, got: %v", err)
	}
	if me.FieldPath != "c" {
		t.Errorf("field path: %q", me.FieldPath)
	}
}

func TestToIRNonStringMapKeys(t *testing.T) {
	_, err := ToIR(map[int]string{1: "a"})
	var me *MarshalError
	if err == nil || !errors.As(err, &me) {
		t.Fatalf("expected MarshalError, got: %v", err)
	}
}
