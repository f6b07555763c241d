package stdlib_test

import (
	"testing"
	"testing/quick"

	"github.com/db47h/gatesim/circuit"
	"github.com/db47h/gatesim/circuit/stdlib"
)

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

func TestRegister(t *testing.T) {
	c := circuit.New()
	if err := stdlib.Register(c, 3); err != nil {
		t.Fatal(err)
	}
	if err := stdlib.Register(c, 3); err == nil {
		t.Fatal("registering twice must fail")
	}
	types := make(map[string]*circuit.GateType)
	for _, typ := range c.Types() {
		types[typ.Name] = typ
	}
	for _, s := range stdlib.Gates {
		typ, ok := types[s.Name]
		if !ok {
			t.Fatalf("gate type %s not registered", s.Name)
		}
		if typ.Table.Inputs() != s.Inputs {
			t.Errorf("%s: %d inputs, expected %d", s.Name, typ.Table.Inputs(), s.Inputs)
		}
		exp := 3
		if s.Inputs == 0 {
			exp = 0
		}
		if typ.Delay != exp {
			t.Errorf("%s: delay %d, expected %d", s.Name, typ.Delay, exp)
		}
	}
}

func Test_gates(t *testing.T) {
	c := circuit.New()
	if err := stdlib.Register(c, 1); err != nil {
		t.Fatal(err)
	}
	tables := make(map[string]*circuit.TruthTable)
	for _, tt := range c.Tables() {
		tables[tt.Name] = tt
	}
	td := []struct {
		name string
		fn   func(a, b bool) bool
	}{
		{"and", func(a, b bool) bool { return a && b }},
		{"nand", func(a, b bool) bool { return !(a && b) }},
		{"or", func(a, b bool) bool { return a || b }},
		{"nor", func(a, b bool) bool { return !(a || b) }},
		{"xor", func(a, b bool) bool { return a != b }},
		{"xnor", func(a, b bool) bool { return a == b }},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			tt := tables[d.name]
			f := func(a, b bool) bool {
				return tt.Lookup(b2i(a), b2i(b)) == b2i(d.fn(a, b))
			}
			if err := quick.Check(f, nil); err != nil {
				t.Fatal(err)
			}
		})
	}
	if out := tables["not"].Lookup(0); out != 1 {
		t.Errorf("not 0 = %d", out)
	}
	if out := tables["buf"].Lookup(1); out != 1 {
		t.Errorf("buf 1 = %d", out)
	}
	if out := tables["and3"].Lookup(1, 1, 0); out != 0 {
		t.Errorf("and3 1 1 0 = %d", out)
	}
	if out := tables["or3"].Lookup(0, 0, 1); out != 1 {
		t.Errorf("or3 0 0 1 = %d", out)
	}
}
