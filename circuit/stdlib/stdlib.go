// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package stdlib provides the truth tables and gate types of common logic
// gates.
//
// Each gate is registered twice in a circuit: as a truth table and as a gate
// type using that table, both under the gate's name:
//
//	input          no inputs, out = 0 (driven by stimuli only)
//	buf            out = in
//	not            out = !in
//	and, nand      out = a && b, !(a && b)
//	or, nor        out = a || b, !(a || b)
//	xor, xnor      out = a != b, a == b
//	and3, or3      three inputs versions of and and or
//
// The package also builds composite parts out of these gates: adders,
// multiplexers, demultiplexers and latches.
//
package stdlib

import (
	"github.com/db47h/gatesim/circuit"
	"github.com/pkg/errors"
)

// A Spec describes a standard gate.
//
type Spec struct {
	Name   string
	Inputs int
	Fn     func(in []bool) bool
}

// Table returns the truth table outputs for s. The first input is the most
// significant bit of the table index.
//
func (s *Spec) Table() []int {
	n := 1 << uint(s.Inputs)
	out := make([]int, n)
	in := make([]bool, s.Inputs)
	for i := 0; i < n; i++ {
		for bit := range in {
			in[len(in)-bit-1] = i&(1<<uint(bit)) != 0
		}
		if s.Fn(in) {
			out[i] = 1
		}
	}
	return out
}

func unary(name string, fn func(a bool) bool) Spec {
	return Spec{name, 1, func(in []bool) bool { return fn(in[0]) }}
}

func binary(name string, fn func(a, b bool) bool) Spec {
	return Spec{name, 2, func(in []bool) bool { return fn(in[0], in[1]) }}
}

// Gates lists the standard gates.
//
var Gates = []Spec{
	{"input", 0, func([]bool) bool { return false }},
	unary("buf", func(a bool) bool { return a }),
	unary("not", func(a bool) bool { return !a }),
	binary("and", func(a, b bool) bool { return a && b }),
	binary("nand", func(a, b bool) bool { return !(a && b) }),
	binary("or", func(a, b bool) bool { return a || b }),
	binary("nor", func(a, b bool) bool { return !(a || b) }),
	binary("xor", func(a, b bool) bool { return a && !b || !a && b }),
	binary("xnor", func(a, b bool) bool { return a && b || !a && !b }),
	{"and3", 3, func(in []bool) bool { return in[0] && in[1] && in[2] }},
	{"or3", 3, func(in []bool) bool { return in[0] || in[1] || in[2] }},
}

// Register adds the truth tables and gate types of all standard gates to c.
// Gate types get the given delay, except input which has none.
//
func Register(c *circuit.Circuit, delay int) error {
	for i := range Gates {
		s := &Gates[i]
		if err := c.AddTruthTable(s.Name, s.Table()); err != nil {
			return errors.Wrap(err, "stdlib")
		}
		d := delay
		if s.Inputs == 0 {
			d = 0
		}
		if err := c.AddGateType(s.Name, s.Name, d); err != nil {
			return errors.Wrap(err, "stdlib")
		}
	}
	return nil
}
