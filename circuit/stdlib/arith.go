// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package stdlib

import (
	"strconv"

	"github.com/db47h/gatesim/circuit"
	"github.com/pkg/errors"
)

// The functions in this file add composite parts to a circuit, built from the
// standard gate types. Register must have been called on the circuit first.
// Part gates are named after the part name, a dot and a suffix.

type builder struct {
	c    *circuit.Circuit
	name string
	err  error
}

func (b *builder) gate(suffix, typ string, inputs ...string) string {
	n := b.name + "." + suffix
	if b.err == nil {
		b.err = b.c.AddGate(n, typ, inputs)
	}
	return n
}

// HalfAdder adds a half adder to c.
//
//	Inputs: a, b
//	Outputs: s, c
//	Function: s = lsb(a + b)
//	          c = msb(a + b)
//
// It returns the names of the sum and carry gates.
//
func HalfAdder(c *circuit.Circuit, name, a, b string) (sum, carry string, err error) {
	bld := builder{c: c, name: name}
	sum = bld.gate("s", "xor", a, b)
	carry = bld.gate("c", "and", a, b)
	return sum, carry, errors.Wrap(bld.err, name)
}

// FullAdder adds a full adder to c, made of two half adders.
//
//	Inputs: a, b, cin
//	Outputs: s, cout
//	Function: s = lsb(a + b + cin)
//	          cout = msb(a + b + cin)
//
func FullAdder(c *circuit.Circuit, name, a, b, cin string) (sum, cout string, err error) {
	s1, c1, err := HalfAdder(c, name+".h0", a, b)
	if err != nil {
		return "", "", err
	}
	sum, c2, err := HalfAdder(c, name+".h1", s1, cin)
	if err != nil {
		return "", "", err
	}
	bld := builder{c: c, name: name}
	cout = bld.gate("cout", "or", c1, c2)
	return sum, cout, errors.Wrap(bld.err, name)
}

// AdderN adds a ripple carry adder to c. a and b are the input gate names,
// least significant bit first, and must have the same length.
//
// It returns the output bits, least significant first, and the carry gate.
//
func AdderN(c *circuit.Circuit, name string, a, b []string) (out []string, carry string, err error) {
	if len(a) != len(b) || len(a) == 0 {
		return nil, "", errors.Errorf("%s: input bus widths %d and %d", name, len(a), len(b))
	}
	out = make([]string, len(a))
	out[0], carry, err = HalfAdder(c, name+".0", a[0], b[0])
	for i := 1; i < len(a) && err == nil; i++ {
		out[i], carry, err = FullAdder(c, name+"."+strconv.Itoa(i), a[i], b[i], carry)
	}
	if err != nil {
		return nil, "", err
	}
	return out, carry, nil
}

// Mux adds a multiplexer to c and returns the name of its output gate.
//
//	Inputs: a, b, sel
//	Outputs: out
//	Function: if sel == 0 { out = a } else { out = b }
//
func Mux(c *circuit.Circuit, name, a, b, sel string) (string, error) {
	bld := builder{c: c, name: name}
	nsel := bld.gate("nsel", "not", sel)
	x := bld.gate("a", "and", a, nsel)
	y := bld.gate("b", "and", b, sel)
	out := bld.gate("out", "or", x, y)
	return out, errors.Wrap(bld.err, name)
}

// DMux adds a demultiplexer to c and returns the names of its output gates.
//
//	Inputs: in, sel
//	Outputs: a, b
//	Function: if sel == 0 { a = in; b = 0 } else { a = 0; b = in }
//
func DMux(c *circuit.Circuit, name, in, sel string) (a, b string, err error) {
	bld := builder{c: c, name: name}
	nsel := bld.gate("nsel", "not", sel)
	a = bld.gate("a", "and", in, nsel)
	b = bld.gate("b", "and", in, sel)
	return a, b, errors.Wrap(bld.err, name)
}
