// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package circuit

import (
	"github.com/db47h/gatesim"
)

// A Gate is a logic gate in a circuit. Its output starts at 0.
//
type Gate struct {
	name   string
	typ    *GateType
	in     []string // input gate names, in truth table order
	inputs []*Gate
	fanout []gatesim.Gate
	outs   []*Gate
	out    int
	probed bool
}

// Name returns the gate name.
//
func (g *Gate) Name() string { return g.name }

// Type returns the gate type.
//
func (g *Gate) Type() *GateType { return g.typ }

// InputNames returns the names of the gates connected to g's inputs.
//
func (g *Gate) InputNames() []string { return g.in }

// OutputNames returns the names of the gates connected to g's output.
// The circuit must be linked.
//
func (g *Gate) OutputNames() []string {
	names := make([]string, len(g.outs))
	for i, o := range g.outs {
		names[i] = o.name
	}
	return names
}

// Output returns the current output value.
//
func (g *Gate) Output() int { return g.out }

// SetOutput sets the current output value.
//
func (g *Gate) SetOutput(v int) { g.out = v }

// Fanout returns the gates connected to g's output. Each gate appears once
// even if it uses g on several inputs.
//
func (g *Gate) Fanout() []gatesim.Gate { return g.fanout }

// NextOutput returns the truth table output for the current input values.
//
func (g *Gate) NextOutput() int {
	var v [8]int
	in := v[:0]
	for _, i := range g.inputs {
		in = append(in, i.out)
	}
	return g.typ.Table.Lookup(in...)
}

// NextTransitionTime returns now plus the gate delay.
//
func (g *Gate) NextTransitionTime(now int) int { return now + g.typ.Delay }

// Probed returns true if the gate is probed.
//
func (g *Gate) Probed() bool { return g.probed }
