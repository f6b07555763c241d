// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package circuit implements the circuit graph simulated by package gatesim:
// truth tables, gate types and gates connected by name.
//
package circuit

import (
	"sort"

	"github.com/db47h/gatesim"
	"github.com/pkg/errors"
)

// Circuit is a set of named truth tables, gate types and gates.
//
// Gates reference their inputs by name, so a gate can be added before its
// inputs. Link resolves the names and builds the fan-out lists; it is called
// implicitly by Gate.
//
type Circuit struct {
	tables map[string]*TruthTable
	types  map[string]*GateType
	gates  map[string]*Gate
	order  []*Gate
	linked bool
	undo   []*Gate // gates probed by ProbeAll
}

// New returns an empty circuit.
//
func New() *Circuit {
	return &Circuit{
		tables: make(map[string]*TruthTable),
		types:  make(map[string]*GateType),
		gates:  make(map[string]*Gate),
	}
}

// AddTruthTable adds a truth table. The number of outputs must be a power of
// two and every output must be 0 or 1.
//
func (c *Circuit) AddTruthTable(name string, outputs []int) error {
	if _, ok := c.tables[name]; ok {
		return errors.New("duplicate truth table " + name)
	}
	t, err := newTruthTable(name, outputs)
	if err != nil {
		return err
	}
	c.tables[name] = t
	return nil
}

// AddGateType adds a gate type using the named truth table.
//
func (c *Circuit) AddGateType(name, table string, delay int) error {
	if _, ok := c.types[name]; ok {
		return errors.New("duplicate gate type " + name)
	}
	t, ok := c.tables[table]
	if !ok {
		return errors.Errorf("gate type %s: unknown truth table %s", name, table)
	}
	if delay < 0 {
		return errors.Errorf("gate type %s: negative delay %d", name, delay)
	}
	c.types[name] = &GateType{Name: name, Table: t, Delay: delay}
	return nil
}

// AddGate adds a gate of the given type. inputs are the names of the gates
// connected to its inputs, in truth table order.
//
func (c *Circuit) AddGate(name, typ string, inputs []string) error {
	if _, ok := c.gates[name]; ok {
		return errors.New("duplicate gate " + name)
	}
	t, ok := c.types[typ]
	if !ok {
		return errors.Errorf("gate %s: unknown gate type %s", name, typ)
	}
	if n := t.Table.Inputs(); n != len(inputs) {
		return errors.Errorf("gate %s: type %s expects %d inputs, got %d", name, typ, n, len(inputs))
	}
	in := make([]string, len(inputs))
	copy(in, inputs)
	g := &Gate{name: name, typ: t, in: in}
	c.gates[name] = g
	c.order = append(c.order, g)
	c.linked = false
	return nil
}

// AddProbe marks the named gate as probed.
//
func (c *Circuit) AddProbe(name string) error {
	g, ok := c.gates[name]
	if !ok {
		return &gatesim.UnknownGateError{Name: name}
	}
	g.probed = true
	return nil
}

// Link resolves gate inputs and builds fan-out lists.
//
func (c *Circuit) Link() error {
	if c.linked {
		return nil
	}
	for _, g := range c.order {
		g.fanout, g.outs = nil, nil
	}
	for _, g := range c.order {
		g.inputs = make([]*Gate, len(g.in))
		for i, n := range g.in {
			in, ok := c.gates[n]
			if !ok {
				return errors.Wrapf(&gatesim.UnknownGateError{Name: n}, "input %d of gate %s", i, g.name)
			}
			g.inputs[i] = in
			// gates are visited once, so a duplicate can only be the last entry.
			if k := len(in.outs); k > 0 && in.outs[k-1] == g {
				continue
			}
			in.outs = append(in.outs, g)
			in.fanout = append(in.fanout, g)
		}
	}
	c.linked = true
	return nil
}

// Gate returns the named gate. It implements gatesim.Graph.
//
func (c *Circuit) Gate(name string) (gatesim.Gate, error) {
	if err := c.Link(); err != nil {
		return nil, err
	}
	g, ok := c.gates[name]
	if !ok {
		return nil, &gatesim.UnknownGateError{Name: name}
	}
	return g, nil
}

// Lookup returns the named gate or nil if it does not exist.
//
func (c *Circuit) Lookup(name string) *Gate {
	return c.gates[name]
}

// Gates returns all gates in the order they were added.
//
func (c *Circuit) Gates() []*Gate {
	return c.order
}

// Tables returns all truth tables sorted by name.
//
func (c *Circuit) Tables() []*TruthTable {
	ts := make([]*TruthTable, 0, len(c.tables))
	for _, t := range c.tables {
		ts = append(ts, t)
	}
	sort.Slice(ts, func(i, j int) bool { return ts[i].Name < ts[j].Name })
	return ts
}

// Types returns all gate types sorted by name.
//
func (c *Circuit) Types() []*GateType {
	ts := make([]*GateType, 0, len(c.types))
	for _, t := range c.types {
		ts = append(ts, t)
	}
	sort.Slice(ts, func(i, j int) bool { return ts[i].Name < ts[j].Name })
	return ts
}

// ProbeAll probes every gate in the circuit. UndoProbeAll restores the
// probe flags as they were before the call.
//
func (c *Circuit) ProbeAll() {
	for _, g := range c.order {
		if !g.probed {
			g.probed = true
			c.undo = append(c.undo, g)
		}
	}
}

// UndoProbeAll removes the probes set by ProbeAll.
//
func (c *Circuit) UndoProbeAll() {
	for _, g := range c.undo {
		g.probed = false
	}
	c.undo = nil
}

// Settle adds to s a transition at the given time for every gate whose output
// does not match its truth table for its current inputs.
//
// Gates start with an output of 0 and are only evaluated when one of their
// inputs changes, so an inverter whose input never changes keeps its initial
// output. Settling before applying stimuli fixes that.
//
func (c *Circuit) Settle(s *gatesim.Simulation, time int) error {
	if err := c.Link(); err != nil {
		return err
	}
	for _, g := range c.order {
		if v := g.NextOutput(); v != g.out {
			if err := s.AddTransition(g.name, v, time); err != nil {
				return err
			}
		}
	}
	return nil
}
