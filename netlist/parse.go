// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package netlist parses circuit descriptions.
//
// A netlist is a line oriented list of commands:
//
//	table <name> <out0> <out1> ...     truth table
//	type <name> <table> <delay>        gate type
//	gate <name> <type> <input> ...     gate
//	probe <gate>                       record changes of a gate's output
//	flip <gate> <value> <time>         stimulus
//	done                               end of the circuit description
//
// Blank lines and lines starting with # are ignored. Gates, probes and flips
// may refer to gates declared further down.
//
// Anything after done is ignored, except for an optional layout section
// starting with a line containing the single word layout. The rest of the
// input is then taken as a free form layout description, minus any XML
// declaration or DOCTYPE line.
//
package netlist

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/db47h/gatesim"
	"github.com/db47h/gatesim/circuit"
	"github.com/pkg/errors"
)

// A Flip is a stimulus: the output of Gate becomes Value at Time.
//
type Flip struct {
	Gate  string
	Value int
	Time  int
}

// Netlist is a parsed netlist.
//
type Netlist struct {
	Circuit *circuit.Circuit
	Flips   []Flip
	Layout  string
}

// Simulation returns a new simulation of n's circuit, with n's flips as
// stimuli.
//
func (n *Netlist) Simulation(opts ...gatesim.Option) (*gatesim.Simulation, error) {
	s := gatesim.New(n.Circuit, opts...)
	for _, f := range n.Flips {
		if err := s.AddTransition(f.Gate, f.Value, f.Time); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// ParseString parses the netlist in s.
//
func ParseString(s string) (*Netlist, error) {
	return Parse(strings.NewReader(s))
}

// layout sections may hold long SVG lines.
const maxLine = 16 << 20

// ref is a reference to a gate from a probe or flip command, resolved once the
// whole circuit is known.
type ref struct {
	line int
	gate string
}

type parser struct {
	n      *Netlist
	gates  []ref
	probes []ref
	flips  []ref
}

// Parse reads a netlist from r.
//
func Parse(r io.Reader) (*Netlist, error) {
	p := &parser{n: &Netlist{Circuit: circuit.New()}}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLine)
	line := 0
	done := false
	for !done && sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		var err error
		done, err = p.command(line, fields)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
	}
	if done {
		p.n.Layout = readLayout(sc)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "read netlist")
	}
	if err := p.resolve(); err != nil {
		return nil, err
	}
	return p.n, nil
}

func (p *parser) command(line int, f []string) (done bool, err error) {
	c := p.n.Circuit
	switch cmd, args := f[0], f[1:]; cmd {
	case "table":
		if len(args) < 2 {
			return false, errors.New("table: expected a name and at least one output value")
		}
		outs, err := atois(args[1:])
		if err != nil {
			return false, errors.Wrap(err, "table "+args[0])
		}
		return false, c.AddTruthTable(args[0], outs)
	case "type":
		if len(args) != 3 {
			return false, errors.New("invalid number of arguments for gate type")
		}
		delay, err := strconv.Atoi(args[2])
		if err != nil {
			return false, errors.Wrap(err, "type "+args[0])
		}
		return false, c.AddGateType(args[0], args[1], delay)
	case "gate":
		if len(args) < 2 {
			return false, errors.New("gate: expected a name and a type")
		}
		if err := c.AddGate(args[0], args[1], args[2:]); err != nil {
			return false, err
		}
		p.gates = append(p.gates, ref{line, args[0]})
	case "probe":
		if len(args) != 1 {
			return false, errors.New("invalid number of arguments for probe")
		}
		p.probes = append(p.probes, ref{line, args[0]})
	case "flip":
		if len(args) != 3 {
			return false, errors.New("invalid number of arguments for flip")
		}
		vt, err := atois(args[1:])
		if err != nil {
			return false, errors.Wrap(err, "flip "+args[0])
		}
		if !circuit.ValidValue(vt[0]) {
			return false, errors.Errorf("flip %s: invalid value %d", args[0], vt[0])
		}
		p.flips = append(p.flips, ref{line, args[0]})
		p.n.Flips = append(p.n.Flips, Flip{Gate: args[0], Value: vt[0], Time: vt[1]})
	case "done":
		return true, nil
	default:
		return false, errors.Errorf("unknown command %q", cmd)
	}
	return false, nil
}

func (p *parser) resolve() error {
	c := p.n.Circuit
	for _, r := range p.gates {
		for i, in := range c.Lookup(r.gate).InputNames() {
			if c.Lookup(in) == nil {
				return errors.Wrapf(&gatesim.UnknownGateError{Name: in}, "line %d: gate %s: input %d", r.line, r.gate, i)
			}
		}
	}
	if err := c.Link(); err != nil {
		return err
	}
	for _, r := range p.probes {
		if err := c.AddProbe(r.gate); err != nil {
			return errors.Wrapf(err, "line %d: probe", r.line)
		}
	}
	for _, r := range p.flips {
		if _, err := c.Gate(r.gate); err != nil {
			return errors.Wrapf(err, "line %d: flip", r.line)
		}
	}
	return nil
}

func atois(s []string) ([]int, error) {
	out := make([]int, len(s))
	for i, v := range s {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, errors.Errorf("invalid integer %q", v)
		}
		out[i] = n
	}
	return out, nil
}

func readLayout(sc *bufio.Scanner) string {
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) == "layout" {
			break
		}
	}
	var b strings.Builder
	for sc.Scan() {
		l := sc.Text()
		if (strings.HasPrefix(l, "<?xml") || strings.HasPrefix(l, "<!DOCTYPE")) && strings.HasSuffix(l, ">") {
			continue
		}
		b.WriteString(l)
		b.WriteByte('\n')
	}
	return b.String()
}
