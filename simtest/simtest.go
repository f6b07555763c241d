// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package simtest provides utility functions for testing circuit simulations.
//
package simtest

import (
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/db47h/gatesim"
	"github.com/db47h/gatesim/circuit/stdlib"
	"github.com/db47h/gatesim/netlist"
	"github.com/google/go-cmp/cmp"
)

// EqualProbes fails the test if got and want differ.
//
func EqualProbes(t testing.TB, got, want gatesim.Probes) {
	t.Helper()
	if len(got) == 0 && len(want) == 0 {
		return
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("probe log mismatch (-want +got):\n%s", diff)
	}
}

// Preamble returns netlist lines declaring the standard gates of package
// stdlib with the given delay.
//
func Preamble(delay int) string {
	var b strings.Builder
	for i := range stdlib.Gates {
		s := &stdlib.Gates[i]
		b.WriteString("table ")
		b.WriteString(s.Name)
		for _, v := range s.Table() {
			b.WriteByte(' ')
			b.WriteString(strconv.Itoa(v))
		}
		b.WriteByte('\n')
		d := delay
		if s.Inputs == 0 {
			d = 0
		}
		b.WriteString("type " + s.Name + " " + s.Name + " " + strconv.Itoa(d) + "\n")
	}
	return b.String()
}

// RandomNetlist generates an acyclic netlist with the given number of inputs
// and gates, built from standard gates with a delay in [1, maxDelay]. Every
// gate is probed and each input gets a few random flips.
//
func RandomNetlist(r *rand.Rand, inputs, gates, maxDelay int) string {
	var b strings.Builder
	b.WriteString(Preamble(1))
	for d := 1; d <= maxDelay; d++ {
		for i := range stdlib.Gates {
			s := &stdlib.Gates[i]
			if s.Inputs > 0 {
				b.WriteString("type " + s.Name + "_" + strconv.Itoa(d) + " " + s.Name + " " + strconv.Itoa(d) + "\n")
			}
		}
	}
	var names []string
	for i := 0; i < inputs; i++ {
		n := "in" + strconv.Itoa(i)
		names = append(names, n)
		b.WriteString("gate " + n + " input\n")
	}
	for i := 0; i < gates; i++ {
		var s *stdlib.Spec
		for s == nil || s.Inputs == 0 {
			s = &stdlib.Gates[r.Intn(len(stdlib.Gates))]
		}
		n := "g" + strconv.Itoa(i)
		b.WriteString("gate " + n + " " + s.Name + "_" + strconv.Itoa(1+r.Intn(maxDelay)))
		for j := 0; j < s.Inputs; j++ {
			b.WriteString(" " + names[r.Intn(len(names))])
		}
		b.WriteByte('\n')
		names = append(names, n)
	}
	for _, n := range names {
		b.WriteString("probe " + n + "\n")
	}
	for i := 0; i < inputs; i++ {
		tm := 0
		for k := r.Intn(4); k > 0; k-- {
			tm += r.Intn(3 * maxDelay)
			b.WriteString("flip in" + strconv.Itoa(i) + " " + strconv.Itoa(r.Intn(2)) + " " + strconv.Itoa(tm) + "\n")
		}
	}
	b.WriteString("done\n")
	return b.String()
}

// CheckRun parses and runs the netlist in src, then checks properties that hold
// for any acyclic circuit:
//
//	- probe records are sorted by time.
//	- consecutive records for the same gate have different values.
//	- every gate that received a transition from fan-out expansion has
//	  settled: its output matches its truth table for its final inputs.
//
// It returns the simulation for further inspection.
//
func CheckRun(t testing.TB, src string) *gatesim.Simulation {
	t.Helper()
	n, err := netlist.ParseString(src)
	if err != nil {
		t.Fatal(err)
	}
	touched := make(map[string]gatesim.Gate)
	sim, err := n.Simulation(gatesim.WithHooks(gatesim.Hooks{
		OnSchedule: func(tr gatesim.Transition) { touched[tr.Gate.Name()] = tr.Gate },
	}))
	if err != nil {
		t.Fatal(err)
	}
	if err = sim.Run(); err != nil {
		t.Fatal(err)
	}

	last := make(map[string]int)
	probes := sim.Probes()
	for i, p := range probes {
		if i > 0 && probes[i-1].Time > p.Time {
			t.Fatalf("probe %d at time %d recorded after time %d", i, p.Time, probes[i-1].Time)
		}
		if v, ok := last[p.Gate]; ok && v == p.Value {
			t.Fatalf("gate %s: no-op change to %d recorded at time %d", p.Gate, p.Value, p.Time)
		}
		last[p.Gate] = p.Value
	}
	for name, g := range touched {
		if out, next := g.Output(), g.NextOutput(); out != next {
			t.Fatalf("gate %s did not settle: output %d, inputs give %d", name, out, next)
		}
	}
	return sim
}
