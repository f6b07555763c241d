package stdlib_test

import (
	"testing"

	"github.com/db47h/gatesim"
	"github.com/db47h/gatesim/circuit"
	"github.com/db47h/gatesim/circuit/stdlib"
)

type flip struct {
	gate  string
	value int
}

// drive runs a new simulation of c with the given flips at time 0, settling c
// first if settle is true. Gate outputs carry over from previous runs.
//
func drive(t *testing.T, c *circuit.Circuit, settle bool, flips ...flip) {
	t.Helper()
	s := gatesim.New(c)
	if settle {
		if err := c.Settle(s, 0); err != nil {
			t.Fatal(err)
		}
	}
	for _, f := range flips {
		if err := s.AddTransition(f.gate, f.value, 0); err != nil {
			t.Fatal(err)
		}
	}
	if err := s.Run(); err != nil {
		t.Fatal(err)
	}
}

func latchCircuit(t *testing.T, inputs ...string) *circuit.Circuit {
	t.Helper()
	c := circuit.New()
	if err := stdlib.Register(c, 1); err != nil {
		t.Fatal(err)
	}
	for _, n := range inputs {
		if err := c.AddGate(n, "input", nil); err != nil {
			t.Fatal(err)
		}
	}
	return c
}

func checkLatch(t *testing.T, c *circuit.Circuit, step, q, qn string, exp int) {
	t.Helper()
	if vq, vqn := c.Lookup(q).Output(), c.Lookup(qn).Output(); vq != exp || vqn != 1-exp {
		t.Fatalf("%s: q = %d, qn = %d, expected %d and %d", step, vq, vqn, exp, 1-exp)
	}
}

func TestSRLatch(t *testing.T) {
	c := latchCircuit(t, "s", "r")
	q, qn, err := stdlib.SRLatch(c, "sr", "s", "r")
	if err != nil {
		t.Fatal(err)
	}
	td := []struct {
		step   string
		settle bool
		flip   flip
		q      int
	}{
		{"reset while settling", true, flip{"r", 1}, 0},
		{"release reset", false, flip{"r", 0}, 0},
		{"set", false, flip{"s", 1}, 1},
		{"hold", false, flip{"s", 0}, 1},
		{"reset", false, flip{"r", 1}, 0},
		{"release reset again", false, flip{"r", 0}, 0},
	}
	for _, d := range td {
		drive(t, c, d.settle, d.flip)
		checkLatch(t, c, d.step, q, qn, d.q)
	}
}

func TestDLatch(t *testing.T) {
	c := latchCircuit(t, "d", "en")
	q, qn, err := stdlib.DLatch(c, "dl", "d", "en")
	if err != nil {
		t.Fatal(err)
	}
	td := []struct {
		step   string
		settle bool
		flips  []flip
		q      int
	}{
		{"enable while settling", true, []flip{{"en", 1}}, 0},
		{"follow d", false, []flip{{"d", 1}}, 1},
		{"disable", false, []flip{{"en", 0}}, 1},
		{"hold", false, []flip{{"d", 0}}, 1},
		{"enable", false, []flip{{"en", 1}}, 0},
	}
	for _, d := range td {
		drive(t, c, d.settle, d.flips...)
		checkLatch(t, c, d.step, q, qn, d.q)
	}
}

func TestLatch_errors(t *testing.T) {
	c := circuit.New()
	if _, _, err := stdlib.SRLatch(c, "sr", "s", "r"); err == nil || err.Error() != "sr: gate sr.q: unknown gate type nor" {
		t.Fatalf("unexpected error %v", err)
	}
	if _, _, err := stdlib.DLatch(c, "dl", "d", "en"); err == nil || err.Error() != "dl: gate dl.nd: unknown gate type not" {
		t.Fatalf("unexpected error %v", err)
	}
}
