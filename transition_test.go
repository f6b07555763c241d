package gatesim_test

import (
	"testing"

	"github.com/db47h/gatesim"
	"github.com/pkg/errors"
)

// testGate is a minimal Gate implementation.
type testGate struct {
	name   string
	out    int
	fanout []gatesim.Gate
	next   func() int
	delay  int
	probed bool
	sets   int
}

func (g *testGate) Name() string           { return g.name }
func (g *testGate) Output() int            { return g.out }
func (g *testGate) SetOutput(v int)        { g.out = v; g.sets++ }
func (g *testGate) Fanout() []gatesim.Gate { return g.fanout }
func (g *testGate) Probed() bool           { return g.probed }

func (g *testGate) NextOutput() int {
	if g.next == nil {
		return g.out
	}
	return g.next()
}

func (g *testGate) NextTransitionTime(now int) int { return now + g.delay }

type testGraph map[string]*testGate

func (tg testGraph) Gate(name string) (gatesim.Gate, error) {
	g, ok := tg[name]
	if !ok {
		return nil, &gatesim.UnknownGateError{Name: name}
	}
	return g, nil
}

func TestTransition_Apply(t *testing.T) {
	g := &testGate{name: "g"}
	tr := gatesim.NewTransition(g, 0, 0)
	if tr.Valid() {
		t.Fatal("transition to current value reported valid")
	}
	if err := tr.Apply(); errors.Cause(err) != gatesim.ErrInvalidTransition {
		t.Fatalf("Apply() = %v, expected %v", err, gatesim.ErrInvalidTransition)
	}
	if g.sets != 0 {
		t.Fatal("invalid transition modified the gate")
	}

	tr = gatesim.NewTransition(g, 1, 0)
	if !tr.Valid() {
		t.Fatal("transition to a new value reported invalid")
	}
	if err := tr.Apply(); err != nil {
		t.Fatal(err)
	}
	if g.out != 1 {
		t.Fatalf("gate output = %d after Apply, expected 1", g.out)
	}
	// validity is checked against the gate's current state
	if tr.Valid() {
		t.Fatal("applied transition still reported valid")
	}
}

func TestNewTransition_ids(t *testing.T) {
	a := gatesim.NewTransition(nil, 0, 0)
	b := gatesim.NewTransition(nil, 0, 0)
	if b.ID <= a.ID {
		t.Fatalf("transition ids not increasing: %d then %d", a.ID, b.ID)
	}
}

func TestSortTransitions(t *testing.T) {
	var ts []gatesim.Transition
	for _, tm := range []int{4, 1, 4, 0, 1, 4} {
		ts = append(ts, gatesim.NewTransition(nil, 0, tm))
	}
	// shuffle ids within equal times: sort must keep slice order, not id order.
	ts[0], ts[2] = ts[2], ts[0]
	first4 := ts[0].ID
	gatesim.SortTransitions(ts)
	exp := []int{0, 1, 1, 4, 4, 4}
	for i, tr := range ts {
		if tr.Time != exp[i] {
			t.Fatalf("ts[%d].Time = %d, expected %d", i, tr.Time, exp[i])
		}
	}
	if ts[3].ID != first4 {
		t.Fatal("sort is not stable")
	}
}
