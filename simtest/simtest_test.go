package simtest_test

import (
	"math/rand"
	"strings"
	"testing"
	"testing/quick"

	"github.com/db47h/gatesim"
	"github.com/db47h/gatesim/circuit/stdlib"
	"github.com/db47h/gatesim/netlist"
	"github.com/db47h/gatesim/simtest"
)

func TestPreamble(t *testing.T) {
	n, err := netlist.ParseString(simtest.Preamble(3) + "done\n")
	if err != nil {
		t.Fatal(err)
	}
	types := n.Circuit.Types()
	for _, s := range stdlib.Gates {
		found := false
		for _, gt := range types {
			if gt.Name != s.Name {
				continue
			}
			found = true
			want := 3
			if s.Inputs == 0 {
				want = 0
			}
			if gt.Delay != want {
				t.Errorf("type %s: delay %d, expected %d", s.Name, gt.Delay, want)
			}
		}
		if !found {
			t.Errorf("type %s not declared", s.Name)
		}
	}
}

func TestRandomNetlist(t *testing.T) {
	a := simtest.RandomNetlist(rand.New(rand.NewSource(42)), 3, 10, 2)
	b := simtest.RandomNetlist(rand.New(rand.NewSource(42)), 3, 10, 2)
	if a != b {
		t.Fatal("same seed generated different netlists")
	}
	if !strings.HasSuffix(a, "done\n") {
		t.Fatal("netlist not terminated")
	}
	if _, err := netlist.ParseString(a); err != nil {
		t.Fatal(err)
	}
}

func TestCheckRun(t *testing.T) {
	f := func(seed int64) bool {
		r := rand.New(rand.NewSource(seed))
		sim := simtest.CheckRun(t, simtest.RandomNetlist(r, 1+r.Intn(3), r.Intn(20), 1+r.Intn(3)))
		return sim.Pending() == 0
	}
	if err := quick.Check(f, nil); err != nil {
		t.Fatal(err)
	}
}

func TestEqualProbes(t *testing.T) {
	simtest.EqualProbes(t, nil, gatesim.Probes{})
	simtest.EqualProbes(t,
		gatesim.Probes{{Time: 1, Gate: "a", Value: 1}},
		gatesim.Probes{{Time: 1, Gate: "a", Value: 1}})
}
