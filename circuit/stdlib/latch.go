// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package stdlib

import (
	"github.com/db47h/gatesim/circuit"
	"github.com/pkg/errors"
)

// Latches hold their state through a feedback loop between two nor gates.
// Since gates start at 0, Circuit.Settle alone leaves q and qn equal and the
// loop oscillates forever. Either set or reset must be asserted by a stimulus
// at the time the circuit is settled.

func (b *builder) srLatch(s, r string) (q, qn string) {
	q = b.gate("q", "nor", r, b.name+".qn")
	qn = b.gate("qn", "nor", s, q)
	return q, qn
}

// SRLatch adds a set-reset latch to c.
//
//	Inputs: s, r
//	Outputs: q, qn
//	Function: if s { q = 1 } else if r { q = 0 } // else q holds its value
//	          qn = !q
//
// s and r must not be set at the same time.
//
func SRLatch(c *circuit.Circuit, name, s, r string) (q, qn string, err error) {
	bld := builder{c: c, name: name}
	q, qn = bld.srLatch(s, r)
	return q, qn, errors.Wrap(bld.err, name)
}

// DLatch adds a gated data latch to c.
//
//	Inputs: d, en
//	Outputs: q, qn
//	Function: if en { q = d } // else q holds its value
//	          qn = !q
//
// en must be set when the circuit is settled.
//
func DLatch(c *circuit.Circuit, name, d, en string) (q, qn string, err error) {
	bld := builder{c: c, name: name}
	nd := bld.gate("nd", "not", d)
	s := bld.gate("s", "and", d, en)
	r := bld.gate("r", "and", nd, en)
	q, qn = bld.srLatch(s, r)
	return q, qn, errors.Wrap(bld.err, name)
}
