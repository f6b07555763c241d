// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gatesim

import (
	"sort"
	"sync/atomic"
)

// A Gate is the view of a circuit element the simulator works with. Gates are
// owned by the circuit; the simulator only keeps references to them.
//
type Gate interface {
	// Name returns the gate name.
	Name() string
	// Output returns the current output value.
	Output() int
	// SetOutput sets the current output value.
	SetOutput(v int)
	// Fanout returns the gates connected to this gate's output. Each gate must
	// appear only once.
	Fanout() []Gate
	// NextOutput computes the gate's output from the current values of its
	// inputs.
	NextOutput() int
	// NextTransitionTime returns the time at which a change of inputs at time
	// now shows on the gate's output.
	NextTransitionTime(now int) int
	// Probed returns true if changes of this gate's output must be recorded.
	Probed() bool
}

// A Graph gives access to gates by name.
//
type Graph interface {
	// Gate returns the named gate. It must return an *UnknownGateError if
	// there is no such gate.
	Gate(name string) (Gate, error)
}

var transitionID uint64

// A Transition is a request for a gate's output to become Output at the given
// Time.
//
type Transition struct {
	Gate   Gate
	Output int
	Time   int
	// ID is a sequence number, unique within the process. It only serves
	// diagnostics and breaks ties in the event queue.
	ID uint64
}

// NewTransition returns a new transition for gate g.
//
func NewTransition(g Gate, output, time int) Transition {
	return Transition{
		Gate:   g,
		Output: output,
		Time:   time,
		ID:     atomic.AddUint64(&transitionID, 1),
	}
}

// Valid returns true if applying the transition would change the gate's
// output. The check is made against the gate's output at the time of the call.
//
func (t *Transition) Valid() bool {
	return t.Output != t.Gate.Output()
}

// Apply sets the gate's output to t.Output. It returns ErrInvalidTransition if
// t is not valid.
//
func (t *Transition) Apply() error {
	if !t.Valid() {
		return ErrInvalidTransition
	}
	t.Gate.SetOutput(t.Output)
	return nil
}

// SortTransitions sorts ts by time. Transitions with the same time keep their
// relative order.
//
func SortTransitions(ts []Transition) {
	sort.SliceStable(ts, func(i, j int) bool { return ts[i].Time < ts[j].Time })
}
