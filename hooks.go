// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gatesim

// Hooks are optional callbacks invoked by a Simulation as it runs. Nil fields
// are ignored. Hooks are called synchronously from Step and must not modify
// the circuit.
//
type Hooks struct {
	// OnApply is called after a transition has been applied.
	OnApply func(t Transition)
	// OnDrop is called for every transition discarded because it would not
	// change its gate's output.
	OnDrop func(t Transition)
	// OnSchedule is called for every transition queued by fan-out expansion.
	OnSchedule func(t Transition)
	// OnStep is called at the end of each step with the step time, the number
	// of applied and dropped transitions, and the resulting queue length.
	OnStep func(time, applied, dropped, pending int)
}

func (h *Hooks) apply(t Transition) {
	if h.OnApply != nil {
		h.OnApply(t)
	}
}

func (h *Hooks) drop(t Transition) {
	if h.OnDrop != nil {
		h.OnDrop(t)
	}
}

func (h *Hooks) schedule(t Transition) {
	if h.OnSchedule != nil {
		h.OnSchedule(t)
	}
}

func (h *Hooks) step(time, applied, dropped, pending int) {
	if h.OnStep != nil {
		h.OnStep(time, applied, dropped, pending)
	}
}
