// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gatesim

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidTransition is returned when applying a transition that would
	// not change its gate's output.
	//
	ErrInvalidTransition = errors.New("gate output should not transition to the same value")

	// ErrEmptyQueue is returned by Step when there is nothing left to simulate.
	//
	ErrEmptyQueue = errors.New("event queue is empty")

	// ErrAlreadyRun is returned by Run when called on a completed simulation.
	//
	ErrAlreadyRun = errors.New("simulation already run")
)

// UnknownGateError is returned when a stimulus or a netlist refers to a gate
// that does not exist in the circuit.
//
type UnknownGateError struct {
	Name string
}

func (e *UnknownGateError) Error() string {
	return "unknown gate " + e.Name
}

// IsUnknownGate returns true if the cause of err is an UnknownGateError.
//
func IsUnknownGate(err error) bool {
	_, ok := errors.Cause(err).(*UnknownGateError)
	return ok
}
