// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gatesim

import (
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// An Option configures a Simulation.
//
type Option func(s *Simulation)

// WithLogger sets the logger used by the simulation. Steps are logged at debug
// level. By default, nothing is logged.
//
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Simulation) { s.log = l }
}

// WithHooks sets callbacks invoked during the simulation.
//
func WithHooks(h Hooks) Option {
	return func(s *Simulation) { s.hooks = h }
}

// Simulation is a simulation run over a circuit graph.
//
type Simulation struct {
	g       Graph
	stimuli []Transition
	q       EventQueue
	probes  Probes
	batch   []Transition // transitions applied during the current step
	now     int
	steps   int
	done    bool

	log   logrus.FieldLogger
	hooks Hooks
}

// New returns a new simulation over the given graph.
//
func New(g Graph, opts ...Option) *Simulation {
	s := &Simulation{g: g}
	for _, o := range opts {
		o(s)
	}
	if s.log == nil {
		l := logrus.New()
		l.Out = io.Discard
		s.log = l
	}
	return s
}

// AddTransition adds a stimulus: the named gate's output will be set to output
// at the given time. Stimuli are queued by Seed or Run.
//
func (s *Simulation) AddTransition(gate string, output, time int) error {
	g, err := s.g.Gate(gate)
	if err != nil {
		return errors.Wrap(err, "add transition")
	}
	s.stimuli = append(s.stimuli, NewTransition(g, output, time))
	return nil
}

// Seed sorts the pending stimuli by time and moves them into the event queue.
//
func (s *Simulation) Seed() {
	SortTransitions(s.stimuli)
	for _, t := range s.stimuli {
		s.q.Push(t)
	}
	s.log.WithField("count", len(s.stimuli)).Debug("seeded stimuli")
	s.stimuli = nil
}

// Pending returns the number of transitions in the event queue.
//
func (s *Simulation) Pending() int {
	return s.q.Len()
}

// Now returns the time of the last processed step.
//
func (s *Simulation) Now() int {
	return s.now
}

// Steps returns the number of steps processed so far.
//
func (s *Simulation) Steps() int {
	return s.steps
}

// Step processes all the transitions queued for the earliest pending time and
// returns that time.
//
// All transitions for that time are applied before any downstream gate is
// evaluated, so that gates see the fully updated state of their inputs. Then,
// for every applied transition, a new transition is queued for each gate in
// its fan-out.
//
// Step returns ErrEmptyQueue if there is nothing to process.
//
func (s *Simulation) Step() (int, error) {
	first, ok := s.q.Min()
	if !ok {
		return 0, ErrEmptyQueue
	}
	now := first.Time
	if now < s.now && s.steps > 0 {
		return now, errors.Errorf("transition for gate %s at time %d scheduled before current time %d", first.Gate.Name(), now, s.now)
	}

	s.batch = s.batch[:0]
	dropped := 0
	for {
		t, ok := s.q.Min()
		if !ok || t.Time != now {
			break
		}
		s.q.PopMin()
		if !t.Valid() {
			dropped++
			s.hooks.drop(t)
			continue
		}
		if err := t.Apply(); err != nil {
			return now, errors.Wrapf(err, "gate %s at time %d", t.Gate.Name(), now)
		}
		if t.Gate.Probed() {
			s.probes = append(s.probes, Probe{Time: now, Gate: t.Gate.Name(), Value: t.Output})
		}
		s.batch = append(s.batch, t)
		s.hooks.apply(t)
	}

	// fan-out expansion only after the whole batch has been applied.
	for _, t := range s.batch {
		for _, g := range t.Gate.Fanout() {
			nt := NewTransition(g, g.NextOutput(), g.NextTransitionTime(now))
			if nt.Time < now {
				return now, errors.Errorf("gate %s: transition time %d before current time %d", g.Name(), nt.Time, now)
			}
			s.q.Push(nt)
			s.hooks.schedule(nt)
		}
	}

	s.now = now
	s.steps++
	s.hooks.step(now, len(s.batch), dropped, s.q.Len())
	s.log.WithFields(logrus.Fields{
		"time":    now,
		"applied": len(s.batch),
		"dropped": dropped,
		"pending": s.q.Len(),
	}).Debug("step")
	return now, nil
}

// Finish sorts the probe log by time and marks the simulation as complete.
// Run calls Finish once the event queue is empty; callers driving the
// simulation with Step must call it themselves.
//
func (s *Simulation) Finish() {
	s.probes.Sort()
	s.done = true
}

// Abort discards the probe log and marks the simulation as complete.
//
func (s *Simulation) Abort() {
	s.probes = nil
	s.done = true
}

// Run seeds the event queue with the stimuli and steps through the simulation
// until the queue is empty.
//
// Run does not return if the circuit oscillates. On error, the probe log is
// discarded.
//
func (s *Simulation) Run() error {
	if s.done {
		return ErrAlreadyRun
	}
	s.Seed()
	for s.q.Len() > 0 {
		if _, err := s.Step(); err != nil {
			s.Abort()
			return err
		}
	}
	s.Finish()
	s.log.WithFields(logrus.Fields{
		"steps":  s.steps,
		"time":   s.now,
		"probes": len(s.probes),
	}).Debug("simulation complete")
	return nil
}

// Probes returns the probe log. Once the simulation is complete, the log is
// sorted by time. The returned slice must not be modified.
//
func (s *Simulation) Probes() Probes {
	return s.probes
}

// VisibleProbes returns the records of the probe log for gates that are
// probed at the time of the call.
//
func (s *Simulation) VisibleProbes() Probes {
	return s.probes.Filter(func(p Probe) bool {
		g, err := s.g.Gate(p.Gate)
		return err == nil && g.Probed()
	})
}
