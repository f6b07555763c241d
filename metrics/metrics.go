// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package metrics exports Prometheus metrics for simulation runs.
package metrics

import (
	"github.com/db47h/gatesim"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "gatesim"

// Collector holds the metrics of a simulation run.
type Collector struct {
	Steps     prometheus.Counter
	Applied   prometheus.Counter
	Dropped   prometheus.Counter
	Scheduled prometheus.Counter
	Probes    prometheus.Counter
	Pending   prometheus.Gauge
	SimTime   prometheus.Gauge
}

// New creates the metrics and registers them with reg.
func New(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		Steps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "steps_total",
			Help:      "Number of simulation steps processed.",
		}),
		Applied: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transitions_applied_total",
			Help:      "Number of transitions that changed a gate output.",
		}),
		Dropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transitions_dropped_total",
			Help:      "Number of transitions discarded because they would not change a gate output.",
		}),
		Scheduled: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transitions_scheduled_total",
			Help:      "Number of transitions queued by fan-out expansion.",
		}),
		Probes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "probe_records_total",
			Help:      "Number of probe records.",
		}),
		Pending: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "queue_pending",
			Help:      "Number of transitions in the event queue after the last step.",
		}),
		SimTime: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "simulated_time",
			Help:      "Simulated time of the last step.",
		}),
	}
	for _, m := range []prometheus.Collector{c.Steps, c.Applied, c.Dropped, c.Scheduled, c.Probes, c.Pending, c.SimTime} {
		if err := reg.Register(m); err != nil {
			return nil, errors.Wrap(err, "register metrics")
		}
	}
	return c, nil
}

// Hooks returns simulation hooks that update the metrics.
func (c *Collector) Hooks() gatesim.Hooks {
	return gatesim.Hooks{
		OnApply: func(t gatesim.Transition) {
			c.Applied.Inc()
			if t.Gate.Probed() {
				c.Probes.Inc()
			}
		},
		OnDrop:     func(gatesim.Transition) { c.Dropped.Inc() },
		OnSchedule: func(gatesim.Transition) { c.Scheduled.Inc() },
		OnStep: func(time, applied, dropped, pending int) {
			c.Steps.Inc()
			c.Pending.Set(float64(pending))
			c.SimTime.Set(float64(time))
		},
	}
}
