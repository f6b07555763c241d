// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gatesim

import "sort"

// A Probe records a change of a probed gate's output.
//
type Probe struct {
	Time  int
	Gate  string
	Value int
}

// Probes is a probe log.
//
type Probes []Probe

// Sort sorts the log by time. Records with the same time keep their relative
// order.
//
func (p Probes) Sort() {
	sort.SliceStable(p, func(i, j int) bool { return p[i].Time < p[j].Time })
}

// Filter returns the records for which keep returns true.
//
func (p Probes) Filter(keep func(Probe) bool) Probes {
	var out Probes
	for _, r := range p {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}
