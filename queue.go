// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gatesim

import "container/heap"

// transitions implements heap.Interface. Ties on Time are broken by ID so that
// transitions for the same instant come out in creation order.
type transitions []Transition

func (h transitions) Len() int { return len(h) }

func (h transitions) Less(i, j int) bool {
	if h[i].Time != h[j].Time {
		return h[i].Time < h[j].Time
	}
	return h[i].ID < h[j].ID
}

func (h transitions) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *transitions) Push(x interface{}) { *h = append(*h, x.(Transition)) }

func (h *transitions) Pop() interface{} {
	old := *h
	n := len(old) - 1
	t := old[n]
	old[n] = Transition{}
	*h = old[:n]
	return t
}

// EventQueue holds pending transitions ordered by time.
//
// The zero value is an empty queue ready to use.
//
type EventQueue struct {
	h transitions
}

// Len returns the number of queued transitions.
//
func (q *EventQueue) Len() int { return len(q.h) }

// Push adds t to the queue.
//
func (q *EventQueue) Push(t Transition) {
	heap.Push(&q.h, t)
}

// Min returns the earliest transition in the queue without removing it. The
// second return value is false if the queue is empty. Calling Min repeatedly
// without modifying the queue returns the same transition.
//
func (q *EventQueue) Min() (Transition, bool) {
	if len(q.h) == 0 {
		return Transition{}, false
	}
	return q.h[0], true
}

// PopMin removes and returns the earliest transition in the queue. The second
// return value is false if the queue is empty.
//
func (q *EventQueue) PopMin() (Transition, bool) {
	if len(q.h) == 0 {
		return Transition{}, false
	}
	return heap.Pop(&q.h).(Transition), true
}
