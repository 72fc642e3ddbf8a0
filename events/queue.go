// Copyright 2018 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// Queue is a FIFO event queue. It is filled by platform
// callbacks during a poll and drained by the render loop
// on the same thread, so it does no locking.
type Queue struct {
	events []Event
}

// Send adds an event to the end of the queue.
func (q *Queue) Send(ev Event) {
	q.events = append(q.events, ev)
}

// Drain removes and returns all events in the queue, in order.
// It returns nil if the queue is empty.
func (q *Queue) Drain() []Event {
	if len(q.events) == 0 {
		return nil
	}
	evs := q.events
	q.events = nil
	return evs
}
