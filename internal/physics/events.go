package physics

import "gopkg.in/eapache/queue.v1"

// EventQueue is a FIFO of contact events.
// The space pushes while stepping; exactly one consumer drains it per tick.
type EventQueue struct {
	q *queue.Queue
}

// NewEventQueue creates an empty queue
func NewEventQueue() *EventQueue {
	return &EventQueue{q: queue.New()}
}

// Push appends an event at the back
func (e *EventQueue) Push(ev ContactEvent) {
	e.q.Add(ev)
}

// Pop removes and returns the oldest event. ok is false when empty.
func (e *EventQueue) Pop() (ev ContactEvent, ok bool) {
	if e.q.Length() == 0 {
		return ContactEvent{}, false
	}
	return e.q.Remove().(ContactEvent), true
}

// Len returns the number of queued events
func (e *EventQueue) Len() int {
	return e.q.Length()
}
