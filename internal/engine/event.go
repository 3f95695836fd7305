package engine

// Event is a one-shot signal: Pending until Trigger is called, then
// Triggered forever after. Processes suspend by calling Await; they resume
// at the virtual instant the event is triggered (or, if it is already
// triggered, at the virtual instant Await is called, once the current
// callback returns).
type Event struct {
	triggered   bool
	aborted     bool
	subscribers []Callback
}

// NewEvent returns a pending Event.
func NewEvent() *Event {
	return &Event{}
}

// Triggered reports whether the event has already fired.
func (e *Event) Triggered() bool {
	return e.triggered
}

// Aborted reports whether the event was marked aborted before it fired.
// Resources that hold one-shot request events in a wait queue use this to
// skip a waiter that gave up before being granted, without disturbing FIFO
// order for everyone behind it.
func (e *Event) Aborted() bool {
	return e.aborted
}

// Abort marks a still-pending event as aborted. It is a no-op once the
// event has already triggered. No part of the task process in this package
// calls Abort; it exists as a primitive for resources (and any future
// extension, e.g. request timeouts) to use.
func (e *Event) Abort() {
	if !e.triggered {
		e.aborted = true
	}
}

// Await suspends the caller until the event fires, then resumes cb with the
// virtual time at which it fired. If the event has already triggered, cb
// runs on the next tick of the clock: at the same virtual time, after the
// current callback returns (not synchronously), preserving the
// rule that a callback's own continuation never observes effects from
// deeper in the same call stack out of order.
func (e *Event) Await(clock *Clock, cb Callback) {
	if e.triggered {
		clock.Schedule(0, cb)
		return
	}
	e.subscribers = append(e.subscribers, cb)
}

// Trigger fires the event. It panics if the event has already been
// triggered: each Event in this simulator is meant to fire exactly once
// (completion signals, resource grants), and a second call indicates a bug
// in the caller rather than a condition to recover from. Every subscriber
// registered via Await is scheduled to resume at the current virtual time,
// in the order it subscribed.
func (e *Event) Trigger(clock *Clock) {
	if e.triggered {
		panic("engine: event triggered twice")
	}
	e.triggered = true
	subs := e.subscribers
	e.subscribers = nil
	for _, cb := range subs {
		clock.Schedule(0, cb)
	}
}
