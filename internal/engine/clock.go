package engine

import (
	"github.com/addrummond/heap"
)

// Time is the simulator's virtual clock, in whatever unit the experiment's
// task durations are expressed in. It never relates to wall-clock time.
type Time int64

// Callback is invoked by Clock.Run when a scheduled event's time arrives.
type Callback func(now Time)

// scheduledEvent is one entry in the clock's event queue: a time, a
// monotonic sequence number that breaks ties in insertion order, and the
// callback to invoke.
type scheduledEvent struct {
	time Time
	seq  uint64
	cb   Callback
}

// Cmp orders scheduledEvents by (time, seq), which is what gives the clock
// its two ordering guarantees: non-decreasing time, and insertion order
// among events at the same time.
func (a *scheduledEvent) Cmp(b *scheduledEvent) int {
	if a.time != b.time {
		if a.time < b.time {
			return -1
		}
		return 1
	}
	switch {
	case a.seq < b.seq:
		return -1
	case a.seq > b.seq:
		return 1
	default:
		return 0
	}
}

// Clock is a single-threaded virtual-time event queue. The zero value is
// ready to use.
type Clock struct {
	now     Time
	nextSeq uint64
	pending int
	queue   heap.Heap[scheduledEvent, heap.Min]
}

// NewClock returns a Clock starting at virtual time zero.
func NewClock() *Clock {
	return &Clock{}
}

// Now returns the clock's current virtual time.
func (c *Clock) Now() Time {
	return c.now
}

// Schedule inserts cb to run at now+delay. delay must be >= 0: the clock
// never runs backwards. Events scheduled at the same time as others already
// queued run in the order they were scheduled.
func (c *Clock) Schedule(delay Time, cb Callback) {
	if delay < 0 {
		panic("engine: negative schedule delay")
	}
	seq := c.nextSeq
	c.nextSeq++
	c.pending++
	heap.PushOrderable(&c.queue, scheduledEvent{
		time: c.now + delay,
		seq:  seq,
		cb:   cb,
	})
}

// Run drains the event queue, advancing now to each event's time and
// invoking its callback in order, until the queue is empty. A callback may
// schedule further events, including at the current time; those run after
// the callback that scheduled them returns.
func (c *Clock) Run() {
	for {
		ev, ok := heap.PopOrderable(&c.queue)
		if !ok {
			return
		}
		c.pending--
		c.now = ev.time
		ev.cb(c.now)
	}
}

// Pending reports whether any events remain in the queue.
func (c *Clock) Pending() bool {
	return c.pending > 0
}
