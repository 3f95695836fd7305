package resource

import (
	"github.com/gammazero/deque"
	"github.com/taskgraph-sim/tasksim/internal/engine"
)

// Seizable is a counted resource with capacity slots, each held by at most
// one requester at a time. It backs both host CPU cores and network links
// (the latter always with capacity 1).
type Seizable struct {
	capacity int
	inUse    int
	waiters  deque.Deque[*engine.Event]
}

// NewSeizable returns a Seizable with the given capacity and no slots in
// use. capacity must be > 0.
func NewSeizable(capacity int) *Seizable {
	if capacity <= 0 {
		panic("resource: seizable capacity must be > 0")
	}
	return &Seizable{capacity: capacity}
}

// Capacity returns the resource's total slot count.
func (s *Seizable) Capacity() int {
	return s.capacity
}

// InUse returns the number of slots currently held.
func (s *Seizable) InUse() int {
	return s.inUse
}

// Request returns an event that fires once a slot is granted. If a slot is
// free right now, the event fires immediately (on the next clock tick, per
// Event.Trigger/Await semantics); otherwise the request joins the FIFO
// wait queue and fires only when Release reaches it.
func (s *Seizable) Request(clock *engine.Clock) *engine.Event {
	ev := engine.NewEvent()
	if s.inUse < s.capacity {
		s.inUse++
		ev.Trigger(clock)
		return ev
	}
	s.waiters.PushBack(ev)
	return ev
}

// Release frees one slot. If waiters are queued, the slot is handed to the
// head of the queue (skipping, but not granting, any waiter that was
// aborted in the meantime) rather than left free for a future arrival.
func (s *Seizable) Release(clock *engine.Clock) {
	if s.inUse <= 0 {
		panic("resource: release of seizable with no slot in use")
	}
	s.inUse--
	for s.waiters.Len() > 0 {
		ev := s.waiters.PopFront()
		if ev.Aborted() {
			continue
		}
		s.inUse++
		ev.Trigger(clock)
		return
	}
}
