package resource

import (
	"github.com/gammazero/deque"
	"github.com/taskgraph-sim/tasksim/internal/engine"
)

// ErrInvalidAmount is returned by Container.Get and Container.Put when the
// requested amount exceeds the container's capacity. This is a
// configuration error, not a blocking condition: a task whose RAM
// requirement exceeds its host's RAM capacity can never be satisfied, so
// the simulator must fail fast here rather than block forever.
type invalidAmountError struct{}

func (invalidAmountError) Error() string { return "resource: amount exceeds container capacity" }

// ErrInvalidAmount is the sentinel error value for invalidAmountError.
var ErrInvalidAmount error = invalidAmountError{}

type pendingRequest struct {
	amount int
	event  *engine.Event
}

// Container models a continuous quantity in [0, capacity] — host RAM. It
// has two independent FIFO wait queues, one for callers blocked on Get and
// one for callers blocked on Put, each drained head-of-line: if the
// request at the front of a queue cannot yet be satisfied, later entries
// in that same queue are left untouched even if they could be.
type Container struct {
	capacity int
	level    int
	getQueue deque.Deque[*pendingRequest]
	putQueue deque.Deque[*pendingRequest]
}

// NewContainer returns a Container with the given capacity and initial
// level. capacity must be > 0 and 0 <= initialLevel <= capacity.
func NewContainer(capacity, initialLevel int) *Container {
	if capacity <= 0 {
		panic("resource: container capacity must be > 0")
	}
	if initialLevel < 0 || initialLevel > capacity {
		panic("resource: initial level out of range")
	}
	return &Container{capacity: capacity, level: initialLevel}
}

// Capacity returns the container's capacity.
func (c *Container) Capacity() int {
	return c.capacity
}

// Level returns the container's current level.
func (c *Container) Level() int {
	return c.level
}

// Get requests to withdraw n units. It returns ErrInvalidAmount immediately
// if n is negative or exceeds the container's capacity — no amount of
// waiting could ever satisfy such a request. Otherwise it returns an event
// that fires once n units have been withdrawn, either immediately (if the
// current level already covers it) or once enough Puts have accumulated
// ahead of it in FIFO order.
func (c *Container) Get(clock *engine.Clock, n int) (*engine.Event, error) {
	if n < 0 || n > c.capacity {
		return nil, ErrInvalidAmount
	}
	ev := engine.NewEvent()
	if n == 0 || c.level >= n {
		c.level -= n
		ev.Trigger(clock)
		c.drainPutQueue(clock)
		return ev, nil
	}
	c.getQueue.PushBack(&pendingRequest{amount: n, event: ev})
	return ev, nil
}

// Put requests to deposit n units, symmetric to Get.
func (c *Container) Put(clock *engine.Clock, n int) (*engine.Event, error) {
	if n < 0 || n > c.capacity {
		return nil, ErrInvalidAmount
	}
	ev := engine.NewEvent()
	if n == 0 || c.level+n <= c.capacity {
		c.level += n
		ev.Trigger(clock)
		c.drainGetQueue(clock)
		return ev, nil
	}
	c.putQueue.PushBack(&pendingRequest{amount: n, event: ev})
	return ev, nil
}

// drainGetQueue grants queued Gets while the head of the queue can be
// satisfied at the current level, stopping at the first one that cannot —
// head-of-line blocking, per the container's FIFO contract.
func (c *Container) drainGetQueue(clock *engine.Clock) {
	for c.getQueue.Len() > 0 {
		req := c.getQueue.Front()
		if req.event.Aborted() {
			c.getQueue.PopFront()
			continue
		}
		if c.level < req.amount {
			return
		}
		c.getQueue.PopFront()
		c.level -= req.amount
		req.event.Trigger(clock)
	}
}

// drainPutQueue is the Put-side mirror of drainGetQueue.
func (c *Container) drainPutQueue(clock *engine.Clock) {
	for c.putQueue.Len() > 0 {
		req := c.putQueue.Front()
		if req.event.Aborted() {
			c.putQueue.PopFront()
			continue
		}
		if c.level+req.amount > c.capacity {
			return
		}
		c.putQueue.PopFront()
		c.level += req.amount
		req.event.Trigger(clock)
	}
}
