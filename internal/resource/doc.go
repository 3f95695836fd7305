// Package resource implements the two concurrency primitives that every
// task process in the simulator contends over: a Seizable counted resource
// (used for CPU cores and network links) and a Container holding a
// continuous level bounded by a capacity (used for host RAM). Both wait
// queues are strict FIFO: a queued waiter that arrived first is granted
// first, and a blocked head-of-queue waiter is never skipped over in favor
// of a later queued one that could otherwise be satisfied. A new Container
// Get or Put that the current level already allows is granted on arrival,
// without regard to waiters already queued on the same side.
package resource
