// Package engine implements the virtual-time scheduler that drives the
// simulation: a min-heap event queue (Clock) and a one-shot signal type
// (Event) that simulated processes suspend on. Nothing in this package
// touches a real OS thread or a real clock; "now" only advances when the
// event queue says so.
package engine
