// Package taskproc implements the task process: the seven-phase lifecycle
// (sleep, dependency barrier, per-dependency network transfer, RAM
// acquisition, CPU acquisition, execution, release and signal) that drives
// a single task from creation to its completion signal.
//
// Each phase is a plain closure scheduled onto an engine.Clock in
// continuation-passing style: there are no goroutines and no channels,
// only callbacks that schedule the next callback.
package taskproc
