// Package model holds the simulator's plain data types — Task, HostConfig,
// ExperimentConfig, and their validated/resolved forms — independent of
// both the engine (virtual clock/events) and the process logic that
// consumes them. Keeping data model and process logic in separate packages
// is what lets both the public tasksim package and the internal taskproc
// package depend on the data model without depending on each other.
package model

import (
	"fmt"

	"github.com/taskgraph-sim/tasksim/internal/depgraph"
)

// Task is an indivisible unit of work: the declarative description of one
// task as read from the tasks source, before dependency names have been
// resolved to indices.
type Task struct {
	Name             string
	Host             string
	InitialSleepTime int64
	RunTime          int64
	RAM              int
	NetworkTime      int64
	Dependencies     []string
}

// Format implements fmt.Formatter, for the "%#v" verb used in log lines
// and debug dumps.
func (t *Task) Format(f fmt.State, verb rune) {
	if verb != 'v' {
		panic("model: unsupported verb")
	}
	if f.Flag('#') {
		fmt.Fprintf(f, "Task %q: host=%s run=%d ram=%d net=%d deps=%v",
			t.Name, t.Host, t.RunTime, t.RAM, t.NetworkTime, t.Dependencies)
		return
	}
	fmt.Fprintf(f, "Task(%s)", t.Name)
}

// ResolvedTask is a Task after dependency names have been resolved to
// indices into the owning TaskSet, per the "arena + indices" design note:
// the simulator's hot path never looks up a task by name again.
type ResolvedTask struct {
	Task
	Index   int
	DepIdxs []int
}

// TaskSet is the validated, index-resolved collection of tasks produced by
// the loader/validator pipeline and consumed by the simulator driver.
type TaskSet struct {
	tasks   []ResolvedTask
	nameIdx map[string]int
}

// NewTaskSet validates and resolves a flat task list into a TaskSet: names
// must be unique and non-empty, every dependency name must resolve to a
// task in the same set, and the dependency graph must be a DAG (no
// self-loops or cycles, checked via depgraph).
func NewTaskSet(tasks []Task) (*TaskSet, error) {
	nameIdx := make(map[string]int, len(tasks))
	for i, t := range tasks {
		if t.Name == "" {
			return nil, fmt.Errorf("%w: task at position %d has empty name", ErrValidation, i)
		}
		if _, dup := nameIdx[t.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate task name %q", ErrValidation, t.Name)
		}
		nameIdx[t.Name] = i
	}

	resolved := make([]ResolvedTask, len(tasks))
	for i, t := range tasks {
		depIdxs := make([]int, 0, len(t.Dependencies))
		for _, depName := range t.Dependencies {
			if depName == t.Name {
				return nil, fmt.Errorf("%w: task %q depends on itself", ErrValidation, t.Name)
			}
			depIdx, ok := nameIdx[depName]
			if !ok {
				return nil, fmt.Errorf("%w: task %q depends on undefined task %q", ErrValidation, t.Name, depName)
			}
			depIdxs = append(depIdxs, depIdx)
		}
		resolved[i] = ResolvedTask{Task: t, Index: i, DepIdxs: depIdxs}
	}

	err := depgraph.ValidateDAG(len(resolved), func(i int) []int {
		return resolved[i].DepIdxs
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	return &TaskSet{tasks: resolved, nameIdx: nameIdx}, nil
}

// Len returns the number of tasks in the set.
func (ts *TaskSet) Len() int {
	return len(ts.tasks)
}

// Index returns the stable index of the task named name, or false if no
// such task exists.
func (ts *TaskSet) Index(name string) (int, bool) {
	idx, ok := ts.nameIdx[name]
	return idx, ok
}

// At returns the task at the given index together with the resolved
// indices of its dependencies, in declaration order.
func (ts *TaskSet) At(idx int) (Task, []int) {
	rt := ts.tasks[idx]
	return rt.Task, rt.DepIdxs
}

// All returns every resolved task, in index order.
func (ts *TaskSet) All() []ResolvedTask {
	return ts.tasks
}
