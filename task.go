package tasksim

import "github.com/taskgraph-sim/tasksim/internal/model"

// Task is an indivisible unit of work: the declarative description of one
// task as read from the tasks source, before dependency names have been
// resolved to indices.
type Task = model.Task

// TaskSet is the validated, index-resolved collection of tasks produced by
// the loader/validator pipeline and consumed by the simulator driver.
type TaskSet = model.TaskSet

// NewTaskSet validates and resolves a flat task list into a TaskSet: names
// must be unique and non-empty, every dependency name must resolve to a
// task in the same set, and the dependency graph must be a DAG (no
// self-loops or cycles).
func NewTaskSet(tasks []Task) (*TaskSet, error) {
	return model.NewTaskSet(tasks)
}
