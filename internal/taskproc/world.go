package taskproc

import (
	"go.uber.org/zap"

	"github.com/taskgraph-sim/tasksim/internal/engine"
	"github.com/taskgraph-sim/tasksim/internal/model"
	"github.com/taskgraph-sim/tasksim/internal/network"
)

// World is the shared environment every Process runs against: the clock,
// the fabric, the host set, the resolved task set, and a dense vector of
// completion signals and timestamps indexed by task index. The simulator
// owns this arena once, and every process carries only the index of the
// task it drives.
type World struct {
	Clock       *engine.Clock
	Fabric      *network.Fabric
	Hosts       map[string]*model.Host
	Tasks       *model.TaskSet
	Completions []*engine.Event
	StartTimes  []engine.Time
	FinishTimes []engine.Time
	Failure     *Failure
	Logger      *zap.Logger
}

// NewWorld allocates the dense per-task vectors (completion signals and
// timestamps) for a task set of the given size, wiring in the clock,
// fabric, hosts, and logger the simulator driver already constructed.
func NewWorld(clock *engine.Clock, fabric *network.Fabric, hosts map[string]*model.Host, tasks *model.TaskSet, logger *zap.Logger) *World {
	n := tasks.Len()
	completions := make([]*engine.Event, n)
	for i := range completions {
		completions[i] = engine.NewEvent()
	}
	return &World{
		Clock:       clock,
		Fabric:      fabric,
		Hosts:       hosts,
		Tasks:       tasks,
		Completions: completions,
		StartTimes:  make([]engine.Time, n),
		FinishTimes: make([]engine.Time, n),
		Failure:     &Failure{},
		Logger:      logger,
	}
}
