// Package tasksim is a discrete-event simulator for dependent tasks
// executing on a fleet of heterogeneous hosts under CPU, RAM, and
// network-link contention. Build an ExperimentConfig and a Task list (or
// load them with an external loader), construct a Simulator with New, and
// call Run to drive the simulation to completion and collect statistics.
package tasksim

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/taskgraph-sim/tasksim/internal/engine"
	"github.com/taskgraph-sim/tasksim/internal/model"
	"github.com/taskgraph-sim/tasksim/internal/network"
	"github.com/taskgraph-sim/tasksim/internal/taskproc"
)

// Simulator wires together a validated experiment and task set, then drives
// the virtual clock to completion.
type Simulator struct {
	config  *ExperimentConfig
	tasks   *TaskSet
	hosts   map[string]*model.Host
	hostIDs []string
	fabric  *network.Fabric
	logger  *zap.Logger
}

// New validates config and constructs a Simulator over tasks. It rejects
// any task whose host is not declared in config with ErrUnknownHost, and
// constructs hosts and the network fabric in sorted host-id order so the
// run is reproducible regardless of map iteration order.
func New(config *ExperimentConfig, tasks []Task) (*Simulator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	ts, err := NewTaskSet(tasks)
	if err != nil {
		return nil, err
	}
	for _, rt := range ts.All() {
		if _, ok := config.Hosts[rt.Host]; !ok {
			return nil, fmt.Errorf("%w: task %q references host %q", ErrUnknownHost, rt.Name, rt.Host)
		}
	}

	hosts, hostIDs := model.BuildHosts(config)
	fabric := network.NewFabric(hostIDs)

	return &Simulator{
		config:  config,
		tasks:   ts,
		hosts:   hosts,
		hostIDs: hostIDs,
		fabric:  fabric,
		logger:  zap.NewNop(),
	}, nil
}

// SetLogger overrides the Simulator's logger, which otherwise discards all
// output. Run logs a "Started"/"Finished" line per task at info level;
// the task processes emit no log lines below info level.
func (s *Simulator) SetLogger(logger *zap.Logger) {
	s.logger = logger
}

// Run spawns one process per task, in task list order, and drives the
// clock to completion. If verbose is true, the returned Stats includes a
// per-host breakdown in sorted host-id order. Run returns the first
// scheduling-time failure encountered by any task process (InvalidAmount
// or UnknownLinkRef) rather than a partial result.
func (s *Simulator) Run(verbose bool) (*Stats, error) {
	clock := engine.NewClock()
	world := taskproc.NewWorld(clock, s.fabric, s.hosts, s.tasks, s.logger)

	s.logger.Info("run starting", zap.Int("tasks", s.tasks.Len()), zap.Strings("hosts", s.hostIDs))

	for _, rt := range s.tasks.All() {
		p := taskproc.NewProcess(world, rt, s.hosts[rt.Host])
		p.Start()
	}

	clock.Run()

	if err := world.Failure.Err(); err != nil {
		return nil, err
	}

	stats := computeStats(s.hosts, s.hostIDs, s.tasks, clock.Now(), verbose)
	s.logger.Info("run finished",
		zap.Int64("sim_time", stats.SimTime),
		zap.Float64("util", stats.Util))
	return stats, nil
}
