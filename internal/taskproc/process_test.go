package taskproc_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/taskgraph-sim/tasksim/internal/engine"
	"github.com/taskgraph-sim/tasksim/internal/model"
	"github.com/taskgraph-sim/tasksim/internal/network"
	"github.com/taskgraph-sim/tasksim/internal/taskproc"
)

// buildWorld is the shared scaffolding every scenario test below needs:
// resolve tasks, build hosts in sorted order, build the fabric, and start
// one process per task in list order — mirroring what the simulator driver
// itself will do.
func buildWorld(chk *require.Assertions, cfg *model.ExperimentConfig, tasks []model.Task) (*taskproc.World, *model.TaskSet) {
	ts, err := model.NewTaskSet(tasks)
	chk.NoError(err)

	hosts, hostIDs := model.BuildHosts(cfg)
	fabric := network.NewFabric(hostIDs)
	clock := engine.NewClock()
	world := taskproc.NewWorld(clock, fabric, hosts, ts, zap.NewNop())

	for _, rt := range ts.All() {
		p := taskproc.NewProcess(world, rt, hosts[rt.Host])
		p.Start()
	}
	return world, ts
}

func TestSingleTaskCompletesAtRunTime(t *testing.T) {
	chk := require.New(t)
	cfg := &model.ExperimentConfig{Hosts: map[string]model.HostConfig{"H": {CPUCores: 1, RAM: 1000}}}
	tasks := []model.Task{
		{Name: "A", Host: "H", RunTime: 10, RAM: 100},
	}
	world, ts := buildWorld(chk, cfg, tasks)
	world.Clock.Run()

	chk.NoError(world.Failure.Err())
	idx, _ := ts.Index("A")
	chk.True(world.Completions[idx].Triggered())
	chk.Equal(engine.Time(10), world.Clock.Now())
}

func TestSequentialDependencySameHost(t *testing.T) {
	chk := require.New(t)
	cfg := &model.ExperimentConfig{Hosts: map[string]model.HostConfig{"H": {CPUCores: 1, RAM: 1000}}}
	tasks := []model.Task{
		{Name: "A", Host: "H", RunTime: 5, RAM: 100},
		{Name: "B", Host: "H", RunTime: 3, RAM: 100, Dependencies: []string{"A"}},
	}
	world, _ := buildWorld(chk, cfg, tasks)
	world.Clock.Run()

	chk.NoError(world.Failure.Err())
	chk.Equal(engine.Time(8), world.Clock.Now())
}

func TestCrossHostDependencyWithNetworkTransfer(t *testing.T) {
	chk := require.New(t)
	cfg := &model.ExperimentConfig{Hosts: map[string]model.HostConfig{
		"H1": {CPUCores: 1, RAM: 1000},
		"H2": {CPUCores: 1, RAM: 1000},
	}}
	tasks := []model.Task{
		{Name: "A", Host: "H1", RunTime: 5, RAM: 100, NetworkTime: 4},
		{Name: "B", Host: "H2", RunTime: 3, RAM: 100, Dependencies: []string{"A"}},
	}
	world, ts := buildWorld(chk, cfg, tasks)
	world.Clock.Run()

	chk.NoError(world.Failure.Err())
	chk.Equal(engine.Time(12), world.Clock.Now())

	idxA, _ := ts.Index("A")
	idxB, _ := ts.Index("B")
	chk.Equal(engine.Time(5), world.FinishTimes[idxA])
	chk.Equal(engine.Time(9), world.StartTimes[idxB])
}

func TestRAMContentionGrantsFIFO(t *testing.T) {
	chk := require.New(t)
	cfg := &model.ExperimentConfig{Hosts: map[string]model.HostConfig{"H": {CPUCores: 2, RAM: 1000}}}
	tasks := []model.Task{
		{Name: "A", Host: "H", RunTime: 10, RAM: 800},
		{Name: "B", Host: "H", RunTime: 5, RAM: 800},
	}
	world, ts := buildWorld(chk, cfg, tasks)
	world.Clock.Run()

	chk.NoError(world.Failure.Err())
	chk.Equal(engine.Time(15), world.Clock.Now())

	idxA, _ := ts.Index("A")
	idxB, _ := ts.Index("B")
	chk.Equal(engine.Time(0), world.StartTimes[idxA])
	chk.Equal(engine.Time(10), world.StartTimes[idxB])
}

func TestCPUContentionNeverExceedsCapacity(t *testing.T) {
	chk := require.New(t)
	cfg := &model.ExperimentConfig{Hosts: map[string]model.HostConfig{"H": {CPUCores: 1, RAM: 10000}}}
	tasks := []model.Task{
		{Name: "A", Host: "H", RunTime: 10, RAM: 100},
		{Name: "B", Host: "H", RunTime: 10, RAM: 100},
	}
	world, _ := buildWorld(chk, cfg, tasks)
	world.Clock.Run()

	chk.NoError(world.Failure.Err())
	chk.Equal(engine.Time(20), world.Clock.Now())
}

func TestLongDependencyChain(t *testing.T) {
	chk := require.New(t)
	cfg := &model.ExperimentConfig{Hosts: map[string]model.HostConfig{"H": {CPUCores: 1, RAM: 1000}}}

	const n = 50
	tasks := make([]model.Task, n)
	for i := 0; i < n; i++ {
		var deps []string
		if i > 0 {
			deps = []string{tasks[i-1].Name}
		}
		tasks[i] = model.Task{Name: taskName(i), Host: "H", RunTime: 1, RAM: 10, Dependencies: deps}
	}

	world, _ := buildWorld(chk, cfg, tasks)
	world.Clock.Run()

	chk.NoError(world.Failure.Err())
	chk.Equal(engine.Time(n), world.Clock.Now())
}

func TestZeroResourceTaskCompletesWithoutBlocking(t *testing.T) {
	chk := require.New(t)
	cfg := &model.ExperimentConfig{Hosts: map[string]model.HostConfig{"H": {CPUCores: 1, RAM: 1000}}}
	tasks := []model.Task{
		{Name: "A", Host: "H", RunTime: 0, RAM: 0},
	}
	world, ts := buildWorld(chk, cfg, tasks)
	world.Clock.Run()

	chk.NoError(world.Failure.Err())
	chk.Equal(engine.Time(0), world.Clock.Now())
	idx, _ := ts.Index("A")
	chk.True(world.Completions[idx].Triggered())
}

func TestRAMExceedingHostCapacityFailsInvalidAmount(t *testing.T) {
	chk := require.New(t)
	cfg := &model.ExperimentConfig{Hosts: map[string]model.HostConfig{"H": {CPUCores: 1, RAM: 100}}}
	tasks := []model.Task{
		{Name: "A", Host: "H", RunTime: 1, RAM: 200},
	}
	world, _ := buildWorld(chk, cfg, tasks)
	world.Clock.Run()

	chk.Error(world.Failure.Err())
	chk.ErrorIs(world.Failure.Err(), model.ErrInvalidAmount)
}

func taskName(i int) string {
	return fmt.Sprintf("T%d", i)
}
