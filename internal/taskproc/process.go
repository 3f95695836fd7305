package taskproc

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/taskgraph-sim/tasksim/internal/engine"
	"github.com/taskgraph-sim/tasksim/internal/model"
)

// Process drives one task's seven-phase lifecycle against a shared World.
// It holds no state of its own beyond the task it was built for and the
// host that task runs on; everything else — timestamps, completion
// signals, the failure latch — lives in the World's dense per-task
// vectors, per the arena-and-indices design.
type Process struct {
	world *World
	task  model.ResolvedTask
	host  *model.Host
}

// NewProcess returns a Process for the given resolved task, bound to host
// (which must be world.Hosts[task.Host]).
func NewProcess(world *World, task model.ResolvedTask, host *model.Host) *Process {
	return &Process{world: world, task: task, host: host}
}

// Start schedules the process's first phase at the current virtual time.
// The simulator driver calls Start for every task, in task list order,
// before running the clock: that insertion order is what tie-breaks
// processes that race for the same resource at virtual time zero.
func (p *Process) Start() {
	p.world.Clock.Schedule(0, p.sleep)
}

// sleep is phase 1: the initial sleep, a no-op when InitialSleepTime is 0.
func (p *Process) sleep(now engine.Time) {
	if p.task.InitialSleepTime > 0 {
		p.world.Clock.Schedule(engine.Time(p.task.InitialSleepTime), p.awaitDependency(0))
		return
	}
	p.awaitDependency(0)(now)
}

// awaitDependency is phase 2: the dependency barrier. Dependencies are
// awaited in declaration order; an already-triggered completion signal
// resumes on the next clock tick rather than blocking, so this never
// stalls on a dependency that finished earlier.
func (p *Process) awaitDependency(i int) engine.Callback {
	return func(now engine.Time) {
		if i >= len(p.task.DepIdxs) {
			p.beginTransfer(0)(now)
			return
		}
		p.world.Completions[p.task.DepIdxs[i]].Await(p.world.Clock, p.awaitDependency(i+1))
	}
}

// beginTransfer is phase 3: the sequential per-dependency network transfer.
// Same-host dependencies and dependencies with zero network_time contribute
// no delay and are skipped without touching the fabric.
func (p *Process) beginTransfer(i int) engine.Callback {
	return func(now engine.Time) {
		if i >= len(p.task.DepIdxs) {
			p.acquireRAM(now)
			return
		}
		depTask, _ := p.world.Tasks.At(p.task.DepIdxs[i])
		if depTask.Host == p.task.Host || depTask.NetworkTime <= 0 {
			p.beginTransfer(i + 1)(now)
			return
		}
		link, err := p.world.Fabric.Link(depTask.Host, p.task.Host)
		if err != nil {
			p.world.Failure.Fail(fmt.Errorf("%w: %s -> %s", model.ErrUnknownLinkRef, depTask.Host, p.task.Host))
			return
		}
		req := link.Request(p.world.Clock)
		req.Await(p.world.Clock, func(now engine.Time) {
			p.world.Clock.Schedule(engine.Time(depTask.NetworkTime), func(now engine.Time) {
				link.Release(p.world.Clock)
				p.beginTransfer(i + 1)(now)
			})
		})
	}
}

// acquireRAM is phase 4. A RAM request that exceeds the host's capacity
// fails InvalidAmount immediately, at scheduling time, rather than
// blocking forever.
func (p *Process) acquireRAM(now engine.Time) {
	ev, err := p.host.RAM.Get(p.world.Clock, p.task.RAM)
	if err != nil {
		p.world.Failure.Fail(fmt.Errorf("%w: task %q requests %d ram but host %q has capacity %d",
			model.ErrInvalidAmount, p.task.Name, p.task.RAM, p.task.Host, p.host.Config.RAM))
		return
	}
	ev.Await(p.world.Clock, p.acquireCPU)
}

// acquireCPU is phase 5.
func (p *Process) acquireCPU(now engine.Time) {
	req := p.host.CPU.Request(p.world.Clock)
	req.Await(p.world.Clock, p.run)
}

// run is phase 6: execution. The CPU slot is held for exactly run_time,
// including when run_time is zero.
func (p *Process) run(now engine.Time) {
	p.world.StartTimes[p.task.Index] = now
	p.world.Logger.Info("task started",
		zap.String("task", p.task.Name),
		zap.String("host", p.task.Host),
		zap.Int64("run_time", p.task.RunTime))
	p.world.Clock.Schedule(engine.Time(p.task.RunTime), p.finish)
}

// finish is phase 7: release and signal. CPU and RAM are released, then
// the task's completion signal fires exactly once.
func (p *Process) finish(now engine.Time) {
	p.world.FinishTimes[p.task.Index] = now
	p.host.CPU.Release(p.world.Clock)
	if _, err := p.host.RAM.Put(p.world.Clock, p.task.RAM); err != nil {
		p.world.Failure.Fail(err)
		return
	}
	p.world.Logger.Info("task finished",
		zap.String("task", p.task.Name),
		zap.String("host", p.task.Host),
		zap.Int64("duration", int64(now-p.world.StartTimes[p.task.Index])))
	p.world.Completions[p.task.Index].Trigger(p.world.Clock)
}
