package tasksim

import (
	"gonum.org/v1/gonum/floats"

	"github.com/taskgraph-sim/tasksim/internal/engine"
	"github.com/taskgraph-sim/tasksim/internal/model"
)

// HostStats is the per-host breakdown emitted when a run is verbose.
type HostStats struct {
	HostID    string
	Cores     int
	Work      int64
	Available int64
	Util      float64
	Idle      int64
}

// Stats is the result of a completed Run.
type Stats struct {
	TotalCPUWork   int64
	SimTime        int64
	TotalCores     int
	TotalAvailable int64
	Util           float64
	Idle           int64

	// PerHost is populated only when Run was called with verbose=true, in
	// sorted host-id order.
	PerHost []HostStats
}

// computeStats sums total CPU work with gonum/floats and accumulates
// per-host work in the same pass over the tasks, then derives the overall
// and (if requested) per-host utilization ratios.
func computeStats(hosts map[string]*model.Host, hostIDs []string, tasks *model.TaskSet, simTime engine.Time, verbose bool) *Stats {
	perHostWork := make(map[string]int64, len(hostIDs))
	for _, id := range hostIDs {
		perHostWork[id] = 0
	}

	work := make([]float64, 0, tasks.Len())
	for _, rt := range tasks.All() {
		work = append(work, float64(rt.RunTime))
		perHostWork[rt.Host] += rt.RunTime
	}
	totalCPUWork := int64(floats.Sum(work))

	totalCores := 0
	for _, id := range hostIDs {
		totalCores += hosts[id].Config.CPUCores
	}
	totalAvailable := int64(totalCores) * int64(simTime)

	stats := &Stats{
		TotalCPUWork:   totalCPUWork,
		SimTime:        int64(simTime),
		TotalCores:     totalCores,
		TotalAvailable: totalAvailable,
		Util:           utilization(totalCPUWork, totalAvailable),
		Idle:           totalAvailable - totalCPUWork,
	}

	if !verbose {
		return stats
	}

	stats.PerHost = make([]HostStats, 0, len(hostIDs))
	for _, id := range hostIDs {
		host := hosts[id]
		available := int64(host.Config.CPUCores) * int64(simTime)
		hostWork := perHostWork[id]
		stats.PerHost = append(stats.PerHost, HostStats{
			HostID:    id,
			Cores:     host.Config.CPUCores,
			Work:      hostWork,
			Available: available,
			Util:      utilization(hostWork, available),
			Idle:      available - hostWork,
		})
	}
	return stats
}

// utilization returns work/available, or 0 if available is 0 (an
// experiment with sim_time 0, e.g. every task had run_time 0).
func utilization(work, available int64) float64 {
	if available == 0 {
		return 0
	}
	return float64(work) / float64(available)
}
