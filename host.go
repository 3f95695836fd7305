package tasksim

import "github.com/taskgraph-sim/tasksim/internal/model"

// HostConfig is the declarative capacity of one host: cores available to
// the CPU resource and bytes (or whatever unit the experiment uses) of RAM
// backing the container. Immutable once parsed.
type HostConfig = model.HostConfig

// ExperimentConfig is a non-empty mapping from host id to HostConfig. Host
// iteration is always in sorted host-id order, so stats and log output are
// deterministic across runs.
type ExperimentConfig = model.ExperimentConfig
