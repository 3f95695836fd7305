package model

import (
	"fmt"
	"sort"

	"github.com/taskgraph-sim/tasksim/internal/resource"
)

// HostConfig is the declarative capacity of one host: cores available to
// the CPU resource and bytes (or whatever unit the experiment uses) of RAM
// backing the container. Immutable once parsed.
type HostConfig struct {
	CPUCores int `yaml:"cpu_cores"`
	RAM      int `yaml:"ram"`
}

// ExperimentConfig is a non-empty mapping from host id to HostConfig. Host
// iteration is always in sorted host-id order, which both of
// ExperimentConfig's accessors enforce.
type ExperimentConfig struct {
	Hosts map[string]HostConfig `yaml:"hosts"`
}

// SortedHostIDs returns the experiment's host identifiers in ascending
// order. Every place the simulator needs a deterministic host order —
// fabric construction, host construction, verbose per-host statistics —
// uses this.
func (c *ExperimentConfig) SortedHostIDs() []string {
	ids := make([]string, 0, len(c.Hosts))
	for id := range c.Hosts {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Validate checks that the experiment is non-empty and that every host has
// a positive core count and RAM capacity.
func (c *ExperimentConfig) Validate() error {
	if len(c.Hosts) == 0 {
		return fmt.Errorf("%w: experiment declares no hosts", ErrConfig)
	}
	for _, id := range c.SortedHostIDs() {
		h := c.Hosts[id]
		if h.CPUCores <= 0 {
			return fmt.Errorf("%w: host %q has non-positive cpu_cores %d", ErrConfig, id, h.CPUCores)
		}
		if h.RAM <= 0 {
			return fmt.Errorf("%w: host %q has non-positive ram %d", ErrConfig, id, h.RAM)
		}
	}
	return nil
}

// Host is the runtime form of a HostConfig: one seizable CPU resource with
// capacity equal to the configured core count, and one RAM container with
// capacity equal to (and initial level equal to) the configured RAM. It
// lives for the full run.
type Host struct {
	ID     string
	Config HostConfig
	CPU    *resource.Seizable
	RAM    *resource.Container
}

// NewHost constructs the runtime resources backing a host.
func NewHost(id string, cfg HostConfig) *Host {
	return &Host{
		ID:     id,
		Config: cfg,
		CPU:    resource.NewSeizable(cfg.CPUCores),
		RAM:    resource.NewContainer(cfg.RAM, cfg.RAM),
	}
}

// BuildHosts constructs the runtime Host set in sorted host-id order, so
// host construction (and anything that iterates the result) is
// deterministic across runs.
func BuildHosts(cfg *ExperimentConfig) (map[string]*Host, []string) {
	ids := cfg.SortedHostIDs()
	hosts := make(map[string]*Host, len(ids))
	for _, id := range ids {
		hosts[id] = NewHost(id, cfg.Hosts[id])
	}
	return hosts, ids
}
