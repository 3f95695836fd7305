// Package xmlconfig loads the experiment file format: an "experiments"
// root holding one or more named "experiment" elements, each with a
// tasks-file reference and at least one host. It produces exactly the
// shape the core consumes — model.ExperimentConfig plus a resolved
// tasks-file path — so malformed input fails loudly with ConfigError
// rather than propagating a zero-value host map downstream.
package xmlconfig

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"

	"github.com/taskgraph-sim/tasksim/internal/model"
)

// Experiment is one named experiment: its resolved host configuration and
// the filesystem path to its tasks CSV, resolved relative to the
// experiment file's own directory.
type Experiment struct {
	Name      string
	TasksPath string
	Config    model.ExperimentConfig
}

type experimentsDoc struct {
	XMLName     xml.Name        `xml:"experiments"`
	Experiments []experimentXML `xml:"experiment"`
}

type experimentXML struct {
	Name  string    `xml:"name,attr"`
	Tasks string    `xml:"tasks"`
	Hosts []hostXML `xml:"host"`
}

type hostXML struct {
	ID       string `xml:"id,attr"`
	CPUCores int    `xml:"cpu_cores"`
	RAM      int    `xml:"ram"`
}

// Load parses the experiment file at path and returns every experiment it
// declares, keyed by name. Any structural problem — a missing or duplicate
// "name"/"id" attribute, a non-positive cpu_cores/ram, an empty tasks
// path — fails with model.ErrConfig.
func Load(path string) (map[string]Experiment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", model.ErrConfig, path, err)
	}

	var doc experimentsDoc
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", model.ErrConfig, path, err)
	}
	if len(doc.Experiments) == 0 {
		return nil, fmt.Errorf("%w: %s declares no experiments", model.ErrConfig, path)
	}

	baseDir := filepath.Dir(path)
	experiments := make(map[string]Experiment, len(doc.Experiments))
	for _, ex := range doc.Experiments {
		exp, err := resolveExperiment(ex, baseDir)
		if err != nil {
			return nil, err
		}
		if _, dup := experiments[exp.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate experiment name %q", model.ErrConfig, exp.Name)
		}
		experiments[exp.Name] = exp
	}
	return experiments, nil
}

func resolveExperiment(ex experimentXML, baseDir string) (Experiment, error) {
	if ex.Name == "" {
		return Experiment{}, fmt.Errorf("%w: experiment element missing required \"name\" attribute", model.ErrConfig)
	}
	if ex.Tasks == "" {
		return Experiment{}, fmt.Errorf("%w: experiment %q missing required <tasks> element", model.ErrConfig, ex.Name)
	}
	if len(ex.Hosts) == 0 {
		return Experiment{}, fmt.Errorf("%w: experiment %q declares no hosts", model.ErrConfig, ex.Name)
	}

	hosts := make(map[string]model.HostConfig, len(ex.Hosts))
	for _, h := range ex.Hosts {
		if h.ID == "" {
			return Experiment{}, fmt.Errorf("%w: experiment %q has a host element missing required \"id\" attribute", model.ErrConfig, ex.Name)
		}
		if _, dup := hosts[h.ID]; dup {
			return Experiment{}, fmt.Errorf("%w: experiment %q has duplicate host id %q", model.ErrConfig, ex.Name, h.ID)
		}
		if h.CPUCores <= 0 {
			return Experiment{}, fmt.Errorf("%w: experiment %q host %q has non-positive cpu_cores %d", model.ErrConfig, ex.Name, h.ID, h.CPUCores)
		}
		if h.RAM <= 0 {
			return Experiment{}, fmt.Errorf("%w: experiment %q host %q has non-positive ram %d", model.ErrConfig, ex.Name, h.ID, h.RAM)
		}
		hosts[h.ID] = model.HostConfig{CPUCores: h.CPUCores, RAM: h.RAM}
	}

	tasksPath := ex.Tasks
	if !filepath.IsAbs(tasksPath) {
		tasksPath = filepath.Join(baseDir, tasksPath)
	}

	return Experiment{
		Name:      ex.Name,
		TasksPath: tasksPath,
		Config:    model.ExperimentConfig{Hosts: hosts},
	}, nil
}
