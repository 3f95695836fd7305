// Package csvtasks loads the tasks CSV format: a header row naming exactly
// the seven TASK_* columns (order-independent), one row per task, integer
// fields for the time/ram columns, and a TASK_DEPENDENCY column holding
// zero or more dependency names.
//
// TASK_DEPENDENCY accepts a semicolon-separated list of names (`a;b;c`) in
// addition to a single bare name or an empty field, since the core's data
// model carries a full dependency list rather than at most one.
package csvtasks

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/taskgraph-sim/tasksim/internal/model"
)

const (
	colName       = "TASK_NAME"
	colHost       = "TASK_HOST"
	colSleep      = "TASK_INITIAL_SLEEP_TIME"
	colRun        = "TASK_RUN_TIME"
	colRAM        = "TASK_RAM"
	colNetwork    = "TASK_NETWORK_TIME"
	colDependency = "TASK_DEPENDENCY"
)

var requiredColumns = []string{colName, colHost, colSleep, colRun, colRAM, colNetwork, colDependency}

// Load reads the tasks CSV at path and returns the declarative Task list in
// row order. Any header mismatch, wrong field count, or malformed/negative
// numeric field fails with model.ErrConfig.
func Load(path string) ([]model.Task, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", model.ErrConfig, path, err)
	}
	defer f.Close()
	return parse(f, path)
}

func parse(r io.Reader, path string) ([]model.Task, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: reading header: %v", model.ErrConfig, path, err)
	}
	colIdx, err := columnIndex(header, path)
	if err != nil {
		return nil, err
	}

	var tasks []model.Task
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s: reading row: %v", model.ErrConfig, path, err)
		}
		if len(row) != len(header) {
			return nil, fmt.Errorf("%w: %s: row has %d fields, want %d", model.ErrConfig, path, len(row), len(header))
		}
		task, err := parseRow(row, colIdx, path)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

// columnIndex validates that header names exactly the required column set
// (order-independent, no duplicates, no extras) and returns a lookup from
// column name to its position.
func columnIndex(header []string, path string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		trimmed := strings.TrimSpace(name)
		if _, dup := idx[trimmed]; dup {
			return nil, fmt.Errorf("%w: %s: duplicate header column %q", model.ErrConfig, path, trimmed)
		}
		idx[trimmed] = i
	}
	if len(idx) != len(requiredColumns) {
		return nil, fmt.Errorf("%w: %s: header has %d columns, want exactly %v", model.ErrConfig, path, len(idx), requiredColumns)
	}
	for _, name := range requiredColumns {
		if _, ok := idx[name]; !ok {
			return nil, fmt.Errorf("%w: %s: header missing required column %q", model.ErrConfig, path, name)
		}
	}
	return idx, nil
}

func parseRow(row []string, colIdx map[string]int, path string) (model.Task, error) {
	field := func(col string) string {
		return strings.TrimSpace(row[colIdx[col]])
	}

	name := field(colName)
	if name == "" {
		return model.Task{}, fmt.Errorf("%w: %s: row has empty %s", model.ErrConfig, path, colName)
	}
	host := field(colHost)
	if host == "" {
		return model.Task{}, fmt.Errorf("%w: %s: task %q has empty %s", model.ErrConfig, path, name, colHost)
	}

	sleep, err := parseNonNegativeInt(field(colSleep), colSleep, name, path)
	if err != nil {
		return model.Task{}, err
	}
	run, err := parseNonNegativeInt(field(colRun), colRun, name, path)
	if err != nil {
		return model.Task{}, err
	}
	ram, err := parseNonNegativeInt(field(colRAM), colRAM, name, path)
	if err != nil {
		return model.Task{}, err
	}
	network, err := parseNonNegativeInt(field(colNetwork), colNetwork, name, path)
	if err != nil {
		return model.Task{}, err
	}

	return model.Task{
		Name:             name,
		Host:             host,
		InitialSleepTime: sleep,
		RunTime:          run,
		RAM:              int(ram),
		NetworkTime:      network,
		Dependencies:     parseDependencies(field(colDependency)),
	}, nil
}

func parseNonNegativeInt(raw, col, taskName, path string) (int64, error) {
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: task %q has malformed %s %q", model.ErrConfig, path, taskName, col, raw)
	}
	if v < 0 {
		return 0, fmt.Errorf("%w: %s: task %q has negative %s %d", model.ErrConfig, path, taskName, col, v)
	}
	return v, nil
}

// parseDependencies splits TASK_DEPENDENCY on ";" and drops empty entries,
// so an empty field, a single name, or a semicolon-separated list all parse
// sensibly, per the Open Question 1 extension.
func parseDependencies(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ";")
	deps := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		deps = append(deps, p)
	}
	return deps
}
