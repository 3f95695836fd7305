package csvtasks_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/taskgraph-sim/tasksim/internal/csvtasks"
	"github.com/taskgraph-sim/tasksim/internal/model"
)

func writeCSV(chk *require.Assertions, dir, contents string) string {
	path := filepath.Join(dir, "tasks.csv")
	chk.NoError(os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadParsesRowsInOrder(t *testing.T) {
	chk := require.New(t)
	dir := t.TempDir()
	path := writeCSV(chk, dir, "TASK_NAME,TASK_HOST,TASK_INITIAL_SLEEP_TIME,TASK_RUN_TIME,TASK_RAM,TASK_NETWORK_TIME,TASK_DEPENDENCY\n"+
		"A,H,0,5,100,0,\n"+
		"B,H,0,3,100,0,A\n")

	tasks, err := csvtasks.Load(path)
	chk.NoError(err)
	chk.Equal([]model.Task{
		{Name: "A", Host: "H", RunTime: 5, RAM: 100},
		{Name: "B", Host: "H", RunTime: 3, RAM: 100, Dependencies: []string{"A"}},
	}, tasks)
}

func TestLoadAcceptsSemicolonDependencyList(t *testing.T) {
	chk := require.New(t)
	dir := t.TempDir()
	path := writeCSV(chk, dir, "TASK_NAME,TASK_HOST,TASK_INITIAL_SLEEP_TIME,TASK_RUN_TIME,TASK_RAM,TASK_NETWORK_TIME,TASK_DEPENDENCY\n"+
		"A,H,0,1,1,0,\n"+
		"B,H,0,1,1,0,\n"+
		"C,H,0,1,1,0,A;B\n")

	tasks, err := csvtasks.Load(path)
	chk.NoError(err)
	chk.Equal([]string{"A", "B"}, tasks[2].Dependencies)
}

func TestLoadColumnOrderIsFree(t *testing.T) {
	chk := require.New(t)
	dir := t.TempDir()
	path := writeCSV(chk, dir, "TASK_DEPENDENCY,TASK_RAM,TASK_NAME,TASK_NETWORK_TIME,TASK_HOST,TASK_RUN_TIME,TASK_INITIAL_SLEEP_TIME\n"+
		",100,A,0,H,5,0\n")

	tasks, err := csvtasks.Load(path)
	chk.NoError(err)
	chk.Equal("A", tasks[0].Name)
	chk.Equal(int64(5), tasks[0].RunTime)
}

func TestLoadRejectsMissingColumn(t *testing.T) {
	chk := require.New(t)
	dir := t.TempDir()
	path := writeCSV(chk, dir, "TASK_NAME,TASK_HOST,TASK_INITIAL_SLEEP_TIME,TASK_RUN_TIME,TASK_RAM,TASK_NETWORK_TIME\n"+
		"A,H,0,5,100,0\n")

	_, err := csvtasks.Load(path)
	chk.ErrorIs(err, model.ErrConfig)
}

func TestLoadRejectsNegativeField(t *testing.T) {
	chk := require.New(t)
	dir := t.TempDir()
	path := writeCSV(chk, dir, "TASK_NAME,TASK_HOST,TASK_INITIAL_SLEEP_TIME,TASK_RUN_TIME,TASK_RAM,TASK_NETWORK_TIME,TASK_DEPENDENCY\n"+
		"A,H,0,-5,100,0,\n")

	_, err := csvtasks.Load(path)
	chk.ErrorIs(err, model.ErrConfig)
}

func TestLoadRejectsWrongFieldCount(t *testing.T) {
	chk := require.New(t)
	dir := t.TempDir()
	path := writeCSV(chk, dir, "TASK_NAME,TASK_HOST,TASK_INITIAL_SLEEP_TIME,TASK_RUN_TIME,TASK_RAM,TASK_NETWORK_TIME,TASK_DEPENDENCY\n"+
		"A,H,0,5,100\n")

	_, err := csvtasks.Load(path)
	chk.ErrorIs(err, model.ErrConfig)
}

func TestLoadEmptyDependencyParsesToNoDeps(t *testing.T) {
	chk := require.New(t)
	dir := t.TempDir()
	path := writeCSV(chk, dir, "TASK_NAME,TASK_HOST,TASK_INITIAL_SLEEP_TIME,TASK_RUN_TIME,TASK_RAM,TASK_NETWORK_TIME,TASK_DEPENDENCY\n"+
		"A,H,0,5,100,0,\n")

	tasks, err := csvtasks.Load(path)
	chk.NoError(err)
	chk.Empty(tasks[0].Dependencies)
}
