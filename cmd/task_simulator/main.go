// Command task_simulator runs a discrete-event simulation of dependent
// tasks over the hosts and tasks declared in an XML experiment file.
//
// Usage:
//
//	task_simulator <experiments_path> --experiment NAME [--verbose] [--dump-config]
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/taskgraph-sim/tasksim"
	"github.com/taskgraph-sim/tasksim/internal/csvtasks"
	"github.com/taskgraph-sim/tasksim/internal/xmlconfig"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("task_simulator", flag.ContinueOnError)
	var (
		experiment = fs.String("experiment", "", "name of the experiment to run (required)")
		verbose    = fs.Bool("verbose", false, "emit per-host statistics and debug-level phase logging")
		dumpConfig = fs.Bool("dump-config", false, "print the resolved experiment configuration as YAML before running")
	)
	fs.StringVar(experiment, "e", "", "alias for --experiment")
	fs.BoolVar(verbose, "v", false, "alias for --verbose")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: task_simulator <experiments_path> --experiment NAME [--verbose] [--dump-config]")
		fs.PrintDefaults()
	}

	// Flags may appear before or after the positional experiments path.
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			if err == flag.ErrHelp {
				return 0
			}
			return 1
		}
		if fs.NArg() == 0 {
			break
		}
		positional = append(positional, fs.Arg(0))
		args = fs.Args()[1:]
	}
	if len(positional) != 1 {
		fs.Usage()
		return 1
	}
	if *experiment == "" {
		fmt.Fprintln(os.Stderr, "task_simulator: --experiment is required")
		return 1
	}

	if err := runExperiment(positional[0], *experiment, *verbose, *dumpConfig); err != nil {
		fmt.Fprintf(os.Stderr, "task_simulator: %v\n", err)
		return 1
	}
	return 0
}

func runExperiment(experimentsPath, name string, verbose, dumpConfig bool) error {
	experiments, err := xmlconfig.Load(experimentsPath)
	if err != nil {
		return err
	}
	exp, ok := experiments[name]
	if !ok {
		return fmt.Errorf("%w: no experiment named %q in %s", tasksim.ErrValidation, name, experimentsPath)
	}

	if dumpConfig {
		data, err := tasksim.DumpConfig(&exp.Config)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "--- %s ---\n%s\n", name, data)
	}

	tasks, err := csvtasks.Load(exp.TasksPath)
	if err != nil {
		return err
	}

	sim, err := tasksim.New(&exp.Config, tasks)
	if err != nil {
		return err
	}
	sim.SetLogger(tasksim.NewLogger(verbose))

	stats, err := sim.Run(verbose)
	if err != nil {
		return err
	}

	fmt.Printf("================================================================\n")
	fmt.Printf("experiment %q complete: sim_time=%d total_cpu_work=%d util=%.2f%% idle=%d\n",
		name, stats.SimTime, stats.TotalCPUWork, stats.Util*100, stats.Idle)
	if verbose {
		fmt.Printf("----------------------------------------------------------------\n")
		for _, h := range stats.PerHost {
			fmt.Printf("host %-12s cores=%-4d work=%-8d available=%-8d util=%6.2f%% idle=%d\n",
				h.HostID, h.Cores, h.Work, h.Available, h.Util*100, h.Idle)
		}
	}
	fmt.Printf("================================================================\n")
	return nil
}
