// The run and compare subcommands: execute schedulers on a scenario file and
// render the timeline and metrics tables. All rendering lives here; the sim
// package never prints.

package cmd

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/cpusched-sim/cpusched-sim/sim"
	"github.com/cpusched-sim/cpusched-sim/sim/trace"
)

var (
	scenarioPath string // Path to the scenario YAML file
	algorithm    string // Scheduler to run (fcfs, sjf, rr)
	quantum      int64  // Round-Robin time quantum; overrides the scenario value when set
	traceLevel   string // Decision trace level (none, decisions)
)

// runScheduler dispatches to the selected scheduling policy.
func runScheduler(name string, procs []sim.Process, q int64, tr *trace.SimulationTrace) (*sim.SimulationResult, error) {
	switch name {
	case sim.AlgorithmFCFS:
		return sim.FCFS(procs, tr)
	case sim.AlgorithmSJF:
		return sim.SJF(procs, tr)
	case sim.AlgorithmRR:
		return sim.RoundRobin(procs, q, tr)
	default:
		return nil, fmt.Errorf("unknown algorithm %q (want fcfs, sjf, or rr)", name)
	}
}

// runCmd executes one scheduler on the scenario's process set
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one scheduling algorithm on a scenario",
	Run: func(cmd *cobra.Command, args []string) {
		scenario, procs := mustLoadProcesses()

		q := quantum
		if q == 0 {
			q = scenario.Quantum
		}

		if !trace.IsValidTraceLevel(traceLevel) {
			logrus.Fatalf("Invalid trace level: %s", traceLevel)
		}
		var tr *trace.SimulationTrace
		if trace.TraceLevel(traceLevel) == trace.TraceLevelDecisions {
			tr = trace.NewSimulationTrace(trace.TraceConfig{Level: trace.TraceLevelDecisions})
		}

		result, err := runScheduler(algorithm, procs, q, tr)
		if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}

		printResult(result)
		if tr != nil {
			printTraceSummary(tr)
		}
	},
}

// compareCmd runs FCFS, SJF, and RR on the same process set side by side
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Run all three scheduling algorithms and compare their averages",
	Run: func(cmd *cobra.Command, args []string) {
		scenario, procs := mustLoadProcesses()

		q := quantum
		if q == 0 {
			q = scenario.Quantum
		}

		fmt.Println("=== Comparative Analysis ===")
		fmt.Printf("%-12s %-14s %-16s %-14s\n", "Algorithm", "Avg Waiting", "Avg Turnaround", "Avg Response")
		for _, name := range []string{sim.AlgorithmFCFS, sim.AlgorithmSJF, sim.AlgorithmRR} {
			result, err := runScheduler(name, procs, q, nil)
			if err != nil {
				logrus.Fatalf("Simulation failed (%s): %v", name, err)
			}
			fmt.Printf("%-12s %-14.2f %-16.2f %-14.2f\n",
				strings.ToUpper(name), result.AverageWaiting, result.AverageTurnaround, result.AverageResponse)
		}
	},
}

// mustLoadProcesses loads the scenario and its process set, exiting on error.
func mustLoadProcesses() (*Scenario, []sim.Process) {
	if scenarioPath == "" {
		logrus.Fatalf("Scenario file not provided. Use --scenario.")
	}
	scenario, err := LoadScenario(scenarioPath)
	if err != nil {
		logrus.Fatalf("Could not load scenario: %v", err)
	}
	procs := scenario.SimProcesses()
	if len(procs) == 0 {
		logrus.Fatalf("Scenario %s defines no processes", scenarioPath)
	}
	return scenario, procs
}

// printResult renders the Gantt timeline, the per-process metrics table, and
// the aggregate averages.
func printResult(result *sim.SimulationResult) {
	fmt.Printf("=== %s Schedule ===\n", strings.ToUpper(result.Algorithm))

	var timeline, labels strings.Builder
	timeline.WriteString("|")
	labels.WriteString(fmt.Sprintf("%d", result.Segments[0].Start))
	for _, seg := range result.Segments {
		name := seg.ProcessID
		if seg.Idle() {
			name = "idle"
		}
		timeline.WriteString(fmt.Sprintf(" %-6s |", name))
		labels.WriteString(fmt.Sprintf("%9d", seg.End))
	}
	fmt.Println(timeline.String())
	fmt.Println(labels.String())

	fmt.Println("\n=== Process Metrics ===")
	fmt.Printf("%-8s %-10s %-8s %-12s %-10s %-12s %-10s\n",
		"PID", "Arrival", "Burst", "Completion", "Waiting", "Turnaround", "Response")
	for _, m := range result.PerProcess {
		fmt.Printf("%-8s %-10d %-8d %-12d %-10d %-12d %-10d\n",
			m.ID, m.Arrival, m.Burst, m.Completion, m.Waiting, m.Turnaround, m.Response)
	}

	fmt.Printf("\nAverage Waiting Time    : %.2f\n", result.AverageWaiting)
	fmt.Printf("Average Turnaround Time : %.2f\n", result.AverageTurnaround)
	fmt.Printf("Average Response Time   : %.2f\n", result.AverageResponse)
	fmt.Printf("CPU Busy / Idle         : %d / %d\n", result.TotalBusy(), result.TotalIdle())
}

// printTraceSummary renders aggregate dispatch statistics for a traced run.
func printTraceSummary(tr *trace.SimulationTrace) {
	summary := trace.Summarize(tr)
	fmt.Println("\n=== Dispatch Trace ===")
	fmt.Printf("Dispatches        : %d\n", summary.TotalDispatches)
	fmt.Printf("Mean slice length : %.2f\n", summary.MeanSliceLength)
	fmt.Printf("Max queue depth   : %d\n", summary.MaxQueueDepth)
	for _, d := range tr.Dispatches {
		fmt.Printf("  %-6s [%d, %d) remaining=%d\n", d.ProcessID, d.Start, d.End, d.Remaining)
	}
}

// init sets up the run/compare flags and attaches the subcommands
func init() {
	runCmd.Flags().StringVar(&scenarioPath, "scenario", "", "Path to the scenario YAML file")
	runCmd.Flags().StringVar(&algorithm, "algorithm", sim.AlgorithmFCFS, "Scheduling algorithm (fcfs, sjf, rr)")
	runCmd.Flags().Int64Var(&quantum, "quantum", 0, "Round-Robin time quantum (overrides the scenario value)")
	runCmd.Flags().StringVar(&traceLevel, "trace", "none", "Decision trace level (none, decisions)")

	compareCmd.Flags().StringVar(&scenarioPath, "scenario", "", "Path to the scenario YAML file")
	compareCmd.Flags().Int64Var(&quantum, "quantum", 0, "Round-Robin time quantum (overrides the scenario value)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(compareCmd)
}
