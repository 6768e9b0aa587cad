// The safety subcommand: Banker's Algorithm over the scenario's resource
// matrices, with the step-by-step release trace.

package cmd

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/cpusched-sim/cpusched-sim/sim"
	"github.com/cpusched-sim/cpusched-sim/sim/trace"
)

var safetyScenarioPath string // Path to the scenario YAML file

// safetyCmd evaluates the Banker's safety check on the scenario's matrices
var safetyCmd = &cobra.Command{
	Use:   "safety",
	Short: "Run the Banker's Algorithm safety check on a scenario",
	Run: func(cmd *cobra.Command, args []string) {
		if safetyScenarioPath == "" {
			logrus.Fatalf("Scenario file not provided. Use --scenario.")
		}
		scenario, err := LoadScenario(safetyScenarioPath)
		if err != nil {
			logrus.Fatalf("Could not load scenario: %v", err)
		}
		if scenario.Resources == nil {
			logrus.Fatalf("Scenario %s has no resources section", safetyScenarioPath)
		}
		state, err := scenario.Resources.ResourceState()
		if err != nil {
			logrus.Fatalf("Invalid resource state: %v", err)
		}

		tr := trace.NewSimulationTrace(trace.TraceConfig{Level: trace.TraceLevelDecisions})
		result, err := sim.RunSafety(state, tr)
		if err != nil {
			logrus.Fatalf("Safety check failed: %v", err)
		}

		printSafety(state, result, tr)
	},
}

// printSafety renders the snapshot, the release trace, and the verdict.
func printSafety(state *sim.ResourceState, result sim.SafetyResult, tr *trace.SimulationTrace) {
	fmt.Println("=== Banker's Safety Check ===")
	fmt.Printf("%-8s %-16s %-16s %-16s\n", "PID", "Allocation", "Max", "Need")
	need := state.Need()
	for i, pid := range state.Processes {
		fmt.Printf("%-8s %-16v %-16v %-16v\n", pid, state.Allocation[i], state.Max[i], need[i])
	}
	fmt.Printf("Available: %v\n\n", state.Available)

	for _, step := range tr.SafetySteps {
		fmt.Printf("%s can finish, releases %v, available now %v\n", step.ProcessID, step.Released, step.Available)
	}

	if result.Safe {
		fmt.Printf("\nSAFE. Sequence: %s\n", strings.Join(result.Sequence, " -> "))
	} else {
		fmt.Println("\nUNSAFE. No safe sequence exists.")
	}
}

// init attaches the safety subcommand
func init() {
	safetyCmd.Flags().StringVar(&safetyScenarioPath, "scenario", "", "Path to the scenario YAML file")
	rootCmd.AddCommand(safetyCmd)
}
