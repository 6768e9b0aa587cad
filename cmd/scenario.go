// Loads simulation scenarios from YAML: the process set, the Round-Robin
// quantum, and (optionally) the Banker's matrices.

package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	sim "github.com/cpusched-sim/cpusched-sim/sim"
)

// Scenario is the top-level scenario file.
type Scenario struct {
	Processes []ProcessSpec `yaml:"processes"`
	Quantum   int64         `yaml:"quantum,omitempty"`
	Resources *ResourceSpec `yaml:"resources,omitempty"`
}

// ProcessSpec describes one process row in the scenario file.
type ProcessSpec struct {
	ID       string `yaml:"id"`
	Arrival  int64  `yaml:"arrival"`
	Burst    int64  `yaml:"burst"`
	Priority int    `yaml:"priority,omitempty"`
}

// ResourceSpec describes the Banker's input. Either `available` or `total`
// must be set; with `total` the free vector is derived as total minus the
// allocated column sums.
type ResourceSpec struct {
	Names      []string  `yaml:"names,omitempty"`
	Total      []int64   `yaml:"total,omitempty"`
	Available  []int64   `yaml:"available,omitempty"`
	Processes  []string  `yaml:"processes"`
	Allocation [][]int64 `yaml:"allocation"`
	Max        [][]int64 `yaml:"max"`
}

// LoadScenario reads and parses a scenario YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	return &scenario, nil
}

// SimProcesses converts the scenario rows into engine Process records.
func (s *Scenario) SimProcesses() []sim.Process {
	procs := make([]sim.Process, 0, len(s.Processes))
	for _, spec := range s.Processes {
		procs = append(procs, sim.Process{
			ID:       spec.ID,
			Arrival:  spec.Arrival,
			Burst:    spec.Burst,
			Priority: spec.Priority,
		})
	}
	return procs
}

// ResourceState builds the engine snapshot from the scenario's resource
// section.
func (r *ResourceSpec) ResourceState() (*sim.ResourceState, error) {
	names := r.Names
	if len(names) == 0 {
		width := len(r.Available)
		if width == 0 {
			width = len(r.Total)
		}
		names = make([]string, width)
		for i := range names {
			names[i] = fmt.Sprintf("R%d", i+1)
		}
	}

	if len(r.Total) > 0 {
		if len(r.Available) > 0 {
			return nil, fmt.Errorf("resource section sets both total and available; pick one")
		}
		return sim.NewResourceStateFromTotals(r.Processes, names, r.Total, r.Allocation, r.Max)
	}
	if len(r.Available) == 0 {
		return nil, fmt.Errorf("resource section must set either total or available")
	}
	return &sim.ResourceState{
		Processes:  r.Processes,
		Resources:  names,
		Allocation: r.Allocation,
		Max:        r.Max,
		Available:  r.Available,
	}, nil
}
