package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sim "github.com/cpusched-sim/cpusched-sim/sim"
)

// TestLoadScenario_Example verifies that examples/scenario.yaml loads and
// drives both the schedulers and the safety check.
func TestLoadScenario_Example(t *testing.T) {
	// GIVEN the shipped example scenario
	path := filepath.Join("..", "examples", "scenario.yaml")
	scenario, err := LoadScenario(path)
	require.NoError(t, err, "failed to load scenario.yaml")

	// THEN the process set and quantum match the file
	require.Len(t, scenario.Processes, 3)
	assert.Equal(t, int64(2), scenario.Quantum)
	procs := scenario.SimProcesses()
	assert.Equal(t, "P1", procs[0].ID)
	require.NoError(t, sim.ValidateProcesses(procs))

	// THEN every scheduler accepts the process set
	for _, name := range []string{sim.AlgorithmFCFS, sim.AlgorithmSJF} {
		_, err := runScheduler(name, procs, scenario.Quantum, nil)
		assert.NoError(t, err, name)
	}
	_, err = sim.RoundRobin(procs, scenario.Quantum, nil)
	assert.NoError(t, err)

	// THEN the resource section builds a valid, safe snapshot
	require.NotNil(t, scenario.Resources)
	state, err := scenario.Resources.ResourceState()
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 3, 2}, state.Available, "derived from totals")
	result, err := sim.RunSafety(state, nil)
	require.NoError(t, err)
	assert.True(t, result.Safe)
}

func TestLoadScenario_MissingFile_ReturnsError(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadScenario_MalformedYAML_ReturnsError(t *testing.T) {
	// GIVEN a file that is not valid YAML for the scenario shape
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("processes: {not: [a, list"), 0o644))

	_, err := LoadScenario(path)
	assert.Error(t, err)
}

func TestResourceSpec_AvailableAndTotalAreExclusive(t *testing.T) {
	// GIVEN a resource section that sets both vectors
	spec := &ResourceSpec{
		Processes:  []string{"P0"},
		Total:      []int64{2},
		Available:  []int64{1},
		Allocation: [][]int64{{1}},
		Max:        [][]int64{{2}},
	}

	// WHEN converted THEN it is rejected
	_, err := spec.ResourceState()
	assert.Error(t, err)
}

func TestResourceSpec_NeitherVector_IsError(t *testing.T) {
	spec := &ResourceSpec{
		Processes:  []string{"P0"},
		Allocation: [][]int64{{1}},
		Max:        [][]int64{{2}},
	}
	_, err := spec.ResourceState()
	assert.Error(t, err)
}

func TestResourceSpec_ExplicitAvailable_DefaultsNames(t *testing.T) {
	// GIVEN a resource section with an explicit Available and no names
	spec := &ResourceSpec{
		Processes:  []string{"P0", "P1"},
		Available:  []int64{2, 2},
		Allocation: [][]int64{{1, 0}, {0, 1}},
		Max:        [][]int64{{2, 1}, {1, 2}},
	}

	// WHEN converted
	state, err := spec.ResourceState()
	require.NoError(t, err)

	// THEN positional resource names are generated
	assert.Equal(t, []string{"R1", "R2"}, state.Resources)
	assert.Equal(t, []int64{2, 2}, state.Available)
}
