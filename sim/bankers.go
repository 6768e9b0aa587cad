// Banker's safety algorithm: a read-only feasibility search over a static
// resource-allocation snapshot. "Unsafe" is a computed outcome, never an
// error; errors are reserved for malformed matrices.

package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/cpusched-sim/cpusched-sim/sim/trace"
)

// ResourceState is a snapshot of the allocation state evaluated by the
// safety check. Row i of Allocation and Max describes Processes[i]; column r
// describes resource type r. The check never mutates the snapshot.
type ResourceState struct {
	Processes  []string  // process identifiers, one per matrix row
	Resources  []string  // resource type names, one per column (optional, for rendering)
	Allocation [][]int64 // instances currently held
	Max        [][]int64 // maximum instances ever needed
	Available  []int64   // instances currently free
}

// SafetyResult is the outcome of a safety check. Sequence is the order in
// which every process can run to its maximum need without deadlock; it is
// empty when Safe is false.
type SafetyResult struct {
	Safe     bool
	Sequence []string
}

// NewResourceStateFromTotals builds a ResourceState from per-resource totals
// instead of an explicit Available vector: Available[r] = total[r] minus the
// sum of column r of allocation. A column that allocates more than the total
// is a configuration error.
func NewResourceStateFromTotals(processIDs, resourceNames []string, total []int64, allocation, max [][]int64) (*ResourceState, error) {
	if len(total) != len(resourceNames) {
		return nil, fmt.Errorf("total vector has %d entries, want %d resource types", len(total), len(resourceNames))
	}
	state := &ResourceState{
		Processes:  processIDs,
		Resources:  resourceNames,
		Allocation: allocation,
		Max:        max,
		Available:  make([]int64, len(total)),
	}
	copy(state.Available, total)
	for i, row := range allocation {
		if len(row) != len(total) {
			return nil, fmt.Errorf("allocation row %d has %d entries, want %d", i, len(row), len(total))
		}
		for r, held := range row {
			state.Available[r] -= held
		}
	}
	for r, free := range state.Available {
		if free < 0 {
			return nil, fmt.Errorf("resource %s: allocated instances exceed total %d", state.resourceName(r), total[r])
		}
	}
	if err := state.Validate(); err != nil {
		return nil, err
	}
	return state, nil
}

// resourceName returns the configured name for column r, or a positional
// fallback when no names were supplied.
func (s *ResourceState) resourceName(r int) string {
	if r < len(s.Resources) {
		return s.Resources[r]
	}
	return fmt.Sprintf("R%d", r)
}

// Validate checks matrix shape and value invariants: same-shaped Allocation
// and Max, one row per process, no negative entries, and Need = Max -
// Allocation >= 0 everywhere. Called by RunSafety before the search, so a
// malformed snapshot fails atomically.
func (s *ResourceState) Validate() error {
	n := len(s.Processes)
	m := len(s.Available)
	if n == 0 {
		return fmt.Errorf("resource state must name at least one process")
	}
	if m == 0 {
		return fmt.Errorf("resource state must have at least one resource type")
	}
	if len(s.Allocation) != n {
		return fmt.Errorf("allocation has %d rows, want %d", len(s.Allocation), n)
	}
	if len(s.Max) != n {
		return fmt.Errorf("max has %d rows, want %d", len(s.Max), n)
	}
	seen := make(map[string]bool, n)
	for i, id := range s.Processes {
		if id == "" {
			return fmt.Errorf("process at row %d has an empty ID", i)
		}
		if seen[id] {
			return fmt.Errorf("duplicate process ID %q", id)
		}
		seen[id] = true
	}
	for r, free := range s.Available {
		if free < 0 {
			return fmt.Errorf("available[%s] is negative: %d", s.resourceName(r), free)
		}
	}
	for i := 0; i < n; i++ {
		if len(s.Allocation[i]) != m {
			return fmt.Errorf("allocation row for %q has %d entries, want %d", s.Processes[i], len(s.Allocation[i]), m)
		}
		if len(s.Max[i]) != m {
			return fmt.Errorf("max row for %q has %d entries, want %d", s.Processes[i], len(s.Max[i]), m)
		}
		for r := 0; r < m; r++ {
			if s.Allocation[i][r] < 0 {
				return fmt.Errorf("allocation[%s][%s] is negative: %d", s.Processes[i], s.resourceName(r), s.Allocation[i][r])
			}
			if s.Max[i][r] < 0 {
				return fmt.Errorf("max[%s][%s] is negative: %d", s.Processes[i], s.resourceName(r), s.Max[i][r])
			}
			if s.Max[i][r] < s.Allocation[i][r] {
				return fmt.Errorf("need[%s][%s] is negative: max %d < allocation %d",
					s.Processes[i], s.resourceName(r), s.Max[i][r], s.Allocation[i][r])
			}
		}
	}
	return nil
}

// Need returns the Need matrix, Max - Allocation. Assumes a validated state.
func (s *ResourceState) Need() [][]int64 {
	need := make([][]int64, len(s.Processes))
	for i := range need {
		need[i] = make([]int64, len(s.Available))
		for r := range need[i] {
			need[i][r] = s.Max[i][r] - s.Allocation[i][r]
		}
	}
	return need
}

// RunSafety runs the classical safety algorithm on a snapshot. The scan is
// ascending process index and restarts from row 0 after every commit, so
// exactly one candidate is committed per full scan and the returned sequence
// is reproducible with no tie-breaks. A full scan with no eligible process
// means the state is unsafe. O(N^2 * M); N and M are simulator-scale, and the
// simple scan is deliberate: reordering the search would silently change
// which of several valid safe sequences is returned.
//
// tr may be nil to skip the intermediate-Available trace.
func RunSafety(state *ResourceState, tr *trace.SimulationTrace) (SafetyResult, error) {
	if err := state.Validate(); err != nil {
		return SafetyResult{}, err
	}

	n := len(state.Processes)
	need := state.Need()
	work := make([]int64, len(state.Available))
	copy(work, state.Available)
	finished := make([]bool, n)
	sequence := make([]string, 0, n)

	for len(sequence) < n {
		committed := false
		for i := 0; i < n && !committed; i++ {
			if finished[i] || !vectorLEQ(need[i], work) {
				continue
			}
			// Simulate completion: the process takes its full need, runs,
			// and releases everything it holds.
			for r := range work {
				work[r] += state.Allocation[i][r]
			}
			finished[i] = true
			sequence = append(sequence, state.Processes[i])
			committed = true

			logrus.Debugf("bankers: %s can finish, available now %v", state.Processes[i], work)
			tr.RecordSafety(trace.SafetyRecord{
				ProcessID: state.Processes[i],
				Released:  cloneVector(state.Allocation[i]),
				Available: cloneVector(work),
			})
		}
		if !committed {
			logrus.Debugf("bankers: no eligible process among %d unfinished, state is unsafe", n-len(sequence))
			return SafetyResult{Safe: false}, nil
		}
	}
	return SafetyResult{Safe: true, Sequence: sequence}, nil
}

// vectorLEQ reports whether a <= b component-wise.
func vectorLEQ(a, b []int64) bool {
	for r := range a {
		if a[r] > b[r] {
			return false
		}
	}
	return true
}

func cloneVector(v []int64) []int64 {
	out := make([]int64, len(v))
	copy(out, v)
	return out
}
