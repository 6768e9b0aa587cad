// Defines the Process record shared by every scheduler and the derived
// per-process metrics computed after a run.

package sim

import (
	"fmt"
)

// Process is one schedulable unit. Instances are read-only inputs to the
// schedulers: preemption bookkeeping (remaining burst) lives in per-run
// working state owned by the Round-Robin scheduler, never on this struct.
type Process struct {
	ID      string // unique identifier within a run
	Arrival int64  // simulation time at which the process becomes runnable (>= 0)
	Burst   int64  // total CPU time required (> 0)

	// Priority is an optional external tie-break source. None of the current
	// policies (fcfs, sjf, rr) consult it; it is carried so callers can
	// round-trip it through scenario files.
	Priority int
}

func (p Process) String() string {
	return fmt.Sprintf("Process: (ID: %s, Arrival: %d, Burst: %d)", p.ID, p.Arrival, p.Burst)
}

// ProcessMetrics holds the derived timing metrics for one process.
// All fields are computed post-simulation; nothing here is stored state.
type ProcessMetrics struct {
	ID         string
	Arrival    int64
	Burst      int64
	FirstStart int64 // start of the process's first scheduled segment
	Completion int64
	Turnaround int64 // Completion - Arrival
	Waiting    int64 // Turnaround - Burst
	Response   int64 // FirstStart - Arrival
}

// ValidateProcesses checks the scheduler input invariants: a non-empty set,
// arrival >= 0, burst > 0, and unique non-empty identifiers. It is called by
// every scheduler entry point before any simulation step runs, so a bad input
// fails atomically with no partial result.
func ValidateProcesses(procs []Process) error {
	if len(procs) == 0 {
		return fmt.Errorf("process set must not be empty")
	}
	seen := make(map[string]bool, len(procs))
	for i, p := range procs {
		if p.ID == "" {
			return fmt.Errorf("process at index %d has an empty ID", i)
		}
		if seen[p.ID] {
			return fmt.Errorf("duplicate process ID %q", p.ID)
		}
		seen[p.ID] = true
		if p.Arrival < 0 {
			return fmt.Errorf("process %q: arrival must be >= 0, got %d", p.ID, p.Arrival)
		}
		if p.Burst <= 0 {
			return fmt.Errorf("process %q: burst must be > 0, got %d", p.ID, p.Burst)
		}
	}
	return nil
}

// DeriveMetrics computes turnaround, waiting, and response times for one
// process from its first-start and completion times. Pure arithmetic, but it
// fails fast with a descriptive error if the inputs would produce negative
// metrics instead of returning nonsense.
func DeriveMetrics(p Process, firstStart, completion int64) (ProcessMetrics, error) {
	if p.Arrival < 0 || p.Burst <= 0 {
		return ProcessMetrics{}, fmt.Errorf("process %q: invalid arrival=%d burst=%d", p.ID, p.Arrival, p.Burst)
	}
	if firstStart < p.Arrival {
		return ProcessMetrics{}, fmt.Errorf("process %q: first start %d precedes arrival %d", p.ID, firstStart, p.Arrival)
	}
	if completion < firstStart+p.Burst {
		return ProcessMetrics{}, fmt.Errorf("process %q: completion %d precedes first start %d plus burst %d",
			p.ID, completion, firstStart, p.Burst)
	}

	m := ProcessMetrics{
		ID:         p.ID,
		Arrival:    p.Arrival,
		Burst:      p.Burst,
		FirstStart: firstStart,
		Completion: completion,
	}
	m.Turnaround = completion - p.Arrival
	m.Waiting = m.Turnaround - p.Burst
	m.Response = firstStart - p.Arrival
	return m, nil
}
