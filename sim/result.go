// Assembles the SimulationResult returned by every scheduler: the ordered
// timeline plus per-process and aggregate metrics.

package sim

import "fmt"

// Algorithm names reported in SimulationResult and trace records.
const (
	AlgorithmFCFS = "fcfs"
	AlgorithmSJF  = "sjf"
	AlgorithmRR   = "rr"
)

// SimulationResult is the complete output of one scheduler run. The caller
// owns it once returned; the engine keeps no reference, so re-running the
// same input always yields an independent, identical result.
type SimulationResult struct {
	Algorithm string

	// Segments is the execution timeline in chronological order, including
	// idle gaps (empty ProcessID).
	Segments []ScheduleSegment

	// PerProcess holds derived metrics in the caller's input order.
	PerProcess []ProcessMetrics

	AverageWaiting    float64
	AverageTurnaround float64
	AverageResponse   float64
}

// TotalBusy returns the total time the CPU spent executing processes.
func (r *SimulationResult) TotalBusy() int64 {
	var busy int64
	for _, s := range r.Segments {
		if !s.Idle() {
			busy += s.Duration()
		}
	}
	return busy
}

// TotalIdle returns the total time the CPU sat idle between processes.
func (r *SimulationResult) TotalIdle() int64 {
	var idle int64
	for _, s := range r.Segments {
		if s.Idle() {
			idle += s.Duration()
		}
	}
	return idle
}

// Makespan returns the span of the timeline from first start to last end.
// Zero for an empty timeline.
func (r *SimulationResult) Makespan() int64 {
	if len(r.Segments) == 0 {
		return 0
	}
	return r.Segments[len(r.Segments)-1].End - r.Segments[0].Start
}

// newResult derives per-process metrics (in input order) and the aggregate
// averages from the recorded first-start and completion times. Every process
// must appear in both maps; a missing entry means the scheduler terminated
// without running it, which is a bug, not an input error.
func newResult(algorithm string, procs []Process, segments []ScheduleSegment,
	firstStart, completion map[string]int64) (*SimulationResult, error) {

	res := &SimulationResult{
		Algorithm:  algorithm,
		Segments:   segments,
		PerProcess: make([]ProcessMetrics, 0, len(procs)),
	}

	var waitingSum, turnaroundSum, responseSum int64
	for _, p := range procs {
		start, ok := firstStart[p.ID]
		if !ok {
			return nil, fmt.Errorf("%s: process %q was never scheduled", algorithm, p.ID)
		}
		end, ok := completion[p.ID]
		if !ok {
			return nil, fmt.Errorf("%s: process %q never completed", algorithm, p.ID)
		}
		m, err := DeriveMetrics(p, start, end)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", algorithm, err)
		}
		res.PerProcess = append(res.PerProcess, m)
		waitingSum += m.Waiting
		turnaroundSum += m.Turnaround
		responseSum += m.Response
	}

	n := float64(len(procs))
	res.AverageWaiting = float64(waitingSum) / n
	res.AverageTurnaround = float64(turnaroundSum) / n
	res.AverageResponse = float64(responseSum) / n
	return res, nil
}
