// First-Come-First-Served: non-preemptive, each process runs to completion
// in arrival order.

package sim

import (
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/cpusched-sim/cpusched-sim/sim/trace"
)

// FCFS schedules processes in non-decreasing arrival order, running each to
// completion. Ties on arrival keep the caller's input order (the sort is
// stable). The clock starts at the earliest arrival, so the timeline never
// opens with an idle gap; interior gaps are emitted as idle segments.
//
// tr may be nil to skip decision tracing.
func FCFS(procs []Process, tr *trace.SimulationTrace) (*SimulationResult, error) {
	if err := ValidateProcesses(procs); err != nil {
		return nil, err
	}

	order := make([]Process, len(procs))
	copy(order, procs)
	sort.SliceStable(order, func(i, j int) bool {
		return order[i].Arrival < order[j].Arrival
	})

	clock := order[0].Arrival
	segments := make([]ScheduleSegment, 0, len(order))
	firstStart := make(map[string]int64, len(order))
	completion := make(map[string]int64, len(order))

	for _, p := range order {
		if clock < p.Arrival {
			segments = append(segments, ScheduleSegment{Start: clock, End: p.Arrival})
			clock = p.Arrival
		}
		start := clock
		clock += p.Burst
		segments = append(segments, ScheduleSegment{ProcessID: p.ID, Start: start, End: clock})
		firstStart[p.ID] = start
		completion[p.ID] = clock

		logrus.Debugf("fcfs: dispatch %s [%d, %d)", p.ID, start, clock)
		tr.RecordDispatch(trace.DispatchRecord{
			Algorithm: AlgorithmFCFS,
			ProcessID: p.ID,
			Start:     start,
			End:       clock,
		})
	}

	return newResult(AlgorithmFCFS, procs, segments, firstStart, completion)
}
