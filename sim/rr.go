// Round-Robin: preemptive rotation with a fixed time quantum and an explicit
// FIFO ready queue.

package sim

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/cpusched-sim/cpusched-sim/sim/trace"
)

// rrProc is the per-run working state for one process in a Round-Robin run.
// Remaining-burst bookkeeping lives here, not on the shared Process record,
// so the input stays read-only and concurrent runs never share state.
type rrProc struct {
	Process
	index      int // position in the caller's input slice
	remaining  int64
	started    bool
	firstStart int64
	completion int64
}

// RoundRobin runs the preemptive fixed-quantum rotation. Each dequeued
// process executes for min(quantum, remaining burst) and produces one
// segment per slice. Admission ordering is the invariant that matters:
// processes with arrival <= clock enter the ready queue in arrival order
// (ties by input order), and after a slice any process that arrived during
// it is admitted BEFORE the preempted process is re-enqueued at the tail.
// Response time is measured to a process's first slice only.
//
// With quantum >= every burst each process runs in a single slice and the
// timeline matches FCFS.
//
// tr may be nil to skip decision tracing.
func RoundRobin(procs []Process, quantum int64, tr *trace.SimulationTrace) (*SimulationResult, error) {
	if err := ValidateProcesses(procs); err != nil {
		return nil, err
	}
	if quantum <= 0 {
		return nil, fmt.Errorf("quantum must be > 0, got %d", quantum)
	}

	// Admission order: by arrival, ties by input order.
	states := make([]*rrProc, 0, len(procs))
	for i, p := range procs {
		states = append(states, &rrProc{Process: p, index: i, remaining: p.Burst})
	}
	sort.SliceStable(states, func(i, j int) bool {
		return states[i].Arrival < states[j].Arrival
	})

	ready := newReadyQueue()
	clock := states[0].Arrival
	next := 0 // next not-yet-admitted process
	admit := func() {
		for next < len(states) && states[next].Arrival <= clock {
			ready.Enqueue(states[next])
			next++
		}
	}
	admit()

	segments := make([]ScheduleSegment, 0, len(procs))
	for unfinished := len(states); unfinished > 0; {
		if ready.Empty() {
			// Nothing runnable: idle until the next arrival.
			gap := ScheduleSegment{Start: clock, End: states[next].Arrival}
			segments = append(segments, gap)
			clock = gap.End
			admit()
			continue
		}

		p := ready.Dequeue()
		if !p.started {
			p.started = true
			p.firstStart = clock
		}

		slice := quantum
		if p.remaining < slice {
			slice = p.remaining
		}
		start := clock
		clock += slice
		p.remaining -= slice
		segments = append(segments, ScheduleSegment{ProcessID: p.ID, Start: start, End: clock})

		// Arrivals during this slice are admitted ahead of the preempted
		// process.
		admit()
		if p.remaining > 0 {
			ready.Enqueue(p)
		} else {
			p.completion = clock
			unfinished--
		}

		logrus.Debugf("rr: dispatch %s [%d, %d) remaining=%d queue=%s", p.ID, start, clock, p.remaining, ready)
		tr.RecordDispatch(trace.DispatchRecord{
			Algorithm:  AlgorithmRR,
			ProcessID:  p.ID,
			Start:      start,
			End:        clock,
			Remaining:  p.remaining,
			QueueDepth: ready.Len(),
		})
	}

	firstStart := make(map[string]int64, len(states))
	completion := make(map[string]int64, len(states))
	for _, p := range states {
		firstStart[p.ID] = p.firstStart
		completion[p.ID] = p.completion
	}
	return newResult(AlgorithmRR, procs, segments, firstStart, completion)
}
