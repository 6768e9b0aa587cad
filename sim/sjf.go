// Shortest-Job-First: non-preemptive, picks the smallest burst among arrived
// processes. Greedy selection minimizes mean waiting time under the
// non-preemptive, single-CPU, known-burst assumptions of this simulator; it
// is not a universal optimality claim.

package sim

import (
	"sort"

	"github.com/emirpasic/gods/trees/binaryheap"
	"github.com/sirupsen/logrus"

	"github.com/cpusched-sim/cpusched-sim/sim/trace"
)

// sjfProc pairs a process with its input position so the heap comparator can
// break ties deterministically.
type sjfProc struct {
	Process
	index int // position in the caller's input slice
}

// sjfComparator orders candidates by burst, then arrival, then input order.
func sjfComparator(a, b interface{}) int {
	pa, pb := a.(*sjfProc), b.(*sjfProc)
	switch {
	case pa.Burst < pb.Burst:
		return -1
	case pa.Burst > pb.Burst:
		return 1
	case pa.Arrival < pb.Arrival:
		return -1
	case pa.Arrival > pb.Arrival:
		return 1
	default:
		return pa.index - pb.index
	}
}

// SJF schedules each process for its full burst, repeatedly selecting the
// arrived-and-unscheduled process with the smallest burst time (ties: earliest
// arrival, then input order). When nothing has arrived the clock jumps to the
// next arrival and the gap is emitted as an idle segment. The clock starts at
// the minimum arrival time.
//
// tr may be nil to skip decision tracing.
func SJF(procs []Process, tr *trace.SimulationTrace) (*SimulationResult, error) {
	if err := ValidateProcesses(procs); err != nil {
		return nil, err
	}

	// Admission order: by arrival, ties by input order.
	pending := make([]*sjfProc, 0, len(procs))
	for i, p := range procs {
		pending = append(pending, &sjfProc{Process: p, index: i})
	}
	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].Arrival < pending[j].Arrival
	})

	arrived := binaryheap.NewWith(sjfComparator)
	clock := pending[0].Arrival
	next := 0 // next pending process to admit
	admit := func() {
		for next < len(pending) && pending[next].Arrival <= clock {
			arrived.Push(pending[next])
			next++
		}
	}

	segments := make([]ScheduleSegment, 0, len(procs))
	firstStart := make(map[string]int64, len(procs))
	completion := make(map[string]int64, len(procs))

	for scheduled := 0; scheduled < len(procs); scheduled++ {
		admit()
		if arrived.Empty() {
			// CPU idles until the next arrival.
			gap := ScheduleSegment{Start: clock, End: pending[next].Arrival}
			segments = append(segments, gap)
			clock = gap.End
			admit()
		}

		value, _ := arrived.Pop()
		p := value.(*sjfProc)
		start := clock
		clock += p.Burst
		segments = append(segments, ScheduleSegment{ProcessID: p.ID, Start: start, End: clock})
		firstStart[p.ID] = start
		completion[p.ID] = clock

		logrus.Debugf("sjf: dispatch %s (burst %d) [%d, %d)", p.ID, p.Burst, start, clock)
		tr.RecordDispatch(trace.DispatchRecord{
			Algorithm:  AlgorithmSJF,
			ProcessID:  p.ID,
			Start:      start,
			End:        clock,
			QueueDepth: arrived.Size(),
		})
	}

	return newResult(AlgorithmSJF, procs, segments, firstStart, completion)
}
