package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalDispatches int
	TotalBusyTime   int64            // sum of dispatched slice durations
	MeanSliceLength float64          // TotalBusyTime / TotalDispatches
	MaxQueueDepth   int              // deepest ready queue observed at dispatch time
	SliceCounts     map[string]int   // process ID → number of dispatched slices
	BusyPerProcess  map[string]int64 // process ID → total dispatched time
	SafetyCommits   int              // number of Banker's safety-search commits
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		SliceCounts:    make(map[string]int),
		BusyPerProcess: make(map[string]int64),
	}
	if st == nil {
		return summary
	}

	summary.TotalDispatches = len(st.Dispatches)
	for _, d := range st.Dispatches {
		duration := d.End - d.Start
		summary.TotalBusyTime += duration
		summary.SliceCounts[d.ProcessID]++
		summary.BusyPerProcess[d.ProcessID] += duration
		if d.QueueDepth > summary.MaxQueueDepth {
			summary.MaxQueueDepth = d.QueueDepth
		}
	}
	if summary.TotalDispatches > 0 {
		summary.MeanSliceLength = float64(summary.TotalBusyTime) / float64(summary.TotalDispatches)
	}

	summary.SafetyCommits = len(st.SafetySteps)

	return summary
}
