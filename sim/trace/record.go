package trace

// DispatchRecord captures one scheduler dispatch decision: which process was
// granted the CPU, for which interval, and what the scheduler knew when it
// decided. Non-preemptive schedulers emit one record per process; Round-Robin
// emits one per quantum slice.
type DispatchRecord struct {
	Algorithm  string // scheduler that made the decision ("fcfs", "sjf", "rr")
	ProcessID  string
	Start      int64
	End        int64
	Remaining  int64 // remaining burst after this slice (0 for non-preemptive)
	QueueDepth int   // ready-queue length right after the dispatch (0 where no queue exists)
}

// SafetyRecord captures one commit of the Banker's safety search: the process
// simulated to completion, the allocation it released, and the resulting
// Available vector. The ordered record list is the intermediate-Available
// trace callers may render.
type SafetyRecord struct {
	ProcessID string
	Released  []int64 // the committed process's allocation row
	Available []int64 // working Available after the release
}
