package trace

import (
	"testing"
)

func TestIsValidTraceLevel(t *testing.T) {
	cases := []struct {
		level string
		want  bool
	}{
		{"none", true},
		{"decisions", true},
		{"", true},
		{"verbose", false},
		{"all", false},
	}
	for _, tc := range cases {
		if got := IsValidTraceLevel(tc.level); got != tc.want {
			t.Errorf("IsValidTraceLevel(%q): got %v, want %v", tc.level, got, tc.want)
		}
	}
}

func TestSimulationTrace_RecordsAtDecisionLevel(t *testing.T) {
	// GIVEN a decision-level trace
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelDecisions})

	// WHEN records are appended
	st.RecordDispatch(DispatchRecord{Algorithm: "rr", ProcessID: "P1", Start: 0, End: 2})
	st.RecordSafety(SafetyRecord{ProcessID: "P1", Available: []int64{5, 3, 2}})

	// THEN both are kept
	if len(st.Dispatches) != 1 {
		t.Errorf("Dispatches: got %d, want 1", len(st.Dispatches))
	}
	if len(st.SafetySteps) != 1 {
		t.Errorf("SafetySteps: got %d, want 1", len(st.SafetySteps))
	}
}

func TestSimulationTrace_LevelNone_DropsRecords(t *testing.T) {
	// GIVEN a trace with tracing disabled
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelNone})

	// WHEN records are appended
	st.RecordDispatch(DispatchRecord{ProcessID: "P1"})
	st.RecordSafety(SafetyRecord{ProcessID: "P1"})

	// THEN nothing is kept
	if len(st.Dispatches) != 0 || len(st.SafetySteps) != 0 {
		t.Errorf("level none kept records: %d dispatches, %d safety steps",
			len(st.Dispatches), len(st.SafetySteps))
	}
}

func TestSimulationTrace_NilReceiver_IsSafe(t *testing.T) {
	// GIVEN a nil trace (the "no tracing" collector)
	var st *SimulationTrace

	// WHEN records are appended THEN nothing panics
	st.RecordDispatch(DispatchRecord{ProcessID: "P1"})
	st.RecordSafety(SafetyRecord{ProcessID: "P1"})
}
