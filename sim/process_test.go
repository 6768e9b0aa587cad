package sim

import (
	"testing"
)

func TestValidateProcesses_ValidSet_NoError(t *testing.T) {
	// GIVEN a valid process set
	procs := []Process{
		{ID: "P1", Arrival: 0, Burst: 5},
		{ID: "P2", Arrival: 2, Burst: 3},
	}

	// WHEN validated
	err := ValidateProcesses(procs)

	// THEN no error is returned
	if err != nil {
		t.Errorf("ValidateProcesses: got error %v, want nil", err)
	}
}

func TestValidateProcesses_Rejections(t *testing.T) {
	cases := []struct {
		name  string
		procs []Process
	}{
		{"empty set", []Process{}},
		{"empty ID", []Process{{ID: "", Arrival: 0, Burst: 1}}},
		{"duplicate ID", []Process{{ID: "P1", Arrival: 0, Burst: 1}, {ID: "P1", Arrival: 1, Burst: 1}}},
		{"negative arrival", []Process{{ID: "P1", Arrival: -1, Burst: 1}}},
		{"zero burst", []Process{{ID: "P1", Arrival: 0, Burst: 0}}},
		{"negative burst", []Process{{ID: "P1", Arrival: 0, Burst: -3}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := ValidateProcesses(tc.procs); err == nil {
				t.Errorf("ValidateProcesses(%s): got nil, want error", tc.name)
			}
		})
	}
}

func TestDeriveMetrics_ComputesFormulas(t *testing.T) {
	// GIVEN P2 from the FCFS example: arrival 1, burst 3, runs [5, 8)
	p := Process{ID: "P2", Arrival: 1, Burst: 3}

	// WHEN metrics are derived
	m, err := DeriveMetrics(p, 5, 8)
	if err != nil {
		t.Fatalf("DeriveMetrics: unexpected error %v", err)
	}

	// THEN turnaround = completion - arrival, waiting = turnaround - burst,
	// response = first start - arrival
	if m.Turnaround != 7 {
		t.Errorf("Turnaround: got %d, want 7", m.Turnaround)
	}
	if m.Waiting != 4 {
		t.Errorf("Waiting: got %d, want 4", m.Waiting)
	}
	if m.Response != 4 {
		t.Errorf("Response: got %d, want 4", m.Response)
	}
}

func TestDeriveMetrics_FailsFastOnViolations(t *testing.T) {
	p := Process{ID: "P1", Arrival: 4, Burst: 3}

	// WHEN first start precedes arrival THEN an error is returned
	if _, err := DeriveMetrics(p, 2, 9); err == nil {
		t.Error("DeriveMetrics with firstStart < arrival: got nil, want error")
	}

	// WHEN completion precedes firstStart + burst THEN an error is returned
	if _, err := DeriveMetrics(p, 4, 6); err == nil {
		t.Error("DeriveMetrics with completion < firstStart+burst: got nil, want error")
	}

	// WHEN the process itself is malformed THEN an error is returned
	bad := Process{ID: "PX", Arrival: -1, Burst: 3}
	if _, err := DeriveMetrics(bad, 0, 3); err == nil {
		t.Error("DeriveMetrics with negative arrival: got nil, want error")
	}
}
