// Package sim is the simulation engine for classic operating-system CPU
// scheduling policies and the Banker's deadlock-avoidance safety check.
//
// # Reading Guide
//
// Start with these files to understand the engine:
//   - process.go: the shared Process record, input validation, and derived metrics
//   - segment.go / result.go: the timeline and the SimulationResult all schedulers return
//   - fcfs.go, sjf.go, rr.go: the three scheduling policies
//   - bankers.go: the resource-allocation snapshot and the safety search
//
// Decision tracing lives in the sim/trace sub-package; every entry point
// accepts a *trace.SimulationTrace (nil disables recording).
//
// # Design
//
// Each entry point is a pure function of its inputs: it validates, runs to
// completion with working state owned by the call frame, and returns a result
// the caller owns. Nothing is shared across invocations, so independent
// simulations may run concurrently and re-running the same input yields an
// identical result. Configuration errors (bad arrival/burst/quantum,
// malformed matrices) are returned before any simulation step runs; computed
// outcomes such as an unsafe state or a CPU idle gap are results, not errors.
package sim
