package trace

// TraceLevel controls the verbosity of decision tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelDecisions captures scheduler dispatch decisions and
	// Banker's safety-search commits.
	TraceLevelDecisions TraceLevel = "decisions"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:      true,
	TraceLevelDecisions: true,
	"":                  true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// TraceConfig controls trace collection behavior.
type TraceConfig struct {
	Level TraceLevel
}

// SimulationTrace collects decision records during a simulation run.
// A nil *SimulationTrace is a valid "no tracing" collector: all Record
// methods are nil-receiver safe, so engine code can record unconditionally.
type SimulationTrace struct {
	Config      TraceConfig
	Dispatches  []DispatchRecord
	SafetySteps []SafetyRecord
}

// NewSimulationTrace creates a SimulationTrace ready for recording.
func NewSimulationTrace(config TraceConfig) *SimulationTrace {
	return &SimulationTrace{
		Config:      config,
		Dispatches:  make([]DispatchRecord, 0),
		SafetySteps: make([]SafetyRecord, 0),
	}
}

// enabled reports whether decision records should be kept.
func (st *SimulationTrace) enabled() bool {
	return st != nil && st.Config.Level == TraceLevelDecisions
}

// RecordDispatch appends a scheduler dispatch record.
func (st *SimulationTrace) RecordDispatch(record DispatchRecord) {
	if !st.enabled() {
		return
	}
	st.Dispatches = append(st.Dispatches, record)
}

// RecordSafety appends a Banker's safety-search commit record.
func (st *SimulationTrace) RecordSafety(record SafetyRecord) {
	if !st.enabled() {
		return
	}
	st.SafetySteps = append(st.SafetySteps, record)
}
