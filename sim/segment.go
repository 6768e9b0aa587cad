package sim

import "fmt"

// ScheduleSegment is one contiguous interval of the timeline. An empty
// ProcessID marks a CPU idle gap; idle gaps are first-class segments so
// callers can render them without reconstructing boundaries. Round-Robin
// emits one segment per quantum slice; slices of the same process are never
// merged.
type ScheduleSegment struct {
	ProcessID string // empty for an idle gap
	Start     int64
	End       int64 // always > Start
}

// Idle reports whether this segment is a CPU idle gap.
func (s ScheduleSegment) Idle() bool {
	return s.ProcessID == ""
}

// Duration returns the segment length.
func (s ScheduleSegment) Duration() int64 {
	return s.End - s.Start
}

func (s ScheduleSegment) String() string {
	if s.Idle() {
		return fmt.Sprintf("[idle %d-%d]", s.Start, s.End)
	}
	return fmt.Sprintf("[%s %d-%d]", s.ProcessID, s.Start, s.End)
}
