package domain

import (
	"fmt"
	"time"
)

// ScheduledTask is a placed interval of work, possibly one segment of a
// task that was split around blocked time. Violation flags describe the
// task's overall completion, so every segment of the same task carries
// identical flags.
type ScheduledTask struct {
	Task  *Task
	Start time.Time
	End   time.Time

	ViolatesDeadlineUser     bool
	ViolatesDeadlineExternal bool

	IsSegment     bool
	SegmentIndex  int // 1-based, only meaningful when IsSegment
	TotalSegments int
}

// NewScheduledTask validates and returns a ScheduledTask.
func NewScheduledTask(s ScheduledTask) (*ScheduledTask, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks the construction invariants. A non-segment placement
// must span exactly the task's estimated duration; a segment must carry
// an index within [1, TotalSegments].
func (s *ScheduledTask) Validate() error {
	if s.Task == nil {
		return fmt.Errorf("scheduled task must reference a task")
	}
	if s.Start.IsZero() || s.End.IsZero() {
		return fmt.Errorf("scheduled task %q: boundaries must be concrete instants", s.Task.Title)
	}
	if !s.Start.Before(s.End) {
		return fmt.Errorf("scheduled task %q: start %v must be before end %v", s.Task.Title, s.Start, s.End)
	}
	if !s.IsSegment {
		if got := s.End.Sub(s.Start); got != s.Task.EstimatedDuration {
			return fmt.Errorf("scheduled task %q: span %v must equal estimated duration %v", s.Task.Title, got, s.Task.EstimatedDuration)
		}
		return nil
	}
	if s.TotalSegments < 2 {
		return fmt.Errorf("scheduled task %q: segment requires at least 2 total segments, got %d", s.Task.Title, s.TotalSegments)
	}
	if s.SegmentIndex < 1 || s.SegmentIndex > s.TotalSegments {
		return fmt.Errorf("scheduled task %q: segment index %d outside [1, %d]", s.Task.Title, s.SegmentIndex, s.TotalSegments)
	}
	return nil
}

// Duration returns the span of this placement.
func (s *ScheduledTask) Duration() time.Duration {
	return s.End.Sub(s.Start)
}
