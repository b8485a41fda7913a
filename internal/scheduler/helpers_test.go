package scheduler

import (
	"time"

	"github.com/lmartens/dayflow/internal/domain"
)

// at returns a UTC instant on a fixed reference day.
func at(hour, min int) time.Time {
	return time.Date(2026, 1, 5, hour, min, 0, 0, time.UTC)
}

func makeTask(id, title string, d time.Duration) domain.Task {
	return domain.Task{
		ID:                id,
		Title:             title,
		EstimatedDuration: d,
		Source:            domain.SourceGoogleDocs,
	}
}

func withUserDeadline(t domain.Task, deadline time.Time) domain.Task {
	t.DeadlineUser = &deadline
	return t
}

func withExternalDeadline(t domain.Task, deadline time.Time) domain.Task {
	t.DeadlineExternal = &deadline
	return t
}

func makeBlock(start, end time.Time, kind domain.BlockKind) domain.TimeBlock {
	return domain.TimeBlock{Start: start, End: end, Kind: kind}
}
