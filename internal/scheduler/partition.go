package scheduler

import (
	"time"

	"github.com/lmartens/dayflow/internal/domain"
)

// PartitionByDay slices a continuous placement into per-calendar-day
// views for the requested span. A segment or blocked interval belongs to
// every day one of its boundaries falls on, without clipping: work that
// spans midnight appears in full on both days it touches.
//
// Conflict messages describe the whole continuous run, so they are
// attached to the first day only rather than duplicated per view.
func PartitionByDay(res PlacementResult, start time.Time, days int) []domain.DaySchedule {
	out := make([]domain.DaySchedule, 0, days)
	first := domain.StartOfDay(start)

	for i := 0; i < days; i++ {
		date := first.AddDate(0, 0, i)
		day := domain.DaySchedule{Date: date}

		for _, s := range res.Scheduled {
			if domain.SameDate(date, s.Start) || domain.SameDate(date, s.End) {
				day.Scheduled = append(day.Scheduled, s)
			}
		}
		for _, b := range res.Blocked {
			if domain.SameDate(date, b.Start) || domain.SameDate(date, b.End) {
				day.Blocked = append(day.Blocked, b)
			}
		}
		if i == 0 {
			day.Conflicts = append(day.Conflicts, res.Conflicts...)
		}
		out = append(out, day)
	}
	return out
}
