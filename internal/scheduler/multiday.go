package scheduler

import (
	"fmt"
	"time"

	"github.com/lmartens/dayflow/internal/domain"
)

// BlocksForDate supplies the blocked intervals active on a calendar day.
// The argument is midnight of the day in the schedule's location.
type BlocksForDate func(date time.Time) []domain.TimeBlock

// PlaceDays runs one continuous placement across the requested number of
// days and partitions the result per calendar day. Blocked intervals are
// gathered for the span plus one extra day so work overflowing the last
// requested day still flows around that day's blocks.
func PlaceDays(tasks []domain.Task, start time.Time, days int, blocksFor BlocksForDate) ([]domain.DaySchedule, error) {
	if days < 1 {
		return nil, fmt.Errorf("%w: days must be at least 1, got %d", ErrInvalidInput, days)
	}
	if start.IsZero() {
		return nil, fmt.Errorf("%w: start must be a concrete instant", ErrInvalidInput)
	}

	// The previous day is included so the tail of an overnight block
	// that started last night still covers this morning.
	var blocked []domain.TimeBlock
	first := domain.StartOfDay(start)
	for i := -1; i <= days; i++ {
		blocked = append(blocked, blocksFor(first.AddDate(0, 0, i))...)
	}

	res, err := Place(tasks, start, blocked)
	if err != nil {
		return nil, err
	}
	return PartitionByDay(res, start, days), nil
}
