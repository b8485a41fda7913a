package scheduler

import (
	"math"
	"time"

	"github.com/lmartens/dayflow/internal/domain"
)

// Urgency scores are durations: lower means more urgent. A task with no
// deadline always ranks after every deadlined task whose deadline has not
// passed, and a task whose deadline is already behind the cursor ranks
// before everything else.
const (
	// noDeadlineOffset pushes undeadlined tasks past any plausible slack
	// value; among them, shorter remaining work is slightly preferred.
	noDeadlineOffset = time.Duration(math.MaxInt64 / 4)

	// pastDueScore marks a deadline that is already behind the cursor.
	pastDueScore = time.Duration(math.MinInt64 / 4)
)

// urgencyScore computes the slack-based score for one candidate at the
// given cursor. External deadlines are twice as urgent as user deadlines:
// the score is halved so a smaller slack is reported for the same wall
// clock distance.
func urgencyScore(t *domain.Task, remaining time.Duration, cursor time.Time, blocks []domain.TimeBlock) time.Duration {
	deadline := t.EffectiveDeadline()
	if deadline == nil {
		return noDeadlineOffset + remaining
	}
	if !deadline.After(cursor) {
		return pastDueScore
	}

	finish := completionAt(cursor, remaining, blocks)
	slack := deadline.Sub(finish)
	if t.DeadlineExternal != nil {
		slack /= 2
	}
	return slack
}

// completionAt simulates working through blocked intervals and returns
// the instant at which the remaining duration would finish if started at
// from. Blocks must be sorted by start.
func completionAt(from time.Time, remaining time.Duration, blocks []domain.TimeBlock) time.Time {
	t := skipBlocked(from, blocks)
	for remaining > 0 {
		next := nextBlockStart(t, blocks)
		if next == nil {
			return t.Add(remaining)
		}
		free := next.Sub(t)
		if free >= remaining {
			return t.Add(remaining)
		}
		remaining -= free
		t = skipBlocked(*next, blocks)
	}
	return t
}

// skipBlocked advances t past every block that contains it. A single
// forward pass suffices because blocks are sorted by start: any block
// covering the advanced instant starts no earlier than the one that
// moved it.
func skipBlocked(t time.Time, blocks []domain.TimeBlock) time.Time {
	for i := range blocks {
		if blocks[i].Contains(t) {
			t = blocks[i].End
		}
	}
	return t
}

// nextBlockStart returns the start of the first block strictly after t,
// or nil when no further block exists. Blocks already behind t are
// ignored, which keeps overlapping intervals correct.
func nextBlockStart(t time.Time, blocks []domain.TimeBlock) *time.Time {
	for i := range blocks {
		if blocks[i].Start.After(t) && blocks[i].End.After(t) {
			return &blocks[i].Start
		}
	}
	return nil
}
