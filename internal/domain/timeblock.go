package domain

import (
	"fmt"
	"time"
)

// TimeBlock is a reserved interval that cannot host work.
type TimeBlock struct {
	Start time.Time
	End   time.Time
	Kind  BlockKind
	Label string
}

// NewTimeBlock validates and returns a TimeBlock.
func NewTimeBlock(start, end time.Time, kind BlockKind, label string) (*TimeBlock, error) {
	b := TimeBlock{Start: start, End: end, Kind: kind, Label: label}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return &b, nil
}

// Validate checks the construction invariants: concrete ordered
// boundaries and a known kind.
func (b *TimeBlock) Validate() error {
	if b.Start.IsZero() || b.End.IsZero() {
		return fmt.Errorf("time block boundaries must be concrete instants")
	}
	if !b.Start.Before(b.End) {
		return fmt.Errorf("time block start %v must be before end %v", b.Start, b.End)
	}
	if !ValidBlockKinds[b.Kind] {
		return fmt.Errorf("unknown time block kind %q", b.Kind)
	}
	return nil
}

// Contains reports whether t falls inside the half-open interval [Start, End).
func (b *TimeBlock) Contains(t time.Time) bool {
	return !t.Before(b.Start) && t.Before(b.End)
}

// Overlaps reports whether [start, end) intersects the block.
func (b *TimeBlock) Overlaps(start, end time.Time) bool {
	return start.Before(b.End) && b.Start.Before(end)
}
