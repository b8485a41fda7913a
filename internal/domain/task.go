package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Task is a unit of work independent of its source or scheduling.
// DeadlineExternal is a commitment made to someone else; DeadlineUser is
// a self-imposed target. Either or both may be nil.
type Task struct {
	ID                string
	Title             string
	Project           string
	Section           string
	EstimatedDuration time.Duration
	DeadlineUser      *time.Time
	DeadlineExternal  *time.Time
	Completed         bool
	Source            string
}

// NewTask validates and returns a Task, generating a short stable ID when
// none is supplied. ID generation happens only here, never during
// prioritization or placement.
func NewTask(t Task) (*Task, error) {
	if t.ID == "" {
		t.ID = strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// Validate checks the construction invariants: positive duration, a
// non-empty identifier or title, and non-zero deadline instants.
func (t *Task) Validate() error {
	if t.EstimatedDuration <= 0 {
		return fmt.Errorf("task %q: estimated duration must be positive, got %v", t.displayName(), t.EstimatedDuration)
	}
	if t.ID == "" && t.Title == "" {
		return fmt.Errorf("task must have an id or a title")
	}
	if t.DeadlineUser != nil && t.DeadlineUser.IsZero() {
		return fmt.Errorf("task %q: user deadline must be a concrete instant", t.displayName())
	}
	if t.DeadlineExternal != nil && t.DeadlineExternal.IsZero() {
		return fmt.Errorf("task %q: external deadline must be a concrete instant", t.displayName())
	}
	return nil
}

// EffectiveDeadline returns the single deadline used for urgency and
// violation checks. External commitments override user targets.
func (t *Task) EffectiveDeadline() *time.Time {
	if t.DeadlineExternal != nil {
		return t.DeadlineExternal
	}
	return t.DeadlineUser
}

// HasDeadline reports whether any deadline is set.
func (t *Task) HasDeadline() bool {
	return t.DeadlineUser != nil || t.DeadlineExternal != nil
}

func (t *Task) displayName() string {
	return CoalesceStr(t.Title, t.ID)
}
