package config

import (
	"fmt"
	"time"

	"github.com/lmartens/dayflow/internal/domain"
)

// Location resolves the configured scheduling timezone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Scheduling.Timezone)
	if err != nil {
		return nil, fmt.Errorf("loading timezone %q: %w", c.Scheduling.Timezone, err)
	}
	return loc, nil
}

// BlocksFor materializes the recurring block rules into concrete
// intervals on the given calendar day. The date's own location anchors
// the clock times; rules that do not cover the weekday are skipped, as
// are rules that no longer parse (Validate reports those up front).
func (c *Config) BlocksFor(date time.Time) []domain.TimeBlock {
	var blocks []domain.TimeBlock
	for _, group := range []struct {
		kind  domain.BlockKind
		rules []BlockRule
	}{
		{domain.BlockSleep, c.Scheduling.Sleep},
		{domain.BlockBreak, c.Scheduling.Break},
		{domain.BlockMeeting, c.Scheduling.Meeting},
	} {
		for _, rule := range group.rules {
			if !rule.coversDay(date.Weekday()) {
				continue
			}
			start, errStart := parseClock(rule.Start)
			end, errEnd := parseClock(rule.End)
			if errStart != nil || errEnd != nil {
				continue
			}
			endInstant := onDate(date, end)
			if !start.before(end) {
				// Overnight window: the end clock belongs to the next day.
				endInstant = onDate(date.AddDate(0, 0, 1), end)
			}
			blocks = append(blocks, domain.TimeBlock{
				Start: onDate(date, start),
				End:   endInstant,
				Kind:  group.kind,
				Label: rule.Label,
			})
		}
	}
	return blocks
}

// WorkWindow returns the localized work start and end on the given
// calendar day.
func (c *Config) WorkWindow(date time.Time) (time.Time, time.Time) {
	start, errStart := parseClock(c.Scheduling.WorkStart)
	end, errEnd := parseClock(c.Scheduling.WorkEnd)
	if errStart != nil || errEnd != nil {
		def := Default()
		start, _ = parseClock(def.Scheduling.WorkStart)
		end, _ = parseClock(def.Scheduling.WorkEnd)
	}
	return onDate(date, start), onDate(date, end)
}

// DefaultTaskDuration converts the configured minutes to a Duration.
func (c *Config) DefaultTaskDuration() time.Duration {
	return time.Duration(c.Scheduling.DefaultTaskMinutes) * time.Minute
}

func onDate(date time.Time, cl clock) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), cl.hour, cl.min, 0, 0, date.Location())
}
