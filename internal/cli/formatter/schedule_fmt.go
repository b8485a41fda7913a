package formatter

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/lmartens/dayflow/internal/domain"
)

type timelineEvent struct {
	start time.Time
	end   time.Time
	line  string
	work  bool
}

// FormatDaySchedule renders one day as a continuous timeline: work
// segments, blocked intervals and the idle gaps between them, followed
// by conflicts and a totals footer.
func FormatDaySchedule(day domain.DaySchedule) string {
	var b strings.Builder
	b.WriteString(Header(FormatDate(day.Date)))
	b.WriteString("\n")
	b.WriteString(formatTimeline(day))

	if len(day.Conflicts) > 0 {
		b.WriteString("\n")
		b.WriteString(FormatConflicts(day.Conflicts))
	}

	b.WriteString("\n")
	b.WriteString(formatTotals(day))
	return b.String()
}

// FormatMultiDay renders a per-day timeline for each day. Conflicts
// describe the whole run, so they are collected once at the end.
func FormatMultiDay(days []domain.DaySchedule) string {
	var b strings.Builder
	var conflicts []string

	for i, day := range days {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(Header(FormatDate(day.Date)))
		b.WriteString("\n")
		b.WriteString(formatTimeline(day))
		conflicts = append(conflicts, day.Conflicts...)
	}

	if len(conflicts) > 0 {
		b.WriteString("\n\n")
		b.WriteString(FormatConflicts(conflicts))
	}
	return b.String()
}

// FormatConflicts renders the conflict list in red under a header.
func FormatConflicts(conflicts []string) string {
	var b strings.Builder
	b.WriteString(StyleRed.Render("Conflicts"))
	for _, c := range conflicts {
		b.WriteString("\n")
		b.WriteString(StyleRed.Render("  ✗ " + c))
	}
	return b.String()
}

func formatTimeline(day domain.DaySchedule) string {
	events := make([]timelineEvent, 0, len(day.Scheduled)+len(day.Blocked))

	for _, s := range day.Scheduled {
		events = append(events, timelineEvent{
			start: s.Start,
			end:   s.End,
			line:  scheduledLine(s),
			work:  true,
		})
	}
	for _, blk := range day.Blocked {
		events = append(events, timelineEvent{
			start: blk.Start,
			end:   blk.End,
			line:  blockedLine(blk),
		})
	}

	if len(events) == 0 {
		return Dim("  nothing scheduled")
	}

	sort.SliceStable(events, func(i, j int) bool { return events[i].start.Before(events[j].start) })

	var b strings.Builder
	for i, ev := range events {
		if i > 0 {
			prev := events[i-1].end
			if gap := ev.start.Sub(prev); gap > 0 {
				b.WriteString(Dim(fmt.Sprintf("  %s  · free (%s)", FormatTimeRange(prev, ev.start), FormatDuration(gap))))
				b.WriteString("\n")
			}
		}
		b.WriteString(ev.line)
		if i < len(events)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func scheduledLine(s domain.ScheduledTask) string {
	var b strings.Builder
	b.WriteString("  ")
	b.WriteString(StyleFg.Render(FormatTimeRange(s.Start, s.End)))
	b.WriteString("  ")
	b.WriteString(Bold(s.Task.Title))

	if s.Task.Project != "" {
		b.WriteString(" ")
		b.WriteString(StyleBlue.Render("[" + s.Task.Project + "]"))
	}
	b.WriteString(" ")
	b.WriteString(Dim("(" + FormatDuration(s.End.Sub(s.Start)) + ")"))

	if s.IsSegment {
		b.WriteString(" ")
		b.WriteString(StyleYellow.Render(fmt.Sprintf("part %d/%d", s.SegmentIndex, s.TotalSegments)))
	}
	if s.ViolatesDeadlineExternal {
		b.WriteString(" ")
		b.WriteString(StyleRed.Render("⚠ past external deadline"))
	} else if s.ViolatesDeadlineUser {
		b.WriteString(" ")
		b.WriteString(StyleYellow.Render("⚠ past deadline"))
	}
	return b.String()
}

func blockedLine(blk domain.TimeBlock) string {
	label := blk.Label
	if label == "" {
		label = string(blk.Kind)
	}
	style := BlockStyle(blk.Kind)
	return "  " + style.Render(fmt.Sprintf("%s  ▇ %s (%s)", FormatTimeRange(blk.Start, blk.End), label, blk.Kind))
}

func formatTotals(day domain.DaySchedule) string {
	var work, blocked time.Duration
	for _, s := range day.Scheduled {
		work += s.End.Sub(s.Start)
	}
	for _, blk := range day.Blocked {
		blocked += blk.End.Sub(blk.Start)
	}
	return Dim(fmt.Sprintf("  %d tasks · %s scheduled · %s blocked",
		countTasks(day.Scheduled), FormatDuration(work), FormatDuration(blocked)))
}

func countTasks(scheduled []domain.ScheduledTask) int {
	seen := map[string]struct{}{}
	for _, s := range scheduled {
		seen[s.Task.ID] = struct{}{}
	}
	return len(seen)
}
