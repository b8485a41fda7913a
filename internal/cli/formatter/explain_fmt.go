package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/lmartens/dayflow/internal/service"
)

// FormatExplanation renders one task's details and its position in the
// global priority order.
func FormatExplanation(exp *service.Explanation, now time.Time) string {
	t := exp.Task

	var b strings.Builder
	b.WriteString(Header(t.Title))
	b.WriteString("\n")

	writeField(&b, "id", Dim(t.ID))
	if t.Project != "" {
		writeField(&b, "project", StyleBlue.Render(t.Project))
	}
	if t.Section != "" {
		writeField(&b, "section", t.Section)
	}
	writeField(&b, "estimate", FormatDuration(t.EstimatedDuration))
	writeField(&b, "external deadline", deadlineField(t.DeadlineExternal, now, StyleRed.Render))
	writeField(&b, "user deadline", deadlineField(t.DeadlineUser, now, StyleYellow.Render))
	if t.Completed {
		writeField(&b, "status", StyleGreen.Render("completed"))
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  Queue position %s of %d",
		Bold(fmt.Sprintf("#%d", exp.Position)), exp.QueueLength))
	return b.String()
}

func writeField(b *strings.Builder, name, value string) {
	fmt.Fprintf(b, "  %-18s %s\n", Dim(name), value)
}

func deadlineField(deadline *time.Time, now time.Time, overdueStyle func(...string) string) string {
	if deadline == nil {
		return Dim("—")
	}
	rendered := deadline.Format("2006-01-02 15:04")
	if deadline.Before(now) {
		return overdueStyle(rendered + " (overdue)")
	}
	return rendered + Dim(fmt.Sprintf(" (in %s)", FormatDuration(deadline.Sub(now))))
}
