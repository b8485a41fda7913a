package formatter

import (
	"fmt"
	"time"
)

const clockLayout = "15:04"

// FormatDuration renders a duration as "2h", "45m" or "1h30m".
func FormatDuration(d time.Duration) string {
	d = d.Round(time.Minute)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%dh%02dm", h, m)
	case h > 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dm", m)
	}
}

// FormatClock renders the wall-clock time of an instant.
func FormatClock(t time.Time) string {
	return t.Format(clockLayout)
}

// FormatTimeRange renders "09:00–10:30".
func FormatTimeRange(start, end time.Time) string {
	return fmt.Sprintf("%s–%s", start.Format(clockLayout), end.Format(clockLayout))
}

// FormatDate renders "Mon 05 Jan".
func FormatDate(t time.Time) string {
	return t.Format("Mon 02 Jan")
}
