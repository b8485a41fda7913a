package todo

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/lmartens/dayflow/internal/docsource"
	"github.com/lmartens/dayflow/internal/domain"
)

var (
	metadataPattern = regexp.MustCompile(`^(.*?)\s*:::\s*(.+)$`)
	durationPattern = regexp.MustCompile(`(?i)^(\d+)(hours?|minutes?)$`)
)

// deadlineLayouts are the accepted ISO-8601 shapes, tried in order.
// Forms without an offset are interpreted as UTC.
var deadlineLayouts = []struct {
	layout string
	naive  bool
}{
	{time.RFC3339, false},
	{"2006-01-02T15:04:05", true},
	{"2006-01-02T15:04", true},
	{"2006-01-02", true},
}

// ParseTaskLine parses one paragraph into a task when it is a task
// line: a bullet of the tab's task list, not the identifier line, with
// `title ::: duration; external_deadline; user_deadline` metadata.
// Returns (nil, nil) for paragraphs that are not task lines at all, and
// a ParseError when a task line carries malformed metadata.
func ParseTaskLine(p docsource.Paragraph, taskListID string) (*domain.Task, error) {
	if p.Bullet == nil || taskListID == "" || p.Bullet.ListID != taskListID {
		return nil, nil
	}

	text := strings.TrimSpace(p.Text)
	if text == "" || text == docsource.TaskListIdentifier {
		return nil, nil
	}

	m := metadataPattern.FindStringSubmatch(text)
	if m == nil {
		return nil, nil
	}
	title := strings.TrimSpace(m[1])
	metadata := strings.TrimSpace(m[2])

	parts := strings.Split(metadata, ";")
	if len(parts) != 3 {
		return nil, &ParseError{
			Message: fmt.Sprintf("expected 3 metadata fields (duration; external_deadline; user_deadline), got %d", len(parts)),
			Field:   "metadata",
			Value:   metadata,
			RawText: text,
		}
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	duration, err := parseDuration(parts[0], text)
	if err != nil {
		return nil, err
	}
	external, err := parseDeadline(parts[1], "external_deadline", text)
	if err != nil {
		return nil, err
	}
	user, err := parseDeadline(parts[2], "user_deadline", text)
	if err != nil {
		return nil, err
	}

	return domain.NewTask(domain.Task{
		Title:             title,
		EstimatedDuration: duration,
		DeadlineExternal:  external,
		DeadlineUser:      user,
		Completed:         p.Bullet.Strikethrough,
		Source:            domain.SourceGoogleDocs,
	})
}

func parseDuration(s, raw string) (time.Duration, error) {
	if s == "-" {
		return 0, &ParseError{
			Message: "duration cannot be unspecified",
			Field:   "duration",
			Value:   s,
			RawText: raw,
		}
	}

	m := durationPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, &ParseError{
			Message: "invalid duration, expected <number>hours or <number>minutes",
			Field:   "duration",
			Value:   s,
			RawText: raw,
		}
	}

	value, err := strconv.Atoi(m[1])
	if err != nil || value <= 0 {
		return 0, &ParseError{
			Message: "duration must be a positive number",
			Field:   "duration",
			Value:   s,
			RawText: raw,
		}
	}

	if strings.HasPrefix(strings.ToLower(m[2]), "hour") {
		return time.Duration(value) * time.Hour, nil
	}
	return time.Duration(value) * time.Minute, nil
}

func parseDeadline(s, field, raw string) (*time.Time, error) {
	if s == "-" {
		return nil, nil
	}
	for _, l := range deadlineLayouts {
		var t time.Time
		var err error
		if l.naive {
			t, err = time.ParseInLocation(l.layout, s, time.UTC)
		} else {
			t, err = time.Parse(l.layout, s)
		}
		if err == nil {
			return &t, nil
		}
	}
	return nil, &ParseError{
		Message: "invalid deadline, expected ISO-8601 (e.g. 2026-01-09T12:00 or 2026-01-09T12:00+01:00)",
		Field:   field,
		Value:   s,
		RawText: raw,
	}
}
