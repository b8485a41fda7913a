package todo

import (
	"fmt"
	"strings"
)

const maxRawTextLen = 100

// ParseError describes a task line whose metadata could not be parsed.
// Field and Value pinpoint the offending piece; RawText carries the
// source line for context.
type ParseError struct {
	Message string
	Field   string
	Value   string
	RawText string
}

func (e *ParseError) Error() string {
	parts := []string{e.Message}
	if e.Field != "" {
		parts = append(parts, fmt.Sprintf("field: %s", e.Field))
	}
	if e.Value != "" {
		parts = append(parts, fmt.Sprintf("value: %q", e.Value))
	}
	if e.RawText != "" {
		raw := e.RawText
		if len(raw) > maxRawTextLen {
			raw = raw[:maxRawTextLen-3] + "..."
		}
		parts = append(parts, fmt.Sprintf("raw text: %q", raw))
	}
	return strings.Join(parts, " | ")
}
