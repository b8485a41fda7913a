package domain

import "time"

// CoalesceStr returns the first non-empty string from vals.
func CoalesceStr(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// TimePtr returns a pointer to t. Convenience for optional deadlines.
func TimePtr(t time.Time) *time.Time {
	return &t
}

// EarlierTimePtr returns the earlier of two optional instants, preferring
// the non-nil one when only one is set.
func EarlierTimePtr(a, b *time.Time) *time.Time {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if a.Before(*b) {
		return a
	}
	return b
}
