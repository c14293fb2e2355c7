package helpers

import (
	"fmt"
	"strings"
	"time"

	"github.com/jinzhu/now"
)

// ParseDay parses a calendar date such as "2024-05-10" in loc. Empty input yields a zero time.
func ParseDay(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}
	if loc == nil {
		loc = time.Local
	}
	t, err := now.ParseInLocation(loc, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return t, nil
}

// StartOfDay returns 00:00:00 of t's day in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	return calendar(t, loc).BeginningOfDay()
}

// EndOfDay returns 23:59:59.999999999 of t's day in loc.
func EndOfDay(t time.Time, loc *time.Location) time.Time {
	return calendar(t, loc).EndOfDay()
}

func calendar(t time.Time, loc *time.Location) *now.Now {
	if loc == nil {
		loc = time.Local
	}
	return now.With(t.In(loc))
}
