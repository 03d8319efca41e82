package core

import (
	"strings"
	"time"
)

// DayLayout is the canonical calendar-day key format.
const DayLayout = "2006-01-02"

var dateLayouts = []string{
	DayLayout,
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006/01/02",
	"01/02/2006",
	"Jan 2, 2006",
	"2 Jan 2006",
	"January 2, 2006",
}

// ParseDate interprets s in any supported layout and returns the instant
// in UTC. Strings without an offset are treated as UTC.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrEmptyDate
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, ErrInvalidDate
}

// DayKey returns the UTC calendar day of t as YYYY-MM-DD.
func DayKey(t time.Time) string {
	return t.UTC().Format(DayLayout)
}

// StartOfDay truncates t to midnight UTC.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
