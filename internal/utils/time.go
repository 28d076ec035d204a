package util

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// ParseDate accepts either a bare date ("2023-06-01") or a full RFC 3339
// timestamp and returns the parsed UTC time.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD or RFC 3339", s)
}

// DayKey buckets a timestamp to its UTC calendar day, used for distinct
// active-day counts and per-day trends.
func DayKey(t time.Time) string {
	return t.UTC().Format(dateLayout)
}

// StartOfDay truncates a timestamp to midnight UTC.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
