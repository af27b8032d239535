package attendance

import (
	"fmt"
	"strings"
	"time"
)

// TimeOfDay is a clock time as seconds since midnight. Periods and scan
// times are compared on this, never on full timestamps, so a scan on any
// date lines up against the same bell schedule.
type TimeOfDay int

// ParseTimeOfDay accepts "HH:MM" or "HH:MM:SS".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	s = strings.TrimSpace(s)
	var h, m, sec int
	if _, err := fmt.Sscanf(s, "%d:%d:%d", &h, &m, &sec); err != nil {
		sec = 0
		if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
			return 0, fmt.Errorf("invalid time %q", s)
		}
	}
	if h < 0 || h > 23 || m < 0 || m > 59 || sec < 0 || sec > 59 {
		return 0, fmt.Errorf("invalid time %q", s)
	}
	return TimeOfDay(h*3600 + m*60 + sec), nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", int(t)/3600, int(t)/60%60, int(t)%60)
}

// ClockOf strips the date from a timestamp.
func ClockOf(ts time.Time) TimeOfDay {
	return TimeOfDay(ts.Hour()*3600 + ts.Minute()*60 + ts.Second())
}

const (
	tsLayout       = "2006-01-02 15:04:05"
	tsLayoutMinute = "2006-01-02 15:04"
	dateLayout     = "2006-01-02"
)

// ParseTimestamp parses a stored or submitted event timestamp. Accepted
// shapes: "YYYY-MM-DD HH:MM", "YYYY-MM-DD HH:MM:SS", the same with
// fractional seconds, and any of those with a "T" separator.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.Replace(strings.TrimSpace(s), "T", " ", 1)
	if t, err := time.Parse(tsLayout, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(tsLayoutMinute, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", s)
}

// NormalizeTimestamp re-renders a submitted timestamp in the canonical
// stored form "YYYY-MM-DD HH:MM:SS". ok is false when it cannot be parsed.
func NormalizeTimestamp(s string) (string, bool) {
	t, err := ParseTimestamp(s)
	if err != nil {
		return "", false
	}
	return t.Format(tsLayout), true
}

// FormatTimestamp renders t in the stored form.
func FormatTimestamp(t time.Time) string {
	return t.Format(tsLayout)
}

// ParseDate accepts "YYYY-MM-DD" and the legacy "YYYY/MM/DD".
func ParseDate(s string) (time.Time, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), "/", "-")
	return time.Parse(dateLayout, s)
}

// DateOnly renders t as "YYYY-MM-DD".
func DateOnly(t time.Time) string {
	return t.Format(dateLayout)
}
