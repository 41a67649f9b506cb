package timeutil

import (
	"fmt"
	"time"
)

// DayKey returns the calendar-day bucket for a timestamp, "YYYY-MM-DD".
// Break quotas and daily aggregation are keyed by the session's time_in day.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// SecondsBetween returns the whole seconds elapsed from start to end,
// floored at zero.
func SecondsBetween(start, end time.Time) int {
	s := int(end.Sub(start).Seconds())
	if s < 0 {
		return 0
	}
	return s
}

// FormatSeconds renders a second count the way the dashboard displays
// durations: "7h40m", "45m", "30s", "0s". Seconds are only shown below a
// minute; minutes are dropped when zero on an exact hour.
func FormatSeconds(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60

	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%dh%dm", h, m)
	case h > 0:
		return fmt.Sprintf("%dh", h)
	case m > 0:
		return fmt.Sprintf("%dm", m)
	default:
		return fmt.Sprintf("%ds", s)
	}
}
