package utils

import (
	"strings"
	"time"
)

// WeekBounds returns the Monday and Sunday of the week containing t, at
// midnight in t's location.
func WeekBounds(t time.Time) (monday, sunday time.Time) {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())

	// time.Weekday counts Sunday as 0; shift so Monday is 0.
	offset := (int(day.Weekday()) + 6) % 7
	monday = day.AddDate(0, 0, -offset)
	sunday = monday.AddDate(0, 0, 6)

	return monday, sunday
}

// DayLabel returns the three-letter uppercase label for t's weekday (MON..SUN).
func DayLabel(t time.Time) string {
	return strings.ToUpper(t.Weekday().String()[:3])
}

// DateOnly truncates t to midnight in its location.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
