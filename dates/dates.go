// Package dates resolves relative date expressions ("today", "+3d",
// "start-of-month") and renders human-friendly time deltas.
package dates

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// DateLayout is the canonical YYYY-MM-DD layout.
const DateLayout = "2006-01-02"

// ErrInvalidExpression is returned when an expression is neither a keyword,
// an offset nor an absolute date.
var ErrInvalidExpression = errors.New("dates: invalid date expression")

var datetimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	DateLayout,
}

// Resolve evaluates expr relative to now.
//
// Accepted forms:
//   - "" and "now": now itself
//   - "today", "yesterday", "tomorrow": the start of that day
//   - "start-of-week", "end-of-week", "start-of-month", "end-of-month",
//     "start-of-year", "end-of-year"
//   - an offset such as "+3d", "-2w", "1mo", "-1y", "+4h", "30m" (see
//     [ParseOffset]); day-based units count from the start of today
//   - an absolute date or datetime (YYYY-MM-DD, RFC 3339, YYYY-MM-DDTHH:MM)
//
// Weeks start on weekStart.
func Resolve(expr string, now time.Time, weekStart time.Weekday) (time.Time, error) {
	key := strings.ToLower(strings.TrimSpace(expr))
	switch key {
	case "", "now":
		return now, nil
	case "today":
		return StartOfDay(now), nil
	case "yesterday":
		return StartOfDay(now).AddDate(0, 0, -1), nil
	case "tomorrow":
		return StartOfDay(now).AddDate(0, 0, 1), nil
	case "start-of-week":
		return StartOfWeek(now, weekStart), nil
	case "end-of-week":
		return EndOfWeek(now, weekStart), nil
	case "start-of-month":
		return StartOfMonth(now), nil
	case "end-of-month":
		return EndOfMonth(now), nil
	case "start-of-year":
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location()), nil
	case "end-of-year":
		return EndOfDay(time.Date(now.Year(), time.December, 31, 0, 0, 0, 0, now.Location())), nil
	}

	if off, err := ParseOffset(key); err == nil {
		return off.From(now), nil
	}
	for _, layout := range datetimeLayouts {
		if t, err := time.ParseInLocation(layout, strings.TrimSpace(expr), now.Location()); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidExpression, expr)
}

// StartOfDay returns midnight of t's day in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last nanosecond of t's day.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// StartOfWeek returns the start of the week containing t.
func StartOfWeek(t time.Time, weekStart time.Weekday) time.Time {
	back := (int(t.Weekday()) - int(weekStart) + 7) % 7
	return StartOfDay(t).AddDate(0, 0, -back)
}

// EndOfWeek returns the last nanosecond of the week containing t.
func EndOfWeek(t time.Time, weekStart time.Weekday) time.Time {
	return StartOfWeek(t, weekStart).AddDate(0, 0, 7).Add(-time.Nanosecond)
}

// StartOfMonth returns midnight on the first day of t's month.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// EndOfMonth returns the last nanosecond of t's month.
func EndOfMonth(t time.Time) time.Time {
	return StartOfMonth(t).AddDate(0, 1, 0).Add(-time.Nanosecond)
}

// Ago describes t relative to now, e.g. "3 days ago" or "2 hours from now".
func Ago(t, now time.Time) string {
	if t.Equal(now) {
		return "now"
	}
	return humanize.RelTime(t, now, "ago", "from now")
}
