// Package timeutil turns calendar dates and clock strings into absolute
// timestamps and provides the calendar arithmetic used by the analytics
// packages.
package timeutil

import (
	"fmt"
	"strings"
	"time"
)

const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04:05"

	clockLayoutLong  = "15:04:05"
	clockLayoutShort = "15:04"
)

// Combine applies the hour, minute and second of clock ("HH:mm" or
// "HH:mm:ss") to the year, month and day of date. A malformed clock returns
// date unchanged.
func Combine(date time.Time, clock string) time.Time {
	h, m, s, ok := parseClock(clock)
	if !ok {
		return date
	}
	y, mo, d := date.Date()
	return time.Date(y, mo, d, h, m, s, 0, date.Location())
}

// ValidClock reports whether clock is a well-formed "HH:mm" or "HH:mm:ss".
func ValidClock(clock string) bool {
	_, _, _, ok := parseClock(clock)
	return ok
}

// parseClock requires two-digit fields. time.Parse alone accepts "9:05".
func parseClock(clock string) (h, m, s int, ok bool) {
	clock = strings.TrimSpace(clock)
	fields := strings.Split(clock, ":")
	for _, f := range fields {
		if len(f) != 2 {
			return 0, 0, 0, false
		}
	}
	layout := clockLayoutShort
	if len(fields) == 3 {
		layout = clockLayoutLong
	}
	t, err := time.Parse(layout, clock)
	if err != nil {
		return 0, 0, 0, false
	}
	return t.Hour(), t.Minute(), t.Second(), true
}

// ResolveMidnightSpan advances proposedEnd by one calendar day when it falls
// before start. Applying it to an already resolved pair is a no-op.
func ResolveMidnightSpan(start, proposedEnd time.Time) time.Time {
	if proposedEnd.Before(start) {
		return proposedEnd.AddDate(0, 0, 1)
	}
	return proposedEnd
}

// Interval resolves a session entered as a date plus start and end clocks.
func Interval(date time.Time, startClock, endClock string) (start, end time.Time) {
	start = Combine(date, startClock)
	end = ResolveMidnightSpan(start, Combine(date, endClock))
	return start, end
}

// ParseCalendarDate parses a strict yyyy-MM-dd date in local time.
func ParseCalendarDate(s string) (time.Time, bool) {
	if len(s) != len(DateLayout) {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ParseDateTime parses a yyyy-MM-dd HH:mm:ss timestamp in local time.
func ParseDateTime(s string) (time.Time, bool) {
	t, err := time.ParseInLocation(DateTimeLayout, strings.TrimSpace(s), time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func FormatCalendarDate(t time.Time) string {
	return t.Format(DateLayout)
}

func FormatDateTime(t time.Time) string {
	return t.Format(DateTimeLayout)
}

// FormatClockSeconds renders the time of day as HH:mm:ss.
func FormatClockSeconds(t time.Time) string {
	return t.Format(clockLayoutLong)
}

// FormatClock renders the time of day as HH:mm.
func FormatClock(t time.Time) string {
	return t.Format(clockLayoutShort)
}

func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.In(a.Location()).Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// StartOfWeek returns midnight of the most recent weekStart on or before t.
func StartOfWeek(t time.Time, weekStart time.Weekday) time.Time {
	day := StartOfDay(t)
	offset := (int(day.Weekday()) - int(weekStart) + 7) % 7
	return day.AddDate(0, 0, -offset)
}

func StartOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}

func StartOfYear(t time.Time) time.Time {
	return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
}

// WeekKey returns the ISO year-week identifier of t, e.g. "2024-W01".
func WeekKey(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%04d-W%02d", year, week)
}

// ParseWeekday maps "monday" or "sunday" style names to a time.Weekday.
func ParseWeekday(name string) (time.Weekday, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.ToLower(d.String()) == n {
			return d, true
		}
	}
	return time.Monday, false
}
