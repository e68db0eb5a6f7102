package domain

import (
	"fmt"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

var ErrInvalidWeekStartDay = fmt.Errorf("invalid week start day (must be sunday or monday)")

// WeekStartDay is the configured weekday that opens a 7-day review window.
type WeekStartDay string

const (
	WeekStartSunday WeekStartDay = "sunday"
	WeekStartMonday WeekStartDay = "monday"
)

func ParseWeekStartDay(s string) (WeekStartDay, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(WeekStartSunday):
		return WeekStartSunday, nil
	case string(WeekStartMonday):
		return WeekStartMonday, nil
	default:
		return "", ErrInvalidWeekStartDay
	}
}

func (w WeekStartDay) Weekday() time.Weekday {
	if w == WeekStartMonday {
		return time.Monday
	}
	return time.Sunday
}

// NewDate builds a pure calendar date: midnight UTC, no instant semantics.
func NewDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DateOf collapses an instant to the calendar date it falls on in its own
// location, re-anchored at midnight UTC so dates compare with Equal.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

// Today returns the current calendar date as observed in loc.
func Today(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return DateOf(time.Now().In(loc))
}

func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return d, nil
}

func FormatDate(d time.Time) string {
	return d.Format(DateLayout)
}

// StartOfWeek walks back from d to the most recent occurrence of the
// policy's opening weekday (possibly d itself).
func StartOfWeek(d time.Time, policy WeekStartDay) time.Time {
	d = DateOf(d)
	offset := (int(d.Weekday()) - int(policy.Weekday()) + 7) % 7
	return d.AddDate(0, 0, -offset)
}

// WeekWindow is a fixed 7-consecutive-day inclusive range anchored at Start.
// The anchor is taken as given; week-start normalization is the caller's job.
type WeekWindow struct {
	Start time.Time
}

func NewWeekWindow(start time.Time) WeekWindow {
	return WeekWindow{Start: DateOf(start)}
}

func (w WeekWindow) End() time.Time {
	return w.Start.AddDate(0, 0, 6)
}

func (w WeekWindow) Days() []time.Time {
	days := make([]time.Time, 0, 7)
	for d := w.Start; !d.After(w.End()); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

func (w WeekWindow) Contains(d time.Time) bool {
	d = DateOf(d)
	return !d.Before(w.Start) && !d.After(w.End())
}

// Label renders the range for display, collapsing the month name when the
// window does not cross a month boundary: "August 3 - 9, 2026".
func (w WeekWindow) Label() string {
	start, end := w.Start, w.End()
	if start.Month() == end.Month() {
		return fmt.Sprintf("%s - %s", start.Format("January 2"), end.Format("2, 2006"))
	}
	return fmt.Sprintf("%s - %s", start.Format("January 2"), end.Format("January 2, 2006"))
}
