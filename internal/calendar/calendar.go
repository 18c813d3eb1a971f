// Package calendar holds the date rules shared by the customer date picker,
// the admin availability view and the admin order calendar.
//
// Dates are calendar dates in YYYY-MM-DD form. They are never shifted between
// time zones: "today" is taken from the wall clock of the time passed in.
package calendar

import (
	"errors"
	"fmt"
	"slices"
	"time"
)

const Layout = "2006-01-02"

var (
	ErrBlocked = errors.New("date is not available")
	ErrTooSoon = errors.New("date is before tomorrow")
	ErrInvalid = errors.New("invalid date")
)

func Parse(date string) (time.Time, error) {
	t, err := time.Parse(Layout, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: %v", ErrInvalid, date, err)
	}
	return t, nil
}

func Format(t time.Time) string {
	return t.Format(Layout)
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func Today(now time.Time) string {
	return Format(dateOf(now))
}

// Tomorrow is the earliest date a customer may request.
func Tomorrow(now time.Time) string {
	return Format(dateOf(now).AddDate(0, 0, 1))
}

func IsPast(date string, now time.Time) bool {
	// YYYY-MM-DD compares lexically in date order
	return date < Today(now)
}

func IsBlocked(blocked []string, date string) bool {
	return slices.Contains(blocked, date)
}

// Toggle returns a new set with date added if absent or removed if present.
func Toggle(blocked []string, date string) []string {
	if IsBlocked(blocked, date) {
		out := make([]string, 0, len(blocked))
		for _, d := range blocked {
			if d != date {
				out = append(out, d)
			}
		}
		return out
	}

	out := make([]string, len(blocked), len(blocked)+1)
	copy(out, blocked)
	return append(out, date)
}

// Check applies both picker rules: not before tomorrow and not blocked by the admin.
func Check(date string, blocked []string, now time.Time) error {
	if _, err := Parse(date); err != nil {
		return err
	}
	if date < Tomorrow(now) {
		return fmt.Errorf("%s: %w", date, ErrTooSoon)
	}
	if IsBlocked(blocked, date) {
		return fmt.Errorf("%s: %w", date, ErrBlocked)
	}
	return nil
}

// MonthGrid returns nil placeholders for the weekday offset of day 1
// (weeks start on Sunday) followed by one cell per day of the month.
// The grid is not padded after the last day.
func MonthGrid(year int, month time.Month) []*time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()
	offset := int(first.Weekday())

	cells := make([]*time.Time, offset, offset+daysInMonth)
	for d := 1; d <= daysInMonth; d++ {
		day := time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
		cells = append(cells, &day)
	}
	return cells
}

// ShiftMonth moves a year/month pair by delta months.
func ShiftMonth(year int, month time.Month, delta int) (int, time.Month) {
	t := time.Date(year, month+time.Month(delta), 1, 0, 0, 0, 0, time.UTC)
	return t.Year(), t.Month()
}
