// Package calendar builds month grids for the availability views: the day
// slots of a month, per-day display state, the multi-date selection and the
// marked-date windows derived from stored availability.
package calendar

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/drivercal/internal/dateutil"
)

// Month is a calendar month.
type Month struct {
	Year  int
	Month time.Month
}

// MonthOf returns the month containing t.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// ParseMonth parses "YYYY-MM".
func ParseMonth(s string) (Month, error) {
	t, err := time.ParseInLocation("2006-01", s, time.Local)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q: %w", s, err)
	}
	return MonthOf(t), nil
}

// First returns local midnight of day 1.
func (m Month) First() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.Local)
}

// Days returns the number of days in m.
func (m Month) Days() int {
	// day 0 of the next month is the last day of m
	return time.Date(m.Year, m.Month+1, 0, 0, 0, 0, 0, time.Local).Day()
}

// Day returns local midnight of day d, or false when d is outside m.
func (m Month) Day(d int) (time.Time, bool) {
	if d < 1 || d > m.Days() {
		return time.Time{}, false
	}
	return time.Date(m.Year, m.Month, d, 0, 0, 0, 0, time.Local), true
}

// Add moves m by n months, wrapping years.
func (m Month) Add(n int) Month {
	return MonthOf(time.Date(m.Year, m.Month+time.Month(n), 1, 0, 0, 0, 0, time.Local))
}

// Key returns "YYYY-MM".
func (m Month) Key() string {
	return dateutil.Format(m.First(), "yyyy-MM")
}

func (m Month) String() string {
	return dateutil.Format(m.First(), "MMMM yyyy")
}

// Direction is a navigation step.
type Direction int

const (
	Backward Direction = -1
	Forward  Direction = 1
)

// Navigate moves exactly one month in dir.
func Navigate(m Month, dir Direction) Month {
	if dir < 0 {
		return m.Add(-1)
	}
	return m.Add(1)
}

// DaySlot is one cell of a month grid. Blank slots pad the first week.
type DaySlot struct {
	Date  time.Time
	Blank bool
}

// DaysInMonth returns leading blanks so that day 1 sits under its weekday
// column (Sunday is column 0), followed by one slot per day.
func DaysInMonth(m Month) []DaySlot {
	first := m.First()
	lead := int(first.Weekday())
	n := m.Days()

	slots := make([]DaySlot, 0, lead+n)
	for range lead {
		slots = append(slots, DaySlot{Blank: true})
	}
	for d := range n {
		slots = append(slots, DaySlot{Date: dateutil.AddDays(first, d)})
	}
	return slots
}
