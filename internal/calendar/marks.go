package calendar

import (
	"time"

	"github.com/dmitrijs2005/drivercal/internal/dateutil"
	"github.com/dmitrijs2005/drivercal/internal/models"
)

// Window bounds the months for which marks are computed, relative to the
// month of today.
type Window struct {
	Back  int
	Ahead int
}

// DefaultWindow covers the previous month through three months ahead.
var DefaultWindow = Window{Back: 1, Ahead: 3}

// Months lists the months of the window around today, oldest first.
func (w Window) Months(today time.Time) []Month {
	cur := MonthOf(today)
	out := make([]Month, 0, w.Back+w.Ahead+1)
	for i := -w.Back; i <= w.Ahead; i++ {
		out = append(out, cur.Add(i))
	}
	return out
}

func (w Window) each(today time.Time, fn func(key string)) {
	for _, m := range w.Months(today) {
		first := m.First()
		for d := range m.Days() {
			fn(dateutil.Key(dateutil.AddDays(first, d)))
		}
	}
}

// Marks maps "YYYY-MM-DD" keys to a set mark. Days without a mark are absent.
type Marks map[string]models.Availability

// Lookup returns Unset for unmarked days.
func (m Marks) Lookup(key string) models.Availability {
	return m[key]
}

// DriverMarks collects one driver's set marks over the window.
func DriverMarks(lookup Lookup, today time.Time, w Window) Marks {
	marks := Marks{}
	w.each(today, func(key string) {
		if a := lookup(key); a.IsSet() {
			marks[key] = a
		}
	})
	return marks
}

// AdminMarks summarizes all drivers per day over the window: Available when
// every set mark is available, Unavailable when every set mark is not, and
// unmarked when marks disagree or none is set.
func AdminMarks(rows func(key string) []models.DriverAvailability, today time.Time, w Window) Marks {
	marks := Marks{}
	w.each(today, func(key string) {
		if a := summarize(rows(key)); a.IsSet() {
			marks[key] = a
		}
	})
	return marks
}

func summarize(rows []models.DriverAvailability) models.Availability {
	var yes, no bool
	for _, r := range rows {
		switch r.Availability {
		case models.Available:
			yes = true
		case models.Unavailable:
			no = true
		}
	}
	switch {
	case yes && !no:
		return models.Available
	case no && !yes:
		return models.Unavailable
	default:
		return models.Unset
	}
}
