package calendar

import (
	"slices"
	"time"

	"github.com/dmitrijs2005/drivercal/internal/dateutil"
)

// Selection is the set of days picked in the current calendar session.
// Membership is by calendar day. It is never persisted.
type Selection struct {
	dates []time.Time
}

// Toggle adds day, or removes it when an equal day is already selected.
// It reports whether day is selected afterwards.
func (s *Selection) Toggle(day time.Time) bool {
	if i := s.index(day); i >= 0 {
		s.dates = slices.Delete(s.dates, i, i+1)
		return false
	}
	s.dates = append(s.dates, dateutil.Midnight(day))
	return true
}

func (s *Selection) index(day time.Time) int {
	return slices.IndexFunc(s.dates, func(d time.Time) bool { return dateutil.IsSameDay(d, day) })
}

// Contains reports whether day is selected. A nil selection is empty.
func (s *Selection) Contains(day time.Time) bool {
	return s != nil && s.index(day) >= 0
}

// Len returns the number of selected days.
func (s *Selection) Len() int {
	if s == nil {
		return 0
	}
	return len(s.dates)
}

// Dates returns the selected days in ascending order.
func (s *Selection) Dates() []time.Time {
	if s == nil {
		return nil
	}
	out := slices.Clone(s.dates)
	slices.SortFunc(out, func(a, b time.Time) int { return a.Compare(b) })
	return out
}

// Keys returns the selected days as "YYYY-MM-DD" keys, ascending.
func (s *Selection) Keys() []string {
	dates := s.Dates()
	keys := make([]string, len(dates))
	for i, d := range dates {
		keys[i] = dateutil.Key(d)
	}
	return keys
}

// Clear empties the selection.
func (s *Selection) Clear() {
	s.dates = nil
}
