package calendar

import (
	"time"

	"github.com/dmitrijs2005/drivercal/internal/dateutil"
	"github.com/dmitrijs2005/drivercal/internal/models"
)

// DisplayState is how a day cell is drawn.
type DisplayState int

const (
	Plain DisplayState = iota
	Today
	SelectedForAvailable
	SelectedForUnavailable
	Available
	Unavailable
)

func (s DisplayState) String() string {
	switch s {
	case Today:
		return "today"
	case SelectedForAvailable:
		return "selected-available"
	case SelectedForUnavailable:
		return "selected-unavailable"
	case Available:
		return "available"
	case Unavailable:
		return "unavailable"
	default:
		return "plain"
	}
}

// Mode picks the colour of selected days.
type Mode int

const (
	ModeAvailable Mode = iota
	ModeUnavailable
)

// Lookup returns the mark stored for a "YYYY-MM-DD" key.
type Lookup func(key string) models.Availability

// Classify picks the display state of day. Stored marks win over the
// selection, the selection wins over today.
func Classify(day time.Time, lookup Lookup, sel *Selection, mode Mode, today time.Time) DisplayState {
	if lookup != nil {
		switch lookup(dateutil.Key(day)) {
		case models.Unavailable:
			return Unavailable
		case models.Available:
			return Available
		}
	}
	if sel.Contains(day) {
		if mode == ModeUnavailable {
			return SelectedForUnavailable
		}
		return SelectedForAvailable
	}
	if dateutil.IsSameDay(day, today) {
		return Today
	}
	return Plain
}
