package models

// AvailabilityEntry records one driver's mark for one day. Date is the
// canonical "YYYY-MM-DD" key. The entry log holds at most one entry per
// (DriverID, Date).
type AvailabilityEntry struct {
	DriverID  string `json:"driverId"`
	Date      string `json:"date"`
	Available bool   `json:"available"`
}

// Availability is the result of a lookup: a stored mark or Unset.
type Availability int8

const (
	Unset Availability = iota
	Available
	Unavailable
)

// AvailabilityOf converts a stored boolean mark.
func AvailabilityOf(available bool) Availability {
	if available {
		return Available
	}
	return Unavailable
}

// IsSet reports whether a mark is stored.
func (a Availability) IsSet() bool { return a != Unset }

// Bool returns the stored mark and whether there is one.
func (a Availability) Bool() (value bool, ok bool) {
	switch a {
	case Available:
		return true, true
	case Unavailable:
		return false, true
	default:
		return false, false
	}
}

func (a Availability) String() string {
	switch a {
	case Available:
		return "available"
	case Unavailable:
		return "not available"
	default:
		return "unset"
	}
}

// DriverAvailability pairs a driver with its mark for one date.
type DriverAvailability struct {
	Driver       Driver
	Availability Availability
}
