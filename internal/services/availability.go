package services

import (
	"context"

	"github.com/dmitrijs2005/drivercal/internal/models"
)

// Report groups the roster by their mark for one date. Drivers without a
// mark count as available.
type Report struct {
	Date         string
	Total        int
	Available    []models.DriverAvailability
	NotAvailable []models.DriverAvailability
}

// SetAvailability upserts the mark for (driverID, date). Neither argument is
// validated.
func (s *Store) SetAvailability(ctx context.Context, driverID, date string, available bool) error {
	return s.SetAvailabilityBatch(ctx, driverID, []string{date}, available)
}

// SetAvailabilityBatch upserts the same mark for every date and persists the
// entry log once. On failure nothing changes.
func (s *Store) SetAvailabilityBatch(ctx context.Context, driverID string, dates []string, available bool) error {
	if len(dates) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := cloneEntries(s.entries)
	for _, date := range dates {
		next = upsert(next, models.AvailabilityEntry{DriverID: driverID, Date: date, Available: available})
	}

	if err := s.persist(ctx, KeyAvailability, next); err != nil {
		return err
	}
	s.entries = next

	s.log.Debug(ctx, "availability saved", "driver_id", driverID, "dates", len(dates), "available", available)
	return nil
}

func upsert(entries []models.AvailabilityEntry, e models.AvailabilityEntry) []models.AvailabilityEntry {
	for i := range entries {
		if entries[i].DriverID == e.DriverID && entries[i].Date == e.Date {
			entries[i].Available = e.Available
			return entries
		}
	}
	return append(entries, e)
}

// GetAvailability returns the mark for (driverID, date) or models.Unset.
func (s *Store) GetAvailability(driverID, date string) models.Availability {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lookup(driverID, date)
}

func (s *Store) lookup(driverID, date string) models.Availability {
	for _, e := range s.entries {
		if e.DriverID == driverID && e.Date == date {
			return models.AvailabilityOf(e.Available)
		}
	}
	return models.Unset
}

// Lookup returns a lookup bound to one driver.
func (s *Store) Lookup(driverID string) func(date string) models.Availability {
	return func(date string) models.Availability {
		return s.GetAvailability(driverID, date)
	}
}

// GetAllAvailability returns one row per driver, in roster order.
func (s *Store) GetAllAvailability(date string) []models.DriverAvailability {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.DriverAvailability, 0, len(s.drivers))
	for _, d := range s.drivers {
		out = append(out, models.DriverAvailability{
			Driver:       d.Public(),
			Availability: s.lookup(d.ID, date),
		})
	}
	return out
}

// DayReport splits GetAllAvailability into available and not available.
func (s *Store) DayReport(date string) Report {
	rows := s.GetAllAvailability(date)
	r := Report{Date: date, Total: len(rows)}
	for _, row := range rows {
		if row.Availability == models.Unavailable {
			r.NotAvailable = append(r.NotAvailable, row)
		} else {
			r.Available = append(r.Available, row)
		}
	}
	return r
}
