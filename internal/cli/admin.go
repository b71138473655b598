package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/drivercal/internal/calendar"
	"github.com/dmitrijs2005/drivercal/internal/dateutil"
	"github.com/dmitrijs2005/drivercal/internal/models"
	"github.com/dmitrijs2005/drivercal/internal/services"
)

// Day selects the admin's day and prints its report. The view follows the
// day's month.
func (a *App) Day(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage("day <day|YYYY-MM-DD>")
	}
	d, err := a.parseDay(args[0])
	if err != nil {
		return err
	}
	a.selectedDay = d
	a.month = calendar.MonthOf(d)
	return a.Report(ctx)
}

// Report prints who is available on the selected day.
func (a *App) Report(ctx context.Context) error {
	writeReport(a.out, a.store.DayReport(dateutil.Key(a.selectedDay)), dateutil.Format(a.selectedDay, "MMMM dd, yyyy"))
	return nil
}

func writeReport(w io.Writer, r services.Report, title string) {
	fmt.Fprintln(w, title)
	if r.Total == 0 {
		fmt.Fprintln(w, "No drivers registered")
		return
	}
	writeGroup(w, "Available", r.Available)
	writeGroup(w, "Not available", r.NotAvailable)
}

func writeGroup(w io.Writer, label string, rows []models.DriverAvailability) {
	if len(rows) == 0 {
		return
	}
	fmt.Fprintf(w, "%s (%d)\n", label, len(rows))
	for _, r := range rows {
		fmt.Fprintf(w, "  %-20s %s\n", r.Driver.Name, r.Driver.Phone)
	}
}

// ListDrivers prints the roster in registration order.
func (a *App) ListDrivers(ctx context.Context) error {
	drivers := a.store.Drivers()
	if len(drivers) == 0 {
		fmt.Fprintln(a.out, "No drivers registered")
		return nil
	}
	fmt.Fprintf(a.out, "Drivers (%d)\n", len(drivers))
	for _, d := range drivers {
		fmt.Fprintf(a.out, "  %-20s %s\n", d.Name, d.Phone)
	}
	return nil
}
