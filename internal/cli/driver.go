package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/drivercal/internal/calendar"
	"github.com/dmitrijs2005/drivercal/internal/dateutil"
)

// ShowCalendar draws the month on screen with the marks of the current
// view: the driver's own marks, or the per-day summary for the admin.
func (a *App) ShowCalendar(ctx context.Context) error {
	today := a.now()
	v := calendar.View{
		Month:     a.month,
		Selection: &a.selection,
		Mode:      calendar.ModeUnavailable,
		Today:     today,
	}

	if sess := a.store.Session(); sess.IsAdmin {
		v.Marks = calendar.AdminMarks(a.store.GetAllAvailability, today, a.window)
		v.Mode = calendar.ModeAvailable
		sel := &calendar.Selection{}
		sel.Toggle(a.selectedDay)
		v.Selection = sel
	} else if sess.CurrentUser != nil {
		v.Marks = calendar.DriverMarks(a.store.Lookup(sess.CurrentUser.ID), today, a.window)
	}

	fmt.Fprint(a.out, a.renderer.Render(v))
	fmt.Fprintln(a.out, a.renderer.Legend(v.Mode))
	return nil
}

// NextMonth moves the view one month forward and redraws it.
func (a *App) NextMonth(ctx context.Context) error {
	a.month = calendar.Navigate(a.month, calendar.Forward)
	return a.ShowCalendar(ctx)
}

// PrevMonth moves the view one month back and redraws it.
func (a *App) PrevMonth(ctx context.Context) error {
	a.month = calendar.Navigate(a.month, calendar.Backward)
	return a.ShowCalendar(ctx)
}

// Pick toggles each given day in the selection. A bare number is a day of
// the month on screen.
func (a *App) Pick(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage("pick <day|YYYY-MM-DD>...")
	}

	days := make([]time.Time, 0, len(args))
	for _, arg := range args {
		d, err := a.parseDay(arg)
		if err != nil {
			return err
		}
		days = append(days, d)
	}
	for _, d := range days {
		a.selection.Toggle(d)
	}

	a.printSelection()
	return nil
}

func (a *App) printSelection() {
	if a.selection.Len() == 0 {
		fmt.Fprintln(a.out, "Nothing selected")
		return
	}
	fmt.Fprintf(a.out, "Selected (%d): %s\n", a.selection.Len(), strings.Join(a.selection.Keys(), ", "))
}

// parseDay accepts "YYYY-MM-DD" or a day number of the month on screen.
func (a *App) parseDay(arg string) (time.Time, error) {
	if n, err := strconv.Atoi(arg); err == nil {
		d, ok := a.month.Day(n)
		if !ok {
			return time.Time{}, fmt.Errorf("%s has no day %d", a.month, n)
		}
		return d, nil
	}
	d, err := dateutil.ParseKey(arg)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, want a day number or YYYY-MM-DD", arg)
	}
	return d, nil
}

// ClearSelection drops all picked days.
func (a *App) ClearSelection(ctx context.Context) error {
	a.selection.Clear()
	a.printSelection()
	return nil
}

// Save commits the selection as available or not available in one write.
// The selection is kept when the write fails.
func (a *App) Save(ctx context.Context, args []string) error {
	if len(args) != 1 || (args[0] != "available" && args[0] != "unavailable") {
		return errUsage("save available|unavailable")
	}
	if a.selection.Len() == 0 {
		fmt.Fprintln(a.out, "Nothing selected")
		return nil
	}
	user := a.store.Session().CurrentUser
	if user == nil {
		return errUsage("login first")
	}

	available := args[0] == "available"
	n := a.selection.Len()
	if err := a.store.SetAvailabilityBatch(ctx, user.ID, a.selection.Keys(), available); err != nil {
		return err
	}
	a.selection.Clear()

	label := "available"
	if !available {
		label = "not available"
	}
	fmt.Fprintf(a.out, "Saved %d date(s) as %s\n", n, label)
	return nil
}
