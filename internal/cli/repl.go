package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/drivercal/internal/common"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

type sessionState int

const (
	stateLoggedOut sessionState = iota
	stateDriver
	stateAdmin
)

// execIface defines the command surface the REPL dispatches to.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	state() sessionState

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	AdminLogin(ctx context.Context) error
	Logout(ctx context.Context) error

	ShowCalendar(ctx context.Context) error
	NextMonth(ctx context.Context) error
	PrevMonth(ctx context.Context) error

	Pick(ctx context.Context, args []string) error
	ClearSelection(ctx context.Context) error
	Save(ctx context.Context, args []string) error

	Day(ctx context.Context, args []string) error
	Report(ctx context.Context) error
	ListDrivers(ctx context.Context) error
}

var helpText = map[sessionState]string{
	stateLoggedOut: "Available commands: register, login, admin, exit",
	stateDriver:    "Available commands: cal, next, prev, pick <day|YYYY-MM-DD>..., clear, save available|unavailable, logout, exit",
	stateAdmin:     "Available commands: cal, next, prev, day <day|YYYY-MM-DD>, report, drivers, logout, exit",
}

// runREPL reads one command per line from reader and dispatches it to a.
// Commands outside the current state's set are refused. Handler errors are
// printed as short messages and never stop the loop, which exits on EOF or
// on "exit" / "quit".
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("drivercal%s> ", prefixSpace(statusFn())))
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]
		st := a.state()

		var handler func() error
		switch {
		case cmd == "exit" || cmd == "quit":
			printlnFn("Bye!")
			return
		case cmd == "help":
			printlnFn(helpText[st])
			continue
		case cmd == "logout" && st != stateLoggedOut:
			handler = func() error { return a.Logout(ctx) }

		case st == stateLoggedOut:
			handler = loggedOutCommand(ctx, a, cmd)
		case st == stateDriver:
			handler = driverCommand(ctx, a, cmd, args)
		case st == stateAdmin:
			handler = adminCommand(ctx, a, cmd, args)
		}

		if handler == nil {
			printlnFn("Unknown command:", cmd)
			continue
		}
		if err := handler(); err != nil {
			printlnFn(userMessage(err))
		}
	}
}

func prefixSpace(s string) string {
	if s == "" {
		return ""
	}
	return " " + s
}

func loggedOutCommand(ctx context.Context, a execIface, cmd string) func() error {
	switch cmd {
	case "register":
		return func() error { return a.Register(ctx) }
	case "login":
		return func() error { return a.Login(ctx) }
	case "admin":
		return func() error { return a.AdminLogin(ctx) }
	}
	return nil
}

func driverCommand(ctx context.Context, a execIface, cmd string, args []string) func() error {
	switch cmd {
	case "cal":
		return func() error { return a.ShowCalendar(ctx) }
	case "next":
		return func() error { return a.NextMonth(ctx) }
	case "prev":
		return func() error { return a.PrevMonth(ctx) }
	case "pick":
		return func() error { return a.Pick(ctx, args) }
	case "clear":
		return func() error { return a.ClearSelection(ctx) }
	case "save":
		return func() error { return a.Save(ctx, args) }
	}
	return nil
}

func adminCommand(ctx context.Context, a execIface, cmd string, args []string) func() error {
	switch cmd {
	case "cal":
		return func() error { return a.ShowCalendar(ctx) }
	case "next":
		return func() error { return a.NextMonth(ctx) }
	case "prev":
		return func() error { return a.PrevMonth(ctx) }
	case "day":
		return func() error { return a.Day(ctx, args) }
	case "report":
		return func() error { return a.Report(ctx) }
	case "drivers":
		return func() error { return a.ListDrivers(ctx) }
	}
	return nil
}

// errUsage carries a usage line back to the user.
type errUsage string

func (e errUsage) Error() string { return "Usage: " + string(e) }

// userMessage turns an error into the line shown to the user.
func userMessage(err error) string {
	var usage errUsage
	switch {
	case errors.As(err, &usage):
		return usage.Error()
	case errors.Is(err, common.ErrInvalidCredentials):
		return "Invalid credentials"
	case errors.Is(err, common.ErrMissingCredentials):
		return "Phone and password are required"
	case errors.Is(err, common.ErrMissingFields):
		return "All fields are required"
	case errors.Is(err, common.ErrDuplicatePhone):
		return "Phone number already exists"
	case errors.Is(err, common.ErrPersistence):
		return "Could not save changes, please try again"
	case errors.Is(err, io.EOF):
		return "Input closed"
	default:
		return "Error: " + err.Error()
	}
}
