package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/drivercal/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

// Register prompts for name, phone and password and adds the driver. It does
// not log in.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter full name", a.out)
	if err != nil {
		return err
	}
	phone, err := getSimpleText(a.reader, "Enter phone number", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	d, err := a.store.RegisterDriver(ctx, name, phone, password)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Registered %s. You can now log in with your phone number.\n", d.Name)
	return nil
}

// Login authenticates a driver by phone and password.
func (a *App) Login(ctx context.Context) error {
	return a.login(ctx, "Enter phone number", false)
}

// AdminLogin authenticates the admin.
func (a *App) AdminLogin(ctx context.Context) error {
	return a.login(ctx, "Enter admin login", true)
}

func (a *App) login(ctx context.Context, prompt string, asAdmin bool) error {
	id, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	sess, err := a.store.Login(ctx, id, password, asAdmin)
	if err != nil {
		return err
	}

	a.resetView()
	fmt.Fprintf(a.out, "Logged in as %s\n", displayName(sess))
	return nil
}

// Logout clears the session and the view state.
func (a *App) Logout(ctx context.Context) error {
	if err := a.store.Logout(ctx); err != nil {
		return err
	}
	a.resetView()
	fmt.Fprintln(a.out, "Logged out")
	return nil
}
