package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/drivercal/internal/calendar"
	"github.com/dmitrijs2005/drivercal/internal/config"
	"github.com/dmitrijs2005/drivercal/internal/dateutil"
	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X ...cli.version=...".
var version = "dev"

// newAppFn is a test seam for NewApp.
var newAppFn = NewApp

var rootCmd = &cobra.Command{
	Use:           "drivercal",
	Short:         "Track driver availability on a shared calendar",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withApp(cmd, func(ctx context.Context, a *App) error {
			a.Run(ctx)
			return nil
		})
	},
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print who is available on a date (admin)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		date, _ := cmd.Flags().GetString("date")
		return withApp(cmd, func(ctx context.Context, a *App) error {
			day := a.selectedDay
			if date != "" {
				d, err := dateutil.ParseKey(date)
				if err != nil {
					return fmt.Errorf("invalid --date %q: %w", date, err)
				}
				day = d
			}
			if err := a.AdminLogin(ctx); err != nil {
				return adminError(err)
			}
			a.selectedDay = day
			return a.Report(ctx)
		})
	},
}

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Print the admin calendar for a month",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		month, _ := cmd.Flags().GetString("month")
		return withApp(cmd, func(ctx context.Context, a *App) error {
			m := a.month
			if month != "" {
				var err error
				if m, err = calendar.ParseMonth(month); err != nil {
					return err
				}
			}
			if err := a.AdminLogin(ctx); err != nil {
				return adminError(err)
			}
			a.month = m
			return a.ShowCalendar(ctx)
		})
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("drivercal version %s\n", version)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringP("config", "c", "", "path to a JSON or TOML config file")
	pf.StringP("db", "d", "", "path to the SQLite database file")
	pf.StringP("log-level", "l", "", "log level: debug, info, warn, error")

	reportCmd.Flags().String("date", "", "day to report, YYYY-MM-DD (default today)")
	calendarCmd.Flags().String("month", "", "month to show, YYYY-MM (default current)")

	rootCmd.AddCommand(reportCmd, calendarCmd, versionCmd)
}

// Execute runs the command tree with the given arguments.
func Execute(ctx context.Context, args []string) error {
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// configArgs rebuilds the config-relevant flags that were set on cmd, in
// the form config.LoadConfig expects.
func configArgs(cmd *cobra.Command) []string {
	var args []string
	for _, name := range []string{"config", "db", "log-level"} {
		f := cmd.Flags().Lookup(name)
		if f != nil && f.Changed {
			args = append(args, "--"+name+"="+f.Value.String())
		}
	}
	return args
}

func withApp(cmd *cobra.Command, fn func(ctx context.Context, a *App) error) error {
	cfg, err := config.LoadConfig(configArgs(cmd))
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	a, err := newAppFn(ctx, cfg, cmd.InOrStdin(), cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	return fn(ctx, a)
}

func adminError(err error) error {
	return errors.New(strings.TrimPrefix(userMessage(err), "Error: "))
}
