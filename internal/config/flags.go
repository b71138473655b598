package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/drivercal/internal/flagx"
)

var flagNames = []string{"-d", "-db", "--db", "-l", "-log-level", "--log-level"}

// parseFlags populates selected Config fields from command-line flags.
//
//	-d, --db string          path to the SQLite database file
//	-l, --log-level string   log level
//
// args are filtered with flagx.FilterArgs first, so flags owned by other
// components and subcommand arguments are ignored.
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("drivercal", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the SQLite database file")
	fs.StringVar(&cfg.DatabasePath, "db", cfg.DatabasePath, "path to the SQLite database file")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")

	return fs.Parse(flagx.FilterArgs(args, flagNames))
}
