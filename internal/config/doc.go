// Package config loads runtime configuration for drivercal.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected via -c, -config or --config. Files ending
//     in ".toml" are read as TOML, anything else as JSON.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d, --db string          path to the SQLite database file
//	-l, --log-level string   debug, info, warn or error
//
// # File schema
//
// Durations use timex.Duration, so they can be strings like "3s" or
// integer nanoseconds:
//
//	{
//	  "database_path": "drivercal.db",
//	  "storage": "sqlite",
//	  "admin_login": "admin",
//	  "admin_password": "admin123",
//	  "log_level": "info",
//	  "persist_timeout": "3s",
//	  "months_back": 1,
//	  "months_ahead": 3
//	}
//
// Fields missing from the file keep their defaults.
package config
