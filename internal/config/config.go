package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/drivercal/internal/logging"
)

// Storage backends.
const (
	StorageSQLite = "sqlite"
	StorageMemory = "memory"
)

// Config holds runtime settings.
type Config struct {
	DatabasePath   string
	Storage        string
	AdminLogin     string
	AdminPassword  string
	LogLevel       string
	PersistTimeout time.Duration
	MonthsBack     int
	MonthsAhead    int
}

// LoadDefaults populates c with defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "drivercal.db"
	c.Storage = StorageSQLite
	c.AdminLogin = "admin"
	c.AdminPassword = "admin123"
	c.LogLevel = "info"
	c.PersistTimeout = 3 * time.Second
	c.MonthsBack = 1
	c.MonthsAhead = 3
}

// Validate rejects settings the application cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Storage != StorageSQLite && c.Storage != StorageMemory {
		errs = append(errs, fmt.Errorf("unknown storage %q", c.Storage))
	}
	if c.Storage == StorageSQLite && c.DatabasePath == "" {
		errs = append(errs, errors.New("database path is required"))
	}
	if c.AdminLogin == "" {
		errs = append(errs, errors.New("admin login is required"))
	}
	if c.PersistTimeout <= 0 {
		errs = append(errs, errors.New("persist timeout must be positive"))
	}
	if c.MonthsBack < 0 || c.MonthsAhead < 0 {
		errs = append(errs, errors.New("month window must not be negative"))
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// LoadConfig applies defaults, then the config file named in args (if any),
// then flags from args. args excludes the program name.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseFile(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
