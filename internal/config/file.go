package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/drivercal/internal/flagx"
	"github.com/dmitrijs2005/drivercal/internal/timex"
	"github.com/pelletier/go-toml/v2"
)

// FileConfig is a DTO used only for decoding config files. Pointer fields
// distinguish "absent" from zero values.
type FileConfig struct {
	DatabasePath   *string         `json:"database_path" toml:"database_path"`
	Storage        *string         `json:"storage" toml:"storage"`
	AdminLogin     *string         `json:"admin_login" toml:"admin_login"`
	AdminPassword  *string         `json:"admin_password" toml:"admin_password"`
	LogLevel       *string         `json:"log_level" toml:"log_level"`
	PersistTimeout *timex.Duration `json:"persist_timeout" toml:"persist_timeout"`
	MonthsBack     *int            `json:"months_back" toml:"months_back"`
	MonthsAhead    *int            `json:"months_ahead" toml:"months_ahead"`
}

// parseFile overlays cfg with the file named by -c/-config/--config.
func parseFile(cfg *Config, args []string) error {
	path := flagx.ConfigFilePath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var fc FileConfig
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = toml.Unmarshal(data, &fc)
	} else {
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	fc.apply(cfg)
	return nil
}

func (fc *FileConfig) apply(cfg *Config) {
	setIf(&cfg.DatabasePath, fc.DatabasePath)
	setIf(&cfg.Storage, fc.Storage)
	setIf(&cfg.AdminLogin, fc.AdminLogin)
	setIf(&cfg.AdminPassword, fc.AdminPassword)
	setIf(&cfg.LogLevel, fc.LogLevel)
	setIf(&cfg.MonthsBack, fc.MonthsBack)
	setIf(&cfg.MonthsAhead, fc.MonthsAhead)
	if fc.PersistTimeout != nil {
		cfg.PersistTimeout = fc.PersistTimeout.Duration
	}
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
