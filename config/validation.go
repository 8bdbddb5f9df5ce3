package config

import (
	"fmt"
	"strings"
)

// ValidateConfig checks that the loaded configuration is coherent for the
// current environment. Development and test run standalone, so only the
// server address is mandatory there; production and CI must name their
// backing services completely or not at all.
func ValidateConfig(cfg *Config) error {
	var errors []string

	if cfg.ServerPort == "" {
		errors = append(errors, "server port is not set")
	}

	// A partially configured database is a deployment mistake, not a
	// standalone setup.
	if cfg.HasDatabase() {
		if cfg.DBUser == "" {
			errors = append(errors, "DB_HOST is set but the database user is missing")
		}
		if cfg.DBName == "" {
			errors = append(errors, "DB_HOST is set but the database name is missing")
		}
		if GetEnvironment() == Production && cfg.DBPassword == "" {
			errors = append(errors, "db_password secret is required in production")
		}
	}

	if env := GetEnvironment(); env == Production {
		if cfg.ServerHost == "" {
			errors = append(errors, "server host is not set")
		}
		if !cfg.HasDatabase() {
			errors = append(errors, "production requires a catalogue database")
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(errors, "\n"))
	}

	return nil
}
