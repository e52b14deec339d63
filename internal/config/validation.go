package config

import (
	"fmt"
	"strings"
)

// ValidationError describes a single config validation failure.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface for a single validation error.
func (ve ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ve.Field, ve.Message)
}

var logLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Validate checks the Config for completeness and consistency. It returns a
// slice of all discovered issues rather than stopping at the first one.
func Validate(cfg *Config) []ValidationError {
	var errs []ValidationError

	// --- Credentials ---
	if cfg.APIKey == "" && !cfg.UsesVertex() {
		errs = append(errs, ValidationError{
			Field:   "api_key",
			Message: "not set (export GEMINI_API_KEY or add it to .env)",
		})
	}

	// --- Models ---
	if strings.TrimSpace(cfg.Models.Fast) == "" {
		errs = append(errs, ValidationError{Field: "models.fast", Message: "required field is empty"})
	}
	if strings.TrimSpace(cfg.Models.Advanced) == "" {
		errs = append(errs, ValidationError{Field: "models.advanced", Message: "required field is empty"})
	}

	// --- Playground ---
	if _, err := cfg.PlaygroundModel(); err != nil {
		errs = append(errs, ValidationError{Field: "playground.model", Message: err.Error()})
	}

	// --- Logging ---
	if !logLevels[strings.ToLower(cfg.Log.Level)] {
		errs = append(errs, ValidationError{
			Field:   "log.level",
			Message: fmt.Sprintf("must be one of debug, info, warn, error; got %q", cfg.Log.Level),
		})
	}

	return errs
}
