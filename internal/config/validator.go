package config

import (
	"fmt"
	"slices"
	"strings"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "seed.fallback_count")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// ValidSortKeys returns the list of valid table sort keys
func ValidSortKeys() []string {
	return []string{"roi", "revenue", "time", "created"}
}

// Validate checks the Config for invalid values and returns all validation
// errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError
	errors = append(errors, c.validateSeed()...)
	errors = append(errors, c.validateTUI()...)
	errors = append(errors, c.validateLogging()...)
	return errors
}

func (c *Config) validateSeed() []ValidationError {
	var errors []ValidationError

	if c.Seed.FallbackCount <= 0 {
		errors = append(errors, ValidationError{
			Field:   "seed.fallback_count",
			Value:   c.Seed.FallbackCount,
			Message: "must be positive",
		})
	}
	if c.Seed.TimeoutSeconds <= 0 {
		errors = append(errors, ValidationError{
			Field:   "seed.timeout_seconds",
			Value:   c.Seed.TimeoutSeconds,
			Message: "must be positive",
		})
	}

	return errors
}

func (c *Config) validateTUI() []ValidationError {
	var errors []ValidationError

	if !slices.Contains(ValidSortKeys(), c.TUI.DefaultSort) {
		errors = append(errors, ValidationError{
			Field:   "tui.default_sort",
			Value:   c.TUI.DefaultSort,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidSortKeys(), ", ")),
		})
	}
	if c.TUI.ChartWidth < 10 || c.TUI.ChartWidth > 200 {
		errors = append(errors, ValidationError{
			Field:   "tui.chart_width",
			Value:   c.TUI.ChartWidth,
			Message: "must be between 10 and 200",
		})
	}

	return errors
}

func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if !slices.Contains(ValidLogLevels(), strings.ToLower(c.Logging.Level)) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	return errors
}
