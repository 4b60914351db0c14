package config

import (
	"strings"
	"testing"
)

func TestValidateSeed(t *testing.T) {
	cfg := Default()
	cfg.Seed.FallbackCount = 0
	cfg.Seed.TimeoutSeconds = -1

	errs := cfg.Validate()
	if len(errs) != 2 {
		t.Fatalf("got %d errors, want 2: %v", len(errs), errs)
	}
	if errs[0].Field != "seed.fallback_count" {
		t.Errorf("errs[0].Field = %q", errs[0].Field)
	}
}

func TestValidateTUI(t *testing.T) {
	cfg := Default()
	cfg.TUI.DefaultSort = "alphabetical"
	errs := cfg.Validate()
	if len(errs) != 1 || errs[0].Field != "tui.default_sort" {
		t.Fatalf("errs = %v", errs)
	}

	cfg = Default()
	cfg.TUI.ChartWidth = 5
	errs = cfg.Validate()
	if len(errs) != 1 || errs[0].Field != "tui.chart_width" {
		t.Fatalf("errs = %v", errs)
	}
}

func TestValidateLogging(t *testing.T) {
	cfg := Default()
	cfg.Logging.Level = "verbose"
	errs := cfg.Validate()
	if len(errs) != 1 || errs[0].Field != "logging.level" {
		t.Fatalf("errs = %v", errs)
	}

	// Levels are case-insensitive.
	cfg.Logging.Level = "DEBUG"
	if errs := cfg.Validate(); len(errs) != 0 {
		t.Errorf("uppercase level rejected: %v", errs)
	}
}

func TestValidationErrorsMessage(t *testing.T) {
	var errs ValidationErrors
	if errs.Error() != "" {
		t.Error("empty ValidationErrors should produce an empty message")
	}

	errs = ValidationErrors{
		{Field: "seed.fallback_count", Value: 0, Message: "must be positive"},
	}
	if got := errs.Error(); !strings.Contains(got, "seed.fallback_count") {
		t.Errorf("single error message = %q", got)
	}

	errs = append(errs, ValidationError{Field: "tui.chart_width", Value: 5, Message: "must be between 10 and 200"})
	got := errs.Error()
	if !strings.HasPrefix(got, "2 validation errors:") {
		t.Errorf("multi error message = %q", got)
	}
}
