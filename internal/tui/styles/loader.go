package styles

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// ThemeFile is the on-disk format for custom themes. All colors are hex
// strings; any field left empty inherits from the default palette.
type ThemeFile struct {
	Name   string `yaml:"name"`
	Colors struct {
		Primary   string `yaml:"primary"`
		Secondary string `yaml:"secondary"`
		Warning   string `yaml:"warning"`
		Error     string `yaml:"error"`
		Muted     string `yaml:"muted"`
		Surface   string `yaml:"surface"`
		Text      string `yaml:"text"`
		Border    string `yaml:"border"`

		StatusNotStarted string `yaml:"status_not_started"`
		StatusInProgress string `yaml:"status_in_progress"`
		StatusDone       string `yaml:"status_done"`

		GradeExcellent string `yaml:"grade_excellent"`
		GradeGood      string `yaml:"grade_good"`
		GradeNeeds     string `yaml:"grade_needs_improvement"`
		GradePoor      string `yaml:"grade_poor"`
		GradeNone      string `yaml:"grade_none"`

		BarPositive string `yaml:"bar_positive"`
		BarNegative string `yaml:"bar_negative"`
	} `yaml:"colors"`
}

var (
	customMu     sync.RWMutex
	customThemes = map[ThemeName]*ThemeFile{}
)

var hexColorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

func isValidHexColor(s string) bool {
	return hexColorRe.MatchString(s)
}

// Validate checks the theme file for a usable name and well-formed colors.
func (t *ThemeFile) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("theme name is required")
	}
	fields := map[string]string{
		"primary":                 t.Colors.Primary,
		"secondary":               t.Colors.Secondary,
		"warning":                 t.Colors.Warning,
		"error":                   t.Colors.Error,
		"muted":                   t.Colors.Muted,
		"surface":                 t.Colors.Surface,
		"text":                    t.Colors.Text,
		"border":                  t.Colors.Border,
		"status_not_started":      t.Colors.StatusNotStarted,
		"status_in_progress":      t.Colors.StatusInProgress,
		"status_done":             t.Colors.StatusDone,
		"grade_excellent":         t.Colors.GradeExcellent,
		"grade_good":              t.Colors.GradeGood,
		"grade_needs_improvement": t.Colors.GradeNeeds,
		"grade_poor":              t.Colors.GradePoor,
		"grade_none":              t.Colors.GradeNone,
		"bar_positive":            t.Colors.BarPositive,
		"bar_negative":            t.Colors.BarNegative,
	}
	for field, v := range fields {
		if v != "" && !isValidHexColor(v) {
			return fmt.Errorf("invalid color for %s: %q (expected #RRGGBB)", field, v)
		}
	}
	return nil
}

// ToPalette converts the theme file into a palette, inheriting the default
// palette for any color the file leaves unset.
func (t *ThemeFile) ToPalette() *ColorPalette {
	p := DefaultPalette()
	set := func(dst *lipgloss.Color, v string) {
		if v != "" {
			*dst = lipgloss.Color(v)
		}
	}
	set(&p.Primary, t.Colors.Primary)
	set(&p.Secondary, t.Colors.Secondary)
	set(&p.Warning, t.Colors.Warning)
	set(&p.Error, t.Colors.Error)
	set(&p.Muted, t.Colors.Muted)
	set(&p.Surface, t.Colors.Surface)
	set(&p.Text, t.Colors.Text)
	set(&p.Border, t.Colors.Border)
	set(&p.StatusNotStarted, t.Colors.StatusNotStarted)
	set(&p.StatusInProgress, t.Colors.StatusInProgress)
	set(&p.StatusDone, t.Colors.StatusDone)
	set(&p.GradeExcellent, t.Colors.GradeExcellent)
	set(&p.GradeGood, t.Colors.GradeGood)
	set(&p.GradeNeeds, t.Colors.GradeNeeds)
	set(&p.GradePoor, t.Colors.GradePoor)
	set(&p.GradeNone, t.Colors.GradeNone)
	set(&p.BarPositive, t.Colors.BarPositive)
	set(&p.BarNegative, t.Colors.BarNegative)
	return p
}

// LoadThemeFile parses and validates a single theme YAML file.
func LoadThemeFile(path string) (*ThemeFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme file: %w", err)
	}
	var tf ThemeFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("parsing theme file %s: %w", path, err)
	}
	if err := tf.Validate(); err != nil {
		return nil, fmt.Errorf("theme file %s: %w", path, err)
	}
	return &tf, nil
}

// LoadCustomThemes loads every *.yaml/*.yml file in dir and registers each as
// a custom theme. A missing directory is not an error. Invalid files are
// skipped and reported in the returned error list.
func LoadCustomThemes(dir string) []error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return []error{fmt.Errorf("reading themes directory: %w", err)}
	}

	var errs []error
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		tf, err := LoadThemeFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			errs = append(errs, err)
			continue
		}
		RegisterCustomTheme(tf)
	}
	return errs
}

// RegisterCustomTheme makes the theme available by name. A custom theme may
// not shadow a built-in name; such registrations are ignored.
func RegisterCustomTheme(tf *ThemeFile) {
	for _, builtin := range BuiltinThemes() {
		if tf.Name == builtin {
			return
		}
	}
	customMu.Lock()
	defer customMu.Unlock()
	customThemes[ThemeName(tf.Name)] = tf
}

// GetCustomTheme returns the registered custom theme or nil.
func GetCustomTheme(name ThemeName) *ThemeFile {
	customMu.RLock()
	defer customMu.RUnlock()
	return customThemes[name]
}

// IsCustomTheme reports whether name is a registered custom theme.
func IsCustomTheme(name string) bool {
	customMu.RLock()
	defer customMu.RUnlock()
	_, ok := customThemes[ThemeName(name)]
	return ok
}
