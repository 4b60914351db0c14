package styles

import (
	"slices"

	"github.com/charmbracelet/lipgloss"
)

// ThemeName identifies a color theme.
type ThemeName string

// Built-in theme names.
const (
	ThemeDefault ThemeName = "default"
	ThemeMonokai ThemeName = "monokai"
	ThemeDracula ThemeName = "dracula"
	ThemeNord    ThemeName = "nord"
)

// BuiltinThemes returns the names of the compiled-in themes.
func BuiltinThemes() []string {
	return []string{
		string(ThemeDefault),
		string(ThemeMonokai),
		string(ThemeDracula),
		string(ThemeNord),
	}
}

// IsValidTheme returns true if name is a built-in or registered custom theme.
func IsValidTheme(name string) bool {
	if slices.Contains(BuiltinThemes(), name) {
		return true
	}
	return IsCustomTheme(name)
}

// ColorPalette defines the color scheme for a theme.
// All colors should meet WCAG AA contrast requirements (4.5:1 ratio).
type ColorPalette struct {
	// Primary accent color (used for emphasis, active elements)
	Primary lipgloss.Color
	// Secondary accent color (used for secondary emphasis, success states)
	Secondary lipgloss.Color
	// Warning color (used for warnings, attention-needed states)
	Warning lipgloss.Color
	// Error color (used for errors, failures)
	Error lipgloss.Color
	// Muted color (used for de-emphasized text, borders)
	Muted lipgloss.Color
	// Surface color (used for panel backgrounds)
	Surface lipgloss.Color
	// Text color (primary text)
	Text lipgloss.Color
	// Border color (panel borders)
	Border lipgloss.Color

	// Task status colors
	StatusNotStarted lipgloss.Color
	StatusInProgress lipgloss.Color
	StatusDone       lipgloss.Color

	// Performance grade colors
	GradeExcellent lipgloss.Color
	GradeGood      lipgloss.Color
	GradeNeeds     lipgloss.Color
	GradePoor      lipgloss.Color
	GradeNone      lipgloss.Color

	// Chart colors
	BarPositive lipgloss.Color
	BarNegative lipgloss.Color
}

// DefaultPalette returns the default purple/green dark theme palette.
func DefaultPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#A78BFA"), // Purple (violet-400)
		Secondary: lipgloss.Color("#10B981"), // Green
		Warning:   lipgloss.Color("#F59E0B"), // Amber
		Error:     lipgloss.Color("#F87171"), // Red (red-400)
		Muted:     lipgloss.Color("#9CA3AF"), // Gray
		Surface:   lipgloss.Color("#1F2937"), // Dark surface
		Text:      lipgloss.Color("#F9FAFB"), // Light text
		Border:    lipgloss.Color("#6B7280"), // Gray-500

		StatusNotStarted: lipgloss.Color("#9CA3AF"), // Gray
		StatusInProgress: lipgloss.Color("#60A5FA"), // Blue
		StatusDone:       lipgloss.Color("#10B981"), // Green

		GradeExcellent: lipgloss.Color("#10B981"), // Green
		GradeGood:      lipgloss.Color("#60A5FA"), // Blue
		GradeNeeds:     lipgloss.Color("#F59E0B"), // Amber
		GradePoor:      lipgloss.Color("#F87171"), // Red
		GradeNone:      lipgloss.Color("#9CA3AF"), // Gray

		BarPositive: lipgloss.Color("#10B981"),
		BarNegative: lipgloss.Color("#F87171"),
	}
}

// MonokaiPalette returns the classic Monokai editor theme palette.
func MonokaiPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#AE81FF"), // Purple
		Secondary: lipgloss.Color("#A6E22E"), // Green
		Warning:   lipgloss.Color("#E6DB74"), // Yellow
		Error:     lipgloss.Color("#F92672"), // Pink-red
		Muted:     lipgloss.Color("#75715E"), // Brown-gray
		Surface:   lipgloss.Color("#272822"), // Dark background
		Text:      lipgloss.Color("#F8F8F2"), // Off-white
		Border:    lipgloss.Color("#75715E"),

		StatusNotStarted: lipgloss.Color("#75715E"),
		StatusInProgress: lipgloss.Color("#66D9EF"), // Cyan
		StatusDone:       lipgloss.Color("#A6E22E"),

		GradeExcellent: lipgloss.Color("#A6E22E"),
		GradeGood:      lipgloss.Color("#66D9EF"),
		GradeNeeds:     lipgloss.Color("#E6DB74"),
		GradePoor:      lipgloss.Color("#F92672"),
		GradeNone:      lipgloss.Color("#75715E"),

		BarPositive: lipgloss.Color("#A6E22E"),
		BarNegative: lipgloss.Color("#F92672"),
	}
}

// DraculaPalette returns the Dracula theme palette.
func DraculaPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#BD93F9"), // Purple
		Secondary: lipgloss.Color("#50FA7B"), // Green
		Warning:   lipgloss.Color("#FFB86C"), // Orange
		Error:     lipgloss.Color("#FF5555"), // Red
		Muted:     lipgloss.Color("#6272A4"), // Comment blue-gray
		Surface:   lipgloss.Color("#282A36"), // Background
		Text:      lipgloss.Color("#F8F8F2"), // Foreground
		Border:    lipgloss.Color("#6272A4"),

		StatusNotStarted: lipgloss.Color("#6272A4"),
		StatusInProgress: lipgloss.Color("#8BE9FD"), // Cyan
		StatusDone:       lipgloss.Color("#50FA7B"),

		GradeExcellent: lipgloss.Color("#50FA7B"),
		GradeGood:      lipgloss.Color("#8BE9FD"),
		GradeNeeds:     lipgloss.Color("#FFB86C"),
		GradePoor:      lipgloss.Color("#FF5555"),
		GradeNone:      lipgloss.Color("#6272A4"),

		BarPositive: lipgloss.Color("#50FA7B"),
		BarNegative: lipgloss.Color("#FF5555"),
	}
}

// NordPalette returns the Nord theme palette.
func NordPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#88C0D0"), // Frost cyan
		Secondary: lipgloss.Color("#A3BE8C"), // Aurora green
		Warning:   lipgloss.Color("#EBCB8B"), // Aurora yellow
		Error:     lipgloss.Color("#BF616A"), // Aurora red
		Muted:     lipgloss.Color("#7B88A1"), // Lightened polar night
		Surface:   lipgloss.Color("#2E3440"), // Polar night
		Text:      lipgloss.Color("#ECEFF4"), // Snow storm
		Border:    lipgloss.Color("#4C566A"),

		StatusNotStarted: lipgloss.Color("#7B88A1"),
		StatusInProgress: lipgloss.Color("#81A1C1"), // Frost blue
		StatusDone:       lipgloss.Color("#A3BE8C"),

		GradeExcellent: lipgloss.Color("#A3BE8C"),
		GradeGood:      lipgloss.Color("#81A1C1"),
		GradeNeeds:     lipgloss.Color("#EBCB8B"),
		GradePoor:      lipgloss.Color("#BF616A"),
		GradeNone:      lipgloss.Color("#7B88A1"),

		BarPositive: lipgloss.Color("#A3BE8C"),
		BarNegative: lipgloss.Color("#BF616A"),
	}
}

// PaletteFor returns the palette for a theme name. Custom themes are
// consulted after the built-ins; unknown names fall back to the default
// palette.
func PaletteFor(name string) *ColorPalette {
	switch ThemeName(name) {
	case ThemeDefault:
		return DefaultPalette()
	case ThemeMonokai:
		return MonokaiPalette()
	case ThemeDracula:
		return DraculaPalette()
	case ThemeNord:
		return NordPalette()
	}
	if custom := GetCustomTheme(ThemeName(name)); custom != nil {
		return custom.ToPalette()
	}
	return DefaultPalette()
}
