// Package styles provides lipgloss styles and color themes for the dashboard.
package styles

import "github.com/charmbracelet/lipgloss"

// Styles used by the dashboard renderers. They are package-level variables
// so a theme change can restyle the whole UI with a single Apply call.
var (
	// Header
	TitleStyle  lipgloss.Style
	NoticeStyle lipgloss.Style
	ErrorStyle  lipgloss.Style

	// Stat panel
	StatLabelStyle lipgloss.Style
	StatValueStyle lipgloss.Style
	GradeStyles    map[string]lipgloss.Style

	// Table
	TableHeaderStyle   lipgloss.Style
	TableSelectedStyle lipgloss.Style
	StatusStyles       map[string]lipgloss.Style

	// Chart
	BarPositiveStyle lipgloss.Style
	BarNegativeStyle lipgloss.Style
	BarLabelStyle    lipgloss.Style

	// Footer
	HelpKeyStyle  lipgloss.Style
	HelpDescStyle lipgloss.Style
	FooterStyle   lipgloss.Style

	// Panels
	PanelBorderStyle lipgloss.Style

	// Forms
	PromptStyle lipgloss.Style
)

func init() {
	Apply(DefaultPalette())
}

// Apply rebuilds every style from the given palette.
func Apply(p *ColorPalette) {
	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary)

	NoticeStyle = lipgloss.NewStyle().
		Foreground(p.Warning)

	ErrorStyle = lipgloss.NewStyle().
		Foreground(p.Error).
		Bold(true)

	StatLabelStyle = lipgloss.NewStyle().
		Foreground(p.Muted)

	StatValueStyle = lipgloss.NewStyle().
		Foreground(p.Text).
		Bold(true)

	GradeStyles = map[string]lipgloss.Style{
		"Excellent":         lipgloss.NewStyle().Foreground(p.GradeExcellent).Bold(true),
		"Good":              lipgloss.NewStyle().Foreground(p.GradeGood).Bold(true),
		"Needs Improvement": lipgloss.NewStyle().Foreground(p.GradeNeeds).Bold(true),
		"Poor":              lipgloss.NewStyle().Foreground(p.GradePoor).Bold(true),
		"No Data":           lipgloss.NewStyle().Foreground(p.GradeNone),
	}

	TableHeaderStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(p.Border)

	TableSelectedStyle = lipgloss.NewStyle().
		Foreground(p.Text).
		Background(p.Surface).
		Bold(true)

	StatusStyles = map[string]lipgloss.Style{
		"not_started": lipgloss.NewStyle().Foreground(p.StatusNotStarted),
		"in_progress": lipgloss.NewStyle().Foreground(p.StatusInProgress),
		"done":        lipgloss.NewStyle().Foreground(p.StatusDone),
	}

	BarPositiveStyle = lipgloss.NewStyle().Foreground(p.BarPositive)
	BarNegativeStyle = lipgloss.NewStyle().Foreground(p.BarNegative)
	BarLabelStyle = lipgloss.NewStyle().Foreground(p.Muted)

	HelpKeyStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)

	HelpDescStyle = lipgloss.NewStyle().
		Foreground(p.Muted)

	FooterStyle = lipgloss.NewStyle().
		Foreground(p.Muted)

	PanelBorderStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 1)

	PromptStyle = lipgloss.NewStyle().
		Foreground(p.Secondary).
		Bold(true)
}

// GradeStyle returns the style for a performance grade, falling back to the
// "No Data" style for unknown grades.
func GradeStyle(grade string) lipgloss.Style {
	if s, ok := GradeStyles[grade]; ok {
		return s
	}
	return GradeStyles["No Data"]
}

// StatusStyle returns the style for a task status string.
func StatusStyle(status string) lipgloss.Style {
	if s, ok := StatusStyles[status]; ok {
		return s
	}
	return StatLabelStyle
}
