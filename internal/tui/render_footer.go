package tui

import (
	"strings"

	"github.com/hmartin/tasktally/internal/tui/styles"
)

type helpEntry struct {
	key  string
	desc string
}

var helpEntries = []helpEntry{
	{"a", "add task"},
	{"d", "delete"},
	{"u", "undo delete"},
	{"x", "dismiss undo"},
	{"space", "cycle status"},
	{"s", "cycle sort"},
	{"c", "toggle chart"},
	{"j/k", "move"},
	{"?", "help"},
	{"q", "quit"},
}

// renderFooter draws either the condensed key hints or the full help list.
func (m Model) renderFooter() string {
	if m.stage != stageNone {
		return m.renderForm()
	}

	if m.showHelp {
		var b strings.Builder
		b.WriteString(styles.StatLabelStyle.Render("Keys"))
		for _, e := range helpEntries {
			b.WriteString("\n  ")
			b.WriteString(styles.HelpKeyStyle.Render(padRight(e.key, 7)))
			b.WriteString(styles.HelpDescStyle.Render(e.desc))
		}
		return b.String()
	}

	parts := make([]string, 0, 4)
	for _, e := range []helpEntry{helpEntries[0], helpEntries[5], helpEntries[8], helpEntries[9]} {
		parts = append(parts, styles.HelpKeyStyle.Render(e.key)+" "+styles.HelpDescStyle.Render(e.desc))
	}
	return styles.FooterStyle.Render(strings.Join(parts, "  ·  "))
}

// renderForm draws the active add-form prompt with the text input.
func (m Model) renderForm() string {
	var prompt string
	switch m.stage {
	case stageTitle:
		prompt = "New task (1/3): title"
	case stageRevenue:
		prompt = "New task (2/3): revenue"
	case stageHours:
		prompt = "New task (3/3): hours"
	}

	var b strings.Builder
	b.WriteString(styles.PromptStyle.Render(prompt))
	b.WriteString("  ")
	b.WriteString(styles.HelpDescStyle.Render("enter to continue, esc to cancel"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	return b.String()
}
