package tui

import "strings"

// View renders the dashboard
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "loading..."
	}

	sections := []string{
		m.renderHeader(),
		m.table.View(),
	}
	if m.showChart {
		sections = append(sections, m.renderChart())
	}
	sections = append(sections, m.renderFooter())

	return strings.Join(sections, "\n\n")
}
