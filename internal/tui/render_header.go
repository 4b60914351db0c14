package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hmartin/tasktally/internal/task"
	"github.com/hmartin/tasktally/internal/tui/styles"
	"github.com/hmartin/tasktally/internal/util"
)

func statusLabel(s task.Status) string {
	switch s {
	case task.StatusNotStarted:
		return "not started"
	case task.StatusInProgress:
		return "in progress"
	case task.StatusDone:
		return "done"
	}
	return string(s)
}

// renderHeader draws the title line plus the aggregate metrics strip.
func (m Model) renderHeader() string {
	metrics := m.store.Metrics()

	title := styles.TitleStyle.Render("tasktally")
	sortLabel := styles.StatLabelStyle.Render(fmt.Sprintf("  sort: %s", m.store.SortKey()))

	var b strings.Builder
	b.WriteString(title)
	b.WriteString(sortLabel)
	if source := m.store.Source(); source != "" {
		b.WriteString(styles.StatLabelStyle.Render("  source: " + util.TruncateString(source, 40)))
	}
	b.WriteString("\n")

	stat := func(label, value string) string {
		return styles.StatLabelStyle.Render(label+" ") + styles.StatValueStyle.Render(value)
	}

	grade := string(metrics.PerformanceGrade)
	cells := []string{
		stat("Revenue", util.FormatMoney(metrics.TotalRevenue)),
		stat("Hours", util.FormatHours(metrics.TotalTimeTaken)),
		stat("Rev/hr", util.FormatMoney(metrics.RevenuePerHour)),
		stat("Avg ROI", util.FormatRatio(metrics.AverageROI)),
		stat("Done", util.FormatPct(metrics.TimeEfficiencyPct)),
		stat("Tasks", fmt.Sprintf("%d", metrics.TaskCount)),
		styles.StatLabelStyle.Render("Grade ") + styles.GradeStyle(grade).Render(grade),
	}
	strip := lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(cells, "   "))
	b.WriteString(styles.PanelBorderStyle.Render(strip))

	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(styles.NoticeStyle.Render(m.notice))
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(styles.ErrorStyle.Render(m.errMsg))
	}

	return b.String()
}
