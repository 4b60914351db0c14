package tui

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/hmartin/tasktally/internal/tui/styles"
	"github.com/hmartin/tasktally/internal/util"
)

const (
	chartHeight    = 8  // rows of the chart panel, including its title
	chartLabelSize = 18 // left gutter for task titles
)

// renderChart draws a horizontal revenue bar per task, top tasks first.
// Negative revenue renders in the error color so losses stand out.
func (m Model) renderChart() string {
	derived := m.store.Derived()
	if len(derived) == 0 {
		return styles.BarLabelStyle.Render("no tasks to chart")
	}

	barWidth := m.cfg.TUI.ChartWidth
	if m.ready && barWidth > m.width-chartLabelSize-14 {
		barWidth = m.width - chartLabelSize - 14
	}
	if barWidth < 10 {
		barWidth = 10
	}

	maxAbs := 0.0
	for _, d := range derived {
		if abs := math.Abs(d.Revenue); abs > maxAbs {
			maxAbs = abs
		}
	}
	if maxAbs == 0 {
		maxAbs = 1
	}

	rows := chartHeight - 1
	if rows > len(derived) {
		rows = len(derived)
	}

	var b strings.Builder
	b.WriteString(styles.StatLabelStyle.Render("Revenue by task"))
	for i := 0; i < rows; i++ {
		d := derived[i]
		b.WriteString("\n")

		label := util.TruncateString(d.Title, chartLabelSize-2)
		b.WriteString(styles.BarLabelStyle.Render(padRight(label, chartLabelSize)))

		size := int(math.Round(math.Abs(d.Revenue) / maxAbs * float64(barWidth)))
		if size < 1 && d.Revenue != 0 {
			size = 1
		}
		bar := strings.Repeat("█", size)
		if d.Revenue < 0 {
			b.WriteString(styles.BarNegativeStyle.Render(bar))
		} else {
			b.WriteString(styles.BarPositiveStyle.Render(bar))
		}

		b.WriteString(" ")
		b.WriteString(styles.StatValueStyle.Render(util.FormatMoney(d.Revenue)))
	}

	return b.String()
}

// padRight pads in runes, not bytes, so multi-byte titles keep the bar
// gutter aligned.
func padRight(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
