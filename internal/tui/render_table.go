package tui

import (
	"github.com/charmbracelet/bubbles/table"

	"github.com/hmartin/tasktally/internal/util"
)

// Column layout. Title flexes; everything else is fixed.
const (
	colRevenueWidth  = 10
	colHoursWidth    = 7
	colROIWidth      = 8
	colPriorityWidth = 8
	colStatusWidth   = 12
	colMinTitleWidth = 12
	tableChromeWidth = 16 // borders, padding, cell gaps
)

func taskColumns(totalWidth int) []table.Column {
	titleWidth := totalWidth - colRevenueWidth - colHoursWidth - colROIWidth -
		colPriorityWidth - colStatusWidth - tableChromeWidth
	if titleWidth < colMinTitleWidth {
		titleWidth = colMinTitleWidth
	}
	return []table.Column{
		{Title: "Task", Width: titleWidth},
		{Title: "Revenue", Width: colRevenueWidth},
		{Title: "Hours", Width: colHoursWidth},
		{Title: "ROI", Width: colROIWidth},
		{Title: "Priority", Width: colPriorityWidth},
		{Title: "Status", Width: colStatusWidth},
	}
}

// refreshTable rebuilds the table rows from the store's derived view. Row
// order follows the active sort key, so the cursor index stays aligned with
// Derived().
func (m *Model) refreshTable() {
	derived := m.store.Derived()
	rows := make([]table.Row, len(derived))
	for i, d := range derived {
		rows[i] = table.Row{
			util.TruncateString(d.Title, colMinTitleWidth+40),
			util.FormatMoney(d.Revenue),
			util.FormatHours(d.TimeTaken),
			util.FormatRatio(d.ROI),
			string(d.Priority),
			statusLabel(d.Status),
		}
	}
	m.table.SetRows(rows)

	if cursor := m.table.Cursor(); cursor >= len(rows) && len(rows) > 0 {
		m.table.SetCursor(len(rows) - 1)
	}
}

// resizeTable recomputes column widths and table height for the current
// terminal size.
func (m *Model) resizeTable() {
	if !m.ready {
		return
	}
	m.table.SetColumns(taskColumns(m.width))
	m.table.SetWidth(m.width - 4)

	// header block + chart + footer leave the rest for the table
	reserved := 9
	if m.showChart {
		reserved += chartHeight + 2
	}
	height := m.height - reserved
	if height < 4 {
		height = 4
	}
	m.table.SetHeight(height)
}
