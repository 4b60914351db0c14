package tui

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hmartin/tasktally/internal/errors"
	"github.com/hmartin/tasktally/internal/store"
	"github.com/hmartin/tasktally/internal/task"
)

// handleKeypress processes keyboard input
func (m Model) handleKeypress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Add-form mode: the text input owns the keyboard until the form is
	// submitted or cancelled.
	if m.stage != stageNone {
		return m.handleFormInput(msg)
	}

	// Normal mode clears transient messages on most actions.
	m.errMsg = ""

	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "?":
		m.showHelp = !m.showHelp
		return m, nil

	case "s":
		m.cycleSortKey()
		return m, nil

	case "c":
		m.showChart = !m.showChart
		m.resizeTable()
		return m, nil

	case "a":
		m.stage = stageTitle
		m.draft = store.Input{Priority: task.PriorityMedium, Status: task.StatusNotStarted}
		m.input.Placeholder = "task title"
		m.input.SetValue("")
		m.input.Focus()
		return m, nil

	case "d":
		if sel, ok := m.selectedTask(); ok {
			m.store.Delete(sel.ID)
			m.notice = "deleted " + sel.Title + "  (u to undo)"
			m.refreshTable()
		}
		return m, nil

	case "u":
		if restored, ok := m.store.UndoDelete(); ok {
			m.notice = "restored " + restored.Title
			m.refreshTable()
		} else {
			m.reportErr(errors.NewStoreError("undo slot is empty", errors.ErrNothingToUndo).
				WithSeverity(errors.SeverityInfo))
		}
		return m, nil

	case "x":
		m.store.ClearLastDeleted()
		m.notice = ""
		return m, nil

	case " ":
		if sel, ok := m.selectedTask(); ok {
			next := nextStatus(sel.Status)
			m.store.Update(sel.ID, store.Patch{Status: &next})
			m.refreshTable()
		}
		return m, nil
	}

	// Everything else (j/k, arrows, pgup/pgdown) drives the table cursor.
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// handleFormInput drives the staged add form: title, then revenue, then
// hours. Esc cancels the whole form; enter advances.
func (m Model) handleFormInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.stage = stageNone
		m.input.Blur()
		m.input.SetValue("")
		return m, nil

	case tea.KeyEnter:
		value := strings.TrimSpace(m.input.Value())
		switch m.stage {
		case stageTitle:
			if value == "" {
				m.errMsg = "title is required"
				return m, nil
			}
			m.draft.Title = value
			m.stage = stageRevenue
			m.input.Placeholder = "revenue (e.g. 250 or -75.50)"
			m.input.SetValue("")
			return m, nil

		case stageRevenue:
			revenue, err := strconv.ParseFloat(value, 64)
			if value == "" {
				revenue = 0
			} else if err != nil {
				m.errMsg = "revenue must be a number"
				return m, nil
			}
			m.draft.Revenue = revenue
			m.stage = stageHours
			m.input.Placeholder = "hours (default 1)"
			m.input.SetValue("")
			return m, nil

		case stageHours:
			hours, err := strconv.ParseFloat(value, 64)
			if value == "" {
				hours = 1
			} else if err != nil {
				m.errMsg = "hours must be a number"
				return m, nil
			}
			m.draft.TimeTaken = hours

			added := m.store.Add(m.draft)
			m.notice = "added " + added.Title
			m.stage = stageNone
			m.input.Blur()
			m.input.SetValue("")
			m.errMsg = ""
			m.refreshTable()
			return m, nil
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// nextStatus cycles not_started -> in_progress -> done -> not_started.
func nextStatus(s task.Status) task.Status {
	switch s {
	case task.StatusNotStarted:
		return task.StatusInProgress
	case task.StatusInProgress:
		return task.StatusDone
	default:
		return task.StatusNotStarted
	}
}
