package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hmartin/tasktally/internal/config"
	"github.com/hmartin/tasktally/internal/errors"
	"github.com/hmartin/tasktally/internal/logging"
	"github.com/hmartin/tasktally/internal/store"
	"github.com/hmartin/tasktally/internal/task"
	"github.com/hmartin/tasktally/internal/tui/styles"
)

// addStage tracks which field of the add form is being collected.
type addStage int

const (
	stageNone addStage = iota
	stageTitle
	stageRevenue
	stageHours
)

// Model is the Bubbletea model for the dashboard
type Model struct {
	store *store.Store
	cfg   *config.Config
	log   *logging.Logger

	table table.Model
	input textinput.Model

	// Add-form state. While stage != stageNone, keystrokes go to the
	// text input instead of the dashboard.
	stage addStage
	draft store.Input

	width     int
	height    int
	ready     bool
	quitting  bool
	showHelp  bool
	showChart bool

	notice string
	errMsg string
}

// NewModel creates the initial dashboard model
func NewModel(st *store.Store, cfg *config.Config, log *logging.Logger) Model {
	if cfg == nil {
		cfg = config.Default()
	}

	styles.Apply(styles.PaletteFor(cfg.TUI.Theme))

	ti := textinput.New()
	ti.CharLimit = 120
	ti.Prompt = "> "

	tbl := table.New(
		table.WithColumns(taskColumns(80)),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	ts := table.DefaultStyles()
	ts.Header = styles.TableHeaderStyle
	ts.Selected = styles.TableSelectedStyle
	tbl.SetStyles(ts)

	m := Model{
		store:     st,
		cfg:       cfg,
		log:       log,
		table:     tbl,
		input:     ti,
		showChart: cfg.TUI.ShowChart,
	}
	m.refreshTable()
	return m
}

// Init issues the one-shot seed load.
func (m Model) Init() tea.Cmd {
	return seedCmd(m.store, m.cfg)
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeypress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resizeTable()
		return m, nil

	case seedDoneMsg:
		m.refreshTable()
		if msg.err != nil {
			m.notice = "seed source unavailable, showing generated sample data"
			if m.log != nil {
				m.log.Warn("dashboard running on fallback data",
					"error", msg.err, "severity", errors.GetSeverity(msg.err))
			}
		} else {
			m.notice = fmt.Sprintf("loaded %d tasks", msg.count)
		}
		return m, nil
	}

	return m, nil
}

// reportErr routes an error onto the banner matching its severity.
// Internal errors are masked behind a generic message.
func (m *Model) reportErr(err error) {
	if err == nil {
		return
	}
	text := "an internal error occurred"
	if errors.IsUserFacing(err) {
		text = err.Error()
	}
	if errors.GetSeverity(err) >= errors.SeverityError {
		m.errMsg = text
	} else {
		m.notice = text
	}
}

// selectedTask returns the task under the table cursor. The table rows are
// rebuilt from the derived view in display order, so the cursor index maps
// directly onto Derived().
func (m Model) selectedTask() (task.DerivedTask, bool) {
	derived := m.store.Derived()
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(derived) {
		return task.DerivedTask{}, false
	}
	return derived[idx], true
}

// cycleSortKey advances the display ordering to the next key.
func (m *Model) cycleSortKey() {
	current := m.store.SortKey()
	for i, key := range task.SortKeys {
		if key == current {
			m.store.SetSortKey(task.SortKeys[(i+1)%len(task.SortKeys)])
			m.refreshTable()
			return
		}
	}
	m.store.SetSortKey(task.SortKeys[0])
	m.refreshTable()
}
