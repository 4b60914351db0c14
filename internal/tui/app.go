// Package tui implements the interactive dashboard.
package tui

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/hmartin/tasktally/internal/config"
	"github.com/hmartin/tasktally/internal/logging"
	"github.com/hmartin/tasktally/internal/store"
	tea "github.com/charmbracelet/bubbletea"
)

// App wraps the Bubbletea program
type App struct {
	program *tea.Program
	model   Model
}

// New creates a new dashboard application
func New(st *store.Store, cfg *config.Config, log *logging.Logger) *App {
	return &App{
		model: NewModel(st, cfg, log),
	}
}

// Run starts the dashboard and blocks until it exits
func (a *App) Run() error {
	a.program = tea.NewProgram(
		a.model,
		tea.WithAltScreen(),
	)

	// Set up signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	go func() {
		<-sigChan
		if a.program != nil {
			a.program.Send(tea.Quit())
		}
	}()

	_, err := a.program.Run()

	signal.Stop(sigChan)

	return err
}

// Messages

// seedDoneMsg reports the outcome of the one-shot seed load: how many
// tasks the store holds and the retained fetch failure, if any.
type seedDoneMsg struct {
	count int
	err   error
}

// Commands

// seedCmd loads the store once from the configured source. The store
// guarantees one-shot semantics, so re-issuing this command is harmless.
// The pass itself never fails; a fetch problem surfaces via SeedErr.
func seedCmd(st *store.Store, cfg *config.Config) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Seed.FetchTimeout())
		defer cancel()

		_ = st.SeedN(ctx, cfg.Seed.Source, cfg.Seed.FallbackCount)
		return seedDoneMsg{count: st.Len(), err: st.SeedErr()}
	}
}
