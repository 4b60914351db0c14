package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hmartin/tasktally/internal/config"
	"github.com/hmartin/tasktally/internal/errors"
	"github.com/hmartin/tasktally/internal/tui"
	"github.com/hmartin/tasktally/internal/tui/styles"
)

var dashCmd = &cobra.Command{
	Use:   "dash",
	Short: "Open the interactive dashboard",
	Long: `Open the interactive terminal dashboard.

The dashboard seeds itself once from the configured source, falling back
to generated sample data when the source is unavailable, and supports
adding, updating, and deleting tasks with single-level undo.`,
	RunE: runDash,
}

func init() {
	rootCmd.AddCommand(dashCmd)
}

func runDash(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log, err := newLogger(cfg, "dash")
	if err != nil {
		return err
	}
	if log != nil {
		defer log.Close()
	}

	// Custom themes live next to the config file. Bad theme files are
	// reported but never block the dashboard.
	for _, themeErr := range styles.LoadCustomThemes(filepath.Join(config.ConfigDir(), "themes")) {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", themeErr)
	}
	if !styles.IsValidTheme(cfg.TUI.Theme) {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: unknown theme %q, using default\n", cfg.TUI.Theme)
	}

	st := newStore(cfg, log)

	app := tui.New(st, cfg, log)
	return errors.Wrap(app.Run(), "dashboard failed")
}
