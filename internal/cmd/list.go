package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hmartin/tasktally/internal/config"
	"github.com/hmartin/tasktally/internal/errors"
	"github.com/hmartin/tasktally/internal/task"
	"github.com/hmartin/tasktally/internal/util"
)

var listCmd = &cobra.Command{
	Use:   "list [id]",
	Short: "List tasks with their derived ROI, or show a single task by ID",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runList,
}

var (
	listSort string
	listJSON bool
)

func init() {
	listCmd.Flags().StringVar(&listSort, "sort", "", "sort key: roi, revenue, time, created (default from config)")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output tasks as JSON")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if listSort != "" {
		if !slices.Contains(config.ValidSortKeys(), listSort) {
			return errors.NewValidationError(
				fmt.Sprintf("sort key must be one of %s", strings.Join(config.ValidSortKeys(), ", "))).
				WithField("sort").WithValue(listSort)
		}
		cfg.TUI.DefaultSort = listSort
	}

	log, err := newLogger(cfg, "list")
	if err != nil {
		return err
	}
	if log != nil {
		defer log.Close()
	}

	st, err := newSeededStore(cmd.Context(), cfg, log)
	if err != nil {
		return fmt.Errorf("failed to load tasks: %w", err)
	}
	if seedErr := st.SeedErr(); seedErr != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v (showing generated sample data)\n", seedErr)
	}

	derived := st.Derived()
	out := cmd.OutOrStdout()

	if len(args) == 1 {
		idx := slices.IndexFunc(derived, func(d task.DerivedTask) bool { return d.ID == args[0] })
		if idx < 0 {
			return errors.NewNotFoundError("task", args[0])
		}
		if listJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(derived[idx])
		}
		printTaskRow(out, derived[idx])
		return nil
	}

	if listJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(derived)
	}

	if len(derived) == 0 {
		fmt.Fprintln(out, "No tasks.")
		return nil
	}

	fmt.Fprintf(out, "%-42s %10s %7s %8s %-11s\n", "TASK", "REVENUE", "HOURS", "ROI", "STATUS")
	fmt.Fprintln(out, strings.Repeat("─", 82))
	for _, d := range derived {
		printTaskRow(out, d)
	}

	metrics := st.Metrics()
	fmt.Fprintln(out, strings.Repeat("─", 82))
	fmt.Fprintf(out, "%-42s %10s %7s %8s %-11s\n",
		fmt.Sprintf("%d tasks, grade %s", metrics.TaskCount, metrics.PerformanceGrade),
		util.FormatMoney(metrics.TotalRevenue),
		util.FormatHours(metrics.TotalTimeTaken),
		util.FormatRatio(metrics.AverageROI),
		"")
	return nil
}

func printTaskRow(out io.Writer, d task.DerivedTask) {
	fmt.Fprintf(out, "%-42s %10s %7s %8s %-11s\n",
		util.TruncateString(d.Title, 42),
		util.FormatMoney(d.Revenue),
		util.FormatHours(d.TimeTaken),
		util.FormatRatio(d.ROI),
		d.Status)
}
