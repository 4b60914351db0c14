package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hmartin/tasktally/internal/store"
	"github.com/hmartin/tasktally/internal/task"
	"github.com/hmartin/tasktally/internal/util"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate revenue and ROI statistics",
	Long: `Display aggregate statistics for the task collection.

Shows:
- Total revenue and hours invested
- Revenue per hour and average ROI
- Completion rate and performance grade
- Top tasks by ROI`,
	RunE: runStats,
}

var (
	statsJSON bool // Output as JSON
)

func init() {
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "Output statistics as JSON")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log, err := newLogger(cfg, "stats")
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

	if statsJSON {
		return printStatsJSON(cmd, st)
	}
	return printStatsText(cmd, st)
}

func printStatsText(cmd *cobra.Command, st *store.Store) error {
	out := cmd.OutOrStdout()
	metrics := st.Metrics()

	fmt.Fprintln(out)
	fmt.Fprintln(out, "COLLECTION SUMMARY")
	fmt.Fprintln(out, strings.Repeat("─", 50))
	fmt.Fprintf(out, "Source: %s\n", st.Source())
	fmt.Fprintf(out, "Tasks: %d (%d done)\n", metrics.TaskCount, metrics.DoneCount)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "PERFORMANCE")
	fmt.Fprintln(out, strings.Repeat("─", 50))
	fmt.Fprintf(out, "Total Revenue:   %s\n", util.FormatMoney(metrics.TotalRevenue))
	fmt.Fprintf(out, "Total Hours:     %s\n", util.FormatHours(metrics.TotalTimeTaken))
	fmt.Fprintf(out, "Revenue / Hour:  %s\n", util.FormatMoney(metrics.RevenuePerHour))
	fmt.Fprintf(out, "Average ROI:     %s\n", util.FormatRatio(metrics.AverageROI))
	fmt.Fprintf(out, "Completion:      %s\n", util.FormatPct(metrics.TimeEfficiencyPct))
	fmt.Fprintf(out, "Grade:           %s\n", metrics.PerformanceGrade)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "TOP TASKS BY ROI")
	fmt.Fprintln(out, strings.Repeat("─", 50))
	derived := st.Derived()
	task.SortDerived(derived)
	shown := 0
	for _, d := range derived {
		if shown == 5 {
			break
		}
		shown++
		fmt.Fprintf(out, "%d. %s: %s ROI (%s / %s)\n",
			shown,
			util.TruncateString(d.Title, 40),
			util.FormatRatio(d.ROI),
			util.FormatMoney(d.Revenue),
			util.FormatHours(d.TimeTaken))
	}
	if shown == 0 {
		fmt.Fprintln(out, "No tasks yet. Add some with: tasktally dash")
	}

	fmt.Fprintln(out)
	return nil
}

type statsOutput struct {
	Source  string       `json:"source"`
	Metrics task.Metrics `json:"metrics"`
}

func printStatsJSON(cmd *cobra.Command, st *store.Store) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(statsOutput{
		Source:  st.Source(),
		Metrics: st.Metrics(),
	})
}
