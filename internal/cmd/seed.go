package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hmartin/tasktally/internal/errors"
	"github.com/hmartin/tasktally/internal/seed"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Write a deterministic sample dataset to a JSON file",
	Long: `Write a deterministic set of sample task records to a JSON file.

The generated records are the same fallback data the dashboard uses when
its seed source is unavailable: the same count always produces the same
records. The output file can be pointed at with --source or seed.source.`,
	RunE: runSeed,
}

var (
	seedCount int
	seedOut   string
)

func init() {
	seedCmd.Flags().IntVar(&seedCount, "count", seed.DefaultCount, "number of records to generate")
	seedCmd.Flags().StringVar(&seedOut, "out", "data/tasks.json", "output file path")
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	if seedCount <= 0 {
		return errors.NewValidationError("count must be positive").
			WithField("count").WithValue(seedCount)
	}

	if err := seed.Write(seedOut, seedCount); err != nil {
		return errors.Wrapf(err, "failed to write seed file %s", seedOut)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d records to %s\n", seedCount, seedOut)
	return nil
}
