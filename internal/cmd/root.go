// Package cmd wires the CLI commands.
package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hmartin/tasktally/internal/config"
	"github.com/hmartin/tasktally/internal/logging"
	"github.com/hmartin/tasktally/internal/store"
	"github.com/hmartin/tasktally/internal/task"
)

var rootCmd = &cobra.Command{
	Use:   "tasktally",
	Short: "Task productivity dashboard with revenue and ROI tracking",
	Long: `Tasktally tracks tasks with the revenue they produced and the hours
they took, derives per-task ROI and aggregate performance metrics, and
presents them in an interactive terminal dashboard.`,
	RunE: runDash,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/tasktally/config.yaml)")
	rootCmd.PersistentFlags().String("source", "", "seed source: a JSON file path or http(s) URL")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("seed.source", rootCmd.PersistentFlags().Lookup("source"))
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath("$HOME/.config/tasktally")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("TASKTALLY")
	// Replace dots with underscores for nested keys in env vars
	// e.g., TASKTALLY_SEED_SOURCE for seed.source
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}

// loadConfig resolves and validates the effective configuration.
func loadConfig() (*config.Config, error) {
	cfg := config.Get()
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, config.ValidationErrors(errs)
	}
	return cfg, nil
}

// newLogger builds the configured logger, or a nil logger when logging is
// disabled. The caller owns Close.
func newLogger(cfg *config.Config, command string) (*logging.Logger, error) {
	if !cfg.Logging.Enabled {
		return nil, nil
	}
	log, err := logging.NewLogger(cfg.Logging.ResolveLogDir(), cfg.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return log.WithCommand(command), nil
}

// newStore builds an empty store on the configured sort key. The dashboard
// seeds it through its own lifecycle; one-shot commands use newSeededStore.
func newStore(cfg *config.Config, log *logging.Logger) *store.Store {
	opts := []store.Option{
		store.WithSortKey(task.SortKey(cfg.TUI.DefaultSort)),
	}
	if log != nil {
		opts = append(opts, store.WithLogger(log.WithComponent("store")))
	}
	return store.New(opts...)
}

// newSeededStore builds a store and runs the one-shot seed pass against the
// configured source.
func newSeededStore(ctx context.Context, cfg *config.Config, log *logging.Logger) (*store.Store, error) {
	st := newStore(cfg, log)

	seedCtx, cancel := context.WithTimeout(ctx, cfg.Seed.FetchTimeout())
	defer cancel()
	if err := st.SeedN(seedCtx, cfg.Seed.Source, cfg.Seed.FallbackCount); err != nil {
		return nil, err
	}
	return st, nil
}
