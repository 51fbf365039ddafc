package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/togglewalk/internal/config"
	"github.com/aretw0/togglewalk/internal/logging"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "togglewalk",
	Short: "togglewalk solves toggle walks on binary functional graphs",
	Long: `togglewalk reads a batch of toggle graphs and prints, for every case, the
number of steps until the walk reaches the terminal node, "Infinity N" when
the walk is trapped in a cycle, or "Unreachable".`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "YAML or JSON configuration file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("log-json", false, "Emit logs as JSON")
}

// loadConfig resolves defaults, the optional config file and the flags that
// were set explicitly, in that order.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-json") {
		cfg.LogJSON, _ = flags.GetBool("log-json")
	}
	if flags.Lookup("cached") != nil {
		if err := applySolveFlags(cmd, &cfg); err != nil {
			return cfg, err
		}
	}
	if flags.Changed("redis") {
		cfg.RedisAddr, _ = flags.GetString("redis")
	}
	return cfg, cfg.Validate()
}

func newLogger(cfg config.Config) (*slog.Logger, error) {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	return logging.NewWithWriter(os.Stderr, level, cfg.LogJSON), nil
}
