package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"pmdd/internal/config"
	"pmdd/internal/logging"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// Loaded in PersistentPreRunE
	cfg *config.Config

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "pmdd",
	Short: "pmdd - PMDD fertilizer dosing calculator",
	Long: `pmdd computes fertilizer doses for a planted aquarium from water test
results, using the Redfield NO3/PO4 ratio (ideal ≈ 10) and an iron target of
0.05 mg/l. It also shows how to prepare the PMDD bottles.

Run without arguments to start the interactive interface.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			path = config.DefaultPath()
		}
		if cmd == initConfigCmd {
			// init-config overwrites the file, so it must run even when it no longer loads
			cfg = config.DefaultConfig()
		} else {
			loaded, err := config.Load(path)
			if err != nil {
				return err
			}
			cfg = loaded
		}

		if err := logging.Initialize(cfg.Logging.Options()); err != nil {
			fmt.Fprintf(os.Stderr, "[logging] Warning: %v\n", err)
			_ = logging.Initialize(logging.Config{})
		}
		logging.Get(logging.CategoryConfig).Info("config resolved: path=%s fertilizers=%d", path, len(cfg.Catalog))

		// Skip the stderr logger for interactive mode (it owns the terminal)
		if cmd == cmd.Root() {
			logger = zap.NewNop()
			return nil
		}

		zc := zap.NewProductionConfig()
		zc.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if verbose {
			zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		l, err := zc.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l
		if logging.IsDebugMode() {
			logger.Debug("Debug log enabled", zap.String("file", cfg.Logging.File))
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
		_ = logging.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: launch the TUI
		return runInteractive()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: $PMDD_CONFIG or ~/.pmdd/config.yaml)")

	rootCmd.AddCommand(calcCmd)
	rootCmd.AddCommand(protocolCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(initConfigCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
