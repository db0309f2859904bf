package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"pmdd/cmd/pmdd/ui"
	"pmdd/internal/config"
)

var (
	catalogOutput   string
	initConfigForce bool
)

// catalogCmd lists the active fertilizer catalog
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the fertilizers used by the calculator",
	Long: `Lists the active fertilizer catalog: the built-in PMDD bottles, or the
"catalog" section of the config file when present.

Use --output yaml to get a snippet to paste into the config file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		switch catalogOutput {
		case outputTable:
			fmt.Fprint(w, ui.CatalogTable(cfg.Catalog).View(ui.NewStyles(ui.ThemeFor(cfg.UI.Theme))))
			return nil
		case outputYAML:
			enc := yaml.NewEncoder(w)
			enc.SetIndent(2)
			if err := enc.Encode(map[string]interface{}{"catalog": cfg.Catalog}); err != nil {
				return fmt.Errorf("failed to encode catalog: %w", err)
			}
			return enc.Close()
		case outputJSON:
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(cfg.Catalog)
		default:
			return fmt.Errorf("unknown output format %q (valid: table, yaml, json)", catalogOutput)
		}
	},
}

// initConfigCmd writes a config file with the defaults
var initConfigCmd = &cobra.Command{
	Use:   "init-config",
	Short: "Write a config file with the default catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			path = config.DefaultPath()
		}
		if _, err := os.Stat(path); err == nil && !initConfigForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}

		if err := config.DefaultConfig().Save(path); err != nil {
			return err
		}
		logger.Info("Wrote config", zap.String("path", path))
		fmt.Fprintf(cmd.OutOrStdout(), "Config written to %s\n", path)
		return nil
	},
}

func init() {
	catalogCmd.Flags().StringVarP(&catalogOutput, "output", "o", outputTable, "Output format: table, yaml or json")
	initConfigCmd.Flags().BoolVar(&initConfigForce, "force", false, "Overwrite an existing file")
}
