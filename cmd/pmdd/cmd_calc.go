package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pmdd/cmd/pmdd/ui"
	"pmdd/internal/dosing"
)

// Output formats for calc and catalog.
const (
	outputText     = "text"
	outputPretty   = "pretty"
	outputMarkdown = "markdown"
	outputJSON     = "json"
	outputTable    = "table"
	outputYAML     = "yaml"
)

var (
	calcInput  dosing.Input
	calcOutput string
)

// calcCmd runs the calculator once
var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Compute the doses for one set of water test results",
	Long: `Computes the PMDD doses for a tank.

Values are read like the form fields of the interactive mode: "7.5 mg/l"
reads as 7.5 and an empty or non-numeric value counts as missing. A missing
Fe value counts as 0. When --volume is not a number nothing is printed.

Example:
  pmdd calc --volume 100 --no3 5 --po4 1 --fe 0`,
	Args: cobra.NoArgs,
	RunE: runCalc,
}

func init() {
	f := calcCmd.Flags()
	f.StringVar(&calcInput.Volume, "volume", "", "Tank volume in liters")
	f.StringVar(&calcInput.NO3, "no3", "", "Nitrate (mg/l)")
	f.StringVar(&calcInput.PO4, "po4", "", "Phosphate (mg/l)")
	f.StringVar(&calcInput.Fe, "fe", "", "Iron (mg/l)")
	f.StringVar(&calcInput.KH, "kh", "", "Carbonate hardness (dKH), not used by the formulas")
	f.StringVar(&calcInput.GH, "gh", "", "General hardness (dGH), not used by the formulas")
	f.StringVarP(&calcOutput, "output", "o", outputText, "Output format: text, pretty, markdown or json")
}

func runCalc(cmd *cobra.Command, args []string) error {
	switch calcOutput {
	case outputText, outputPretty, outputMarkdown, outputJSON:
	default:
		return fmt.Errorf("unknown output format %q (valid: text, pretty, markdown, json)", calcOutput)
	}

	res, ok := dosing.Calculate(calcInput, cfg.Catalog)
	if !ok {
		logger.Debug("Volume is not a number, nothing to compute", zap.String("volume", calcInput.Volume))
		return nil
	}
	logger.Debug("Calculated doses",
		zap.String("volume", calcInput.Volume),
		zap.Int("recommendations", len(res.Recommendations)))

	return writeResult(cmd.OutOrStdout(), res, calcOutput)
}

func writeResult(w io.Writer, res dosing.Result, format string) error {
	switch format {
	case outputJSON:
		if res.Recommendations == nil {
			res.Recommendations = []dosing.DoseRecommendation{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(res)
	case outputMarkdown:
		_, err := io.WriteString(w, ui.ResultMarkdown(res))
		return err
	case outputPretty:
		out, err := ui.RenderMarkdown(ui.ResultMarkdown(res), ui.GlamourStyle(ui.ThemeFor(cfg.UI.Theme)), ui.MaxContentWidth)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, out)
		return err
	default:
		_, err := io.WriteString(w, ui.ResultText(res))
		return err
	}
}
