package main

import (
	"io"

	"github.com/spf13/cobra"

	"pmdd/cmd/pmdd/ui"
	"pmdd/internal/protocol"
)

var (
	protocolPlain bool
	protocolRaw   bool
)

// protocolCmd prints the preparation instructions
var protocolCmd = &cobra.Command{
	Use:   "protocol",
	Short: "Show how to prepare the PMDD bottles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		if protocolRaw {
			_, err := io.WriteString(w, protocol.Markdown())
			return err
		}

		style := ui.GlamourStyle(ui.ThemeFor(cfg.UI.Theme))
		if protocolPlain {
			style = ui.StyleNoTTY
		}
		out, err := ui.RenderMarkdown(protocol.Markdown(), style, ui.MaxContentWidth)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, out)
		return err
	},
}

func init() {
	protocolCmd.Flags().BoolVar(&protocolPlain, "plain", false, "Render without colors")
	protocolCmd.Flags().BoolVar(&protocolRaw, "raw", false, "Print the markdown source")
}
