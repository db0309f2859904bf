package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"pmdd/cmd/pmdd/ui"
)

// runInteractive starts the calculator/protocol TUI.
func runInteractive() error {
	app := ui.NewAppModel(cfg.Catalog, ui.ThemeFor(cfg.UI.Theme))
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("interactive session failed: %w", err)
	}
	return nil
}
