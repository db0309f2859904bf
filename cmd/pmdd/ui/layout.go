// Package ui layout constants for consistent spacing and dimensions
package ui

// Layout constants
const (
	HeaderHeight = 2
	FooterHeight = 2

	LabelWidth = 14
	InputWidth = 24

	// Content is capped so the form stays readable on wide terminals.
	MaxContentWidth = 80
	MinContentWidth = 40
)

// LayoutConfig provides computed layout dimensions based on terminal size
type LayoutConfig struct {
	TerminalWidth  int
	TerminalHeight int
}

// NewLayoutConfig creates a layout configuration for the given terminal size
func NewLayoutConfig(width, height int) LayoutConfig {
	return LayoutConfig{TerminalWidth: width, TerminalHeight: height}
}

// ContentWidth returns the usable width between the page paddings.
func (l LayoutConfig) ContentWidth() int {
	w := l.TerminalWidth - 4
	if w > MaxContentWidth {
		w = MaxContentWidth
	}
	if w < MinContentWidth {
		w = MinContentWidth
	}
	return w
}

// ContentHeight returns the height left for a page below the tab bar and
// above the key help.
func (l LayoutConfig) ContentHeight() int {
	h := l.TerminalHeight - HeaderHeight - FooterHeight
	if h < 1 {
		h = 1
	}
	return h
}
