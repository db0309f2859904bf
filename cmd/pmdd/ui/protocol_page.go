package ui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"pmdd/internal/protocol"
)

// ProtocolPageModel shows the preparation protocol in a scrollable viewport.
type ProtocolPageModel struct {
	viewport viewport.Model
	styles   Styles
	width    int
	height   int
}

// NewProtocolPageModel creates a new protocol page component.
func NewProtocolPageModel(styles Styles) ProtocolPageModel {
	m := ProtocolPageModel{
		viewport: viewport.New(MaxContentWidth, 20),
		styles:   styles,
	}
	m.UpdateContent()
	return m
}

// SetSize updates the size of the viewport.
func (m *ProtocolPageModel) SetSize(w, h int) {
	resized := w != m.width
	m.width = w
	m.height = h
	m.viewport.Width = w
	m.viewport.Height = h
	if resized {
		m.UpdateContent()
	}
}

// UpdateContent renders the protocol for the current width.
func (m *ProtocolPageModel) UpdateContent() {
	width := m.viewport.Width
	out, err := RenderMarkdown(protocol.Markdown(), GlamourStyle(m.styles.Theme), width-2)
	if err != nil {
		m.viewport.SetContent(protocol.Markdown())
		return
	}
	m.viewport.SetContent(out)
}

// Update handles messages.
func (m ProtocolPageModel) Update(msg tea.Msg) (ProtocolPageModel, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the page.
func (m ProtocolPageModel) View() string {
	return m.viewport.View()
}
