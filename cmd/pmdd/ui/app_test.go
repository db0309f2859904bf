package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pmdd/internal/dosing"
)

func newTestApp(t *testing.T) AppModel {
	t.Helper()
	return NewAppModel(dosing.DefaultCatalog(), LightTheme())
}

func update(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	app, ok := next.(AppModel)
	require.True(t, ok, "Update returned %T", next)
	return app, cmd
}

func typeText(t *testing.T, m AppModel, s string) AppModel {
	t.Helper()
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return m
}

func TestApp_ToggleView(t *testing.T) {
	m := newTestApp(t)
	assert.Equal(t, ViewCalculator, m.CurrentView())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlP})
	assert.Equal(t, ViewProtocol, m.CurrentView())
	assert.Contains(t, m.View(), "Bottle 1")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlP})
	assert.Equal(t, ViewCalculator, m.CurrentView())
	assert.Contains(t, m.View(), "PMDD Calculator")
}

func TestApp_Quit(t *testing.T) {
	m := newTestApp(t)
	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestApp_CalculateFromKeyboard(t *testing.T) {
	m := newTestApp(t)

	m = typeText(t, m, "100")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(t, m, "5")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(t, m, "1")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	res, ok := m.Calculator().Result()
	require.True(t, ok)
	require.Len(t, res.Recommendations, 2)
	assert.Equal(t, 20.85, res.Recommendations[0].DoseMl)
	assert.Equal(t, 0.25, res.Recommendations[1].DoseMl)

	view := m.View()
	assert.Contains(t, view, "To dose")
	assert.Contains(t, view, "Azoto NK Plus")
	assert.Contains(t, view, "20.85 ml")
}

func TestApp_KeysGoToActivePageOnly(t *testing.T) {
	m := newTestApp(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlP})
	m = typeText(t, m, "42")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlP})

	assert.Empty(t, m.Calculator().Value(FieldVolume))
}

func TestApp_WindowSize(t *testing.T) {
	m := newTestApp(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 30})

	assert.Equal(t, 56, m.layout.ContentWidth())
	assert.Equal(t, 26, m.layout.ContentHeight())
	assert.Equal(t, 56, m.protocol.viewport.Width)
}

func TestApp_FooterHelp(t *testing.T) {
	m := newTestApp(t)
	assert.Contains(t, m.View(), "calculate")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlP})
	view := m.View()
	assert.Contains(t, view, "scroll")
	assert.False(t, strings.Contains(view, "next field"))
}
