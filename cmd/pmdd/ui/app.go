package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"pmdd/internal/dosing"
	"pmdd/internal/logging"
)

// View is one of the two pages of the app.
type View int

const (
	ViewCalculator View = iota
	ViewProtocol
)

func (v View) String() string {
	if v == ViewProtocol {
		return "Protocol"
	}
	return "Calculator"
}

// AppModel is the root bubbletea model: a tab bar, the active page and the
// key help.
type AppModel struct {
	view       View
	calculator CalculatorPageModel
	protocol   ProtocolPageModel
	help       help.Model
	keys       KeyMap
	styles     Styles
	layout     LayoutConfig
	log        *logging.Logger
}

// NewAppModel creates the app on the calculator page.
func NewAppModel(catalog dosing.Catalog, theme Theme) AppModel {
	styles := NewStyles(theme)
	keys := DefaultKeyMap()

	h := help.New()
	h.Styles.ShortKey = styles.Muted.Copy().Bold(true)
	h.Styles.ShortDesc = styles.Muted
	h.Styles.ShortSeparator = styles.Muted

	return AppModel{
		view:       ViewCalculator,
		calculator: NewCalculatorPageModel(catalog, styles, keys),
		protocol:   NewProtocolPageModel(styles),
		help:       h,
		keys:       keys,
		styles:     styles,
		layout:     NewLayoutConfig(MaxContentWidth+4, 24),
		log:        logging.Get(logging.CategoryUI).With(zap.String("session", uuid.NewString())),
	}
}

// CurrentView returns the active page.
func (m AppModel) CurrentView() View { return m.view }

// Calculator returns the calculator page.
func (m AppModel) Calculator() CalculatorPageModel { return m.calculator }

// Init implements tea.Model.
func (m AppModel) Init() tea.Cmd {
	m.log.Info("tui started")
	return m.calculator.Init()
}

// Update implements tea.Model.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = NewLayoutConfig(msg.Width, msg.Height)
		m.help.Width = msg.Width
		m.calculator.SetWidth(m.layout.ContentWidth())
		m.protocol.SetSize(m.layout.ContentWidth(), m.layout.ContentHeight())
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.log.Info("tui stopped")
			return m, tea.Quit
		case key.Matches(msg, m.keys.ToggleView):
			m.view = 1 - m.view
			m.log.Debug("view switched to %s", m.view)
			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.view == ViewProtocol {
		m.protocol, cmd = m.protocol.Update(msg)
	} else {
		m.calculator, cmd = m.calculator.Update(msg)
	}
	return m, cmd
}

// View implements tea.Model.
func (m AppModel) View() string {
	var page string
	var keys help.KeyMap
	if m.view == ViewProtocol {
		page = m.protocol.View()
		keys = protocolHelp{m.keys}
	} else {
		page = m.calculator.View()
		keys = calculatorHelp{m.keys}
	}

	return strings.Join([]string{
		m.renderTabs(),
		m.styles.Content.Render(page),
		m.styles.Footer.Render(m.help.View(keys)),
	}, "\n")
}

func (m AppModel) renderTabs() string {
	tabs := make([]string, 0, 2)
	for _, v := range []View{ViewCalculator, ViewProtocol} {
		icon := "🧮 "
		if v == ViewProtocol {
			icon = "⚗️ "
		}
		style := m.styles.Tab
		if v == m.view {
			style = m.styles.ActiveTab
		}
		tabs = append(tabs, style.Render(icon+v.String()))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	return m.styles.Header.Width(m.layout.ContentWidth() + 4).Render(row)
}
