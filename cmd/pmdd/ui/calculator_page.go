package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"pmdd/internal/dosing"
	"pmdd/internal/logging"
)

// Field identifies one input of the calculator form.
type Field int

const (
	FieldVolume Field = iota
	FieldNO3
	FieldPO4
	FieldKH
	FieldGH
	FieldFe
	fieldCount
)

// focusButton is the focus index of the Calculate button, after the inputs.
const focusButton = int(fieldCount)

var fieldLabels = [fieldCount]string{
	FieldVolume: "Volume (L)",
	FieldNO3:    "NO3",
	FieldPO4:    "PO4",
	FieldKH:     "KH",
	FieldGH:     "GH",
	FieldFe:     "FE",
}

var fieldPlaceholders = [fieldCount]string{
	FieldVolume: "liters",
	FieldNO3:    "mg/l",
	FieldPO4:    "mg/l",
	FieldKH:     "dKH/dGH",
	FieldGH:     "dKH/dGH",
	FieldFe:     "mg/l",
}

// CalculatorPageModel is the dosing form and its output.
type CalculatorPageModel struct {
	inputs   []textinput.Model
	focus    int
	catalog  dosing.Catalog
	keys     KeyMap
	styles   Styles
	renderer *glamour.TermRenderer
	log      *logging.Logger

	result   *dosing.Result
	rendered string
	width    int
}

// NewCalculatorPageModel creates the form with the volume field focused.
func NewCalculatorPageModel(catalog dosing.Catalog, styles Styles, keys KeyMap) CalculatorPageModel {
	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		ti := textinput.New()
		ti.Placeholder = fieldPlaceholders[i]
		ti.CharLimit = 16
		ti.Width = InputWidth
		ti.Prompt = "› "
		inputs[i] = ti
	}
	inputs[FieldVolume].Focus()

	m := CalculatorPageModel{
		inputs:  inputs,
		catalog: catalog,
		keys:    keys,
		styles:  styles,
		log:     logging.Get(logging.CategoryCalc),
		width:   MaxContentWidth,
	}
	m.renderer, _ = NewRenderer(GlamourStyle(styles.Theme), m.width-4)
	return m
}

// Init starts the cursor blinking.
func (m CalculatorPageModel) Init() tea.Cmd {
	return textinput.Blink
}

// SetWidth re-wraps the output for a new content width.
func (m *CalculatorPageModel) SetWidth(w int) {
	if w == m.width {
		return
	}
	m.width = w
	m.renderer, _ = NewRenderer(GlamourStyle(m.styles.Theme), w-4)
	m.renderResult()
}

// SetValue replaces the text of a field.
func (m *CalculatorPageModel) SetValue(f Field, v string) {
	m.inputs[f].SetValue(v)
}

// Value returns the text of a field.
func (m CalculatorPageModel) Value(f Field) string {
	return m.inputs[f].Value()
}

// Focused returns the focused field, or false when the button has focus.
func (m CalculatorPageModel) Focused() (Field, bool) {
	if m.focus == focusButton {
		return 0, false
	}
	return Field(m.focus), true
}

// Result returns the last computed result, if any.
func (m CalculatorPageModel) Result() (dosing.Result, bool) {
	if m.result == nil {
		return dosing.Result{}, false
	}
	return *m.result, true
}

// Input collects the form into a calculator input.
func (m CalculatorPageModel) Input() dosing.Input {
	return dosing.Input{
		Volume: m.Value(FieldVolume),
		NO3:    m.Value(FieldNO3),
		PO4:    m.Value(FieldPO4),
		KH:     m.Value(FieldKH),
		GH:     m.Value(FieldGH),
		Fe:     m.Value(FieldFe),
	}
}

// Calculate runs the calculator on the current form. An invalid volume leaves
// the previous output on screen.
func (m *CalculatorPageModel) Calculate() {
	in := m.Input()
	res, ok := dosing.Calculate(in, m.catalog)
	if !ok {
		m.log.Debug("calculation skipped: volume %q is not a number", in.Volume)
		return
	}
	m.log.With(
		zap.String("volume", in.Volume),
		zap.Int("recommendations", len(res.Recommendations)),
	).Info("calculated doses")
	m.result = &res
	m.renderResult()
}

func (m *CalculatorPageModel) renderResult() {
	if m.result == nil {
		m.rendered = ""
		return
	}
	md := strings.Join(m.result.Lines(), "\n\n")
	if m.renderer != nil {
		if out, err := m.renderer.Render(md); err == nil {
			m.rendered = strings.Trim(out, "\n")
			return
		}
	}
	m.rendered = m.styles.RenderLines(*m.result)
}

func (m *CalculatorPageModel) setFocus(i int) tea.Cmd {
	n := focusButton + 1
	m.focus = ((i % n) + n) % n
	var cmd tea.Cmd
	for j := range m.inputs {
		if j == m.focus {
			cmd = m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
	return cmd
}

// Update handles messages.
func (m CalculatorPageModel) Update(msg tea.Msg) (CalculatorPageModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Calculate):
			m.Calculate()
			return m, nil
		case key.Matches(msg, m.keys.NextField):
			return m, m.setFocus(m.focus + 1)
		case key.Matches(msg, m.keys.PrevField):
			return m, m.setFocus(m.focus - 1)
		}
	}

	if m.focus == focusButton {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View renders the page.
func (m CalculatorPageModel) View() string {
	s := m.styles
	var sb strings.Builder

	sb.WriteString(s.Title.Render("💧 PMDD Calculator"))
	sb.WriteString("\n")

	for i, in := range m.inputs {
		if Field(i) == FieldNO3 {
			sb.WriteString("\n")
			sb.WriteString(s.Subtitle.Render("Current values"))
			sb.WriteString("\n")
		}
		label := s.Label
		if i == m.focus {
			label = s.FocusedLabel
		}
		sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, label.Render(fieldLabels[i]), in.View()))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	button := s.Button
	if m.focus == focusButton {
		button = s.ActiveButton
	}
	sb.WriteString(button.Render("Calculate"))
	sb.WriteString("\n")

	if m.rendered != "" {
		sb.WriteString("\n")
		sb.WriteString(s.RenderDivider(m.width))
		sb.WriteString("\n\n")
		sb.WriteString(s.Note.Width(m.width).Render(m.rendered))
		sb.WriteString("\n")
	}

	if m.result != nil && len(m.result.Recommendations) > 0 {
		sb.WriteString("\n")
		sb.WriteString(s.Bold.Render("💊 To dose:"))
		sb.WriteString("\n")
		for _, r := range m.result.Recommendations {
			sb.WriteString("  • ")
			sb.WriteString(r.FertilizerName)
			sb.WriteString(": ")
			sb.WriteString(s.Bold.Render(FormatDose(r.DoseMl) + " ml"))
			sb.WriteString(" → effect on ")
			sb.WriteString(s.InlineCode.Render(string(r.Effect)))
			sb.WriteString("\n")
		}
	}

	return sb.String()
}
