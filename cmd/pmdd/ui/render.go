package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"

	"pmdd/internal/dosing"
)

// Glamour style names.
const (
	StyleLight = "light"
	StyleDark  = "dark"
	StyleNoTTY = "notty"
)

// GlamourStyle picks the markdown style matching a theme.
func GlamourStyle(t Theme) string {
	if t.IsDark {
		return StyleDark
	}
	return StyleLight
}

// NewRenderer builds a markdown renderer. Width <= 0 disables wrapping.
func NewRenderer(style string, width int) (*glamour.TermRenderer, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(max(width, 0)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	return r, nil
}

// RenderMarkdown renders md with a throwaway renderer.
func RenderMarkdown(md, style string, width int) (string, error) {
	r, err := NewRenderer(style, width)
	if err != nil {
		return "", err
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return out, nil
}

// FormatNumber prints a catalog value without trailing zeros.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatDose prints a dose with two decimals, as in the result message.
func FormatDose(ml float64) string {
	return dosing.FormatFixed(ml, 2)
}

// DoseLine is one entry of the "To dose" list.
func DoseLine(r dosing.DoseRecommendation) string {
	return fmt.Sprintf("%s: %s ml → effect on %s", r.FertilizerName, FormatDose(r.DoseMl), r.Effect)
}

// ResultMarkdown turns a calculation into a markdown document: one paragraph
// per message line, then the dose list.
func ResultMarkdown(res dosing.Result) string {
	var sb strings.Builder
	sb.WriteString(strings.Join(res.Lines(), "\n\n"))
	if len(res.Recommendations) > 0 {
		sb.WriteString("\n\n**💊 To dose:**\n\n")
		for _, r := range res.Recommendations {
			fmt.Fprintf(&sb, "- %s: **%s ml** → effect on `%s`\n", r.FertilizerName, FormatDose(r.DoseMl), r.Effect)
		}
	}
	return strings.TrimSpace(sb.String()) + "\n"
}

// ResultText is the plain text form of a calculation, without markdown
// emphasis.
func ResultText(res dosing.Result) string {
	var sb strings.Builder
	sb.WriteString(strings.ReplaceAll(res.Message, "**", ""))
	sb.WriteString("\n")
	if len(res.Recommendations) > 0 {
		sb.WriteString("\n💊 To dose:\n")
		for _, r := range res.Recommendations {
			sb.WriteString("  - ")
			sb.WriteString(DoseLine(r))
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
