// Package protocol holds the PMDD preparation instructions shown next to the
// calculator.
package protocol

import (
	_ "embed"
	"strings"
)

//go:embed protocol.md
var document string

// Title is the heading of the protocol document.
const Title = "🔬 PMDD Protocol"

// Section is one "##" block of the protocol.
type Section struct {
	Title      string
	Paragraphs []string
}

// Markdown returns the full protocol as markdown.
func Markdown() string {
	return document
}

// Sections splits the document on its second level headings. Text before the
// first such heading (the title) is not part of any section.
func Sections() []Section {
	var (
		sections []Section
		current  *Section
		para     []string
	)
	flush := func() {
		if current != nil && len(para) > 0 {
			current.Paragraphs = append(current.Paragraphs, strings.Join(para, " "))
		}
		para = nil
	}

	for _, line := range strings.Split(document, "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		switch {
		case strings.HasPrefix(line, "## "):
			flush()
			sections = append(sections, Section{Title: strings.TrimPrefix(line, "## ")})
			current = &sections[len(sections)-1]
		case line == "":
			flush()
		case strings.HasPrefix(line, "# "):
			// document title
		default:
			para = append(para, line)
		}
	}
	flush()
	return sections
}
