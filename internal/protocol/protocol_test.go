package protocol

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdown(t *testing.T) {
	md := Markdown()
	require.NotEmpty(t, md)
	assert.True(t, strings.HasPrefix(md, "# "+Title+"\n"))
	assert.Contains(t, md, "250 g of potassium nitrate")
	assert.Contains(t, md, "300 g")
}

func TestSections(t *testing.T) {
	sections := Sections()

	titles := make([]string, len(sections))
	for i, s := range sections {
		titles[i] = s.Title
	}
	assert.Equal(t, []string{
		"Bottles",
		"Bottle 1: potassium nitrate (NK)",
		"Bottle 2: Epsom salt (magnesium)",
		"Bottle 3: iron",
	}, titles)

	for _, s := range sections {
		assert.NotEmpty(t, s.Paragraphs, s.Title)
		for _, p := range s.Paragraphs {
			assert.NotContains(t, p, "\n")
			assert.NotContains(t, p, "#")
		}
	}

	assert.Len(t, sections[1].Paragraphs, 2)
	assert.Contains(t, sections[1].Paragraphs[1], "200 g")
	assert.Contains(t, sections[3].Paragraphs[0], "half a liter")
}
