package crawler_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvila/wikidex/crawler"
	"github.com/nvila/wikidex/store"
)

const articleURL = "https://es.wikipedia.org/wiki/Valencia"

func TestParseArticle(t *testing.T) {
	text := strings.Join([]string{
		"##Valencia##",
		"Valencia es una ciudad.",
		"",
		"Capital de la provincia.",
		"==Historia==",
		"Fundada por los romanos.",
		"--Edad Media--",
		"Texto medieval.",
		"--Edad Moderna--",
		"Texto moderno.",
		"==Geografía==",
		"Junto al Turia.",
	}, "\n")

	article, ok := crawler.ParseArticle(text, articleURL)
	require.True(t, ok)

	assert.Equal(t, articleURL, article.Url)
	assert.Equal(t, "Valencia", article.Title)
	assert.Equal(t, "Valencia es una ciudad.\nCapital de la provincia.", article.Summary)
	assert.Equal(t, []store.Section{
		{
			Name: "Historia",
			Text: "Fundada por los romanos.",
			Subsections: []store.Subsection{
				{Name: "Edad Media", Text: "Texto medieval."},
				{Name: "Edad Moderna", Text: "Texto moderno."},
			},
		},
		{
			Name:        "Geografía",
			Text:        "Junto al Turia.",
			Subsections: []store.Subsection{},
		},
	}, article.Sections)
}

func TestParseArticleNoSections(t *testing.T) {
	article, ok := crawler.ParseArticle("##Breve##\nSolo un resumen.", articleURL)
	require.True(t, ok)
	assert.Equal(t, "Breve", article.Title)
	assert.Equal(t, "Solo un resumen.", article.Summary)
	assert.Empty(t, article.Sections)
}

func TestParseArticleMisses(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"no title", "Texto sin marcador de título.\n==Historia==\nTexto."},
		{"title only", "##Valencia##"},
		{"no summary", "##Valencia##\n==Historia==\nTexto."},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, ok := crawler.ParseArticle(test.text, articleURL)
			assert.False(t, ok)
		})
	}
}
