package crawler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nvila/wikidex/crawler"
)

func TestIsArticleURL(t *testing.T) {
	tests := []struct {
		url   string
		valid bool
	}{
		{"https://es.wikipedia.org/wiki/Miguel_de_Cervantes", true},
		{"http://es.wikipedia.org/wiki/Madrid", true},
		{"/wiki/Valencia", true},
		{"/wiki/Lenguaje_(biolog%C3%ADa)", true},
		{"https://es.wikipedia.org/wiki/Anexo:Municipios", false},
		{"https://en.wikipedia.org/wiki/Madrid", false},
		{"https://es.wikipedia.org/w/index.php?title=Madrid", false},
		{"https://example.com/wiki/Madrid", false},
		{"/wikinews/Madrid", false},
		{"", false},
	}
	for _, test := range tests {
		assert.Equal(t, test.valid, crawler.IsArticleURL(test.url), test.url)
	}
}

func TestEnsureAbsolute(t *testing.T) {
	assert.Equal(t,
		"https://es.wikipedia.org/wiki/Madrid",
		crawler.EnsureAbsolute("/wiki/Madrid"),
	)
	assert.Equal(t,
		"https://es.wikipedia.org/wiki/Madrid",
		crawler.EnsureAbsolute("https://es.wikipedia.org/wiki/Madrid"),
	)
	assert.Equal(t,
		"http://example.com/x",
		crawler.EnsureAbsolute("http://example.com/x"),
	)
}

func TestCanonical(t *testing.T) {
	// canonicalisation must keep plain article urls untouched, they are the
	// keys ordering the frontier
	assert.Equal(t,
		"https://es.wikipedia.org/wiki/Madrid",
		crawler.Canonical("https://es.wikipedia.org/wiki/Madrid"),
	)
	assert.Equal(t,
		"https://es.wikipedia.org/wiki/Madrid",
		crawler.Canonical("HTTPS://ES.wikipedia.org/wiki/Madrid"),
	)
}
