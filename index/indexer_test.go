package index_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nvila/wikidex/index"
	"github.com/nvila/wikidex/store"
)

// toy corpus: three articles with artids 1, 2 and 3 in file order.
var corpus = []store.Article{
	{
		Url:      "https://es.wikipedia.org/wiki/Perro_gato",
		Title:    "perro gato",
		Summary:  "mesa",
		Sections: []store.Section{},
	},
	{
		Url:      "https://es.wikipedia.org/wiki/Gato_azul",
		Title:    "gato azul",
		Summary:  "cielo",
		Sections: []store.Section{},
	},
	{
		Url:      "https://es.wikipedia.org/wiki/Perro_azul",
		Title:    "perro azul",
		Summary:  "silla",
		Sections: []store.Section{},
	},
}

func writeShard(t *testing.T, articles []store.Article) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "articulos.json")
	require.NoError(t, store.WriteArticles(path, articles))
	return path
}

func buildIndex(t *testing.T, options ...index.Option) *index.Indexer {
	t.Helper()
	ix := index.New(options...)
	require.NoError(t, ix.IndexDir(writeShard(t, corpus)))
	return ix
}

func solve(t *testing.T, ix *index.Indexer, query string) []index.ArtID {
	t.Helper()
	sol, err := ix.SolveQuery(query)
	require.NoError(t, err)
	return sol
}
