package crawler_test

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvila/wikidex/crawler"
	"github.com/nvila/wikidex/downloader"
	"github.com/nvila/wikidex/store"
)

// fakeClient serves canned pages by url and records every request made.
type fakeClient struct {
	pages    map[string]string
	requests []string
}

func (c *fakeClient) Do(ctx context.Context, req *downloader.Request) (*downloader.Response, error) {
	u := req.Url.String()
	c.requests = append(c.requests, u)
	body, ok := c.pages[u]
	if !ok {
		return downloader.NewResponse(req, http.StatusNotFound, req.Url, nil, nil), nil
	}
	return downloader.NewResponse(req, http.StatusOK, req.Url, nil, []byte(body)), nil
}

func article(u string) string {
	return "https://es.wikipedia.org/wiki/" + u
}

// page renders a minimal article page with the given title and links.
func page(title string, links ...string) string {
	anchors := ""
	for _, link := range links {
		anchors += fmt.Sprintf(`<a href="%s">enlace</a>`, link)
	}
	return fmt.Sprintf(`<html><body>
<h1 class="firstHeading">%s</h1>
<div id="bodyContent">
<div id="mw-content-text">
<p>Resumen de %s.</p>
%s
</div>
</div>
</body></html>`, title, title, anchors)
}

func newTestCrawler(pages map[string]string) (*crawler.Crawler, *fakeClient) {
	client := &fakeClient{pages: pages}
	return crawler.New(downloader.NewDownloader(client)), client
}

func titles(t *testing.T, path string) []string {
	t.Helper()
	articles, err := store.ReadArticles(path)
	require.NoError(t, err)
	names := make([]string, len(articles))
	for i, art := range articles {
		names[i] = art.Title
	}
	return names
}

func TestCrawlDepthLimited(t *testing.T) {
	c, client := newTestCrawler(map[string]string{
		article("Semilla"): page("Semilla", "/wiki/Uno", "/wiki/Dos", "https://example.com/x"),
		article("Uno"):     page("Uno", "/wiki/Cuatro"),
		article("Dos"):     page("Dos"),
		article("Cuatro"):  page("Cuatro"),
	})

	out := filepath.Join(t.TempDir(), "wiki.json")
	err := c.CrawlFromURL(context.Background(), article("Semilla"), 10, out, 0, 1)
	require.NoError(t, err)

	// breadth-first order, the external link dropped, depth 2 never fetched
	assert.Equal(t, []string{"Semilla", "Dos", "Uno"}, titles(t, out))
	assert.Equal(t, []string{article("Semilla"), article("Dos"), article("Uno")}, client.requests)
}

func TestCrawlBatchedShards(t *testing.T) {
	c, _ := newTestCrawler(map[string]string{
		article("Semilla"): page("Semilla", "/wiki/Uno", "/wiki/Dos", "/wiki/Tres"),
		article("Uno"):     page("Uno"),
		article("Dos"):     page("Dos"),
		article("Tres"):    page("Tres"),
	})

	dir := t.TempDir()
	out := filepath.Join(dir, "wiki.json")
	err := c.CrawlFromURL(context.Background(), article("Semilla"), 4, out, 2, 1)
	require.NoError(t, err)

	assert.Equal(t, []string{"Semilla", "Dos"}, titles(t, filepath.Join(dir, "wiki_1_2.json")))
	assert.Equal(t, []string{"Tres", "Uno"}, titles(t, filepath.Join(dir, "wiki_2_2.json")))
}

func TestCrawlDocumentLimit(t *testing.T) {
	c, _ := newTestCrawler(map[string]string{
		article("Semilla"): page("Semilla", "/wiki/Uno", "/wiki/Dos", "/wiki/Tres"),
		article("Uno"):     page("Uno"),
		article("Dos"):     page("Dos"),
		article("Tres"):    page("Tres"),
	})

	out := filepath.Join(t.TempDir(), "wiki.json")
	err := c.CrawlFromURL(context.Background(), article("Semilla"), 2, out, 0, 1)
	require.NoError(t, err)

	assert.Equal(t, []string{"Semilla", "Dos"}, titles(t, out))
}

func TestCrawlSkipsFailedPages(t *testing.T) {
	c, client := newTestCrawler(map[string]string{
		article("Semilla"): page("Semilla", "/wiki/Roto", "/wiki/Uno"),
		article("Uno"):     page("Uno"),
	})

	out := filepath.Join(t.TempDir(), "wiki.json")
	err := c.CrawlFromURL(context.Background(), article("Semilla"), 10, out, 0, 1)
	require.NoError(t, err)

	// the 404 page is visited but yields no record
	assert.Equal(t, []string{"Semilla", "Uno"}, titles(t, out))
	assert.Contains(t, client.requests, article("Roto"))
}

func TestCrawlRelativeSeed(t *testing.T) {
	c, _ := newTestCrawler(map[string]string{
		article("Semilla"): page("Semilla"),
	})

	out := filepath.Join(t.TempDir(), "wiki.json")
	err := c.CrawlFromURL(context.Background(), "/wiki/Semilla", 10, out, 0, 0)
	require.NoError(t, err)

	assert.Equal(t, []string{"Semilla"}, titles(t, out))
}

func TestCrawlBadSeed(t *testing.T) {
	c, _ := newTestCrawler(nil)

	out := filepath.Join(t.TempDir(), "wiki.json")
	err := c.CrawlFromURL(context.Background(), "https://en.wikipedia.org/wiki/Seed", 10, out, 0, 1)
	assert.ErrorIs(t, err, crawler.ErrBadSeed)
}

func TestCrawlFromFileIgnoresBadLines(t *testing.T) {
	c, _ := newTestCrawler(map[string]string{
		article("Uno"): page("Uno", "/wiki/Dos"),
		article("Dos"): page("Dos"),
	})

	dir := t.TempDir()
	seeds := filepath.Join(dir, "seeds.txt")
	contents := article("Uno") + "\n" +
		"no es una url\n" +
		"/wiki/Relativa\n" +
		"https://en.wikipedia.org/wiki/Otra\n"
	require.NoError(t, os.WriteFile(seeds, []byte(contents), 0o644))

	out := filepath.Join(dir, "wiki.json")
	err := c.CrawlFromFile(context.Background(), seeds, 10, out, 0)
	require.NoError(t, err)

	// file crawls stay at depth 0, so Dos is discovered but never fetched
	assert.Equal(t, []string{"Uno"}, titles(t, out))
}
