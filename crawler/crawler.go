package crawler

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/nvila/wikidex/downloader"
	"github.com/nvila/wikidex/store"
	"github.com/nvila/wikidex/telemetry"

	mapset "github.com/deckarep/golang-set/v2"
)

// ErrBadSeed is returned when a crawl entry point is not a valid
// Spanish-Wikipedia article url.
var ErrBadSeed = errors.New("seed is not a Spanish-Wikipedia article url")

// Crawler walks Spanish-Wikipedia article pages breadth-first, turning each
// page into a structured record and appending batches of records to JSONL
// shards.
//
// The walk is strictly sequential: one synchronous download at a time, so
// the order of emitted records is a deterministic function of the seeds and
// the (depth, parent, url) frontier ordering.
type Crawler struct {
	dl downloader.Downloader
}

// New creates a Crawler over the given downloader.
func New(dl downloader.Downloader) *Crawler {
	return &Crawler{dl: dl}
}

// Crawl captures Wikipedia articles starting from initialUrls until the
// frontier is exhausted or documentLimit records have been captured.
//
//   - baseFilename must end in ".json"; when batchSize > 0, every batchSize
//     captured records are flushed to a numbered shard, otherwise a single
//     file is written at the end.
//   - maxDepthLevel bounds how far from the seeds the walk may go; 0 crawls
//     only the seeds themselves.
//
// Per-url download and parse failures are logged and skipped; only shard
// write failures abort the crawl.
func (c *Crawler) Crawl(ctx context.Context, initialUrls []string, documentLimit int, baseFilename string, batchSize, maxDepthLevel int) error {
	if !strings.HasSuffix(baseFilename, ".json") {
		return fmt.Errorf("base filename '%s' does not end in .json", baseFilename)
	}

	totalFiles := 0
	if batchSize > 0 {
		// assume the document limit will be reached, shard names keep this
		// denominator even when the crawl ends early
		totalFiles = (documentLimit + batchSize - 1) / batchSize
	}

	visited := mapset.NewThreadUnsafeSet[string]()
	front := newFrontier()
	for _, u := range initialUrls {
		front.push(0, "", u)
	}

	var documents []store.Article
	captured := 0
	filesWritten := 0

	flush := func() error {
		filesWritten++
		path := store.ShardPath(baseFilename, filesWritten, totalFiles)
		err := store.WriteArticles(path, documents)
		if err != nil {
			return fmt.Errorf("flush shard: %w", err)
		}
		telemetry.Info("crawler", "shard written", "path", path, "records", len(documents))
		documents = nil
		return nil
	}

	for front.len() > 0 && captured < documentLimit {
		if err := ctx.Err(); err != nil {
			return err
		}

		next := front.pop()
		if visited.Contains(next.url) || next.depth > maxDepthLevel {
			continue
		}
		visited.Add(next.url)

		extract, ok := c.fetch(ctx, next)
		if !ok {
			continue
		}

		for _, link := range extract.Links {
			abs := Canonical(EnsureAbsolute(link))
			if IsArticleURL(abs) && !visited.Contains(abs) {
				front.push(next.depth+1, next.url, abs)
			}
		}

		article, ok := ParseArticle(extract.Text, next.url)
		if !ok {
			telemetry.Debug("crawler", "page has no title/summary, skipping", "url", next.url)
			continue
		}
		documents = append(documents, article)
		captured++

		if batchSize > 0 && captured%batchSize == 0 {
			err := flush()
			if err != nil {
				return err
			}
		}
	}

	if len(documents) > 0 {
		if batchSize == 0 {
			// unbatched runs write everything to the bare base filename
			err := store.WriteArticles(baseFilename, documents)
			if err != nil {
				return fmt.Errorf("flush shard: %w", err)
			}
			telemetry.Info("crawler", "shard written", "path", baseFilename, "records", len(documents))
		} else {
			err := flush()
			if err != nil {
				return err
			}
		}
	}

	telemetry.Info("crawler", "crawl finished", "captured", captured, "visited", visited.Cardinality())
	return nil
}

// CrawlFromURL captures articles reachable from a single seed url. A seed
// that is neither a valid article url nor /wiki/-relative is ErrBadSeed.
func (c *Crawler) CrawlFromURL(ctx context.Context, initialUrl string, documentLimit int, baseFilename string, batchSize, maxDepthLevel int) error {
	if !IsArticleURL(initialUrl) && !strings.HasPrefix(initialUrl, "/wiki/") {
		return fmt.Errorf("'%s': %w", initialUrl, ErrBadSeed)
	}
	seed := Canonical(EnsureAbsolute(initialUrl))
	return c.Crawl(ctx, []string{seed}, documentLimit, baseFilename, batchSize, maxDepthLevel)
}

// CrawlFromFile captures the articles named in a seed file, one url per
// line. Lines that are not absolute article urls are ignored. The crawl does
// not leave the seed set (depth 0).
func (c *Crawler) CrawlFromFile(ctx context.Context, urlsFilename string, documentLimit int, baseFilename string, batchSize int) error {
	f, err := os.Open(urlsFilename)
	if err != nil {
		return fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()

	seen := mapset.NewThreadUnsafeSet[string]()
	var seeds []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !IsArticleURL(line) || !strings.HasPrefix(line, "http") {
			if line != "" {
				telemetry.Warn("crawler", "ignoring seed line", "line", line)
			}
			continue
		}
		seed := Canonical(line)
		if seen.Contains(seed) {
			continue
		}
		seen.Add(seed)
		seeds = append(seeds, seed)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}

	return c.Crawl(ctx, seeds, documentLimit, baseFilename, batchSize, 0)
}

// fetch downloads and extracts one article page. Any failure (transport
// error, dropped request, non-200 status, unparseable html) is logged and
// reported as a miss; the caller has already marked the url visited.
func (c *Crawler) fetch(ctx context.Context, next candidate) (Extraction, bool) {
	target, err := url.Parse(next.url)
	if err != nil {
		telemetry.Error("crawler", "unparseable url", "url", next.url, "error", err)
		return Extraction{}, false
	}
	req := downloader.GETRequest(target)
	meta := downloader.RequestMetadata{}
	if next.parent != "" {
		referer, err := url.Parse(next.parent)
		if err == nil {
			meta.Referer = referer
		}
	}

	telemetry.Info("crawler", "download", "url", next.url, "depth", next.depth)

	res, err := c.dl.Download(ctx, req, meta)
	if err != nil {
		telemetry.Error("crawler", "request download failed", "url", next.url, "referer", next.parent, "error", err)
		return Extraction{}, false
	}
	if res.Status() != http.StatusOK {
		telemetry.Warn("crawler", "non-200 response", "url", next.url, "status", res.Status())
		return Extraction{}, false
	}

	doc, err := res.Document()
	if err != nil {
		telemetry.Error("crawler", "parse response html failed", "url", next.url, "error", err)
		return Extraction{}, false
	}

	return Extract(doc), true
}
