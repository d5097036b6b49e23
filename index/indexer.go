package index

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/nvila/wikidex/store"
	"github.com/nvila/wikidex/telemetry"

	mapset "github.com/deckarep/golang-set/v2"
)

// ShowMax is the maximum number of results printed when show-all is off.
const ShowMax = 10

// Indexer is the in-memory inverted index over crawled article records,
// with an explicit lifecycle: New, then IndexDir, then any number of
// queries, Save or Load.
//
// All state is owned by the value; mutation is confined to the build phase
// and queries only read.
type Indexer struct {
	multifield bool
	stemming   bool
	permuterm  bool

	showAll     bool
	useStemming bool

	urls     mapset.Set[string]
	index    map[string]*FieldIndex
	sindex   map[string]map[string][]string
	ptindex  map[string]map[string][]string
	ptkeys   map[string][]string
	docs     map[DocID]string
	articles map[ArtID]ArticleRef
	weight   map[string]float64

	stemmer Stemmer
}

type indexerConfig struct {
	multifield bool
	stemming   bool
	permuterm  bool
	stemmer    Stemmer
}

type Option func(cfg *indexerConfig)

// WithMultifield builds one inverted index per record field instead of a
// single index over the "all" field.
func WithMultifield() Option {
	return func(cfg *indexerConfig) {
		cfg.multifield = true
	}
}

// WithStemming builds the stem index after the main index, enabling
// stemmed retrieval.
func WithStemming() Option {
	return func(cfg *indexerConfig) {
		cfg.stemming = true
	}
}

// WithPermuterm builds the permuterm index after the main index, enabling
// wildcard retrieval.
func WithPermuterm() Option {
	return func(cfg *indexerConfig) {
		cfg.permuterm = true
	}
}

// WithStemmer overrides the Spanish snowball stemmer.
func WithStemmer(stemmer Stemmer) Option {
	return func(cfg *indexerConfig) {
		cfg.stemmer = stemmer
	}
}

// New creates an empty Indexer.
func New(options ...Option) *Indexer {
	cfg := indexerConfig{
		stemmer: SpanishStemmer,
	}
	for _, opt := range options {
		opt(&cfg)
	}

	ix := &Indexer{
		multifield: cfg.multifield,
		stemming:   cfg.stemming,
		permuterm:  cfg.permuterm,
		urls:       mapset.NewThreadUnsafeSet[string](),
		index:      map[string]*FieldIndex{},
		sindex:     map[string]map[string][]string{},
		ptindex:    map[string]map[string][]string{},
		ptkeys:     map[string][]string{},
		docs:       map[DocID]string{},
		articles:   map[ArtID]ArticleRef{},
		weight:     map[string]float64{},
		stemmer:    cfg.stemmer,
	}
	ix.initFields()
	return ix
}

// SetShowAll toggles whether SolveAndShow prints every result instead of at
// most ShowMax.
func (ix *Indexer) SetShowAll(v bool) {
	ix.showAll = v
}

// SetStemming toggles whether queries resolve terms through the stem index
// by default.
func (ix *Indexer) SetStemming(v bool) {
	ix.useStemming = v
}

func (ix *Indexer) initFields() {
	if ix.multifield {
		for _, f := range fields {
			if ix.index[f.Name] != nil {
				continue
			}
			if f.Tokenize {
				ix.index[f.Name] = newTokenIndex()
			} else {
				ix.index[f.Name] = newRawIndex()
			}
		}
		return
	}
	if ix.index[FieldAll] == nil {
		ix.index[FieldAll] = newTokenIndex()
	}
}

// Tokenize lowercases text and splits it on non-word character runs.
func (ix *Indexer) Tokenize(text string) []string {
	return splitTokens(tokenRe, text)
}

// IndexDir indexes the JSONL file at root, or every *.json file under the
// directory root, walking recursively with sorted filenames. The auxiliary
// stem and permuterm indices are built afterwards when enabled.
func (ix *Indexer) IndexDir(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("stat '%s': %w", root, err)
	}

	if info.IsDir() {
		err = filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
				return nil
			}
			return ix.indexFile(path)
		})
	} else {
		err = ix.indexFile(root)
	}
	if err != nil {
		return err
	}

	if ix.stemming {
		ix.makeStemming()
	}
	if ix.permuterm {
		ix.makePermuterm()
	}

	telemetry.Info("indexer", "index built",
		"files", len(ix.docs),
		"articles", len(ix.articles),
		"multifield", ix.multifield,
		"stemming", ix.stemming,
		"permuterm", ix.permuterm,
	)
	return nil
}

// indexFile indexes every article record of one JSONL shard. Records whose
// url has been indexed before are skipped entirely.
func (ix *Indexer) indexFile(filename string) error {
	articles, err := store.ReadArticles(filename)
	if err != nil {
		return fmt.Errorf("index file: %w", err)
	}

	docid := DocID(len(ix.docs) + 1)
	ix.docs[docid] = filename

	for line, article := range articles {
		if article.Url == "" {
			telemetry.Warn("indexer", "skipping malformed record", "file", filename, "line", line)
			continue
		}
		if ix.urls.Contains(article.Url) {
			continue
		}

		artid := ArtID(len(ix.articles) + 1)
		ix.articles[artid] = ArticleRef{Doc: docid, Line: line}

		if ix.multifield {
			for _, f := range fields {
				fi := ix.index[f.Name]
				if !f.Tokenize {
					fi.Raw = append(fi.Raw, article.Url)
					continue
				}
				for _, token := range ix.Tokenize(ix.fieldText(article, f.Name)) {
					fi.add(token, artid)
				}
			}
		} else {
			fi := ix.index[FieldAll]
			for _, token := range ix.Tokenize(article.FullText()) {
				fi.add(token, artid)
			}
		}

		ix.urls.Add(article.Url)
	}
	return nil
}

// fieldText extracts the text a tokenised field indexes from an article.
func (ix *Indexer) fieldText(article store.Article, field string) string {
	switch field {
	case FieldAll:
		return article.FullText()
	case FieldTitle:
		return article.Title
	case FieldSummary:
		return article.Summary
	case FieldSectionName:
		return article.SectionNames()
	}
	return ""
}

// fieldKey maps a queried field to the index actually holding its postings:
// single-field indices resolve every field to "all".
func (ix *Indexer) fieldKey(field string) string {
	if !ix.multifield {
		return FieldAll
	}
	return field
}

// lookup returns the posting list of a token in the given field, or nil.
func (ix *Indexer) lookup(token, field string) []ArtID {
	fi := ix.index[ix.fieldKey(field)]
	if fi == nil || fi.Tokens == nil {
		return nil
	}
	return fi.Tokens[token]
}

// Stats writes index statistics: file, article, token, stem and permuterm
// counts, per field in multifield mode.
func (ix *Indexer) Stats(w io.Writer) {
	banner := strings.Repeat("=", 40)
	rule := strings.Repeat("-", 40)

	fmt.Fprintln(w, banner)
	fmt.Fprintf(w, "Number of indexed files: %d\n", len(ix.docs))
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Number of indexed articles: %d\n", len(ix.articles))
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "TOKENS")
	if ix.multifield {
		for _, f := range fields {
			fmt.Fprintf(w, "# of tokens in '%s': %d\n", f.Name, ix.tokenCount(f.Name))
		}
	} else {
		fmt.Fprintf(w, "# of tokens: %d\n", ix.tokenCount(FieldAll))
	}
	if ix.stemming {
		fmt.Fprintln(w, rule)
		fmt.Fprintln(w, "STEMS")
		if ix.multifield {
			for _, f := range fields {
				fmt.Fprintf(w, "# of stems in '%s': %d\n", f.Name, len(ix.sindex[f.Name]))
			}
		} else {
			fmt.Fprintf(w, "# of stems: %d\n", len(ix.sindex[FieldAll]))
		}
	}
	if ix.permuterm {
		fmt.Fprintln(w, rule)
		fmt.Fprintln(w, "PERMUTERMS")
		if ix.multifield {
			for _, f := range fields {
				fmt.Fprintf(w, "# of permuterms in '%s': %d\n", f.Name, len(ix.ptindex[f.Name]))
			}
		} else {
			fmt.Fprintf(w, "# of permuterms: %d\n", len(ix.ptindex[FieldAll]))
		}
	}
	fmt.Fprintln(w, banner)
}

func (ix *Indexer) tokenCount(field string) int {
	fi := ix.index[field]
	if fi == nil {
		return 0
	}
	if fi.Tokens == nil {
		return len(fi.Raw)
	}
	return len(fi.Tokens)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
