package index

import (
	"encoding/gob"
	"fmt"
	"os"

	mapset "github.com/deckarep/golang-set/v2"
)

// snapshot is the gob-encoded form of the whole indexer state. The format is
// stable across runs of this module; it makes no promise of compatibility
// with other encodings of the same data.
type snapshot struct {
	Urls        []string
	Index       map[string]*FieldIndex
	SIndex      map[string]map[string][]string
	PTIndex     map[string]map[string][]string
	Docs        map[DocID]string
	Weight      map[string]float64
	Articles    map[ArtID]ArticleRef
	Tokenizer   string
	Stemmer     string
	ShowAll     bool
	UseStemming bool

	// build-mode flags, so a reloaded index resolves queries the same way
	// the build did
	Multifield bool
	Stemming   bool
	Permuterm  bool
}

// Save serialises the whole indexer state into a single binary blob at
// filename.
func (ix *Indexer) Save(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("create index blob: %w", err)
	}
	defer f.Close()

	snap := snapshot{
		Urls:        ix.urls.ToSlice(),
		Index:       ix.index,
		SIndex:      ix.sindex,
		PTIndex:     ix.ptindex,
		Docs:        ix.docs,
		Weight:      ix.weight,
		Articles:    ix.articles,
		Tokenizer:   tokenPattern,
		Stemmer:     "spanish",
		ShowAll:     ix.showAll,
		UseStemming: ix.useStemming,
		Multifield:  ix.multifield,
		Stemming:    ix.stemming,
		Permuterm:   ix.permuterm,
	}
	err = gob.NewEncoder(f).Encode(snap)
	if err != nil {
		return fmt.Errorf("encode index blob: %w", err)
	}
	return nil
}

// Load restores an Indexer from a blob written by Save.
func Load(filename string) (*Indexer, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open index blob: %w", err)
	}
	defer f.Close()

	var snap snapshot
	err = gob.NewDecoder(f).Decode(&snap)
	if err != nil {
		return nil, fmt.Errorf("decode index blob: %w", err)
	}

	ix := &Indexer{
		multifield:  snap.Multifield,
		stemming:    snap.Stemming,
		permuterm:   snap.Permuterm,
		showAll:     snap.ShowAll,
		useStemming: snap.UseStemming,
		urls:        mapset.NewThreadUnsafeSet(snap.Urls...),
		index:       snap.Index,
		sindex:      snap.SIndex,
		ptindex:     snap.PTIndex,
		ptkeys:      map[string][]string{},
		docs:        snap.Docs,
		articles:    snap.Articles,
		weight:      snap.Weight,
		stemmer:     SpanishStemmer,
	}
	if ix.index == nil {
		ix.index = map[string]*FieldIndex{}
	}
	if ix.sindex == nil {
		ix.sindex = map[string]map[string][]string{}
	}
	if ix.ptindex == nil {
		ix.ptindex = map[string]map[string][]string{}
	}
	if ix.docs == nil {
		ix.docs = map[DocID]string{}
	}
	if ix.articles == nil {
		ix.articles = map[ArtID]ArticleRef{}
	}
	if ix.weight == nil {
		ix.weight = map[string]float64{}
	}
	ix.initFields()

	// the sorted rotation keys are derived state, rebuilt on load
	for field, rotations := range ix.ptindex {
		ix.ptkeys[field] = sortedKeys(rotations)
	}

	return ix, nil
}
