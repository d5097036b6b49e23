package index

// DocID identifies one indexed JSONL file, 1-based in file-encounter order.
type DocID int

// ArtID identifies one indexed article, 1-based in article-encounter order
// across all files.
type ArtID int

// ArticleRef locates an article inside its shard so the full record can be
// re-read from disk on demand.
type ArticleRef struct {
	Doc  DocID
	Line int
}

// Field names of a crawled record that can be queried.
const (
	FieldAll         = "all"
	FieldTitle       = "title"
	FieldSummary     = "summary"
	FieldSectionName = "section-name"
	FieldURL         = "url"
)

// DefaultField is the field a bare query term is resolved against.
const DefaultField = FieldAll

// fields lists every queryable field in order; the flag says whether its
// contents are tokenised when indexed in multifield mode.
var fields = []struct {
	Name     string
	Tokenize bool
}{
	{FieldAll, true},
	{FieldTitle, true},
	{FieldSummary, true},
	{FieldSectionName, true},
	{FieldURL, false},
}

func knownField(name string) bool {
	for _, f := range fields {
		if f.Name == name {
			return true
		}
	}
	return false
}

// FieldIndex holds the inverted index of one record field. Exactly one of
// the two slots is populated: Tokens for tokenised fields, Raw for fields
// stored verbatim (only "url").
type FieldIndex struct {
	Tokens map[string][]ArtID
	Raw    []string
}

func newTokenIndex() *FieldIndex {
	return &FieldIndex{Tokens: map[string][]ArtID{}}
}

func newRawIndex() *FieldIndex {
	return &FieldIndex{}
}

// add records that the article contains the token. Because ArtIDs are
// assigned in strictly increasing order, appending once per article keeps
// every posting list ascending and duplicate-free.
func (f *FieldIndex) add(token string, artid ArtID) {
	postings := f.Tokens[token]
	if len(postings) > 0 && postings[len(postings)-1] == artid {
		return
	}
	f.Tokens[token] = append(postings, artid)
}
