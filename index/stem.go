package index

import "github.com/kljensen/snowball"

// Stemmer reduces a surface token to its canonical root.
type Stemmer func(token string) string

// SpanishStemmer stems tokens with the Spanish snowball algorithm. Tokens
// the algorithm rejects are returned unchanged.
func SpanishStemmer(token string) string {
	stemmed, err := snowball.Stem(token, "spanish", false)
	if err != nil {
		return token
	}
	return stemmed
}

// makeStemming builds the stem index for every token of every tokenised
// field: stem -> the surface tokens sharing that stem. Posting lists are not
// merged at build time, only at query time.
func (ix *Indexer) makeStemming() {
	ix.sindex = map[string]map[string][]string{}
	for name, fi := range ix.index {
		if fi.Tokens == nil {
			continue
		}
		stems := map[string][]string{}
		for _, token := range sortedKeys(fi.Tokens) {
			stem := ix.stemmer(token)
			stems[stem] = appendAbsent(stems[stem], token)
		}
		ix.sindex[name] = stems
	}
}

// getStemming resolves a term through the stem index: the union of the
// posting lists of every surface token sharing the term's stem.
func (ix *Indexer) getStemming(term, field string) []ArtID {
	stems := ix.sindex[ix.fieldKey(field)]
	if stems == nil {
		return nil
	}
	var result []ArtID
	for _, token := range stems[ix.stemmer(term)] {
		result = Or(result, ix.lookup(token, field))
	}
	return result
}

func appendAbsent(tokens []string, token string) []string {
	for _, t := range tokens {
		if t == token {
			return tokens
		}
	}
	return append(tokens, token)
}
