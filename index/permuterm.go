package index

import (
	"sort"
	"strings"
)

// terminator closes a token before rotation, so a rotation starting right
// after it corresponds exactly to the surface term.
const terminator = "$"

// makePermuterm builds the permuterm index for every token of every
// tokenised field: each rotation of `token$` becomes a key mapping back to
// the surface token. A sorted key slice per field backs prefix search at
// query time.
func (ix *Indexer) makePermuterm() {
	ix.ptindex = map[string]map[string][]string{}
	ix.ptkeys = map[string][]string{}
	for name, fi := range ix.index {
		if fi.Tokens == nil {
			continue
		}
		rotations := map[string][]string{}
		for _, token := range sortedKeys(fi.Tokens) {
			s := token + terminator
			for i := 0; i < len(s); i++ {
				rot := s[i:] + s[:i]
				rotations[rot] = appendAbsent(rotations[rot], token)
			}
		}
		ix.ptindex[name] = rotations
		ix.ptkeys[name] = sortedKeys(rotations)
	}
}

// getPermuterm resolves a term carrying one `*` or `?` wildcard: the
// pattern `left<w>right` is rotated into the prefix `right$left`, every
// permuterm key with that prefix contributes its surface tokens, and the
// result is the union of their posting lists. `?` additionally restricts
// surface tokens to the exact length of the pattern.
func (ix *Indexer) getPermuterm(term, field string) []ArtID {
	key := ix.fieldKey(field)
	rotations := ix.ptindex[key]
	if rotations == nil {
		return nil
	}

	cut := strings.IndexAny(term, "*?")
	exact := term[cut] == '?'
	left, right := term[:cut], term[cut+1:]
	prefix := right + terminator + left

	var result []ArtID
	seen := map[string]struct{}{}
	keys := ix.ptkeys[key]
	start := sort.SearchStrings(keys, prefix)
	for i := start; i < len(keys) && strings.HasPrefix(keys[i], prefix); i++ {
		for _, token := range rotations[keys[i]] {
			if exact && len(token) != len(term) {
				continue
			}
			if _, ok := seen[token]; ok {
				continue
			}
			seen[token] = struct{}{}
			result = Or(result, ix.lookup(token, field))
		}
	}
	return result
}
