package index

import "sort"

// Posting lists are strictly ascending lists of ArtID without duplicates;
// every operation below preserves that invariant.

// And returns the sort-merge intersection of two posting lists.
func And(p1, p2 []ArtID) []ArtID {
	if len(p1) == 0 || len(p2) == 0 {
		return nil
	}
	var res []ArtID
	i1, i2 := 0, 0
	for i1 < len(p1) && i2 < len(p2) {
		switch {
		case p1[i1] == p2[i2]:
			res = append(res, p1[i1])
			i1++
			i2++
		case p1[i1] < p2[i2]:
			i1++
		default:
			i2++
		}
	}
	return res
}

// Or returns the sort-merge union of two posting lists.
func Or(p1, p2 []ArtID) []ArtID {
	var res []ArtID
	i1, i2 := 0, 0
	for i1 < len(p1) && i2 < len(p2) {
		switch {
		case p1[i1] == p2[i2]:
			res = append(res, p1[i1])
			i1++
			i2++
		case p1[i1] < p2[i2]:
			res = append(res, p1[i1])
			i1++
		default:
			res = append(res, p2[i2])
			i2++
		}
	}
	res = append(res, p1[i1:]...)
	res = append(res, p2[i2:]...)
	return res
}

// Minus returns the sort-merge difference: elements of p1 not in p2.
func Minus(p1, p2 []ArtID) []ArtID {
	var res []ArtID
	i1, i2 := 0, 0
	for i1 < len(p1) && i2 < len(p2) {
		switch {
		case p1[i1] == p2[i2]:
			i1++
			i2++
		case p1[i1] < p2[i2]:
			res = append(res, p1[i1])
			i1++
		default:
			i2++
		}
	}
	res = append(res, p1[i1:]...)
	return res
}

// reversePosting returns every known ArtID except those in p.
func (ix *Indexer) reversePosting(p []ArtID) []ArtID {
	return Minus(ix.allArtIDs(), p)
}

// allArtIDs returns the sorted universe of assigned article ids.
func (ix *Indexer) allArtIDs() []ArtID {
	all := make([]ArtID, 0, len(ix.articles))
	for artid := range ix.articles {
		all = append(all, artid)
	}
	sort.Slice(all, func(i, j int) bool { return all[i] < all[j] })
	return all
}
