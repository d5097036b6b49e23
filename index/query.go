package index

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedQuery is returned for queries with an operator in a
// non-operator position or an unknown field qualifier.
var ErrMalformedQuery = errors.New("malformed query")

// Query operators. The whole query is lowercased during tokenisation, so
// operators are accepted in any case.
const (
	opAnd = "and"
	opOr  = "or"
	opNot = "not"
)

// SolveQuery evaluates a boolean query and returns the matching article
// ids. Evaluation is left-to-right with no parenthesised grouping: the
// penultimate token of the list is the outermost operator.
//
// An empty query resolves to an empty posting list without error.
func (ix *Indexer) SolveQuery(query string) ([]ArtID, error) {
	var tokens []string
	if strings.ContainsAny(query, "*?:") {
		tokens = splitTokens(queryTokenRe, query)
	} else {
		tokens = splitTokens(tokenRe, query)
	}
	if len(tokens) == 0 {
		return nil, nil
	}
	return ix.solveTokens(tokens)
}

func (ix *Indexer) solveTokens(tokens []string) ([]ArtID, error) {
	if len(tokens) == 0 {
		return nil, fmt.Errorf("operator with no operand: %w", ErrMalformedQuery)
	}
	if len(tokens) == 1 {
		term, field, err := splitField(tokens[0])
		if err != nil {
			return nil, err
		}
		return ix.getPosting(term, field), nil
	}

	opi := len(tokens) - 2
	op := tokens[opi]
	post := tokens[opi+1:]

	switch op {
	case opNot:
		if opi == 0 {
			p, err := ix.solveTokens(post)
			if err != nil {
				return nil, err
			}
			return ix.reversePosting(p), nil
		}
		opi--
		pre := tokens[:opi]
		switch tokens[opi] {
		case opAnd:
			p1, err := ix.solveTokens(pre)
			if err != nil {
				return nil, err
			}
			p2, err := ix.solveTokens(post)
			if err != nil {
				return nil, err
			}
			return Minus(p1, p2), nil
		case opOr:
			p1, err := ix.solveTokens(pre)
			if err != nil {
				return nil, err
			}
			p2, err := ix.solveTokens(post)
			if err != nil {
				return nil, err
			}
			return Or(p1, ix.reversePosting(p2)), nil
		}
		return nil, fmt.Errorf("'%s' before 'not': %w", tokens[opi], ErrMalformedQuery)
	case opAnd:
		p1, err := ix.solveTokens(tokens[:opi])
		if err != nil {
			return nil, err
		}
		p2, err := ix.solveTokens(post)
		if err != nil {
			return nil, err
		}
		return And(p1, p2), nil
	case opOr:
		p1, err := ix.solveTokens(tokens[:opi])
		if err != nil {
			return nil, err
		}
		p2, err := ix.solveTokens(post)
		if err != nil {
			return nil, err
		}
		return Or(p1, p2), nil
	}
	return nil, fmt.Errorf("'%s' in operator position: %w", op, ErrMalformedQuery)
}

// splitField splits one query token into its term and field: the part
// before the first ':' names the field, and a token without ':' queries the
// default field.
func splitField(token string) (term, field string, err error) {
	parts := strings.SplitN(token, ":", 2)
	if len(parts) == 1 {
		return token, DefaultField, nil
	}
	field, term = parts[0], parts[1]
	if !knownField(field) {
		return "", "", fmt.Errorf("unknown field '%s': %w", field, ErrMalformedQuery)
	}
	return term, field, nil
}

// getPosting resolves one term to its posting list: wildcard terms through
// the permuterm index, then (when stemmed retrieval is on) through the stem
// index, otherwise directly.
func (ix *Indexer) getPosting(term, field string) []ArtID {
	if strings.ContainsAny(term, "*?") {
		return ix.getPermuterm(term, field)
	}
	if ix.useStemming {
		return ix.getStemming(term, field)
	}
	return ix.lookup(term, field)
}
