package index

import (
	"regexp"
	"strings"
)

// tokenPattern splits text on runs of non-word characters, in the ASCII
// sense: accented letters split tokens apart.
const tokenPattern = `\W+`

// queryTokenPattern additionally lets wildcard, field-qualifier and hyphen
// characters through, so `title:per*` survives query tokenisation whole.
const queryTokenPattern = `[^\w*?:\-]+`

var (
	tokenRe      = regexp.MustCompile(tokenPattern)
	queryTokenRe = regexp.MustCompile(queryTokenPattern)
)

// splitTokens lowercases text and splits it on the given separator pattern,
// dropping empty tokens.
func splitTokens(re *regexp.Regexp, text string) []string {
	var tokens []string
	for _, tok := range re.Split(strings.ToLower(text), -1) {
		if tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}
