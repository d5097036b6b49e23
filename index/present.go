package index

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nvila/wikidex/store"
	"github.com/nvila/wikidex/telemetry"
)

// SolveAndShow evaluates a query and writes the matching articles to w as
// `# NN <title>: <url>` lines, capped at ShowMax unless show-all is set.
// Returns the number of matches.
func (ix *Indexer) SolveAndShow(query string, w io.Writer) int {
	sol := ix.solveOrEmpty(query)

	banner := strings.Repeat("=", 40)
	fmt.Fprintln(w, formatPostings(sol))
	fmt.Fprintln(w, banner)
	for i, artid := range sol {
		if !ix.showAll && i >= ShowMax {
			break
		}
		ref, ok := ix.articles[artid]
		if !ok {
			telemetry.Error("indexer", "no article ref for artid", "artid", int(artid))
			continue
		}
		article, err := store.ReadArticleAt(ix.docs[ref.Doc], ref.Line)
		if err != nil {
			telemetry.Error("indexer", "re-read article", "artid", int(artid), "err", err)
			continue
		}
		fmt.Fprintf(w, "# %02d %s: %s\n", i+1, article.Title, article.Url)
	}
	fmt.Fprintln(w, banner)
	fmt.Fprintf(w, "Number of results: %d\n", len(sol))
	return len(sol)
}

// SolveAndCount evaluates each query line and writes `query<TAB>count` to w.
// Lines that are empty or start with '#' count zero and are echoed as-is.
func (ix *Indexer) SolveAndCount(queries []string, w io.Writer) []int {
	results := make([]int, 0, len(queries))
	for _, query := range queries {
		if len(query) == 0 || strings.HasPrefix(query, "#") {
			results = append(results, 0)
			fmt.Fprintln(w, query)
			continue
		}
		n := len(ix.solveOrEmpty(query))
		results = append(results, n)
		fmt.Fprintf(w, "%s\t%d\n", query, n)
	}
	return results
}

// SolveAndTest evaluates each `query<TAB>expected` line and reports
// mismatches. Returns true iff every line matched.
func (ix *Indexer) SolveAndTest(lines []string, w io.Writer) bool {
	errors := false
	for _, line := range lines {
		if len(line) == 0 || strings.HasPrefix(line, "#") {
			continue
		}
		query, ref, ok := strings.Cut(line, "\t")
		if !ok {
			telemetry.Warn("indexer", "test line has no expected count", "line", line)
			errors = true
			continue
		}
		reference, err := strconv.Atoi(strings.TrimSpace(ref))
		if err != nil {
			telemetry.Warn("indexer", "unparseable expected count", "line", line)
			errors = true
			continue
		}
		result := len(ix.solveOrEmpty(query))
		if result == reference {
			fmt.Fprintf(w, "%s\t%d\n", query, result)
		} else {
			fmt.Fprintf(w, ">>>>%s\t%d != %d<<<<\n", query, reference, result)
			errors = true
		}
	}
	return !errors
}

// solveOrEmpty converts malformed-query errors into an empty posting list,
// so counting modes always yield a number.
func (ix *Indexer) solveOrEmpty(query string) []ArtID {
	sol, err := ix.SolveQuery(query)
	if err != nil {
		telemetry.Warn("indexer", "query not solved", "query", query, "err", err)
		return nil
	}
	return sol
}

func formatPostings(p []ArtID) string {
	parts := make([]string, len(p))
	for i, artid := range p {
		parts[i] = strconv.Itoa(int(artid))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
