package crawler

import (
	"regexp"
	"strings"

	"github.com/nvila/wikidex/store"
)

var (
	titleRe      = regexp.MustCompile(`^##(.+)##$`)
	sectionRe    = regexp.MustCompile(`^==(.+)==$`)
	subsectionRe = regexp.MustCompile(`^--(.+)--$`)
)

// ParseArticle turns the section-annotated text of an article page into a
// structured record: a `##title##` line, summary lines up to the first
// `==section==` marker, then sections whose text runs up to their first
// `--subsection--` marker.
//
// Returns false when the text has no title/summary prefix; such pages are
// skipped by the crawl.
func ParseArticle(text, url string) (store.Article, bool) {
	lines := strings.Split(text, "\n")
	if len(lines) < 2 {
		return store.Article{}, false
	}
	title := titleRe.FindStringSubmatch(lines[0])
	if title == nil {
		return store.Article{}, false
	}

	rest := lines[1:]
	var summary []string
	for len(rest) > 0 && !sectionRe.MatchString(rest[0]) {
		summary = append(summary, rest[0])
		rest = rest[1:]
	}
	// a title directly followed by a section marker has no summary and is
	// not an article
	if len(summary) == 0 {
		return store.Article{}, false
	}

	article := store.Article{
		Url:      url,
		Title:    title[1],
		Summary:  cleanText(summary),
		Sections: []store.Section{},
	}

	for len(rest) > 0 {
		name := sectionRe.FindStringSubmatch(rest[0])
		rest = rest[1:]
		if name == nil {
			// unreachable for well-formed extracts, drop the stray line
			continue
		}

		var text []string
		for len(rest) > 0 && !sectionRe.MatchString(rest[0]) && !subsectionRe.MatchString(rest[0]) {
			text = append(text, rest[0])
			rest = rest[1:]
		}
		section := store.Section{
			Name:        name[1],
			Text:        cleanText(text),
			Subsections: []store.Subsection{},
		}

		for len(rest) > 0 && subsectionRe.MatchString(rest[0]) {
			subName := subsectionRe.FindStringSubmatch(rest[0])
			rest = rest[1:]

			var subText []string
			for len(rest) > 0 && !sectionRe.MatchString(rest[0]) && !subsectionRe.MatchString(rest[0]) {
				subText = append(subText, rest[0])
				rest = rest[1:]
			}
			section.Subsections = append(section.Subsections, store.Subsection{
				Name: subName[1],
				Text: cleanText(subText),
			})
		}

		article.Sections = append(article.Sections, section)
	}

	return article, true
}

// cleanText drops empty lines and joins the remainder.
func cleanText(lines []string) string {
	var kept []string
	for _, line := range lines {
		if len(line) > 0 {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}
