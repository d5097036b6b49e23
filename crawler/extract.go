package crawler

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// editRe matches the residue of [editar] section anchors in extracted text.
var editRe = regexp.MustCompile(`\[(editar)\]`)

// sectionFormat wraps the text of heading elements with the markers the
// article parser recognises.
var sectionFormat = map[string]string{
	"h1": "##%s##",
	"h2": "==%s==",
	"h3": "--%s--",
}

// contentSelector selects, in DOM order, the elements whose visible text
// makes up an article: the first heading plus the headings, paragraphs, list
// items and spans of the main content region.
const contentSelector = "h1.firstHeading," +
	"div#mw-content-text h2," +
	"div#mw-content-text h3," +
	"div#mw-content-text h4," +
	"div#mw-content-text p," +
	"div#mw-content-text ul," +
	"div#mw-content-text li," +
	"div#mw-content-text span"

// Extraction is the raw yield of one article page: section-annotated plain
// text and the outbound link set.
type Extraction struct {
	Text  string
	Links []string
}

// Extract pulls the section-annotated text and the outbound links out of a
// parsed Wikipedia article page.
//
// Category links, the print footer and authority-control blocks are removed
// before extraction, and any element nested inside a previously emitted
// element is skipped so text is never duplicated.
func Extract(doc *goquery.Document) Extraction {
	doc.Find("div#catlinks, div.printfooter, div.mw-authority-control").Remove()

	links := map[string]struct{}{}
	doc.Find("div#bodyContent a").Each(func(_ int, a *goquery.Selection) {
		href, ok := a.Attr("href")
		if ok {
			links[href] = struct{}{}
		}
	})
	sorted := make([]string, 0, len(links))
	for href := range links {
		sorted = append(sorted, href)
	}
	sort.Strings(sorted)

	seen := map[*html.Node]struct{}{}
	var parts []string
	doc.Find(contentSelector).Each(func(_ int, ele *goquery.Selection) {
		node := ele.Nodes[0]
		if _, ok := seen[node]; ok {
			return
		}
		markDescendants(node, seen)

		format, ok := sectionFormat[node.Data]
		if !ok {
			format = "%s"
		}
		parts = append(parts, fmt.Sprintf(format, ele.Text()))
	})

	text := editRe.ReplaceAllString(strings.Join(parts, "\n"), "")

	return Extraction{Text: text, Links: sorted}
}

func markDescendants(node *html.Node, seen map[*html.Node]struct{}) {
	seen[node] = struct{}{}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		markDescendants(child, seen)
	}
}
