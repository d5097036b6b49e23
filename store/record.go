package store

import "strings"

// Subsection is a named block of text nested under a section.
type Subsection struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// Section is a named block of text with its subsections, in document order.
type Section struct {
	Name        string       `json:"name"`
	Text        string       `json:"text"`
	Subsections []Subsection `json:"subsections"`
}

// Article is one crawled Wikipedia article, the unit stored per JSONL line.
type Article struct {
	Url      string    `json:"url"`
	Title    string    `json:"title"`
	Summary  string    `json:"summary"`
	Sections []Section `json:"sections"`
}

// FullText returns the concatenation of the title, summary and all
// section/subsection names and texts, the way the "all" index field sees the
// article.
func (a Article) FullText() string {
	var secs strings.Builder
	for _, sec := range a.Sections {
		secs.WriteString(sec.Name + "\n" + sec.Text + "\n")
		subs := make([]string, len(sec.Subsections))
		for i, sub := range sec.Subsections {
			subs[i] = sub.Name + "\n" + sub.Text + "\n"
		}
		secs.WriteString(strings.Join(subs, "\n") + "\n\n")
	}
	return a.Title + "\n\n" + a.Summary + "\n\n" + secs.String()
}

// SectionNames returns every section and subsection name joined by newlines,
// the way the "section-name" index field sees the article.
func (a Article) SectionNames() string {
	var names []string
	for _, sec := range a.Sections {
		names = append(names, sec.Name)
		for _, sub := range sec.Subsections {
			names = append(names, sub.Name)
		}
	}
	return strings.Join(names, "\n")
}
