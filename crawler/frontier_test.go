package crawler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrontierOrdering(t *testing.T) {
	f := newFrontier()
	f.push(1, "https://es.wikipedia.org/wiki/A", "https://es.wikipedia.org/wiki/Z")
	f.push(0, "", "https://es.wikipedia.org/wiki/Semilla")
	f.push(1, "https://es.wikipedia.org/wiki/B", "https://es.wikipedia.org/wiki/M")
	f.push(1, "https://es.wikipedia.org/wiki/A", "https://es.wikipedia.org/wiki/C")
	f.push(2, "https://es.wikipedia.org/wiki/A", "https://es.wikipedia.org/wiki/A")

	var urls []string
	for f.len() > 0 {
		urls = append(urls, f.pop().url)
	}

	// breadth first, ties broken by parent then url
	assert.Equal(t, []string{
		"https://es.wikipedia.org/wiki/Semilla",
		"https://es.wikipedia.org/wiki/C",
		"https://es.wikipedia.org/wiki/Z",
		"https://es.wikipedia.org/wiki/M",
		"https://es.wikipedia.org/wiki/A",
	}, urls)
}
