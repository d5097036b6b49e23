package index_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nvila/wikidex/index"
)

func TestPostingAlgebra(t *testing.T) {
	p := []index.ArtID{1, 3, 5, 7}
	q := []index.ArtID{2, 3, 6, 7, 9}

	assert.Equal(t, []index.ArtID{3, 7}, index.And(p, q))
	assert.Equal(t, []index.ArtID{1, 2, 3, 5, 6, 7, 9}, index.Or(p, q))
	assert.Equal(t, []index.ArtID{1, 5}, index.Minus(p, q))
	assert.Equal(t, []index.ArtID{2, 6, 9}, index.Minus(q, p))
}

func TestPostingAlgebraEmpty(t *testing.T) {
	p := []index.ArtID{1, 2}

	assert.Empty(t, index.And(p, nil))
	assert.Empty(t, index.And(nil, p))
	assert.Equal(t, p, index.Or(p, nil))
	assert.Equal(t, p, index.Or(nil, p))
	assert.Equal(t, p, index.Minus(p, nil))
	assert.Empty(t, index.Minus(nil, p))
}

func TestPostingAlgebraLaws(t *testing.T) {
	p := []index.ArtID{1, 4, 6}
	q := []index.ArtID{2, 4, 8}

	// idempotence
	assert.Equal(t, p, index.And(p, p))
	assert.Equal(t, p, index.Or(p, p))
	assert.Empty(t, index.Minus(p, p))

	// commutativity
	assert.Equal(t, index.And(p, q), index.And(q, p))
	assert.Equal(t, index.Or(p, q), index.Or(q, p))
}

func TestPostingAlgebraKeepsInvariant(t *testing.T) {
	p := []index.ArtID{1, 2, 3, 10}
	q := []index.ArtID{2, 3, 4, 11}

	for _, result := range [][]index.ArtID{
		index.And(p, q), index.Or(p, q), index.Minus(p, q),
	} {
		for i := 1; i < len(result); i++ {
			assert.Less(t, result[i-1], result[i])
		}
	}
}

func TestReverseLaws(t *testing.T) {
	ix := buildIndex(t)

	// reverse(reverse(p)) = p over the known universe
	universe := solve(t, ix, "not noexiste")
	gato := solve(t, ix, "gato")
	assert.Equal(t, gato, index.Minus(universe, solve(t, ix, "not gato")))

	// minus(p, q) = and(p, reverse(q))
	assert.Equal(t,
		solve(t, ix, "perro and not azul"),
		index.And(solve(t, ix, "perro"), solve(t, ix, "not azul")),
	)
}
