package index_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nvila/wikidex/index"
)

func TestTokenize(t *testing.T) {
	ix := index.New()

	tests := []struct {
		text string
		want []string
	}{
		{"Perro gato", []string{"perro", "gato"}},
		{"Perro, gato; azul.", []string{"perro", "gato", "azul"}},
		{"linea_con_guiones bajos", []string{"linea_con_guiones", "bajos"}},
		{"  espacios   multiples  ", []string{"espacios", "multiples"}},
		{"numero 42 y B2", []string{"numero", "42", "y", "b2"}},
		// tokenisation is ASCII, accented letters split tokens apart
		{"canción", []string{"canci", "n"}},
		{"", nil},
		{"...", nil},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, ix.Tokenize(test.text), test.text)
	}
}
