package transliterate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean_SmartPunctuation(t *testing.T) {
	assert.Equal(t, `l'analisi "completa" - fatta...`, Clean("l’analisi “completa” – fatta…"))
}

func TestClean_AccentedVowels(t *testing.T) {
	assert.Equal(t, "fattibilita, criticita, perche, E cosi", Clean("fattibilità, criticità, perché, È così"))
}

func TestClean_Symbols(t *testing.T) {
	assert.Equal(t, "costo: 100 EUR (c) 30 gradi", Clean("costo: 100 € © 30°"))
	assert.Equal(t, "a -> b <= c", Clean("a → b ≤ c"))
}

func TestClean_Bullets(t *testing.T) {
	assert.Equal(t, "- primo\n> secondo", Clean("• primo\n‣ secondo"))
}

func TestClean_ResidualNonASCIIDropped(t *testing.T) {
	// Characters without a mapping disappear instead of corrupting output.
	assert.Equal(t, "ciao  mondo", Clean("ciao 日本 mondo"))
}

func TestClean_InvisibleSpaces(t *testing.T) {
	assert.Equal(t, "a b", Clean("a b"))
	assert.Equal(t, "ab", Clean("a​b"))
}

func TestClean_LineEndingsAndTrailingSpace(t *testing.T) {
	assert.Equal(t, "riga uno\nriga due", Clean("riga uno  \r\nriga due\t\n"))
}

func TestClean_Empty(t *testing.T) {
	assert.Equal(t, "", Clean(""))
}

func TestClean_PureASCIIUntouched(t *testing.T) {
	in := "plain ASCII text, nothing to do."
	assert.Equal(t, in, Clean(in))
}
