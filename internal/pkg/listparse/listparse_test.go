package listparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSteps_NewlineSeparated(t *testing.T) {
	text := "1. Ricezione richiesta\n2. Verifica dati\n3. Inoltro al reparto"

	steps := Steps(text)

	assert.Equal(t, []string{"Ricezione richiesta", "Verifica dati", "Inoltro al reparto"}, steps)
}

func TestSteps_SpokenInput(t *testing.T) {
	// Comma majority triggers spoken-mode splitting.
	text := "prima raccolgo la richiesta, poi verifico i dati, infine inoltro al reparto"

	steps := Steps(text)

	assert.Equal(t, []string{
		"prima raccolgo la richiesta",
		"poi verifico i dati",
		"infine inoltro al reparto",
	}, steps)
}

func TestSteps_SpokenInputSentencePeriods(t *testing.T) {
	text := "Raccolgo la richiesta. Verifico i dati, poi inoltro. Chiudo il ticket"

	steps := Steps(text)

	assert.Equal(t, []string{
		"Raccolgo la richiesta",
		"Verifico i dati",
		"poi inoltro",
		"Chiudo il ticket",
	}, steps)
}

func TestSteps_DecimalsSurviveSpokenMode(t *testing.T) {
	// "2.5" has no whitespace after the period, so it must not split.
	text := "impiego 2.5 ore per la verifica, poi 1.5 ore per il report, infine chiudo"

	steps := Steps(text)

	assert.Len(t, steps, 3)
	assert.Contains(t, steps[0], "2.5")
}

func TestSteps_EnumMarkerVariants(t *testing.T) {
	text := "1) Primo\n2- Secondo\n3: Terzo\n4 Quarto"

	steps := Steps(text)

	assert.Equal(t, []string{"Primo", "Secondo", "Terzo", "Quarto"}, steps)
}

func TestSteps_ShortFragmentsDropped(t *testing.T) {
	text := "a\nok\nverifica dati"

	steps := Steps(text)

	// Single-rune fragments fall under the 2-character minimum.
	assert.Equal(t, []string{"ok", "verifica dati"}, steps)
}

func TestSteps_TrailingPunctuationStripped(t *testing.T) {
	steps := Steps("verifica dati!\ninoltro al reparto...")

	assert.Equal(t, []string{"verifica dati", "inoltro al reparto"}, steps)
}

func TestSteps_Empty(t *testing.T) {
	assert.Nil(t, Steps(""))
	assert.Nil(t, Steps("   \n  "))
}

func TestItems_NoEnumStripping(t *testing.T) {
	text := "1. Operatore\n2. Supervisore"

	items := Items(text)

	// Items mode keeps enumeration markers intact.
	assert.Equal(t, []string{"1. Operatore", "2. Supervisore"}, items)
}

func TestItems_NoPeriodSplitting(t *testing.T) {
	// Comma majority, but sentence periods must survive in items mode.
	items := Items("CRM aziendale. interno, knowledge base, email")

	assert.Equal(t, []string{"CRM aziendale. interno", "knowledge base", "email"}, items)
}

func TestItems_SingleCharSurvives(t *testing.T) {
	items := Items("a\nb")

	assert.Equal(t, []string{"a", "b"}, items)
}
