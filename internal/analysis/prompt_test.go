package analysis

import (
	"strings"
	"testing"

	"github.com/ifab-lab/workshop-backend/internal/entity"
	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt_ContainsAllSectionHeadings(t *testing.T) {
	prompt := BuildPrompt(map[string]entity.Answer{})

	for _, marker := range sectionMarkers {
		assert.Contains(t, prompt, "## "+marker)
	}
}

func TestBuildPrompt_MissingAnswersPlaceholder(t *testing.T) {
	prompt := BuildPrompt(map[string]entity.Answer{})

	assert.Contains(t, prompt, "**Processo:** "+missingAnswer)
}

func TestBuildPrompt_Deterministic(t *testing.T) {
	answers := map[string]entity.Answer{
		"as_is_ruoli": {Fields: map[string]string{
			"Step":               "raccolta",
			"Ruolo Responsabile": "operatore",
			"N. Persone":         "2",
		}},
		"as_is_processo": {Text: "gestione ticket"},
	}

	first := BuildPrompt(answers)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, BuildPrompt(answers))
	}
}

func TestBuildPrompt_AnswersEmbedded(t *testing.T) {
	answers := map[string]entity.Answer{
		"as_is_processo": {Text: "gestione reclami clienti"},
		"to_be_dati_sistemi": {
			Selected: []string{"crm", "other"},
			Notes:    map[string]string{"crm": "Salesforce", "other": "archivio cartaceo"},
		},
	}

	prompt := BuildPrompt(answers)

	assert.Contains(t, prompt, "gestione reclami clienti")
	assert.Contains(t, prompt, "crm (Salesforce)")
	// The free "other" note is attached to its selection.
	assert.Contains(t, prompt, "other (archivio cartaceo)")
}

func TestRenderAnswer_FieldsSorted(t *testing.T) {
	a := entity.Answer{Fields: map[string]string{"b": "2", "a": "1", "c": "3"}}

	text := renderAnswer(a)

	assert.Equal(t, "a: 1\nb: 2\nc: 3", text)
}

func TestRenderAnswer_UnattachedNotes(t *testing.T) {
	a := entity.Answer{
		Selected: []string{"crm"},
		Notes:    map[string]string{"crm": "interno", "altro": "fogli excel"},
	}

	text := renderAnswer(a)

	assert.Equal(t, "crm (interno)\nfogli excel", text)
}

func TestRenderAnswer_EmptyIsPlaceholder(t *testing.T) {
	assert.Equal(t, missingAnswer, renderAnswer(entity.Answer{}))
	assert.Equal(t, missingAnswer, renderAnswer(entity.Answer{Text: "  "}))
}

func TestPromptAndParserRoundTrip(t *testing.T) {
	// Any reply that echoes the mandated headings parses back completely.
	var reply strings.Builder
	for _, marker := range sectionMarkers {
		reply.WriteString("## " + marker + "\ncorpo sezione\n\n")
	}

	sections := ParseResponse(reply.String())

	assert.Len(t, sections, len(sectionMarkers))
	for _, marker := range sectionMarkers {
		assert.Equal(t, "corpo sezione", sections[normalizeKey(marker)])
	}
}
