package report

import (
	"strings"
	"testing"
	"time"

	"github.com/ifab-lab/workshop-backend/internal/catalog"
	"github.com/ifab-lab/workshop-backend/internal/config"
	"github.com/ifab-lab/workshop-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func testFactory() *Factory {
	return NewFactory(config.ReportConfig{Title: "Report Workshop", Organization: "IFAB"})
}

func analysedSession() *entity.Session {
	return &entity.Session{
		ID: "s1",
		Answers: map[string]entity.Answer{
			"as_is_processo": {Text: "gestione ordini"},
			"to_be_visione":  {Text: "agenti per smistamento"},
			"as_is_tempo":    {Fields: map[string]string{"Step": ""}}, // empty, must be skipped
		},
		Analysis: &entity.AnalysisResult{
			Sections: map[string]string{
				"introduction":        "Analisi del processo.",
				"fattibilita_tecnica": "Livello: 4/5.",
				"score_complessivo":   "8/10.",
			},
			Score:       intPtr(8),
			Feasibility: intPtr(4),
			Model:       "model-small",
		},
	}
}

func TestBuildDocument(t *testing.T) {
	doc, err := testFactory().BuildDocument(analysedSession(), catalog.Default(), time.Now())
	require.NoError(t, err)

	assert.Equal(t, "Report Workshop", doc.Title)
	assert.Equal(t, 8, *doc.Score)

	// Introduction comes first, then the canonical section order.
	require.NotEmpty(t, doc.Sections)
	assert.Equal(t, "Introduzione", doc.Sections[0].Label)

	// Answers follow catalog order and skip empty ones.
	require.Len(t, doc.Answers, 2)
	assert.Equal(t, entity.PhaseAsIs, doc.Answers[0].Phase)
	assert.Equal(t, "gestione ordini", doc.Answers[0].Answer)
	assert.Equal(t, entity.PhaseToBe, doc.Answers[1].Phase)
}

func TestBuildDocument_NoAnalysis(t *testing.T) {
	_, err := testFactory().BuildDocument(&entity.Session{ID: "s1"}, catalog.Default(), time.Now())

	assert.ErrorIs(t, err, entity.ErrNoAnalysis)
}

func TestMarkdownFormat(t *testing.T) {
	doc, err := testFactory().BuildDocument(analysedSession(), catalog.Default(), time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC))
	require.NoError(t, err)

	data, err := NewMarkdownFormatter().Format(doc)
	require.NoError(t, err)
	out := string(data)

	assert.True(t, strings.HasPrefix(out, "# Report Workshop\n"))
	assert.Contains(t, out, "Generato il 15/03/2026 10:30")
	assert.Contains(t, out, "**Score complessivo:** 8/10")
	assert.Contains(t, out, "**Fattibilità tecnica:** 4/5")
	assert.Contains(t, out, "## Introduzione")
	assert.Contains(t, out, "## Riepilogo risposte")
	assert.Contains(t, out, "### AS-IS")
	assert.Contains(t, out, "gestione ordini")
}

func TestMarkdownFormat_MissingScoreLabelled(t *testing.T) {
	session := analysedSession()
	session.Analysis.Score = nil

	doc, err := testFactory().BuildDocument(session, catalog.Default(), time.Now())
	require.NoError(t, err)

	data, err := NewMarkdownFormatter().Format(doc)
	require.NoError(t, err)

	assert.Contains(t, string(data), "**Score complessivo:** N/D")
}

func TestRenderAnswer_SelectionsWithNotes(t *testing.T) {
	text := renderAnswer(entity.Answer{
		Selected: []string{"crm", "erp"},
		Notes:    map[string]string{"crm": "Salesforce"},
	})

	assert.Equal(t, "crm (Salesforce)\nerp", text)
}

func TestPDFAndDOCXProduceOutput(t *testing.T) {
	doc, err := testFactory().BuildDocument(analysedSession(), catalog.Default(), time.Now())
	require.NoError(t, err)

	pdf, err := NewPDFFormatter().Format(doc)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(pdf), "%PDF-"))

	docx, err := NewDOCXFormatter().Format(doc)
	require.NoError(t, err)
	// DOCX files are zip archives.
	assert.True(t, strings.HasPrefix(string(docx), "PK"))
}
