// Package report renders a completed workshop session into downloadable
// documents. All formats are built from the same Document assembly so the
// content never depends on the output format.
package report

import (
	"fmt"
	"time"

	"github.com/ifab-lab/workshop-backend/internal/analysis"
	"github.com/ifab-lab/workshop-backend/internal/catalog"
	"github.com/ifab-lab/workshop-backend/internal/config"
	"github.com/ifab-lab/workshop-backend/internal/entity"
)

// Document is the format-independent report content.
type Document struct {
	Title        string
	Organization string
	GeneratedAt  time.Time
	Score        *int
	Feasibility  *int
	Model        string
	Sections     []analysis.Section
	Answers      []AnswerLine
}

// AnswerLine is one question with its recorded answer, in catalog order.
type AnswerLine struct {
	Phase    entity.Phase
	Question string
	Answer   string
}

type Formatter interface {
	Format(doc *Document) ([]byte, error)
	ContentType() string
	FileExtension() string
}

type Factory struct {
	cfg config.ReportConfig
}

func NewFactory(cfg config.ReportConfig) *Factory {
	return &Factory{cfg: cfg}
}

func (f *Factory) Create(format entity.ReportFormat) (Formatter, error) {
	switch format {
	case entity.FormatMarkdown:
		return NewMarkdownFormatter(), nil
	case entity.FormatDOCX:
		return NewDOCXFormatter(), nil
	case entity.FormatPDF:
		return NewPDFFormatter(), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// BuildDocument assembles the report content from a session with a generated
// analysis.
func (f *Factory) BuildDocument(session *entity.Session, cat *catalog.Catalog, now time.Time) (*Document, error) {
	if session.Analysis == nil {
		return nil, entity.ErrNoAnalysis
	}

	doc := &Document{
		Title:        f.cfg.Title,
		Organization: f.cfg.Organization,
		GeneratedAt:  now,
		Score:        session.Analysis.Score,
		Feasibility:  session.Analysis.Feasibility,
		Model:        session.Analysis.Model,
		Sections:     analysis.OrderedSections(session.Analysis.Sections),
	}

	for _, phase := range cat.Phases() {
		for _, q := range cat.Questions(phase) {
			a, ok := session.Answers[q.ID]
			if !ok || a.IsEmpty() {
				continue
			}
			doc.Answers = append(doc.Answers, AnswerLine{
				Phase:    phase,
				Question: q.Text,
				Answer:   renderAnswer(a),
			})
		}
	}

	return doc, nil
}

func renderAnswer(a entity.Answer) string {
	var parts []string

	if a.Text != "" {
		parts = append(parts, a.Text)
	}
	for _, key := range sortedKeys(a.Fields) {
		if a.Fields[key] != "" {
			parts = append(parts, fmt.Sprintf("%s: %s", key, a.Fields[key]))
		}
	}
	for _, sel := range a.Selected {
		line := sel
		if note, ok := a.Notes[sel]; ok && note != "" {
			line = fmt.Sprintf("%s (%s)", sel, note)
		}
		parts = append(parts, line)
	}

	return joinLines(parts)
}
