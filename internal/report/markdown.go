package report

import (
	"bytes"
	"fmt"
)

const (
	markdownContentType   = "text/markdown; charset=utf-8"
	markdownFileExtension = ".md"
)

type MarkdownFormatter struct{}

func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

func (mf *MarkdownFormatter) Format(doc *Document) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "# %s\n\n", doc.Title)
	fmt.Fprintf(&buf, "*%s*\n\n", doc.Organization)
	fmt.Fprintf(&buf, "Generato il %s\n\n", doc.GeneratedAt.Format("02/01/2006 15:04"))
	fmt.Fprintf(&buf, "**Score complessivo:** %s  \n", scoreLabel(doc.Score))
	fmt.Fprintf(&buf, "**Fattibilità tecnica:** %s\n\n", feasibilityLabel(doc.Feasibility))

	for _, section := range doc.Sections {
		fmt.Fprintf(&buf, "## %s\n\n%s\n\n", section.Label, section.Body)
	}

	if len(doc.Answers) > 0 {
		buf.WriteString("## Riepilogo risposte\n\n")
		var lastPhase string
		for _, line := range doc.Answers {
			if string(line.Phase) != lastPhase {
				fmt.Fprintf(&buf, "### %s\n\n", line.Phase)
				lastPhase = string(line.Phase)
			}
			fmt.Fprintf(&buf, "**%s**\n\n%s\n\n", line.Question, line.Answer)
		}
	}

	return buf.Bytes(), nil
}

func (mf *MarkdownFormatter) ContentType() string {
	return markdownContentType
}

func (mf *MarkdownFormatter) FileExtension() string {
	return markdownFileExtension
}
