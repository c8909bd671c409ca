package report

import (
	"bytes"
	"fmt"

	"github.com/unidoc/unioffice/document"
)

const (
	docxContentType   = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	docxFileExtension = ".docx"
)

type DOCXFormatter struct{}

func NewDOCXFormatter() *DOCXFormatter {
	return &DOCXFormatter{}
}

func (df *DOCXFormatter) Format(doc *Document) ([]byte, error) {
	d := document.New()
	defer d.Close()

	titlePar := d.AddParagraph()
	titlePar.SetStyle("Heading1")
	titlePar.AddRun().AddText(doc.Title)

	subPar := d.AddParagraph()
	subRun := subPar.AddRun()
	subRun.Properties().SetItalic(true)
	subRun.AddText(doc.Organization)

	metaPar := d.AddParagraph()
	metaPar.AddRun().AddText(fmt.Sprintf("Generato il %s", doc.GeneratedAt.Format("02/01/2006 15:04")))

	scorePar := d.AddParagraph()
	scoreRun := scorePar.AddRun()
	scoreRun.Properties().SetBold(true)
	scoreRun.AddText(fmt.Sprintf("Score complessivo: %s - Fattibilità tecnica: %s",
		scoreLabel(doc.Score), feasibilityLabel(doc.Feasibility)))

	for _, section := range doc.Sections {
		headPar := d.AddParagraph()
		headPar.SetStyle("Heading2")
		headPar.AddRun().AddText(section.Label)

		bodyPar := d.AddParagraph()
		bodyPar.AddRun().AddText(section.Body)
	}

	if len(doc.Answers) > 0 {
		headPar := d.AddParagraph()
		headPar.SetStyle("Heading2")
		headPar.AddRun().AddText("Riepilogo risposte")

		var lastPhase string
		for _, line := range doc.Answers {
			if string(line.Phase) != lastPhase {
				phasePar := d.AddParagraph()
				phasePar.SetStyle("Heading3")
				phasePar.AddRun().AddText(string(line.Phase))
				lastPhase = string(line.Phase)
			}

			qPar := d.AddParagraph()
			qRun := qPar.AddRun()
			qRun.Properties().SetBold(true)
			qRun.AddText(line.Question)

			aPar := d.AddParagraph()
			aPar.AddRun().AddText(line.Answer)
		}
	}

	var buf bytes.Buffer
	if err := d.Save(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (df *DOCXFormatter) ContentType() string {
	return docxContentType
}

func (df *DOCXFormatter) FileExtension() string {
	return docxFileExtension
}
