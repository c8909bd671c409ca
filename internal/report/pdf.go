package report

import (
	"bytes"
	"fmt"

	"github.com/ifab-lab/workshop-backend/internal/pkg/transliterate"
	"github.com/jung-kurt/gofpdf"
)

const (
	pdfContentType   = "application/pdf"
	pdfFileExtension = ".pdf"

	pdfFont = "Helvetica"
)

// PDFFormatter renders the report with the built-in core fonts, which only
// cover ASCII. Every string goes through transliterate.Clean first so
// accented Italian text degrades to readable ASCII instead of mojibake.
type PDFFormatter struct{}

func NewPDFFormatter() *PDFFormatter {
	return &PDFFormatter{}
}

func (pf *PDFFormatter) Format(doc *Document) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 20, 15)
	pdf.SetAutoPageBreak(true, 20)

	title := transliterate.Clean(doc.Title)
	organization := transliterate.Clean(doc.Organization)

	pdf.SetHeaderFunc(func() {
		pdf.SetFont(pdfFont, "B", 10)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
		pdf.SetDrawColor(200, 200, 200)
		pdf.Line(15, pdf.GetY(), 195, pdf.GetY())
		pdf.Ln(4)
	})

	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont(pdfFont, "I", 8)
		pdf.SetTextColor(128, 128, 128)
		pdf.CellFormat(0, 10, fmt.Sprintf("%s - Pagina %d", organization, pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()

	pdf.SetFont(pdfFont, "B", 18)
	pdf.SetTextColor(0, 0, 0)
	pdf.MultiCell(0, 9, title, "", "L", false)
	pdf.Ln(2)

	pdf.SetFont(pdfFont, "", 10)
	pdf.SetTextColor(80, 80, 80)
	pdf.CellFormat(0, 6, transliterate.Clean(fmt.Sprintf("Generato il %s", doc.GeneratedAt.Format("02/01/2006 15:04"))), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pf.writeScoreLine(pdf, doc)
	pdf.Ln(4)

	for _, section := range doc.Sections {
		pdf.SetFont(pdfFont, "B", 13)
		pdf.SetTextColor(30, 60, 120)
		pdf.MultiCell(0, 7, transliterate.Clean(section.Label), "", "L", false)
		pdf.Ln(1)

		pdf.SetFont(pdfFont, "", 10)
		pdf.SetTextColor(0, 0, 0)
		pdf.MultiCell(0, 5.5, transliterate.Clean(section.Body), "", "L", false)
		pdf.Ln(3)
	}

	if len(doc.Answers) > 0 {
		pdf.AddPage()
		pdf.SetFont(pdfFont, "B", 13)
		pdf.SetTextColor(30, 60, 120)
		pdf.CellFormat(0, 7, "Riepilogo risposte", "", 1, "L", false, 0, "")
		pdf.Ln(2)

		var lastPhase string
		for _, line := range doc.Answers {
			if string(line.Phase) != lastPhase {
				pdf.SetFont(pdfFont, "B", 11)
				pdf.SetTextColor(60, 60, 60)
				pdf.CellFormat(0, 6, transliterate.Clean(string(line.Phase)), "", 1, "L", false, 0, "")
				pdf.Ln(1)
				lastPhase = string(line.Phase)
			}

			pdf.SetFont(pdfFont, "B", 10)
			pdf.SetTextColor(0, 0, 0)
			pdf.MultiCell(0, 5.5, transliterate.Clean(line.Question), "", "L", false)

			pdf.SetFont(pdfFont, "", 10)
			pdf.SetTextColor(40, 40, 40)
			pdf.MultiCell(0, 5.5, transliterate.Clean(line.Answer), "", "L", false)
			pdf.Ln(2)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeScoreLine prints the overall score with a traffic-light color:
// green for 7 and above, orange for 5-6, red below.
func (pf *PDFFormatter) writeScoreLine(pdf *gofpdf.Fpdf, doc *Document) {
	pdf.SetFont(pdfFont, "B", 12)

	if doc.Score != nil {
		switch {
		case *doc.Score >= 7:
			pdf.SetTextColor(0, 150, 0)
		case *doc.Score >= 5:
			pdf.SetTextColor(230, 140, 0)
		default:
			pdf.SetTextColor(200, 0, 0)
		}
	} else {
		pdf.SetTextColor(100, 100, 100)
	}

	pdf.CellFormat(0, 7, transliterate.Clean(fmt.Sprintf("Score complessivo: %s", scoreLabel(doc.Score))), "", 1, "L", false, 0, "")

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont(pdfFont, "", 11)
	pdf.CellFormat(0, 6, transliterate.Clean(fmt.Sprintf("Fattibilità tecnica: %s", feasibilityLabel(doc.Feasibility))), "", 1, "L", false, 0, "")
}

func (pf *PDFFormatter) ContentType() string {
	return pdfContentType
}

func (pf *PDFFormatter) FileExtension() string {
	return pdfFileExtension
}
