package export

import (
	"bytes"
	"fmt"

	"github.com/signintech/gopdf"

	"github.com/expense-report/backend/internal/application/adapter"
	"github.com/expense-report/backend/internal/domain/entity"
)

// A4 layout constants, in points.
const (
	pageWidth  = 595.0
	marginLeft = 40.0
	marginTop  = 50.0
	bottomY    = 790.0

	rowHeight   = 20.0
	fontName    = "report"
	titleSize   = 16
	headingSize = 12
	bodySize    = 10
)

// Truncation limits applied to the per-dimension variants so wide values do
// not overflow their cells.
const (
	maxDescriptionRunes  = 30
	maxCollaboratorRunes = 18
	maxNoteRunes         = 20
)

// Document titles per report dimension.
var documentTitles = map[entity.ReportDimension]string{
	entity.DimensionCollaborator: "Relatório de Gastos",
	entity.DimensionCard:         "Gastos por Cartão",
	entity.DimensionProject:      "Gastos por Projeto",
	entity.DimensionCompany:      "Gastos por Empresa",
}

// documentRenderer implements the adapter.DocumentRenderer interface using
// gopdf. A TTF font file must be available at fontPath; gopdf cannot render
// text without a registered font.
type documentRenderer struct {
	fontPath string
}

// NewDocumentRenderer creates a new PDF renderer instance.
func NewDocumentRenderer(fontPath string) adapter.DocumentRenderer {
	return &documentRenderer{
		fontPath: fontPath,
	}
}

// Render produces the PDF bytes: one section per group, each with a header
// line, a bordered table and a subtotal, closed by a right-aligned grand
// total.
func (r *documentRenderer) Render(report *entity.Report) ([]byte, error) {
	title := documentTitles[report.Dimension]
	if title == "" {
		return nil, fmt.Errorf("unknown report dimension %q", report.Dimension)
	}

	pdf := &gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: *gopdf.PageSizeA4})

	if err := pdf.AddTTFFont(fontName, r.fontPath); err != nil {
		return nil, fmt.Errorf("failed to load PDF font %q: %w", r.fontPath, err)
	}

	pdf.AddPage()
	y := marginTop

	if err := pdf.SetFont(fontName, "", titleSize); err != nil {
		return nil, err
	}
	pdf.SetX(marginLeft)
	pdf.SetY(y)
	if err := pdf.Cell(nil, title); err != nil {
		return nil, err
	}
	y += 2 * rowHeight

	widths := columnWidths(report.Dimension)
	label := report.Dimension.Label()

	for _, group := range report.Groups {
		y = r.breakPage(pdf, y, 3*rowHeight)

		// Group header
		if err := pdf.SetFont(fontName, "", headingSize); err != nil {
			return nil, err
		}
		pdf.SetX(marginLeft)
		pdf.SetY(y)
		if err := pdf.Cell(nil, fmt.Sprintf("%s: %s", label, group.Key)); err != nil {
			return nil, err
		}
		y += rowHeight

		if err := pdf.SetFont(fontName, "", bodySize); err != nil {
			return nil, err
		}
		if err := drawRow(pdf, y, widths, tableHeader(report.Dimension)); err != nil {
			return nil, err
		}
		y += rowHeight

		for _, e := range group.Expenses {
			y = r.breakPage(pdf, y, rowHeight)
			if err := drawRow(pdf, y, widths, rowValues(report.Dimension, e)); err != nil {
				return nil, err
			}
			y += rowHeight
		}

		y = r.breakPage(pdf, y, rowHeight)
		pdf.SetX(marginLeft)
		pdf.SetY(y + 4)
		subtotal := fmt.Sprintf("Total %s %s: %s", totalArticle(report.Dimension), label, FormatBRL(group.Subtotal))
		if err := pdf.Cell(nil, subtotal); err != nil {
			return nil, err
		}
		y += 2 * rowHeight
	}

	y = r.breakPage(pdf, y, rowHeight)
	if err := pdf.SetFont(fontName, "", headingSize); err != nil {
		return nil, err
	}
	grandTotal := fmt.Sprintf("Total Geral: %s", FormatBRL(report.GrandTotal))
	textWidth, err := pdf.MeasureTextWidth(grandTotal)
	if err != nil {
		return nil, err
	}
	pdf.SetX(pageWidth - marginLeft - textWidth)
	pdf.SetY(y)
	if err := pdf.Cell(nil, grandTotal); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if _, err := pdf.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// breakPage starts a new page when the next block would pass the bottom
// margin, returning the adjusted cursor.
func (r *documentRenderer) breakPage(pdf *gopdf.GoPdf, y, needed float64) float64 {
	if y+needed <= bottomY {
		return y
	}
	pdf.AddPage()
	return marginTop
}

// columnWidths returns the table column widths. The collaborator variant has
// no Colaborador column, the grouping key already names the person.
func columnWidths(dimension entity.ReportDimension) []float64 {
	if dimension == entity.DimensionCollaborator {
		return []float64{70, 220, 90, 135}
	}
	return []float64{60, 175, 80, 100, 100}
}

// tableHeader returns the table header cells for the dimension.
func tableHeader(dimension entity.ReportDimension) []string {
	if dimension == entity.DimensionCollaborator {
		return []string{"Data", "Descrição", "Valor", "Observação"}
	}
	return []string{"Data", "Descrição", "Valor", "Colaborador", "Observação"}
}

// rowValues returns one table row. Only the per-dimension variants truncate.
func rowValues(dimension entity.ReportDimension, e *entity.Expense) []string {
	date := e.RegisteredAt.Format(dateDisplayLayout)
	amount := FormatBRL(e.Amount)

	if dimension == entity.DimensionCollaborator {
		return []string{date, e.Description, amount, e.Note}
	}
	return []string{
		date,
		truncateRunes(e.Description, maxDescriptionRunes),
		amount,
		truncateRunes(e.CollaboratorName, maxCollaboratorRunes),
		truncateRunes(e.Note, maxNoteRunes),
	}
}

// drawRow renders one bordered table row at the given cursor height.
func drawRow(pdf *gopdf.GoPdf, y float64, widths []float64, values []string) error {
	x := marginLeft
	for i, value := range values {
		pdf.SetX(x)
		pdf.SetY(y)
		err := pdf.CellWithOption(
			&gopdf.Rect{W: widths[i], H: rowHeight},
			value,
			gopdf.CellOption{Border: gopdf.AllBorders},
		)
		if err != nil {
			return err
		}
		x += widths[i]
	}
	return nil
}

// truncateRunes cuts a string to at most n runes.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
