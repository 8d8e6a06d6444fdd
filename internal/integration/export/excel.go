package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/expense-report/backend/internal/application/adapter"
	"github.com/expense-report/backend/internal/domain/entity"
)

// Sheet names per report dimension.
var sheetNames = map[entity.ReportDimension]string{
	entity.DimensionCollaborator: "Relatório de Gastos",
	entity.DimensionCard:         "Gastos por Cartão",
	entity.DimensionProject:      "Gastos por Projeto",
	entity.DimensionCompany:      "Gastos por Empresa",
}

// flatHeaders is the full column set of the collaborator spreadsheet.
var flatHeaders = []string{
	"Colaborador", "Data", "Descrição", "Valor (R$)", "Local", "Cidade",
	"CNPJ/CPF", "Empresa", "Projeto", "Cartão", "Complemento", "Observação",
}

// numFmtAccounting is the built-in #,##0.00 number format.
const numFmtAccounting = 4

// spreadsheetRenderer implements the adapter.SpreadsheetRenderer interface
// using excelize.
type spreadsheetRenderer struct{}

// NewSpreadsheetRenderer creates a new spreadsheet renderer instance.
func NewSpreadsheetRenderer() adapter.SpreadsheetRenderer {
	return &spreadsheetRenderer{}
}

// Render produces the spreadsheet bytes. The collaborator dimension uses a
// flat full-column layout with pt-BR formatted amount strings; the other
// dimensions use a short grouped layout with native numeric amount cells.
func (r *spreadsheetRenderer) Render(report *entity.Report) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := sheetNames[report.Dimension]
	if sheet == "" {
		return nil, fmt.Errorf("unknown report dimension %q", report.Dimension)
	}
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	var err error
	if report.Dimension == entity.DimensionCollaborator {
		err = renderFlatSheet(f, sheet, report)
	} else {
		err = renderGroupedSheet(f, sheet, report)
	}
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write spreadsheet: %w", err)
	}
	return buf.Bytes(), nil
}

// renderFlatSheet writes every expense as one full-width row. Amounts are
// pt-BR formatted strings, the layout consumed by the finance department's
// historical tooling.
func renderFlatSheet(f *excelize.File, sheet string, report *entity.Report) error {
	headerStyle, err := newHeaderStyle(f)
	if err != nil {
		return err
	}

	if err := setRow(f, sheet, 1, toAny(flatHeaders)); err != nil {
		return err
	}
	lastCol, _ := excelize.ColumnNumberToName(len(flatHeaders))
	if err := f.SetCellStyle(sheet, "A1", lastCol+"1", headerStyle); err != nil {
		return err
	}

	row := 2
	for _, group := range report.Groups {
		for _, e := range group.Expenses {
			values := []any{
				e.CollaboratorName,
				e.RegisteredAt.Format(dateDisplayLayout),
				e.Description,
				FormatBRL(e.Amount),
				e.Location,
				e.City,
				e.LocationTaxID,
				e.CompanyName,
				e.ProjectName,
				e.CardNumber,
				e.Complement,
				e.Note,
			}
			if err := setRow(f, sheet, row, values); err != nil {
				return err
			}
			row++
		}
	}

	row++
	if err := f.SetCellValue(sheet, fmt.Sprintf("C%d", row), "Total Geral:"); err != nil {
		return err
	}
	if err := f.SetCellValue(sheet, fmt.Sprintf("D%d", row), FormatBRL(report.GrandTotal)); err != nil {
		return err
	}

	widths := []float64{22, 12, 32, 14, 24, 16, 20, 24, 24, 10, 24, 24}
	return setColumnWidths(f, sheet, widths)
}

// renderGroupedSheet writes the short per-dimension layout: a subtotal row
// closes each group and amounts are native numeric cells.
func renderGroupedSheet(f *excelize.File, sheet string, report *entity.Report) error {
	headerStyle, err := newHeaderStyle(f)
	if err != nil {
		return err
	}
	moneyStyle, err := f.NewStyle(&excelize.Style{NumFmt: numFmtAccounting})
	if err != nil {
		return err
	}

	label := report.Dimension.Label()
	headers := []string{label, "Data", "Descrição", "Valor", "Colaborador", "Observação"}
	if err := setRow(f, sheet, 1, toAny(headers)); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", "F1", headerStyle); err != nil {
		return err
	}

	row := 2
	for _, group := range report.Groups {
		for _, e := range group.Expenses {
			values := []any{
				group.Key,
				e.RegisteredAt.Format(dateDisplayLayout),
				e.Description,
				e.Amount.InexactFloat64(),
				e.CollaboratorName,
				e.Note,
			}
			if err := setRow(f, sheet, row, values); err != nil {
				return err
			}
			cell := fmt.Sprintf("D%d", row)
			if err := f.SetCellStyle(sheet, cell, cell, moneyStyle); err != nil {
				return err
			}
			row++
		}

		subtotal := []any{
			"",
			"",
			fmt.Sprintf("Total %s %s:", totalArticle(report.Dimension), label),
			group.Subtotal.InexactFloat64(),
			"",
			"",
		}
		if err := setRow(f, sheet, row, subtotal); err != nil {
			return err
		}
		cell := fmt.Sprintf("D%d", row)
		if err := f.SetCellStyle(sheet, cell, cell, moneyStyle); err != nil {
			return err
		}
		row++
	}

	row++
	if err := f.SetCellValue(sheet, fmt.Sprintf("C%d", row), "Total Geral:"); err != nil {
		return err
	}
	if err := f.SetCellValue(sheet, fmt.Sprintf("D%d", row), report.GrandTotal.InexactFloat64()); err != nil {
		return err
	}
	cell := fmt.Sprintf("D%d", row)
	if err := f.SetCellStyle(sheet, cell, cell, moneyStyle); err != nil {
		return err
	}

	widths := []float64{24, 12, 32, 14, 22, 24}
	return setColumnWidths(f, sheet, widths)
}

// totalArticle returns the Portuguese article of the subtotal line.
func totalArticle(dimension entity.ReportDimension) string {
	if dimension == entity.DimensionCompany {
		return "da"
	}
	return "do"
}

func newHeaderStyle(f *excelize.File) (int, error) {
	return f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDDDDD"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func setColumnWidths(f *excelize.File, sheet string, widths []float64) error {
	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, col, col, w); err != nil {
			return err
		}
	}
	return nil
}

func toAny(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
