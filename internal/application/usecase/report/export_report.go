// Package report contains the report aggregation and export use cases.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/expense-report/backend/internal/application/adapter"
	"github.com/expense-report/backend/internal/domain/entity"
	domainerror "github.com/expense-report/backend/internal/domain/error"
)

// ExportFormat selects the output document type.
type ExportFormat string

const (
	FormatSpreadsheet ExportFormat = "xlsx"
	FormatDocument    ExportFormat = "pdf"
)

// Valid reports whether f is a known export format.
func (f ExportFormat) Valid() bool {
	return f == FormatSpreadsheet || f == FormatDocument
}

// Content types of the export downloads.
const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypePDF  = "application/pdf"
)

// ExportReportInput represents the input for report export.
type ExportReportInput struct {
	Dimension        entity.ReportDimension
	Format           ExportFormat
	StartDate        string // YYYY-MM-DD
	EndDate          string // YYYY-MM-DD
	CollaboratorName string // collaborator dimension only
}

// ExportReportOutput carries the rendered download.
type ExportReportOutput struct {
	FileName    string
	ContentType string
	Content     []byte
}

// ExportReportUseCase runs the aggregation pipeline and renders the result
// into a downloadable document. The six historical per-dimension export
// routes are this one pipeline parameterized by dimension and format.
type ExportReportUseCase struct {
	expenseRepo adapter.ExpenseRepository
	spreadsheet adapter.SpreadsheetRenderer
	document    adapter.DocumentRenderer
	location    *time.Location
}

// NewExportReportUseCase creates a new ExportReportUseCase instance.
func NewExportReportUseCase(
	expenseRepo adapter.ExpenseRepository,
	spreadsheet adapter.SpreadsheetRenderer,
	document adapter.DocumentRenderer,
	location *time.Location,
) *ExportReportUseCase {
	return &ExportReportUseCase{
		expenseRepo: expenseRepo,
		spreadsheet: spreadsheet,
		document:    document,
		location:    location,
	}
}

// Execute performs the export. Rendering happens fully in memory; on any
// failure no partial output is returned.
func (uc *ExportReportUseCase) Execute(ctx context.Context, input ExportReportInput) (*ExportReportOutput, error) {
	if !input.Dimension.Valid() {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidDimension,
			fmt.Sprintf("unknown report dimension %q", input.Dimension),
			domainerror.ErrInvalidDimension,
		)
	}
	if !input.Format.Valid() {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidExportFormat,
			fmt.Sprintf("unknown export format %q", input.Format),
			domainerror.ErrInvalidExportFormat,
		)
	}

	filter, err := uc.buildFilter(input)
	if err != nil {
		return nil, err
	}

	expenses, err := uc.expenseRepo.FindForReport(ctx, filter, input.Dimension)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch expenses for export: %w", err)
	}

	report := entity.BuildReport(input.Dimension, expenses)

	var content []byte
	var contentType string
	switch input.Format {
	case FormatSpreadsheet:
		content, err = uc.spreadsheet.Render(report)
		contentType = contentTypeXLSX
	case FormatDocument:
		content, err = uc.document.Render(report)
		contentType = contentTypePDF
	}
	if err != nil {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeRenderFailed,
			"failed to render report",
			err,
		)
	}

	return &ExportReportOutput{
		FileName:    exportFileName(input) + "." + string(input.Format),
		ContentType: contentType,
		Content:     content,
	}, nil
}

// buildFilter resolves the date bounds for the export. The collaborator
// variant treats missing bounds as "everything"; the per-dimension variants
// require both bounds.
func (uc *ExportReportUseCase) buildFilter(input ExportReportInput) (adapter.ExpenseFilter, error) {
	filter := adapter.ExpenseFilter{CollaboratorName: input.CollaboratorName}

	if input.Dimension == entity.DimensionCollaborator && input.StartDate == "" && input.EndDate == "" {
		return filter, nil
	}

	if input.StartDate == "" || input.EndDate == "" {
		return filter, domainerror.NewReportError(
			domainerror.ErrCodeInvalidDateRange,
			"both start and end dates are required",
			domainerror.ErrInvalidDateRange,
		)
	}

	dateRange, err := ParseDateRange(input.StartDate, input.EndDate, RangePolicyEmpty, uc.location, time.Now().In(uc.location))
	if err != nil {
		return filter, err
	}

	filter.StartDate = &dateRange.Start
	filter.EndDate = &dateRange.End
	return filter, nil
}

// exportFileName returns the download base name for the given export.
func exportFileName(input ExportReportInput) string {
	switch input.Dimension {
	case entity.DimensionCard:
		return "gastos_por_cartao"
	case entity.DimensionProject:
		return "gastos_por_projeto"
	case entity.DimensionCompany:
		return "gastos_por_empresa"
	}
	if input.CollaboratorName != "" {
		return input.CollaboratorName + "_gastos"
	}
	return "relatorio_completo_gastos"
}
