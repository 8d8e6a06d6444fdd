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

// GenerateReportInput represents the input for report generation.
type GenerateReportInput struct {
	Dimension        entity.ReportDimension
	StartDate        string // YYYY-MM-DD, optional
	EndDate          string // YYYY-MM-DD, optional
	CollaboratorName string // optional exact-match filter
	Policy           RangePolicy
}

// GenerateReportOutput represents the output of report generation.
type GenerateReportOutput struct {
	Report *entity.Report
}

// GenerateReportUseCase fetches expenses for a date range and groups them by
// the requested dimension. It only reads; nothing is persisted.
type GenerateReportUseCase struct {
	expenseRepo adapter.ExpenseRepository
	location    *time.Location
}

// NewGenerateReportUseCase creates a new GenerateReportUseCase instance.
func NewGenerateReportUseCase(expenseRepo adapter.ExpenseRepository, location *time.Location) *GenerateReportUseCase {
	return &GenerateReportUseCase{
		expenseRepo: expenseRepo,
		location:    location,
	}
}

// Execute performs the report generation.
func (uc *GenerateReportUseCase) Execute(ctx context.Context, input GenerateReportInput) (*GenerateReportOutput, error) {
	if !input.Dimension.Valid() {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidDimension,
			fmt.Sprintf("unknown report dimension %q", input.Dimension),
			domainerror.ErrInvalidDimension,
		)
	}

	dateRange, err := ParseDateRange(input.StartDate, input.EndDate, input.Policy, uc.location, time.Now().In(uc.location))
	if err != nil {
		return nil, err
	}

	if dateRange.Empty {
		return &GenerateReportOutput{Report: entity.BuildReport(input.Dimension, nil)}, nil
	}

	filter := adapter.ExpenseFilter{
		StartDate:        &dateRange.Start,
		EndDate:          &dateRange.End,
		CollaboratorName: input.CollaboratorName,
	}

	expenses, err := uc.expenseRepo.FindForReport(ctx, filter, input.Dimension)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch expenses for report: %w", err)
	}

	return &GenerateReportOutput{Report: entity.BuildReport(input.Dimension, expenses)}, nil
}
