package expense

import (
	"context"
	"fmt"

	"github.com/expense-report/backend/internal/application/adapter"
	"github.com/expense-report/backend/internal/domain/entity"
)

// ListReceiptsOutput represents the output of receipt listing.
type ListReceiptsOutput struct {
	Receipts []*entity.ReceiptInfo
}

// ListReceiptsUseCase lists receipt metadata, newest upload first. Binary
// content is never loaded for listings.
type ListReceiptsUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewListReceiptsUseCase creates a new ListReceiptsUseCase instance.
func NewListReceiptsUseCase(expenseRepo adapter.ExpenseRepository) *ListReceiptsUseCase {
	return &ListReceiptsUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute performs the receipt listing.
func (uc *ListReceiptsUseCase) Execute(ctx context.Context) (*ListReceiptsOutput, error) {
	receipts, err := uc.expenseRepo.FindReceiptInfos(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list receipts: %w", err)
	}

	return &ListReceiptsOutput{
		Receipts: receipts,
	}, nil
}
