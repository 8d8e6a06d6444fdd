package expense

import (
	"context"
	"fmt"

	"github.com/expense-report/backend/internal/application/adapter"
	"github.com/expense-report/backend/internal/domain/entity"
)

// ListExpensesInput represents the input for expense listing. A non-empty
// CollaboratorName restricts the listing to that collaborator's history.
type ListExpensesInput struct {
	CollaboratorName string
}

// ListExpensesOutput represents the output of expense listing.
type ListExpensesOutput struct {
	Expenses []*entity.Expense
}

// ListExpensesUseCase handles expense listing logic. Administrators see all
// expenses; collaborators see their own history.
type ListExpensesUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(expenseRepo adapter.ExpenseRepository) *ListExpensesUseCase {
	return &ListExpensesUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute performs the expense listing, newest registration first.
func (uc *ListExpensesUseCase) Execute(ctx context.Context, input ListExpensesInput) (*ListExpensesOutput, error) {
	var (
		expenses []*entity.Expense
		err      error
	)
	if input.CollaboratorName != "" {
		expenses, err = uc.expenseRepo.FindByCollaboratorName(ctx, input.CollaboratorName)
	} else {
		expenses, err = uc.expenseRepo.FindAll(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	return &ListExpensesOutput{
		Expenses: expenses,
	}, nil
}
