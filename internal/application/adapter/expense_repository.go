// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/expense-report/backend/internal/domain/entity"
)

// ExpenseFilter defines filter options for fetching expenses.
// StartDate is inclusive and EndDate is exclusive; both nil means no
// date filtering. CollaboratorName, when set, is an exact match.
type ExpenseFilter struct {
	StartDate        *time.Time
	EndDate          *time.Time
	CollaboratorName string
}

// ExpenseRepository defines the interface for expense persistence operations.
type ExpenseRepository interface {
	// CreateWithReceipt creates an expense and its receipt atomically.
	// Either both rows are written or neither is.
	CreateWithReceipt(ctx context.Context, expense *entity.Expense, receipt *entity.Receipt) error

	// FindByID retrieves an expense by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error)

	// FindAll retrieves all expenses, newest registration first.
	FindAll(ctx context.Context) ([]*entity.Expense, error)

	// FindByCollaboratorName retrieves the expenses of one collaborator,
	// newest registration first.
	FindByCollaboratorName(ctx context.Context, name string) ([]*entity.Expense, error)

	// FindForReport retrieves expenses matching the filter, sorted by
	// (grouping field of the dimension, registration timestamp ascending).
	// The ordering is what makes report group order deterministic.
	FindForReport(ctx context.Context, filter ExpenseFilter, dimension entity.ReportDimension) ([]*entity.Expense, error)

	// Delete removes an expense and cascades to its receipts.
	Delete(ctx context.Context, id uuid.UUID) error

	// FindReceiptByID retrieves a receipt including its binary content.
	FindReceiptByID(ctx context.Context, id uuid.UUID) (*entity.Receipt, error)

	// FindReceiptInfos lists receipts without content, newest upload first.
	FindReceiptInfos(ctx context.Context) ([]*entity.ReceiptInfo, error)
}
