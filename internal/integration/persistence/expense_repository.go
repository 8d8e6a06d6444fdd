package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/expense-report/backend/internal/application/adapter"
	"github.com/expense-report/backend/internal/domain/entity"
	domainerror "github.com/expense-report/backend/internal/domain/error"
	"github.com/expense-report/backend/internal/integration/persistence/model"
)

// expenseRepository implements the adapter.ExpenseRepository interface.
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository instance.
func NewExpenseRepository(db *gorm.DB) adapter.ExpenseRepository {
	return &expenseRepository{
		db: db,
	}
}

// CreateWithReceipt creates an expense and its receipt in one transaction.
func (r *expenseRepository) CreateWithReceipt(ctx context.Context, expense *entity.Expense, receipt *entity.Receipt) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model.ExpenseFromEntity(expense)).Error; err != nil {
			return err
		}
		if err := tx.Create(model.ReceiptFromEntity(receipt)).Error; err != nil {
			return err
		}
		return nil
	})
}

// FindByID retrieves an expense by its ID.
func (r *expenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	var expenseModel model.ExpenseModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&expenseModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrExpenseNotFound
		}
		return nil, result.Error
	}
	return expenseModel.ToEntity(), nil
}

// FindAll retrieves all expenses, newest registration first.
func (r *expenseRepository) FindAll(ctx context.Context) ([]*entity.Expense, error) {
	var expenseModels []model.ExpenseModel
	result := r.db.WithContext(ctx).Order("registered_at desc").Find(&expenseModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toExpenseEntities(expenseModels), nil
}

// FindByCollaboratorName retrieves one collaborator's expenses, newest
// registration first.
func (r *expenseRepository) FindByCollaboratorName(ctx context.Context, name string) ([]*entity.Expense, error) {
	var expenseModels []model.ExpenseModel
	result := r.db.WithContext(ctx).
		Where("collaborator_name = ?", name).
		Order("registered_at desc").
		Find(&expenseModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toExpenseEntities(expenseModels), nil
}

// reportOrderColumns maps each report dimension to its grouping column.
var reportOrderColumns = map[entity.ReportDimension]string{
	entity.DimensionCollaborator: "collaborator_name",
	entity.DimensionCard:         "card_number",
	entity.DimensionProject:      "project_name",
	entity.DimensionCompany:      "company_name",
}

// FindForReport retrieves expenses matching the filter, sorted by the
// grouping column of the dimension and then by registration timestamp. The
// ordering keeps report groups and the rows within them deterministic.
func (r *expenseRepository) FindForReport(ctx context.Context, filter adapter.ExpenseFilter, dimension entity.ReportDimension) ([]*entity.Expense, error) {
	column, ok := reportOrderColumns[dimension]
	if !ok {
		return nil, domainerror.ErrInvalidDimension
	}

	query := r.db.WithContext(ctx).Model(&model.ExpenseModel{})
	if filter.StartDate != nil {
		query = query.Where("registered_at >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("registered_at < ?", *filter.EndDate)
	}
	if filter.CollaboratorName != "" {
		query = query.Where("collaborator_name = ?", filter.CollaboratorName)
	}

	var expenseModels []model.ExpenseModel
	result := query.Order(column + " asc").Order("registered_at asc").Find(&expenseModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toExpenseEntities(expenseModels), nil
}

// Delete removes an expense; receipts cascade with the row.
func (r *expenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.ReceiptModel{}, "expense_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.ExpenseModel{}, "id = ?", id).Error
	})
}

// FindReceiptByID retrieves a receipt including its binary content.
func (r *expenseRepository) FindReceiptByID(ctx context.Context, id uuid.UUID) (*entity.Receipt, error) {
	var receiptModel model.ReceiptModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&receiptModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrReceiptNotFound
		}
		return nil, result.Error
	}
	if len(receiptModel.Content) == 0 {
		return nil, domainerror.ErrReceiptNotFound
	}
	return receiptModel.ToEntity(), nil
}

// receiptInfoRow is the join projection for receipt listings.
type receiptInfoRow struct {
	ID               uuid.UUID
	ExpenseID        uuid.UUID
	FileName         string
	UploadedAt       time.Time
	CollaboratorName string
	Amount           decimal.Decimal
}

// FindReceiptInfos lists receipt metadata joined with the owning expense,
// newest upload first. Binary content is excluded from the select.
func (r *expenseRepository) FindReceiptInfos(ctx context.Context) ([]*entity.ReceiptInfo, error) {
	var rows []receiptInfoRow
	result := r.db.WithContext(ctx).
		Model(&model.ReceiptModel{}).
		Select("receipts.id", "receipts.expense_id", "receipts.file_name", "receipts.uploaded_at",
			"expenses.collaborator_name", "expenses.amount").
		Joins("JOIN expenses ON expenses.id = receipts.expense_id").
		Order("receipts.uploaded_at desc").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	infos := make([]*entity.ReceiptInfo, len(rows))
	for i, row := range rows {
		infos[i] = &entity.ReceiptInfo{
			ID:               row.ID,
			ExpenseID:        row.ExpenseID,
			FileName:         row.FileName,
			UploadedAt:       row.UploadedAt,
			CollaboratorName: row.CollaboratorName,
			ExpenseAmount:    row.Amount,
		}
	}
	return infos, nil
}

// toExpenseEntities converts expense models to domain entities.
func toExpenseEntities(models []model.ExpenseModel) []*entity.Expense {
	expenses := make([]*entity.Expense, len(models))
	for i := range models {
		expenses[i] = models[i].ToEntity()
	}
	return expenses
}
