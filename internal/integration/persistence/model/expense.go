package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-report/backend/internal/domain/entity"
)

// ExpenseModel represents the expenses table in the database. Collaborator,
// company, project and card data are denormalized snapshots taken at
// submission time.
type ExpenseModel struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CollaboratorName string          `gorm:"type:varchar(100);index;not null"`
	City             string          `gorm:"type:varchar(100);not null"`
	Location         string          `gorm:"type:varchar(255);not null"`
	LocationTaxID    string          `gorm:"type:varchar(18)"`
	DocumentNumber   string          `gorm:"type:varchar(50)"`
	Description      string          `gorm:"type:varchar(255)"`
	Amount           decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Note             string          `gorm:"type:varchar(255)"`
	Complement       string          `gorm:"type:varchar(255);not null"`
	CompanyName      string          `gorm:"type:varchar(255);index"`
	ProjectName      string          `gorm:"type:varchar(255);index"`
	CardNumber       string          `gorm:"type:varchar(4);index"`
	RegisteredAt     time.Time       `gorm:"index;not null"`
	CreatedAt        time.Time       `gorm:"not null"`
	UpdatedAt        time.Time       `gorm:"not null"`

	Receipts []ReceiptModel `gorm:"foreignKey:ExpenseID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the ExpenseModel.
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToEntity converts an ExpenseModel to a domain Expense entity.
func (m *ExpenseModel) ToEntity() *entity.Expense {
	return &entity.Expense{
		ID:               m.ID,
		CollaboratorName: m.CollaboratorName,
		City:             m.City,
		Location:         m.Location,
		LocationTaxID:    m.LocationTaxID,
		DocumentNumber:   m.DocumentNumber,
		Description:      m.Description,
		Amount:           m.Amount,
		Note:             m.Note,
		Complement:       m.Complement,
		CompanyName:      m.CompanyName,
		ProjectName:      m.ProjectName,
		CardNumber:       m.CardNumber,
		RegisteredAt:     m.RegisteredAt,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// ExpenseFromEntity creates an ExpenseModel from a domain Expense entity.
func ExpenseFromEntity(expense *entity.Expense) *ExpenseModel {
	return &ExpenseModel{
		ID:               expense.ID,
		CollaboratorName: expense.CollaboratorName,
		City:             expense.City,
		Location:         expense.Location,
		LocationTaxID:    expense.LocationTaxID,
		DocumentNumber:   expense.DocumentNumber,
		Description:      expense.Description,
		Amount:           expense.Amount,
		Note:             expense.Note,
		Complement:       expense.Complement,
		CompanyName:      expense.CompanyName,
		ProjectName:      expense.ProjectName,
		CardNumber:       expense.CardNumber,
		RegisteredAt:     expense.RegisteredAt,
		CreatedAt:        expense.CreatedAt,
		UpdatedAt:        expense.UpdatedAt,
	}
}

// ReceiptModel represents the receipts table in the database. The image is a
// single binary column.
type ReceiptModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ExpenseID  uuid.UUID `gorm:"type:uuid;index;not null"`
	Content    []byte    `gorm:"type:bytea;not null"`
	FileName   string    `gorm:"type:varchar(255);not null"`
	UploadedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the ReceiptModel.
func (ReceiptModel) TableName() string {
	return "receipts"
}

// ToEntity converts a ReceiptModel to a domain Receipt entity.
func (m *ReceiptModel) ToEntity() *entity.Receipt {
	return &entity.Receipt{
		ID:         m.ID,
		ExpenseID:  m.ExpenseID,
		Content:    m.Content,
		FileName:   m.FileName,
		UploadedAt: m.UploadedAt,
	}
}

// ReceiptFromEntity creates a ReceiptModel from a domain Receipt entity.
func ReceiptFromEntity(receipt *entity.Receipt) *ReceiptModel {
	return &ReceiptModel{
		ID:         receipt.ID,
		ExpenseID:  receipt.ExpenseID,
		Content:    receipt.Content,
		FileName:   receipt.FileName,
		UploadedAt: receipt.UploadedAt,
	}
}
