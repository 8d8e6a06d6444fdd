// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense represents a single reimbursement claim submitted by a collaborator.
// Collaborator, company, project and card data are snapshotted as plain
// strings at submission time, so later changes to those records do not
// rewrite history.
type Expense struct {
	ID               uuid.UUID
	CollaboratorName string
	City             string
	Location         string
	LocationTaxID    string // CNPJ/CPF of the establishment
	DocumentNumber   string
	Description      string
	Amount           decimal.Decimal
	Note             string // observação
	Complement       string
	CompanyName      string
	ProjectName      string
	CardNumber       string // last 4 digits of the collaborator's card
	RegisteredAt     time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewExpense creates a new Expense entity stamped at the given registration
// time (business timezone is the caller's responsibility).
func NewExpense(
	collaboratorName string,
	city string,
	location string,
	locationTaxID string,
	documentNumber string,
	description string,
	amount decimal.Decimal,
	note string,
	complement string,
	companyName string,
	projectName string,
	cardNumber string,
	registeredAt time.Time,
) *Expense {
	now := time.Now().UTC()

	return &Expense{
		ID:               uuid.New(),
		CollaboratorName: collaboratorName,
		City:             city,
		Location:         location,
		LocationTaxID:    locationTaxID,
		DocumentNumber:   documentNumber,
		Description:      description,
		Amount:           amount,
		Note:             note,
		Complement:       complement,
		CompanyName:      companyName,
		ProjectName:      projectName,
		CardNumber:       cardNumber,
		RegisteredAt:     registeredAt,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// Receipt is the uploaded binary image evidencing an expense.
type Receipt struct {
	ID         uuid.UUID
	ExpenseID  uuid.UUID
	Content    []byte
	FileName   string
	UploadedAt time.Time
}

// NewReceipt creates a new Receipt for the given expense.
func NewReceipt(expenseID uuid.UUID, content []byte, fileName string, uploadedAt time.Time) *Receipt {
	return &Receipt{
		ID:         uuid.New(),
		ExpenseID:  expenseID,
		Content:    content,
		FileName:   fileName,
		UploadedAt: uploadedAt,
	}
}

// ReceiptInfo is a Receipt without its binary content, used for listings.
type ReceiptInfo struct {
	ID               uuid.UUID
	ExpenseID        uuid.UUID
	FileName         string
	UploadedAt       time.Time
	CollaboratorName string
	ExpenseAmount    decimal.Decimal
}
