package dto

import (
	"time"

	"github.com/expense-report/backend/internal/domain/entity"
)

// CreateExpenseRequest represents the multipart form fields of an expense
// submission. Field names keep the Portuguese form names of the client.
type CreateExpenseRequest struct {
	City           string `form:"cidade" binding:"required,max=100"`
	Location       string `form:"local" binding:"required,max=255"`
	Amount         string `form:"valor" binding:"required"`
	Complement     string `form:"complemento" binding:"required,max=255"`
	LocationTaxID  string `form:"cnpj_cpf_local" binding:"max=18"`
	DocumentNumber string `form:"numero_documento" binding:"max=50"`
	Description    string `form:"descricao" binding:"max=255"`
	Note           string `form:"observacao" binding:"max=255"`
	ProjectID      string `form:"projeto_id" binding:"omitempty,uuid"`
}

// ExpenseResponse represents an expense in API responses. Amount is a
// decimal string with two fraction digits.
type ExpenseResponse struct {
	ID               string    `json:"id"`
	CollaboratorName string    `json:"collaborator_name"`
	City             string    `json:"city"`
	Location         string    `json:"location"`
	LocationTaxID    string    `json:"location_tax_id,omitempty"`
	DocumentNumber   string    `json:"document_number,omitempty"`
	Description      string    `json:"description,omitempty"`
	Amount           string    `json:"amount"`
	Note             string    `json:"note,omitempty"`
	Complement       string    `json:"complement"`
	CompanyName      string    `json:"company_name,omitempty"`
	ProjectName      string    `json:"project_name,omitempty"`
	CardNumber       string    `json:"card_number,omitempty"`
	RegisteredAt     time.Time `json:"registered_at"`
}

// ToExpenseResponse converts a domain Expense entity to an ExpenseResponse DTO.
func ToExpenseResponse(expense *entity.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:               expense.ID.String(),
		CollaboratorName: expense.CollaboratorName,
		City:             expense.City,
		Location:         expense.Location,
		LocationTaxID:    expense.LocationTaxID,
		DocumentNumber:   expense.DocumentNumber,
		Description:      expense.Description,
		Amount:           expense.Amount.StringFixed(2),
		Note:             expense.Note,
		Complement:       expense.Complement,
		CompanyName:      expense.CompanyName,
		ProjectName:      expense.ProjectName,
		CardNumber:       expense.CardNumber,
		RegisteredAt:     expense.RegisteredAt,
	}
}

// ToExpenseResponses converts a slice of expenses.
func ToExpenseResponses(expenses []*entity.Expense) []ExpenseResponse {
	responses := make([]ExpenseResponse, len(expenses))
	for i, e := range expenses {
		responses[i] = ToExpenseResponse(e)
	}
	return responses
}

// CreateExpenseResponse represents the response of an expense submission.
type CreateExpenseResponse struct {
	Expense   ExpenseResponse `json:"expense"`
	ReceiptID string          `json:"receipt_id"`
}

// ReceiptInfoResponse represents receipt metadata in listings.
type ReceiptInfoResponse struct {
	ID               string    `json:"id"`
	ExpenseID        string    `json:"expense_id"`
	FileName         string    `json:"file_name"`
	UploadedAt       time.Time `json:"uploaded_at"`
	CollaboratorName string    `json:"collaborator_name"`
	ExpenseAmount    string    `json:"expense_amount"`
}

// ToReceiptInfoResponse converts a domain ReceiptInfo to its DTO.
func ToReceiptInfoResponse(info *entity.ReceiptInfo) ReceiptInfoResponse {
	return ReceiptInfoResponse{
		ID:               info.ID.String(),
		ExpenseID:        info.ExpenseID.String(),
		FileName:         info.FileName,
		UploadedAt:       info.UploadedAt,
		CollaboratorName: info.CollaboratorName,
		ExpenseAmount:    info.ExpenseAmount.StringFixed(2),
	}
}
