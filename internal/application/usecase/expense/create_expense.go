// Package expense contains expense submission and receipt use cases.
package expense

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-report/backend/internal/application/adapter"
	"github.com/expense-report/backend/internal/domain/entity"
	domainerror "github.com/expense-report/backend/internal/domain/error"
)

// receiptStampLayout is the timestamp embedded in generated receipt filenames.
const receiptStampLayout = "20060102_150405"

// CreateExpenseInput represents the input for expense submission.
type CreateExpenseInput struct {
	CollaboratorID uuid.UUID
	City           string
	Location       string
	LocationTaxID  string
	DocumentNumber string
	Description    string
	Amount         string // decimal string, 2 decimal places
	Note           string
	Complement     string
	ProjectID      *uuid.UUID // Optional, defaults to the first assigned project
	ReceiptContent []byte
}

// CreateExpenseOutput represents the output of expense submission.
type CreateExpenseOutput struct {
	Expense *entity.Expense
	Receipt *entity.Receipt
}

// CreateExpenseUseCase handles expense submission. Collaborator, company,
// project and card data are snapshotted into the expense row, and the expense
// and its receipt are written in a single transaction.
type CreateExpenseUseCase struct {
	expenseRepo      adapter.ExpenseRepository
	collaboratorRepo adapter.CollaboratorRepository
	companyRepo      adapter.CompanyRepository
	projectRepo      adapter.ProjectRepository
	sniffer          adapter.ContentSniffer
	maxReceiptSize   int64
	location         *time.Location
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(
	expenseRepo adapter.ExpenseRepository,
	collaboratorRepo adapter.CollaboratorRepository,
	companyRepo adapter.CompanyRepository,
	projectRepo adapter.ProjectRepository,
	sniffer adapter.ContentSniffer,
	maxReceiptSize int64,
	location *time.Location,
) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{
		expenseRepo:      expenseRepo,
		collaboratorRepo: collaboratorRepo,
		companyRepo:      companyRepo,
		projectRepo:      projectRepo,
		sniffer:          sniffer,
		maxReceiptSize:   maxReceiptSize,
		location:         location,
	}
}

// Execute performs the expense submission.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, input CreateExpenseInput) (*CreateExpenseOutput, error) {
	if input.City == "" || input.Location == "" || input.Amount == "" || input.Complement == "" {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeMissingExpenseFields,
			"city, location, amount and complement are required",
			domainerror.ErrMissingExpenseFields,
		)
	}

	amount, err := parseAmount(input.Amount)
	if err != nil {
		return nil, err
	}

	if len(input.ReceiptContent) == 0 {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeReceiptRequired,
			"receipt image is required",
			domainerror.ErrReceiptRequired,
		)
	}
	if int64(len(input.ReceiptContent)) > uc.maxReceiptSize {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeReceiptTooLarge,
			fmt.Sprintf("receipt image exceeds the %d byte limit", uc.maxReceiptSize),
			domainerror.ErrReceiptTooLarge,
		)
	}

	collaborator, err := uc.collaboratorRepo.FindByID(ctx, input.CollaboratorID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCollaboratorNotFound) {
			return nil, domainerror.NewRegistryError(
				domainerror.ErrCodeCollaboratorNotFound,
				"collaborator not found",
				domainerror.ErrCollaboratorNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find collaborator: %w", err)
	}

	companyName, err := uc.resolveCompanyName(ctx, collaborator.CompanyID)
	if err != nil {
		return nil, err
	}

	projectName, err := uc.resolveProjectName(ctx, collaborator, input.ProjectID)
	if err != nil {
		return nil, err
	}

	registeredAt := time.Now().In(uc.location)

	exp := entity.NewExpense(
		collaborator.Name,
		input.City,
		input.Location,
		input.LocationTaxID,
		input.DocumentNumber,
		input.Description,
		amount,
		input.Note,
		input.Complement,
		companyName,
		projectName,
		collaborator.CardNumber,
		registeredAt,
	)

	sniffed := uc.sniffer.Sniff(input.ReceiptContent)
	fileName := fmt.Sprintf("%s_despesa%s_%s.%s",
		fileNameSlug(collaborator.Name),
		exp.ID.String()[:8],
		registeredAt.Format(receiptStampLayout),
		sniffed.Extension,
	)

	receipt := entity.NewReceipt(exp.ID, input.ReceiptContent, fileName, registeredAt)

	if err := uc.expenseRepo.CreateWithReceipt(ctx, exp, receipt); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	return &CreateExpenseOutput{
		Expense: exp,
		Receipt: receipt,
	}, nil
}

// resolveCompanyName snapshots the legal name of the collaborator's company.
// A collaborator without a company yields an empty snapshot, which the report
// pipeline later groups under the unknown key.
func (uc *CreateExpenseUseCase) resolveCompanyName(ctx context.Context, companyID uuid.UUID) (string, error) {
	if companyID == uuid.Nil {
		return "", nil
	}
	company, err := uc.companyRepo.FindByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCompanyNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to find company: %w", err)
	}
	return company.LegalName, nil
}

// resolveProjectName snapshots the project name. An explicit project must be
// one of the collaborator's assignments; without one the first assignment is
// used, and no assignments yield an empty snapshot.
func (uc *CreateExpenseUseCase) resolveProjectName(ctx context.Context, collaborator *entity.Collaborator, projectID *uuid.UUID) (string, error) {
	id := uuid.Nil
	if projectID != nil {
		assigned := false
		for _, pid := range collaborator.ProjectIDs {
			if pid == *projectID {
				assigned = true
				break
			}
		}
		if !assigned {
			return "", domainerror.NewRegistryError(
				domainerror.ErrCodeProjectNotFound,
				"project is not assigned to this collaborator",
				domainerror.ErrProjectNotFound,
			)
		}
		id = *projectID
	} else if len(collaborator.ProjectIDs) > 0 {
		id = collaborator.ProjectIDs[0]
	}

	if id == uuid.Nil {
		return "", nil
	}

	project, err := uc.projectRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrProjectNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to find project: %w", err)
	}
	return project.Name, nil
}

// fileNameSlug normalizes a collaborator name for embedding in a generated
// receipt filename.
func fileNameSlug(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", "_"))
}

// parseAmount parses a positive decimal with at most two fraction digits.
func parseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil || !amount.IsPositive() || amount.Exponent() < -2 {
		return decimal.Zero, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidAmount,
			"amount must be a positive value with at most 2 decimal places",
			domainerror.ErrInvalidAmount,
		)
	}
	return amount, nil
}
