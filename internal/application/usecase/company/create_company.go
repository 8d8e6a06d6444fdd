// Package company contains company-related use cases.
package company

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/expense-report/backend/internal/application/adapter"
	"github.com/expense-report/backend/internal/domain/entity"
	domainerror "github.com/expense-report/backend/internal/domain/error"
)

// cnpjRegex is compiled once at package level for performance.
var cnpjRegex = regexp.MustCompile(`^\d{2}\.\d{3}\.\d{3}/\d{4}-\d{2}$`)

// CreateCompanyInput represents the input for company creation.
type CreateCompanyInput struct {
	LegalName string
	CNPJ      string
	Address   string
}

// CreateCompanyOutput represents the output of company creation.
type CreateCompanyOutput struct {
	Company *entity.Company
}

// CreateCompanyUseCase handles company creation logic.
type CreateCompanyUseCase struct {
	companyRepo adapter.CompanyRepository
}

// NewCreateCompanyUseCase creates a new CreateCompanyUseCase instance.
func NewCreateCompanyUseCase(companyRepo adapter.CompanyRepository) *CreateCompanyUseCase {
	return &CreateCompanyUseCase{
		companyRepo: companyRepo,
	}
}

// Execute performs the company creation.
func (uc *CreateCompanyUseCase) Execute(ctx context.Context, input CreateCompanyInput) (*CreateCompanyOutput, error) {
	if input.LegalName == "" || input.CNPJ == "" || input.Address == "" {
		return nil, domainerror.NewRegistryError(
			domainerror.ErrCodeMissingRequiredFields,
			"legal name, CNPJ and address are required",
			domainerror.ErrMissingRequiredFields,
		)
	}

	if !isValidCNPJ(input.CNPJ) {
		return nil, domainerror.NewRegistryError(
			domainerror.ErrCodeInvalidCNPJ,
			"CNPJ must be in the format XX.XXX.XXX/XXXX-XX",
			domainerror.ErrInvalidCNPJ,
		)
	}

	// Check CNPJ uniqueness before inserting
	_, err := uc.companyRepo.FindByCNPJ(ctx, input.CNPJ)
	if err == nil {
		return nil, cnpjConflictError()
	}
	if !errors.Is(err, domainerror.ErrCompanyNotFound) {
		return nil, fmt.Errorf("failed to check CNPJ existence: %w", err)
	}

	company := entity.NewCompany(input.LegalName, input.CNPJ, input.Address)

	if err := uc.companyRepo.Create(ctx, company); err != nil {
		// The unique constraint is the authority under concurrent creation
		if errors.Is(err, domainerror.ErrCNPJAlreadyExists) {
			return nil, cnpjConflictError()
		}
		return nil, fmt.Errorf("failed to create company: %w", err)
	}

	return &CreateCompanyOutput{
		Company: company,
	}, nil
}

// isValidCNPJ validates the formatted CNPJ notation.
func isValidCNPJ(cnpj string) bool {
	return cnpjRegex.MatchString(cnpj)
}

func cnpjConflictError() error {
	return domainerror.NewRegistryError(
		domainerror.ErrCodeCNPJAlreadyExists,
		"a company with this CNPJ already exists",
		domainerror.ErrCNPJAlreadyExists,
	)
}
