package company

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/expense-report/backend/internal/application/adapter"
	"github.com/expense-report/backend/internal/domain/entity"
	domainerror "github.com/expense-report/backend/internal/domain/error"
)

// UpdateCompanyInput represents the input for company update.
type UpdateCompanyInput struct {
	CompanyID uuid.UUID
	LegalName *string // Optional
	CNPJ      *string // Optional
	Address   *string // Optional
}

// UpdateCompanyOutput represents the output of company update.
type UpdateCompanyOutput struct {
	Company *entity.Company
}

// UpdateCompanyUseCase handles company update logic.
type UpdateCompanyUseCase struct {
	companyRepo adapter.CompanyRepository
}

// NewUpdateCompanyUseCase creates a new UpdateCompanyUseCase instance.
func NewUpdateCompanyUseCase(companyRepo adapter.CompanyRepository) *UpdateCompanyUseCase {
	return &UpdateCompanyUseCase{
		companyRepo: companyRepo,
	}
}

// Execute performs the company update.
func (uc *UpdateCompanyUseCase) Execute(ctx context.Context, input UpdateCompanyInput) (*UpdateCompanyOutput, error) {
	company, err := uc.companyRepo.FindByID(ctx, input.CompanyID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCompanyNotFound) {
			return nil, domainerror.NewRegistryError(
				domainerror.ErrCodeCompanyNotFound,
				"company not found",
				domainerror.ErrCompanyNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find company: %w", err)
	}

	if input.LegalName != nil {
		if *input.LegalName == "" {
			return nil, domainerror.NewRegistryError(
				domainerror.ErrCodeMissingRequiredFields,
				"legal name must not be empty",
				domainerror.ErrMissingRequiredFields,
			)
		}
		company.LegalName = *input.LegalName
	}

	if input.CNPJ != nil && *input.CNPJ != company.CNPJ {
		if !isValidCNPJ(*input.CNPJ) {
			return nil, domainerror.NewRegistryError(
				domainerror.ErrCodeInvalidCNPJ,
				"CNPJ must be in the format XX.XXX.XXX/XXXX-XX",
				domainerror.ErrInvalidCNPJ,
			)
		}
		_, err := uc.companyRepo.FindByCNPJ(ctx, *input.CNPJ)
		if err == nil {
			return nil, cnpjConflictError()
		}
		if !errors.Is(err, domainerror.ErrCompanyNotFound) {
			return nil, fmt.Errorf("failed to check CNPJ existence: %w", err)
		}
		company.CNPJ = *input.CNPJ
	}

	if input.Address != nil {
		company.Address = *input.Address
	}

	company.UpdatedAt = time.Now().UTC()

	if err := uc.companyRepo.Update(ctx, company); err != nil {
		if errors.Is(err, domainerror.ErrCNPJAlreadyExists) {
			return nil, cnpjConflictError()
		}
		return nil, fmt.Errorf("failed to update company: %w", err)
	}

	return &UpdateCompanyOutput{
		Company: company,
	}, nil
}
