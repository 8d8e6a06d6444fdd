package company

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/expense-report/backend/internal/application/adapter"
	"github.com/expense-report/backend/internal/domain/entity"
	domainerror "github.com/expense-report/backend/internal/domain/error"
)

// GetCompanyOutput represents the output of a single company lookup.
type GetCompanyOutput struct {
	Company *entity.Company
}

// GetCompanyUseCase handles single company lookup logic.
type GetCompanyUseCase struct {
	companyRepo adapter.CompanyRepository
}

// NewGetCompanyUseCase creates a new GetCompanyUseCase instance.
func NewGetCompanyUseCase(companyRepo adapter.CompanyRepository) *GetCompanyUseCase {
	return &GetCompanyUseCase{
		companyRepo: companyRepo,
	}
}

// Execute performs the company lookup.
func (uc *GetCompanyUseCase) Execute(ctx context.Context, id uuid.UUID) (*GetCompanyOutput, error) {
	company, err := uc.companyRepo.FindByID(ctx, id)
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

	return &GetCompanyOutput{
		Company: company,
	}, nil
}
