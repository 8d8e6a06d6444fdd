package company

import (
	"context"
	"fmt"

	"github.com/expense-report/backend/internal/application/adapter"
	"github.com/expense-report/backend/internal/domain/entity"
)

// ListCompaniesOutput represents the output of company listing.
type ListCompaniesOutput struct {
	Companies []*entity.Company
}

// ListCompaniesUseCase handles company listing logic.
type ListCompaniesUseCase struct {
	companyRepo adapter.CompanyRepository
}

// NewListCompaniesUseCase creates a new ListCompaniesUseCase instance.
func NewListCompaniesUseCase(companyRepo adapter.CompanyRepository) *ListCompaniesUseCase {
	return &ListCompaniesUseCase{
		companyRepo: companyRepo,
	}
}

// Execute performs the company listing.
func (uc *ListCompaniesUseCase) Execute(ctx context.Context) (*ListCompaniesOutput, error) {
	companies, err := uc.companyRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}

	return &ListCompaniesOutput{
		Companies: companies,
	}, nil
}
