// Package project contains project-related use cases.
package project

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/expense-report/backend/internal/application/adapter"
	"github.com/expense-report/backend/internal/domain/entity"
	domainerror "github.com/expense-report/backend/internal/domain/error"
)

// CreateProjectInput represents the input for project creation.
type CreateProjectInput struct {
	Name      string
	Location  string
	Status    string // Optional, defaults to ProjectStatusInProgress
	CompanyID uuid.UUID
}

// CreateProjectOutput represents the output of project creation.
type CreateProjectOutput struct {
	Project *entity.Project
}

// CreateProjectUseCase handles project creation logic.
type CreateProjectUseCase struct {
	projectRepo adapter.ProjectRepository
	companyRepo adapter.CompanyRepository
}

// NewCreateProjectUseCase creates a new CreateProjectUseCase instance.
func NewCreateProjectUseCase(projectRepo adapter.ProjectRepository, companyRepo adapter.CompanyRepository) *CreateProjectUseCase {
	return &CreateProjectUseCase{
		projectRepo: projectRepo,
		companyRepo: companyRepo,
	}
}

// Execute performs the project creation.
func (uc *CreateProjectUseCase) Execute(ctx context.Context, input CreateProjectInput) (*CreateProjectOutput, error) {
	if input.Name == "" || input.Location == "" || input.CompanyID == uuid.Nil {
		return nil, domainerror.NewRegistryError(
			domainerror.ErrCodeMissingRequiredFields,
			"name, location and company are required",
			domainerror.ErrMissingRequiredFields,
		)
	}

	// The owning company must exist
	if _, err := uc.companyRepo.FindByID(ctx, input.CompanyID); err != nil {
		if errors.Is(err, domainerror.ErrCompanyNotFound) {
			return nil, domainerror.NewRegistryError(
				domainerror.ErrCodeCompanyNotFound,
				"company not found",
				domainerror.ErrCompanyNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find company: %w", err)
	}

	project := entity.NewProject(input.Name, input.Location, input.Status, input.CompanyID)

	if err := uc.projectRepo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return &CreateProjectOutput{
		Project: project,
	}, nil
}
