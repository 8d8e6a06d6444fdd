package project

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

// UpdateProjectInput represents the input for project update.
type UpdateProjectInput struct {
	ProjectID uuid.UUID
	Name      *string    // Optional
	Location  *string    // Optional
	Status    *string    // Optional
	CompanyID *uuid.UUID // Optional
}

// UpdateProjectOutput represents the output of project update.
type UpdateProjectOutput struct {
	Project *entity.Project
}

// UpdateProjectUseCase handles project update logic.
type UpdateProjectUseCase struct {
	projectRepo adapter.ProjectRepository
	companyRepo adapter.CompanyRepository
}

// NewUpdateProjectUseCase creates a new UpdateProjectUseCase instance.
func NewUpdateProjectUseCase(projectRepo adapter.ProjectRepository, companyRepo adapter.CompanyRepository) *UpdateProjectUseCase {
	return &UpdateProjectUseCase{
		projectRepo: projectRepo,
		companyRepo: companyRepo,
	}
}

// Execute performs the project update.
func (uc *UpdateProjectUseCase) Execute(ctx context.Context, input UpdateProjectInput) (*UpdateProjectOutput, error) {
	project, err := uc.projectRepo.FindByID(ctx, input.ProjectID)
	if err != nil {
		if errors.Is(err, domainerror.ErrProjectNotFound) {
			return nil, domainerror.NewRegistryError(
				domainerror.ErrCodeProjectNotFound,
				"project not found",
				domainerror.ErrProjectNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, domainerror.NewRegistryError(
				domainerror.ErrCodeMissingRequiredFields,
				"name must not be empty",
				domainerror.ErrMissingRequiredFields,
			)
		}
		project.Name = *input.Name
	}

	if input.Location != nil {
		project.Location = *input.Location
	}

	if input.Status != nil && *input.Status != "" {
		project.Status = *input.Status
	}

	if input.CompanyID != nil && *input.CompanyID != project.CompanyID {
		if _, err := uc.companyRepo.FindByID(ctx, *input.CompanyID); err != nil {
			if errors.Is(err, domainerror.ErrCompanyNotFound) {
				return nil, domainerror.NewRegistryError(
					domainerror.ErrCodeCompanyNotFound,
					"company not found",
					domainerror.ErrCompanyNotFound,
				)
			}
			return nil, fmt.Errorf("failed to find company: %w", err)
		}
		project.CompanyID = *input.CompanyID
	}

	project.UpdatedAt = time.Now().UTC()

	if err := uc.projectRepo.Update(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	return &UpdateProjectOutput{
		Project: project,
	}, nil
}
