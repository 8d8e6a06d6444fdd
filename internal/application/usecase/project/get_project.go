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

// GetProjectOutput represents the output of a single project lookup.
type GetProjectOutput struct {
	Project *entity.Project
}

// GetProjectUseCase handles single project lookup logic.
type GetProjectUseCase struct {
	projectRepo adapter.ProjectRepository
}

// NewGetProjectUseCase creates a new GetProjectUseCase instance.
func NewGetProjectUseCase(projectRepo adapter.ProjectRepository) *GetProjectUseCase {
	return &GetProjectUseCase{
		projectRepo: projectRepo,
	}
}

// Execute performs the project lookup.
func (uc *GetProjectUseCase) Execute(ctx context.Context, id uuid.UUID) (*GetProjectOutput, error) {
	project, err := uc.projectRepo.FindByID(ctx, id)
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

	return &GetProjectOutput{
		Project: project,
	}, nil
}
