package project

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/expense-report/backend/internal/application/adapter"
	domainerror "github.com/expense-report/backend/internal/domain/error"
)

// DeleteProjectUseCase handles project deletion logic.
type DeleteProjectUseCase struct {
	projectRepo adapter.ProjectRepository
}

// NewDeleteProjectUseCase creates a new DeleteProjectUseCase instance.
func NewDeleteProjectUseCase(projectRepo adapter.ProjectRepository) *DeleteProjectUseCase {
	return &DeleteProjectUseCase{
		projectRepo: projectRepo,
	}
}

// Execute performs the project deletion.
func (uc *DeleteProjectUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	if _, err := uc.projectRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, domainerror.ErrProjectNotFound) {
			return domainerror.NewRegistryError(
				domainerror.ErrCodeProjectNotFound,
				"project not found",
				domainerror.ErrProjectNotFound,
			)
		}
		return fmt.Errorf("failed to find project: %w", err)
	}

	if err := uc.projectRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	return nil
}
