package collaborator

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/expense-report/backend/internal/application/adapter"
	"github.com/expense-report/backend/internal/domain/entity"
	domainerror "github.com/expense-report/backend/internal/domain/error"
)

// GetCollaboratorOutput represents the output of a single collaborator lookup.
type GetCollaboratorOutput struct {
	Collaborator *entity.Collaborator
	Projects     []*entity.Project
}

// GetCollaboratorUseCase handles single collaborator lookup logic, resolving
// the assigned projects alongside the record.
type GetCollaboratorUseCase struct {
	collaboratorRepo adapter.CollaboratorRepository
	projectRepo      adapter.ProjectRepository
}

// NewGetCollaboratorUseCase creates a new GetCollaboratorUseCase instance.
func NewGetCollaboratorUseCase(collaboratorRepo adapter.CollaboratorRepository, projectRepo adapter.ProjectRepository) *GetCollaboratorUseCase {
	return &GetCollaboratorUseCase{
		collaboratorRepo: collaboratorRepo,
		projectRepo:      projectRepo,
	}
}

// Execute performs the collaborator lookup.
func (uc *GetCollaboratorUseCase) Execute(ctx context.Context, id uuid.UUID) (*GetCollaboratorOutput, error) {
	collaborator, err := uc.collaboratorRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrCollaboratorNotFound) {
			return nil, collaboratorNotFoundError()
		}
		return nil, fmt.Errorf("failed to find collaborator: %w", err)
	}

	var projects []*entity.Project
	if len(collaborator.ProjectIDs) > 0 {
		projects, err = uc.projectRepo.FindByIDs(ctx, collaborator.ProjectIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to find projects: %w", err)
		}
	}

	return &GetCollaboratorOutput{
		Collaborator: collaborator,
		Projects:     projects,
	}, nil
}
