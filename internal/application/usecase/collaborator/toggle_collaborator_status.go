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

// ToggleCollaboratorStatusOutput represents the output of a status toggle.
type ToggleCollaboratorStatusOutput struct {
	Collaborator *entity.Collaborator
}

// ToggleCollaboratorStatusUseCase flips the active flag of a collaborator.
// Deactivated collaborators keep their history but can no longer log in.
type ToggleCollaboratorStatusUseCase struct {
	collaboratorRepo adapter.CollaboratorRepository
}

// NewToggleCollaboratorStatusUseCase creates a new ToggleCollaboratorStatusUseCase instance.
func NewToggleCollaboratorStatusUseCase(collaboratorRepo adapter.CollaboratorRepository) *ToggleCollaboratorStatusUseCase {
	return &ToggleCollaboratorStatusUseCase{
		collaboratorRepo: collaboratorRepo,
	}
}

// Execute performs the status toggle.
func (uc *ToggleCollaboratorStatusUseCase) Execute(ctx context.Context, id uuid.UUID) (*ToggleCollaboratorStatusOutput, error) {
	collaborator, err := uc.collaboratorRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrCollaboratorNotFound) {
			return nil, collaboratorNotFoundError()
		}
		return nil, fmt.Errorf("failed to find collaborator: %w", err)
	}

	collaborator.Active = !collaborator.Active

	if err := uc.collaboratorRepo.SetActive(ctx, id, collaborator.Active); err != nil {
		return nil, fmt.Errorf("failed to toggle collaborator status: %w", err)
	}

	return &ToggleCollaboratorStatusOutput{
		Collaborator: collaborator,
	}, nil
}
