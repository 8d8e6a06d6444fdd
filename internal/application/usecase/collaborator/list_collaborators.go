package collaborator

import (
	"context"
	"fmt"

	"github.com/expense-report/backend/internal/application/adapter"
	"github.com/expense-report/backend/internal/domain/entity"
)

// ListCollaboratorsOutput represents the output of collaborator listing.
type ListCollaboratorsOutput struct {
	Collaborators []*entity.Collaborator
}

// ListCollaboratorsUseCase handles collaborator listing logic.
type ListCollaboratorsUseCase struct {
	collaboratorRepo adapter.CollaboratorRepository
}

// NewListCollaboratorsUseCase creates a new ListCollaboratorsUseCase instance.
func NewListCollaboratorsUseCase(collaboratorRepo adapter.CollaboratorRepository) *ListCollaboratorsUseCase {
	return &ListCollaboratorsUseCase{
		collaboratorRepo: collaboratorRepo,
	}
}

// Execute performs the collaborator listing.
func (uc *ListCollaboratorsUseCase) Execute(ctx context.Context) (*ListCollaboratorsOutput, error) {
	collaborators, err := uc.collaboratorRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list collaborators: %w", err)
	}

	return &ListCollaboratorsOutput{
		Collaborators: collaborators,
	}, nil
}
