package collaborator

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

// UpdateCollaboratorInput represents the input for collaborator update.
// ProjectIDs, when present, replaces the full project assignment.
type UpdateCollaboratorInput struct {
	CollaboratorID uuid.UUID
	Name           *string     // Optional
	CPF            *string     // Optional
	Password       *string     // Optional, re-hashed when present
	CardNumber     *string     // Optional
	CompanyID      *uuid.UUID  // Optional
	ProjectIDs     []uuid.UUID // Optional, nil means unchanged
}

// UpdateCollaboratorOutput represents the output of collaborator update.
type UpdateCollaboratorOutput struct {
	Collaborator *entity.Collaborator
}

// UpdateCollaboratorUseCase handles collaborator update logic.
type UpdateCollaboratorUseCase struct {
	collaboratorRepo adapter.CollaboratorRepository
	companyRepo      adapter.CompanyRepository
	projectRepo      adapter.ProjectRepository
	passwordService  adapter.PasswordService
}

// NewUpdateCollaboratorUseCase creates a new UpdateCollaboratorUseCase instance.
func NewUpdateCollaboratorUseCase(
	collaboratorRepo adapter.CollaboratorRepository,
	companyRepo adapter.CompanyRepository,
	projectRepo adapter.ProjectRepository,
	passwordService adapter.PasswordService,
) *UpdateCollaboratorUseCase {
	return &UpdateCollaboratorUseCase{
		collaboratorRepo: collaboratorRepo,
		companyRepo:      companyRepo,
		projectRepo:      projectRepo,
		passwordService:  passwordService,
	}
}

// Execute performs the collaborator update.
func (uc *UpdateCollaboratorUseCase) Execute(ctx context.Context, input UpdateCollaboratorInput) (*UpdateCollaboratorOutput, error) {
	collaborator, err := uc.collaboratorRepo.FindByID(ctx, input.CollaboratorID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCollaboratorNotFound) {
			return nil, collaboratorNotFoundError()
		}
		return nil, fmt.Errorf("failed to find collaborator: %w", err)
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, domainerror.NewRegistryError(
				domainerror.ErrCodeMissingRequiredFields,
				"name must not be empty",
				domainerror.ErrMissingRequiredFields,
			)
		}
		collaborator.Name = *input.Name
	}

	if input.CPF != nil && *input.CPF != collaborator.CPF {
		if !isValidCPF(*input.CPF) {
			return nil, invalidCPFError()
		}
		_, err := uc.collaboratorRepo.FindByCPF(ctx, *input.CPF)
		if err == nil {
			return nil, cpfConflictError()
		}
		if !errors.Is(err, domainerror.ErrCollaboratorNotFound) {
			return nil, fmt.Errorf("failed to check CPF existence: %w", err)
		}
		collaborator.CPF = *input.CPF
	}

	if input.Password != nil && *input.Password != "" {
		passwordHash, err := uc.passwordService.HashPassword(*input.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		collaborator.PasswordHash = passwordHash
	}

	if input.CardNumber != nil {
		if !isValidCardNumber(*input.CardNumber) {
			return nil, domainerror.NewRegistryError(
				domainerror.ErrCodeInvalidCardNumber,
				"card number must be exactly 4 digits",
				domainerror.ErrInvalidCardNumber,
			)
		}
		collaborator.CardNumber = *input.CardNumber
	}

	if input.CompanyID != nil && *input.CompanyID != collaborator.CompanyID {
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
		collaborator.CompanyID = *input.CompanyID
	}

	if input.ProjectIDs != nil {
		projects, err := uc.projectRepo.FindByIDs(ctx, input.ProjectIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to find projects: %w", err)
		}
		if len(projects) != len(input.ProjectIDs) {
			return nil, domainerror.NewRegistryError(
				domainerror.ErrCodeProjectNotFound,
				"one or more projects not found",
				domainerror.ErrProjectNotFound,
			)
		}
		collaborator.ProjectIDs = input.ProjectIDs
	}

	collaborator.UpdatedAt = time.Now().UTC()

	if err := uc.collaboratorRepo.Update(ctx, collaborator); err != nil {
		if errors.Is(err, domainerror.ErrCPFAlreadyExists) {
			return nil, cpfConflictError()
		}
		return nil, fmt.Errorf("failed to update collaborator: %w", err)
	}

	return &UpdateCollaboratorOutput{
		Collaborator: collaborator,
	}, nil
}

func collaboratorNotFoundError() error {
	return domainerror.NewRegistryError(
		domainerror.ErrCodeCollaboratorNotFound,
		"collaborator not found",
		domainerror.ErrCollaboratorNotFound,
	)
}
