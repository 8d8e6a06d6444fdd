// Package collaborator contains collaborator-related use cases.
package collaborator

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/google/uuid"

	"github.com/expense-report/backend/internal/application/adapter"
	"github.com/expense-report/backend/internal/domain/entity"
	domainerror "github.com/expense-report/backend/internal/domain/error"
)

// Compiled once at package level for performance.
var (
	cpfRegex  = regexp.MustCompile(`^\d{3}\.\d{3}\.\d{3}-\d{2}$`)
	cardRegex = regexp.MustCompile(`^\d{4}$`)
)

// CreateCollaboratorInput represents the input for collaborator creation.
type CreateCollaboratorInput struct {
	Name       string
	CPF        string
	Password   string
	CardNumber string
	CompanyID  uuid.UUID
	ProjectIDs []uuid.UUID
}

// CreateCollaboratorOutput represents the output of collaborator creation.
type CreateCollaboratorOutput struct {
	Collaborator *entity.Collaborator
}

// CreateCollaboratorUseCase handles collaborator creation logic.
type CreateCollaboratorUseCase struct {
	collaboratorRepo adapter.CollaboratorRepository
	companyRepo      adapter.CompanyRepository
	projectRepo      adapter.ProjectRepository
	passwordService  adapter.PasswordService
}

// NewCreateCollaboratorUseCase creates a new CreateCollaboratorUseCase instance.
func NewCreateCollaboratorUseCase(
	collaboratorRepo adapter.CollaboratorRepository,
	companyRepo adapter.CompanyRepository,
	projectRepo adapter.ProjectRepository,
	passwordService adapter.PasswordService,
) *CreateCollaboratorUseCase {
	return &CreateCollaboratorUseCase{
		collaboratorRepo: collaboratorRepo,
		companyRepo:      companyRepo,
		projectRepo:      projectRepo,
		passwordService:  passwordService,
	}
}

// Execute performs the collaborator creation.
func (uc *CreateCollaboratorUseCase) Execute(ctx context.Context, input CreateCollaboratorInput) (*CreateCollaboratorOutput, error) {
	if input.Name == "" || input.CPF == "" || input.Password == "" || input.CardNumber == "" {
		return nil, domainerror.NewRegistryError(
			domainerror.ErrCodeMissingRequiredFields,
			"name, CPF, password and card number are required",
			domainerror.ErrMissingRequiredFields,
		)
	}

	if !isValidCPF(input.CPF) {
		return nil, invalidCPFError()
	}

	if !isValidCardNumber(input.CardNumber) {
		return nil, domainerror.NewRegistryError(
			domainerror.ErrCodeInvalidCardNumber,
			"card number must be exactly 4 digits",
			domainerror.ErrInvalidCardNumber,
		)
	}

	// Check CPF uniqueness before inserting
	_, err := uc.collaboratorRepo.FindByCPF(ctx, input.CPF)
	if err == nil {
		return nil, cpfConflictError()
	}
	if !errors.Is(err, domainerror.ErrCollaboratorNotFound) {
		return nil, fmt.Errorf("failed to check CPF existence: %w", err)
	}

	if input.CompanyID != uuid.Nil {
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
	}

	if err := uc.checkProjects(ctx, input.ProjectIDs); err != nil {
		return nil, err
	}

	passwordHash, err := uc.passwordService.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	collaborator := entity.NewCollaborator(
		input.Name,
		input.CPF,
		passwordHash,
		input.CardNumber,
		input.CompanyID,
		input.ProjectIDs,
	)

	if err := uc.collaboratorRepo.Create(ctx, collaborator); err != nil {
		if errors.Is(err, domainerror.ErrCPFAlreadyExists) {
			return nil, cpfConflictError()
		}
		return nil, fmt.Errorf("failed to create collaborator: %w", err)
	}

	return &CreateCollaboratorOutput{
		Collaborator: collaborator,
	}, nil
}

// checkProjects ensures that every assigned project exists.
func (uc *CreateCollaboratorUseCase) checkProjects(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	projects, err := uc.projectRepo.FindByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("failed to find projects: %w", err)
	}
	if len(projects) != len(ids) {
		return domainerror.NewRegistryError(
			domainerror.ErrCodeProjectNotFound,
			"one or more projects not found",
			domainerror.ErrProjectNotFound,
		)
	}
	return nil
}

// isValidCPF validates the formatted CPF notation.
func isValidCPF(cpf string) bool {
	return cpfRegex.MatchString(cpf)
}

// isValidCardNumber validates the 4-digit card suffix.
func isValidCardNumber(card string) bool {
	return cardRegex.MatchString(card)
}

func invalidCPFError() error {
	return domainerror.NewRegistryError(
		domainerror.ErrCodeInvalidCPF,
		"CPF must be in the format XXX.XXX.XXX-XX",
		domainerror.ErrInvalidCPF,
	)
}

func cpfConflictError() error {
	return domainerror.NewRegistryError(
		domainerror.ErrCodeCPFAlreadyExists,
		"a collaborator with this CPF already exists",
		domainerror.ErrCPFAlreadyExists,
	)
}
