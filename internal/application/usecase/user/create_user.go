// Package user contains administrator account use cases.
package user

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/expense-report/backend/internal/application/adapter"
	"github.com/expense-report/backend/internal/domain/entity"
	domainerror "github.com/expense-report/backend/internal/domain/error"
)

// cpfRegex is compiled once at package level for performance.
var cpfRegex = regexp.MustCompile(`^\d{3}\.\d{3}\.\d{3}-\d{2}$`)

// CreateUserInput represents the input for administrator creation.
type CreateUserInput struct {
	Name     string
	CPF      string
	Password string
}

// CreateUserOutput represents the output of administrator creation.
type CreateUserOutput struct {
	User *entity.User
}

// CreateUserUseCase handles administrator creation logic.
type CreateUserUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
}

// NewCreateUserUseCase creates a new CreateUserUseCase instance.
func NewCreateUserUseCase(userRepo adapter.UserRepository, passwordService adapter.PasswordService) *CreateUserUseCase {
	return &CreateUserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
	}
}

// Execute performs the administrator creation.
func (uc *CreateUserUseCase) Execute(ctx context.Context, input CreateUserInput) (*CreateUserOutput, error) {
	if input.Name == "" || input.CPF == "" || input.Password == "" {
		return nil, domainerror.NewRegistryError(
			domainerror.ErrCodeMissingRequiredFields,
			"name, CPF and password are required",
			domainerror.ErrMissingRequiredFields,
		)
	}

	if !isValidCPF(input.CPF) {
		return nil, invalidCPFError()
	}

	// Check CPF uniqueness before inserting
	_, err := uc.userRepo.FindByCPF(ctx, input.CPF)
	if err == nil {
		return nil, cpfConflictError()
	}
	if !errors.Is(err, domainerror.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check CPF existence: %w", err)
	}

	passwordHash, err := uc.passwordService.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := entity.NewUser(input.Name, input.CPF, passwordHash)

	if err := uc.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domainerror.ErrCPFAlreadyExists) {
			return nil, cpfConflictError()
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &CreateUserOutput{
		User: user,
	}, nil
}

// isValidCPF validates the formatted CPF notation.
func isValidCPF(cpf string) bool {
	return cpfRegex.MatchString(cpf)
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
		"a user with this CPF already exists",
		domainerror.ErrCPFAlreadyExists,
	)
}

func userNotFoundError() error {
	return domainerror.NewRegistryError(
		domainerror.ErrCodeUserNotFound,
		"user not found",
		domainerror.ErrUserNotFound,
	)
}
