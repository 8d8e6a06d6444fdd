package user

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

// UpdateUserInput represents the input for administrator update.
type UpdateUserInput struct {
	UserID   uuid.UUID
	Name     *string // Optional
	CPF      *string // Optional
	Password *string // Optional, re-hashed when present
}

// UpdateUserOutput represents the output of administrator update.
type UpdateUserOutput struct {
	User *entity.User
}

// UpdateUserUseCase handles administrator update logic.
type UpdateUserUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
}

// NewUpdateUserUseCase creates a new UpdateUserUseCase instance.
func NewUpdateUserUseCase(userRepo adapter.UserRepository, passwordService adapter.PasswordService) *UpdateUserUseCase {
	return &UpdateUserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
	}
}

// Execute performs the administrator update.
func (uc *UpdateUserUseCase) Execute(ctx context.Context, input UpdateUserInput) (*UpdateUserOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, userNotFoundError()
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, domainerror.NewRegistryError(
				domainerror.ErrCodeMissingRequiredFields,
				"name must not be empty",
				domainerror.ErrMissingRequiredFields,
			)
		}
		user.Name = *input.Name
	}

	if input.CPF != nil && *input.CPF != user.CPF {
		if !isValidCPF(*input.CPF) {
			return nil, invalidCPFError()
		}
		_, err := uc.userRepo.FindByCPF(ctx, *input.CPF)
		if err == nil {
			return nil, cpfConflictError()
		}
		if !errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, fmt.Errorf("failed to check CPF existence: %w", err)
		}
		user.CPF = *input.CPF
	}

	if input.Password != nil && *input.Password != "" {
		passwordHash, err := uc.passwordService.HashPassword(*input.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = passwordHash
	}

	user.UpdatedAt = time.Now().UTC()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, domainerror.ErrCPFAlreadyExists) {
			return nil, cpfConflictError()
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return &UpdateUserOutput{
		User: user,
	}, nil
}
