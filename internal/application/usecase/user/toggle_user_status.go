package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/expense-report/backend/internal/application/adapter"
	"github.com/expense-report/backend/internal/domain/entity"
	domainerror "github.com/expense-report/backend/internal/domain/error"
)

// ToggleUserStatusOutput represents the output of a status toggle.
type ToggleUserStatusOutput struct {
	User *entity.User
}

// ToggleUserStatusUseCase flips the active flag of an administrator.
// Deactivated administrators keep their records but can no longer log in.
type ToggleUserStatusUseCase struct {
	userRepo adapter.UserRepository
}

// NewToggleUserStatusUseCase creates a new ToggleUserStatusUseCase instance.
func NewToggleUserStatusUseCase(userRepo adapter.UserRepository) *ToggleUserStatusUseCase {
	return &ToggleUserStatusUseCase{
		userRepo: userRepo,
	}
}

// Execute performs the status toggle.
func (uc *ToggleUserStatusUseCase) Execute(ctx context.Context, id uuid.UUID) (*ToggleUserStatusOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, userNotFoundError()
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	user.Active = !user.Active

	if err := uc.userRepo.SetActive(ctx, id, user.Active); err != nil {
		return nil, fmt.Errorf("failed to toggle user status: %w", err)
	}

	return &ToggleUserStatusOutput{
		User: user,
	}, nil
}
