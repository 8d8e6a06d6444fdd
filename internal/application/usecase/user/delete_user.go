package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/expense-report/backend/internal/application/adapter"
	domainerror "github.com/expense-report/backend/internal/domain/error"
)

// DeleteUserUseCase handles administrator deletion logic. The last remaining
// administrator cannot be removed.
type DeleteUserUseCase struct {
	userRepo adapter.UserRepository
}

// NewDeleteUserUseCase creates a new DeleteUserUseCase instance.
func NewDeleteUserUseCase(userRepo adapter.UserRepository) *DeleteUserUseCase {
	return &DeleteUserUseCase{
		userRepo: userRepo,
	}
}

// Execute performs the administrator deletion.
func (uc *DeleteUserUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	if _, err := uc.userRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return userNotFoundError()
		}
		return fmt.Errorf("failed to find user: %w", err)
	}

	users, err := uc.userRepo.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}
	if len(users) <= 1 {
		return domainerror.NewRegistryError(
			domainerror.ErrCodeLastAdministrator,
			"cannot delete the last administrator",
			domainerror.ErrLastAdministrator,
		)
	}

	if err := uc.userRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	return nil
}
