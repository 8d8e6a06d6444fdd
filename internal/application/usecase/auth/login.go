// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"errors"
	"log/slog"

	"github.com/expense-report/backend/internal/application/adapter"
	"github.com/expense-report/backend/internal/domain/entity"
	domainerror "github.com/expense-report/backend/internal/domain/error"
)

// LoginInput represents the input for login.
type LoginInput struct {
	CPF      string
	Password string
}

// LoginOutput represents the output of a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	Principal    entity.Principal
}

// LoginUseCase authenticates a principal by CPF and password. Administrators
// are tried first, then collaborators, preserving the historical resolution
// order when both tables hold the same CPF.
type LoginUseCase struct {
	userRepo         adapter.UserRepository
	collaboratorRepo adapter.CollaboratorRepository
	passwordService  adapter.PasswordService
	tokenService     adapter.TokenService
}

// NewLoginUseCase creates a new LoginUseCase instance.
func NewLoginUseCase(
	userRepo adapter.UserRepository,
	collaboratorRepo adapter.CollaboratorRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:         userRepo,
		collaboratorRepo: collaboratorRepo,
		passwordService:  passwordService,
		tokenService:     tokenService,
	}
}

// Execute performs the login.
func (uc *LoginUseCase) Execute(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	principal, err := uc.resolvePrincipal(ctx, input.CPF, input.Password)
	if err != nil {
		return nil, err
	}

	pair, err := uc.tokenService.GenerateTokenPair(ctx, *principal)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidCredentials,
			"failed to issue tokens",
			err,
		)
	}

	slog.Info("principal logged in", "principal_id", principal.ID, "role", principal.Role)

	return &LoginOutput{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		Principal:    *principal,
	}, nil
}

// resolvePrincipal matches the CPF against administrators, then collaborators.
func (uc *LoginUseCase) resolvePrincipal(ctx context.Context, cpf, password string) (*entity.Principal, error) {
	user, err := uc.userRepo.FindByCPF(ctx, cpf)
	if err == nil {
		if verifyErr := uc.passwordService.VerifyPassword(user.PasswordHash, password); verifyErr == nil {
			if !user.Active {
				return nil, inactiveError()
			}
			return &entity.Principal{ID: user.ID, Name: user.Name, Role: entity.RoleAdmin}, nil
		}
	} else if !errors.Is(err, domainerror.ErrUserNotFound) {
		return nil, err
	}

	collaborator, err := uc.collaboratorRepo.FindByCPF(ctx, cpf)
	if err == nil {
		if verifyErr := uc.passwordService.VerifyPassword(collaborator.PasswordHash, password); verifyErr == nil {
			if !collaborator.Active {
				return nil, inactiveError()
			}
			return &entity.Principal{ID: collaborator.ID, Name: collaborator.Name, Role: entity.RoleCollaborator}, nil
		}
	} else if !errors.Is(err, domainerror.ErrCollaboratorNotFound) {
		return nil, err
	}

	return nil, domainerror.NewAuthError(
		domainerror.ErrCodeInvalidCredentials,
		"invalid CPF or password",
		domainerror.ErrInvalidCredentials,
	)
}

func inactiveError() error {
	return domainerror.NewAuthError(
		domainerror.ErrCodeAccountInactive,
		"account is inactive",
		domainerror.ErrAccountInactive,
	)
}
