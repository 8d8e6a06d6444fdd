package auth

import (
	"context"

	"github.com/expense-report/backend/internal/application/adapter"
	domainerror "github.com/expense-report/backend/internal/domain/error"
)

// LogoutInput represents the input for logout.
type LogoutInput struct {
	RefreshToken string
}

// LogoutUseCase revokes a refresh token. Access tokens stay valid until
// expiry; only the refresh path is cut.
type LogoutUseCase struct {
	tokenService adapter.TokenService
}

// NewLogoutUseCase creates a new LogoutUseCase instance.
func NewLogoutUseCase(tokenService adapter.TokenService) *LogoutUseCase {
	return &LogoutUseCase{tokenService: tokenService}
}

// Execute performs the logout.
func (uc *LogoutUseCase) Execute(ctx context.Context, input LogoutInput) error {
	if input.RefreshToken == "" {
		return domainerror.NewAuthError(
			domainerror.ErrCodeMissingToken,
			"refresh token is required",
			domainerror.ErrMissingToken,
		)
	}

	if err := uc.tokenService.RevokeRefreshToken(ctx, input.RefreshToken); err != nil {
		return domainerror.NewAuthError(
			domainerror.ErrCodeInvalidToken,
			"invalid or expired refresh token",
			err,
		)
	}

	return nil
}
