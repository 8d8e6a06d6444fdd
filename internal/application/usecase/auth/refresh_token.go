package auth

import (
	"context"

	"github.com/expense-report/backend/internal/application/adapter"
	"github.com/expense-report/backend/internal/domain/entity"
	domainerror "github.com/expense-report/backend/internal/domain/error"
)

// RefreshTokenInput represents the input for token refresh.
type RefreshTokenInput struct {
	RefreshToken string
}

// RefreshTokenOutput represents the output of a token refresh.
type RefreshTokenOutput struct {
	AccessToken  string
	RefreshToken string
	Principal    entity.Principal
}

// RefreshTokenUseCase exchanges a valid refresh token for a new token pair.
// The presented refresh token is revoked so it cannot be replayed.
type RefreshTokenUseCase struct {
	tokenService adapter.TokenService
}

// NewRefreshTokenUseCase creates a new RefreshTokenUseCase instance.
func NewRefreshTokenUseCase(tokenService adapter.TokenService) *RefreshTokenUseCase {
	return &RefreshTokenUseCase{tokenService: tokenService}
}

// Execute performs the token refresh.
func (uc *RefreshTokenUseCase) Execute(ctx context.Context, input RefreshTokenInput) (*RefreshTokenOutput, error) {
	if input.RefreshToken == "" {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeMissingToken,
			"refresh token is required",
			domainerror.ErrMissingToken,
		)
	}

	claims, err := uc.tokenService.ValidateRefreshToken(ctx, input.RefreshToken)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidToken,
			"invalid or expired refresh token",
			err,
		)
	}

	if err := uc.tokenService.RevokeRefreshToken(ctx, input.RefreshToken); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidToken,
			"failed to rotate refresh token",
			err,
		)
	}

	pair, err := uc.tokenService.GenerateTokenPair(ctx, claims.Principal)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidToken,
			"failed to issue tokens",
			err,
		)
	}

	return &RefreshTokenOutput{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		Principal:    claims.Principal,
	}, nil
}
