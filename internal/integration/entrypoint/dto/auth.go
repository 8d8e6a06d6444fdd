package dto

import "github.com/expense-report/backend/internal/domain/entity"

// LoginRequest represents the request body for login.
type LoginRequest struct {
	CPF      string `json:"cpf" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest represents the request body for token refresh.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// LogoutRequest represents the request body for logout.
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// PrincipalResponse represents the authenticated principal in API responses.
type PrincipalResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// AuthResponse represents the response for authentication endpoints.
type AuthResponse struct {
	AccessToken  string            `json:"access_token"`
	RefreshToken string            `json:"refresh_token"`
	Principal    PrincipalResponse `json:"principal"`
}

// TokenResponse represents the response for token refresh.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// ToPrincipalResponse converts a domain Principal to a PrincipalResponse DTO.
func ToPrincipalResponse(principal entity.Principal) PrincipalResponse {
	return PrincipalResponse{
		ID:   principal.ID.String(),
		Name: principal.Name,
		Role: string(principal.Role),
	}
}
