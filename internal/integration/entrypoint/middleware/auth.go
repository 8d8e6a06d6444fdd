// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/expense-report/backend/internal/application/adapter"
	"github.com/expense-report/backend/internal/domain/entity"
	domainerror "github.com/expense-report/backend/internal/domain/error"
	"github.com/expense-report/backend/internal/integration/entrypoint/dto"
)

// principalKey is the Gin context key holding the authenticated principal.
const principalKey = "principal"

// AuthMiddleware provides JWT authentication and role enforcement.
type AuthMiddleware struct {
	tokenService adapter.TokenService
}

// NewAuthMiddleware creates a new auth middleware instance.
func NewAuthMiddleware(tokenService adapter.TokenService) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: tokenService,
	}
}

// Authenticate returns a Gin middleware handler that enforces JWT
// authentication. The principal from the token claims is attached to the
// request context; the role claim is trusted without a database round trip.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "Authorization header is required", domainerror.ErrCodeMissingToken)
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			abortUnauthorized(c, "Invalid authorization header format", domainerror.ErrCodeInvalidToken)
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == "" {
			abortUnauthorized(c, "Token is required", domainerror.ErrCodeMissingToken)
			return
		}

		claims, err := m.tokenService.ValidateAccessToken(c.Request.Context(), token)
		if err != nil {
			abortUnauthorized(c, "Invalid or expired token", domainerror.ErrCodeInvalidToken)
			return
		}

		c.Set(principalKey, claims.Principal)
		c.Next()
	}
}

// RequireAdmin returns a Gin middleware handler that rejects non-admin
// principals. It must run after Authenticate.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipalFromContext(c)
		if !ok || !principal.IsAdmin() {
			c.JSON(http.StatusForbidden, dto.ErrorResponse{
				Error: "Administrator access required",
				Code:  string(domainerror.ErrCodeForbidden),
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireCollaborator returns a Gin middleware handler that rejects non-
// collaborator principals. It must run after Authenticate.
func (m *AuthMiddleware) RequireCollaborator() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipalFromContext(c)
		if !ok || principal.Role != entity.RoleCollaborator {
			c.JSON(http.StatusForbidden, dto.ErrorResponse{
				Error: "Collaborator access required",
				Code:  string(domainerror.ErrCodeForbidden),
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetPrincipalFromContext extracts the authenticated principal from the Gin
// context.
func GetPrincipalFromContext(c *gin.Context) (entity.Principal, bool) {
	value, exists := c.Get(principalKey)
	if !exists {
		return entity.Principal{}, false
	}
	principal, ok := value.(entity.Principal)
	return principal, ok
}

func abortUnauthorized(c *gin.Context, message string, code domainerror.AuthErrorCode) {
	c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: message,
		Code:  string(code),
	})
	c.Abort()
}
