// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/expense-report/backend/internal/domain/entity"
)

// PasswordService defines password hashing operations.
type PasswordService interface {
	// HashPassword hashes a plain text password.
	HashPassword(password string) (string, error)

	// VerifyPassword compares a plain text password with a hashed password.
	VerifyPassword(hashedPassword, password string) error
}

// TokenPair holds an access/refresh token pair.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// TokenClaims holds the validated identity carried by a token.
type TokenClaims struct {
	Principal entity.Principal
	ExpiresAt time.Time
}

// TokenService defines JWT issuing and validation operations.
type TokenService interface {
	// GenerateTokenPair issues an access/refresh pair for the principal and
	// persists the refresh token so it can be revoked.
	GenerateTokenPair(ctx context.Context, principal entity.Principal) (*TokenPair, error)

	// ValidateAccessToken validates an access token and returns its claims.
	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)

	// ValidateRefreshToken validates a refresh token and returns its claims.
	ValidateRefreshToken(ctx context.Context, token string) (*TokenClaims, error)

	// RevokeRefreshToken invalidates a refresh token.
	RevokeRefreshToken(ctx context.Context, token string) error
}

// SniffedType is the result of content sniffing an uploaded file.
type SniffedType struct {
	MIME      string
	Extension string // without the leading dot
}

// ContentSniffer determines the actual type of uploaded binary content from
// its magic bytes, independent of any client-supplied filename.
type ContentSniffer interface {
	// Sniff inspects the content and returns its type. Unrecognized content
	// falls back to image/png rather than failing.
	Sniff(content []byte) SniffedType
}
