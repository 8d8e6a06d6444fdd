// Package error defines domain-specific errors for the expense report application.
package error

import "errors"

// Authentication domain errors.
var (
	// ErrInvalidCredentials is returned when the CPF/password pair does not match any principal.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAccountInactive is returned when the principal exists but has been deactivated.
	ErrAccountInactive = errors.New("account is inactive")

	// ErrInvalidToken is returned when a token is malformed, expired, or revoked.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrMissingToken is returned when no token was provided.
	ErrMissingToken = errors.New("missing token")

	// ErrForbidden is returned when the principal's role does not allow the operation.
	ErrForbidden = errors.New("operation not allowed for this role")
)

// AuthErrorCode defines error codes for authentication errors.
// Format: AUTH-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	ErrCodeInvalidCredentials AuthErrorCode = "AUTH-010001"
	ErrCodeAccountInactive    AuthErrorCode = "AUTH-010002"
	ErrCodeMissingToken       AuthErrorCode = "AUTH-020001"
	ErrCodeInvalidToken       AuthErrorCode = "AUTH-020002"
	ErrCodeForbidden          AuthErrorCode = "AUTH-030001"
	ErrCodeRateLimited        AuthErrorCode = "AUTH-040001"
)

// AuthError represents an authentication error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
