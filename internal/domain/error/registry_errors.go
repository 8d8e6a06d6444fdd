// Package error defines domain-specific errors for the expense report application.
package error

import "errors"

// Registry errors cover the company, project, collaborator and administrator
// CRUD operations.
var (
	// ErrCompanyNotFound is returned when a company id does not exist.
	ErrCompanyNotFound = errors.New("company not found")

	// ErrCNPJAlreadyExists is returned when creating a company with a CNPJ already registered.
	ErrCNPJAlreadyExists = errors.New("CNPJ already registered")

	// ErrInvalidCNPJ is returned when the CNPJ is not in the XX.XXX.XXX/XXXX-XX format.
	ErrInvalidCNPJ = errors.New("invalid CNPJ format")

	// ErrProjectNotFound is returned when a project id does not exist.
	ErrProjectNotFound = errors.New("project not found")

	// ErrCollaboratorNotFound is returned when a collaborator id does not exist.
	ErrCollaboratorNotFound = errors.New("collaborator not found")

	// ErrCPFAlreadyExists is returned when the CPF is already registered to another principal.
	ErrCPFAlreadyExists = errors.New("CPF already registered")

	// ErrInvalidCPF is returned when the CPF is not in the XXX.XXX.XXX-XX format.
	ErrInvalidCPF = errors.New("invalid CPF format")

	// ErrInvalidCardNumber is returned when the card number is not exactly 4 digits.
	ErrInvalidCardNumber = errors.New("card number must be 4 digits")

	// ErrUserNotFound is returned when an administrator id does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrMissingRequiredFields is returned when a required form field is empty.
	ErrMissingRequiredFields = errors.New("missing required fields")

	// ErrLastAdministrator is returned when deleting the only remaining administrator.
	ErrLastAdministrator = errors.New("cannot remove the last administrator")
)

// RegistryErrorCode defines error codes for registry errors.
// Format: REG-XXYYYY where XX is category and YYYY is specific error.
type RegistryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingRequiredFields RegistryErrorCode = "REG-010001"
	ErrCodeInvalidCNPJ           RegistryErrorCode = "REG-010002"
	ErrCodeInvalidCPF            RegistryErrorCode = "REG-010003"
	ErrCodeInvalidCardNumber     RegistryErrorCode = "REG-010004"

	// Conflict errors (02XXXX)
	ErrCodeCNPJAlreadyExists RegistryErrorCode = "REG-020001"
	ErrCodeCPFAlreadyExists  RegistryErrorCode = "REG-020002"
	ErrCodeLastAdministrator RegistryErrorCode = "REG-020003"

	// Not-found errors (03XXXX)
	ErrCodeCompanyNotFound      RegistryErrorCode = "REG-030001"
	ErrCodeProjectNotFound      RegistryErrorCode = "REG-030002"
	ErrCodeCollaboratorNotFound RegistryErrorCode = "REG-030003"
	ErrCodeUserNotFound         RegistryErrorCode = "REG-030004"
)

// RegistryError represents a registry error with code and message.
type RegistryError struct {
	Code    RegistryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *RegistryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *RegistryError) Unwrap() error {
	return e.Err
}

// NewRegistryError creates a new RegistryError with the given code and message.
func NewRegistryError(code RegistryErrorCode, message string, err error) *RegistryError {
	return &RegistryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
