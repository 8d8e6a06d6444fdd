// Package error defines domain-specific errors for the expense report application.
package error

import "errors"

// Expense domain errors.
var (
	// ErrExpenseNotFound is returned when an expense id does not exist.
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrReceiptNotFound is returned when a receipt id does not exist or has no content.
	ErrReceiptNotFound = errors.New("receipt not found")

	// ErrMissingExpenseFields is returned when a required expense field is empty.
	ErrMissingExpenseFields = errors.New("missing required expense fields")

	// ErrInvalidAmount is returned when the amount is not a positive value with at most 2 decimals.
	ErrInvalidAmount = errors.New("invalid expense amount")

	// ErrReceiptRequired is returned when an expense submission carries no receipt image.
	ErrReceiptRequired = errors.New("receipt image is required")

	// ErrReceiptTooLarge is returned when the uploaded receipt exceeds the configured size limit.
	ErrReceiptTooLarge = errors.New("receipt image too large")
)

// ExpenseErrorCode defines error codes for expense errors.
type ExpenseErrorCode string

const (
	ErrCodeMissingExpenseFields ExpenseErrorCode = "EXP-010001"
	ErrCodeInvalidAmount        ExpenseErrorCode = "EXP-010002"
	ErrCodeReceiptRequired      ExpenseErrorCode = "EXP-010003"
	ErrCodeReceiptTooLarge      ExpenseErrorCode = "EXP-010004"
	ErrCodeExpenseNotFound      ExpenseErrorCode = "EXP-030001"
	ErrCodeReceiptNotFound      ExpenseErrorCode = "EXP-030002"
)

// ExpenseError represents an expense error with code and message.
type ExpenseError struct {
	Code    ExpenseErrorCode
	Message string
	Err     error
}

func (e *ExpenseError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ExpenseError) Unwrap() error {
	return e.Err
}

// NewExpenseError creates a new ExpenseError with the given code and message.
func NewExpenseError(code ExpenseErrorCode, message string, err error) *ExpenseError {
	return &ExpenseError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
