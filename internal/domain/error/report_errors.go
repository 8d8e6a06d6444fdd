// Package error defines domain-specific errors for the expense report application.
package error

import "errors"

// Report pipeline errors.
var (
	// ErrInvalidDateRange is returned when a date bound is not a parseable YYYY-MM-DD value.
	ErrInvalidDateRange = errors.New("invalid date range")

	// ErrInvalidDimension is returned when the requested grouping dimension is unknown.
	ErrInvalidDimension = errors.New("invalid report dimension")

	// ErrInvalidExportFormat is returned when the requested export format is unknown.
	ErrInvalidExportFormat = errors.New("invalid export format")
)

// ReportErrorCode defines error codes for report errors.
type ReportErrorCode string

const (
	ErrCodeInvalidDateRange    ReportErrorCode = "REP-010001"
	ErrCodeInvalidDimension    ReportErrorCode = "REP-010002"
	ErrCodeInvalidExportFormat ReportErrorCode = "REP-010003"
	ErrCodeRenderFailed        ReportErrorCode = "REP-020001"
)

// ReportError represents a report error with code and message.
type ReportError struct {
	Code    ReportErrorCode
	Message string
	Err     error
}

func (e *ReportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError creates a new ReportError with the given code and message.
func NewReportError(code ReportErrorCode, message string, err error) *ReportError {
	return &ReportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
