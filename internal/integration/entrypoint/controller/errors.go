// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/expense-report/backend/internal/domain/error"
	"github.com/expense-report/backend/internal/integration/entrypoint/dto"
)

// handleDomainError maps coded domain errors to HTTP responses. Unknown
// errors become a generic 500 without leaking internals.
func handleDomainError(ctx *gin.Context, err error) {
	var registryErr *domainerror.RegistryError
	if errors.As(err, &registryErr) {
		ctx.JSON(registryStatus(registryErr.Code), dto.ErrorResponse{
			Error: registryErr.Message,
			Code:  string(registryErr.Code),
		})
		return
	}

	var expenseErr *domainerror.ExpenseError
	if errors.As(err, &expenseErr) {
		ctx.JSON(expenseStatus(expenseErr.Code), dto.ErrorResponse{
			Error: expenseErr.Message,
			Code:  string(expenseErr.Code),
		})
		return
	}

	var reportErr *domainerror.ReportError
	if errors.As(err, &reportErr) {
		ctx.JSON(reportStatus(reportErr.Code), dto.ErrorResponse{
			Error: reportErr.Message,
			Code:  string(reportErr.Code),
		})
		return
	}

	var authErr *domainerror.AuthError
	if errors.As(err, &authErr) {
		ctx.JSON(authStatus(authErr.Code), dto.ErrorResponse{
			Error: authErr.Message,
			Code:  string(authErr.Code),
		})
		return
	}

	slog.Error("unhandled error", "error", err, "path", ctx.FullPath())
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// registryStatus maps registry error codes to HTTP status codes.
func registryStatus(code domainerror.RegistryErrorCode) int {
	switch code {
	case domainerror.ErrCodeMissingRequiredFields,
		domainerror.ErrCodeInvalidCNPJ,
		domainerror.ErrCodeInvalidCPF,
		domainerror.ErrCodeInvalidCardNumber:
		return http.StatusBadRequest
	case domainerror.ErrCodeCNPJAlreadyExists,
		domainerror.ErrCodeCPFAlreadyExists,
		domainerror.ErrCodeLastAdministrator:
		return http.StatusConflict
	case domainerror.ErrCodeCompanyNotFound,
		domainerror.ErrCodeProjectNotFound,
		domainerror.ErrCodeCollaboratorNotFound,
		domainerror.ErrCodeUserNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// expenseStatus maps expense error codes to HTTP status codes.
func expenseStatus(code domainerror.ExpenseErrorCode) int {
	switch code {
	case domainerror.ErrCodeMissingExpenseFields,
		domainerror.ErrCodeInvalidAmount,
		domainerror.ErrCodeReceiptRequired:
		return http.StatusBadRequest
	case domainerror.ErrCodeReceiptTooLarge:
		return http.StatusRequestEntityTooLarge
	case domainerror.ErrCodeExpenseNotFound,
		domainerror.ErrCodeReceiptNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// reportStatus maps report error codes to HTTP status codes.
func reportStatus(code domainerror.ReportErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidDateRange,
		domainerror.ErrCodeInvalidDimension,
		domainerror.ErrCodeInvalidExportFormat:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// authStatus maps auth error codes to HTTP status codes.
func authStatus(code domainerror.AuthErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidCredentials,
		domainerror.ErrCodeInvalidToken,
		domainerror.ErrCodeMissingToken:
		return http.StatusUnauthorized
	case domainerror.ErrCodeAccountInactive,
		domainerror.ErrCodeForbidden:
		return http.StatusForbidden
	case domainerror.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
