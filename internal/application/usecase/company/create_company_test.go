package company

import (
	"context"
	"errors"
	"testing"

	domainerror "github.com/expense-report/backend/internal/domain/error"
)

func TestCreateCompanyRequiredFields(t *testing.T) {
	// The required-field check runs before any repository access.
	uc := NewCreateCompanyUseCase(nil)

	tests := []struct {
		name  string
		input CreateCompanyInput
	}{
		{"missing legal name", CreateCompanyInput{CNPJ: "12.345.678/0001-90", Address: "Rua A, 100"}},
		{"missing CNPJ", CreateCompanyInput{LegalName: "Construtora Alfa LTDA", Address: "Rua A, 100"}},
		{"missing address", CreateCompanyInput{LegalName: "Construtora Alfa LTDA", CNPJ: "12.345.678/0001-90"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.input)
			if !errors.Is(err, domainerror.ErrMissingRequiredFields) {
				t.Errorf("Execute(%+v): expected ErrMissingRequiredFields, got %v", tt.input, err)
			}
		})
	}
}

func TestIsValidCNPJ(t *testing.T) {
	tests := []struct {
		name  string
		cnpj  string
		valid bool
	}{
		{"formatted", "12.345.678/0001-90", true},
		{"digits only", "12345678000190", false},
		{"missing branch", "12.345.678-90", false},
		{"letters", "12.345.67a/0001-90", false},
		{"empty", "", false},
		{"trailing garbage", "12.345.678/0001-90x", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isValidCNPJ(tt.cnpj); got != tt.valid {
				t.Errorf("isValidCNPJ(%q) = %v, want %v", tt.cnpj, got, tt.valid)
			}
		})
	}
}
