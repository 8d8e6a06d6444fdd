package project

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	domainerror "github.com/expense-report/backend/internal/domain/error"
)

func TestCreateProjectRequiredFields(t *testing.T) {
	// The required-field check runs before any repository access.
	uc := NewCreateProjectUseCase(nil, nil)

	tests := []struct {
		name  string
		input CreateProjectInput
	}{
		{"missing name", CreateProjectInput{Location: "São Paulo", CompanyID: uuid.New()}},
		{"missing location", CreateProjectInput{Name: "Obra Centro", CompanyID: uuid.New()}},
		{"missing company", CreateProjectInput{Name: "Obra Centro", Location: "São Paulo"}},
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
