package expense

import (
	"errors"
	"testing"

	domainerror "github.com/expense-report/backend/internal/domain/error"
)

func TestFileNameSlug(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"two words", "Ana Souza", "ana_souza"},
		{"three words", "João da Silva", "joão_da_silva"},
		{"already lowercase", "ana", "ana"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fileNameSlug(tt.in); got != tt.want {
				t.Errorf("fileNameSlug(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseAmount(t *testing.T) {
	t.Run("accepts valid amounts", func(t *testing.T) {
		for _, raw := range []string{"150.50", "0.01", "1234567.89", "10", "10.5"} {
			amount, err := parseAmount(raw)
			if err != nil {
				t.Errorf("parseAmount(%q): unexpected error: %v", raw, err)
				continue
			}
			if amount.String() != raw && amount.StringFixed(2) == "0.00" {
				t.Errorf("parseAmount(%q) = %s", raw, amount)
			}
		}
	})

	t.Run("rejects invalid amounts", func(t *testing.T) {
		for _, raw := range []string{"", "abc", "0", "-10.00", "10.505", "10,50"} {
			_, err := parseAmount(raw)
			if !errors.Is(err, domainerror.ErrInvalidAmount) {
				t.Errorf("parseAmount(%q): expected ErrInvalidAmount, got %v", raw, err)
			}
		}
	})
}
