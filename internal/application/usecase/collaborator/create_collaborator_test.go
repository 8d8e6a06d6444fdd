package collaborator

import "testing"

func TestIsValidCPF(t *testing.T) {
	tests := []struct {
		name  string
		cpf   string
		valid bool
	}{
		{"formatted", "123.456.789-00", true},
		{"digits only", "12345678900", false},
		{"wrong separator", "123-456-789.00", false},
		{"letters", "123.456.78a-00", false},
		{"empty", "", false},
		{"trailing garbage", "123.456.789-001", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isValidCPF(tt.cpf); got != tt.valid {
				t.Errorf("isValidCPF(%q) = %v, want %v", tt.cpf, got, tt.valid)
			}
		})
	}
}

func TestIsValidCardNumber(t *testing.T) {
	tests := []struct {
		name  string
		card  string
		valid bool
	}{
		{"four digits", "1234", true},
		{"three digits", "123", false},
		{"five digits", "12345", false},
		{"letters", "12a4", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isValidCardNumber(tt.card); got != tt.valid {
				t.Errorf("isValidCardNumber(%q) = %v, want %v", tt.card, got, tt.valid)
			}
		})
	}
}
