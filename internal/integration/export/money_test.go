package export

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatBRL(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		want   string
	}{
		{"zero", "0", "R$ 0,00"},
		{"cents only", "0.05", "R$ 0,05"},
		{"no grouping", "123.45", "R$ 123,45"},
		{"exactly three digits", "999.99", "R$ 999,99"},
		{"one group", "1234.56", "R$ 1.234,56"},
		{"two groups", "1234567.89", "R$ 1.234.567,89"},
		{"rounds to two places", "10.1", "R$ 10,10"},
		{"negative", "-1234.56", "-R$ 1.234,56"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatBRL(decimal.RequireFromString(tt.amount))
			if got != tt.want {
				t.Errorf("FormatBRL(%s): expected %q, got %q", tt.amount, tt.want, got)
			}
		})
	}
}

func TestGroupThousands(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1", "1"},
		{"123", "123"},
		{"1234", "1.234"},
		{"123456", "123.456"},
		{"1234567", "1.234.567"},
	}

	for _, tt := range tests {
		if got := groupThousands(tt.in); got != tt.want {
			t.Errorf("groupThousands(%s): expected %s, got %s", tt.in, tt.want, got)
		}
	}
}
