// Package export renders reports into downloadable spreadsheet and PDF
// documents.
package export

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatBRL formats an amount in Brazilian currency notation, e.g.
// "R$ 1.234,56". Negative amounts carry a leading minus sign.
func FormatBRL(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)

	negative := strings.HasPrefix(fixed, "-")
	if negative {
		fixed = fixed[1:]
	}

	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if negative {
		b.WriteString("-")
	}
	b.WriteString("R$ ")
	b.WriteString(groupThousands(intPart))
	b.WriteString(",")
	b.WriteString(fracPart)
	return b.String()
}

// groupThousands inserts dot separators every three digits from the right.
func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}

	var b strings.Builder
	head := n % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteString(".")
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// dateDisplayLayout is the dd/mm/yyyy notation used in exported documents.
const dateDisplayLayout = "02/01/2006"
