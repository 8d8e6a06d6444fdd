package entity

import (
	"testing"

	"github.com/shopspring/decimal"
)

func expenseWith(collaborator, card, project, company, amount string) *Expense {
	return &Expense{
		CollaboratorName: collaborator,
		CardNumber:       card,
		ProjectName:      project,
		CompanyName:      company,
		Amount:           decimal.RequireFromString(amount),
	}
}

func TestBuildReport_GroupsByCollaborator(t *testing.T) {
	expenses := []*Expense{
		expenseWith("Ana", "1111", "Obra A", "Acme", "100.00"),
		expenseWith("Bruno", "2222", "Obra B", "Acme", "25.25"),
		expenseWith("Ana", "1111", "Obra A", "Acme", "50.50"),
	}

	report := BuildReport(DimensionCollaborator, expenses)

	if len(report.Groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(report.Groups))
	}

	if report.Groups[0].Key != "Ana" {
		t.Errorf("expected first group Ana, got %s", report.Groups[0].Key)
	}
	if report.Groups[1].Key != "Bruno" {
		t.Errorf("expected second group Bruno, got %s", report.Groups[1].Key)
	}

	if got := report.Groups[0].Subtotal.StringFixed(2); got != "150.50" {
		t.Errorf("expected Ana subtotal 150.50, got %s", got)
	}
	if got := report.Groups[1].Subtotal.StringFixed(2); got != "25.25" {
		t.Errorf("expected Bruno subtotal 25.25, got %s", got)
	}
	if got := report.GrandTotal.StringFixed(2); got != "175.75" {
		t.Errorf("expected grand total 175.75, got %s", got)
	}
}

func TestBuildReport_PreservesInsertionOrder(t *testing.T) {
	expenses := []*Expense{
		expenseWith("Carla", "3333", "", "", "1.00"),
		expenseWith("Ana", "1111", "", "", "1.00"),
		expenseWith("Bruno", "2222", "", "", "1.00"),
		expenseWith("Ana", "1111", "", "", "1.00"),
	}

	report := BuildReport(DimensionCollaborator, expenses)

	want := []string{"Carla", "Ana", "Bruno"}
	if len(report.Groups) != len(want) {
		t.Fatalf("expected %d groups, got %d", len(want), len(report.Groups))
	}
	for i, key := range want {
		if report.Groups[i].Key != key {
			t.Errorf("group %d: expected %s, got %s", i, key, report.Groups[i].Key)
		}
	}

	if len(report.Groups[1].Expenses) != 2 {
		t.Errorf("expected 2 expenses in the Ana group, got %d", len(report.Groups[1].Expenses))
	}
}

func TestBuildReport_EmptyKeyBecomesUnknown(t *testing.T) {
	tests := []struct {
		name      string
		dimension ReportDimension
		expense   *Expense
	}{
		{"empty project name", DimensionProject, expenseWith("Ana", "1111", "", "Acme", "10.00")},
		{"blank company name", DimensionCompany, expenseWith("Ana", "1111", "Obra A", "   ", "10.00")},
		{"empty card number", DimensionCard, expenseWith("Ana", "", "Obra A", "Acme", "10.00")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := BuildReport(tt.dimension, []*Expense{tt.expense})

			if len(report.Groups) != 1 {
				t.Fatalf("expected 1 group, got %d", len(report.Groups))
			}
			if report.Groups[0].Key != UnknownGroupKey {
				t.Errorf("expected key %q, got %q", UnknownGroupKey, report.Groups[0].Key)
			}
		})
	}
}

func TestBuildReport_EmptyInput(t *testing.T) {
	report := BuildReport(DimensionCompany, nil)

	if len(report.Groups) != 0 {
		t.Errorf("expected no groups, got %d", len(report.Groups))
	}
	if got := report.GrandTotal.StringFixed(2); got != "0.00" {
		t.Errorf("expected grand total 0.00, got %s", got)
	}
}

func TestBuildReport_GrandTotalIsExact(t *testing.T) {
	// Amounts chosen to drift under float accumulation
	expenses := []*Expense{
		expenseWith("Ana", "", "", "", "0.10"),
		expenseWith("Bruno", "", "", "", "0.20"),
		expenseWith("Carla", "", "", "", "0.30"),
	}

	report := BuildReport(DimensionCollaborator, expenses)

	if !report.GrandTotal.Equal(decimal.RequireFromString("0.60")) {
		t.Errorf("expected exact grand total 0.60, got %s", report.GrandTotal)
	}
}

func TestReportDimension_Valid(t *testing.T) {
	for _, d := range []ReportDimension{DimensionCollaborator, DimensionCard, DimensionProject, DimensionCompany} {
		if !d.Valid() {
			t.Errorf("expected %s to be valid", d)
		}
	}
	if ReportDimension("categoria").Valid() {
		t.Error("expected unknown dimension to be invalid")
	}
}

func TestReportDimension_Label(t *testing.T) {
	tests := []struct {
		dimension ReportDimension
		want      string
	}{
		{DimensionCollaborator, "Colaborador"},
		{DimensionCard, "Cartão"},
		{DimensionProject, "Projeto"},
		{DimensionCompany, "Empresa"},
	}

	for _, tt := range tests {
		if got := tt.dimension.Label(); got != tt.want {
			t.Errorf("Label(%s): expected %s, got %s", tt.dimension, tt.want, got)
		}
	}
}
