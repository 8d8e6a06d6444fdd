package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/expense-report/backend/internal/domain/entity"
)

func sampleReport(dimension entity.ReportDimension) *entity.Report {
	registeredAt := time.Date(2024, 3, 10, 14, 30, 0, 0, time.UTC)

	expenses := []*entity.Expense{
		{
			CollaboratorName: "Ana Souza",
			City:             "São Paulo",
			Location:         "Posto Ipiranga",
			LocationTaxID:    "12.345.678/0001-90",
			Description:      "Combustível",
			Amount:           decimal.RequireFromString("150.50"),
			Note:             "viagem obra",
			Complement:       "abastecimento",
			CompanyName:      "Construtora Alfa",
			ProjectName:      "Obra Centro",
			CardNumber:       "1234",
			RegisteredAt:     registeredAt,
		},
		{
			CollaboratorName: "Bruno Lima",
			City:             "Campinas",
			Location:         "Restaurante Bom Prato",
			Description:      "Almoço",
			Amount:           decimal.RequireFromString("45.25"),
			Complement:       "refeição",
			CompanyName:      "Construtora Alfa",
			ProjectName:      "Obra Centro",
			CardNumber:       "5678",
			RegisteredAt:     registeredAt,
		},
	}

	return entity.BuildReport(dimension, expenses)
}

func openSheet(t *testing.T, content []byte, sheet string) [][]string {
	t.Helper()

	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		t.Fatalf("failed to open rendered spreadsheet: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheet)
	if err != nil {
		t.Fatalf("failed to read sheet %q: %v", sheet, err)
	}
	return rows
}

func TestSpreadsheetRenderer_FlatLayout(t *testing.T) {
	renderer := NewSpreadsheetRenderer()
	report := sampleReport(entity.DimensionCollaborator)

	content, err := renderer.Render(report)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows := openSheet(t, content, "Relatório de Gastos")
	if len(rows) < 3 {
		t.Fatalf("expected header plus data rows, got %d rows", len(rows))
	}

	if rows[0][0] != "Colaborador" || rows[0][3] != "Valor (R$)" {
		t.Errorf("unexpected header row: %v", rows[0])
	}

	// Flat layout carries amounts as pt-BR formatted text
	if rows[1][3] != "R$ 150,50" {
		t.Errorf("expected formatted amount R$ 150,50, got %q", rows[1][3])
	}
	if rows[1][1] != "10/03/2024" {
		t.Errorf("expected date 10/03/2024, got %q", rows[1][1])
	}
	if rows[2][0] != "Bruno Lima" {
		t.Errorf("expected second data row for Bruno Lima, got %q", rows[2][0])
	}

	last := rows[len(rows)-1]
	if len(last) < 4 || last[2] != "Total Geral:" || last[3] != "R$ 195,75" {
		t.Errorf("unexpected grand total row: %v", last)
	}
}

func TestSpreadsheetRenderer_GroupedLayout(t *testing.T) {
	renderer := NewSpreadsheetRenderer()
	report := sampleReport(entity.DimensionCard)

	content, err := renderer.Render(report)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows := openSheet(t, content, "Gastos por Cartão")

	if rows[0][0] != "Cartão" || rows[0][4] != "Colaborador" {
		t.Errorf("unexpected header row: %v", rows[0])
	}

	// One data row plus one subtotal row per card
	foundSubtotals := 0
	for _, row := range rows[1:] {
		if len(row) > 2 && row[2] == "Total do Cartão:" {
			foundSubtotals++
		}
	}
	if foundSubtotals != 2 {
		t.Errorf("expected 2 subtotal rows, got %d", foundSubtotals)
	}
}

func TestSpreadsheetRenderer_CompanySubtotalArticle(t *testing.T) {
	renderer := NewSpreadsheetRenderer()
	report := sampleReport(entity.DimensionCompany)

	content, err := renderer.Render(report)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows := openSheet(t, content, "Gastos por Empresa")

	found := false
	for _, row := range rows {
		if len(row) > 2 && row[2] == "Total da Empresa:" {
			found = true
		}
	}
	if !found {
		t.Error("expected a feminine subtotal line for the company dimension")
	}
}

func TestSpreadsheetRenderer_EmptyReport(t *testing.T) {
	renderer := NewSpreadsheetRenderer()
	report := entity.BuildReport(entity.DimensionProject, nil)

	content, err := renderer.Render(report)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows := openSheet(t, content, "Gastos por Projeto")
	last := rows[len(rows)-1]
	if len(last) < 3 || last[2] != "Total Geral:" {
		t.Errorf("expected a grand total row even with no records, got %v", last)
	}
}

func TestSpreadsheetRenderer_UnknownDimension(t *testing.T) {
	renderer := NewSpreadsheetRenderer()
	report := &entity.Report{Dimension: entity.ReportDimension("categoria"), GrandTotal: decimal.Zero}

	if _, err := renderer.Render(report); err == nil {
		t.Fatal("expected an error for an unknown dimension")
	}
}
