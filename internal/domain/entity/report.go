// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"

	"github.com/shopspring/decimal"
)

// UnknownGroupKey is the placeholder group key used when the grouping field
// of an expense is empty. The literal is part of the report contract and
// appears verbatim in rendered documents.
const UnknownGroupKey = "Não informado"

// ReportDimension selects the field expenses are grouped by in a report.
type ReportDimension string

const (
	DimensionCollaborator ReportDimension = "collaborator"
	DimensionCard         ReportDimension = "card"
	DimensionProject      ReportDimension = "project"
	DimensionCompany      ReportDimension = "company"
)

// Valid reports whether d is a known dimension.
func (d ReportDimension) Valid() bool {
	switch d {
	case DimensionCollaborator, DimensionCard, DimensionProject, DimensionCompany:
		return true
	}
	return false
}

// Label returns the Portuguese label used for group headers in exports.
func (d ReportDimension) Label() string {
	switch d {
	case DimensionCollaborator:
		return "Colaborador"
	case DimensionCard:
		return "Cartão"
	case DimensionProject:
		return "Projeto"
	case DimensionCompany:
		return "Empresa"
	}
	return string(d)
}

// KeyOf extracts the grouping key of an expense under this dimension.
// Empty or blank values normalize to UnknownGroupKey.
func (d ReportDimension) KeyOf(e *Expense) string {
	var key string
	switch d {
	case DimensionCollaborator:
		key = e.CollaboratorName
	case DimensionCard:
		key = e.CardNumber
	case DimensionProject:
		key = e.ProjectName
	case DimensionCompany:
		key = e.CompanyName
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return UnknownGroupKey
	}
	return key
}

// ExpenseGroup is one group of a report: its key, its expenses in input
// order, and the fixed-point sum of their amounts.
type ExpenseGroup struct {
	Key      string
	Expenses []*Expense
	Subtotal decimal.Decimal
}

// Report is the aggregation result: groups in first-occurrence order of
// their keys, plus the grand total over all expenses.
type Report struct {
	Dimension  ReportDimension
	Groups     []*ExpenseGroup
	GrandTotal decimal.Decimal
}

// BuildReport groups the given expenses by the dimension in a single forward
// pass. Group order is the order each key first appears in the input; record
// order within a group is preserved. Subtotals and the grand total are
// computed in decimal arithmetic, so the grand total equals the exact sum of
// all input amounts regardless of input order. An empty input yields an empty
// report with a zero grand total.
func BuildReport(dimension ReportDimension, expenses []*Expense) *Report {
	report := &Report{
		Dimension:  dimension,
		Groups:     []*ExpenseGroup{},
		GrandTotal: decimal.Zero,
	}

	index := make(map[string]int, len(expenses))
	for _, expense := range expenses {
		key := dimension.KeyOf(expense)

		i, seen := index[key]
		if !seen {
			i = len(report.Groups)
			index[key] = i
			report.Groups = append(report.Groups, &ExpenseGroup{
				Key:      key,
				Subtotal: decimal.Zero,
			})
		}

		group := report.Groups[i]
		group.Expenses = append(group.Expenses, expense)
		group.Subtotal = group.Subtotal.Add(expense.Amount)
		report.GrandTotal = report.GrandTotal.Add(expense.Amount)
	}

	return report
}
