package dto

import "github.com/expense-report/backend/internal/domain/entity"

// ReportGroupResponse represents one group of the aggregated report.
type ReportGroupResponse struct {
	Key      string            `json:"key"`
	Expenses []ExpenseResponse `json:"expenses"`
	Subtotal string            `json:"subtotal"`
}

// ReportResponse represents the aggregated report in API responses.
type ReportResponse struct {
	Dimension  string                `json:"dimension"`
	Groups     []ReportGroupResponse `json:"groups"`
	GrandTotal string                `json:"grand_total"`
}

// ToReportResponse converts a domain Report to a ReportResponse DTO.
func ToReportResponse(report *entity.Report) ReportResponse {
	groups := make([]ReportGroupResponse, len(report.Groups))
	for i, group := range report.Groups {
		groups[i] = ReportGroupResponse{
			Key:      group.Key,
			Expenses: ToExpenseResponses(group.Expenses),
			Subtotal: group.Subtotal.StringFixed(2),
		}
	}

	return ReportResponse{
		Dimension:  string(report.Dimension),
		Groups:     groups,
		GrandTotal: report.GrandTotal.StringFixed(2),
	}
}
