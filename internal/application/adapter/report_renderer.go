// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "github.com/expense-report/backend/internal/domain/entity"

// SpreadsheetRenderer renders a report as a binary spreadsheet document.
type SpreadsheetRenderer interface {
	// Render produces the spreadsheet bytes. The collaborator dimension uses
	// the flat full-column layout with pt-BR formatted amount strings; the
	// other dimensions use the short layout with native numeric amount cells.
	Render(report *entity.Report) ([]byte, error)
}

// DocumentRenderer renders a report as a paginated binary document.
type DocumentRenderer interface {
	// Render produces the document bytes, one section per group followed by
	// a grand-total line. No bytes are returned on error.
	Render(report *entity.Report) ([]byte, error)
}
