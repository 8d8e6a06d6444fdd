package controller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/expense-report/backend/internal/application/usecase/report"
	"github.com/expense-report/backend/internal/domain/entity"
	domainerror "github.com/expense-report/backend/internal/domain/error"
	"github.com/expense-report/backend/internal/integration/entrypoint/dto"
)

// ReportController handles report aggregation and export endpoints. The
// dimension and format come from path parameters, date bounds and the
// collaborator filter from the query string.
type ReportController struct {
	generateReportUseCase *report.GenerateReportUseCase
	exportReportUseCase   *report.ExportReportUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(
	generateReportUseCase *report.GenerateReportUseCase,
	exportReportUseCase *report.ExportReportUseCase,
) *ReportController {
	return &ReportController{
		generateReportUseCase: generateReportUseCase,
		exportReportUseCase:   exportReportUseCase,
	}
}

// Generate handles GET /reports/:dimension requests.
func (c *ReportController) Generate(ctx *gin.Context) {
	dimension := entity.ReportDimension(ctx.Param("dimension"))
	if !dimension.Valid() {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Unknown report dimension",
			Code:  string(domainerror.ErrCodeInvalidDimension),
		})
		return
	}

	output, err := c.generateReportUseCase.Execute(ctx.Request.Context(), report.GenerateReportInput{
		Dimension:        dimension,
		StartDate:        ctx.Query("start_date"),
		EndDate:          ctx.Query("end_date"),
		CollaboratorName: ctx.Query("collaborator"),
		Policy:           rangePolicyFor(dimension),
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToReportResponse(output.Report))
}

// Export handles GET /reports/:dimension/export/:format requests, returning
// the rendered document as an attachment download.
func (c *ReportController) Export(ctx *gin.Context) {
	output, err := c.exportReportUseCase.Execute(ctx.Request.Context(), report.ExportReportInput{
		Dimension:        entity.ReportDimension(ctx.Param("dimension")),
		Format:           report.ExportFormat(ctx.Param("format")),
		StartDate:        ctx.Query("start_date"),
		EndDate:          ctx.Query("end_date"),
		CollaboratorName: ctx.Query("collaborator"),
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", output.FileName))
	ctx.Data(http.StatusOK, output.ContentType, output.Content)
}

// rangePolicyFor selects the no-filter behavior of the JSON report. The
// company view defaults to the current month, everything else stays empty
// until a range is supplied.
func rangePolicyFor(dimension entity.ReportDimension) report.RangePolicy {
	if dimension == entity.DimensionCompany {
		return report.RangePolicyCurrentMonth
	}
	return report.RangePolicyEmpty
}
