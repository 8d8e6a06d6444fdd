package controller

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/expense-report/backend/internal/application/usecase/expense"
	"github.com/expense-report/backend/internal/domain/entity"
	domainerror "github.com/expense-report/backend/internal/domain/error"
	"github.com/expense-report/backend/internal/integration/entrypoint/dto"
	"github.com/expense-report/backend/internal/integration/entrypoint/middleware"
)

// receiptFormField is the multipart field carrying the receipt image.
const receiptFormField = "imagem"

// ExpenseController handles expense and receipt endpoints.
type ExpenseController struct {
	createExpenseUseCase *expense.CreateExpenseUseCase
	listExpensesUseCase  *expense.ListExpensesUseCase
	deleteExpenseUseCase *expense.DeleteExpenseUseCase
	getReceiptUseCase    *expense.GetReceiptUseCase
	listReceiptsUseCase  *expense.ListReceiptsUseCase
}

// NewExpenseController creates a new expense controller instance.
func NewExpenseController(
	createExpenseUseCase *expense.CreateExpenseUseCase,
	listExpensesUseCase *expense.ListExpensesUseCase,
	deleteExpenseUseCase *expense.DeleteExpenseUseCase,
	getReceiptUseCase *expense.GetReceiptUseCase,
	listReceiptsUseCase *expense.ListReceiptsUseCase,
) *ExpenseController {
	return &ExpenseController{
		createExpenseUseCase: createExpenseUseCase,
		listExpensesUseCase:  listExpensesUseCase,
		deleteExpenseUseCase: deleteExpenseUseCase,
		getReceiptUseCase:    getReceiptUseCase,
		listReceiptsUseCase:  listReceiptsUseCase,
	}
}

// Create handles POST /expenses requests. The body is a multipart form with
// the receipt image in the "imagem" field.
func (c *ExpenseController) Create(ctx *gin.Context) {
	principal, ok := middleware.GetPrincipalFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Authentication required",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateExpenseRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(domainerror.ErrCodeMissingExpenseFields),
			Details: err.Error(),
		})
		return
	}

	var projectID *uuid.UUID
	if req.ProjectID != "" {
		parsed, err := uuid.Parse(req.ProjectID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid project ID",
				Code:  string(domainerror.ErrCodeMissingExpenseFields),
			})
			return
		}
		projectID = &parsed
	}

	receiptContent, ok := readReceiptFile(ctx)
	if !ok {
		return
	}

	output, err := c.createExpenseUseCase.Execute(ctx.Request.Context(), expense.CreateExpenseInput{
		CollaboratorID: principal.ID,
		City:           req.City,
		Location:       req.Location,
		LocationTaxID:  req.LocationTaxID,
		DocumentNumber: req.DocumentNumber,
		Description:    req.Description,
		Amount:         req.Amount,
		Note:           req.Note,
		Complement:     req.Complement,
		ProjectID:      projectID,
		ReceiptContent: receiptContent,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreateExpenseResponse{
		Expense:   dto.ToExpenseResponse(output.Expense),
		ReceiptID: output.Receipt.ID.String(),
	})
}

// List handles GET /expenses requests. Administrators see every expense;
// collaborators see their own history.
func (c *ExpenseController) List(ctx *gin.Context) {
	principal, ok := middleware.GetPrincipalFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Authentication required",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := expense.ListExpensesInput{}
	if principal.Role == entity.RoleCollaborator {
		input.CollaboratorName = principal.Name
	}

	output, err := c.listExpensesUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"expenses": dto.ToExpenseResponses(output.Expenses)})
}

// Delete handles DELETE /expenses/:id requests.
func (c *ExpenseController) Delete(ctx *gin.Context) {
	expenseID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid expense ID",
			Code:  string(domainerror.ErrCodeMissingExpenseFields),
		})
		return
	}

	if err := c.deleteExpenseUseCase.Execute(ctx.Request.Context(), expenseID); err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Expense deleted successfully"})
}

// ListReceipts handles GET /receipts requests.
func (c *ExpenseController) ListReceipts(ctx *gin.Context) {
	output, err := c.listReceiptsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	responses := make([]dto.ReceiptInfoResponse, len(output.Receipts))
	for i, info := range output.Receipts {
		responses[i] = dto.ToReceiptInfoResponse(info)
	}

	ctx.JSON(http.StatusOK, gin.H{"receipts": responses})
}

// ViewReceipt handles GET /receipts/:id requests, serving the image inline
// with the sniffed content type.
func (c *ExpenseController) ViewReceipt(ctx *gin.Context) {
	output, ok := c.fetchReceipt(ctx)
	if !ok {
		return
	}

	ctx.Data(http.StatusOK, output.ContentType, output.Content)
}

// DownloadReceipt handles GET /receipts/:id/download requests, serving the
// image as an attachment.
func (c *ExpenseController) DownloadReceipt(ctx *gin.Context) {
	output, ok := c.fetchReceipt(ctx)
	if !ok {
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", output.FileName))
	ctx.Data(http.StatusOK, output.ContentType, output.Content)
}

func (c *ExpenseController) fetchReceipt(ctx *gin.Context) (*expense.GetReceiptOutput, bool) {
	receiptID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid receipt ID",
			Code:  string(domainerror.ErrCodeMissingExpenseFields),
		})
		return nil, false
	}

	output, err := c.getReceiptUseCase.Execute(ctx.Request.Context(), receiptID)
	if err != nil {
		handleDomainError(ctx, err)
		return nil, false
	}

	return output, true
}

// readReceiptFile pulls the receipt image out of the multipart form. A
// missing file is not an error here, the use case rejects it with the
// proper domain code.
func readReceiptFile(ctx *gin.Context) ([]byte, bool) {
	fileHeader, err := ctx.FormFile(receiptFormField)
	if err != nil {
		return nil, true
	}

	file, err := fileHeader.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Failed to read receipt file",
			Code:  string(domainerror.ErrCodeReceiptRequired),
		})
		return nil, false
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Failed to read receipt file",
			Code:  string(domainerror.ErrCodeReceiptRequired),
		})
		return nil, false
	}

	return content, true
}
