package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/expense-report/backend/internal/application/usecase/company"
	domainerror "github.com/expense-report/backend/internal/domain/error"
	"github.com/expense-report/backend/internal/integration/entrypoint/dto"
)

// CompanyController handles company registry endpoints.
type CompanyController struct {
	createCompanyUseCase *company.CreateCompanyUseCase
	updateCompanyUseCase *company.UpdateCompanyUseCase
	listCompaniesUseCase *company.ListCompaniesUseCase
	getCompanyUseCase    *company.GetCompanyUseCase
}

// NewCompanyController creates a new company controller instance.
func NewCompanyController(
	createCompanyUseCase *company.CreateCompanyUseCase,
	updateCompanyUseCase *company.UpdateCompanyUseCase,
	listCompaniesUseCase *company.ListCompaniesUseCase,
	getCompanyUseCase *company.GetCompanyUseCase,
) *CompanyController {
	return &CompanyController{
		createCompanyUseCase: createCompanyUseCase,
		updateCompanyUseCase: updateCompanyUseCase,
		listCompaniesUseCase: listCompaniesUseCase,
		getCompanyUseCase:    getCompanyUseCase,
	}
}

// Create handles POST /companies requests.
func (c *CompanyController) Create(ctx *gin.Context) {
	var req dto.CreateCompanyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(domainerror.ErrCodeMissingRequiredFields),
			Details: err.Error(),
		})
		return
	}

	output, err := c.createCompanyUseCase.Execute(ctx.Request.Context(), company.CreateCompanyInput{
		LegalName: req.LegalName,
		CNPJ:      req.CNPJ,
		Address:   req.Address,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCompanyResponse(output.Company))
}

// Update handles PUT /companies/:id requests.
func (c *CompanyController) Update(ctx *gin.Context) {
	companyID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid company ID",
			Code:  string(domainerror.ErrCodeMissingRequiredFields),
		})
		return
	}

	var req dto.UpdateCompanyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(domainerror.ErrCodeMissingRequiredFields),
			Details: err.Error(),
		})
		return
	}

	output, err := c.updateCompanyUseCase.Execute(ctx.Request.Context(), company.UpdateCompanyInput{
		CompanyID: companyID,
		LegalName: req.LegalName,
		CNPJ:      req.CNPJ,
		Address:   req.Address,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCompanyResponse(output.Company))
}

// List handles GET /companies requests.
func (c *CompanyController) List(ctx *gin.Context) {
	output, err := c.listCompaniesUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	responses := make([]dto.CompanyResponse, len(output.Companies))
	for i, comp := range output.Companies {
		responses[i] = dto.ToCompanyResponse(comp)
	}

	ctx.JSON(http.StatusOK, gin.H{"companies": responses})
}

// Get handles GET /companies/:id requests.
func (c *CompanyController) Get(ctx *gin.Context) {
	companyID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid company ID",
			Code:  string(domainerror.ErrCodeMissingRequiredFields),
		})
		return
	}

	output, err := c.getCompanyUseCase.Execute(ctx.Request.Context(), companyID)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCompanyResponse(output.Company))
}
