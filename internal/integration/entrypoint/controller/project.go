package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/expense-report/backend/internal/application/usecase/project"
	domainerror "github.com/expense-report/backend/internal/domain/error"
	"github.com/expense-report/backend/internal/integration/entrypoint/dto"
)

// ProjectController handles project registry endpoints.
type ProjectController struct {
	createProjectUseCase *project.CreateProjectUseCase
	updateProjectUseCase *project.UpdateProjectUseCase
	listProjectsUseCase  *project.ListProjectsUseCase
	getProjectUseCase    *project.GetProjectUseCase
	deleteProjectUseCase *project.DeleteProjectUseCase
}

// NewProjectController creates a new project controller instance.
func NewProjectController(
	createProjectUseCase *project.CreateProjectUseCase,
	updateProjectUseCase *project.UpdateProjectUseCase,
	listProjectsUseCase *project.ListProjectsUseCase,
	getProjectUseCase *project.GetProjectUseCase,
	deleteProjectUseCase *project.DeleteProjectUseCase,
) *ProjectController {
	return &ProjectController{
		createProjectUseCase: createProjectUseCase,
		updateProjectUseCase: updateProjectUseCase,
		listProjectsUseCase:  listProjectsUseCase,
		getProjectUseCase:    getProjectUseCase,
		deleteProjectUseCase: deleteProjectUseCase,
	}
}

// Create handles POST /projects requests.
func (c *ProjectController) Create(ctx *gin.Context) {
	var req dto.CreateProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(domainerror.ErrCodeMissingRequiredFields),
			Details: err.Error(),
		})
		return
	}

	companyID, err := uuid.Parse(req.CompanyID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid company ID",
			Code:  string(domainerror.ErrCodeMissingRequiredFields),
		})
		return
	}

	output, err := c.createProjectUseCase.Execute(ctx.Request.Context(), project.CreateProjectInput{
		Name:      req.Name,
		Location:  req.Location,
		Status:    req.Status,
		CompanyID: companyID,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToProjectResponse(output.Project))
}

// Update handles PUT /projects/:id requests.
func (c *ProjectController) Update(ctx *gin.Context) {
	projectID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid project ID",
			Code:  string(domainerror.ErrCodeMissingRequiredFields),
		})
		return
	}

	var req dto.UpdateProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(domainerror.ErrCodeMissingRequiredFields),
			Details: err.Error(),
		})
		return
	}

	var companyID *uuid.UUID
	if req.CompanyID != nil {
		parsed, err := uuid.Parse(*req.CompanyID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid company ID",
				Code:  string(domainerror.ErrCodeMissingRequiredFields),
			})
			return
		}
		companyID = &parsed
	}

	output, err := c.updateProjectUseCase.Execute(ctx.Request.Context(), project.UpdateProjectInput{
		ProjectID: projectID,
		Name:      req.Name,
		Location:  req.Location,
		Status:    req.Status,
		CompanyID: companyID,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProjectResponse(output.Project))
}

// List handles GET /projects requests.
func (c *ProjectController) List(ctx *gin.Context) {
	output, err := c.listProjectsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	responses := make([]dto.ProjectResponse, len(output.Projects))
	for i, proj := range output.Projects {
		responses[i] = dto.ToProjectResponse(proj)
	}

	ctx.JSON(http.StatusOK, gin.H{"projects": responses})
}

// Get handles GET /projects/:id requests.
func (c *ProjectController) Get(ctx *gin.Context) {
	projectID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid project ID",
			Code:  string(domainerror.ErrCodeMissingRequiredFields),
		})
		return
	}

	output, err := c.getProjectUseCase.Execute(ctx.Request.Context(), projectID)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProjectResponse(output.Project))
}

// Delete handles DELETE /projects/:id requests.
func (c *ProjectController) Delete(ctx *gin.Context) {
	projectID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid project ID",
			Code:  string(domainerror.ErrCodeMissingRequiredFields),
		})
		return
	}

	if err := c.deleteProjectUseCase.Execute(ctx.Request.Context(), projectID); err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Project deleted successfully"})
}
