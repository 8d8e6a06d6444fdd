package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/expense-report/backend/internal/application/usecase/collaborator"
	domainerror "github.com/expense-report/backend/internal/domain/error"
	"github.com/expense-report/backend/internal/integration/entrypoint/dto"
)

// CollaboratorController handles collaborator registry endpoints.
type CollaboratorController struct {
	createCollaboratorUseCase *collaborator.CreateCollaboratorUseCase
	updateCollaboratorUseCase *collaborator.UpdateCollaboratorUseCase
	listCollaboratorsUseCase  *collaborator.ListCollaboratorsUseCase
	getCollaboratorUseCase    *collaborator.GetCollaboratorUseCase
	toggleStatusUseCase       *collaborator.ToggleCollaboratorStatusUseCase
}

// NewCollaboratorController creates a new collaborator controller instance.
func NewCollaboratorController(
	createCollaboratorUseCase *collaborator.CreateCollaboratorUseCase,
	updateCollaboratorUseCase *collaborator.UpdateCollaboratorUseCase,
	listCollaboratorsUseCase *collaborator.ListCollaboratorsUseCase,
	getCollaboratorUseCase *collaborator.GetCollaboratorUseCase,
	toggleStatusUseCase *collaborator.ToggleCollaboratorStatusUseCase,
) *CollaboratorController {
	return &CollaboratorController{
		createCollaboratorUseCase: createCollaboratorUseCase,
		updateCollaboratorUseCase: updateCollaboratorUseCase,
		listCollaboratorsUseCase:  listCollaboratorsUseCase,
		getCollaboratorUseCase:    getCollaboratorUseCase,
		toggleStatusUseCase:       toggleStatusUseCase,
	}
}

// Create handles POST /collaborators requests.
func (c *CollaboratorController) Create(ctx *gin.Context) {
	var req dto.CreateCollaboratorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(domainerror.ErrCodeMissingRequiredFields),
			Details: err.Error(),
		})
		return
	}

	companyID := uuid.Nil
	if req.CompanyID != "" {
		parsed, err := uuid.Parse(req.CompanyID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid company ID",
				Code:  string(domainerror.ErrCodeMissingRequiredFields),
			})
			return
		}
		companyID = parsed
	}

	projectIDs, ok := parseProjectIDs(ctx, req.ProjectIDs)
	if !ok {
		return
	}

	output, err := c.createCollaboratorUseCase.Execute(ctx.Request.Context(), collaborator.CreateCollaboratorInput{
		Name:       req.Name,
		CPF:        req.CPF,
		Password:   req.Password,
		CardNumber: req.CardNumber,
		CompanyID:  companyID,
		ProjectIDs: projectIDs,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCollaboratorResponse(output.Collaborator))
}

// Update handles PUT /collaborators/:id requests.
func (c *CollaboratorController) Update(ctx *gin.Context) {
	collaboratorID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid collaborator ID",
			Code:  string(domainerror.ErrCodeMissingRequiredFields),
		})
		return
	}

	var req dto.UpdateCollaboratorRequest
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

	// A nil slice leaves the project assignment untouched
	var projectIDs []uuid.UUID
	if req.ProjectIDs != nil {
		parsed, ok := parseProjectIDs(ctx, req.ProjectIDs)
		if !ok {
			return
		}
		projectIDs = parsed
		if projectIDs == nil {
			projectIDs = []uuid.UUID{}
		}
	}

	output, err := c.updateCollaboratorUseCase.Execute(ctx.Request.Context(), collaborator.UpdateCollaboratorInput{
		CollaboratorID: collaboratorID,
		Name:           req.Name,
		CPF:            req.CPF,
		Password:       req.Password,
		CardNumber:     req.CardNumber,
		CompanyID:      companyID,
		ProjectIDs:     projectIDs,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCollaboratorResponse(output.Collaborator))
}

// List handles GET /collaborators requests.
func (c *CollaboratorController) List(ctx *gin.Context) {
	output, err := c.listCollaboratorsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	responses := make([]dto.CollaboratorResponse, len(output.Collaborators))
	for i, collab := range output.Collaborators {
		responses[i] = dto.ToCollaboratorResponse(collab)
	}

	ctx.JSON(http.StatusOK, gin.H{"collaborators": responses})
}

// Get handles GET /collaborators/:id requests.
func (c *CollaboratorController) Get(ctx *gin.Context) {
	collaboratorID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid collaborator ID",
			Code:  string(domainerror.ErrCodeMissingRequiredFields),
		})
		return
	}

	output, err := c.getCollaboratorUseCase.Execute(ctx.Request.Context(), collaboratorID)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	projects := make([]dto.ProjectResponse, len(output.Projects))
	for i, proj := range output.Projects {
		projects[i] = dto.ToProjectResponse(proj)
	}

	ctx.JSON(http.StatusOK, gin.H{
		"collaborator": dto.ToCollaboratorResponse(output.Collaborator),
		"projects":     projects,
	})
}

// ToggleStatus handles PATCH /collaborators/:id/status requests.
func (c *CollaboratorController) ToggleStatus(ctx *gin.Context) {
	collaboratorID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid collaborator ID",
			Code:  string(domainerror.ErrCodeMissingRequiredFields),
		})
		return
	}

	output, err := c.toggleStatusUseCase.Execute(ctx.Request.Context(), collaboratorID)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCollaboratorResponse(output.Collaborator))
}

// parseProjectIDs converts string IDs to UUIDs, writing the error response
// itself when any value is malformed.
func parseProjectIDs(ctx *gin.Context, raw []string) ([]uuid.UUID, bool) {
	if len(raw) == 0 {
		return nil, true
	}
	ids := make([]uuid.UUID, len(raw))
	for i, value := range raw {
		parsed, err := uuid.Parse(value)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid project ID",
				Code:  string(domainerror.ErrCodeMissingRequiredFields),
			})
			return nil, false
		}
		ids[i] = parsed
	}
	return ids, true
}
