package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/expense-report/backend/internal/application/usecase/user"
	domainerror "github.com/expense-report/backend/internal/domain/error"
	"github.com/expense-report/backend/internal/integration/entrypoint/dto"
)

// UserController handles administrator account endpoints.
type UserController struct {
	createUserUseCase   *user.CreateUserUseCase
	updateUserUseCase   *user.UpdateUserUseCase
	listUsersUseCase    *user.ListUsersUseCase
	deleteUserUseCase   *user.DeleteUserUseCase
	toggleStatusUseCase *user.ToggleUserStatusUseCase
}

// NewUserController creates a new user controller instance.
func NewUserController(
	createUserUseCase *user.CreateUserUseCase,
	updateUserUseCase *user.UpdateUserUseCase,
	listUsersUseCase *user.ListUsersUseCase,
	deleteUserUseCase *user.DeleteUserUseCase,
	toggleStatusUseCase *user.ToggleUserStatusUseCase,
) *UserController {
	return &UserController{
		createUserUseCase:   createUserUseCase,
		updateUserUseCase:   updateUserUseCase,
		listUsersUseCase:    listUsersUseCase,
		deleteUserUseCase:   deleteUserUseCase,
		toggleStatusUseCase: toggleStatusUseCase,
	}
}

// Create handles POST /users requests.
func (c *UserController) Create(ctx *gin.Context) {
	var req dto.CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(domainerror.ErrCodeMissingRequiredFields),
			Details: err.Error(),
		})
		return
	}

	output, err := c.createUserUseCase.Execute(ctx.Request.Context(), user.CreateUserInput{
		Name:     req.Name,
		CPF:      req.CPF,
		Password: req.Password,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToUserResponse(output.User))
}

// Update handles PUT /users/:id requests.
func (c *UserController) Update(ctx *gin.Context) {
	userID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid user ID",
			Code:  string(domainerror.ErrCodeMissingRequiredFields),
		})
		return
	}

	var req dto.UpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(domainerror.ErrCodeMissingRequiredFields),
			Details: err.Error(),
		})
		return
	}

	output, err := c.updateUserUseCase.Execute(ctx.Request.Context(), user.UpdateUserInput{
		UserID:   userID,
		Name:     req.Name,
		CPF:      req.CPF,
		Password: req.Password,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(output.User))
}

// List handles GET /users requests.
func (c *UserController) List(ctx *gin.Context) {
	output, err := c.listUsersUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	responses := make([]dto.UserResponse, len(output.Users))
	for i, u := range output.Users {
		responses[i] = dto.ToUserResponse(u)
	}

	ctx.JSON(http.StatusOK, gin.H{"users": responses})
}

// Delete handles DELETE /users/:id requests.
func (c *UserController) Delete(ctx *gin.Context) {
	userID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid user ID",
			Code:  string(domainerror.ErrCodeMissingRequiredFields),
		})
		return
	}

	if err := c.deleteUserUseCase.Execute(ctx.Request.Context(), userID); err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "User deleted successfully"})
}

// ToggleStatus handles PATCH /users/:id/status requests.
func (c *UserController) ToggleStatus(ctx *gin.Context) {
	userID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid user ID",
			Code:  string(domainerror.ErrCodeMissingRequiredFields),
		})
		return
	}

	output, err := c.toggleStatusUseCase.Execute(ctx.Request.Context(), userID)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(output.User))
}
