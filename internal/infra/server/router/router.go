// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/expense-report/backend/internal/integration/entrypoint/controller"
	"github.com/expense-report/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                 *gin.Engine
	healthController       *controller.HealthController
	authController         *controller.AuthController
	companyController      *controller.CompanyController
	projectController      *controller.ProjectController
	collaboratorController *controller.CollaboratorController
	userController         *controller.UserController
	expenseController      *controller.ExpenseController
	reportController       *controller.ReportController
	loginRateLimiter       *middleware.RateLimiter
	authMiddleware         *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	companyController *controller.CompanyController,
	projectController *controller.ProjectController,
	collaboratorController *controller.CollaboratorController,
	userController *controller.UserController,
	expenseController *controller.ExpenseController,
	reportController *controller.ReportController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:       healthController,
		authController:         authController,
		companyController:      companyController,
		projectController:      projectController,
		collaboratorController: collaboratorController,
		userController:         userController,
		expenseController:      expenseController,
		reportController:       reportController,
		loginRateLimiter:       loginRateLimiter,
		authMiddleware:         authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes. Registry management and the
// report pipeline are admin only; expense submission is collaborator only.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.RefreshToken)
				auth.POST("/logout", r.authController.Logout)
			}
		}

		if r.companyController != nil && r.authMiddleware != nil {
			companies := v1.Group("/companies")
			companies.Use(r.authMiddleware.Authenticate(), r.authMiddleware.RequireAdmin())
			{
				companies.GET("", r.companyController.List)
				companies.POST("", r.companyController.Create)
				companies.GET("/:id", r.companyController.Get)
				companies.PUT("/:id", r.companyController.Update)
			}
		}

		if r.projectController != nil && r.authMiddleware != nil {
			projects := v1.Group("/projects")
			projects.Use(r.authMiddleware.Authenticate(), r.authMiddleware.RequireAdmin())
			{
				projects.GET("", r.projectController.List)
				projects.POST("", r.projectController.Create)
				projects.GET("/:id", r.projectController.Get)
				projects.PUT("/:id", r.projectController.Update)
				projects.DELETE("/:id", r.projectController.Delete)
			}
		}

		if r.collaboratorController != nil && r.authMiddleware != nil {
			collaborators := v1.Group("/collaborators")
			collaborators.Use(r.authMiddleware.Authenticate(), r.authMiddleware.RequireAdmin())
			{
				collaborators.GET("", r.collaboratorController.List)
				collaborators.POST("", r.collaboratorController.Create)
				collaborators.GET("/:id", r.collaboratorController.Get)
				collaborators.PUT("/:id", r.collaboratorController.Update)
				collaborators.PATCH("/:id/status", r.collaboratorController.ToggleStatus)
			}
		}

		if r.userController != nil && r.authMiddleware != nil {
			users := v1.Group("/users")
			users.Use(r.authMiddleware.Authenticate(), r.authMiddleware.RequireAdmin())
			{
				users.GET("", r.userController.List)
				users.POST("", r.userController.Create)
				users.PUT("/:id", r.userController.Update)
				users.DELETE("/:id", r.userController.Delete)
				users.PATCH("/:id/status", r.userController.ToggleStatus)
			}
		}

		if r.expenseController != nil && r.authMiddleware != nil {
			expenses := v1.Group("/expenses")
			expenses.Use(r.authMiddleware.Authenticate())
			{
				expenses.POST("", r.authMiddleware.RequireCollaborator(), r.expenseController.Create)
				expenses.GET("", r.expenseController.List)
				expenses.DELETE("/:id", r.authMiddleware.RequireAdmin(), r.expenseController.Delete)
			}

			receipts := v1.Group("/receipts")
			receipts.Use(r.authMiddleware.Authenticate(), r.authMiddleware.RequireAdmin())
			{
				receipts.GET("", r.expenseController.ListReceipts)
				receipts.GET("/:id", r.expenseController.ViewReceipt)
				receipts.GET("/:id/download", r.expenseController.DownloadReceipt)
			}
		}

		if r.reportController != nil && r.authMiddleware != nil {
			reports := v1.Group("/reports")
			reports.Use(r.authMiddleware.Authenticate(), r.authMiddleware.RequireAdmin())
			{
				reports.GET("/:dimension", r.reportController.Generate)
				reports.GET("/:dimension/export/:format", r.reportController.Export)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
