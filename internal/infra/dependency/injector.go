// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"gorm.io/gorm"

	"github.com/expense-report/backend/config"
	"github.com/expense-report/backend/internal/application/usecase/auth"
	"github.com/expense-report/backend/internal/application/usecase/collaborator"
	"github.com/expense-report/backend/internal/application/usecase/company"
	"github.com/expense-report/backend/internal/application/usecase/expense"
	"github.com/expense-report/backend/internal/application/usecase/project"
	"github.com/expense-report/backend/internal/application/usecase/report"
	"github.com/expense-report/backend/internal/application/usecase/user"
	"github.com/expense-report/backend/internal/infra/server/router"
	"github.com/expense-report/backend/internal/integration/adapters"
	"github.com/expense-report/backend/internal/integration/entrypoint/controller"
	"github.com/expense-report/backend/internal/integration/entrypoint/middleware"
	"github.com/expense-report/backend/internal/integration/export"
	"github.com/expense-report/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, location *time.Location) *Injector {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	companyRepo := persistence.NewCompanyRepository(db)
	projectRepo := persistence.NewProjectRepository(db)
	collaboratorRepo := persistence.NewCollaboratorRepository(db)
	expenseRepo := persistence.NewExpenseRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry, tokenRepo)
	contentSniffer := adapters.NewContentSniffer()
	spreadsheetRenderer := export.NewSpreadsheetRenderer()
	documentRenderer := export.NewDocumentRenderer(cfg.Export.PDFFontPath)

	// Create auth use cases
	loginUseCase := auth.NewLoginUseCase(userRepo, collaboratorRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUseCase(tokenService)

	// Create company use cases
	createCompanyUseCase := company.NewCreateCompanyUseCase(companyRepo)
	updateCompanyUseCase := company.NewUpdateCompanyUseCase(companyRepo)
	listCompaniesUseCase := company.NewListCompaniesUseCase(companyRepo)
	getCompanyUseCase := company.NewGetCompanyUseCase(companyRepo)

	// Create project use cases
	createProjectUseCase := project.NewCreateProjectUseCase(projectRepo, companyRepo)
	updateProjectUseCase := project.NewUpdateProjectUseCase(projectRepo, companyRepo)
	listProjectsUseCase := project.NewListProjectsUseCase(projectRepo)
	getProjectUseCase := project.NewGetProjectUseCase(projectRepo)
	deleteProjectUseCase := project.NewDeleteProjectUseCase(projectRepo)

	// Create collaborator use cases
	createCollaboratorUseCase := collaborator.NewCreateCollaboratorUseCase(collaboratorRepo, companyRepo, projectRepo, passwordService)
	updateCollaboratorUseCase := collaborator.NewUpdateCollaboratorUseCase(collaboratorRepo, companyRepo, projectRepo, passwordService)
	listCollaboratorsUseCase := collaborator.NewListCollaboratorsUseCase(collaboratorRepo)
	getCollaboratorUseCase := collaborator.NewGetCollaboratorUseCase(collaboratorRepo, projectRepo)
	toggleStatusUseCase := collaborator.NewToggleCollaboratorStatusUseCase(collaboratorRepo)

	// Create administrator use cases
	createUserUseCase := user.NewCreateUserUseCase(userRepo, passwordService)
	updateUserUseCase := user.NewUpdateUserUseCase(userRepo, passwordService)
	listUsersUseCase := user.NewListUsersUseCase(userRepo)
	deleteUserUseCase := user.NewDeleteUserUseCase(userRepo)
	toggleUserStatusUseCase := user.NewToggleUserStatusUseCase(userRepo)

	// Create expense use cases
	createExpenseUseCase := expense.NewCreateExpenseUseCase(
		expenseRepo,
		collaboratorRepo,
		companyRepo,
		projectRepo,
		contentSniffer,
		cfg.Upload.MaxReceiptSize,
		location,
	)
	listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo)
	deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(expenseRepo)
	getReceiptUseCase := expense.NewGetReceiptUseCase(expenseRepo, contentSniffer)
	listReceiptsUseCase := expense.NewListReceiptsUseCase(expenseRepo)

	// Create report use cases
	generateReportUseCase := report.NewGenerateReportUseCase(expenseRepo, location)
	exportReportUseCase := report.NewExportReportUseCase(expenseRepo, spreadsheetRenderer, documentRenderer, location)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
	)

	companyController := controller.NewCompanyController(
		createCompanyUseCase,
		updateCompanyUseCase,
		listCompaniesUseCase,
		getCompanyUseCase,
	)

	projectController := controller.NewProjectController(
		createProjectUseCase,
		updateProjectUseCase,
		listProjectsUseCase,
		getProjectUseCase,
		deleteProjectUseCase,
	)

	collaboratorController := controller.NewCollaboratorController(
		createCollaboratorUseCase,
		updateCollaboratorUseCase,
		listCollaboratorsUseCase,
		getCollaboratorUseCase,
		toggleStatusUseCase,
	)

	userController := controller.NewUserController(
		createUserUseCase,
		updateUserUseCase,
		listUsersUseCase,
		deleteUserUseCase,
		toggleUserStatusUseCase,
	)

	expenseController := controller.NewExpenseController(
		createExpenseUseCase,
		listExpensesUseCase,
		deleteExpenseUseCase,
		getReceiptUseCase,
		listReceiptsUseCase,
	)

	reportController := controller.NewReportController(
		generateReportUseCase,
		exportReportUseCase,
	)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		companyController,
		projectController,
		collaboratorController,
		userController,
		expenseController,
		reportController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
