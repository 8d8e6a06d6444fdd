package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/expense-report/backend/internal/domain/entity"
)

// CreateCompanyRequest represents the request body for company creation.
type CreateCompanyRequest struct {
	LegalName string `json:"legal_name" binding:"required,max=255"`
	CNPJ      string `json:"cnpj" binding:"required,len=18"`
	Address   string `json:"address" binding:"required,max=255"`
}

// UpdateCompanyRequest represents the request body for company update.
type UpdateCompanyRequest struct {
	LegalName *string `json:"legal_name"`
	CNPJ      *string `json:"cnpj"`
	Address   *string `json:"address"`
}

// CompanyResponse represents a company in API responses.
type CompanyResponse struct {
	ID        string    `json:"id"`
	LegalName string    `json:"legal_name"`
	CNPJ      string    `json:"cnpj"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToCompanyResponse converts a domain Company entity to a CompanyResponse DTO.
func ToCompanyResponse(company *entity.Company) CompanyResponse {
	return CompanyResponse{
		ID:        company.ID.String(),
		LegalName: company.LegalName,
		CNPJ:      company.CNPJ,
		Address:   company.Address,
		CreatedAt: company.CreatedAt,
		UpdatedAt: company.UpdatedAt,
	}
}

// CreateProjectRequest represents the request body for project creation.
type CreateProjectRequest struct {
	Name      string `json:"name" binding:"required,max=255"`
	Location  string `json:"location" binding:"required,max=255"`
	Status    string `json:"status" binding:"max=50"`
	CompanyID string `json:"company_id" binding:"required,uuid"`
}

// UpdateProjectRequest represents the request body for project update.
type UpdateProjectRequest struct {
	Name      *string `json:"name"`
	Location  *string `json:"location"`
	Status    *string `json:"status"`
	CompanyID *string `json:"company_id"`
}

// ProjectResponse represents a project in API responses.
type ProjectResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	Status    string    `json:"status"`
	CompanyID string    `json:"company_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToProjectResponse converts a domain Project entity to a ProjectResponse DTO.
func ToProjectResponse(project *entity.Project) ProjectResponse {
	return ProjectResponse{
		ID:        project.ID.String(),
		Name:      project.Name,
		Location:  project.Location,
		Status:    project.Status,
		CompanyID: project.CompanyID.String(),
		CreatedAt: project.CreatedAt,
		UpdatedAt: project.UpdatedAt,
	}
}

// CreateCollaboratorRequest represents the request body for collaborator creation.
type CreateCollaboratorRequest struct {
	Name       string   `json:"name" binding:"required,max=100"`
	CPF        string   `json:"cpf" binding:"required,len=14"`
	Password   string   `json:"password" binding:"required,min=6"`
	CardNumber string   `json:"card_number" binding:"required,len=4"`
	CompanyID  string   `json:"company_id" binding:"omitempty,uuid"`
	ProjectIDs []string `json:"project_ids" binding:"omitempty,dive,uuid"`
}

// UpdateCollaboratorRequest represents the request body for collaborator update.
type UpdateCollaboratorRequest struct {
	Name       *string  `json:"name"`
	CPF        *string  `json:"cpf"`
	Password   *string  `json:"password"`
	CardNumber *string  `json:"card_number"`
	CompanyID  *string  `json:"company_id"`
	ProjectIDs []string `json:"project_ids"`
}

// CollaboratorResponse represents a collaborator in API responses. The
// password hash never leaves the server.
type CollaboratorResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	CPF        string    `json:"cpf"`
	CardNumber string    `json:"card_number"`
	Active     bool      `json:"active"`
	CompanyID  string    `json:"company_id,omitempty"`
	ProjectIDs []string  `json:"project_ids"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ToCollaboratorResponse converts a domain Collaborator entity to a
// CollaboratorResponse DTO.
func ToCollaboratorResponse(collaborator *entity.Collaborator) CollaboratorResponse {
	projectIDs := make([]string, len(collaborator.ProjectIDs))
	for i, id := range collaborator.ProjectIDs {
		projectIDs[i] = id.String()
	}

	companyID := ""
	if collaborator.CompanyID != uuid.Nil {
		companyID = collaborator.CompanyID.String()
	}

	return CollaboratorResponse{
		ID:         collaborator.ID.String(),
		Name:       collaborator.Name,
		CPF:        collaborator.CPF,
		CardNumber: collaborator.CardNumber,
		Active:     collaborator.Active,
		CompanyID:  companyID,
		ProjectIDs: projectIDs,
		CreatedAt:  collaborator.CreatedAt,
		UpdatedAt:  collaborator.UpdatedAt,
	}
}

// CreateUserRequest represents the request body for administrator creation.
type CreateUserRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	CPF      string `json:"cpf" binding:"required,len=14"`
	Password string `json:"password" binding:"required,min=6"`
}

// UpdateUserRequest represents the request body for administrator update.
type UpdateUserRequest struct {
	Name     *string `json:"name"`
	CPF      *string `json:"cpf"`
	Password *string `json:"password"`
}

// UserResponse represents an administrator in API responses.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CPF       string    `json:"cpf"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToUserResponse converts a domain User entity to a UserResponse DTO.
func ToUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		Name:      user.Name,
		CPF:       user.CPF,
		Active:    user.Active,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
