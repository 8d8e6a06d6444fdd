package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/expense-report/backend/internal/domain/entity"
)

// ProjectModel represents the projects table in the database.
type ProjectModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Location  string    `gorm:"type:varchar(255)"`
	Status    string    `gorm:"type:varchar(50);not null"`
	CompanyID uuid.UUID `gorm:"type:uuid;index;not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the ProjectModel.
func (ProjectModel) TableName() string {
	return "projects"
}

// ToEntity converts a ProjectModel to a domain Project entity.
func (m *ProjectModel) ToEntity() *entity.Project {
	return &entity.Project{
		ID:        m.ID,
		Name:      m.Name,
		Location:  m.Location,
		Status:    m.Status,
		CompanyID: m.CompanyID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// ProjectFromEntity creates a ProjectModel from a domain Project entity.
func ProjectFromEntity(project *entity.Project) *ProjectModel {
	return &ProjectModel{
		ID:        project.ID,
		Name:      project.Name,
		Location:  project.Location,
		Status:    project.Status,
		CompanyID: project.CompanyID,
		CreatedAt: project.CreatedAt,
		UpdatedAt: project.UpdatedAt,
	}
}
