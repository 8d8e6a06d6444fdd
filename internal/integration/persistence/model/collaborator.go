package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/expense-report/backend/internal/domain/entity"
)

// CollaboratorModel represents the collaborators table in the database.
// Project assignments are stored as a uuid array column rather than a join
// table; assignments are always read and written as a whole.
type CollaboratorModel struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name         string         `gorm:"type:varchar(100);not null"`
	CPF          string         `gorm:"type:varchar(14);uniqueIndex;not null"`
	PasswordHash string         `gorm:"type:varchar(255);not null"`
	CardNumber   string         `gorm:"type:varchar(4);not null"`
	Active       bool           `gorm:"default:true"`
	CompanyID    uuid.UUID      `gorm:"type:uuid;index"`
	ProjectIDs   pq.StringArray `gorm:"type:uuid[]"`
	CreatedAt    time.Time      `gorm:"not null"`
	UpdatedAt    time.Time      `gorm:"not null"`
}

// TableName returns the table name for the CollaboratorModel.
func (CollaboratorModel) TableName() string {
	return "collaborators"
}

// ToEntity converts a CollaboratorModel to a domain Collaborator entity.
// Malformed array members are skipped.
func (m *CollaboratorModel) ToEntity() *entity.Collaborator {
	projectIDs := make([]uuid.UUID, 0, len(m.ProjectIDs))
	for _, raw := range m.ProjectIDs {
		if id, err := uuid.Parse(raw); err == nil {
			projectIDs = append(projectIDs, id)
		}
	}

	return &entity.Collaborator{
		ID:           m.ID,
		Name:         m.Name,
		CPF:          m.CPF,
		PasswordHash: m.PasswordHash,
		CardNumber:   m.CardNumber,
		Active:       m.Active,
		CompanyID:    m.CompanyID,
		ProjectIDs:   projectIDs,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// CollaboratorFromEntity creates a CollaboratorModel from a domain Collaborator entity.
func CollaboratorFromEntity(collaborator *entity.Collaborator) *CollaboratorModel {
	projectIDs := make(pq.StringArray, len(collaborator.ProjectIDs))
	for i, id := range collaborator.ProjectIDs {
		projectIDs[i] = id.String()
	}

	return &CollaboratorModel{
		ID:           collaborator.ID,
		Name:         collaborator.Name,
		CPF:          collaborator.CPF,
		PasswordHash: collaborator.PasswordHash,
		CardNumber:   collaborator.CardNumber,
		Active:       collaborator.Active,
		CompanyID:    collaborator.CompanyID,
		ProjectIDs:   projectIDs,
		CreatedAt:    collaborator.CreatedAt,
		UpdatedAt:    collaborator.UpdatedAt,
	}
}
