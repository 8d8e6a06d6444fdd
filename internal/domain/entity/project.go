// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProjectStatusInProgress is the default status for new projects.
const ProjectStatusInProgress = "EM ANDAMENTO"

// Project represents a work engagement owned by a company.
type Project struct {
	ID        uuid.UUID
	Name      string
	Location  string
	Status    string
	CompanyID uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewProject creates a new Project entity. An empty status defaults to
// ProjectStatusInProgress.
func NewProject(name, location, status string, companyID uuid.UUID) *Project {
	if status == "" {
		status = ProjectStatusInProgress
	}
	now := time.Now().UTC()
	return &Project{
		ID:        uuid.New(),
		Name:      name,
		Location:  location,
		Status:    status,
		CompanyID: companyID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
