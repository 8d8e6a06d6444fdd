// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Collaborator represents a field employee who submits expenses.
type Collaborator struct {
	ID           uuid.UUID
	Name         string
	CPF          string // formatted XXX.XXX.XXX-XX, unique
	PasswordHash string
	CardNumber   string // last 4 digits of the payment card
	Active       bool
	CompanyID    uuid.UUID
	ProjectIDs   []uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewCollaborator creates a new active Collaborator entity.
func NewCollaborator(name, cpf, passwordHash, cardNumber string, companyID uuid.UUID, projectIDs []uuid.UUID) *Collaborator {
	now := time.Now().UTC()
	return &Collaborator{
		ID:           uuid.New(),
		Name:         name,
		CPF:          cpf,
		PasswordHash: passwordHash,
		CardNumber:   cardNumber,
		Active:       true,
		CompanyID:    companyID,
		ProjectIDs:   projectIDs,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
