// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Company represents a business unit (empresa) that owns projects and
// employs collaborators.
type Company struct {
	ID        uuid.UUID
	LegalName string // razão social
	CNPJ      string // formatted XX.XXX.XXX/XXXX-XX, unique
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCompany creates a new Company entity.
func NewCompany(legalName, cnpj, address string) *Company {
	now := time.Now().UTC()
	return &Company{
		ID:        uuid.New(),
		LegalName: legalName,
		CNPJ:      cnpj,
		Address:   address,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
