// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Role identifies the kind of principal behind an authenticated request.
type Role string

const (
	RoleAdmin        Role = "admin"
	RoleCollaborator Role = "collaborator"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleCollaborator
}

// User represents an administrator account.
type User struct {
	ID           uuid.UUID
	Name         string
	CPF          string // formatted XXX.XXX.XXX-XX, unique
	PasswordHash string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a new active administrator.
func NewUser(name, cpf, passwordHash string) *User {
	now := time.Now().UTC()
	return &User{
		ID:           uuid.New(),
		Name:         name,
		CPF:          cpf,
		PasswordHash: passwordHash,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Principal is the authenticated identity attached to a request, tagged with
// an explicit role instead of relying on the concrete record type.
type Principal struct {
	ID   uuid.UUID
	Name string
	Role Role
}

// IsAdmin reports whether the principal has administrator privileges.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}
