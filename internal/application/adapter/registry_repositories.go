// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/expense-report/backend/internal/domain/entity"
)

// CompanyRepository defines the interface for company persistence operations.
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Company, error)
	FindByCNPJ(ctx context.Context, cnpj string) (*entity.Company, error)
	FindAll(ctx context.Context) ([]*entity.Company, error)
	Update(ctx context.Context, company *entity.Company) error
}

// ProjectRepository defines the interface for project persistence operations.
type ProjectRepository interface {
	Create(ctx context.Context, project *entity.Project) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Project, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Project, error)
	FindAll(ctx context.Context) ([]*entity.Project, error)
	Update(ctx context.Context, project *entity.Project) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CollaboratorRepository defines the interface for collaborator persistence operations.
type CollaboratorRepository interface {
	Create(ctx context.Context, collaborator *entity.Collaborator) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Collaborator, error)
	FindByCPF(ctx context.Context, cpf string) (*entity.Collaborator, error)
	FindAll(ctx context.Context) ([]*entity.Collaborator, error)
	Update(ctx context.Context, collaborator *entity.Collaborator) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}

// UserRepository defines the interface for administrator persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByCPF(ctx context.Context, cpf string) (*entity.User, error)
	FindAll(ctx context.Context) ([]*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id uuid.UUID) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}
