package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/expense-report/backend/internal/application/adapter"
	"github.com/expense-report/backend/internal/domain/entity"
	domainerror "github.com/expense-report/backend/internal/domain/error"
	"github.com/expense-report/backend/internal/integration/persistence/model"
)

// collaboratorRepository implements the adapter.CollaboratorRepository interface.
type collaboratorRepository struct {
	db *gorm.DB
}

// NewCollaboratorRepository creates a new collaborator repository instance.
func NewCollaboratorRepository(db *gorm.DB) adapter.CollaboratorRepository {
	return &collaboratorRepository{
		db: db,
	}
}

// Create creates a new collaborator in the database.
func (r *collaboratorRepository) Create(ctx context.Context, collaborator *entity.Collaborator) error {
	collaboratorModel := model.CollaboratorFromEntity(collaborator)
	result := r.db.WithContext(ctx).Create(collaboratorModel)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return domainerror.ErrCPFAlreadyExists
		}
		return result.Error
	}
	return nil
}

// FindByID retrieves a collaborator by their ID.
func (r *collaboratorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Collaborator, error) {
	var collaboratorModel model.CollaboratorModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&collaboratorModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCollaboratorNotFound
		}
		return nil, result.Error
	}
	return collaboratorModel.ToEntity(), nil
}

// FindByCPF retrieves a collaborator by their CPF.
func (r *collaboratorRepository) FindByCPF(ctx context.Context, cpf string) (*entity.Collaborator, error) {
	var collaboratorModel model.CollaboratorModel
	result := r.db.WithContext(ctx).Where("cpf = ?", cpf).First(&collaboratorModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCollaboratorNotFound
		}
		return nil, result.Error
	}
	return collaboratorModel.ToEntity(), nil
}

// FindAll retrieves all collaborators ordered by name.
func (r *collaboratorRepository) FindAll(ctx context.Context) ([]*entity.Collaborator, error) {
	var collaboratorModels []model.CollaboratorModel
	result := r.db.WithContext(ctx).Order("name asc").Find(&collaboratorModels)
	if result.Error != nil {
		return nil, result.Error
	}

	collaborators := make([]*entity.Collaborator, len(collaboratorModels))
	for i := range collaboratorModels {
		collaborators[i] = collaboratorModels[i].ToEntity()
	}
	return collaborators, nil
}

// Update updates an existing collaborator in the database.
func (r *collaboratorRepository) Update(ctx context.Context, collaborator *entity.Collaborator) error {
	collaboratorModel := model.CollaboratorFromEntity(collaborator)
	result := r.db.WithContext(ctx).Save(collaboratorModel)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return domainerror.ErrCPFAlreadyExists
		}
		return result.Error
	}
	return nil
}

// SetActive flips the active flag of a collaborator.
func (r *collaboratorRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	result := r.db.WithContext(ctx).
		Model(&model.CollaboratorModel{}).
		Where("id = ?", id).
		Update("active", active)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrCollaboratorNotFound
	}
	return nil
}
