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

// projectRepository implements the adapter.ProjectRepository interface.
type projectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository instance.
func NewProjectRepository(db *gorm.DB) adapter.ProjectRepository {
	return &projectRepository{
		db: db,
	}
}

// Create creates a new project in the database.
func (r *projectRepository) Create(ctx context.Context, project *entity.Project) error {
	projectModel := model.ProjectFromEntity(project)
	result := r.db.WithContext(ctx).Create(projectModel)
	return result.Error
}

// FindByID retrieves a project by its ID.
func (r *projectRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Project, error) {
	var projectModel model.ProjectModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&projectModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrProjectNotFound
		}
		return nil, result.Error
	}
	return projectModel.ToEntity(), nil
}

// FindByIDs retrieves the projects matching the given IDs. Missing IDs are
// not an error; the caller compares lengths when every ID must exist.
func (r *projectRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Project, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var projectModels []model.ProjectModel
	result := r.db.WithContext(ctx).Where("id IN ?", ids).Order("name asc").Find(&projectModels)
	if result.Error != nil {
		return nil, result.Error
	}

	projects := make([]*entity.Project, len(projectModels))
	for i := range projectModels {
		projects[i] = projectModels[i].ToEntity()
	}
	return projects, nil
}

// FindAll retrieves all projects ordered by name.
func (r *projectRepository) FindAll(ctx context.Context) ([]*entity.Project, error) {
	var projectModels []model.ProjectModel
	result := r.db.WithContext(ctx).Order("name asc").Find(&projectModels)
	if result.Error != nil {
		return nil, result.Error
	}

	projects := make([]*entity.Project, len(projectModels))
	for i := range projectModels {
		projects[i] = projectModels[i].ToEntity()
	}
	return projects, nil
}

// Update updates an existing project in the database.
func (r *projectRepository) Update(ctx context.Context, project *entity.Project) error {
	projectModel := model.ProjectFromEntity(project)
	result := r.db.WithContext(ctx).Save(projectModel)
	return result.Error
}

// Delete removes a project from the database.
func (r *projectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.ProjectModel{}, "id = ?", id)
	return result.Error
}
