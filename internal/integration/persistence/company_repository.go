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

// companyRepository implements the adapter.CompanyRepository interface.
type companyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository creates a new company repository instance.
func NewCompanyRepository(db *gorm.DB) adapter.CompanyRepository {
	return &companyRepository{
		db: db,
	}
}

// Create creates a new company in the database.
func (r *companyRepository) Create(ctx context.Context, company *entity.Company) error {
	companyModel := model.CompanyFromEntity(company)
	result := r.db.WithContext(ctx).Create(companyModel)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return domainerror.ErrCNPJAlreadyExists
		}
		return result.Error
	}
	return nil
}

// FindByID retrieves a company by its ID.
func (r *companyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Company, error) {
	var companyModel model.CompanyModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&companyModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCompanyNotFound
		}
		return nil, result.Error
	}
	return companyModel.ToEntity(), nil
}

// FindByCNPJ retrieves a company by its CNPJ.
func (r *companyRepository) FindByCNPJ(ctx context.Context, cnpj string) (*entity.Company, error) {
	var companyModel model.CompanyModel
	result := r.db.WithContext(ctx).Where("cnpj = ?", cnpj).First(&companyModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCompanyNotFound
		}
		return nil, result.Error
	}
	return companyModel.ToEntity(), nil
}

// FindAll retrieves all companies ordered by legal name.
func (r *companyRepository) FindAll(ctx context.Context) ([]*entity.Company, error) {
	var companyModels []model.CompanyModel
	result := r.db.WithContext(ctx).Order("legal_name asc").Find(&companyModels)
	if result.Error != nil {
		return nil, result.Error
	}

	companies := make([]*entity.Company, len(companyModels))
	for i := range companyModels {
		companies[i] = companyModels[i].ToEntity()
	}
	return companies, nil
}

// Update updates an existing company in the database.
func (r *companyRepository) Update(ctx context.Context, company *entity.Company) error {
	companyModel := model.CompanyFromEntity(company)
	result := r.db.WithContext(ctx).Save(companyModel)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return domainerror.ErrCNPJAlreadyExists
		}
		return result.Error
	}
	return nil
}
