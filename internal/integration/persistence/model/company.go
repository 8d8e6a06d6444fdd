package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/expense-report/backend/internal/domain/entity"
)

// CompanyModel represents the companies table in the database.
type CompanyModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	LegalName string    `gorm:"type:varchar(255);not null"`
	CNPJ      string    `gorm:"type:varchar(18);uniqueIndex;not null"`
	Address   string    `gorm:"type:varchar(255)"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the CompanyModel.
func (CompanyModel) TableName() string {
	return "companies"
}

// ToEntity converts a CompanyModel to a domain Company entity.
func (m *CompanyModel) ToEntity() *entity.Company {
	return &entity.Company{
		ID:        m.ID,
		LegalName: m.LegalName,
		CNPJ:      m.CNPJ,
		Address:   m.Address,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// CompanyFromEntity creates a CompanyModel from a domain Company entity.
func CompanyFromEntity(company *entity.Company) *CompanyModel {
	return &CompanyModel{
		ID:        company.ID,
		LegalName: company.LegalName,
		CNPJ:      company.CNPJ,
		Address:   company.Address,
		CreatedAt: company.CreatedAt,
		UpdatedAt: company.UpdatedAt,
	}
}
