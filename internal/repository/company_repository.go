package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/joblane/joblane-backend/internal/common"
	"github.com/joblane/joblane-backend/internal/models"
)

type CompanyRepository interface {
	Create(ctx context.Context, company *models.Company) error
	FindByName(ctx context.Context, name string) (*models.Company, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Company, error)
	FindByOwner(ctx context.Context, userID uuid.UUID) ([]models.Company, error)
	Update(ctx context.Context, company *models.Company) error
}

type gormCompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &gormCompanyRepository{db: db}
}

func (r *gormCompanyRepository) Create(ctx context.Context, company *models.Company) error {
	if err := r.db.WithContext(ctx).Create(company).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return common.NewError(common.CodeConflict, "You can't register the same company.", err)
		}
		return common.NewError(common.CodeInternal, "failed to create company", err)
	}
	return nil
}

func (r *gormCompanyRepository) FindByName(ctx context.Context, name string) (*models.Company, error) {
	var company models.Company
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&company).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewError(common.CodeNotFound, "Company not found.", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to query company", err)
	}
	return &company, nil
}

func (r *gormCompanyRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Company, error) {
	var company models.Company
	if err := r.db.WithContext(ctx).First(&company, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewError(common.CodeNotFound, "Company not found.", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to query company", err)
	}
	return &company, nil
}

func (r *gormCompanyRepository) FindByOwner(ctx context.Context, userID uuid.UUID) ([]models.Company, error) {
	var companies []models.Company
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&companies).Error; err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to query companies", err)
	}
	return companies, nil
}

func (r *gormCompanyRepository) Update(ctx context.Context, company *models.Company) error {
	if err := r.db.WithContext(ctx).Save(company).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return common.NewError(common.CodeConflict, "You can't register the same company.", err)
		}
		return common.NewError(common.CodeInternal, "failed to update company", err)
	}
	return nil
}
