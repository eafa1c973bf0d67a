package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/joblane/joblane-backend/internal/common"
	"github.com/joblane/joblane-backend/internal/models"
)

type ApplicationRepository interface {
	// Create relies on the (job_id, applicant_id) unique index: a concurrent
	// duplicate apply surfaces as a conflict here even when the service-level
	// existence check raced.
	Create(ctx context.Context, application *models.Application) error
	FindByJobAndApplicant(ctx context.Context, jobID, applicantID uuid.UUID) (*models.Application, error)
	FindByApplicant(ctx context.Context, applicantID uuid.UUID) ([]models.Application, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Application, error)
	Update(ctx context.Context, application *models.Application) error
}

type gormApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &gormApplicationRepository{db: db}
}

func (r *gormApplicationRepository) Create(ctx context.Context, application *models.Application) error {
	if err := r.db.WithContext(ctx).Create(application).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return common.NewError(common.CodeConflict, "You have already applied for this job.", err)
		}
		return common.NewError(common.CodeInternal, "failed to create application", err)
	}
	return nil
}

func (r *gormApplicationRepository) FindByJobAndApplicant(ctx context.Context, jobID, applicantID uuid.UUID) (*models.Application, error) {
	var application models.Application
	err := r.db.WithContext(ctx).
		Where("job_id = ? AND applicant_id = ?", jobID, applicantID).
		First(&application).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewError(common.CodeNotFound, "Application not found.", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to query application", err)
	}
	return &application, nil
}

func (r *gormApplicationRepository) FindByApplicant(ctx context.Context, applicantID uuid.UUID) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.WithContext(ctx).
		Where("applicant_id = ?", applicantID).
		Preload("Job").
		Preload("Job.Company").
		Order("created_at DESC").
		Find(&applications).Error
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to query applications", err)
	}
	return applications, nil
}

func (r *gormApplicationRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Application, error) {
	var application models.Application
	if err := r.db.WithContext(ctx).First(&application, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewError(common.CodeNotFound, "Application not found.", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to query application", err)
	}
	return &application, nil
}

func (r *gormApplicationRepository) Update(ctx context.Context, application *models.Application) error {
	if err := r.db.WithContext(ctx).Save(application).Error; err != nil {
		return common.NewError(common.CodeInternal, "failed to update application", err)
	}
	return nil
}
