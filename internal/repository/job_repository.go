package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/joblane/joblane-backend/internal/common"
	"github.com/joblane/joblane-backend/internal/models"
)

type JobRepository interface {
	Create(ctx context.Context, job *models.Job) error
	// Search matches keyword as a case-insensitive substring of title or
	// description; an empty keyword matches everything. Results come back
	// newest-first with the company populated.
	Search(ctx context.Context, keyword string) ([]models.Job, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Job, error)
	// FindByIDWithApplicants also resolves each application's applicant.
	FindByIDWithApplicants(ctx context.Context, id uuid.UUID) (*models.Job, error)
	FindByCreator(ctx context.Context, userID uuid.UUID) ([]models.Job, error)
}

type gormJobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &gormJobRepository{db: db}
}

func (r *gormJobRepository) Create(ctx context.Context, job *models.Job) error {
	if err := r.db.WithContext(ctx).Create(job).Error; err != nil {
		return common.NewError(common.CodeInternal, "failed to create job", err)
	}
	return nil
}

func (r *gormJobRepository) Search(ctx context.Context, keyword string) ([]models.Job, error) {
	pattern := "%" + keyword + "%"
	var jobs []models.Job
	err := r.db.WithContext(ctx).
		Where("title ILIKE ? OR description ILIKE ?", pattern, pattern).
		Preload("Company").
		Order("created_at DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to search jobs", err)
	}
	return jobs, nil
}

func (r *gormJobRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	var job models.Job
	err := r.db.WithContext(ctx).
		Preload("Applications").
		First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewError(common.CodeNotFound, "Job not found.", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to query job", err)
	}
	return &job, nil
}

func (r *gormJobRepository) FindByIDWithApplicants(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	var job models.Job
	err := r.db.WithContext(ctx).
		Preload("Applications", func(db *gorm.DB) *gorm.DB {
			return db.Order("applications.created_at DESC")
		}).
		Preload("Applications.Applicant").
		First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewError(common.CodeNotFound, "Job not found.", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to query job", err)
	}
	return &job, nil
}

func (r *gormJobRepository) FindByCreator(ctx context.Context, userID uuid.UUID) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.WithContext(ctx).
		Where("created_by_id = ?", userID).
		Preload("Company").
		Order("created_at DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to query jobs", err)
	}
	return jobs, nil
}
