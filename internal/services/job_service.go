package services

import (
	"context"
	"strconv"

	"github.com/google/uuid"

	"github.com/joblane/joblane-backend/internal/common"
	"github.com/joblane/joblane-backend/internal/dtos"
	"github.com/joblane/joblane-backend/internal/models"
	"github.com/joblane/joblane-backend/internal/repository"
)

type JobService struct {
	jobs repository.JobRepository
}

func NewJobService(jobs repository.JobRepository) *JobService {
	return &JobService{jobs: jobs}
}

func (s *JobService) Post(ctx context.Context, req *dtos.PostJobRequest, creatorID uuid.UUID) (*models.Job, error) {
	companyID, err := uuid.Parse(req.CompanyID)
	if err != nil {
		return nil, common.NewValidationError("Invalid company id.")
	}
	salary, err := strconv.ParseFloat(req.Salary, 64)
	if err != nil {
		return nil, common.NewValidationError("Salary must be a number.")
	}
	position, err := strconv.Atoi(req.Position)
	if err != nil {
		return nil, common.NewValidationError("Position must be a number.")
	}

	job := &models.Job{
		Title:           req.Title,
		Description:     req.Description,
		Requirements:    splitCSV(req.Requirements),
		Salary:          salary,
		Location:        req.Location,
		JobType:         req.JobType,
		ExperienceLevel: req.Experience,
		Position:        position,
		CompanyID:       companyID,
		CreatedByID:     creatorID,
	}
	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

// Search returns jobs whose title or description contains the keyword,
// newest-first with the company populated. An empty result set surfaces as
// not-found for wire compatibility.
func (s *JobService) Search(ctx context.Context, keyword string) ([]models.Job, error) {
	jobs, err := s.jobs.Search(ctx, keyword)
	if err != nil {
		return nil, err
	}
	if len(jobs) == 0 {
		return nil, common.NewError(common.CodeNotFound, "Jobs not found.", nil)
	}
	return jobs, nil
}

func (s *JobService) GetByID(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	return s.jobs.FindByID(ctx, id)
}

func (s *JobService) ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]models.Job, error) {
	jobs, err := s.jobs.FindByCreator(ctx, creatorID)
	if err != nil {
		return nil, err
	}
	if len(jobs) == 0 {
		return nil, common.NewError(common.CodeNotFound, "Jobs not found.", nil)
	}
	return jobs, nil
}
