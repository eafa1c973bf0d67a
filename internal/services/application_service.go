package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/joblane/joblane-backend/internal/common"
	"github.com/joblane/joblane-backend/internal/models"
	"github.com/joblane/joblane-backend/internal/repository"
)

type ApplicationService struct {
	applications repository.ApplicationRepository
	jobs         repository.JobRepository
}

func NewApplicationService(applications repository.ApplicationRepository, jobs repository.JobRepository) *ApplicationService {
	return &ApplicationService{applications: applications, jobs: jobs}
}

// Apply creates a pending application for (job, applicant). The existence
// check gives the friendly conflict response; the unique index on the pair
// closes the read-then-write race on concurrent duplicate applies.
func (s *ApplicationService) Apply(ctx context.Context, jobID, applicantID uuid.UUID) error {
	if _, err := s.applications.FindByJobAndApplicant(ctx, jobID, applicantID); err == nil {
		return common.NewError(common.CodeConflict, "You have already applied for this job.", nil)
	} else if !common.Is(err, common.CodeNotFound) {
		return err
	}

	if _, err := s.jobs.FindByID(ctx, jobID); err != nil {
		return err
	}

	application := &models.Application{
		JobID:       jobID,
		ApplicantID: applicantID,
		Status:      models.ApplicationStatusPending,
	}
	return s.applications.Create(ctx, application)
}

func (s *ApplicationService) ListForApplicant(ctx context.Context, applicantID uuid.UUID) ([]models.Application, error) {
	applications, err := s.applications.FindByApplicant(ctx, applicantID)
	if err != nil {
		return nil, err
	}
	if len(applications) == 0 {
		return nil, common.NewError(common.CodeNotFound, "No applications found.", nil)
	}
	return applications, nil
}

// Applicants returns the job with its applications and each application's
// full applicant record.
func (s *ApplicationService) Applicants(ctx context.Context, jobID uuid.UUID) (*models.Job, error) {
	return s.jobs.FindByIDWithApplicants(ctx, jobID)
}

// UpdateStatus lowercases the requested status and enforces the enum at this
// boundary rather than trusting the schema default.
func (s *ApplicationService) UpdateStatus(ctx context.Context, applicationID uuid.UUID, status string) error {
	normalized := strings.ToLower(strings.TrimSpace(status))
	switch normalized {
	case models.ApplicationStatusPending, models.ApplicationStatusAccepted, models.ApplicationStatusRejected:
	default:
		return common.NewValidationError("Invalid status value.")
	}

	application, err := s.applications.FindByID(ctx, applicationID)
	if err != nil {
		return err
	}
	application.Status = normalized
	return s.applications.Update(ctx, application)
}
