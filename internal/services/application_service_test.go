package services

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/joblane/joblane-backend/internal/common"
	"github.com/joblane/joblane-backend/internal/models"
)

func seedJob(t *testing.T, jobs *fakeJobRepo) uuid.UUID {
	t.Helper()
	job := &models.Job{
		Title:       "Backend Engineer",
		Description: "Ship APIs",
		CompanyID:   uuid.New(),
		CreatedByID: uuid.New(),
	}
	if err := jobs.Create(context.Background(), job); err != nil {
		t.Fatalf("seed job failed: %v", err)
	}
	return job.ID
}

func TestApplyCreatesPendingApplication(t *testing.T) {
	applications := newFakeApplicationRepo()
	jobs := newFakeJobRepo()
	svc := NewApplicationService(applications, jobs)
	ctx := context.Background()
	jobID := seedJob(t, jobs)
	applicant := uuid.New()

	if err := svc.Apply(ctx, jobID, applicant); err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	stored, err := applications.FindByJobAndApplicant(ctx, jobID, applicant)
	if err != nil {
		t.Fatalf("application not stored: %v", err)
	}
	if stored.Status != models.ApplicationStatusPending {
		t.Fatalf("status = %q, want pending", stored.Status)
	}
	if applications.countForJob(jobID) != 1 {
		t.Fatalf("expected exactly one application for job")
	}
}

func TestApplyTwiceIsConflict(t *testing.T) {
	applications := newFakeApplicationRepo()
	jobs := newFakeJobRepo()
	svc := NewApplicationService(applications, jobs)
	ctx := context.Background()
	jobID := seedJob(t, jobs)
	applicant := uuid.New()

	if err := svc.Apply(ctx, jobID, applicant); err != nil {
		t.Fatalf("first apply failed: %v", err)
	}
	err := svc.Apply(ctx, jobID, applicant)
	if !common.Is(err, common.CodeConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
	if applications.countForJob(jobID) != 1 {
		t.Fatalf("duplicate apply changed the application set")
	}
}

func TestApplyToMissingJobCreatesNothing(t *testing.T) {
	applications := newFakeApplicationRepo()
	jobs := newFakeJobRepo()
	svc := NewApplicationService(applications, jobs)
	ctx := context.Background()
	jobID := uuid.New()
	applicant := uuid.New()

	err := svc.Apply(ctx, jobID, applicant)
	if !common.Is(err, common.CodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if applications.countForJob(jobID) != 0 {
		t.Fatal("application created for nonexistent job")
	}
}

func TestListForApplicantEmptyIsNotFound(t *testing.T) {
	svc := NewApplicationService(newFakeApplicationRepo(), newFakeJobRepo())

	_, err := svc.ListForApplicant(context.Background(), uuid.New())
	if !common.Is(err, common.CodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestListForApplicantNewestFirst(t *testing.T) {
	applications := newFakeApplicationRepo()
	jobs := newFakeJobRepo()
	svc := NewApplicationService(applications, jobs)
	ctx := context.Background()
	applicant := uuid.New()

	first := seedJob(t, jobs)
	second := seedJob(t, jobs)
	if err := svc.Apply(ctx, first, applicant); err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if err := svc.Apply(ctx, second, applicant); err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	listed, err := svc.ListForApplicant(ctx, applicant)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("expected 2 applications, got %d", len(listed))
	}
	if listed[0].JobID != second || listed[1].JobID != first {
		t.Fatal("applications not newest-first")
	}
}

func TestUpdateStatusLowercases(t *testing.T) {
	applications := newFakeApplicationRepo()
	jobs := newFakeJobRepo()
	svc := NewApplicationService(applications, jobs)
	ctx := context.Background()
	jobID := seedJob(t, jobs)
	applicant := uuid.New()

	if err := svc.Apply(ctx, jobID, applicant); err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	stored, err := applications.FindByJobAndApplicant(ctx, jobID, applicant)
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}

	if err := svc.UpdateStatus(ctx, stored.ID, "Accepted"); err != nil {
		t.Fatalf("update status failed: %v", err)
	}
	updated, err := applications.FindByID(ctx, stored.ID)
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if updated.Status != models.ApplicationStatusAccepted {
		t.Fatalf("status = %q, want accepted", updated.Status)
	}
}

func TestUpdateStatusRejectsUnknownValue(t *testing.T) {
	applications := newFakeApplicationRepo()
	jobs := newFakeJobRepo()
	svc := NewApplicationService(applications, jobs)
	ctx := context.Background()
	jobID := seedJob(t, jobs)
	applicant := uuid.New()

	if err := svc.Apply(ctx, jobID, applicant); err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	stored, err := applications.FindByJobAndApplicant(ctx, jobID, applicant)
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}

	err = svc.UpdateStatus(ctx, stored.ID, "hired")
	if !common.Is(err, common.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	unchanged, err := applications.FindByID(ctx, stored.ID)
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if unchanged.Status != models.ApplicationStatusPending {
		t.Fatalf("status mutated to %q", unchanged.Status)
	}
}

func TestUpdateStatusUnknownApplication(t *testing.T) {
	svc := NewApplicationService(newFakeApplicationRepo(), newFakeJobRepo())

	err := svc.UpdateStatus(context.Background(), uuid.New(), "accepted")
	if !common.Is(err, common.CodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
