package services

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/joblane/joblane-backend/internal/common"
	"github.com/joblane/joblane-backend/internal/models"
)

type fakeUploader struct {
	calls int
}

func (u *fakeUploader) Upload(ctx context.Context, data []byte, filename string) (string, error) {
	u.calls++
	return "https://cdn.example.com/" + filename, nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	byID  map[uuid.UUID]*models.User
	clock time.Time
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: make(map[uuid.UUID]*models.User), clock: time.Now().UTC()}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.byID {
		if existing.Email == user.Email {
			return common.NewError(common.CodeConflict, "User already exists with this email.", nil)
		}
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = r.clock
	user.UpdatedAt = r.clock
	clone := *user
	r.byID[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.byID {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, common.NewError(common.CodeNotFound, "User not found.", nil)
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.byID[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "User not found.", nil)
	}
	clone := *user
	return &clone, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[user.ID]; !ok {
		return common.NewError(common.CodeNotFound, "User not found.", nil)
	}
	clone := *user
	r.byID[user.ID] = &clone
	return nil
}

type fakeCompanyRepo struct {
	mu   sync.Mutex
	byID map[uuid.UUID]*models.Company
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{byID: make(map[uuid.UUID]*models.Company)}
}

func (r *fakeCompanyRepo) Create(ctx context.Context, company *models.Company) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.byID {
		if existing.Name == company.Name {
			return common.NewError(common.CodeConflict, "You can't register the same company.", nil)
		}
	}
	if company.ID == uuid.Nil {
		company.ID = uuid.New()
	}
	clone := *company
	r.byID[company.ID] = &clone
	return nil
}

func (r *fakeCompanyRepo) FindByName(ctx context.Context, name string) (*models.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, company := range r.byID {
		if company.Name == name {
			clone := *company
			return &clone, nil
		}
	}
	return nil, common.NewError(common.CodeNotFound, "Company not found.", nil)
}

func (r *fakeCompanyRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	company, ok := r.byID[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "Company not found.", nil)
	}
	clone := *company
	return &clone, nil
}

func (r *fakeCompanyRepo) FindByOwner(ctx context.Context, userID uuid.UUID) ([]models.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var companies []models.Company
	for _, company := range r.byID {
		if company.UserID == userID {
			companies = append(companies, *company)
		}
	}
	return companies, nil
}

func (r *fakeCompanyRepo) Update(ctx context.Context, company *models.Company) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[company.ID]; !ok {
		return common.NewError(common.CodeNotFound, "Company not found.", nil)
	}
	clone := *company
	r.byID[company.ID] = &clone
	return nil
}

type fakeJobRepo struct {
	mu   sync.Mutex
	byID map[uuid.UUID]*models.Job
	seq  time.Time
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{byID: make(map[uuid.UUID]*models.Job), seq: time.Now().UTC()}
}

func (r *fakeJobRepo) Create(ctx context.Context, job *models.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if job.ID == uuid.Nil {
		job.ID = uuid.New()
	}
	// Monotonic timestamps so newest-first ordering is deterministic.
	r.seq = r.seq.Add(time.Second)
	job.CreatedAt = r.seq
	clone := *job
	r.byID[job.ID] = &clone
	return nil
}

func (r *fakeJobRepo) Search(ctx context.Context, keyword string) ([]models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	needle := strings.ToLower(keyword)
	var jobs []models.Job
	for _, job := range r.byID {
		if strings.Contains(strings.ToLower(job.Title), needle) ||
			strings.Contains(strings.ToLower(job.Description), needle) {
			jobs = append(jobs, *job)
		}
	}
	sort.Slice(jobs, func(i, j int) bool { return jobs[i].CreatedAt.After(jobs[j].CreatedAt) })
	return jobs, nil
}

func (r *fakeJobRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.byID[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "Job not found.", nil)
	}
	clone := *job
	return &clone, nil
}

func (r *fakeJobRepo) FindByIDWithApplicants(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	return r.FindByID(ctx, id)
}

func (r *fakeJobRepo) FindByCreator(ctx context.Context, userID uuid.UUID) ([]models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var jobs []models.Job
	for _, job := range r.byID {
		if job.CreatedByID == userID {
			jobs = append(jobs, *job)
		}
	}
	sort.Slice(jobs, func(i, j int) bool { return jobs[i].CreatedAt.After(jobs[j].CreatedAt) })
	return jobs, nil
}

type fakeApplicationRepo struct {
	mu   sync.Mutex
	byID map[uuid.UUID]*models.Application
	seq  time.Time
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{byID: make(map[uuid.UUID]*models.Application), seq: time.Now().UTC()}
}

func (r *fakeApplicationRepo) Create(ctx context.Context, application *models.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	// Mirrors the (job_id, applicant_id) unique index.
	for _, existing := range r.byID {
		if existing.JobID == application.JobID && existing.ApplicantID == application.ApplicantID {
			return common.NewError(common.CodeConflict, "You have already applied for this job.", nil)
		}
	}
	if application.ID == uuid.Nil {
		application.ID = uuid.New()
	}
	r.seq = r.seq.Add(time.Second)
	application.CreatedAt = r.seq
	clone := *application
	r.byID[application.ID] = &clone
	return nil
}

func (r *fakeApplicationRepo) FindByJobAndApplicant(ctx context.Context, jobID, applicantID uuid.UUID) (*models.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, application := range r.byID {
		if application.JobID == jobID && application.ApplicantID == applicantID {
			clone := *application
			return &clone, nil
		}
	}
	return nil, common.NewError(common.CodeNotFound, "Application not found.", nil)
}

func (r *fakeApplicationRepo) FindByApplicant(ctx context.Context, applicantID uuid.UUID) ([]models.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var applications []models.Application
	for _, application := range r.byID {
		if application.ApplicantID == applicantID {
			applications = append(applications, *application)
		}
	}
	sort.Slice(applications, func(i, j int) bool {
		return applications[i].CreatedAt.After(applications[j].CreatedAt)
	})
	return applications, nil
}

func (r *fakeApplicationRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	application, ok := r.byID[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "Application not found.", nil)
	}
	clone := *application
	return &clone, nil
}

func (r *fakeApplicationRepo) Update(ctx context.Context, application *models.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[application.ID]; !ok {
		return common.NewError(common.CodeNotFound, "Application not found.", nil)
	}
	clone := *application
	r.byID[application.ID] = &clone
	return nil
}

func (r *fakeApplicationRepo) countForJob(jobID uuid.UUID) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, application := range r.byID {
		if application.JobID == jobID {
			count++
		}
	}
	return count
}
