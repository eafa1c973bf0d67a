package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

const (
	RoleStudent   = "student"
	RoleRecruiter = "recruiter"
)

const (
	ApplicationStatusPending  = "pending"
	ApplicationStatusAccepted = "accepted"
	ApplicationStatusRejected = "rejected"
)

// Profile is embedded in User; the column prefix keeps the users table flat.
type Profile struct {
	Bio                string         `json:"bio"`
	Skills             pq.StringArray `gorm:"type:text[]" json:"skills"`
	Resume             string         `json:"resume"`
	ResumeOriginalName string         `json:"resumeOriginalName"`
	ProfilePhoto       string         `gorm:"default:''" json:"profilePhoto"`
	CompanyID          *uuid.UUID     `gorm:"type:uuid" json:"company,omitempty"`
}

type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Fullname    string `gorm:"not null" json:"fullname"`
	Email       string `gorm:"uniqueIndex;not null" json:"email"`
	PhoneNumber string `gorm:"not null" json:"phoneNumber"`
	// Never serialized; handlers only ever return users through this model.
	Password string  `gorm:"not null" json:"-"`
	Role     string  `gorm:"not null" json:"role"`
	Profile  Profile `gorm:"embedded;embeddedPrefix:profile_" json:"profile"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

type Company struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name        string `gorm:"uniqueIndex;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Website     string `json:"website"`
	Location    string `json:"location"`
	Logo        string `json:"logo"`

	// The recruiter who registered the company.
	UserID uuid.UUID `gorm:"type:uuid;not null;index" json:"userId"`
}

func (c *Company) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

type Job struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Title           string         `gorm:"not null" json:"title"`
	Description     string         `gorm:"type:text;not null" json:"description"`
	Requirements    pq.StringArray `gorm:"type:text[]" json:"requirements"`
	Salary          float64        `gorm:"not null" json:"salary"`
	Location        string         `gorm:"not null" json:"location"`
	JobType         string         `gorm:"not null" json:"jobType"`
	ExperienceLevel string         `gorm:"not null" json:"experienceLevel"`
	Position        int            `gorm:"not null" json:"position"`

	CompanyID uuid.UUID `gorm:"type:uuid;not null;index" json:"companyId"`
	// 'omitempty' prevents infinite loops when fetching a Job -> Company -> Jobs -> ...
	Company *Company `json:"company,omitempty"`

	CreatedByID uuid.UUID `gorm:"type:uuid;not null;index" json:"created_by"`
	CreatedBy   *User     `gorm:"foreignKey:CreatedByID" json:"-"`

	// Back-reference set; kept unique by the (job_id, applicant_id) index on
	// applications, so inserting a duplicate application is impossible.
	Applications []Application `gorm:"foreignKey:JobID" json:"applications,omitempty"`
}

func (j *Job) BeforeCreate(tx *gorm.DB) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	return nil
}

type Application struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	JobID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_job_applicant" json:"jobId"`
	Job   *Job      `json:"job,omitempty"`

	ApplicantID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_job_applicant" json:"applicantId"`
	Applicant   *User     `gorm:"foreignKey:ApplicantID" json:"applicant,omitempty"`

	Status string `gorm:"not null;default:'pending'" json:"status"`
}

func (a *Application) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
