package domain

import (
	"context"
	"time"
)

// JobStatus is the lifecycle state of a posting.
type JobStatus string

const (
	JobStatusActive JobStatus = "active"
	JobStatusClosed JobStatus = "closed"
	JobStatusDraft  JobStatus = "draft"
)

type Job struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Company          string    `json:"company"`
	Department       string    `json:"department"`
	Location         string    `json:"location"`
	EmploymentType   string    `json:"employmentType"`
	ExperienceLevel  string    `json:"experienceLevel"`
	Salary           *int      `json:"salary"`
	Description      string    `json:"description"`
	Responsibilities string    `json:"responsibilities"`
	Requirements     string    `json:"requirements"`
	Skills           []string  `json:"skills"`
	Status           JobStatus `json:"status"`
	CreatedAt        time.Time `json:"createdAt"`
	CreatedBy        string    `json:"createdBy"`
	// ApplicationIDs mirrors Application.JobID and is maintained by the Store.
	ApplicationIDs []string `json:"applicationIds"`
}

// JobInput carries the caller-supplied fields of a new job.
type JobInput struct {
	Title            string    `json:"title" validate:"required,no_emoji"`
	Company          string    `json:"company"`
	Department       string    `json:"department"`
	Location         string    `json:"location"`
	EmploymentType   string    `json:"employmentType"`
	ExperienceLevel  string    `json:"experienceLevel"`
	Salary           *int      `json:"salary" validate:"omitempty,gte=0"`
	Description      string    `json:"description" validate:"required,no_emoji"`
	Responsibilities string    `json:"responsibilities"`
	Requirements     string    `json:"requirements"`
	Skills           []string  `json:"skills"`
	Status           JobStatus `json:"status" validate:"omitempty,oneof=active closed draft"`
	CreatedBy        string    `json:"createdBy"`
}

// JobPatch is a merge patch: nil fields are left untouched.
type JobPatch struct {
	Title            *string    `json:"title" validate:"omitempty,min=1,no_emoji"`
	Company          *string    `json:"company"`
	Department       *string    `json:"department"`
	Location         *string    `json:"location"`
	EmploymentType   *string    `json:"employmentType"`
	ExperienceLevel  *string    `json:"experienceLevel"`
	Salary           *int       `json:"salary" validate:"omitempty,gte=0"`
	Description      *string    `json:"description" validate:"omitempty,min=1,no_emoji"`
	Responsibilities *string    `json:"responsibilities"`
	Requirements     *string    `json:"requirements"`
	Skills           *[]string  `json:"skills"`
	Status           *JobStatus `json:"status" validate:"omitempty,oneof=active closed draft"`
}

// JobFilter narrows ListJobs. Empty fields match everything; Department and
// Skill are case-insensitive substring matches.
type JobFilter struct {
	Department string
	Skill      string
	Status     JobStatus
}

type JobUsecase interface {
	CreateJob(ctx context.Context, input JobInput) (*Job, error)
	GetJob(ctx context.Context, id string) (*Job, error)
	ListJobs(ctx context.Context, filter JobFilter) []Job
	UpdateJob(ctx context.Context, id string, patch JobPatch) (*Job, error)
	DeleteJob(ctx context.Context, id string) error
}
