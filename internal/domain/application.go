package domain

import (
	"context"
	"time"
)

// ApplicationStatus tracks a candidate through the hiring funnel.
type ApplicationStatus string

// Application status constants
const (
	ApplicationStatusApplied     ApplicationStatus = "applied"
	ApplicationStatusReviewed    ApplicationStatus = "reviewed"
	ApplicationStatusInterviewed ApplicationStatus = "interviewed"
	ApplicationStatusHired       ApplicationStatus = "hired"
	ApplicationStatusRejected    ApplicationStatus = "rejected"
)

// Application represents a job application from a candidate
type Application struct {
	ID              string            `json:"id"`
	JobID           string            `json:"jobId"`
	CandidateID     string            `json:"candidateId"`
	CandidateName   string            `json:"candidateName"`
	CandidateEmail  string            `json:"candidateEmail"`
	ResumeReference *string           `json:"resumeReference"` // opaque handle, stored verbatim
	MatchScore      int               `json:"matchScore"`      // 0..100
	AppliedAt       time.Time         `json:"appliedAt"`
	Status          ApplicationStatus `json:"status"`
}

// CandidateInfo is what a candidate submits when applying.
type CandidateInfo struct {
	ID              string   `json:"id" validate:"required"`
	Name            string   `json:"name"`
	Email           string   `json:"email" validate:"omitempty,email"`
	ResumeReference *string  `json:"resumeReference"`
	Skills          []string `json:"skills"`
}

// ApplicationPatch only exposes status: everything else is fixed at apply time.
type ApplicationPatch struct {
	Status *ApplicationStatus `json:"status" validate:"omitempty,oneof=applied reviewed interviewed hired rejected"`
}

type ApplicationUsecase interface {
	ApplyToJob(ctx context.Context, jobID string, candidate CandidateInfo) (*Application, error)
	GetApplication(ctx context.Context, id string) (*Application, error)
	UpdateApplication(ctx context.Context, id string, patch ApplicationPatch) (*Application, error)
	GetApplicationsForJob(ctx context.Context, jobID string) []Application
	GetApplicationsForCandidate(ctx context.Context, candidateID string) []Application
}
