package domain

import (
	"context"
	"time"
)

const CandidateStatusActive = "active"

// Candidate is the profile record created at signup. It is distinct from the
// session User even though both usually share an id.
type Candidate struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	Skills          []string  `json:"skills"`
	ExperienceLevel string    `json:"experienceLevel"`
	ResumeReference *string   `json:"resumeReference"`
	CreatedAt       time.Time `json:"createdAt"`
	Status          string    `json:"status"`
}

type CandidateInput struct {
	Name            string   `json:"name" validate:"required,valid_name"`
	Email           string   `json:"email" validate:"required,email"`
	Phone           string   `json:"phone" validate:"valid_phone"`
	Skills          []string `json:"skills"`
	ExperienceLevel string   `json:"experienceLevel"`
	ResumeReference *string  `json:"resumeReference"`
}

type CandidatePatch struct {
	Name            *string   `json:"name" validate:"omitempty,min=1,valid_name"`
	Email           *string   `json:"email" validate:"omitempty,email"`
	Phone           *string   `json:"phone" validate:"omitempty,valid_phone"`
	Skills          *[]string `json:"skills"`
	ExperienceLevel *string   `json:"experienceLevel"`
	ResumeReference *string   `json:"resumeReference"`
	Status          *string   `json:"status" validate:"omitempty,min=1"`
}

type CandidateUsecase interface {
	RegisterCandidate(ctx context.Context, input CandidateInput) (*Candidate, error)
	GetCandidate(ctx context.Context, id string) (*Candidate, error)
	ListCandidates(ctx context.Context) []Candidate
	UpdateCandidate(ctx context.Context, id string, patch CandidatePatch) (*Candidate, error)
}
