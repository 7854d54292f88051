package store

import (
	"context"

	"hirewise-backend/internal/domain"
	"hirewise-backend/pkg/apperror"
	"hirewise-backend/pkg/logger"
)

// ApplyToJob records a new application and links it from the job in one
// transition. Repeat applications by the same candidate are accepted.
func (s *Store) ApplyToJob(ctx context.Context, jobID string, candidate domain.CandidateInfo) (*domain.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.st.jobIndex(jobID)
	if i < 0 {
		return nil, notFound("Job")
	}
	if err := s.validateStruct("Invalid candidate", candidate); err != nil {
		return nil, err
	}

	app := domain.Application{
		ID:              s.newID(),
		JobID:           jobID,
		CandidateID:     candidate.ID,
		CandidateName:   candidate.Name,
		CandidateEmail:  candidate.Email,
		ResumeReference: cloneString(candidate.ResumeReference),
		MatchScore:      clampScore(s.scorer.Score(cloneJob(s.st.jobs[i]), candidate)),
		AppliedAt:       s.now(),
		Status:          domain.ApplicationStatusApplied,
	}
	if err := s.commit(applicationSubmitted{app: app}); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("Application submitted",
		"application_id", app.ID, "job_id", jobID, "candidate_id", candidate.ID, "match_score", app.MatchScore)
	out := cloneApplication(app)
	return &out, nil
}

func (s *Store) GetApplication(ctx context.Context, id string) (*domain.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.st.applicationIndex(id)
	if i < 0 {
		return nil, notFound("Application")
	}
	app := cloneApplication(s.st.applications[i])
	return &app, nil
}

func (s *Store) UpdateApplication(ctx context.Context, id string, patch domain.ApplicationPatch) (*domain.Application, error) {
	if err := s.validateStruct("Invalid application update", patch); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.commit(applicationUpdated{id: id, patch: patch}); err != nil {
		return nil, err
	}

	app := cloneApplication(s.st.applications[s.st.applicationIndex(id)])
	logger.FromContext(ctx).Info("Application updated", "application_id", id, "status", app.Status)
	return &app, nil
}

// GetApplicationsForJob returns the job's applications in submission order.
func (s *Store) GetApplicationsForJob(ctx context.Context, jobID string) []domain.Application {
	return s.filterApplications(func(a domain.Application) bool { return a.JobID == jobID })
}

// GetApplicationsForCandidate returns the candidate's applications in
// submission order.
func (s *Store) GetApplicationsForCandidate(ctx context.Context, candidateID string) []domain.Application {
	return s.filterApplications(func(a domain.Application) bool { return a.CandidateID == candidateID })
}

func (s *Store) filterApplications(keep func(domain.Application) bool) []domain.Application {
	s.mu.RLock()
	defer s.mu.RUnlock()

	apps := []domain.Application{}
	for _, app := range s.st.applications {
		if keep(app) {
			apps = append(apps, cloneApplication(app))
		}
	}
	return apps
}

func notFound(entity string) *apperror.AppError {
	return apperror.NotFound(entity + " not found")
}
