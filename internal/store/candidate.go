package store

import (
	"context"
	"slices"

	"hirewise-backend/internal/domain"
	"hirewise-backend/pkg/logger"
)

// RegisterCandidate creates the profile record a signup produces.
func (s *Store) RegisterCandidate(ctx context.Context, input domain.CandidateInput) (*domain.Candidate, error) {
	input.Name = trimmed(input.Name)
	input.Email = trimmed(input.Email)
	if err := s.validateStruct("Invalid candidate", input); err != nil {
		return nil, err
	}

	candidate := domain.Candidate{
		ID:              s.newID(),
		Name:            input.Name,
		Email:           input.Email,
		Phone:           input.Phone,
		Skills:          slices.Clone(input.Skills),
		ExperienceLevel: input.ExperienceLevel,
		ResumeReference: cloneString(input.ResumeReference),
		CreatedAt:       s.now(),
		Status:          domain.CandidateStatusActive,
	}
	if candidate.Skills == nil {
		candidate.Skills = []string{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.commit(candidateAdded{candidate: candidate}); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("Candidate registered", "candidate_id", candidate.ID)
	out := cloneCandidate(candidate)
	return &out, nil
}

func (s *Store) GetCandidate(ctx context.Context, id string) (*domain.Candidate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.st.candidateIndex(id)
	if i < 0 {
		return nil, notFound("Candidate")
	}
	c := cloneCandidate(s.st.candidates[i])
	return &c, nil
}

func (s *Store) ListCandidates(ctx context.Context) []domain.Candidate {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAll(s.st.candidates, cloneCandidate)
}

func (s *Store) UpdateCandidate(ctx context.Context, id string, patch domain.CandidatePatch) (*domain.Candidate, error) {
	patch.Name = trimmedPtr(patch.Name)
	patch.Email = trimmedPtr(patch.Email)
	if err := s.validateStruct("Invalid candidate update", patch); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.commit(candidateUpdated{id: id, patch: patch}); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("Candidate updated", "candidate_id", id)
	c := cloneCandidate(s.st.candidates[s.st.candidateIndex(id)])
	return &c, nil
}

// RegisterRecruiter adds a recruiter account. An empty id is generated.
func (s *Store) RegisterRecruiter(ctx context.Context, user domain.User) (*domain.User, error) {
	if user.ID == "" {
		user.ID = s.newID()
	}
	user.Role = domain.RoleRecruiter
	if err := s.validateStruct("Invalid recruiter", user); err != nil {
		return nil, err
	}
	user = cloneUser(user)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.commit(recruiterAdded{recruiter: user}); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("Recruiter registered", "recruiter_id", user.ID)
	out := cloneUser(user)
	return &out, nil
}

func (s *Store) ListRecruiters(ctx context.Context) []domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAll(s.st.recruiters, cloneUser)
}
