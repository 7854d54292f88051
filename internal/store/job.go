package store

import (
	"context"
	"slices"
	"strings"

	"hirewise-backend/internal/domain"
	"hirewise-backend/pkg/logger"
)

// CreateJob validates input and appends a new active (unless overridden)
// job with a fresh id and no applications.
func (s *Store) CreateJob(ctx context.Context, input domain.JobInput) (*domain.Job, error) {
	input.Title = trimmed(input.Title)
	input.Description = trimmed(input.Description)
	if err := s.validateStruct("Invalid job", input); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = domain.JobStatusActive
	}

	job := domain.Job{
		ID:               s.newID(),
		Title:            input.Title,
		Company:          input.Company,
		Department:       input.Department,
		Location:         input.Location,
		EmploymentType:   input.EmploymentType,
		ExperienceLevel:  input.ExperienceLevel,
		Description:      input.Description,
		Responsibilities: input.Responsibilities,
		Requirements:     input.Requirements,
		Skills:           slices.Clone(input.Skills),
		Status:           status,
		CreatedAt:        s.now(),
		CreatedBy:        input.CreatedBy,
		ApplicationIDs:   []string{},
	}
	if job.Skills == nil {
		job.Skills = []string{}
	}
	if input.Salary != nil {
		salary := *input.Salary
		job.Salary = &salary
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.commit(jobAdded{job: job}); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("Job created", "job_id", job.ID, "created_by", job.CreatedBy)
	out := cloneJob(job)
	return &out, nil
}

func (s *Store) GetJob(ctx context.Context, id string) (*domain.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.st.jobIndex(id)
	if i < 0 {
		return nil, notFound("Job")
	}
	job := cloneJob(s.st.jobs[i])
	return &job, nil
}

// ListJobs returns the jobs matching filter in creation order.
func (s *Store) ListJobs(ctx context.Context, filter domain.JobFilter) []domain.Job {
	department := strings.ToLower(trimmed(filter.Department))
	skill := strings.ToLower(trimmed(filter.Skill))

	s.mu.RLock()
	defer s.mu.RUnlock()

	jobs := []domain.Job{}
	for _, job := range s.st.jobs {
		if department != "" && !strings.Contains(strings.ToLower(job.Department), department) {
			continue
		}
		if skill != "" && !slices.ContainsFunc(job.Skills, func(sk string) bool {
			return strings.Contains(strings.ToLower(sk), skill)
		}) {
			continue
		}
		if filter.Status != "" && job.Status != filter.Status {
			continue
		}
		jobs = append(jobs, cloneJob(job))
	}
	return jobs
}

func (s *Store) UpdateJob(ctx context.Context, id string, patch domain.JobPatch) (*domain.Job, error) {
	patch.Title = trimmedPtr(patch.Title)
	patch.Description = trimmedPtr(patch.Description)
	if err := s.validateStruct("Invalid job update", patch); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.commit(jobUpdated{id: id, patch: patch}); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("Job updated", "job_id", id)
	job := cloneJob(s.st.jobs[s.st.jobIndex(id)])
	return &job, nil
}

// DeleteJob removes the job together with its applications.
func (s *Store) DeleteJob(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.commit(jobDeleted{id: id}); err != nil {
		return err
	}

	logger.FromContext(ctx).Info("Job deleted", "job_id", id)
	return nil
}
