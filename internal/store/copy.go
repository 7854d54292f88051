package store

import (
	"slices"

	"hirewise-backend/internal/domain"
)

// Everything handed out of the Store is a copy, so callers and the
// persistence writer never alias live state.

// cloneUser also folds empty variant slices to nil: they are omitted on the
// wire, so nil is the only form that survives a save and load.
func cloneUser(u domain.User) domain.User {
	u.Skills = cloneNonEmpty(u.Skills)
	u.Permissions = cloneNonEmpty(u.Permissions)
	u.ResumeReference = cloneString(u.ResumeReference)
	return u
}

func cloneJob(j domain.Job) domain.Job {
	j.Skills = slices.Clone(j.Skills)
	j.ApplicationIDs = slices.Clone(j.ApplicationIDs)
	if j.Salary != nil {
		salary := *j.Salary
		j.Salary = &salary
	}
	return j
}

func cloneApplication(a domain.Application) domain.Application {
	a.ResumeReference = cloneString(a.ResumeReference)
	return a
}

func cloneCandidate(c domain.Candidate) domain.Candidate {
	c.Skills = slices.Clone(c.Skills)
	c.ResumeReference = cloneString(c.ResumeReference)
	return c
}

func cloneNonEmpty(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	return slices.Clone(s)
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func cloneAll[T any](items []T, clone func(T) T) []T {
	out := make([]T, len(items))
	for i, item := range items {
		out[i] = clone(item)
	}
	return out
}

func cloneSession(s domain.Session) domain.Session {
	if s.User == nil {
		return domain.Session{}
	}
	user := cloneUser(*s.User)
	return domain.Session{User: &user, Role: s.Role}
}

// snapshot deep-copies the state into its persisted shape.
func (st *state) snapshot() domain.Snapshot {
	snap := domain.Snapshot{
		Jobs:         cloneAll(st.jobs, cloneJob),
		Applications: cloneAll(st.applications, cloneApplication),
		Candidates:   cloneAll(st.candidates, cloneCandidate),
		Recruiters:   cloneAll(st.recruiters, cloneUser),
	}
	if st.session.User != nil {
		user := cloneUser(*st.session.User)
		role := st.session.Role
		snap.User = &user
		snap.UserRole = &role
	}
	return snap
}
