package store

import (
	"fmt"
	"slices"

	"hirewise-backend/internal/domain"
	"hirewise-backend/pkg/apperror"
)

// action is the closed set of state transitions. Every mutation the Store
// performs is one of the types below, applied by state.reduce.
type action interface {
	isAction()
}

type sessionStarted struct {
	user domain.User
	role domain.Role
}

type sessionEnded struct{}

type jobAdded struct{ job domain.Job }

type jobUpdated struct {
	id    string
	patch domain.JobPatch
}

type jobDeleted struct{ id string }

// applicationSubmitted appends the application and links it from its job in
// the same transition.
type applicationSubmitted struct{ app domain.Application }

type applicationUpdated struct {
	id    string
	patch domain.ApplicationPatch
}

type candidateAdded struct{ candidate domain.Candidate }

type candidateUpdated struct {
	id    string
	patch domain.CandidatePatch
}

type recruiterAdded struct{ recruiter domain.User }

// stateReplaced swaps every collection at once. Used by Restore only.
type stateReplaced struct{ snapshot domain.Snapshot }

func (sessionStarted) isAction()       {}
func (sessionEnded) isAction()         {}
func (jobAdded) isAction()             {}
func (jobUpdated) isAction()           {}
func (jobDeleted) isAction()           {}
func (applicationSubmitted) isAction() {}
func (applicationUpdated) isAction()   {}
func (candidateAdded) isAction()       {}
func (candidateUpdated) isAction()     {}
func (recruiterAdded) isAction()       {}
func (stateReplaced) isAction()        {}

type state struct {
	session      domain.Session
	jobs         []domain.Job
	applications []domain.Application
	candidates   []domain.Candidate
	recruiters   []domain.User
}

func newState() state {
	return state{
		jobs:         []domain.Job{},
		applications: []domain.Application{},
		candidates:   []domain.Candidate{},
		recruiters:   []domain.User{},
	}
}

// reduce applies a to the state. It either applies the whole action or
// returns an error without touching anything.
func (st *state) reduce(a action) error {
	switch a := a.(type) {
	case sessionStarted:
		user := cloneUser(a.user)
		st.session = domain.Session{User: &user, Role: a.role}

	case sessionEnded:
		st.session = domain.Session{}

	case jobAdded:
		if st.jobIndex(a.job.ID) >= 0 {
			return apperror.Internal(fmt.Errorf("duplicate job id %q", a.job.ID))
		}
		st.jobs = append(st.jobs, a.job)

	case jobUpdated:
		i := st.jobIndex(a.id)
		if i < 0 {
			return apperror.NotFound("Job not found")
		}
		applyJobPatch(&st.jobs[i], a.patch)

	case jobDeleted:
		i := st.jobIndex(a.id)
		if i < 0 {
			return apperror.NotFound("Job not found")
		}
		st.jobs = slices.Delete(st.jobs, i, i+1)
		// Applications may not outlive their job.
		st.applications = slices.DeleteFunc(st.applications, func(app domain.Application) bool {
			return app.JobID == a.id
		})

	case applicationSubmitted:
		i := st.jobIndex(a.app.JobID)
		if i < 0 {
			return apperror.NotFound("Job not found")
		}
		if st.applicationIndex(a.app.ID) >= 0 {
			return apperror.Internal(fmt.Errorf("duplicate application id %q", a.app.ID))
		}
		st.applications = append(st.applications, a.app)
		st.jobs[i].ApplicationIDs = append(st.jobs[i].ApplicationIDs, a.app.ID)

	case applicationUpdated:
		i := st.applicationIndex(a.id)
		if i < 0 {
			return apperror.NotFound("Application not found")
		}
		if a.patch.Status != nil {
			st.applications[i].Status = *a.patch.Status
		}

	case candidateAdded:
		if st.candidateIndex(a.candidate.ID) >= 0 {
			return apperror.Internal(fmt.Errorf("duplicate candidate id %q", a.candidate.ID))
		}
		st.candidates = append(st.candidates, a.candidate)

	case candidateUpdated:
		i := st.candidateIndex(a.id)
		if i < 0 {
			return apperror.NotFound("Candidate not found")
		}
		applyCandidatePatch(&st.candidates[i], a.patch)

	case recruiterAdded:
		if st.recruiterIndex(a.recruiter.ID) >= 0 {
			return apperror.Conflict("Recruiter already registered")
		}
		st.recruiters = append(st.recruiters, a.recruiter)

	case stateReplaced:
		st.session = a.snapshot.Session()
		st.jobs = a.snapshot.Jobs
		st.applications = a.snapshot.Applications
		st.candidates = a.snapshot.Candidates
		st.recruiters = a.snapshot.Recruiters

	default:
		panic(fmt.Sprintf("store: unhandled action %T", a))
	}
	return nil
}

func (st *state) jobIndex(id string) int {
	return slices.IndexFunc(st.jobs, func(j domain.Job) bool { return j.ID == id })
}

func (st *state) applicationIndex(id string) int {
	return slices.IndexFunc(st.applications, func(a domain.Application) bool { return a.ID == id })
}

func (st *state) candidateIndex(id string) int {
	return slices.IndexFunc(st.candidates, func(c domain.Candidate) bool { return c.ID == id })
}

func (st *state) recruiterIndex(id string) int {
	return slices.IndexFunc(st.recruiters, func(u domain.User) bool { return u.ID == id })
}

func applyJobPatch(job *domain.Job, p domain.JobPatch) {
	setIfPresent(&job.Title, p.Title)
	setIfPresent(&job.Company, p.Company)
	setIfPresent(&job.Department, p.Department)
	setIfPresent(&job.Location, p.Location)
	setIfPresent(&job.EmploymentType, p.EmploymentType)
	setIfPresent(&job.ExperienceLevel, p.ExperienceLevel)
	setIfPresent(&job.Description, p.Description)
	setIfPresent(&job.Responsibilities, p.Responsibilities)
	setIfPresent(&job.Requirements, p.Requirements)
	setIfPresent(&job.Status, p.Status)
	if p.Salary != nil {
		salary := *p.Salary
		job.Salary = &salary
	}
	if p.Skills != nil {
		job.Skills = slices.Clone(*p.Skills)
	}
}

func applyCandidatePatch(c *domain.Candidate, p domain.CandidatePatch) {
	setIfPresent(&c.Name, p.Name)
	setIfPresent(&c.Email, p.Email)
	setIfPresent(&c.Phone, p.Phone)
	setIfPresent(&c.ExperienceLevel, p.ExperienceLevel)
	setIfPresent(&c.Status, p.Status)
	if p.ResumeReference != nil {
		ref := *p.ResumeReference
		c.ResumeReference = &ref
	}
	if p.Skills != nil {
		c.Skills = slices.Clone(*p.Skills)
	}
}

func setIfPresent[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
