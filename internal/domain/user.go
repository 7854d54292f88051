package domain

import "context"

// Role is the kind of account a session belongs to.
type Role string

const (
	RoleCandidate Role = "candidate"
	RoleRecruiter Role = "recruiter"
	RoleAdmin     Role = "admin"
)

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleCandidate, RoleRecruiter, RoleAdmin:
		return true
	}
	return false
}

// User is a session principal. The variant fields are populated according
// to Role: candidates carry skills and a resume, recruiters a company and
// department, admins a permission set.
type User struct {
	ID    string `json:"id" validate:"required"`
	Name  string `json:"name" validate:"omitempty,valid_name"`
	Email string `json:"email" validate:"omitempty,email"`
	Role  Role   `json:"role,omitempty"`

	// Candidate variant
	Skills          []string `json:"skills,omitempty"`
	ExperienceLevel string   `json:"experienceLevel,omitempty"`
	ResumeReference *string  `json:"resumeReference,omitempty"`

	// Recruiter variant
	Company    string `json:"company,omitempty"`
	Department string `json:"department,omitempty"`

	// Admin variant
	Permissions []string `json:"permissions,omitempty"`
}

// Session is the single logged-in principal, or the logged-out state when
// User is nil. Role is non-empty iff User is non-nil.
type Session struct {
	User *User `json:"user"`
	Role Role  `json:"userRole"`
}

// Active reports whether someone is logged in.
func (s Session) Active() bool {
	return s.User != nil
}

type SessionUsecase interface {
	Login(ctx context.Context, user User, role Role) (Session, error)
	Logout(ctx context.Context) Session
	CurrentSession(ctx context.Context) Session
}

type RecruiterUsecase interface {
	RegisterRecruiter(ctx context.Context, user User) (*User, error)
	ListRecruiters(ctx context.Context) []User
}
