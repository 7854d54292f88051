// Package store holds the authoritative in-memory state of the platform:
// the session, jobs, applications, candidates and recruiters. It is the only
// component allowed to mutate them. Every successful mutation hands exactly
// one deep-copied snapshot to the configured SnapshotSaver.
package store

import (
	"context"
	"strings"
	"sync"
	"time"

	"hirewise-backend/internal/domain"
	"hirewise-backend/pkg/apperror"
	"hirewise-backend/pkg/logger"
	"hirewise-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Deps wires a Store. Only Saver is required in production; zero fields get
// defaults (validator with custom tags, 60..100 random scorer, UTC clock,
// uuid ids).
type Deps struct {
	Saver    domain.SnapshotSaver
	Validate *validator.Validate
	Scorer   Scorer
	Clock    func() time.Time
	NewID    func() string
}

type Store struct {
	mu sync.RWMutex
	st state

	saver    domain.SnapshotSaver
	validate *validator.Validate
	scorer   Scorer
	now      func() time.Time
	newID    func() string
}

func New(deps Deps) *Store {
	s := &Store{
		st:       newState(),
		saver:    deps.Saver,
		validate: deps.Validate,
		scorer:   deps.Scorer,
		now:      deps.Clock,
		newID:    deps.NewID,
	}
	if s.saver == nil {
		s.saver = discardSaver{}
	}
	if s.validate == nil {
		s.validate = validation.New()
	}
	if s.scorer == nil {
		s.scorer = NewRandomScorer(60, 100)
	}
	if s.now == nil {
		s.now = func() time.Time { return time.Now().UTC() }
	}
	if s.newID == nil {
		s.newID = uuid.NewString
	}
	return s
}

var (
	_ domain.SessionUsecase     = (*Store)(nil)
	_ domain.JobUsecase         = (*Store)(nil)
	_ domain.ApplicationUsecase = (*Store)(nil)
	_ domain.CandidateUsecase   = (*Store)(nil)
	_ domain.RecruiterUsecase   = (*Store)(nil)
	_ domain.SnapshotReader     = (*Store)(nil)
)

type discardSaver struct{}

func (discardSaver) Save(domain.Snapshot) {}

// commit applies a and, on success, hands the resulting state to the saver.
// Callers hold s.mu for writing, which also keeps saves in mutation order.
func (s *Store) commit(a action) error {
	if err := s.st.reduce(a); err != nil {
		return err
	}
	s.saver.Save(s.st.snapshot())
	return nil
}

func (s *Store) validateStruct(message string, v any) error {
	if err := s.validate.Struct(v); err != nil {
		return apperror.Validation(message, validation.FormatValidationErrors(err)...)
	}
	return nil
}

// Snapshot returns a deep copy of the whole state.
func (s *Store) Snapshot(ctx context.Context) domain.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.snapshot()
}

// Restore replaces every collection and the session with snap in one step.
// It is meant to run once at startup and does not trigger a save.
func (s *Store) Restore(ctx context.Context, snap domain.Snapshot) {
	normalized, report := normalize(snap)

	s.mu.Lock()
	defer s.mu.Unlock()
	_ = s.st.reduce(stateReplaced{snapshot: normalized})

	log := logger.FromContext(ctx)
	if report.duplicates > 0 || report.orphans > 0 {
		log.Warn("Restored state needed repair",
			"duplicates_dropped", report.duplicates,
			"orphan_applications_dropped", report.orphans)
	}
	log.Info("State restored",
		"jobs", len(normalized.Jobs),
		"applications", len(normalized.Applications),
		"candidates", len(normalized.Candidates),
		"recruiters", len(normalized.Recruiters),
		"session_active", normalized.User != nil)
}

// Login sets the session to (user, role). Credentials are the caller's
// concern; only the session invariant is checked here.
func (s *Store) Login(ctx context.Context, user domain.User, role domain.Role) (domain.Session, error) {
	if !role.Valid() {
		return domain.Session{}, apperror.Validation("Invalid role", "Role: must be one of: candidate, recruiter, admin")
	}
	user.Role = role
	if err := s.validateStruct("Invalid user", user); err != nil {
		return domain.Session{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.commit(sessionStarted{user: user, role: role}); err != nil {
		return domain.Session{}, err
	}

	logger.FromContext(ctx).Info("Session started", "user_id", user.ID, "role", role)
	return cloneSession(s.st.session), nil
}

// Logout clears the session. Collections are kept. Calling it while logged
// out is harmless.
func (s *Store) Logout(ctx context.Context) domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = s.commit(sessionEnded{})

	logger.FromContext(ctx).Info("Session ended")
	return domain.Session{}
}

func (s *Store) CurrentSession(ctx context.Context) domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSession(s.st.session)
}

func trimmed(v string) string {
	return strings.TrimSpace(v)
}

// trimmedPtr trims a patch field in place of the caller's string.
func trimmedPtr(v *string) *string {
	if v == nil {
		return nil
	}
	t := trimmed(*v)
	return &t
}
