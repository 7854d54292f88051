package domain

import (
	"context"
	"errors"
)

// SnapshotKey is the fixed slot the whole state is mirrored under.
const SnapshotKey = "hirewise-state"

// ErrNotFound is returned by repositories when the requested slot is empty.
var ErrNotFound = errors.New("resource not found")

// Snapshot is the full serializable state. Its JSON form is the persisted
// wire format: {user, userRole, jobs, applications, candidates, recruiters}.
type Snapshot struct {
	User         *User         `json:"user"`
	UserRole     *Role         `json:"userRole"`
	Jobs         []Job         `json:"jobs"`
	Applications []Application `json:"applications"`
	Candidates   []Candidate   `json:"candidates"`
	Recruiters   []User        `json:"recruiters"`
}

// EmptySnapshot is the logged-out state with no data.
func EmptySnapshot() Snapshot {
	return Snapshot{
		Jobs:         []Job{},
		Applications: []Application{},
		Candidates:   []Candidate{},
		Recruiters:   []User{},
	}
}

// Session returns the session part of the snapshot.
func (s Snapshot) Session() Session {
	if s.User == nil || s.UserRole == nil {
		return Session{}
	}
	return Session{User: s.User, Role: *s.UserRole}
}

// SnapshotRepository is a single opaque durable key-value slot.
type SnapshotRepository interface {
	Save(ctx context.Context, key string, data []byte) error
	// Load returns ErrNotFound when nothing was saved under key.
	Load(ctx context.Context, key string) ([]byte, error)
}

// SnapshotSaver accepts full-state snapshots. Implementations must not block
// on I/O and must not surface write failures.
type SnapshotSaver interface {
	Save(snapshot Snapshot)
}
