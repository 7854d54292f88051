package memory

import (
	"context"
	"slices"
	"sync"

	"hirewise-backend/internal/domain"
)

type snapshotRepo struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

// NewSnapshotRepository keeps slots in process memory. Nothing survives a
// restart; used for tests and throwaway demo runs.
func NewSnapshotRepository() domain.SnapshotRepository {
	return &snapshotRepo{slots: make(map[string][]byte)}
}

func (r *snapshotRepo) Save(ctx context.Context, key string, data []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.slots[key] = slices.Clone(data)
	return nil
}

func (r *snapshotRepo) Load(ctx context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	data, ok := r.slots[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return slices.Clone(data), nil
}
