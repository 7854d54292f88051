// Package persistence mirrors Store snapshots to one durable slot.
package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"hirewise-backend/internal/domain"
	"hirewise-backend/pkg/logger"
)

// Gateway serializes snapshots to a SnapshotRepository under a fixed key.
// Save is fire-and-forget: it records the snapshot as pending and wakes a
// single writer goroutine, which always writes the newest pending snapshot.
// The durable copy may lag the in-memory state by one write cycle.
type Gateway struct {
	repo    domain.SnapshotRepository
	key     string
	timeout time.Duration

	mu      sync.Mutex
	pending *domain.Snapshot
	closed  bool

	// writeMu serializes writes between the writer goroutine and Flush, so
	// an older snapshot can never land after a newer one.
	writeMu sync.Mutex

	wake chan struct{}
	quit chan struct{}
	done chan struct{}
}

func NewGateway(repo domain.SnapshotRepository, key string, timeout time.Duration) *Gateway {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	g := &Gateway{
		repo:    repo,
		key:     key,
		timeout: timeout,
		wake:    make(chan struct{}, 1),
		quit:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	go g.run()
	return g
}

var _ domain.SnapshotSaver = (*Gateway)(nil)

// Save schedules snapshot for writing and returns immediately.
func (g *Gateway) Save(snapshot domain.Snapshot) {
	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		logger.Log.Warn("Snapshot dropped: persistence gateway closed")
		return
	}
	g.pending = &snapshot
	g.mu.Unlock()

	select {
	case g.wake <- struct{}{}:
	default:
		// writer already signalled; it will pick up the newest pending snapshot
	}
}

func (g *Gateway) run() {
	defer close(g.done)
	for {
		select {
		case <-g.wake:
			ctx, cancel := context.WithTimeout(context.Background(), g.timeout)
			_ = g.writePending(ctx)
			cancel()
		case <-g.quit:
			return
		}
	}
}

// writePending writes the newest pending snapshot, if any. Failures are
// logged and returned; the in-memory state stays authoritative.
func (g *Gateway) writePending(ctx context.Context) error {
	g.writeMu.Lock()
	defer g.writeMu.Unlock()

	g.mu.Lock()
	snap := g.pending
	g.pending = nil
	g.mu.Unlock()

	if snap == nil {
		return nil
	}

	data, err := json.Marshal(snap)
	if err != nil {
		err = fmt.Errorf("persistence: encode snapshot: %w", err)
		logger.Log.Error("Persistence write failed", "key", g.key, "error", err)
		return err
	}

	if err := g.repo.Save(ctx, g.key, data); err != nil {
		err = fmt.Errorf("persistence: write %q: %w", g.key, err)
		logger.Log.Error("Persistence write failed", "key", g.key, "bytes", len(data), "error", err)
		return err
	}

	logger.Log.Debug("Snapshot persisted", "key", g.key, "bytes", len(data))
	return nil
}

// Flush synchronously writes whatever is pending and reports the outcome.
func (g *Gateway) Flush(ctx context.Context) error {
	return g.writePending(ctx)
}

// Close stops the writer and flushes the last pending snapshot. Saves after
// Close are dropped.
func (g *Gateway) Close(ctx context.Context) error {
	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		return nil
	}
	g.closed = true
	g.mu.Unlock()

	close(g.quit)
	select {
	case <-g.done:
	case <-ctx.Done():
		return ctx.Err()
	}
	return g.writePending(ctx)
}

// Load returns the last saved snapshot. A missing slot, an unreadable
// medium or an unparsable value all yield an empty snapshot.
func (g *Gateway) Load(ctx context.Context) domain.Snapshot {
	data, err := g.repo.Load(ctx, g.key)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			logger.Log.Info("No saved state found, starting empty", "key", g.key)
		} else {
			logger.Log.Warn("Failed to read saved state, starting empty", "key", g.key, "error", err)
		}
		return domain.EmptySnapshot()
	}

	var snap domain.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		logger.Log.Warn("Saved state is corrupt, starting empty", "key", g.key, "error", err)
		return domain.EmptySnapshot()
	}

	fillDefaults(&snap)
	return snap
}

// fillDefaults turns collections absent from older mirrors into empty ones.
func fillDefaults(snap *domain.Snapshot) {
	if snap.Jobs == nil {
		snap.Jobs = []domain.Job{}
	}
	if snap.Applications == nil {
		snap.Applications = []domain.Application{}
	}
	if snap.Candidates == nil {
		snap.Candidates = []domain.Candidate{}
	}
	if snap.Recruiters == nil {
		snap.Recruiters = []domain.User{}
	}
}
