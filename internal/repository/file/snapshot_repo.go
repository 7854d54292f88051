package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"hirewise-backend/internal/domain"
)

type snapshotRepo struct {
	dir string
}

// NewSnapshotRepository stores each key as <dir>/<key>.json. The directory
// is created if missing.
func NewSnapshotRepository(dir string) (domain.SnapshotRepository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("file repository: create %s: %w", dir, err)
	}
	return &snapshotRepo{dir: dir}, nil
}

func (r *snapshotRepo) path(key string) string {
	return filepath.Join(r.dir, key+".json")
}

// Save replaces the slot atomically: readers see either the old or the new
// file, never a partial write.
func (r *snapshotRepo) Save(ctx context.Context, key string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(r.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("file repository: create temp: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("file repository: write: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("file repository: sync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("file repository: close: %w", err)
	}
	if err := os.Rename(tmpName, r.path(key)); err != nil {
		return fmt.Errorf("file repository: rename: %w", err)
	}
	return nil
}

func (r *snapshotRepo) Load(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("file repository: read: %w", err)
	}
	return data, nil
}
