package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"hirewise-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRepo(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "nested", "data")

	repo, err := NewSnapshotRepository(dir)
	require.NoError(t, err)

	t.Run("empty slot reports not found", func(t *testing.T) {
		_, err := repo.Load(ctx, domain.SnapshotKey)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("save overwrites the previous value", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, domain.SnapshotKey, []byte(`{"jobs":[]}`)))
		require.NoError(t, repo.Save(ctx, domain.SnapshotKey, []byte(`{"jobs":[{"id":"1"}]}`)))

		data, err := repo.Load(ctx, domain.SnapshotKey)
		require.NoError(t, err)
		assert.JSONEq(t, `{"jobs":[{"id":"1"}]}`, string(data))
	})

	t.Run("no temp files are left behind", func(t *testing.T) {
		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, domain.SnapshotKey+".json", entries[0].Name())
	})

	t.Run("cancelled context is refused", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		assert.Error(t, repo.Save(cctx, domain.SnapshotKey, []byte(`{}`)))
	})
}
