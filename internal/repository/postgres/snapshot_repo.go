package postgres

import (
	"context"
	"errors"
	"fmt"

	"hirewise-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const createAppStateTable = `
	CREATE TABLE IF NOT EXISTS app_state (
		key        TEXT PRIMARY KEY,
		value      JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`

type snapshotRepo struct {
	db *pgxpool.Pool
}

func NewSnapshotRepository(db *pgxpool.Pool) domain.SnapshotRepository {
	return &snapshotRepo{db: db}
}

// EnsureSchema creates the key-value table if it does not exist yet.
func EnsureSchema(ctx context.Context, db *pgxpool.Pool) error {
	if _, err := db.Exec(ctx, createAppStateTable); err != nil {
		return fmt.Errorf("create app_state table: %w", err)
	}
	return nil
}

func (r *snapshotRepo) Save(ctx context.Context, key string, data []byte) error {
	query := `INSERT INTO app_state (key, value, updated_at)
              VALUES ($1, $2::jsonb, now())
              ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`
	_, err := r.db.Exec(ctx, query, key, string(data))
	return err
}

func (r *snapshotRepo) Load(ctx context.Context, key string) ([]byte, error) {
	query := `SELECT value::text FROM app_state WHERE key = $1`
	var value string
	err := r.db.QueryRow(ctx, query, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(value), nil
}
