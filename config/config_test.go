package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("STORAGE_DRIVER", "nonsense")
	t.Setenv("FRONTEND_URL", "http://localhost:5173/")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, StorageFile, cfg.StorageDriver)
	assert.Equal(t, "http://localhost:5173", cfg.FrontendURL)
}

func TestLoadConfigScoreRange(t *testing.T) {
	t.Setenv("MATCH_SCORE_MIN", "90")
	t.Setenv("MATCH_SCORE_MAX", "70")
	t.Setenv("PERSIST_TIMEOUT_SECONDS", "not-a-number")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 70, cfg.MatchScoreMin)
	assert.Equal(t, 90, cfg.MatchScoreMax)
	assert.Equal(t, 5, cfg.PersistTimeoutSeconds)
}
