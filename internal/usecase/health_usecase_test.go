package usecase_test

import (
	"context"
	"errors"
	"testing"

	"hirewise-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func TestHealthCheck(t *testing.T) {
	ctx := context.Background()

	t.Run("all components healthy", func(t *testing.T) {
		uc := usecase.NewHealthUsecase(map[string]usecase.HealthCheck{
			"storage": func(context.Context) error { return nil },
		})
		report, ok := uc.Check(ctx)
		assert.True(t, ok)
		assert.Equal(t, map[string]string{"status": "ok", "storage": "ok"}, report)
	})

	t.Run("a failing component degrades the service", func(t *testing.T) {
		uc := usecase.NewHealthUsecase(map[string]usecase.HealthCheck{
			"storage": func(context.Context) error { return nil },
			"redis":   func(context.Context) error { return errors.New("dial tcp: connection refused") },
		})
		report, ok := uc.Check(ctx)
		assert.False(t, ok)
		assert.Equal(t, "degraded", report["status"])
		assert.Equal(t, "dial tcp: connection refused", report["redis"])
	})
}
