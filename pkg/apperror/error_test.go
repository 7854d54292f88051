package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"hirewise-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
)

func TestSentinelsSurviveWrapping(t *testing.T) {
	err := fmt.Errorf("apply: %w", apperror.NotFound("Job not found"))

	assert.True(t, errors.Is(err, apperror.ErrNotFound))
	assert.False(t, errors.Is(err, apperror.ErrValidation))

	var appErr *apperror.AppError
	if assert.True(t, errors.As(err, &appErr)) {
		assert.Equal(t, http.StatusNotFound, appErr.Code)
		assert.Equal(t, "Job not found", appErr.Error())
	}
}

func TestValidationCarriesDetails(t *testing.T) {
	err := apperror.Validation("Invalid job", "Title: is required", "Description: is required")

	assert.ErrorIs(t, err, apperror.ErrValidation)
	assert.Equal(t, http.StatusBadRequest, err.Code)
	assert.Len(t, err.Details, 2)
}

func TestInternalHidesCause(t *testing.T) {
	cause := errors.New("disk on fire")
	err := apperror.Internal(cause)

	assert.Equal(t, "Internal Server Error", err.Error())
	assert.ErrorIs(t, err, cause)
}
