package validation_test

import (
	"errors"
	"testing"

	"hirewise-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
)

type signup struct {
	Name  string `validate:"required,valid_name"`
	Email string `validate:"required,email"`
	Phone string `validate:"valid_phone"`
	Note  string `validate:"no_emoji"`
}

func TestCustomValidators(t *testing.T) {
	v := validation.New()

	t.Run("accepts a well formed signup", func(t *testing.T) {
		err := v.Struct(signup{Name: "Ada O'Neil", Email: "ada@example.com", Phone: "+628123456789"})
		assert.NoError(t, err)
	})

	t.Run("rejects digits-only phone that is too short", func(t *testing.T) {
		err := v.Struct(signup{Name: "Ada", Email: "ada@example.com", Phone: "123"})
		assert.Error(t, err)
		assert.Contains(t, validation.FormatValidationErrors(err), "Phone Number: invalid phone number (7-15 digits, optional +)")
	})

	t.Run("rejects emoji", func(t *testing.T) {
		err := v.Struct(signup{Name: "Ada", Email: "ada@example.com", Note: "hi 🚀"})
		assert.Error(t, err)
	})
}

func TestFormatValidationErrors(t *testing.T) {
	v := validation.New()

	err := v.Struct(signup{})
	msgs := validation.FormatValidationErrors(err)

	assert.Contains(t, msgs, "Name: is required")
	assert.Contains(t, msgs, "Email: is required")

	// Non-validator errors pass through as-is
	assert.Equal(t, []string{"boom"}, validation.FormatValidationErrors(errors.New("boom")))
}
