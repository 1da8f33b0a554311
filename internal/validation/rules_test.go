package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/bearodactyl/apiodactyl/internal/errors"
)

func TestNotBlank(t *testing.T) {
	tests := []struct {
		name      string
		value     interface{}
		expectErr bool
	}{
		{name: "non-blank string", value: "ak_1234", expectErr: false},
		{name: "empty string", value: "", expectErr: true},
		{name: "whitespace only", value: "   \t", expectErr: true},
		{name: "not a string", value: 42, expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NotBlank.Validate(tt.value)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWrapValidationError(t *testing.T) {
	t.Run("nil error stays nil", func(t *testing.T) {
		assert.NoError(t, WrapValidationError(nil))
	})

	t.Run("error becomes ErrInvalidInput", func(t *testing.T) {
		err := WrapValidationError(errors.New("key: cannot be blank."))

		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		assert.Contains(t, err.Error(), "cannot be blank")
	})
}
