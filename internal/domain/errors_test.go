package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorsUnwrap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		message  string
	}{
		{
			name:     "not found",
			err:      NewNotFoundError("driver", "d-1"),
			sentinel: ErrNotFound,
			message:  "driver d-1 not found",
		},
		{
			name:     "validation with field",
			err:      NewValidationError("amount", "must be positive"),
			sentinel: ErrValidation,
			message:  "amount: must be positive",
		},
		{
			name:     "validation without field",
			err:      NewValidationError("", "statement already paid"),
			sentinel: ErrValidation,
			message:  "statement already paid",
		},
		{
			name:     "concurrency",
			err:      &ConcurrencyError{Op: "adjust wallet", Key: "d-1"},
			sentinel: ErrConcurrency,
			message:  "adjust wallet failed for d-1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("settle: %w", tt.err)
			assert.True(t, errors.Is(wrapped, tt.sentinel))
			assert.Equal(t, tt.message, tt.err.Error())
		})
	}
}
