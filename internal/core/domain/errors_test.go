package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrUnsupportedType", ErrUnsupportedType},
		{"ErrSearchUnavailable", ErrSearchUnavailable},
		{"ErrRecognizerUnavailable", ErrRecognizerUnavailable},
		{"ErrGeocodeNotFound", ErrGeocodeNotFound},
		{"ErrRateLimited", ErrRateLimited},
		{"ErrJournalUnavailable", ErrJournalUnavailable},
		{"ErrInvalidInterval", ErrInvalidInterval},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestErrors_Distinct(t *testing.T) {
	assert.False(t, errors.Is(ErrNotFound, ErrGeocodeNotFound))
	assert.False(t, errors.Is(ErrSearchUnavailable, ErrRecognizerUnavailable))
}

func TestErrors_Wrapping(t *testing.T) {
	wrapped := fmt.Errorf("nominatim %q: %w", "Atlantis", ErrGeocodeNotFound)
	assert.True(t, errors.Is(wrapped, ErrGeocodeNotFound))
	assert.Contains(t, wrapped.Error(), "Atlantis")
}
