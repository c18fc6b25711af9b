package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quorum-ai/quorum/pkg/services"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{
			name:     "validation error",
			err:      services.NewValidationError("request", "prompt is required"),
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "not found",
			err:      services.ErrNotFound,
			wantCode: http.StatusNotFound,
		},
		{
			name:     "wrapped not found",
			err:      fmt.Errorf("get run: %w", services.ErrNotFound),
			wantCode: http.StatusNotFound,
		},
		{
			name:     "already exists",
			err:      services.ErrAlreadyExists,
			wantCode: http.StatusConflict,
		},
		{
			name:     "concurrent modification",
			err:      services.ErrConcurrentModification,
			wantCode: http.StatusConflict,
		},
		{
			name:     "invalid input",
			err:      services.ErrInvalidInput,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "unexpected error",
			err:      errors.New("connection refused"),
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			he := mapServiceError(tt.err)
			assert.Equal(t, tt.wantCode, he.Code)
		})
	}
}
