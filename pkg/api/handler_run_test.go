package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
)

func TestListRunsHandler_Validation(t *testing.T) {
	// Only parameter validation is tested here (returns 400 before hitting
	// the service). Happy-path coverage lives in the service integration tests.
	s := &Server{}

	tests := []struct {
		name    string
		query   string
		wantErr int
		errMsg  string
	}{
		{
			name:    "invalid status value",
			query:   "status=bogus",
			wantErr: http.StatusBadRequest,
			errMsg:  "invalid status",
		},
		{
			name:    "search too short",
			query:   "search=ab",
			wantErr: http.StatusBadRequest,
			errMsg:  "search query must be at least 3 characters",
		},
		{
			name:    "whitespace-padded search too short",
			query:   "search=%20%20ab%20",
			wantErr: http.StatusBadRequest,
			errMsg:  "search query must be at least 3 characters",
		},
		{
			name:    "invalid created_after",
			query:   "created_after=not-a-date",
			wantErr: http.StatusBadRequest,
			errMsg:  "invalid created_after",
		},
		{
			name:    "created_before wrong format (not RFC3339)",
			query:   "created_before=2026-01-01",
			wantErr: http.StatusBadRequest,
			errMsg:  "invalid created_before",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/runs?"+tt.query, nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := s.listRunsHandler(c)
			if assert.Error(t, err) {
				he, ok := err.(*echo.HTTPError)
				if assert.True(t, ok, "expected echo.HTTPError") {
					assert.Equal(t, tt.wantErr, he.Code)
					assert.Contains(t, he.Message, tt.errMsg)
				}
			}
		})
	}
}
