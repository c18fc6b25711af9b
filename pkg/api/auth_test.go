package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
)

func TestExtractAuthor(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{
			name:    "no headers falls back to api-client",
			headers: nil,
			want:    "api-client",
		},
		{
			name:    "X-Forwarded-User wins",
			headers: map[string]string{"X-Forwarded-User": "alice", "X-Forwarded-Email": "alice@example.com", "X-Remote-User": "system:alice"},
			want:    "alice",
		},
		{
			name:    "X-Forwarded-Email beats X-Remote-User",
			headers: map[string]string{"X-Forwarded-Email": "bob@example.com", "X-Remote-User": "system:bob"},
			want:    "bob@example.com",
		},
		{
			name:    "X-Remote-User alone",
			headers: map[string]string{"X-Remote-User": "system:carol"},
			want:    "system:carol",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/pipelines", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			c := e.NewContext(req, httptest.NewRecorder())

			assert.Equal(t, tt.want, extractAuthor(c))
		})
	}
}
