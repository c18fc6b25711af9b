package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quorum-ai/quorum/pkg/config"
)

func newSubmitContext(t *testing.T, body string) *echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/pipelines", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return e.NewContext(req, httptest.NewRecorder())
}

func testRegistry() *config.ModelRegistry {
	return config.NewModelRegistry(map[string]*config.ModelConfig{
		"gpt-4o":          {Provider: config.ProviderOpenAI, Model: "gpt-4o", Priority: 10},
		"claude-sonnet-4": {Provider: config.ProviderAnthropic, Model: "claude-sonnet-4", Priority: 8},
	})
}

func TestSubmitPipelineHandler_Validation(t *testing.T) {
	s := &Server{
		cfg: &config.Config{
			Defaults: &config.Defaults{CandidateModels: []string{"gpt-4o", "claude-sonnet-4"}},
			Models:   testRegistry(),
		},
	}

	tests := []struct {
		name    string
		body    string
		wantErr int
		errMsg  string
	}{
		{
			name:    "malformed JSON",
			body:    `{"prompt": `,
			wantErr: http.StatusBadRequest,
		},
		{
			name:    "missing prompt",
			body:    `{"candidate_models": ["gpt-4o"]}`,
			wantErr: http.StatusBadRequest,
			errMsg:  "prompt field is required",
		},
		{
			name:    "unconfigured model",
			body:    `{"prompt": "compare these designs", "candidate_models": ["gpt-4o", "no-such-model"]}`,
			wantErr: http.StatusBadRequest,
			errMsg:  `model "no-such-model" not found in configuration`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.submitPipelineHandler(newSubmitContext(t, tt.body))
			require.Error(t, err)
			he, ok := err.(*echo.HTTPError)
			require.True(t, ok, "expected echo.HTTPError")
			assert.Equal(t, tt.wantErr, he.Code)
			if tt.errMsg != "" {
				assert.Contains(t, he.Message, tt.errMsg)
			}
		})
	}
}

func TestResolveRequest_Defaults(t *testing.T) {
	s := &Server{
		cfg: &config.Config{
			Defaults: &config.Defaults{
				CandidateModels: []string{"gpt-4o", "claude-sonnet-4"},
				PeerReviewFatal: true,
			},
		},
	}

	t.Run("empty request inherits configured defaults", func(t *testing.T) {
		out := s.resolveRequest(&SubmitPipelineRequest{Prompt: "p"})
		assert.Equal(t, []string{"gpt-4o", "claude-sonnet-4"}, out.CandidateModels)
		assert.True(t, out.PeerReviewFatal)
	})

	t.Run("explicit fields win", func(t *testing.T) {
		fatal := false
		out := s.resolveRequest(&SubmitPipelineRequest{
			Prompt:          "p",
			CandidateModels: []string{"claude-sonnet-4"},
			PeerReviewFatal: &fatal,
		})
		assert.Equal(t, []string{"claude-sonnet-4"}, out.CandidateModels)
		assert.False(t, out.PeerReviewFatal)
	})

	t.Run("default set is cloned, not aliased", func(t *testing.T) {
		out := s.resolveRequest(&SubmitPipelineRequest{Prompt: "p"})
		out.CandidateModels[0] = "mutated"
		assert.Equal(t, "gpt-4o", s.cfg.Defaults.CandidateModels[0])
	})
}
