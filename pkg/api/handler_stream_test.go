package api

import (
	"context"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quorum-ai/quorum/ent/pipelinerun"
	"github.com/quorum-ai/quorum/pkg/config"
	"github.com/quorum-ai/quorum/pkg/events"
	"github.com/quorum-ai/quorum/pkg/models"
	"github.com/quorum-ai/quorum/pkg/pipeline"
	"github.com/quorum-ai/quorum/pkg/provider"
	"github.com/quorum-ai/quorum/pkg/queue"
	"github.com/quorum-ai/quorum/pkg/services"
	testdb "github.com/quorum-ai/quorum/test/database"
)

// stubCaller answers every provider call successfully in-process.
type stubCaller struct{}

func (stubCaller) Call(_ context.Context, _, modelID, _ string, _ provider.CallOptions) models.ModelCallResult {
	return models.ModelCallResult{
		ModelID: modelID,
		Status:  models.CallStatusSuccess,
		Text:    "answer from " + modelID,
	}
}

func newStreamServer(t *testing.T) *Server {
	t.Helper()
	client := testdb.NewTestClient(t)
	registry := testRegistry()
	return &Server{
		cfg: &config.Config{
			Defaults: &config.Defaults{CandidateModels: []string{"gpt-4o", "claude-sonnet-4"}},
			Models:   registry,
		},
		podID:      "test-pod",
		runService: services.NewRunService(client.Client),
		executor:   queue.NewPipelineExecutor(stubCaller{}, pipeline.NewSelector(registry.Priority), nil, 16),
	}
}

// sseEventTypes extracts the event type of each SSE frame in order.
func sseEventTypes(body string) []string {
	var types []string
	for _, line := range strings.Split(body, "\n") {
		if typ, ok := strings.CutPrefix(line, "event: "); ok {
			types = append(types, typ)
		}
	}
	return types
}

func TestStreamRunFiltersEventTypes(t *testing.T) {
	s := newStreamServer(t)

	body := `{
		"prompt": "compare these designs",
		"candidate_models": ["gpt-4o", "claude-sonnet-4"],
		"correlation_id": "stream-filter-run",
		"stream_stages": ["stage_complete"]
	}`
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/pipelines?stream=true", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	require.NoError(t, s.submitPipelineHandler(e.NewContext(req, rec)))
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))

	// Three stage completions, nothing else, then the terminal event: the
	// filter suppresses model/start events but never the end of the run.
	types := sseEventTypes(rec.Body.String())
	require.Len(t, types, 4)
	for _, typ := range types[:3] {
		assert.Equal(t, events.EventTypeStageComplete, typ)
	}
	assert.Equal(t, events.EventTypePipelineComplete, types[3])

	// The run's terminal state was persisted after the stream closed.
	run, err := s.runService.GetRun(context.Background(), "stream-filter-run", false)
	require.NoError(t, err)
	assert.Equal(t, pipelinerun.StatusCompleted, run.Status)
}

func TestStreamRunUnfilteredReceivesAllEvents(t *testing.T) {
	s := newStreamServer(t)

	body := `{"prompt": "compare", "candidate_models": ["gpt-4o"], "correlation_id": "stream-full-run"}`
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/pipelines?stream=true", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	require.NoError(t, s.submitPipelineHandler(e.NewContext(req, rec)))

	types := sseEventTypes(rec.Body.String())
	assert.Contains(t, types, events.EventTypePipelineStart)
	assert.Contains(t, types, events.EventTypeModelResponse)
	assert.Equal(t, events.EventTypePipelineComplete, types[len(types)-1])
}

func TestStreamEventTypesAlwaysIncludeTerminal(t *testing.T) {
	// Empty filter means all event types.
	assert.Nil(t, streamEventTypes(nil))

	got := streamEventTypes([]string{events.EventTypeModelResponse})
	assert.ElementsMatch(t, []string{
		events.EventTypeModelResponse,
		events.EventTypePipelineComplete,
		events.EventTypePipelineError,
	}, got)

	// Terminal types already present are not duplicated.
	got = streamEventTypes([]string{events.EventTypePipelineError})
	assert.ElementsMatch(t, []string{
		events.EventTypePipelineError,
		events.EventTypePipelineComplete,
	}, got)
}

func TestWriteSSEEventMarshalFailure(t *testing.T) {
	rec := httptest.NewRecorder()
	evt := events.Event{EventType: events.EventTypeModelResponse, Sequence: 1, Data: math.NaN()}

	err := writeSSEEvent(rec, rec, evt)

	// The caller terminates the stream on this error; nothing may have been
	// written for the skipped frame.
	require.Error(t, err)
	assert.Empty(t, rec.Body.String())
}
