package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"slices"

	echo "github.com/labstack/echo/v5"

	"github.com/quorum-ai/quorum/pkg/events"
	"github.com/quorum-ai/quorum/pkg/models"
)

// submitPipelineHandler handles POST /api/v1/pipelines.
//
// Execution mode is chosen by query parameters:
//   - default: run the pipeline in-request and return the terminal document
//   - ?stream=true: run in-request, streaming live events over SSE
//   - ?async=true: enqueue as pending and return 202 with the correlation id
func (s *Server) submitPipelineHandler(c *echo.Context) error {
	var req SubmitPipelineRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Prompt == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "prompt field is required")
	}

	modelReq := s.resolveRequest(&req)

	// Reject models with no configuration before anything is persisted.
	if s.cfg != nil && s.cfg.Models != nil {
		for _, id := range modelReq.CandidateModels {
			if !s.cfg.Models.Has(id) {
				return echo.NewHTTPError(http.StatusBadRequest,
					fmt.Sprintf("model %q not found in configuration", id))
			}
		}
	}

	if c.QueryParam("async") == "true" {
		run, err := s.runService.CreateRun(c.Request().Context(), modelReq)
		if err != nil {
			return mapServiceError(err)
		}
		slog.Info("Pipeline run queued",
			"correlation_id", run.ID,
			"author", extractAuthor(c),
			"models", len(modelReq.CandidateModels))
		return c.JSON(http.StatusAccepted, &SubmitResponse{
			CorrelationID: run.ID,
			Status:        "queued",
			Message:       "Pipeline run queued for processing",
		})
	}

	if s.executor == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "synchronous execution not available")
	}

	// Synchronous runs are born claimed so the worker pool never picks them
	// up; startup orphan cleanup requeues them if the pod dies mid-request.
	run, err := s.runService.CreateClaimedRun(c.Request().Context(), modelReq, s.podID+"-api")
	if err != nil {
		return mapServiceError(err)
	}
	slog.Info("Pipeline run accepted",
		"correlation_id", run.ID,
		"author", extractAuthor(c),
		"models", len(modelReq.CandidateModels))

	if c.QueryParam("stream") == "true" {
		return s.streamRun(c, modelReq)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), s.runTimeout())
	defer cancel()

	result := s.executor.Run(ctx, modelReq, events.NewEmitter(modelReq.CorrelationID))
	s.persistResult(result)

	return c.JSON(http.StatusOK, newRunDetailFromResult(result))
}

// streamRun executes the pipeline while relaying its event stream to the
// client as server-sent events. The connection stays open until the run's
// terminal event has been delivered.
func (s *Server) streamRun(c *echo.Context, req *models.PipelineRequest) error {
	w := http.ResponseWriter(c.Response())
	flusher, ok := w.(http.Flusher)
	if !ok {
		return echo.NewHTTPError(http.StatusInternalServerError, "streaming unsupported")
	}

	em := events.NewEmitter(req.CorrelationID)
	sub := em.Subscribe(s.streamBuffer(), streamEventTypes(req.StreamStages)...)

	ctx, cancel := context.WithTimeout(c.Request().Context(), s.runTimeout())
	defer cancel()

	resultCh := make(chan *models.PipelineRun, 1)
	go func() {
		resultCh <- s.executor.Run(ctx, req, em)
	}()

	h := c.Response().Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	c.Response().WriteHeader(http.StatusOK)

	for evt := range sub.Events() {
		if err := writeSSEEvent(w, flusher, evt); err != nil {
			// A partial stream must end visibly, never skip events silently.
			slog.Error("Terminating SSE stream on unwritable event",
				"correlation_id", req.CorrelationID, "event_type", evt.EventType, "error", err)
			em.Unsubscribe(sub)
			break
		}
	}
	if err := sub.Err(); err != nil {
		slog.Warn("SSE subscriber dropped before run completion",
			"correlation_id", req.CorrelationID, "error", err)
	}

	// The executor owns the run to the end even when the client is slow;
	// its terminal state is persisted either way.
	s.persistResult(<-resultCh)
	return nil
}

// writeSSEEvent frames one event as a server-sent event and flushes it.
func writeSSEEvent(w io.Writer, flusher http.Flusher, evt events.Event) error {
	data, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", evt.EventType, err)
	}
	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", evt.EventType, data); err != nil {
		return fmt.Errorf("write %s event: %w", evt.EventType, err)
	}
	flusher.Flush()
	return nil
}

// streamEventTypes converts a request's stream_stages filter into the
// subscription's event type list. Terminal events are always included so a
// filtered stream still observes the end of the run. Empty means all types.
func streamEventTypes(streamStages []string) []string {
	if len(streamStages) == 0 {
		return nil
	}
	types := slices.Clone(streamStages)
	for _, terminal := range []string{events.EventTypePipelineComplete, events.EventTypePipelineError} {
		if !slices.Contains(types, terminal) {
			types = append(types, terminal)
		}
	}
	return types
}

// persistResult records a synchronous run's terminal state. Persistence
// failure is logged, not surfaced: the client already has the document.
func (s *Server) persistResult(result *models.PipelineRun) {
	if result == nil {
		return
	}
	if err := s.runService.FinishRun(context.Background(), result, s.podID+"-api"); err != nil {
		slog.Error("Failed to persist synchronous run",
			"correlation_id", result.CorrelationID, "error", err)
	}
}

// resolveRequest applies configured defaults to an inbound submission.
func (s *Server) resolveRequest(req *SubmitPipelineRequest) *models.PipelineRequest {
	out := &models.PipelineRequest{
		Prompt:          req.Prompt,
		CandidateModels: req.CandidateModels,
		Options:         req.Options,
		StreamStages:    req.StreamStages,
		CorrelationID:   req.CorrelationID,
	}
	if s.cfg != nil && s.cfg.Defaults != nil {
		if len(out.CandidateModels) == 0 {
			out.CandidateModels = slices.Clone(s.cfg.Defaults.CandidateModels)
		}
		out.PeerReviewFatal = s.cfg.Defaults.PeerReviewFatal
	}
	if req.PeerReviewFatal != nil {
		out.PeerReviewFatal = *req.PeerReviewFatal
	}
	return out
}

func (s *Server) streamBuffer() int {
	if s.cfg != nil && s.cfg.Defaults != nil && s.cfg.Defaults.StreamBuffer > 0 {
		return s.cfg.Defaults.StreamBuffer
	}
	return events.DefaultSubscriberBuffer
}
