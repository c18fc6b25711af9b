package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/quorum-ai/quorum/pkg/events"
)

// runEventsHandler handles GET /api/v1/runs/:id/events.
// Returns persisted events for a run after the given sequence position, for
// clients that poll instead of holding a WebSocket open.
func (s *Server) runEventsHandler(c *echo.Context) error {
	runID := c.Param("id")
	if runID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "run id is required")
	}

	sinceID := 0
	if v := c.QueryParam("since_id"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid since_id: must be a non-negative integer")
		}
		sinceID = n
	}

	limit := 500
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 1000 {
			limit = n
		}
	}

	// 404 for unknown runs rather than an empty event list.
	if _, err := s.runService.GetRun(c.Request().Context(), runID, false); err != nil {
		return mapServiceError(err)
	}

	catchup, err := s.eventService.GetCatchupEvents(c.Request().Context(), events.RunChannel(runID), sinceID, limit)
	if err != nil {
		return mapServiceError(err)
	}

	resp := &EventsResponse{
		CorrelationID: runID,
		Events:        make([]EventRecord, 0, len(catchup)),
	}
	for _, evt := range catchup {
		resp.Events = append(resp.Events, EventRecord{
			ID:      int64(evt.ID),
			Payload: evt.Payload,
		})
	}

	return c.JSON(http.StatusOK, resp)
}
