package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/quorum-ai/quorum/ent/pipelinerun"
	"github.com/quorum-ai/quorum/pkg/models"
)

// getRunHandler handles GET /api/v1/runs/:id.
func (s *Server) getRunHandler(c *echo.Context) error {
	runID := c.Param("id")
	if runID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "run id is required")
	}

	run, err := s.runService.GetRun(c.Request().Context(), runID, true)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, newRunDetail(run))
}

// listRunsHandler handles GET /api/v1/runs.
func (s *Server) listRunsHandler(c *echo.Context) error {
	filters := models.RunFilters{
		Limit: 20,
	}

	// Parse pagination.
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			filters.Limit = n
		}
	}
	if v := c.QueryParam("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			filters.Offset = n
		}
	}

	// Parse filters.
	if v := c.QueryParam("status"); v != "" {
		if err := pipelinerun.StatusValidator(pipelinerun.Status(v)); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid status: "+v)
		}
		filters.Status = v
	}
	filters.Model = c.QueryParam("model")

	// Parse date range.
	if v := c.QueryParam("created_after"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid created_after: must be RFC3339")
		}
		filters.CreatedAfter = &t
	}
	if v := c.QueryParam("created_before"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid created_before: must be RFC3339")
		}
		filters.CreatedBefore = &t
	}

	// Full-text search is a separate query path.
	if v := c.QueryParam("search"); v != "" {
		if len(strings.TrimSpace(v)) < 3 {
			return echo.NewHTTPError(http.StatusBadRequest, "search query must be at least 3 characters")
		}
		runs, err := s.runService.SearchRuns(c.Request().Context(), v, filters.Limit)
		if err != nil {
			return mapServiceError(err)
		}
		return c.JSON(http.StatusOK, newListRunsResponse(runs, len(runs), filters.Limit, 0))
	}

	result, err := s.runService.ListRuns(c.Request().Context(), filters)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, newListRunsResponse(result.Runs, result.TotalCount, result.Limit, result.Offset))
}

// cancelRunHandler handles POST /api/v1/runs/:id/cancel.
func (s *Server) cancelRunHandler(c *echo.Context) error {
	runID := c.Param("id")
	if runID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "run id is required")
	}

	// Cancel in the queue first (pending → failed/cancelled).
	svcErr := s.runService.CancelPendingRun(c.Request().Context(), runID)

	// Always try to cancel on this pod too, in case a worker already
	// claimed the run.
	workerCancelled := false
	if s.workerPool != nil {
		workerCancelled = s.workerPool.CancelRun(runID)
	}

	if svcErr != nil && !workerCancelled {
		return mapServiceError(svcErr)
	}

	return c.JSON(http.StatusOK, &CancelResponse{
		CorrelationID: runID,
		Message:       "Run cancellation requested",
	})
}
