package services

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/quorum-ai/quorum/ent"
	"github.com/quorum-ai/quorum/ent/modelcall"
	"github.com/quorum-ai/quorum/ent/pipelinerun"
	"github.com/quorum-ai/quorum/ent/stagerecord"
	"github.com/quorum-ai/quorum/pkg/models"
)

// RunService manages pipeline run lifecycle and persistence
type RunService struct {
	client *ent.Client
}

// NewRunService creates a new RunService
func NewRunService(client *ent.Client) *RunService {
	return &RunService{client: client}
}

// CreateRun accepts a validated pipeline request and persists it as a
// pending run. Returns the run with its assigned correlation ID.
func (s *RunService) CreateRun(httpCtx context.Context, req *models.PipelineRequest) (*ent.PipelineRun, error) {
	if err := req.Validate(); err != nil {
		return nil, NewValidationError("request", err.Error())
	}

	if req.CorrelationID == "" {
		req.CorrelationID = uuid.New().String()
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builder := s.client.PipelineRun.Create().
		SetID(req.CorrelationID).
		SetPrompt(req.Prompt).
		SetCandidateModels(req.CandidateModels).
		SetPeerReviewFatal(req.PeerReviewFatal).
		SetStatus(pipelinerun.StatusPending)

	if req.Options != nil {
		builder.SetOptions(req.Options)
	}
	if len(req.StreamStages) > 0 {
		builder.SetStreamStages(req.StreamStages)
	}

	run, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create run: %w", err)
	}

	return run, nil
}

// CreateClaimedRun persists a run that is executed in-process (the
// synchronous API path) rather than through the queue. The run is born in
// running status with the given worker id, so it never becomes claimable
// and startup orphan cleanup can requeue it if the pod dies mid-request.
func (s *RunService) CreateClaimedRun(httpCtx context.Context, req *models.PipelineRequest, workerID string) (*ent.PipelineRun, error) {
	if err := req.Validate(); err != nil {
		return nil, NewValidationError("request", err.Error())
	}

	if req.CorrelationID == "" {
		req.CorrelationID = uuid.New().String()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builder := s.client.PipelineRun.Create().
		SetID(req.CorrelationID).
		SetPrompt(req.Prompt).
		SetCandidateModels(req.CandidateModels).
		SetPeerReviewFatal(req.PeerReviewFatal).
		SetStatus(pipelinerun.StatusRunning).
		SetWorkerID(workerID).
		SetStartedAt(time.Now())

	if req.Options != nil {
		builder.SetOptions(req.Options)
	}
	if len(req.StreamStages) > 0 {
		builder.SetStreamStages(req.StreamStages)
	}

	run, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create run: %w", err)
	}

	return run, nil
}

// GetRun retrieves a run by correlation ID with optional edge loading
func (s *RunService) GetRun(ctx context.Context, correlationID string, withEdges bool) (*ent.PipelineRun, error) {
	query := s.client.PipelineRun.Query().Where(pipelinerun.IDEQ(correlationID))

	if withEdges {
		query = query.WithStages(func(q *ent.StageRecordQuery) {
			q.Order(ent.Asc(stagerecord.FieldStageIndex)).
				WithModelCalls(func(cq *ent.ModelCallQuery) {
					cq.Order(ent.Asc(modelcall.FieldCallIndex))
				})
		})
	}

	run, err := query.Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get run: %w", err)
	}

	return run, nil
}

// ListRuns lists runs with filtering and pagination
func (s *RunService) ListRuns(ctx context.Context, filters models.RunFilters) (*models.RunListResponse, error) {
	query := s.client.PipelineRun.Query()

	if filters.Status != "" {
		query = query.Where(pipelinerun.StatusEQ(pipelinerun.Status(filters.Status)))
	}
	if filters.Model != "" {
		query = query.Where(func(sel *sql.Selector) {
			sel.Where(sql.ExprP("candidate_models::jsonb ? $1", filters.Model))
		})
	}
	if filters.CreatedAfter != nil {
		query = query.Where(pipelinerun.CreatedAtGTE(*filters.CreatedAfter))
	}
	if filters.CreatedBefore != nil {
		query = query.Where(pipelinerun.CreatedAtLT(*filters.CreatedBefore))
	}

	// Count total
	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count runs: %w", err)
	}

	// Apply pagination
	limit := filters.Limit
	if limit <= 0 {
		limit = 20 // Default
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	runs, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(pipelinerun.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}

	return &models.RunListResponse{
		Runs:       runs,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// ClaimNextPendingRun atomically claims the oldest pending run for a worker
// using FOR UPDATE SKIP LOCKED, so concurrent workers never block on or
// double-claim the same row. Returns nil without error when no pending run
// exists.
func (s *RunService) ClaimNextPendingRun(ctx context.Context, workerID string) (*ent.PipelineRun, error) {
	// Use background context with timeout
	claimCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(claimCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	// Order by created_at for FIFO processing
	run, err := tx.PipelineRun.Query().
		Where(pipelinerun.StatusEQ(pipelinerun.StatusPending)).
		Order(ent.Asc(pipelinerun.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(claimCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil // No pending runs
		}
		return nil, fmt.Errorf("failed to query pending run: %w", err)
	}

	now := time.Now()
	run, err = run.Update().
		SetStatus(pipelinerun.StatusRunning).
		SetWorkerID(workerID).
		SetStartedAt(now).
		SetLastHeartbeat(now).
		Save(claimCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim run: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	return run, nil
}

// Heartbeat refreshes the claim on a running run. Returns ErrNotFound when
// the run is no longer running under this worker (e.g. requeued as orphan).
func (s *RunService) Heartbeat(ctx context.Context, correlationID, workerID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := s.client.PipelineRun.Update().
		Where(
			pipelinerun.IDEQ(correlationID),
			pipelinerun.StatusEQ(pipelinerun.StatusRunning),
			pipelinerun.WorkerIDEQ(workerID),
		).
		SetLastHeartbeat(time.Now()).
		Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to update heartbeat: %w", err)
	}
	if count == 0 {
		return ErrNotFound
	}

	return nil
}

// FinishRun persists a terminal run state: all stage results, their model
// calls, and the run-level outcome, in a single transaction. The write is
// conditional on the run still being running under workerID, so a worker
// finishing late after its run was orphan-requeued and re-executed cannot
// clobber the newer run state or double-write stage rows.
func (s *RunService) FinishRun(ctx context.Context, run *models.PipelineRun, workerID string) error {
	if !run.Status.Terminal() {
		return NewValidationError("status", fmt.Sprintf("run status %q is not terminal", run.Status))
	}

	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	completedAt := run.CompletedAt
	if completedAt.IsZero() {
		completedAt = time.Now()
	}

	// Claim check first: a stale claimant writes nothing, not even stages.
	update := tx.PipelineRun.Update().
		Where(
			pipelinerun.IDEQ(run.CorrelationID),
			pipelinerun.StatusEQ(pipelinerun.StatusRunning),
			pipelinerun.WorkerIDEQ(workerID),
		).
		SetStatus(pipelinerun.Status(run.Status)).
		SetCompletedAt(completedAt)

	if run.Status == models.RunStatusCompleted {
		update.SetFinalText(run.FinalText).
			SetSynthesisModel(run.SynthesisModel)
	}
	if run.Error != nil {
		update.SetErrorKind(string(run.Error.Kind)).
			SetErrorMessage(run.Error.Message)
		if len(run.Error.Models) > 0 {
			update.SetErrorModels(run.Error.Models)
		}
	}

	count, err := update.Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to finalize run: %w", err)
	}
	if count == 0 {
		exists, err := tx.PipelineRun.Query().
			Where(pipelinerun.IDEQ(run.CorrelationID)).
			Exist(writeCtx)
		if err != nil {
			return fmt.Errorf("failed to check run existence: %w", err)
		}
		if !exists {
			return ErrNotFound
		}
		return ErrConcurrentModification
	}

	for stageIndex, stage := range run.Stages {
		stageID := uuid.New().String()
		_, err := tx.StageRecord.Create().
			SetID(stageID).
			SetRunID(run.CorrelationID).
			SetStageName(stage.StageName).
			SetStageIndex(stageIndex).
			SetSuccess(stage.Success).
			SetStartedAt(stage.StartedAt).
			SetCompletedAt(stage.CompletedAt).
			Save(writeCtx)
		if err != nil {
			return fmt.Errorf("failed to create stage record %q: %w", stage.StageName, err)
		}

		for callIndex, result := range stage.Results {
			builder := tx.ModelCall.Create().
				SetID(uuid.New().String()).
				SetStageID(stageID).
				SetModelID(result.ModelID).
				SetCallIndex(callIndex).
				SetStatus(modelcall.Status(result.Status)).
				SetInputTokens(result.Usage.InputTokens).
				SetOutputTokens(result.Usage.OutputTokens).
				SetTotalTokens(result.Usage.TotalTokens).
				SetLatencyMs(result.Usage.LatencyMs).
				SetAttempts(result.Usage.Attempts)

			if result.Succeeded() {
				builder.SetText(result.Text)
			} else if result.Err != nil {
				builder.SetErrorKind(string(result.Err.Kind)).
					SetErrorMessage(result.Err.Message)
			}

			if _, err := builder.Save(writeCtx); err != nil {
				return fmt.Errorf("failed to create model call for %q: %w", result.ModelID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit run finish: %w", err)
	}

	return nil
}

// CancelPendingRun marks a still-pending run as failed with a cancelled
// error. Returns ErrConcurrentModification when the run has already been
// claimed; cancelling a running run goes through the worker instead.
func (s *RunService) CancelPendingRun(ctx context.Context, correlationID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := s.client.PipelineRun.Update().
		Where(
			pipelinerun.IDEQ(correlationID),
			pipelinerun.StatusEQ(pipelinerun.StatusPending),
		).
		SetStatus(pipelinerun.StatusFailed).
		SetErrorKind(string(models.ErrorKindCancelled)).
		SetErrorMessage("run cancelled before execution").
		SetCompletedAt(time.Now()).
		Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to cancel run: %w", err)
	}
	if count == 0 {
		exists, err := s.client.PipelineRun.Query().
			Where(pipelinerun.IDEQ(correlationID)).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("failed to check run existence: %w", err)
		}
		if !exists {
			return ErrNotFound
		}
		return ErrConcurrentModification
	}

	return nil
}

// FindOrphanedRuns finds runs stuck in running state whose worker stopped
// heartbeating before the timeout.
func (s *RunService) FindOrphanedRuns(ctx context.Context, timeoutDuration time.Duration) ([]*ent.PipelineRun, error) {
	threshold := time.Now().Add(-timeoutDuration)

	runs, err := s.client.PipelineRun.Query().
		Where(
			pipelinerun.StatusEQ(pipelinerun.StatusRunning),
			pipelinerun.LastHeartbeatNotNil(),
			pipelinerun.LastHeartbeatLT(threshold),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find orphaned runs: %w", err)
	}

	return runs, nil
}

// RequeueRun returns an orphaned run to the pending queue so another worker
// can claim it. The conditional update guards against racing the original
// worker's late heartbeat or completion.
func (s *RunService) RequeueRun(ctx context.Context, correlationID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := s.client.PipelineRun.Update().
		Where(
			pipelinerun.IDEQ(correlationID),
			pipelinerun.StatusEQ(pipelinerun.StatusRunning),
		).
		SetStatus(pipelinerun.StatusPending).
		ClearWorkerID().
		ClearLastHeartbeat().
		ClearStartedAt().
		Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to requeue run: %w", err)
	}
	if count == 0 {
		return ErrConcurrentModification
	}

	return nil
}

// DeleteOldRuns removes terminal runs older than the retention window.
// Stage records and model calls cascade. Idempotent and safe to run from
// multiple pods.
func (s *RunService) DeleteOldRuns(ctx context.Context, retentionDays int) (int, error) {
	cutoff := time.Now().AddDate(0, 0, -retentionDays)

	count, err := s.client.PipelineRun.Delete().
		Where(
			pipelinerun.StatusIn(pipelinerun.StatusCompleted, pipelinerun.StatusFailed),
			pipelinerun.CompletedAtNotNil(),
			pipelinerun.CompletedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old runs: %w", err)
	}

	return count, nil
}

// SearchRuns performs full-text search on prompt and final_text
func (s *RunService) SearchRuns(ctx context.Context, query string, limit int) ([]*ent.PipelineRun, error) {
	if limit <= 0 {
		limit = 20
	}

	runs, err := s.client.PipelineRun.Query().
		Where(func(sel *sql.Selector) {
			sel.Where(sql.Or(
				sql.ExprP("to_tsvector('english', prompt) @@ plainto_tsquery($1)", query),
				sql.ExprP("to_tsvector('english', COALESCE(final_text, '')) @@ plainto_tsquery($2)", query),
			))
		}).
		Limit(limit).
		Order(ent.Desc(pipelinerun.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to search runs: %w", err)
	}

	return runs, nil
}
