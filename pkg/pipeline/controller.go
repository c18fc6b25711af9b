// Package pipeline implements the three-stage refinement protocol: every
// candidate model answers the prompt, each successful model revises its
// answer after reading the others', and one selected model synthesizes the
// final response. The controller owns the PipelineRun for the duration of a
// request and reports every transition through the event emitter.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/quorum-ai/quorum/pkg/events"
	"github.com/quorum-ai/quorum/pkg/models"
	"github.com/quorum-ai/quorum/pkg/provider"
)

// Caller is the resilient provider call capability the controller consumes.
// Implemented by provider.Adapter; faked in tests.
type Caller interface {
	Call(ctx context.Context, correlationID, modelID, prompt string, opts provider.CallOptions) models.ModelCallResult
}

// Config carries run-independent controller policy.
type Config struct {
	// PeerReviewFatal makes a total peer-review failure terminate the run
	// instead of degrading to stage-1 outputs. A request can force the
	// fatal policy for itself; it cannot relax this default.
	PeerReviewFatal bool
}

// Controller drives one PipelineRun at a time through the fixed stage
// sequence. It is stateless across runs; breaker and limiter state live in
// the adapter's registry.
type Controller struct {
	caller   Caller
	selector *Selector
	cfg      Config
}

// NewController creates a controller over the given call capability and
// synthesis selector.
func NewController(caller Caller, selector *Selector, cfg Config) *Controller {
	return &Controller{caller: caller, selector: selector, cfg: cfg}
}

// Execute runs the full pipeline for one request. It always returns a
// terminal run: completed with final text, or failed with a run-level error
// kind. Per-model failures never escape a stage that met its success
// criterion — they stay visible in the stage's ModelCallResults.
//
// The emitter must belong to this run; Execute emits the terminal event,
// which closes it.
func (c *Controller) Execute(ctx context.Context, req *models.PipelineRequest, em *events.Emitter) *models.PipelineRun {
	run := &models.PipelineRun{
		CorrelationID: em.CorrelationID(),
		Request:       req,
		Status:        models.RunStatusRunning,
		StartedAt:     time.Now(),
	}
	log := slog.With("correlation_id", run.CorrelationID)
	log.Info("Pipeline started", "models", req.CandidateModels)

	em.Emit(events.NewEvent(events.EventTypePipelineStart, events.PipelineStartData{
		CorrelationID:   run.CorrelationID,
		CandidateModels: req.CandidateModels,
	}))

	// Stage 1: every candidate answers the original prompt.
	initial := c.runStage(ctx, em, run.CorrelationID, models.StageInitialResponse,
		req.CandidateModels,
		func(string) string { return req.Prompt },
		1)
	run.Stages = append(run.Stages, initial)

	if ctx.Err() != nil {
		return c.fail(run, em, models.ErrorKindCancelled, "run cancelled during initial response", nil)
	}
	if !initial.Success {
		return c.fail(run, em, models.ErrorKindAllProvidersFailed,
			"no provider produced an initial response", req.CandidateModels)
	}

	// Stage 2: each stage-1 success revises after reading the others.
	// A model whose revision fails falls back to its stage-1 output below.
	stage1Outputs := successOutputs(initial)
	reviewModels := initial.SuccessfulModels()
	review := c.runStage(ctx, em, run.CorrelationID, models.StagePeerReview,
		reviewModels,
		func(modelID string) string {
			own, peers := splitOutputs(stage1Outputs, modelID)
			return buildPeerReviewPrompt(req.Prompt, own, peers)
		},
		1)
	run.Stages = append(run.Stages, review)

	if ctx.Err() != nil {
		return c.fail(run, em, models.ErrorKindCancelled, "run cancelled during peer review", nil)
	}
	if !review.Success && (c.cfg.PeerReviewFatal || req.PeerReviewFatal) {
		return c.fail(run, em, models.ErrorKindAllProvidersFailed,
			"peer review failed for every model and the fatal policy is in effect", reviewModels)
	}

	// Synthesis input per model: the revision where it succeeded, the
	// stage-1 output otherwise, in candidate order.
	synthesisInputs := mergeOutputs(stage1Outputs, successOutputs(review))
	participants := review.SuccessfulModels()

	synthesisModel, nonParticipant := c.selector.Select(req.CandidateModels, participants)
	log.Info("Synthesis model selected",
		"model_id", synthesisModel, "non_participant", nonParticipant)
	em.Emit(events.NewEvent(events.EventTypeSynthesisStart, events.SynthesisStartData{
		ModelID:        synthesisModel,
		NonParticipant: nonParticipant,
	}))

	// Stage 3: a single call, streamed. No fallback model here by design;
	// callers needing more resilience retry the whole run.
	synthStarted := time.Now()
	result := c.caller.Call(ctx, run.CorrelationID, synthesisModel,
		buildSynthesisPrompt(req.Prompt, synthesisInputs),
		provider.CallOptions{
			Options: flattenOptions(req.Options),
			OnDelta: func(delta string) {
				em.Emit(events.NewEvent(events.EventTypeSynthesisChunk, events.SynthesisChunkData{Delta: delta}))
			},
		})

	synthesis := models.StageResult{
		StageName:   models.StageUltraSynthesis,
		Results:     []models.ModelCallResult{result},
		StartedAt:   synthStarted,
		CompletedAt: time.Now(),
		Success:     result.Succeeded(),
	}
	run.Stages = append(run.Stages, synthesis)

	if !result.Succeeded() {
		em.Emit(events.NewEvent(events.EventTypeStageComplete, events.StageCompleteData{Stage: synthesis}))
		if ctx.Err() != nil {
			return c.fail(run, em, models.ErrorKindCancelled, "run cancelled during synthesis", nil)
		}
		return c.fail(run, em, models.ErrorKindSynthesisFailed,
			fmt.Sprintf("synthesis call to %s failed: %s", synthesisModel, result.Err.Message),
			[]string{synthesisModel})
	}

	em.Emit(events.NewEvent(events.EventTypeSynthesisComplete, events.SynthesisCompleteData{
		ModelID: synthesisModel,
		Text:    result.Text,
		Usage:   result.Usage,
	}))
	em.Emit(events.NewEvent(events.EventTypeStageComplete, events.StageCompleteData{Stage: synthesis}))

	run.Status = models.RunStatusCompleted
	run.FinalText = result.Text
	run.SynthesisModel = synthesisModel
	run.CompletedAt = time.Now()
	log.Info("Pipeline completed", "synthesis_model", synthesisModel,
		"duration_ms", time.Since(run.StartedAt).Milliseconds())

	em.Emit(events.NewEvent(events.EventTypePipelineComplete, events.PipelineCompleteData{
		CorrelationID:  run.CorrelationID,
		FinalText:      run.FinalText,
		SynthesisModel: synthesisModel,
	}))
	return run
}

// runStage fans one prompt-per-model out to every listed model concurrently
// and waits for the whole group. Results are normalized to the given model
// order before any downstream use, so prompt construction in the next stage
// is deterministic regardless of provider latency. minSuccesses is the
// stage's success criterion.
func (c *Controller) runStage(ctx context.Context, em *events.Emitter, correlationID, stageName string,
	modelIDs []string, promptFor func(modelID string) string, minSuccesses int) models.StageResult {

	started := time.Now()
	em.Emit(events.NewEvent(events.EventTypeStageStart, events.StageStartData{
		StageName: stageName,
		Models:    modelIDs,
	}))
	for _, id := range modelIDs {
		em.Emit(events.NewEvent(events.EventTypeModelStart, events.ModelStartData{
			StageName: stageName,
			ModelID:   id,
		}))
	}

	type indexed struct {
		idx    int
		result models.ModelCallResult
	}
	resultCh := make(chan indexed, len(modelIDs))

	var wg sync.WaitGroup
	for i, id := range modelIDs {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			resultCh <- indexed{
				idx:    i,
				result: c.caller.Call(ctx, correlationID, id, promptFor(id), provider.CallOptions{}),
			}
		}(i, id)
	}
	wg.Wait()
	close(resultCh)

	results := make([]models.ModelCallResult, len(modelIDs))
	for r := range resultCh {
		results[r.idx] = r.result
	}

	// Emit responses in normalized order after the barrier so the event log
	// is deterministic for a given set of outcomes.
	successes := 0
	for _, r := range results {
		if r.Succeeded() {
			successes++
		}
		em.Emit(events.NewEvent(events.EventTypeModelResponse, events.ModelResponseData{
			StageName: stageName,
			Result:    r,
		}))
	}

	stage := models.StageResult{
		StageName:   stageName,
		Results:     results,
		StartedAt:   started,
		CompletedAt: time.Now(),
		Success:     successes >= minSuccesses,
	}
	em.Emit(events.NewEvent(events.EventTypeStageComplete, events.StageCompleteData{Stage: stage}))
	if !stage.Success {
		em.Emit(events.NewEvent(events.EventTypeStageError, events.StageErrorData{
			StageName: stageName,
			ErrorKind: string(models.ErrorKindAllProvidersFailed),
			Message:   fmt.Sprintf("%d of %d calls succeeded", successes, len(modelIDs)),
			Models:    modelIDs,
		}))
	}
	return stage
}

// fail marks the run terminal with a run-level error and emits the terminal
// event, closing the emitter.
func (c *Controller) fail(run *models.PipelineRun, em *events.Emitter, kind models.ErrorKind, message string, implicated []string) *models.PipelineRun {
	run.Status = models.RunStatusFailed
	run.Error = &models.RunError{Kind: kind, Message: message, Models: implicated}
	run.CompletedAt = time.Now()
	slog.Warn("Pipeline failed",
		"correlation_id", run.CorrelationID, "kind", kind, "message", message)

	em.Emit(events.NewEvent(events.EventTypePipelineError, events.PipelineErrorData{
		CorrelationID: run.CorrelationID,
		ErrorKind:     string(kind),
		Message:       message,
		Models:        implicated,
	}))
	return run
}

// successOutputs extracts the successful outputs of a stage in result order.
func successOutputs(stage models.StageResult) []stageOutput {
	var out []stageOutput
	for _, r := range stage.Results {
		if r.Succeeded() {
			out = append(out, stageOutput{ModelID: r.ModelID, Text: r.Text})
		}
	}
	return out
}

// splitOutputs separates one model's own output from its peers'.
func splitOutputs(outputs []stageOutput, modelID string) (own string, peers []stageOutput) {
	for _, o := range outputs {
		if o.ModelID == modelID {
			own = o.Text
		} else {
			peers = append(peers, o)
		}
	}
	return own, peers
}

// mergeOutputs overlays revised outputs onto the base set, keeping base
// order. Models without a revision keep their base text.
func mergeOutputs(base, revised []stageOutput) []stageOutput {
	revisedByModel := make(map[string]string, len(revised))
	for _, r := range revised {
		revisedByModel[r.ModelID] = r.Text
	}
	merged := make([]stageOutput, len(base))
	for i, b := range base {
		if text, ok := revisedByModel[b.ModelID]; ok {
			b.Text = text
		}
		merged[i] = b
	}
	return merged
}

// flattenOptions narrows the request's free-form options to the string
// pairs the provider transport accepts.
func flattenOptions(opts map[string]any) map[string]string {
	if len(opts) == 0 {
		return nil
	}
	flat := make(map[string]string, len(opts))
	for k, v := range opts {
		flat[k] = fmt.Sprint(v)
	}
	return flat
}
