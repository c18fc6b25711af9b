package pipeline

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quorum-ai/quorum/pkg/events"
	"github.com/quorum-ai/quorum/pkg/models"
	"github.com/quorum-ai/quorum/pkg/provider"
)

// fakeCaller scripts per-model, per-stage outcomes. The stage is inferred
// from the prompt shape, matching what the controller actually sends.
type fakeCaller struct {
	mu      sync.Mutex
	prompts map[string][]string // model → prompts received, in call order
	fail    map[string]bool     // "model/stage" → fail that call
	onCall  func(modelID, stage string)
}

func newFakeCaller() *fakeCaller {
	return &fakeCaller{
		prompts: make(map[string][]string),
		fail:    make(map[string]bool),
	}
}

func (f *fakeCaller) failAt(modelID, stage string) {
	f.fail[modelID+"/"+stage] = true
}

func stageOf(prompt string) string {
	switch {
	case strings.Contains(prompt, "Your answer was"):
		return models.StagePeerReview
	case strings.Contains(prompt, "Multiple independent models"):
		return models.StageUltraSynthesis
	default:
		return models.StageInitialResponse
	}
}

func (f *fakeCaller) Call(ctx context.Context, _, modelID, prompt string, opts provider.CallOptions) models.ModelCallResult {
	stage := stageOf(prompt)

	f.mu.Lock()
	f.prompts[modelID] = append(f.prompts[modelID], prompt)
	shouldFail := f.fail[modelID+"/"+stage]
	onCall := f.onCall
	f.mu.Unlock()

	if onCall != nil {
		onCall(modelID, stage)
	}
	if ctx.Err() != nil {
		return models.ModelCallResult{
			ModelID: modelID,
			Status:  models.CallStatusFailed,
			Err:     models.NewCallError(models.ErrorKindCancelled, ctx.Err()),
		}
	}
	if shouldFail {
		return models.ModelCallResult{
			ModelID: modelID,
			Status:  models.CallStatusFailed,
			Err:     &models.CallError{Kind: models.ErrorKindProviderError, Message: "scripted failure"},
		}
	}
	text := modelID + " answer for " + stage
	if opts.OnDelta != nil {
		opts.OnDelta(text)
	}
	return models.ModelCallResult{
		ModelID: modelID,
		Status:  models.CallStatusSuccess,
		Text:    text,
		Usage:   models.Usage{TotalTokens: 10, Attempts: 1},
	}
}

func (f *fakeCaller) callCount(modelID string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.prompts[modelID])
}

func newTestController(caller Caller, cfg Config) *Controller {
	selector := NewSelector(priorityOf(map[string]int{"alpha": 3, "beta": 2, "gamma": 1}))
	return NewController(caller, selector, cfg)
}

func testRequest(prompt string, modelIDs ...string) *models.PipelineRequest {
	return &models.PipelineRequest{Prompt: prompt, CandidateModels: modelIDs}
}

func TestExecuteAllSuccess(t *testing.T) {
	caller := newFakeCaller()
	c := newTestController(caller, Config{})
	em := events.NewEmitter("run-all-success")

	run := c.Execute(context.Background(), testRequest("the question", "alpha", "beta", "gamma"), em)

	require.Equal(t, models.RunStatusCompleted, run.Status)
	assert.NotEmpty(t, run.FinalText)
	assert.Nil(t, run.Error)
	require.Len(t, run.Stages, 3)

	// All three revised, so every candidate is a participant and selection
	// falls back to the highest-priority participant.
	assert.Equal(t, "alpha", run.SynthesisModel)

	// Stage result order follows candidate order, not completion order.
	initial := run.Stage(models.StageInitialResponse)
	require.NotNil(t, initial)
	require.Len(t, initial.Results, 3)
	assert.Equal(t, "alpha", initial.Results[0].ModelID)
	assert.Equal(t, "beta", initial.Results[1].ModelID)
	assert.Equal(t, "gamma", initial.Results[2].ModelID)

	// Two stage calls plus one synthesis call for alpha; two each for the rest.
	assert.Equal(t, 3, caller.callCount("alpha"))
	assert.Equal(t, 2, caller.callCount("beta"))
	assert.Equal(t, 2, caller.callCount("gamma"))
}

func TestExecuteSynthesisPrefersNonParticipant(t *testing.T) {
	caller := newFakeCaller()
	caller.failAt("alpha", models.StageInitialResponse)
	c := newTestController(caller, Config{})
	em := events.NewEmitter("run-one-failure")

	run := c.Execute(context.Background(), testRequest("q", "alpha", "beta", "gamma"), em)

	require.Equal(t, models.RunStatusCompleted, run.Status)

	// Stage 1 succeeded 2/3; peer review ran only for beta and gamma.
	initial := run.Stage(models.StageInitialResponse)
	require.NotNil(t, initial)
	assert.True(t, initial.Success)
	assert.Equal(t, []string{"beta", "gamma"}, initial.SuccessfulModels())

	review := run.Stage(models.StagePeerReview)
	require.NotNil(t, review)
	require.Len(t, review.Results, 2)

	// alpha never took part after stage 1, so it synthesizes: one failed
	// stage-1 call plus the synthesis call.
	assert.Equal(t, "alpha", run.SynthesisModel)
	assert.Equal(t, 2, caller.callCount("alpha"))
}

func TestExecuteAllProvidersFailed(t *testing.T) {
	caller := newFakeCaller()
	for _, id := range []string{"alpha", "beta", "gamma"} {
		caller.failAt(id, models.StageInitialResponse)
	}
	c := newTestController(caller, Config{})
	em := events.NewEmitter("run-total-failure")

	run := c.Execute(context.Background(), testRequest("q", "alpha", "beta", "gamma"), em)

	require.Equal(t, models.RunStatusFailed, run.Status)
	require.NotNil(t, run.Error)
	assert.Equal(t, models.ErrorKindAllProvidersFailed, run.Error.Kind)
	assert.ElementsMatch(t, []string{"alpha", "beta", "gamma"}, run.Error.Models)

	// No stage-2 or stage-3 call was ever attempted.
	require.Len(t, run.Stages, 1)
	for _, id := range []string{"alpha", "beta", "gamma"} {
		assert.Equal(t, 1, caller.callCount(id))
	}
}

func TestExecutePeerReviewDegradesToInitialOutputs(t *testing.T) {
	caller := newFakeCaller()
	caller.failAt("alpha", models.StagePeerReview)
	caller.failAt("beta", models.StagePeerReview)
	c := newTestController(caller, Config{})
	em := events.NewEmitter("run-degraded")

	run := c.Execute(context.Background(), testRequest("q", "alpha", "beta"), em)

	// Total peer-review failure degrades rather than failing the run.
	require.Equal(t, models.RunStatusCompleted, run.Status)
	review := run.Stage(models.StagePeerReview)
	require.NotNil(t, review)
	assert.False(t, review.Success)

	// With no participants, the synthesis model is a non-participant and the
	// synthesis prompt carries the stage-1 outputs.
	assert.Equal(t, "alpha", run.SynthesisModel)
	prompts := caller.prompts["alpha"]
	synthPrompt := prompts[len(prompts)-1]
	assert.Contains(t, synthPrompt, "alpha answer for "+models.StageInitialResponse)
	assert.Contains(t, synthPrompt, "beta answer for "+models.StageInitialResponse)
}

func TestExecutePeerReviewFatalPolicy(t *testing.T) {
	caller := newFakeCaller()
	caller.failAt("alpha", models.StagePeerReview)
	caller.failAt("beta", models.StagePeerReview)
	c := newTestController(caller, Config{PeerReviewFatal: true})
	em := events.NewEmitter("run-fatal-review")

	run := c.Execute(context.Background(), testRequest("q", "alpha", "beta"), em)

	require.Equal(t, models.RunStatusFailed, run.Status)
	require.NotNil(t, run.Error)
	assert.Equal(t, models.ErrorKindAllProvidersFailed, run.Error.Kind)
	require.Len(t, run.Stages, 2)
}

func TestExecuteCancellationMidFlight(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	caller := newFakeCaller()
	caller.onCall = func(_, stage string) {
		if stage == models.StagePeerReview {
			cancel()
		}
	}
	c := newTestController(caller, Config{})
	em := events.NewEmitter("run-cancelled")

	run := c.Execute(ctx, testRequest("q", "alpha", "beta"), em)

	require.Equal(t, models.RunStatusFailed, run.Status)
	require.NotNil(t, run.Error)
	assert.Equal(t, models.ErrorKindCancelled, run.Error.Kind)

	// No synthesis call was issued after cancellation.
	assert.Equal(t, 2, caller.callCount("alpha"))
	assert.Equal(t, 2, caller.callCount("beta"))

	log := em.Log()
	require.NotEmpty(t, log)
	last := log[len(log)-1]
	assert.Equal(t, events.EventTypePipelineError, last.EventType)
}

func TestExecuteEventLogOrderingAndReplay(t *testing.T) {
	caller := newFakeCaller()
	caller.failAt("gamma", models.StageInitialResponse)
	c := newTestController(caller, Config{})
	em := events.NewEmitter("run-replay")

	run := c.Execute(context.Background(), testRequest("q", "alpha", "beta", "gamma"), em)
	require.Equal(t, models.RunStatusCompleted, run.Status)

	log := em.Log()
	require.NotEmpty(t, log)
	assert.Equal(t, events.EventTypePipelineStart, log[0].EventType)
	assert.Equal(t, events.EventTypePipelineComplete, log[len(log)-1].EventType)
	for i, evt := range log {
		assert.Equal(t, i+1, evt.Sequence, "sequence must be contiguous from 1")
	}

	replayed, err := Replay(log)
	require.NoError(t, err)
	assert.Equal(t, run.CorrelationID, replayed.CorrelationID)
	assert.Equal(t, run.Status, replayed.Status)
	assert.Equal(t, run.FinalText, replayed.FinalText)
	assert.Equal(t, run.SynthesisModel, replayed.SynthesisModel)

	require.Len(t, replayed.Stages, len(run.Stages))
	for i, stage := range run.Stages {
		assert.Equal(t, stage.StageName, replayed.Stages[i].StageName)
		assert.Equal(t, stage.Success, replayed.Stages[i].Success)
		require.Len(t, replayed.Stages[i].Results, len(stage.Results))
		for j, r := range stage.Results {
			assert.Equal(t, r.ModelID, replayed.Stages[i].Results[j].ModelID)
			assert.Equal(t, r.Status, replayed.Stages[i].Results[j].Status)
			assert.Equal(t, r.Text, replayed.Stages[i].Results[j].Text)
		}
	}
}

func TestReplayDetectsSequenceGap(t *testing.T) {
	log := []events.Event{
		{EventType: events.EventTypePipelineStart, Sequence: 1, Data: events.PipelineStartData{CorrelationID: "x"}},
		{EventType: events.EventTypeStageStart, Sequence: 3},
	}
	_, err := Replay(log)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gap")
}

func TestExecuteSynthesisFailureIsFatal(t *testing.T) {
	caller := newFakeCaller()
	caller.failAt("alpha", models.StagePeerReview)
	caller.failAt("alpha", models.StageUltraSynthesis)
	c := newTestController(caller, Config{})
	em := events.NewEmitter("run-synth-fail")

	// alpha fails peer review, so it is the non-participant chosen for
	// synthesis — where it fails too. No fallback model exists.
	run := c.Execute(context.Background(), testRequest("q", "alpha", "beta"), em)

	require.Equal(t, models.RunStatusFailed, run.Status)
	require.NotNil(t, run.Error)
	assert.Equal(t, models.ErrorKindSynthesisFailed, run.Error.Kind)
	assert.Equal(t, []string{"alpha"}, run.Error.Models)
	require.Len(t, run.Stages, 3)
	assert.False(t, run.Stages[2].Success)
}
