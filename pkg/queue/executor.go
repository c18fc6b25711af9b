package queue

import (
	"context"
	"log/slog"
	"time"

	"github.com/quorum-ai/quorum/ent"
	"github.com/quorum-ai/quorum/pkg/events"
	"github.com/quorum-ai/quorum/pkg/models"
	"github.com/quorum-ai/quorum/pkg/pipeline"
)

// forwardDrainTimeout bounds how long the executor waits for the event
// forwarder to flush remaining events after a run becomes terminal.
const forwardDrainTimeout = 10 * time.Second

// PipelineExecutor runs the three-stage pipeline for claimed runs. It wires
// a per-run event emitter to the database-backed publisher so every event
// reaches WebSocket subscribers and the catchup store.
type PipelineExecutor struct {
	caller       pipeline.Caller
	selector     *pipeline.Selector
	publisher    *events.EventPublisher
	streamBuffer int
}

// NewPipelineExecutor creates a PipelineExecutor.
// publisher may be nil (event distribution disabled, e.g. in tests).
func NewPipelineExecutor(caller pipeline.Caller, selector *pipeline.Selector, publisher *events.EventPublisher, streamBuffer int) *PipelineExecutor {
	if streamBuffer <= 0 {
		streamBuffer = 64
	}
	return &PipelineExecutor{
		caller:       caller,
		selector:     selector,
		publisher:    publisher,
		streamBuffer: streamBuffer,
	}
}

// Execute runs the pipeline for a claimed run and returns its terminal state.
func (e *PipelineExecutor) Execute(ctx context.Context, run *ent.PipelineRun) *models.PipelineRun {
	req := &models.PipelineRequest{
		Prompt:          run.Prompt,
		CandidateModels: run.CandidateModels,
		Options:         run.Options,
		StreamStages:    run.StreamStages,
		CorrelationID:   run.ID,
		PeerReviewFatal: run.PeerReviewFatal,
	}
	return e.Run(ctx, req, events.NewEmitter(run.ID))
}

// Run executes the pipeline for req, emitting on em. The caller may attach
// its own subscriptions to em before calling (e.g. the SSE handler); Run
// closes the emitter once the run is terminal. PeerReviewFatal is taken from
// the request, which admission resolved against the configured default.
func (e *PipelineExecutor) Run(ctx context.Context, req *models.PipelineRequest, em *events.Emitter) *models.PipelineRun {
	// Forward every emitted event to the publisher. The forwarder exits when
	// the emitter closes after the terminal event.
	var forwarded chan struct{}
	if e.publisher != nil {
		sub := em.Subscribe(e.streamBuffer)
		forwarded = make(chan struct{})
		go func() {
			defer close(forwarded)
			e.publisher.ForwardSubscription(context.Background(), req.CorrelationID, sub)
		}()
	}

	ctrl := pipeline.NewController(e.caller, e.selector, pipeline.Config{
		PeerReviewFatal: req.PeerReviewFatal,
	})
	result := ctrl.Execute(ctx, req, em)
	em.Close()

	if forwarded != nil {
		select {
		case <-forwarded:
		case <-time.After(forwardDrainTimeout):
			slog.Warn("Event forwarding did not drain in time",
				"correlation_id", req.CorrelationID)
		}
	}

	return result
}
