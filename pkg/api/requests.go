package api

// SubmitPipelineRequest is the body of POST /api/v1/pipelines.
// Execution mode is selected by query parameters: ?async=true enqueues the
// run for the worker pool, ?stream=true streams live events over SSE, and
// the default executes synchronously and returns the terminal run document.
type SubmitPipelineRequest struct {
	Prompt string `json:"prompt"`

	// CandidateModels defaults to the configured candidate set when empty.
	CandidateModels []string `json:"candidate_models,omitempty"`

	Options      map[string]any `json:"options,omitempty"`
	StreamStages []string       `json:"stream_stages,omitempty"`

	// CorrelationID is client-assignable for idempotent submission; a UUID
	// is generated when empty.
	CorrelationID string `json:"correlation_id,omitempty"`

	// PeerReviewFatal overrides the configured default when set.
	PeerReviewFatal *bool `json:"peer_review_fatal,omitempty"`
}
