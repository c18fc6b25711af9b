// Package models defines the request, result, and run state types shared by
// the pipeline controller, the API layer, and persistence.
package models

import (
	"fmt"
	"time"
)

// Stage names for the fixed three-stage protocol, in execution order.
const (
	StageInitialResponse = "initial_response"
	StagePeerReview      = "peer_review_and_revision"
	StageUltraSynthesis  = "ultra_synthesis"
)

// StageNames lists the pipeline stages in execution order.
var StageNames = []string{StageInitialResponse, StagePeerReview, StageUltraSynthesis}

// CallStatus is the terminal status of a single provider call.
type CallStatus string

const (
	CallStatusSuccess  CallStatus = "success"
	CallStatusFailed   CallStatus = "failed"
	CallStatusTimedOut CallStatus = "timed_out"
)

// RunStatus is the lifecycle status of a pipeline run.
type RunStatus string

const (
	RunStatusPending   RunStatus = "pending"
	RunStatusRunning   RunStatus = "running"
	RunStatusCompleted RunStatus = "completed"
	RunStatusFailed    RunStatus = "failed"
)

// Terminal reports whether the status is a terminal state.
func (s RunStatus) Terminal() bool {
	return s == RunStatusCompleted || s == RunStatusFailed
}

// PipelineRequest is the inbound payload that starts a run.
type PipelineRequest struct {
	Prompt          string         `json:"prompt"`
	CandidateModels []string       `json:"candidate_models"`
	Options         map[string]any `json:"options,omitempty"`
	StreamStages    []string       `json:"stream_stages,omitempty"`
	CorrelationID   string         `json:"correlation_id,omitempty"`

	// PeerReviewFatal makes a total peer-review stage failure terminate the
	// run instead of degrading to stage-1 outputs. Defaults from config.
	PeerReviewFatal bool `json:"peer_review_fatal,omitempty"`
}

// Validate checks the request invariants: non-empty prompt and a non-empty,
// de-duplicated candidate model list.
func (r *PipelineRequest) Validate() error {
	if r.Prompt == "" {
		return fmt.Errorf("prompt is required")
	}
	if len(r.CandidateModels) == 0 {
		return fmt.Errorf("candidate_models must contain at least one model")
	}
	seen := make(map[string]bool, len(r.CandidateModels))
	for _, m := range r.CandidateModels {
		if m == "" {
			return fmt.Errorf("candidate_models must not contain empty ids")
		}
		if seen[m] {
			return fmt.Errorf("candidate_models contains duplicate model %q", m)
		}
		seen[m] = true
	}
	return nil
}

// Usage carries token and latency accounting for one provider call.
type Usage struct {
	InputTokens  int `json:"input_tokens,omitempty"`
	OutputTokens int `json:"output_tokens,omitempty"`
	TotalTokens  int `json:"total_tokens,omitempty"`
	LatencyMs    int `json:"latency_ms,omitempty"`
	Attempts     int `json:"attempts,omitempty"`
}

// ModelCallResult is the immutable outcome of one resilient provider call.
// Text is set iff Status is success; Err is set iff it is not.
type ModelCallResult struct {
	ModelID string     `json:"model_id"`
	Status  CallStatus `json:"status"`
	Text    string     `json:"text,omitempty"`
	Usage   Usage      `json:"usage"`
	Err     *CallError `json:"error,omitempty"`
}

// Succeeded reports whether the call produced usable text.
func (r ModelCallResult) Succeeded() bool {
	return r.Status == CallStatusSuccess
}

// StageResult is the outcome of one pipeline stage. Results are ordered by
// the original candidate_models ordering, never by arrival order.
type StageResult struct {
	StageName   string            `json:"stage_name"`
	Results     []ModelCallResult `json:"results"`
	StartedAt   time.Time         `json:"started_at"`
	CompletedAt time.Time         `json:"completed_at"`
	Success     bool              `json:"success"`
}

// SuccessfulModels returns the ids of models that succeeded in this stage,
// preserving result order.
func (s StageResult) SuccessfulModels() []string {
	var out []string
	for _, r := range s.Results {
		if r.Succeeded() {
			out = append(out, r.ModelID)
		}
	}
	return out
}

// PipelineRun is the full state of one pipeline run. It is owned exclusively
// by the controller while running; stages are appended as they complete and
// the run becomes terminal exactly once.
type PipelineRun struct {
	CorrelationID  string           `json:"correlation_id"`
	Request        *PipelineRequest `json:"request,omitempty"`
	Stages         []StageResult    `json:"stages"`
	Status         RunStatus        `json:"status"`
	FinalText      string           `json:"final_text,omitempty"`
	SynthesisModel string           `json:"synthesis_model,omitempty"`
	Error          *RunError        `json:"error,omitempty"`
	StartedAt      time.Time        `json:"started_at"`
	CompletedAt    time.Time        `json:"completed_at,omitzero"`
}

// Stage returns the named stage result, or nil if that stage never ran.
func (r *PipelineRun) Stage(name string) *StageResult {
	for i := range r.Stages {
		if r.Stages[i].StageName == name {
			return &r.Stages[i]
		}
	}
	return nil
}
