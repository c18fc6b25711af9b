package events

import "github.com/quorum-ai/quorum/pkg/models"

// Typed Data payloads for the wire envelope. Field names are part of the
// streaming contract — renaming one is a breaking change for consumers.

// PipelineStartData is the payload for pipeline_start events.
type PipelineStartData struct {
	CorrelationID   string   `json:"correlation_id"`
	CandidateModels []string `json:"candidate_models"`
}

// StageStartData is the payload for stage_start events.
type StageStartData struct {
	StageName string   `json:"stage_name"`
	Models    []string `json:"models"`
}

// ModelStartData is the payload for model_start events.
type ModelStartData struct {
	StageName string `json:"stage_name"`
	ModelID   string `json:"model_id"`
}

// ModelResponseData is the payload for model_response events. The full
// ModelCallResult is included so per-model failures stay diagnosable even
// when the run as a whole succeeds.
type ModelResponseData struct {
	StageName string                 `json:"stage_name"`
	Result    models.ModelCallResult `json:"result"`
}

// StageCompleteData is the payload for stage_complete events.
type StageCompleteData struct {
	Stage models.StageResult `json:"stage"`
}

// StageErrorData is the payload for stage_error events. Emitted when a
// stage's success criterion is not met; whether the run continues depends
// on the stage's fallback policy.
type StageErrorData struct {
	StageName string   `json:"stage_name"`
	ErrorKind string   `json:"error_kind"`
	Message   string   `json:"message"`
	Models    []string `json:"models,omitempty"`
}

// SynthesisStartData is the payload for synthesis_start events.
type SynthesisStartData struct {
	ModelID        string `json:"model_id"`
	NonParticipant bool   `json:"non_participant"`
}

// SynthesisChunkData is the payload for synthesis_chunk events — live
// synthesis output deltas. High frequency; transient on the NOTIFY path.
type SynthesisChunkData struct {
	Delta string `json:"delta"`
}

// SynthesisCompleteData is the payload for synthesis_complete events.
type SynthesisCompleteData struct {
	ModelID string       `json:"model_id"`
	Text    string       `json:"text"`
	Usage   models.Usage `json:"usage"`
}

// PipelineCompleteData is the payload for pipeline_complete events.
type PipelineCompleteData struct {
	CorrelationID  string `json:"correlation_id"`
	FinalText      string `json:"final_text"`
	SynthesisModel string `json:"synthesis_model"`
}

// PipelineErrorData is the payload for pipeline_error events. Always carries
// the error kind and the implicated models — never a bare stack trace.
type PipelineErrorData struct {
	CorrelationID string   `json:"correlation_id"`
	ErrorKind     string   `json:"error_kind"`
	Message       string   `json:"message"`
	Models        []string `json:"models,omitempty"`
}

// RunStatusData is the payload for transient run-status broadcasts on the
// global runs channel (run list page).
type RunStatusData struct {
	CorrelationID string           `json:"correlation_id"`
	Status        models.RunStatus `json:"status"`
}
