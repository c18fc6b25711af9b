package api

import (
	"time"

	"github.com/quorum-ai/quorum/ent"
	"github.com/quorum-ai/quorum/pkg/models"
)

// SubmitResponse is returned by POST /api/v1/pipelines?async=true.
type SubmitResponse struct {
	CorrelationID string `json:"correlation_id"`
	Status        string `json:"status"`
	Message       string `json:"message"`
}

// CancelResponse is returned by POST /api/v1/runs/:id/cancel.
type CancelResponse struct {
	CorrelationID string `json:"correlation_id"`
	Message       string `json:"message"`
}

// HealthCheck is one component's health within HealthResponse.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status  string                 `json:"status"`
	Version string                 `json:"version"`
	Checks  map[string]HealthCheck `json:"checks"`
}

// RunDetail is the full persisted view of one run, returned by
// GET /api/v1/runs/:id and by the synchronous submission path.
type RunDetail struct {
	CorrelationID   string         `json:"correlation_id"`
	Prompt          string         `json:"prompt"`
	CandidateModels []string       `json:"candidate_models"`
	Options         map[string]any `json:"options,omitempty"`
	Status          string         `json:"status"`
	FinalText       string         `json:"final_text,omitempty"`
	SynthesisModel  string         `json:"synthesis_model,omitempty"`
	Error           *RunErrorInfo  `json:"error,omitempty"`
	Stages          []StageDetail  `json:"stages,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	StartedAt       *time.Time     `json:"started_at,omitempty"`
	CompletedAt     *time.Time     `json:"completed_at,omitempty"`
}

// RunErrorInfo carries the terminal failure detail of a failed run.
type RunErrorInfo struct {
	Kind    string   `json:"kind"`
	Message string   `json:"message"`
	Models  []string `json:"models,omitempty"`
}

// StageDetail is one completed stage within RunDetail.
type StageDetail struct {
	StageName   string            `json:"stage_name"`
	StageIndex  int               `json:"stage_index"`
	Success     bool              `json:"success"`
	StartedAt   time.Time         `json:"started_at"`
	CompletedAt time.Time         `json:"completed_at"`
	Calls       []ModelCallDetail `json:"calls,omitempty"`
}

// ModelCallDetail is one provider call within a stage.
type ModelCallDetail struct {
	ModelID      string `json:"model_id"`
	CallIndex    int    `json:"call_index"`
	Status       string `json:"status"`
	Text         string `json:"text,omitempty"`
	ErrorKind    string `json:"error_kind,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
	InputTokens  int    `json:"input_tokens"`
	OutputTokens int    `json:"output_tokens"`
	TotalTokens  int    `json:"total_tokens"`
	LatencyMs    int    `json:"latency_ms"`
	Attempts     int    `json:"attempts"`
}

// RunSummary is the list-view projection of a run.
type RunSummary struct {
	CorrelationID   string     `json:"correlation_id"`
	Prompt          string     `json:"prompt"`
	CandidateModels []string   `json:"candidate_models"`
	Status          string     `json:"status"`
	SynthesisModel  string     `json:"synthesis_model,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
}

// ListRunsResponse is returned by GET /api/v1/runs.
type ListRunsResponse struct {
	Runs       []RunSummary `json:"runs"`
	TotalCount int          `json:"total_count"`
	Limit      int          `json:"limit"`
	Offset     int          `json:"offset"`
}

// EventRecord is one persisted event in EventsResponse.
type EventRecord struct {
	ID      int64          `json:"id"`
	Payload map[string]any `json:"payload"`
}

// EventsResponse is returned by GET /api/v1/runs/:id/events.
type EventsResponse struct {
	CorrelationID string        `json:"correlation_id"`
	Events        []EventRecord `json:"events"`
}

func newListRunsResponse(runs []*ent.PipelineRun, total, limit, offset int) *ListRunsResponse {
	out := &ListRunsResponse{
		Runs:       make([]RunSummary, 0, len(runs)),
		TotalCount: total,
		Limit:      limit,
		Offset:     offset,
	}
	for _, run := range runs {
		out.Runs = append(out.Runs, newRunSummary(run))
	}
	return out
}

// summaryPromptLimit truncates prompts in list views.
const summaryPromptLimit = 200

func newRunSummary(run *ent.PipelineRun) RunSummary {
	prompt := run.Prompt
	if len(prompt) > summaryPromptLimit {
		prompt = prompt[:summaryPromptLimit]
	}
	return RunSummary{
		CorrelationID:   run.ID,
		Prompt:          prompt,
		CandidateModels: run.CandidateModels,
		Status:          string(run.Status),
		SynthesisModel:  run.SynthesisModel,
		CreatedAt:       run.CreatedAt,
		CompletedAt:     run.CompletedAt,
	}
}

// newRunDetailFromResult builds the response document from an in-memory
// terminal run, so the synchronous path does not re-read what it just wrote.
func newRunDetailFromResult(run *models.PipelineRun) *RunDetail {
	detail := &RunDetail{
		CorrelationID:  run.CorrelationID,
		Status:         string(run.Status),
		FinalText:      run.FinalText,
		SynthesisModel: run.SynthesisModel,
		CreatedAt:      run.StartedAt,
	}
	if run.Request != nil {
		detail.Prompt = run.Request.Prompt
		detail.CandidateModels = run.Request.CandidateModels
		detail.Options = run.Request.Options
	}
	if !run.StartedAt.IsZero() {
		started := run.StartedAt
		detail.StartedAt = &started
	}
	if !run.CompletedAt.IsZero() {
		completed := run.CompletedAt
		detail.CompletedAt = &completed
	}
	if run.Error != nil {
		detail.Error = &RunErrorInfo{
			Kind:    string(run.Error.Kind),
			Message: run.Error.Message,
			Models:  run.Error.Models,
		}
	}

	for i, stage := range run.Stages {
		sd := StageDetail{
			StageName:   stage.StageName,
			StageIndex:  i,
			Success:     stage.Success,
			StartedAt:   stage.StartedAt,
			CompletedAt: stage.CompletedAt,
		}
		for j, result := range stage.Results {
			cd := ModelCallDetail{
				ModelID:      result.ModelID,
				CallIndex:    j,
				Status:       string(result.Status),
				Text:         result.Text,
				InputTokens:  result.Usage.InputTokens,
				OutputTokens: result.Usage.OutputTokens,
				TotalTokens:  result.Usage.TotalTokens,
				LatencyMs:    result.Usage.LatencyMs,
				Attempts:     result.Usage.Attempts,
			}
			if result.Err != nil {
				cd.ErrorKind = string(result.Err.Kind)
				cd.ErrorMessage = result.Err.Message
			}
			sd.Calls = append(sd.Calls, cd)
		}
		detail.Stages = append(detail.Stages, sd)
	}

	return detail
}

func newRunDetail(run *ent.PipelineRun) *RunDetail {
	detail := &RunDetail{
		CorrelationID:   run.ID,
		Prompt:          run.Prompt,
		CandidateModels: run.CandidateModels,
		Options:         run.Options,
		Status:          string(run.Status),
		FinalText:       run.FinalText,
		SynthesisModel:  run.SynthesisModel,
		CreatedAt:       run.CreatedAt,
		StartedAt:       run.StartedAt,
		CompletedAt:     run.CompletedAt,
	}

	if run.ErrorKind != nil {
		detail.Error = &RunErrorInfo{
			Kind:   *run.ErrorKind,
			Models: run.ErrorModels,
		}
		if run.ErrorMessage != nil {
			detail.Error.Message = *run.ErrorMessage
		}
	}

	for _, stage := range run.Edges.Stages {
		sd := StageDetail{
			StageName:   stage.StageName,
			StageIndex:  stage.StageIndex,
			Success:     stage.Success,
			StartedAt:   stage.StartedAt,
			CompletedAt: stage.CompletedAt,
		}
		for _, call := range stage.Edges.ModelCalls {
			cd := ModelCallDetail{
				ModelID:      call.ModelID,
				CallIndex:    call.CallIndex,
				Status:       string(call.Status),
				Text:         call.Text,
				InputTokens:  call.InputTokens,
				OutputTokens: call.OutputTokens,
				TotalTokens:  call.TotalTokens,
				LatencyMs:    call.LatencyMs,
				Attempts:     call.Attempts,
			}
			if call.ErrorKind != nil {
				cd.ErrorKind = *call.ErrorKind
			}
			if call.ErrorMessage != nil {
				cd.ErrorMessage = *call.ErrorMessage
			}
			sd.Calls = append(sd.Calls, cd)
		}
		detail.Stages = append(detail.Stages, sd)
	}

	return detail
}
