package api

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quorum-ai/quorum/ent"
	"github.com/quorum-ai/quorum/pkg/models"
)

func TestNewRunDetailFromResult(t *testing.T) {
	started := time.Now().Add(-10 * time.Second)
	completed := time.Now()

	run := &models.PipelineRun{
		CorrelationID: "run-1",
		Request: &models.PipelineRequest{
			Prompt:          "compare the designs",
			CandidateModels: []string{"gpt-4o", "claude-sonnet-4"},
		},
		Status:         models.RunStatusCompleted,
		FinalText:      "synthesized document",
		SynthesisModel: "claude-sonnet-4",
		StartedAt:      started,
		CompletedAt:    completed,
		Stages: []models.StageResult{
			{
				StageName: "initial_response",
				Success:   true,
				Results: []models.ModelCallResult{
					{ModelID: "gpt-4o", Status: models.CallStatusSuccess, Text: "draft A",
						Usage: models.Usage{TotalTokens: 40, Attempts: 1}},
					{ModelID: "claude-sonnet-4", Status: models.CallStatusFailed,
						Err: models.NewCallError(models.ErrorKindTimeout, assert.AnError)},
				},
			},
		},
	}

	detail := newRunDetailFromResult(run)

	assert.Equal(t, "run-1", detail.CorrelationID)
	assert.Equal(t, "completed", detail.Status)
	assert.Equal(t, "synthesized document", detail.FinalText)
	assert.Equal(t, "claude-sonnet-4", detail.SynthesisModel)
	require.NotNil(t, detail.StartedAt)
	require.NotNil(t, detail.CompletedAt)

	require.Len(t, detail.Stages, 1)
	stage := detail.Stages[0]
	assert.Equal(t, "initial_response", stage.StageName)
	assert.Equal(t, 0, stage.StageIndex)

	require.Len(t, stage.Calls, 2)
	assert.Equal(t, "gpt-4o", stage.Calls[0].ModelID)
	assert.Equal(t, 0, stage.Calls[0].CallIndex)
	assert.Equal(t, 40, stage.Calls[0].TotalTokens)
	assert.Equal(t, "timeout", stage.Calls[1].ErrorKind)
	assert.Equal(t, 1, stage.Calls[1].CallIndex)
	assert.Empty(t, stage.Calls[1].Text)
}

func TestNewRunDetailFromResult_FailedRun(t *testing.T) {
	run := &models.PipelineRun{
		CorrelationID: "run-2",
		Status:        models.RunStatusFailed,
		Error: &models.RunError{
			Kind:    models.ErrorKindAllProvidersFailed,
			Message: "no provider produced a usable response",
			Models:  []string{"gpt-4o", "claude-sonnet-4"},
		},
	}

	detail := newRunDetailFromResult(run)

	assert.Equal(t, "failed", detail.Status)
	require.NotNil(t, detail.Error)
	assert.Equal(t, "all_providers_failed", detail.Error.Kind)
	assert.Equal(t, []string{"gpt-4o", "claude-sonnet-4"}, detail.Error.Models)
	assert.Nil(t, detail.CompletedAt)
}

func TestNewRunSummary_TruncatesPrompt(t *testing.T) {
	long := strings.Repeat("q", summaryPromptLimit+50)
	summary := newRunSummary(&ent.PipelineRun{
		ID:     "run-3",
		Prompt: long,
		Status: "pending",
	})

	assert.Len(t, summary.Prompt, summaryPromptLimit)
	assert.Equal(t, "run-3", summary.CorrelationID)
}
