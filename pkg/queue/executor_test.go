package queue

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quorum-ai/quorum/ent"
	"github.com/quorum-ai/quorum/ent/pipelinerun"
	"github.com/quorum-ai/quorum/pkg/models"
	"github.com/quorum-ai/quorum/pkg/pipeline"
	"github.com/quorum-ai/quorum/pkg/provider"
	"github.com/quorum-ai/quorum/pkg/resilience"
)

func scriptedAdapter(t *testing.T, fake *provider.FakeClient) *provider.Adapter {
	t.Helper()
	registry := resilience.NewRegistry(nil)
	return provider.NewAdapter(fake, registry, nil)
}

func pendingRun(id, prompt string, candidates ...string) *ent.PipelineRun {
	return &ent.PipelineRun{
		ID:              id,
		Prompt:          prompt,
		CandidateModels: candidates,
		Status:          pipelinerun.StatusRunning,
	}
}

func TestPipelineExecutorCompletesRun(t *testing.T) {
	fake := provider.NewFakeClient()
	for _, model := range []string{"alpha", "beta"} {
		fake.Script(model,
			provider.ScriptedResponse{Text: "draft from " + model},
			provider.ScriptedResponse{Text: "revision from " + model},
			provider.ScriptedResponse{Text: "synthesis from " + model},
		)
	}

	selector := pipeline.NewSelector(func(modelID string) int {
		if modelID == "alpha" {
			return 10
		}
		return 0
	})
	executor := NewPipelineExecutor(scriptedAdapter(t, fake), selector, nil, 16)

	result := executor.Execute(context.Background(), pendingRun("run-1", "pick a database", "alpha", "beta"))
	require.NotNil(t, result)
	assert.Equal(t, models.RunStatusCompleted, result.Status)
	assert.NotEmpty(t, result.FinalText)
	require.Len(t, result.Stages, 3)
	assert.Equal(t, models.StageUltraSynthesis, result.Stages[2].StageName)

	// Both candidates ran stage 1 and stage 2; one of them synthesized.
	assert.GreaterOrEqual(t, fake.Calls("alpha"), 2)
	assert.GreaterOrEqual(t, fake.Calls("beta"), 2)
}

func TestPipelineExecutorAllProvidersFailed(t *testing.T) {
	fake := provider.NewFakeClient()
	fake.Script("alpha", provider.ScriptedResponse{
		Err: &provider.ErrorChunk{Code: "provider_error", Message: "upstream 500"},
	})

	executor := NewPipelineExecutor(scriptedAdapter(t, fake), pipeline.NewSelector(nil), nil, 16)

	result := executor.Execute(context.Background(), pendingRun("run-2", "doomed", "alpha"))
	require.NotNil(t, result)
	assert.Equal(t, models.RunStatusFailed, result.Status)
	require.NotNil(t, result.Error)
	assert.Equal(t, models.ErrorKindAllProvidersFailed, result.Error.Kind)
}
