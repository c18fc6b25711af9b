package provider

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quorum-ai/quorum/pkg/models"
	"github.com/quorum-ai/quorum/pkg/resilience"
)

func testRegistry(overrides map[string]resilience.ProviderConfig) *resilience.Registry {
	configs := make(map[string]resilience.ProviderConfig)
	for k, v := range overrides {
		configs[k] = v
	}
	return resilience.NewRegistry(configs)
}

func fastProviderConfig() resilience.ProviderConfig {
	cfg := resilience.DefaultProviderConfig()
	cfg.Retry.InitialDelay = time.Millisecond
	cfg.Retry.MaxDelay = 2 * time.Millisecond
	cfg.RateLimit.EventsPerSecond = 0 // disabled unless the test opts in
	return cfg
}

func TestAdapterSuccess(t *testing.T) {
	client := NewFakeClient().Script("gpt-alpha", ScriptedResponse{
		Text:  "the answer",
		Usage: UsageChunk{InputTokens: 10, OutputTokens: 5, TotalTokens: 15},
	})
	a := NewAdapter(client, testRegistry(map[string]resilience.ProviderConfig{
		"gpt-alpha": fastProviderConfig(),
	}), nil)

	result := a.Call(context.Background(), "run-1", "gpt-alpha", "question", CallOptions{})

	require.Equal(t, models.CallStatusSuccess, result.Status)
	assert.Equal(t, "the answer", result.Text)
	assert.Nil(t, result.Err)
	assert.Equal(t, 15, result.Usage.TotalTokens)
	assert.Equal(t, 1, result.Usage.Attempts)
}

func TestAdapterRetriesTransientFailures(t *testing.T) {
	client := NewFakeClient().Script("gpt-alpha",
		ScriptedResponse{Err: &ErrorChunk{Message: "503", Retryable: true}},
		ScriptedResponse{Err: &ErrorChunk{Message: "503", Retryable: true}},
		ScriptedResponse{Text: "recovered"},
	)
	a := NewAdapter(client, testRegistry(map[string]resilience.ProviderConfig{
		"gpt-alpha": fastProviderConfig(),
	}), nil)

	result := a.Call(context.Background(), "run-1", "gpt-alpha", "q", CallOptions{})

	require.Equal(t, models.CallStatusSuccess, result.Status)
	assert.Equal(t, "recovered", result.Text)
	assert.Equal(t, 3, result.Usage.Attempts)
	assert.Equal(t, 3, client.Calls("gpt-alpha"))
}

func TestAdapterClientErrorNotRetried(t *testing.T) {
	client := NewFakeClient().Script("gpt-alpha",
		ScriptedResponse{Err: &ErrorChunk{Message: "400 bad request", Retryable: false}},
	)
	a := NewAdapter(client, testRegistry(map[string]resilience.ProviderConfig{
		"gpt-alpha": fastProviderConfig(),
	}), nil)

	result := a.Call(context.Background(), "run-1", "gpt-alpha", "q", CallOptions{})

	require.Equal(t, models.CallStatusFailed, result.Status)
	require.NotNil(t, result.Err)
	assert.Equal(t, models.ErrorKindProviderError, result.Err.Kind)
	assert.Equal(t, 1, client.Calls("gpt-alpha"))
}

func TestAdapterEmptyResponseIsInvalid(t *testing.T) {
	client := NewFakeClient().Script("gpt-alpha", ScriptedResponse{Text: "   "})
	a := NewAdapter(client, testRegistry(map[string]resilience.ProviderConfig{
		"gpt-alpha": fastProviderConfig(),
	}), nil)

	result := a.Call(context.Background(), "run-1", "gpt-alpha", "q", CallOptions{})

	require.NotNil(t, result.Err)
	assert.Equal(t, models.ErrorKindInvalidResponse, result.Err.Kind)
	assert.Equal(t, 1, client.Calls("gpt-alpha"))
}

func TestAdapterTimeout(t *testing.T) {
	client := NewFakeClient().Script("slow-model", ScriptedResponse{
		Text:  "too late",
		Delay: time.Second,
	})
	cfg := fastProviderConfig()
	cfg.Retry.MaxAttempts = 1
	a := NewAdapter(client, testRegistry(map[string]resilience.ProviderConfig{
		"slow-model": cfg,
	}), func(string) time.Duration { return 20 * time.Millisecond })

	result := a.Call(context.Background(), "run-1", "slow-model", "q", CallOptions{})

	require.Equal(t, models.CallStatusTimedOut, result.Status)
	require.NotNil(t, result.Err)
	assert.Equal(t, models.ErrorKindTimeout, result.Err.Kind)
}

func TestAdapterCircuitOpenSkipsProvider(t *testing.T) {
	cfg := fastProviderConfig()
	cfg.Retry.MaxAttempts = 1
	cfg.Breaker = resilience.BreakerConfig{Threshold: 2, RecoveryTimeout: time.Hour}
	reg := testRegistry(map[string]resilience.ProviderConfig{"flaky": cfg})

	client := NewFakeClient().Script("flaky",
		ScriptedResponse{Err: &ErrorChunk{Message: "boom", Retryable: true}},
	)
	a := NewAdapter(client, reg, nil)

	// Two failures trip the breaker.
	for i := 0; i < 2; i++ {
		result := a.Call(context.Background(), "run-1", "flaky", "q", CallOptions{})
		require.Equal(t, models.CallStatusFailed, result.Status)
	}
	callsBefore := client.Calls("flaky")

	// Next call is rejected without a network attempt.
	result := a.Call(context.Background(), "run-1", "flaky", "q", CallOptions{})
	require.NotNil(t, result.Err)
	assert.Equal(t, models.ErrorKindCircuitOpen, result.Err.Kind)
	assert.Equal(t, callsBefore, client.Calls("flaky"))
}

func TestAdapterCancelledProbeDoesNotWedgeBreaker(t *testing.T) {
	cfg := fastProviderConfig()
	cfg.Retry.MaxAttempts = 1
	cfg.Breaker = resilience.BreakerConfig{Threshold: 1, RecoveryTimeout: 10 * time.Millisecond}
	client := NewFakeClient().Script("flaky",
		ScriptedResponse{Err: &ErrorChunk{Message: "boom", Retryable: false}},
		ScriptedResponse{Text: "probe answer", Delay: time.Second},
		ScriptedResponse{Text: "healthy again"},
	)
	a := NewAdapter(client, testRegistry(map[string]resilience.ProviderConfig{
		"flaky": cfg,
	}), nil)

	// One failure trips the breaker.
	result := a.Call(context.Background(), "run-1", "flaky", "q", CallOptions{})
	require.Equal(t, models.CallStatusFailed, result.Status)

	time.Sleep(15 * time.Millisecond)

	// The half-open probe is cancelled mid-call. That must not count as a
	// probe verdict: the breaker goes back to open, not stuck half-open.
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	result = a.Call(ctx, "run-2", "flaky", "q", CallOptions{})
	require.NotNil(t, result.Err)
	assert.Equal(t, models.ErrorKindCancelled, result.Err.Kind)

	// The recovery timeout already elapsed before the cancelled probe, so
	// the next call is admitted as a fresh probe and closes the breaker.
	result = a.Call(context.Background(), "run-3", "flaky", "q", CallOptions{})
	require.Equal(t, models.CallStatusSuccess, result.Status)
	assert.Equal(t, "healthy again", result.Text)
}

func TestAdapterRateLimitedFailFast(t *testing.T) {
	cfg := fastProviderConfig()
	cfg.RateLimit = resilience.RateLimitConfig{
		EventsPerSecond: 0.5,
		Burst:           1,
		Mode:            resilience.RateLimitFailFast,
	}
	client := NewFakeClient().Script("limited", ScriptedResponse{Text: "ok"})
	a := NewAdapter(client, testRegistry(map[string]resilience.ProviderConfig{
		"limited": cfg,
	}), nil)

	first := a.Call(context.Background(), "run-1", "limited", "q", CallOptions{})
	require.Equal(t, models.CallStatusSuccess, first.Status)

	second := a.Call(context.Background(), "run-1", "limited", "q", CallOptions{})
	require.NotNil(t, second.Err)
	assert.Equal(t, models.ErrorKindRateLimited, second.Err.Kind)
	assert.Equal(t, 1, client.Calls("limited"))
}

func TestAdapterCancellation(t *testing.T) {
	client := NewFakeClient().Script("gpt-alpha", ScriptedResponse{
		Text:  "never delivered",
		Delay: time.Second,
	})
	a := NewAdapter(client, testRegistry(map[string]resilience.ProviderConfig{
		"gpt-alpha": fastProviderConfig(),
	}), nil)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	result := a.Call(ctx, "run-1", "gpt-alpha", "q", CallOptions{})

	require.NotNil(t, result.Err)
	assert.Equal(t, models.ErrorKindCancelled, result.Err.Kind)
}

func TestAdapterStreamsDeltas(t *testing.T) {
	client := NewFakeClient().Script("streamer", ScriptedResponse{
		Chunks: []string{"hello ", "world"},
	})
	a := NewAdapter(client, testRegistry(map[string]resilience.ProviderConfig{
		"streamer": fastProviderConfig(),
	}), nil)

	var deltas []string
	result := a.Call(context.Background(), "run-1", "streamer", "q", CallOptions{
		OnDelta: func(d string) { deltas = append(deltas, d) },
	})

	require.Equal(t, models.CallStatusSuccess, result.Status)
	assert.Equal(t, "hello world", result.Text)
	assert.Equal(t, []string{"hello ", "world"}, deltas)
	assert.Equal(t, "hello world", strings.Join(deltas, ""))
}
