package provider

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/quorum-ai/quorum/pkg/models"
	"github.com/quorum-ai/quorum/pkg/resilience"
)

// DefaultCallTimeout bounds a single provider call when the model's config
// does not override it.
const DefaultCallTimeout = 30 * time.Second

// CallOptions carries per-call knobs for Adapter.Call.
type CallOptions struct {
	// Options is forwarded opaquely to the provider.
	Options map[string]string
	// OnDelta, when set, receives text chunks as they stream in. Used by
	// the synthesis stage to forward live output.
	OnDelta func(delta string)
}

// TimeoutLookup resolves the per-call timeout for a model. Zero means
// DefaultCallTimeout.
type TimeoutLookup func(modelID string) time.Duration

// Adapter is the resilient provider adapter: it composes the rate limiter
// gate, the circuit breaker check, and the retry-wrapped raw call with a
// per-call timeout, and reports the outcome back to the breaker. It never
// returns a raw error past its boundary — every call produces a
// ModelCallResult with a categorized error kind.
type Adapter struct {
	client   Client
	registry *resilience.Registry
	timeout  TimeoutLookup
}

// NewAdapter creates an adapter over the opaque provider client. timeout may
// be nil, in which case every call uses DefaultCallTimeout.
func NewAdapter(client Client, registry *resilience.Registry, timeout TimeoutLookup) *Adapter {
	if timeout == nil {
		timeout = func(string) time.Duration { return 0 }
	}
	return &Adapter{client: client, registry: registry, timeout: timeout}
}

// Call performs one resilient generate call for the given model.
func (a *Adapter) Call(ctx context.Context, correlationID, modelID, prompt string, opts CallOptions) models.ModelCallResult {
	log := slog.With("correlation_id", correlationID, "model_id", modelID)
	start := time.Now()

	result := models.ModelCallResult{ModelID: modelID, Status: models.CallStatusFailed}
	finish := func(r models.ModelCallResult) models.ModelCallResult {
		r.Usage.LatencyMs = int(time.Since(start).Milliseconds())
		return r
	}

	// 1. Rate limiter gate — independent of retries and circuit state.
	if err := a.registry.Limiter(modelID).Acquire(ctx); err != nil {
		switch {
		case errors.Is(err, resilience.ErrRateLimited):
			result.Err = models.NewCallError(models.ErrorKindRateLimited, err)
		case ctx.Err() != nil:
			result.Err = models.NewCallError(models.ErrorKindCancelled, ctx.Err())
		default:
			result.Err = models.NewCallError(models.ErrorKindRateLimited, err)
		}
		return finish(result)
	}

	// 2. Circuit breaker check — a rejected call never reaches the provider.
	breaker := a.registry.Breaker(modelID)
	if err := breaker.Allow(); err != nil {
		log.Debug("Call rejected by open circuit")
		result.Err = models.NewCallError(models.ErrorKindCircuitOpen, err)
		return finish(result)
	}

	// 3. Retry-wrapped raw invocation with a per-call timeout.
	var text string
	var usage models.Usage
	attempts, err := resilience.Retry(ctx, a.registry.RetryConfig(modelID), func() error {
		t, u, callErr := a.invoke(ctx, correlationID, modelID, prompt, opts)
		if callErr != nil {
			return callErr
		}
		text, usage = t, u
		return nil
	})
	result.Usage = usage
	result.Usage.Attempts = attempts

	// 4. Breaker report + result classification.
	if err != nil {
		kind := classify(ctx, err)
		if kind == models.ErrorKindCancelled {
			// Cancellation says nothing about provider health: don't count
			// it against the breaker, but release a half-open probe so the
			// breaker can admit the next one after the recovery timeout.
			breaker.ReleaseProbe()
		} else {
			breaker.RecordFailure()
		}
		if kind == models.ErrorKindTimeout {
			result.Status = models.CallStatusTimedOut
		}
		result.Err = models.NewCallError(kind, err)
		log.Warn("Provider call failed", "kind", kind, "attempts", attempts, "error", err)
		return finish(result)
	}

	breaker.RecordSuccess()
	result.Status = models.CallStatusSuccess
	result.Text = text
	result.Err = nil
	return finish(result)
}

// callTimeoutError distinguishes a single call's deadline from run-level
// cancellation, which shares context.DeadlineExceeded/Canceled otherwise.
type callTimeoutError struct{ timeout time.Duration }

func (e *callTimeoutError) Error() string {
	return fmt.Sprintf("provider call timed out after %v", e.timeout)
}

// invoke performs one raw generate call, collecting the chunk stream into
// text and usage. Retryability is encoded via resilience.Permanent.
func (a *Adapter) invoke(ctx context.Context, correlationID, modelID, prompt string, opts CallOptions) (string, models.Usage, error) {
	timeout := a.timeout(modelID)
	if timeout <= 0 {
		timeout = DefaultCallTimeout
	}
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ch, err := a.client.Generate(callCtx, &GenerateInput{
		CorrelationID: correlationID,
		ModelID:       modelID,
		Prompt:        prompt,
		Options:       opts.Options,
	})
	if err != nil {
		return "", models.Usage{}, err // transport errors are retryable
	}

	var sb strings.Builder
	var usage models.Usage
	for chunk := range ch {
		switch c := chunk.(type) {
		case *TextChunk:
			sb.WriteString(c.Content)
			if opts.OnDelta != nil && c.Content != "" {
				opts.OnDelta(c.Content)
			}
		case *UsageChunk:
			usage.InputTokens += c.InputTokens
			usage.OutputTokens += c.OutputTokens
			usage.TotalTokens += c.TotalTokens
		case *ErrorChunk:
			err := fmt.Errorf("provider error: %s", c.Message)
			if !c.Retryable {
				return "", usage, resilience.Permanent(err)
			}
			return "", usage, err
		}
	}

	// The channel closed — distinguish timeout, cancellation, completion.
	if callCtx.Err() != nil {
		if ctx.Err() != nil {
			// The run itself was cancelled or hit its deadline.
			return "", usage, resilience.Permanent(ctx.Err())
		}
		return "", usage, &callTimeoutError{timeout: timeout}
	}

	text := sb.String()
	if strings.TrimSpace(text) == "" {
		return "", usage, resilience.Permanent(errInvalidResponse)
	}
	return text, usage, nil
}

var errInvalidResponse = errors.New("provider returned empty response")

// classify maps the final error of a retried call to its error kind.
func classify(ctx context.Context, err error) models.ErrorKind {
	var timeoutErr *callTimeoutError
	switch {
	case ctx.Err() != nil:
		return models.ErrorKindCancelled
	case errors.As(err, &timeoutErr), errors.Is(err, context.DeadlineExceeded):
		return models.ErrorKindTimeout
	case errors.Is(err, errInvalidResponse):
		return models.ErrorKindInvalidResponse
	default:
		return models.ErrorKindProviderError
	}
}
