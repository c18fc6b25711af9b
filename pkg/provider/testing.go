package provider

import (
	"context"
	"sync"
	"time"
)

// ScriptedResponse is one canned provider response for the fake client.
type ScriptedResponse struct {
	// Text is streamed as a single TextChunk when non-empty.
	Text string
	// Chunks, when set, is streamed instead of Text (for streaming tests).
	Chunks []string
	// Err is delivered as an ErrorChunk when set.
	Err *ErrorChunk
	// Delay is waited before responding (for timeout/cancellation tests).
	Delay time.Duration
	// Usage is delivered after the text when non-zero.
	Usage UsageChunk
}

// FakeClient is a scripted in-process Client for tests. Responses are
// consumed per model in order; the last response repeats once the script
// runs out. A model with no script returns an empty stream (which the
// adapter classifies as an invalid response).
type FakeClient struct {
	mu      sync.Mutex
	scripts map[string][]ScriptedResponse
	calls   map[string]int
}

// NewFakeClient creates an empty fake client.
func NewFakeClient() *FakeClient {
	return &FakeClient{
		scripts: make(map[string][]ScriptedResponse),
		calls:   make(map[string]int),
	}
}

// Script appends responses to a model's script.
func (f *FakeClient) Script(modelID string, responses ...ScriptedResponse) *FakeClient {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scripts[modelID] = append(f.scripts[modelID], responses...)
	return f
}

// Calls returns how many times a model was invoked.
func (f *FakeClient) Calls(modelID string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[modelID]
}

// Generate implements Client.
func (f *FakeClient) Generate(ctx context.Context, input *GenerateInput) (<-chan Chunk, error) {
	f.mu.Lock()
	script := f.scripts[input.ModelID]
	idx := f.calls[input.ModelID]
	f.calls[input.ModelID]++
	f.mu.Unlock()

	var resp ScriptedResponse
	if len(script) > 0 {
		if idx >= len(script) {
			idx = len(script) - 1
		}
		resp = script[idx]
	}

	ch := make(chan Chunk, 8)
	go func() {
		defer close(ch)

		if resp.Delay > 0 {
			select {
			case <-time.After(resp.Delay):
			case <-ctx.Done():
				return
			}
		}

		send := func(c Chunk) bool {
			select {
			case ch <- c:
				return true
			case <-ctx.Done():
				return false
			}
		}

		if resp.Err != nil {
			send(resp.Err)
			return
		}
		for _, delta := range resp.Chunks {
			if !send(&TextChunk{Content: delta}) {
				return
			}
		}
		if resp.Text != "" {
			if !send(&TextChunk{Content: resp.Text}) {
				return
			}
		}
		if resp.Usage != (UsageChunk{}) {
			u := resp.Usage
			send(&u)
		}
	}()

	return ch, nil
}

// Close implements Client.
func (f *FakeClient) Close() error { return nil }
