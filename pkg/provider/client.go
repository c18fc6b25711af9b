// Package provider wraps the opaque model-provider capability with the
// resilient call adapter used by the pipeline controller.
package provider

import "context"

// Client is the opaque generate capability consumed by the core. The
// implementation behind it (gRPC sidecar, in-process fake) is invisible to
// the pipeline: a prompt goes in, a stream of chunks comes out.
type Client interface {
	// Generate sends a prompt to the named model and returns a stream of
	// chunks. The channel is closed when the stream completes; provider
	// errors are delivered as ErrorChunk values.
	Generate(ctx context.Context, input *GenerateInput) (<-chan Chunk, error)

	// Close releases the underlying connection.
	Close() error
}

// GenerateInput is the provider-agnostic request shape.
type GenerateInput struct {
	CorrelationID string
	ModelID       string
	Prompt        string
	Options       map[string]string
}

// Chunk is the interface for all streaming chunk types.
type Chunk interface {
	chunkType() ChunkType
}

// ChunkType identifies the kind of streaming chunk.
type ChunkType string

const (
	ChunkTypeText  ChunkType = "text"
	ChunkTypeUsage ChunkType = "usage"
	ChunkTypeError ChunkType = "error"
)

// TextChunk is a chunk of the model's text response.
type TextChunk struct{ Content string }

// UsageChunk reports token consumption for this call.
type UsageChunk struct{ InputTokens, OutputTokens, TotalTokens int }

// ErrorChunk signals an error from the provider.
type ErrorChunk struct {
	Message   string
	Code      string
	Retryable bool
}

func (c *TextChunk) chunkType() ChunkType  { return ChunkTypeText }
func (c *UsageChunk) chunkType() ChunkType { return ChunkTypeUsage }
func (c *ErrorChunk) chunkType() ChunkType { return ChunkTypeError }
