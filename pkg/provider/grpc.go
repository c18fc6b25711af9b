package provider

import (
	"context"
	"fmt"
	"io"

	providerv1 "github.com/quorum-ai/quorum/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// GRPCClient implements Client by calling the provider sidecar via gRPC.
// The sidecar owns the provider-specific SDKs and request shapes; this side
// only sees the uniform Generate stream.
type GRPCClient struct {
	conn   *grpc.ClientConn
	client providerv1.ProviderServiceClient
}

// NewGRPCClient creates a new gRPC provider client.
// grpc.NewClient dials lazily; the connection is established on first RPC.
func NewGRPCClient(addr string) (*GRPCClient, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to provider service at %s: %w", addr, err)
	}
	return &GRPCClient{
		conn:   conn,
		client: providerv1.NewProviderServiceClient(conn),
	}, nil
}

// Generate sends a prompt to the sidecar and returns a channel of chunks.
func (c *GRPCClient) Generate(ctx context.Context, input *GenerateInput) (<-chan Chunk, error) {
	req := &providerv1.GenerateRequest{
		CorrelationId: input.CorrelationID,
		ModelId:       input.ModelID,
		Prompt:        input.Prompt,
		Options:       input.Options,
	}

	stream, err := c.client.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("gRPC Generate call failed: %w", err)
	}

	ch := make(chan Chunk, 32)
	go func() {
		defer close(ch)
		for {
			resp, err := stream.Recv()
			if err == io.EOF {
				return
			}
			if err != nil {
				select {
				case ch <- &ErrorChunk{Message: err.Error(), Retryable: true}:
				case <-ctx.Done():
				}
				return
			}
			chunk := fromProtoResponse(resp)
			if chunk != nil {
				select {
				case ch <- chunk:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return ch, nil
}

// Close releases the gRPC connection.
func (c *GRPCClient) Close() error {
	return c.conn.Close()
}

func fromProtoResponse(resp *providerv1.GenerateResponse) Chunk {
	switch c := resp.Content.(type) {
	case *providerv1.GenerateResponse_Text:
		return &TextChunk{Content: c.Text.Content}
	case *providerv1.GenerateResponse_Usage:
		return &UsageChunk{
			InputTokens:  int(c.Usage.InputTokens),
			OutputTokens: int(c.Usage.OutputTokens),
			TotalTokens:  int(c.Usage.TotalTokens),
		}
	case *providerv1.GenerateResponse_Error:
		return &ErrorChunk{
			Message:   c.Error.Message,
			Code:      c.Error.Code,
			Retryable: c.Error.Retryable,
		}
	default:
		return nil
	}
}
