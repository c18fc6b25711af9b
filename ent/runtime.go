// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/quorum-ai/quorum/ent/event"
	"github.com/quorum-ai/quorum/ent/modelcall"
	"github.com/quorum-ai/quorum/ent/pipelinerun"
	"github.com/quorum-ai/quorum/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[4].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	modelcallFields := schema.ModelCall{}.Fields()
	_ = modelcallFields
	// modelcallDescInputTokens is the schema descriptor for input_tokens field.
	modelcallDescInputTokens := modelcallFields[8].Descriptor()
	// modelcall.DefaultInputTokens holds the default value on creation for the input_tokens field.
	modelcall.DefaultInputTokens = modelcallDescInputTokens.Default.(int)
	// modelcallDescOutputTokens is the schema descriptor for output_tokens field.
	modelcallDescOutputTokens := modelcallFields[9].Descriptor()
	// modelcall.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	modelcall.DefaultOutputTokens = modelcallDescOutputTokens.Default.(int)
	// modelcallDescTotalTokens is the schema descriptor for total_tokens field.
	modelcallDescTotalTokens := modelcallFields[10].Descriptor()
	// modelcall.DefaultTotalTokens holds the default value on creation for the total_tokens field.
	modelcall.DefaultTotalTokens = modelcallDescTotalTokens.Default.(int)
	// modelcallDescLatencyMs is the schema descriptor for latency_ms field.
	modelcallDescLatencyMs := modelcallFields[11].Descriptor()
	// modelcall.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	modelcall.DefaultLatencyMs = modelcallDescLatencyMs.Default.(int)
	// modelcallDescAttempts is the schema descriptor for attempts field.
	modelcallDescAttempts := modelcallFields[12].Descriptor()
	// modelcall.DefaultAttempts holds the default value on creation for the attempts field.
	modelcall.DefaultAttempts = modelcallDescAttempts.Default.(int)
	pipelinerunFields := schema.PipelineRun{}.Fields()
	_ = pipelinerunFields
	// pipelinerunDescPeerReviewFatal is the schema descriptor for peer_review_fatal field.
	pipelinerunDescPeerReviewFatal := pipelinerunFields[5].Descriptor()
	// pipelinerun.DefaultPeerReviewFatal holds the default value on creation for the peer_review_fatal field.
	pipelinerun.DefaultPeerReviewFatal = pipelinerunDescPeerReviewFatal.Default.(bool)
	// pipelinerunDescCreatedAt is the schema descriptor for created_at field.
	pipelinerunDescCreatedAt := pipelinerunFields[14].Descriptor()
	// pipelinerun.DefaultCreatedAt holds the default value on creation for the created_at field.
	pipelinerun.DefaultCreatedAt = pipelinerunDescCreatedAt.Default.(func() time.Time)
}
