package pipeline

import (
	"encoding/json"
	"fmt"

	"github.com/quorum-ai/quorum/pkg/events"
	"github.com/quorum-ai/quorum/pkg/models"
)

// Replay rebuilds a PipelineRun from an ordered event log. The full log of
// a terminal run reconstructs the same stage list, status, and final text
// as the live run, so persisted events are a complete record.
//
// Unknown event types are skipped for forward compatibility. Returns an
// error on a sequence gap or an undecodable payload.
func Replay(log []events.Event) (*models.PipelineRun, error) {
	run := &models.PipelineRun{Status: models.RunStatusPending}

	lastSeq := 0
	for _, evt := range log {
		if evt.Sequence != lastSeq+1 {
			return nil, fmt.Errorf("event log gap: sequence %d follows %d", evt.Sequence, lastSeq)
		}
		lastSeq = evt.Sequence

		switch evt.EventType {
		case events.EventTypePipelineStart:
			var d events.PipelineStartData
			if err := decodeData(evt, &d); err != nil {
				return nil, err
			}
			run.CorrelationID = d.CorrelationID
			run.Status = models.RunStatusRunning

		case events.EventTypeStageComplete:
			var d events.StageCompleteData
			if err := decodeData(evt, &d); err != nil {
				return nil, err
			}
			run.Stages = append(run.Stages, d.Stage)

		case events.EventTypeSynthesisComplete:
			var d events.SynthesisCompleteData
			if err := decodeData(evt, &d); err != nil {
				return nil, err
			}
			run.SynthesisModel = d.ModelID

		case events.EventTypePipelineComplete:
			var d events.PipelineCompleteData
			if err := decodeData(evt, &d); err != nil {
				return nil, err
			}
			run.Status = models.RunStatusCompleted
			run.FinalText = d.FinalText
			run.SynthesisModel = d.SynthesisModel

		case events.EventTypePipelineError:
			var d events.PipelineErrorData
			if err := decodeData(evt, &d); err != nil {
				return nil, err
			}
			run.Status = models.RunStatusFailed
			run.Error = &models.RunError{
				Kind:    models.ErrorKind(d.ErrorKind),
				Message: d.Message,
				Models:  d.Models,
			}
		}
	}
	return run, nil
}

// decodeData converts an event's payload into the typed struct, whether the
// log came from the in-process emitter (concrete types) or from persisted
// JSON (maps).
func decodeData(evt events.Event, target any) error {
	raw, err := json.Marshal(evt.Data)
	if err != nil {
		return fmt.Errorf("encode %s payload at sequence %d: %w", evt.EventType, evt.Sequence, err)
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode %s payload at sequence %d: %w", evt.EventType, evt.Sequence, err)
	}
	return nil
}
