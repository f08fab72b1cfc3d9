package event

import (
	"time"

	"github.com/ragforge/flowgraph/constants"
)

// Notifier publishes fire-and-forget pipeline signals for the external
// orchestrator. The editor never waits on or coordinates with whatever
// consumes them.
type Notifier struct {
	bus EventBus
}

func NewNotifier(bus EventBus) *Notifier {
	return &Notifier{bus: bus}
}

func (n *Notifier) notify(topic, pipelineID string, extra map[string]any) error {
	payload := map[string]any{
		"pipeline_id": pipelineID,
		"at":          time.Now().UTC().Format(time.RFC3339),
	}
	for k, v := range extra {
		payload[k] = v
	}
	return n.bus.Publish(topic, payload)
}

// ValidateRequested signals that the orchestrator should validate the pipeline.
func (n *Notifier) ValidateRequested(pipelineID string) error {
	return n.notify(constants.TopicPipelineValidate, pipelineID, nil)
}

// ExecuteRequested signals that the orchestrator should execute the pipeline.
func (n *Notifier) ExecuteRequested(pipelineID string) error {
	return n.notify(constants.TopicPipelineExecute, pipelineID, nil)
}

// Saved signals that a pipeline snapshot was persisted.
func (n *Notifier) Saved(pipelineID string, stepCount int) error {
	return n.notify(constants.TopicPipelineSaved, pipelineID, map[string]any{"steps": stepCount})
}
