// Package session hosts one pipeline editing session: a single owned graph,
// the step catalog it draws from, and the outward hand-offs (persistence and
// orchestrator notifications). Exactly one in-memory graph exists per session
// and it is never aliased outside it.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/ragforge/flowgraph/event"
	"github.com/ragforge/flowgraph/graph"
	"github.com/ragforge/flowgraph/model"
	"github.com/ragforge/flowgraph/registry"
	"github.com/ragforge/flowgraph/storage"
	"github.com/ragforge/flowgraph/telemetry"
	"github.com/ragforge/flowgraph/utils"
)

// Session owns the editing state for one pipeline.
type Session struct {
	pipeline *model.Pipeline
	graph    *graph.Graph
	registry registry.StepRegistry
	store    storage.Storage
	notifier *event.Notifier
}

// New starts an editing session on a fresh draft pipeline.
func New(reg registry.StepRegistry, store storage.Storage, bus event.EventBus, name, description string) *Session {
	return &Session{
		pipeline: model.NewPipeline(name, description),
		graph:    graph.New(reg),
		registry: reg,
		store:    store,
		notifier: event.NewNotifier(bus),
	}
}

// Open starts an editing session on a stored pipeline, materializing its
// graph. Reconstruction warnings (unknown types, dropped dependency links)
// are logged, not raised.
func Open(ctx context.Context, reg registry.StepRegistry, store storage.Storage, bus event.EventBus, pipelineID string) (*Session, error) {
	ctx, span := telemetry.Tracer().Start(ctx, "session.open")
	defer span.End()

	p, err := store.GetPipeline(ctx, pipelineID)
	if err != nil {
		return nil, utils.Errorf("open pipeline %s: %w", pipelineID, err)
	}
	s := &Session{
		pipeline: p,
		graph:    graph.New(reg),
		registry: reg,
		store:    store,
		notifier: event.NewNotifier(bus),
	}
	warnings, err := s.graph.Load(ctx, p.Spec.Steps)
	for _, w := range warnings {
		utils.Warn("pipeline %s: %s", pipelineID, w)
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Pipeline returns the pipeline metadata under edit.
func (s *Session) Pipeline() *model.Pipeline { return s.pipeline }

// Graph exposes the owned graph for read-only queries by the editor surface.
func (s *Session) Graph() *graph.Graph { return s.graph }

// AddStep adds a node of the given step type and returns it.
func (s *Session) AddStep(ctx context.Context, stepType string) (*graph.Node, error) {
	n, err := s.graph.AddNode(ctx, stepType)
	if err != nil {
		return nil, err
	}
	if n.Unresolved {
		utils.Warn("step type %q is not in the registry, added node %s with no ports", stepType, n.ID)
	}
	telemetry.NodesAdded.WithLabelValues(stepType).Inc()
	return n, nil
}

// RemoveStep removes a node, cascading removal of its connections.
func (s *Session) RemoveStep(nodeID string) error {
	if err := s.graph.RemoveNode(nodeID); err != nil {
		return err
	}
	telemetry.NodesRemoved.Inc()
	return nil
}

// CloneStep duplicates a node without its connections.
func (s *Session) CloneStep(nodeID string) (*graph.Node, error) {
	n, err := s.graph.CloneNode(nodeID)
	if err != nil {
		return nil, err
	}
	telemetry.NodesAdded.WithLabelValues(n.Type).Inc()
	return n, nil
}

// Connect wires an output port to an input port; rejections are counted by
// reason and returned to the caller with the graph untouched.
func (s *Session) Connect(sourceNodeID, sourcePortID, targetNodeID, targetPortID string) (*graph.Connection, error) {
	c, err := s.graph.Connect(sourceNodeID, sourcePortID, targetNodeID, targetPortID)
	if err != nil {
		telemetry.ConnectionsRejected.WithLabelValues(rejectReason(err)).Inc()
		return nil, err
	}
	telemetry.ConnectionsCreated.Inc()
	return c, nil
}

// Disconnect removes a connection and frees its ports.
func (s *Session) Disconnect(connectionID string) error {
	return s.graph.Disconnect(connectionID)
}

// UpdateStepConfig replaces a node's configuration.
func (s *Session) UpdateStepConfig(nodeID string, config map[string]any) error {
	return s.graph.UpdateNodeConfig(nodeID, config)
}

// RenameStep replaces a node's display name.
func (s *Session) RenameStep(nodeID, name string) error {
	return s.graph.UpdateNodeName(nodeID, name)
}

// Snapshot flattens the graph to the execution-facing step list.
func (s *Session) Snapshot() []model.PipelineStep {
	return s.graph.ToPipeline()
}

// Validate reports structural problems without mutating anything.
func (s *Session) Validate() model.ValidationResult {
	return s.graph.Validate()
}

// Save persists the current snapshot and announces it. The orchestrator owns
// everything that happens after the hand-off.
func (s *Session) Save(ctx context.Context) error {
	ctx, span := telemetry.Tracer().Start(ctx, "session.save")
	defer span.End()

	s.pipeline.Spec.Steps = s.Snapshot()
	s.pipeline.UpdatedAt = time.Now().UTC()
	if err := s.store.SavePipeline(ctx, s.pipeline); err != nil {
		return utils.Errorf("save pipeline %s: %w", s.pipeline.ID, err)
	}
	telemetry.PipelinesSaved.Inc()
	if err := s.notifier.Saved(s.pipeline.ID, len(s.pipeline.Spec.Steps)); err != nil {
		utils.Warn("saved notification for %s not delivered: %v", s.pipeline.ID, err)
	}
	return nil
}

// RequestValidate asks the orchestrator to validate the pipeline. The session
// does not wait for a result.
func (s *Session) RequestValidate() error {
	return s.notifier.ValidateRequested(s.pipeline.ID)
}

// RequestExecute asks the orchestrator to execute the pipeline. The session
// does not wait for a result.
func (s *Session) RequestExecute() error {
	return s.notifier.ExecuteRequested(s.pipeline.ID)
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, graph.ErrNodeNotFound):
		return "node_not_found"
	case errors.Is(err, graph.ErrPortNotFound):
		return "port_not_found"
	case errors.Is(err, graph.ErrPortBound):
		return "port_bound"
	case errors.Is(err, graph.ErrWrongDirection):
		return "wrong_direction"
	case errors.Is(err, graph.ErrTypeMismatch):
		return "type_mismatch"
	default:
		return "other"
	}
}
