package graph

import (
	"fmt"
	"sort"

	"github.com/ragforge/flowgraph/model"
)

// Validate reports structural problems without touching the graph. Editing an
// invalid graph stays legal; the result is advisory for the editor surface
// and a gate the orchestrator may apply before execution.
func (g *Graph) Validate() model.ValidationResult {
	res := model.ValidationResult{Valid: true}

	for _, n := range g.Nodes() {
		if n.Unresolved {
			res.Warnings = append(res.Warnings, model.ValidationWarning{
				Type:    model.WarnUnknownStepType,
				NodeID:  n.ID,
				Message: fmt.Sprintf("step type %q is not in the registry", n.Type),
			})
		}
		for _, p := range n.Inputs {
			// Config-typed inputs are fed from the node's config, never
			// from a connection; no step type produces config.
			if p.Type == model.DataTypeConfig {
				continue
			}
			if p.Required && !p.Bound() {
				res.Errors = append(res.Errors, model.ValidationError{
					Type:    model.ErrMissingConnection,
					NodeID:  n.ID,
					Message: fmt.Sprintf("required input %q is not connected", p.Name),
				})
			}
		}
		if len(g.ConnectionsFor(n.ID)) == 0 && g.Len() > 1 {
			res.Warnings = append(res.Warnings, model.ValidationWarning{
				Type:    model.WarnOrphanNode,
				NodeID:  n.ID,
				Message: "node has no connections",
			})
		}
	}

	if _, err := g.TopoSort(); err != nil {
		res.Errors = append(res.Errors, model.ValidationError{
			Type:    model.ErrCircularDependency,
			Message: err.Error(),
		})
	}

	res.Valid = len(res.Errors) == 0
	return res
}

// ValidateSteps checks an execution-facing step list before it is
// materialized into a graph: every dependency id must reference a step in the
// same list. Load drops such links with a warning; this reports them as
// errors for callers that want a hard gate.
func ValidateSteps(steps []model.PipelineStep) model.ValidationResult {
	res := model.ValidationResult{Valid: true}
	ids := make(map[string]bool, len(steps))
	for _, s := range steps {
		ids[s.ID] = true
	}
	for _, s := range steps {
		for _, dep := range s.Dependencies {
			if !ids[dep] {
				res.Errors = append(res.Errors, model.ValidationError{
					Type:    model.ErrUnknownDependency,
					NodeID:  s.ID,
					Message: fmt.Sprintf("dependency %q does not reference a step", dep),
				})
			}
		}
	}
	res.Valid = len(res.Errors) == 0
	return res
}

// TopoSort returns node ids in dependency order (sources first). Ties are
// broken by insertion order so output is deterministic. Returns an error
// naming the entangled nodes when the graph has a cycle.
func (g *Graph) TopoSort() ([]string, error) {
	indegree := make(map[string]int, len(g.nodes))
	for id := range g.nodes {
		indegree[id] = 0
	}
	for _, c := range g.conns {
		indegree[c.TargetNodeID]++
	}

	var ready []string
	for _, id := range g.nodeOrder {
		if indegree[id] == 0 {
			ready = append(ready, id)
		}
	}

	order := make([]string, 0, len(g.nodes))
	for len(ready) > 0 {
		id := ready[0]
		ready = ready[1:]
		order = append(order, id)
		for _, c := range g.ConnectionsFor(id) {
			if c.SourceNodeID != id {
				continue
			}
			indegree[c.TargetNodeID]--
			if indegree[c.TargetNodeID] == 0 {
				ready = append(ready, c.TargetNodeID)
			}
		}
	}

	if len(order) != len(g.nodes) {
		var stuck []string
		for id, d := range indegree {
			if d > 0 {
				stuck = append(stuck, id)
			}
		}
		sort.Strings(stuck)
		return nil, fmt.Errorf("dependency cycle involving %v", stuck)
	}
	return order, nil
}
