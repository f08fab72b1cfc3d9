package graph

import (
	"context"
	"fmt"

	"github.com/ragforge/flowgraph/model"
)

// Load replaces the graph's contents with nodes materialized from the given
// step list, preserving each step's id as its node id. For every entry in a
// step's dependency list, the first output port of the dependency node is
// connected to the first input port of the dependent node, when both exist
// and neither is already bound; additional ports stay unconnected. A
// dependency that cannot be reconstructed is dropped and reported in the
// returned warnings, not raised. A registry read error rejects the load
// wholesale, leaving the graph as it was.
func (g *Graph) Load(ctx context.Context, steps []model.PipelineStep) ([]string, error) {
	nodes := make(map[string]*Node, len(steps))
	var order []string

	var warnings []string
	for _, step := range steps {
		def, err := g.registry.Lookup(ctx, step.Type)
		if err != nil {
			return nil, err
		}
		n := materialize(step.ID, step.Type, def)
		if n.Unresolved {
			warnings = append(warnings, fmt.Sprintf("step %s: unknown step type %q, node has no ports", step.ID, step.Type))
		}
		if step.Name != "" {
			n.Name = step.Name
		}
		if step.Config != nil {
			n.Config = copyConfig(step.Config)
		}
		n.Retry = step.Retry
		n.Timeout = step.Timeout
		nodes[n.ID] = n
		order = append(order, n.ID)
	}

	g.nodes = nodes
	g.nodeOrder = order
	g.conns = make(map[string]*Connection)
	g.connOrder = nil
	g.selected = ""

	for _, step := range steps {
		target := g.nodes[step.ID]
		for _, dep := range step.Dependencies {
			source, ok := g.nodes[dep]
			if !ok {
				warnings = append(warnings, fmt.Sprintf("step %s: dependency %q does not exist, link dropped", step.ID, dep))
				continue
			}
			if len(source.Outputs) == 0 || len(target.Inputs) == 0 {
				warnings = append(warnings, fmt.Sprintf("step %s: no port pair to reconstruct dependency on %q, link dropped", step.ID, dep))
				continue
			}
			out, in := source.Outputs[0], target.Inputs[0]
			if out.Bound() || in.Bound() {
				warnings = append(warnings, fmt.Sprintf("step %s: first port already bound, dependency on %q dropped", step.ID, dep))
				continue
			}
			if _, err := g.Connect(source.ID, out.ID, target.ID, in.ID); err != nil {
				warnings = append(warnings, fmt.Sprintf("step %s: dependency on %q dropped: %v", step.ID, dep, err))
			}
		}
	}
	return warnings, nil
}

// ToPipeline flattens the graph back to the execution-facing step list.
// Steps are emitted in node insertion order, not dependency order: consumers
// that need a runnable ordering must sort by the Dependencies field (see
// TopoSort). Each step's dependencies are the distinct source node ids across
// its inbound connections, and each bound input carries the name of the
// source output port feeding it.
func (g *Graph) ToPipeline() []model.PipelineStep {
	steps := make([]model.PipelineStep, 0, len(g.nodeOrder))
	for _, id := range g.nodeOrder {
		n := g.nodes[id]
		step := model.PipelineStep{
			ID:      n.ID,
			Name:    n.Name,
			Type:    n.Type,
			Config:  copyConfig(n.Config),
			Retry:   n.Retry,
			Timeout: n.Timeout,
		}
		seen := map[string]bool{}
		for _, p := range n.Inputs {
			in := model.StepInput{Name: p.Name, Type: p.Type, Required: p.Required}
			if connID, ok := p.Binding(); ok {
				c := g.conns[connID]
				if src := g.SourceNode(c); src != nil {
					if srcPort := src.Output(c.SourcePortID); srcPort != nil {
						in.Source = srcPort.Name
					}
					if !seen[src.ID] {
						seen[src.ID] = true
						step.Dependencies = append(step.Dependencies, src.ID)
					}
				}
			}
			step.Inputs = append(step.Inputs, in)
		}
		for _, p := range n.Outputs {
			step.Outputs = append(step.Outputs, model.StepOutput{
				Name:        p.Name,
				Type:        p.Type,
				Description: p.Description,
			})
		}
		steps = append(steps, step)
	}
	return steps
}
