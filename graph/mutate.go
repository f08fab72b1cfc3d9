package graph

import (
	"context"
	"fmt"
)

// AddNode materializes a new node from the registry definition for stepType
// and appends it to the graph. An unknown step type degrades to a node with
// empty port lists. The new node becomes the current selection.
func (g *Graph) AddNode(ctx context.Context, stepType string) (*Node, error) {
	def, err := g.registry.Lookup(ctx, stepType)
	if err != nil {
		return nil, err
	}
	n := materialize(newNodeID(stepType), stepType, def)
	g.nodes[n.ID] = n
	g.nodeOrder = append(g.nodeOrder, n.ID)
	g.selected = n.ID
	return n, nil
}

// RemoveNode deletes the node and cascades removal of every connection that
// touches it, so no dangling reference is ever observable. Removing the
// selected node clears the selection.
func (g *Graph) RemoveNode(nodeID string) error {
	if _, ok := g.nodes[nodeID]; !ok {
		return fmt.Errorf("remove node %s: %w", nodeID, ErrNodeNotFound)
	}
	for _, c := range g.ConnectionsFor(nodeID) {
		// Disconnect resets the far endpoint's binding; the near endpoints
		// die with the node.
		if err := g.Disconnect(c.ID); err != nil {
			return err
		}
	}
	delete(g.nodes, nodeID)
	g.nodeOrder = removeID(g.nodeOrder, nodeID)
	if g.selected == nodeID {
		g.selected = ""
	}
	return nil
}

// CloneNode duplicates a node's type, name, config and position under a fresh
// id. Connection state is never copied: every cloned port starts free, and no
// edges are duplicated.
func (g *Graph) CloneNode(nodeID string) (*Node, error) {
	src, ok := g.nodes[nodeID]
	if !ok {
		return nil, fmt.Errorf("clone node %s: %w", nodeID, ErrNodeNotFound)
	}
	id := newNodeID(src.Type)
	clone := &Node{
		ID:         id,
		Type:       src.Type,
		Name:       src.Name + " (Copy)",
		Config:     copyConfig(src.Config),
		Position:   Position{X: src.Position.X + 40, Y: src.Position.Y + 40},
		Timeout:    src.Timeout,
		Unresolved: src.Unresolved,
	}
	if src.Retry != nil {
		retry := *src.Retry
		clone.Retry = &retry
	}
	for _, p := range src.Inputs {
		clone.Inputs = append(clone.Inputs, &Port{
			ID:          portID(id, DirectionInput, p.Name),
			Name:        p.Name,
			Type:        p.Type,
			Direction:   DirectionInput,
			Required:    p.Required,
			Description: p.Description,
		})
	}
	for _, p := range src.Outputs {
		clone.Outputs = append(clone.Outputs, &Port{
			ID:          portID(id, DirectionOutput, p.Name),
			Name:        p.Name,
			Type:        p.Type,
			Direction:   DirectionOutput,
			Description: p.Description,
		})
	}
	g.nodes[id] = clone
	g.nodeOrder = append(g.nodeOrder, id)
	g.selected = id
	return clone, nil
}

// UpdateNodeConfig replaces the node's configuration wholesale. Config
// contents are opaque to the graph; step-specific validation happens in the
// consuming step implementation.
func (g *Graph) UpdateNodeConfig(nodeID string, config map[string]any) error {
	n, ok := g.nodes[nodeID]
	if !ok {
		return fmt.Errorf("update config of %s: %w", nodeID, ErrNodeNotFound)
	}
	n.Config = copyConfig(config)
	return nil
}

// UpdateNodeName replaces the node's display name.
func (g *Graph) UpdateNodeName(nodeID, name string) error {
	n, ok := g.nodes[nodeID]
	if !ok {
		return fmt.Errorf("rename %s: %w", nodeID, ErrNodeNotFound)
	}
	n.Name = name
	return nil
}

// MoveNode updates the node's canvas position.
func (g *Graph) MoveNode(nodeID string, x, y float64) error {
	n, ok := g.nodes[nodeID]
	if !ok {
		return fmt.Errorf("move %s: %w", nodeID, ErrNodeNotFound)
	}
	n.Position = Position{X: x, Y: y}
	return nil
}

// Connect binds an output port of the source node to an input port of the
// target node. The request is rejected, leaving the graph unchanged, when
// either port is missing, either port is already bound, a port has the wrong
// direction, or the data types differ.
func (g *Graph) Connect(sourceNodeID, sourcePortID, targetNodeID, targetPortID string) (*Connection, error) {
	src, ok := g.nodes[sourceNodeID]
	if !ok {
		return nil, fmt.Errorf("connect: source node %s: %w", sourceNodeID, ErrNodeNotFound)
	}
	dst, ok := g.nodes[targetNodeID]
	if !ok {
		return nil, fmt.Errorf("connect: target node %s: %w", targetNodeID, ErrNodeNotFound)
	}

	out := src.Output(sourcePortID)
	if out == nil {
		if src.Input(sourcePortID) != nil {
			return nil, fmt.Errorf("connect: %s is an input port: %w", sourcePortID, ErrWrongDirection)
		}
		return nil, fmt.Errorf("connect: source port %s: %w", sourcePortID, ErrPortNotFound)
	}
	in := dst.Input(targetPortID)
	if in == nil {
		if dst.Output(targetPortID) != nil {
			return nil, fmt.Errorf("connect: %s is an output port: %w", targetPortID, ErrWrongDirection)
		}
		return nil, fmt.Errorf("connect: target port %s: %w", targetPortID, ErrPortNotFound)
	}

	if out.Bound() {
		return nil, fmt.Errorf("connect: source port %s: %w", sourcePortID, ErrPortBound)
	}
	if in.Bound() {
		return nil, fmt.Errorf("connect: target port %s: %w", targetPortID, ErrPortBound)
	}
	if out.Type != in.Type {
		return nil, fmt.Errorf("connect: %s -> %s (%s vs %s): %w",
			sourcePortID, targetPortID, out.Type, in.Type, ErrTypeMismatch)
	}

	g.connSeq++
	c := &Connection{
		ID:           fmt.Sprintf("conn-%s-%s-%d", sourceNodeID, targetNodeID, g.connSeq),
		SourceNodeID: sourceNodeID,
		SourcePortID: sourcePortID,
		TargetNodeID: targetNodeID,
		TargetPortID: targetPortID,
		Type:         out.Type,
	}
	g.conns[c.ID] = c
	g.connOrder = append(g.connOrder, c.ID)
	out.binding = c.ID
	in.binding = c.ID
	return c, nil
}

// Disconnect removes the connection and frees both endpoint ports.
func (g *Graph) Disconnect(connectionID string) error {
	c, ok := g.conns[connectionID]
	if !ok {
		return fmt.Errorf("disconnect %s: %w", connectionID, ErrConnectionNotFound)
	}
	if n, ok := g.nodes[c.SourceNodeID]; ok {
		if p := n.Output(c.SourcePortID); p != nil && p.binding == c.ID {
			p.binding = ""
		}
	}
	if n, ok := g.nodes[c.TargetNodeID]; ok {
		if p := n.Input(c.TargetPortID); p != nil && p.binding == c.ID {
			p.binding = ""
		}
	}
	delete(g.conns, connectionID)
	g.connOrder = removeID(g.connOrder, connectionID)
	return nil
}

func removeID(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
