package graph

// Node returns the node with the given id, or nil.
func (g *Graph) Node(nodeID string) *Node {
	return g.nodes[nodeID]
}

// Nodes returns all nodes in insertion order.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, 0, len(g.nodeOrder))
	for _, id := range g.nodeOrder {
		out = append(out, g.nodes[id])
	}
	return out
}

// Connection returns the connection with the given id, or nil.
func (g *Graph) Connection(connectionID string) *Connection {
	return g.conns[connectionID]
}

// Connections returns all connections in creation order.
func (g *Graph) Connections() []*Connection {
	out := make([]*Connection, 0, len(g.connOrder))
	for _, id := range g.connOrder {
		out = append(out, g.conns[id])
	}
	return out
}

// ConnectionsFor returns every connection whose source or target is the node.
func (g *Graph) ConnectionsFor(nodeID string) []*Connection {
	var out []*Connection
	for _, id := range g.connOrder {
		c := g.conns[id]
		if c.SourceNodeID == nodeID || c.TargetNodeID == nodeID {
			out = append(out, c)
		}
	}
	return out
}

// SourceNode returns the node producing into the connection.
func (g *Graph) SourceNode(c *Connection) *Node {
	if c == nil {
		return nil
	}
	return g.nodes[c.SourceNodeID]
}

// TargetNode returns the node consuming from the connection.
func (g *Graph) TargetNode(c *Connection) *Node {
	if c == nil {
		return nil
	}
	return g.nodes[c.TargetNodeID]
}

// Selected returns the currently selected node, or nil.
func (g *Graph) Selected() *Node {
	if g.selected == "" {
		return nil
	}
	return g.nodes[g.selected]
}

// Select marks the node as the current selection.
func (g *Graph) Select(nodeID string) error {
	if _, ok := g.nodes[nodeID]; !ok {
		return ErrNodeNotFound
	}
	g.selected = nodeID
	return nil
}

// ClearSelection drops the current selection.
func (g *Graph) ClearSelection() {
	g.selected = ""
}
