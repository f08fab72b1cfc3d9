package graph

import (
	"fmt"
	"strings"
)

// Renderer renders a Graph into a specific output format.
type Renderer interface {
	Render(g *Graph) (string, error)
}

// MermaidRenderer outputs graphs in Mermaid flowchart syntax, with edges
// labeled by the source output port.
type MermaidRenderer struct{}

// Render renders the graph using Mermaid syntax.
func (r *MermaidRenderer) Render(g *Graph) (string, error) {
	nodes := g.Nodes()
	if len(nodes) == 0 {
		return "", nil
	}
	var sb strings.Builder
	sb.WriteString("graph TD\n")
	// Output node definitions
	for _, n := range nodes {
		sb.WriteString(fmt.Sprintf("%s[%s]\n", n.ID, n.Name))
	}
	// Output edges
	for _, c := range g.Connections() {
		label := ""
		if src := g.SourceNode(c); src != nil {
			if p := src.Output(c.SourcePortID); p != nil {
				label = p.Name
			}
		}
		if label != "" {
			sb.WriteString(fmt.Sprintf("%s -->|%s| %s\n", c.SourceNodeID, label, c.TargetNodeID))
		} else {
			sb.WriteString(fmt.Sprintf("%s --> %s\n", c.SourceNodeID, c.TargetNodeID))
		}
	}
	return sb.String(), nil
}

// ExportMermaid is a helper to create a Mermaid diagram from a graph.
func ExportMermaid(g *Graph) (string, error) {
	renderer := &MermaidRenderer{}
	return renderer.Render(g)
}
