// Package graph holds the editable pipeline graph: nodes with typed ports,
// connections binding an output port to an input port, and the conversion
// between the graph and the linear step list the execution engine consumes.
//
// The Graph owns every node, port and connection it contains. All references
// between them are ids, never pointers across ownership boundaries, so
// cascade deletion is a plain id filter and no cycles of ownership exist.
package graph

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/ragforge/flowgraph/model"
	"github.com/ragforge/flowgraph/registry"
)

// Direction tells whether a port consumes or produces.
type Direction string

const (
	DirectionInput  Direction = "input"
	DirectionOutput Direction = "output"
)

// Port is a typed connection point on a node. A port participates in at most
// one connection at a time; the binding is only written by Graph methods.
type Port struct {
	ID          string
	Name        string
	Type        model.DataType
	Direction   Direction
	Required    bool
	Description string

	binding string // connection id, "" while free
}

// Bound reports whether the port currently participates in a connection.
func (p *Port) Bound() bool { return p.binding != "" }

// Binding returns the id of the connection the port is bound to, if any.
func (p *Port) Binding() (string, bool) {
	return p.binding, p.binding != ""
}

// Position is the node's placement on the editing canvas.
type Position struct {
	X float64
	Y float64
}

// Node is an instantiated pipeline step with concrete ports and configuration.
type Node struct {
	ID       string
	Type     string
	Name     string
	Config   map[string]any
	Position Position
	Inputs   []*Port
	Outputs  []*Port

	// Retry and Timeout are execution hints carried through load/save
	// untouched; the editor never interprets them.
	Retry   *model.RetryPolicy
	Timeout int

	// Unresolved marks nodes whose step type was not in the registry when
	// the node was materialized; such nodes carry empty port lists.
	Unresolved bool
}

// Input returns the input port with the given id.
func (n *Node) Input(portID string) *Port {
	for _, p := range n.Inputs {
		if p.ID == portID {
			return p
		}
	}
	return nil
}

// Output returns the output port with the given id.
func (n *Node) Output(portID string) *Port {
	for _, p := range n.Outputs {
		if p.ID == portID {
			return p
		}
	}
	return nil
}

func (n *Node) port(portID string) *Port {
	if p := n.Input(portID); p != nil {
		return p
	}
	return n.Output(portID)
}

// Connection is a typed edge from one node's output port to another node's
// input port.
type Connection struct {
	ID           string
	SourceNodeID string
	SourcePortID string
	TargetNodeID string
	TargetPortID string
	Type         model.DataType
}

// Graph is the owning arena for one editing session's nodes and connections.
// It is purely in-memory and single-threaded: the editing surface issues one
// mutation at a time.
type Graph struct {
	registry registry.StepRegistry

	nodes     map[string]*Node
	nodeOrder []string
	conns     map[string]*Connection
	connOrder []string

	selected string // selected node id, "" when nothing is selected
	connSeq  uint64 // monotonic suffix keeping connection ids unique across connect/disconnect cycles
}

// New returns an empty graph backed by the given step type registry.
func New(reg registry.StepRegistry) *Graph {
	return &Graph{
		registry: reg,
		nodes:    make(map[string]*Node),
		conns:    make(map[string]*Connection),
	}
}

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.nodes) }

// newNodeID synthesizes a fresh globally-unique node id.
func newNodeID(stepType string) string {
	return fmt.Sprintf("%s-%s", stepType, uuid.NewString())
}

// portID scopes a port id to its owning node.
func portID(nodeID string, dir Direction, name string) string {
	return fmt.Sprintf("%s-%s-%s", nodeID, dir, name)
}

// materialize builds a node from a step type definition. A nil definition
// degrades to a node with empty port lists rather than failing: the caller
// decides whether that deserves a warning.
func materialize(id, stepType string, def *registry.StepTypeDefinition) *Node {
	n := &Node{
		ID:     id,
		Type:   stepType,
		Name:   stepType,
		Config: map[string]any{},
	}
	if def == nil {
		n.Unresolved = true
		return n
	}
	if def.Name != "" {
		n.Name = def.Name
	}
	n.Config = copyConfig(def.DefaultConfig)
	for _, in := range def.Inputs {
		n.Inputs = append(n.Inputs, &Port{
			ID:          portID(id, DirectionInput, in.Name),
			Name:        in.Name,
			Type:        in.Type,
			Direction:   DirectionInput,
			Required:    in.Required,
			Description: in.Description,
		})
	}
	for _, out := range def.Outputs {
		n.Outputs = append(n.Outputs, &Port{
			ID:          portID(id, DirectionOutput, out.Name),
			Name:        out.Name,
			Type:        out.Type,
			Direction:   DirectionOutput,
			Description: out.Description,
		})
	}
	return n
}

// copyConfig deep-copies a config map so nodes never alias template or
// caller-owned state.
func copyConfig(src map[string]any) map[string]any {
	dst := make(map[string]any, len(src))
	for k, v := range src {
		dst[k] = copyValue(v)
	}
	return dst
}

func copyValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return copyConfig(val)
	case []any:
		out := make([]any, len(val))
		for i, e := range val {
			out[i] = copyValue(e)
		}
		return out
	default:
		return val
	}
}
