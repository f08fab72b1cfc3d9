package registry

import (
	"context"

	"github.com/ragforge/flowgraph/model"
)

// PortDef declares one connection point on a step type. Nodes instantiate one
// concrete port per declared PortDef.
type PortDef struct {
	Name        string         `json:"name"`
	Type        model.DataType `json:"type"`
	Required    bool           `json:"required,omitempty"`
	Description string         `json:"description,omitempty"`
}

// StepTypeDefinition is the immutable template for a category of pipeline
// step: declared ports plus default configuration. Many nodes may reference
// the same definition by Type.
type StepTypeDefinition struct {
	Registry      string             `json:"registry,omitempty"` // e.g. "builtin", "local"
	Type          string             `json:"type"`
	Name          string             `json:"name"`
	Category      model.StepCategory `json:"category"`
	Description   string             `json:"description,omitempty"`
	Inputs        []PortDef          `json:"inputs,omitempty"`
	Outputs       []PortDef          `json:"outputs,omitempty"`
	DefaultConfig map[string]any     `json:"default_config,omitempty"`
}

// StepRegistry is the interface for any step type catalog backend.
// Lookup returns (nil, nil) for unknown types: callers degrade to an
// empty-port node rather than failing.
type StepRegistry interface {
	ListTypes(ctx context.Context) ([]StepTypeDefinition, error)
	Lookup(ctx context.Context, stepType string) (*StepTypeDefinition, error)
}
