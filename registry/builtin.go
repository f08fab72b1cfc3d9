package registry

import (
	"context"
	_ "embed"
	"encoding/json"

	"github.com/ragforge/flowgraph/constants"
)

//go:embed builtin.json
var builtinCatalogData []byte

// BuiltinRegistry provides the step type catalog embedded in the binary.
type BuiltinRegistry struct {
	Registry string
}

// NewBuiltinRegistry creates a new builtin registry
func NewBuiltinRegistry() *BuiltinRegistry {
	return &BuiltinRegistry{
		Registry: constants.RegistrySourceBuiltin,
	}
}

// ListTypes returns all builtin step type definitions
func (b *BuiltinRegistry) ListTypes(ctx context.Context) ([]StepTypeDefinition, error) {
	var defs []StepTypeDefinition
	if err := json.Unmarshal(builtinCatalogData, &defs); err != nil {
		return nil, err
	}

	// Label all entries with the builtin registry
	for i := range defs {
		defs[i].Registry = b.Registry
	}

	return defs, nil
}

// Lookup finds a specific step type by id from the builtin catalog
func (b *BuiltinRegistry) Lookup(ctx context.Context, stepType string) (*StepTypeDefinition, error) {
	defs, err := b.ListTypes(ctx)
	if err != nil {
		return nil, err
	}

	for _, def := range defs {
		if def.Type == stepType {
			return &def, nil
		}
	}

	return nil, nil // Not found
}
