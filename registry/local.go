package registry

import (
	"context"
	"encoding/json"
	"os"

	"github.com/ragforge/flowgraph/constants"
)

// LocalRegistry reads user-defined step types from a JSON file on disk,
// letting a workspace override or extend the builtin catalog.
type LocalRegistry struct {
	Path string
}

func NewLocalRegistry(path string) *LocalRegistry {
	if path == "" {
		path = constants.RegistryIndexFile
	}
	return &LocalRegistry{Path: path}
}

func (l *LocalRegistry) ListTypes(ctx context.Context) ([]StepTypeDefinition, error) {
	data, err := os.ReadFile(l.Path)
	if err != nil {
		return nil, err
	}
	var defs []StepTypeDefinition
	if err := json.Unmarshal(data, &defs); err != nil {
		return nil, err
	}
	for i := range defs {
		defs[i].Registry = constants.RegistrySourceLocal
	}
	return defs, nil
}

func (l *LocalRegistry) Lookup(ctx context.Context, stepType string) (*StepTypeDefinition, error) {
	defs, err := l.ListTypes(ctx)
	if err != nil {
		return nil, err
	}
	for _, def := range defs {
		if def.Type == stepType {
			return &def, nil
		}
	}
	return nil, nil
}
