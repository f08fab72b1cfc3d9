package registry

import (
	"context"
	"sort"

	"github.com/ragforge/flowgraph/model"
	"github.com/ragforge/flowgraph/utils"
)

// Manager queries multiple registries with precedence: earlier registries
// shadow later ones for the same step type id.
type Manager struct {
	registries []StepRegistry
}

func NewManager(registries ...StepRegistry) *Manager {
	return &Manager{registries: registries}
}

// ListTypes merges all registries, first occurrence of a type wins.
func (m *Manager) ListTypes(ctx context.Context) ([]StepTypeDefinition, error) {
	seen := map[string]bool{}
	var out []StepTypeDefinition
	for _, reg := range m.registries {
		defs, err := reg.ListTypes(ctx)
		if err != nil {
			// A missing local file is normal; keep lower-precedence catalogs usable.
			utils.Debug("registry listing skipped: %v", err)
			continue
		}
		for _, def := range defs {
			if seen[def.Type] {
				continue
			}
			seen[def.Type] = true
			out = append(out, def)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Type < out[j].Type })
	return out, nil
}

// Lookup returns the highest-precedence definition for the type, or
// (nil, nil) when no registry knows it.
func (m *Manager) Lookup(ctx context.Context, stepType string) (*StepTypeDefinition, error) {
	for _, reg := range m.registries {
		def, err := reg.Lookup(ctx, stepType)
		if err != nil {
			utils.Debug("registry lookup skipped: %v", err)
			continue
		}
		if def != nil {
			return def, nil
		}
	}
	return nil, nil
}

// ListByCategory groups the merged catalog for palette display.
func (m *Manager) ListByCategory(ctx context.Context) (map[model.StepCategory][]StepTypeDefinition, error) {
	defs, err := m.ListTypes(ctx)
	if err != nil {
		return nil, err
	}
	out := map[model.StepCategory][]StepTypeDefinition{}
	for _, def := range defs {
		out[def.Category] = append(out[def.Category], def)
	}
	return out, nil
}
