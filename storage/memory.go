package storage

import (
	"context"
	"database/sql"
	"sort"
	"sync"

	"github.com/ragforge/flowgraph/model"
)

// MemoryStorage implements Storage in-memory (for fallback/dev mode)
type MemoryStorage struct {
	pipelines map[string]*model.Pipeline
	mu        sync.Mutex
}

var _ Storage = (*MemoryStorage)(nil)

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		pipelines: make(map[string]*model.Pipeline),
	}
}

func (m *MemoryStorage) SavePipeline(ctx context.Context, p *model.Pipeline) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pipelines[p.ID] = p
	return nil
}

func (m *MemoryStorage) GetPipeline(ctx context.Context, id string) (*model.Pipeline, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.pipelines[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return p, nil
}

func (m *MemoryStorage) ListPipelines(ctx context.Context) ([]*model.Pipeline, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*model.Pipeline, 0, len(m.pipelines))
	for _, p := range m.pipelines {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MemoryStorage) DeletePipeline(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.pipelines, id)
	return nil
}

func (m *MemoryStorage) Close() error { return nil }
