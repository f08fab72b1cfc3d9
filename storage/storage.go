package storage

import (
	"context"

	"github.com/ragforge/flowgraph/config"
	"github.com/ragforge/flowgraph/constants"
	"github.com/ragforge/flowgraph/model"
	"github.com/ragforge/flowgraph/utils"
)

// Storage persists pipeline documents between editing sessions. Pipelines are
// stored whole: the graph model never persists nodes or connections
// independently of the pipeline holding them.
type Storage interface {
	SavePipeline(ctx context.Context, p *model.Pipeline) error
	GetPipeline(ctx context.Context, id string) (*model.Pipeline, error)
	ListPipelines(ctx context.Context) ([]*model.Pipeline, error)
	DeletePipeline(ctx context.Context, id string) error
	Close() error
}

// NewFromConfig selects a storage driver: memory (default), sqlite, postgres.
func NewFromConfig(cfg *config.StorageConfig) (Storage, error) {
	if cfg == nil || cfg.Driver == "" || cfg.Driver == constants.StorageDriverMemory {
		return NewMemoryStorage(), nil
	}
	switch cfg.Driver {
	case constants.StorageDriverSQLite:
		dsn := cfg.DSN
		if dsn == "" {
			dsn = config.DefaultSQLiteDSN
		}
		return NewSqliteStorage(dsn)
	case constants.StorageDriverPostgres:
		return NewPostgresStorage(cfg.DSN)
	default:
		return nil, utils.Errorf("unsupported storage driver: %s", cfg.Driver)
	}
}
