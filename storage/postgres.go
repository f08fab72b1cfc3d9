package storage

import (
	"context"
	"database/sql"
	"encoding/json"

	_ "github.com/lib/pq"

	"github.com/ragforge/flowgraph/model"
	"github.com/ragforge/flowgraph/utils"
)

// PostgresStorage implements Storage on PostgreSQL for shared deployments.
type PostgresStorage struct {
	db *sql.DB
}

var _ Storage = (*PostgresStorage)(nil)

func NewPostgresStorage(dsn string) (*PostgresStorage, error) {
	if dsn == "" {
		return nil, utils.Errorf("postgres driver requires a dsn")
	}
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	sqlStmt := `
CREATE TABLE IF NOT EXISTS pipelines (
	id TEXT PRIMARY KEY,
	name TEXT,
	description TEXT,
	status TEXT,
	spec JSONB,
	templates JSONB,
	tags JSONB,
	created_at BIGINT,
	updated_at BIGINT
);
`
	if _, err = db.Exec(sqlStmt); err != nil {
		return nil, err
	}
	return &PostgresStorage{db: db}, nil
}

func (s *PostgresStorage) SavePipeline(ctx context.Context, p *model.Pipeline) error {
	spec, err := json.Marshal(p.Spec)
	if err != nil {
		return utils.Errorf("failed to marshal pipeline spec: %w", err)
	}
	templates, err := json.Marshal(p.Templates)
	if err != nil {
		return utils.Errorf("failed to marshal pipeline templates: %w", err)
	}
	tags, err := json.Marshal(p.Tags)
	if err != nil {
		return utils.Errorf("failed to marshal pipeline tags: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
INSERT INTO pipelines (id, name, description, status, spec, templates, tags, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT(id) DO UPDATE SET name=excluded.name, description=excluded.description, status=excluded.status, spec=excluded.spec, templates=excluded.templates, tags=excluded.tags, updated_at=excluded.updated_at
`, p.ID, p.Name, p.Description, string(p.Status), spec, templates, tags, p.CreatedAt.Unix(), p.UpdatedAt.Unix())
	return err
}

func (s *PostgresStorage) GetPipeline(ctx context.Context, id string) (*model.Pipeline, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id, name, description, status, spec, templates, tags, created_at, updated_at FROM pipelines WHERE id=$1`, id)
	return scanPipeline(row)
}

func (s *PostgresStorage) ListPipelines(ctx context.Context) ([]*model.Pipeline, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, description, status, spec, templates, tags, created_at, updated_at FROM pipelines ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*model.Pipeline
	for rows.Next() {
		p, err := scanPipeline(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *PostgresStorage) DeletePipeline(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM pipelines WHERE id=$1`, id)
	return err
}

func (s *PostgresStorage) Close() error {
	return s.db.Close()
}
