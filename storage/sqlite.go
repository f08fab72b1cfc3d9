package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/ragforge/flowgraph/model"
	"github.com/ragforge/flowgraph/utils"
)

// SqliteStorage implements Storage using SQLite as the backend.
type SqliteStorage struct {
	db *sql.DB
}

var _ Storage = (*SqliteStorage)(nil)

func NewSqliteStorage(dsn string) (*SqliteStorage, error) {
	// Only create parent directories if not using in-memory SQLite (":memory:").
	if dsn != ":memory:" && dsn != "" {
		dir := filepath.Dir(dsn)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, utils.Errorf("failed to create db directory %q: %w", dir, err)
		}
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// Create tables if not exist
	sqlStmt := `
CREATE TABLE IF NOT EXISTS pipelines (
	id TEXT PRIMARY KEY,
	name TEXT,
	description TEXT,
	status TEXT,
	spec JSON,
	templates JSON,
	tags JSON,
	created_at INTEGER,
	updated_at INTEGER
);
`
	if _, err = db.Exec(sqlStmt); err != nil {
		return nil, err
	}
	return &SqliteStorage{db: db}, nil
}

func (s *SqliteStorage) SavePipeline(ctx context.Context, p *model.Pipeline) error {
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
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET name=excluded.name, description=excluded.description, status=excluded.status, spec=excluded.spec, templates=excluded.templates, tags=excluded.tags, updated_at=excluded.updated_at
`, p.ID, p.Name, p.Description, string(p.Status), spec, templates, tags, p.CreatedAt.Unix(), p.UpdatedAt.Unix())
	return err
}

func (s *SqliteStorage) GetPipeline(ctx context.Context, id string) (*model.Pipeline, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id, name, description, status, spec, templates, tags, created_at, updated_at FROM pipelines WHERE id=?`, id)
	return scanPipeline(row)
}

func (s *SqliteStorage) ListPipelines(ctx context.Context) ([]*model.Pipeline, error) {
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

func (s *SqliteStorage) DeletePipeline(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM pipelines WHERE id=?`, id)
	return err
}

func (s *SqliteStorage) Close() error {
	return s.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPipeline(row rowScanner) (*model.Pipeline, error) {
	var p model.Pipeline
	var status string
	var spec, templates, tags []byte
	var createdAt, updatedAt int64
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &status, &spec, &templates, &tags, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	p.Status = model.PipelineStatus(status)
	if err := json.Unmarshal(spec, &p.Spec); err != nil {
		return nil, utils.Errorf("failed to unmarshal pipeline spec: %w", err)
	}
	if len(templates) > 0 {
		if err := json.Unmarshal(templates, &p.Templates); err != nil {
			return nil, utils.Errorf("failed to unmarshal pipeline templates: %w", err)
		}
	}
	if len(tags) > 0 {
		if err := json.Unmarshal(tags, &p.Tags); err != nil {
			return nil, utils.Errorf("failed to unmarshal pipeline tags: %w", err)
		}
	}
	p.CreatedAt = time.Unix(createdAt, 0).UTC()
	p.UpdatedAt = time.Unix(updatedAt, 0).UTC()
	return &p, nil
}
