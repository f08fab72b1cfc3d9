package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flowgraph.json")
	body := `{
		"storage": {"driver": "sqlite", "dsn": "/tmp/pipelines.db"},
		"event": {"driver": "nats", "url": "nats://localhost:4222"},
		"registry": {"path": "steps.json"},
		"log": {"level": "debug"},
		"tracing": {"exporter": "stdout", "service_name": "flowgraph"}
	}`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Storage.Driver != "sqlite" || cfg.Storage.DSN != "/tmp/pipelines.db" {
		t.Errorf("storage config = %+v", cfg.Storage)
	}
	if cfg.Event.Driver != "nats" || cfg.Event.URL != "nats://localhost:4222" {
		t.Errorf("event config = %+v", cfg.Event)
	}
	if cfg.Registry.Path != "steps.json" {
		t.Errorf("registry path = %q", cfg.Registry.Path)
	}
	if cfg.Tracing == nil || cfg.Tracing.Exporter != "stdout" {
		t.Errorf("tracing config = %+v", cfg.Tracing)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Errorf("missing file must error")
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Errorf("malformed JSON must error")
	}
}
