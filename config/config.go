package config

import (
	"encoding/json"
	"os"
)

type Config struct {
	Storage  StorageConfig  `json:"storage"`
	Event    EventConfig    `json:"event"`
	Registry RegistryConfig `json:"registry"`
	Log      LogConfig      `json:"log"`
	Tracing  *TracingConfig `json:"tracing,omitempty"`
}

type StorageConfig struct {
	Driver string `json:"driver"`
	DSN    string `json:"dsn"`
}

type EventConfig struct {
	Driver string `json:"driver"`
	URL    string `json:"url"`
}

type RegistryConfig struct {
	Path string `json:"path"`
}

type LogConfig struct {
	Level string `json:"level"`
}

type TracingConfig struct {
	Exporter    string `json:"exporter"` // "stdout" or ""
	ServiceName string `json:"service_name,omitempty"`
}

func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var cfg Config
	if err := json.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
