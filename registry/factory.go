package registry

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ragforge/flowgraph/config"
	"github.com/ragforge/flowgraph/constants"
	"github.com/ragforge/flowgraph/utils"
)

// NewStandardManager creates the step type catalog with standard precedence:
// local workspace overrides → builtin defaults.
func NewStandardManager(cfg *config.Config) *Manager {
	var registries []StepRegistry

	// 1. Local registry (workspace step types override the builtin catalog)
	localPath := localRegistryPath(cfg)
	registries = append(registries, NewLocalRegistry(localPath))
	utils.Debug("Added local step registry: %s (highest precedence)", localPath)

	// 2. Builtin catalog (lowest precedence)
	registries = append(registries, NewBuiltinRegistry())
	utils.Debug("Added builtin step catalog (lowest precedence)")

	return NewManager(registries...)
}

func localRegistryPath(cfg *config.Config) string {
	if env := os.Getenv(constants.EnvRegistryPath); env != "" {
		return env
	}
	if cfg == nil || cfg.Registry.Path == "" {
		return constants.RegistryIndexFile
	}

	// Sanitize the path to prevent path traversal
	cleanPath := filepath.Clean(cfg.Registry.Path)
	if strings.Contains(cleanPath, "..") {
		utils.Warn("Path traversal attempt detected in registry path '%s', using default", cfg.Registry.Path)
		return constants.RegistryIndexFile
	}
	return cleanPath
}
