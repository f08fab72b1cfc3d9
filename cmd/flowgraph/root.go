package main

import (
	"context"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/ragforge/flowgraph/config"
	"github.com/ragforge/flowgraph/dsl"
	"github.com/ragforge/flowgraph/graph"
	"github.com/ragforge/flowgraph/model"
	"github.com/ragforge/flowgraph/registry"
	"github.com/ragforge/flowgraph/telemetry"
	"github.com/ragforge/flowgraph/utils"
)

var (
	configPath string
	debug      bool
)

// NewRootCmd creates the root 'flowgraph' command with persistent flags and subcommands.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "flowgraph",
		Short: "Author and inspect RAG ingestion pipelines",
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultConfigPath, "Path to flowgraph config JSON")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logs")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		// Load environment variables from .env file, if present
		_ = godotenv.Load()
		if debug {
			utils.SetMode("debug")
		}
		if cfg := loadConfig(); cfg != nil {
			telemetry.Init(cfg)
		}
	}

	rootCmd.AddCommand(
		newValidateCmd(),
		newGraphCmd(),
		newStepsCmd(),
		newTemplatesCmd(),
		newConvertCmd(),
		newPipelinesCmd(),
	)
	return rootCmd
}

// loadConfig reads the config file; a missing file is not an error.
func loadConfig() *config.Config {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		utils.Debug("config %s not loaded: %v", configPath, err)
		return nil
	}
	return cfg
}

// stepCatalog builds the step type catalog with standard precedence.
func stepCatalog() *registry.Manager {
	return registry.NewStandardManager(loadConfig())
}

// loadGraphFromFile parses a pipeline file and materializes its graph.
func loadGraphFromFile(ctx context.Context, path string) (*graph.Graph, *model.Pipeline, []string, error) {
	p, err := dsl.Parse(path)
	if err != nil {
		return nil, nil, nil, err
	}
	g := graph.New(stepCatalog())
	warnings, err := g.Load(ctx, p.Spec.Steps)
	if err != nil {
		return nil, nil, warnings, err
	}
	return g, p, warnings, nil
}
