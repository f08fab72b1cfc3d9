package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ragforge/flowgraph/config"
	"github.com/ragforge/flowgraph/dsl"
	"github.com/ragforge/flowgraph/storage"
)

func openStorage() (storage.Storage, error) {
	cfg := loadConfig()
	if cfg == nil {
		return storage.NewFromConfig(&config.StorageConfig{})
	}
	return storage.NewFromConfig(&cfg.Storage)
}

// newPipelinesCmd creates the 'pipelines' subcommand over configured storage.
func newPipelinesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pipelines",
		Short: "Manage stored pipelines",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List stored pipelines",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStorage()
			if err != nil {
				return err
			}
			defer store.Close()
			pipelines, err := store.ListPipelines(cmd.Context())
			if err != nil {
				return err
			}
			for _, p := range pipelines {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %-24s %-8s %d steps\n", p.ID, p.Name, p.Status, len(p.Spec.Steps))
			}
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "show <id>",
		Short: "Print a stored pipeline as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStorage()
			if err != nil {
				return err
			}
			defer store.Close()
			p, err := store.GetPipeline(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out, err := dsl.PipelineToYAMLString(p)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "import <pipeline.yaml>",
		Short: "Validate and store a pipeline file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := dsl.Parse(args[0])
			if err != nil {
				return err
			}
			if err := dsl.Validate(p); err != nil {
				return err
			}
			if p.ID == "" {
				p.ID = uuid.NewString()
			}
			store, err := openStorage()
			if err != nil {
				return err
			}
			defer store.Close()
			if err := store.SavePipeline(cmd.Context(), p); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "stored pipeline %s (%s)\n", p.Name, p.ID)
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a stored pipeline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStorage()
			if err != nil {
				return err
			}
			defer store.Close()
			return store.DeletePipeline(cmd.Context(), args[0])
		},
	})
	return cmd
}
