package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ragforge/flowgraph/dsl"
	"github.com/ragforge/flowgraph/graph"
)

// newValidateCmd creates the 'validate' subcommand.
func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <pipeline.yaml>",
		Short: "Validate a pipeline file against the schema and its graph structure",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := dsl.Parse(args[0])
			if err != nil {
				return err
			}
			if err := dsl.Validate(p); err != nil {
				return fmt.Errorf("schema validation failed: %w", err)
			}
			stepRes := graph.ValidateSteps(p.Spec.Steps)
			for _, e := range stepRes.Errors {
				fmt.Fprintf(cmd.OutOrStdout(), "error: %s: %s\n", e.NodeID, e.Message)
			}

			g, _, warnings, err := loadGraphFromFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			for _, w := range warnings {
				fmt.Fprintf(cmd.OutOrStdout(), "warning: %s\n", w)
			}
			res := g.Validate()
			for _, w := range res.Warnings {
				fmt.Fprintf(cmd.OutOrStdout(), "warning: %s: %s\n", w.NodeID, w.Message)
			}
			for _, e := range res.Errors {
				fmt.Fprintf(cmd.OutOrStdout(), "error: %s: %s\n", e.NodeID, e.Message)
			}
			if !res.Valid || !stepRes.Valid {
				return fmt.Errorf("pipeline %s is not valid", p.Name)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "pipeline %s is valid (%d steps)\n", p.Name, len(p.Spec.Steps))
			return nil
		},
	}
}
