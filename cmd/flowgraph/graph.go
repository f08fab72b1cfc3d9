package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ragforge/flowgraph/graph"
)

// newGraphCmd creates the 'graph' subcommand.
func newGraphCmd() *cobra.Command {
	var topo bool
	cmd := &cobra.Command{
		Use:   "graph <pipeline.yaml>",
		Short: "Visualize a pipeline as a Mermaid DAG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, _, _, err := loadGraphFromFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if topo {
				order, err := g.TopoSort()
				if err != nil {
					return err
				}
				for _, id := range order {
					fmt.Fprintln(cmd.OutOrStdout(), id)
				}
				return nil
			}
			out, err := graph.ExportMermaid(g)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().BoolVar(&topo, "topo", false, "print node ids in dependency order instead of Mermaid")
	return cmd
}
