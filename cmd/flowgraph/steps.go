package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ragforge/flowgraph/model"
)

// newStepsCmd creates the 'steps' subcommand.
func newStepsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "steps",
		Short: "Inspect the step type catalog",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List available step types by category",
		RunE: func(cmd *cobra.Command, args []string) error {
			byCat, err := stepCatalog().ListByCategory(cmd.Context())
			if err != nil {
				return err
			}
			for _, cat := range []model.StepCategory{model.CategoryInput, model.CategoryProcessing, model.CategoryOutput, model.CategoryUtility} {
				defs := byCat[cat]
				if len(defs) == 0 {
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s:\n", cat)
				for _, def := range defs {
					fmt.Fprintf(cmd.OutOrStdout(), "  %-12s %s (%d in, %d out)\n", def.Type, def.Name, len(def.Inputs), len(def.Outputs))
				}
			}
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "show <type>",
		Short: "Show one step type definition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := stepCatalog().Lookup(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if def == nil {
				return fmt.Errorf("unknown step type: %s", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s): %s\n", def.Type, def.Category, def.Description)
			for _, in := range def.Inputs {
				req := ""
				if in.Required {
					req = " (required)"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "  in:  %s [%s]%s\n", in.Name, in.Type, req)
			}
			for _, out := range def.Outputs {
				fmt.Fprintf(cmd.OutOrStdout(), "  out: %s [%s] %s\n", out.Name, out.Type, out.Description)
			}
			return nil
		},
	})
	return cmd
}
