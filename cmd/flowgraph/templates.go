package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ragforge/flowgraph/dsl"
	"github.com/ragforge/flowgraph/templates"
)

// newTemplatesCmd creates the 'templates' subcommand.
func newTemplatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "Work with built-in pipeline templates",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List built-in pipeline templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, t := range templates.Builtin() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-18s %s: %s\n", t.ID, t.Name, t.Description)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show <template-id>",
		Short: "Show one template's parameters and step chain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t := templates.Find(args[0])
			if t == nil {
				return fmt.Errorf("unknown template: %s", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n%s\n", t.Name, t.ID, t.Description)
			fmt.Fprintln(cmd.OutOrStdout(), "parameters:")
			for _, p := range t.Parameters {
				req := ""
				if p.Required {
					req = " (required)"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "  %-16s %s%s\n", p.Name, p.Description, req)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "steps:")
			for _, s := range t.Steps {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s (%s)\n", s.ID, s.Type)
			}
			return nil
		},
	})

	var name, output string
	var params []string
	initCmd := &cobra.Command{
		Use:   "init <template-id>",
		Short: "Instantiate a template into a pipeline YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t := templates.Find(args[0])
			if t == nil {
				return fmt.Errorf("unknown template: %s", args[0])
			}
			paramMap := map[string]any{}
			for _, kv := range params {
				k, v, ok := strings.Cut(kv, "=")
				if !ok {
					return fmt.Errorf("invalid --param %q, want key=value", kv)
				}
				paramMap[k] = v
			}
			p, err := t.Instantiate(cmd.Context(), stepCatalog(), name, paramMap)
			if err != nil {
				return err
			}
			data, err := dsl.PipelineToYAML(p)
			if err != nil {
				return err
			}
			if output == "" {
				fmt.Fprint(cmd.OutOrStdout(), string(data))
				return nil
			}
			return os.WriteFile(output, data, 0644)
		},
	}
	initCmd.Flags().StringVar(&name, "name", "", "name of the new pipeline")
	initCmd.Flags().StringVarP(&output, "output", "o", "", "write pipeline YAML to file instead of stdout")
	initCmd.Flags().StringArrayVar(&params, "param", nil, "template parameter as key=value (repeatable)")
	cmd.AddCommand(initCmd)
	return cmd
}
