package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ragforge/flowgraph/dsl"
)

// newConvertCmd creates the 'convert' subcommand.
func newConvertCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "convert <pipeline.yaml|pipeline.json>",
		Short: "Convert a pipeline file between YAML and JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := dsl.Parse(args[0])
			if err != nil {
				return err
			}
			var data []byte
			switch {
			case output == "" || strings.HasSuffix(output, ".json"):
				data, err = dsl.PipelineToJSON(p)
			case strings.HasSuffix(output, ".yaml"), strings.HasSuffix(output, ".yml"):
				data, err = dsl.PipelineToYAML(p)
			default:
				return fmt.Errorf("cannot infer output format from %q", output)
			}
			if err != nil {
				return err
			}
			if output == "" {
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}
			return os.WriteFile(output, data, 0644)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file; format inferred from extension")
	return cmd
}
