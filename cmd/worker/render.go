package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/GoSim-25-26J-441/observatory/internal/topology/graph/export"
	"github.com/GoSim-25-26J-441/observatory/internal/topology/vizceral"
)

func newRenderCommand(opts *rootOptions) *cobra.Command {
	var (
		region string
		format string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print one region as a Vizceral document or a Graphviz graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, _, err := opts.loadTopology(cmd)
			if err != nil {
				return err
			}
			n, ok := t.Lookup(region)
			if !ok {
				return fmt.Errorf("couldn't find %s", region)
			}

			out := cmd.OutOrStdout()
			switch format {
			case "json":
				return export.WriteJSON(out, vizceral.Translate(n))
			case "yaml":
				return export.WriteYAML(out, vizceral.Translate(n))
			case "dot":
				_, err := io.WriteString(out, export.ToDOT(n, n.DisplayName()))
				return err
			default:
				return fmt.Errorf("unknown format %q (want json, yaml or dot)", format)
			}
		},
	}

	cmd.Flags().StringVarP(&region, "region", "r", "", "region to render")
	cmd.Flags().StringVar(&format, "format", "json", "output format: json, yaml or dot")
	_ = cmd.MarkFlagRequired("region")
	return cmd
}
