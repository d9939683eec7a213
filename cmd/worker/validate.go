package main

import (
	"github.com/spf13/cobra"

	"github.com/GoSim-25-26J-441/observatory/internal/topology/graph/export"
)

func newValidateCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Parse and build the topology file and print the build report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, report, err := opts.loadTopology(cmd)
			if err != nil {
				return err
			}
			return export.WriteYAML(cmd.OutOrStdout(), report)
		},
	}
}
