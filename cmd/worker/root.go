package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/GoSim-25-26J-441/observatory/internal/logging"
	"github.com/GoSim-25-26J-441/observatory/internal/topology/domain"
	"github.com/GoSim-25-26J-441/observatory/internal/topology/ingest/mapper"
	"github.com/GoSim-25-26J-441/observatory/internal/topology/ingest/parser"
	"github.com/GoSim-25-26J-441/observatory/internal/topology/ingest/validator"
)

type rootOptions struct {
	file    string
	verbose bool
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "worker",
		Short:         "Offline tools for observatory topology files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVarP(&opts.file, "file", "f", "sample/simple.yml", "topology file (YAML, or JSON with a .json extension)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newListCommand(opts),
		newValidateCommand(opts),
		newRenderCommand(opts),
	)
	return root
}

func (o *rootOptions) logger(cmd *cobra.Command) *log.Logger {
	level := log.WarnLevel
	if o.verbose {
		level = log.DebugLevel
	}
	return logging.New(cmd.ErrOrStderr(), level)
}

// loadTopology parses, validates and builds the file named by --file.
func (o *rootOptions) loadTopology(cmd *cobra.Command) (*domain.Topology, mapper.Report, error) {
	f, err := parser.ParseFile(o.file)
	if err != nil {
		return nil, mapper.Report{}, err
	}
	if err := validator.Validate(f); err != nil {
		return nil, mapper.Report{}, fmt.Errorf("%s: %w", o.file, err)
	}
	t, report := mapper.ToTopology(f, o.logger(cmd))
	return t, report, nil
}
