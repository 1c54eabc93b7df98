package main

import (
	"io"

	"github.com/jultty/en/internal/graph"
	"github.com/spf13/cobra"
)

var (
	graphFormat string

	graphCmd = &cobra.Command{
		Use:   "graph",
		Short: "Print the loaded graph in another format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return convertGraph(cfg.GraphPath, graphFormat, cmd.OutOrStdout())
		},
	}
)

func init() {
	graphCmd.Flags().StringVarP(&graphFormat, "format", "f", "toml", "output format: toml, json or yaml")
}

func convertGraph(path, format string, w io.Writer) error {
	f, err := graph.ParseFormat(format)
	if err != nil {
		return err
	}
	g, err := graph.Load(path)
	if err != nil {
		return err
	}
	data, err := graph.Serialize(f, g)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
