package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/campusnav/graphio"
)

func (a *app) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Load the graph and check that every road is symmetric",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGraph(cmd.Context())
			if err != nil {
				return err
			}
			if err := g.ValidateSymmetry(); err != nil {
				a.logger.Warn("graph failed validation", zap.Error(err))
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "graph OK: %d locations, %d roads\n", g.VertexCount(), g.EdgeCount())

			return nil
		},
	}
}

func (a *app) exportCmd() *cobra.Command {
	var (
		name   string
		output string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the loaded graph as a YAML document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGraph(cmd.Context())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("creating %s: %w", output, err)
				}
				defer f.Close()
				w = f
			}
			a.logger.Info("exporting graph", zap.String("name", name), zap.String("output", output))

			return graphio.Encode(w, graphio.FromGraph(name, g))
		},
	}
	cmd.Flags().StringVar(&name, "name", "campus", "document name")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")

	return cmd
}
