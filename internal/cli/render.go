package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/soerensenkarl/DrawTruss/pkg/pipeline"
	"github.com/soerensenkarl/DrawTruss/pkg/truss"
)

// renderCommand creates the render command for rendering an existing graph.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		noCache    bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "render [graph.json]",
		Short: "Render a truss graph to SVG, JSON, DOT, or PNG",
		Long: `Render a truss graph to SVG, JSON, DOT, or PNG.

The render command takes a graph JSON file (produced by 'vectorize' with
--format json) and renders it without re-running vectorization. Use this
to try different styles over the same graph.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), json, dot, png (comma-separated)")
	cmd.Flags().StringVar(&opts.Style, "style", "", "visual style: simple (default), handdrawn")
	cmd.Flags().BoolVar(&opts.Labels, "labels", false, "draw joint id labels")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", 0, "jitter seed for the handdrawn style")

	return cmd
}

// runRender loads the graph and renders it.
func (c *CLI) runRender(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	g, err := truss.ReadFile(input)
	if err != nil {
		return fmt.Errorf("load graph %s: %w", input, err)
	}
	c.Logger.Info("loaded graph", "nodes", g.NodeCount(), "edges", g.EdgeCount())

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()
	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, "Rendering graph...")
	spinner.Start()

	artifacts, cacheHit, err := runner.RenderWithCacheInfo(ctx, g, opts)
	if err != nil {
		spinner.StopWithError("Rendering failed")
		return err
	}
	spinner.Stop()

	return writeArtifacts(artifactWriteParams{
		artifacts: artifacts,
		formats:   opts.Formats,
		input:     input,
		output:    output,
		cacheHit:  cacheHit,
		nodes:     g.NodeCount(),
		edges:     g.EdgeCount(),
	})
}
