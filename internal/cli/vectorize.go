package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/soerensenkarl/DrawTruss/pkg/pipeline"
	"github.com/soerensenkarl/DrawTruss/pkg/sketch"
)

// vectorizeCommand creates the vectorize command for converting sketches.
func (c *CLI) vectorizeCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		noCache    bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "vectorize [sketch.json]",
		Short: "Convert a freehand sketch into a truss graph",
		Long: `Convert a freehand sketch into a truss graph.

The vectorize command reads a sketch JSON file of freehand strokes,
simplifies each stroke, splits members at crossings, snaps nearby
endpoints into shared joints, and writes the resulting graph in the
requested format(s).

Results are cached locally for faster subsequent runs. Use --refresh to
bypass the cache, or --no-cache to disable it entirely.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			return c.runVectorize(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "recompute even if cached")

	// Vectorize flags
	cmd.Flags().Float64Var(&opts.SnapRadius, "snap-radius", 0, "endpoint merge distance (default 10)")
	cmd.Flags().Float64Var(&opts.Epsilon, "epsilon", 0, "simplification tolerance (default snap-radius/2)")

	// Render flags
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), json, dot, png (comma-separated)")
	cmd.Flags().StringVar(&opts.Style, "style", "", "visual style: simple (default), handdrawn")
	cmd.Flags().BoolVar(&opts.Labels, "labels", false, "draw joint id labels")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", 0, "jitter seed for the handdrawn style")

	return cmd
}

// runVectorize loads the sketch and runs the full pipeline.
func (c *CLI) runVectorize(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	sk, err := sketch.ImportJSON(input)
	if err != nil {
		return err
	}
	c.Logger.Info("loaded sketch", "strokes", sk.StrokeCount(), "points", sk.PointCount())

	// Sketch-embedded parameters fill in unset flags.
	if opts.SnapRadius == 0 {
		opts.SnapRadius = sk.SnapRadius
	}
	if opts.Epsilon == 0 {
		opts.Epsilon = sk.Epsilon
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()
	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, "Vectorizing sketch...")
	spinner.Start()

	result, err := runner.Execute(ctx, sk, opts)
	if err != nil {
		spinner.StopWithError("Vectorization failed")
		return err
	}
	spinner.Stop()

	if err := writeArtifacts(artifactWriteParams{
		artifacts: result.Artifacts,
		formats:   opts.Formats,
		input:     input,
		output:    output,
		cacheHit:  result.CacheInfo.VectorizeHit && result.CacheInfo.RenderHit,
		nodes:     result.Stats.NodeCount,
		edges:     result.Stats.EdgeCount,
	}); err != nil {
		return err
	}

	if result.Stats.NodeCount == 0 {
		printWarning("Sketch produced an empty graph")
	}
	printNextStep("Tune the snap radius interactively", fmt.Sprintf("drawtruss tune %s", input))
	return nil
}
