package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/netcanvas/netcanvas/pkg/diagram"
	"github.com/netcanvas/netcanvas/pkg/pipeline"
)

// layoutCommand creates the layout command for computing diagram layouts.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output  string
		noCache bool
	)
	opts := pipeline.Options{}
	opts.SetDefaults()

	cmd := &cobra.Command{
		Use:   "layout [diagram.json]",
		Short: "Compute node positions and boundary sizes for a diagram",
		Long: `Compute node positions and boundary sizes for a diagram.

The layout command takes a diagram.json file, arranges the children of the
target boundary (or the root canvas) with a layered algorithm, resolves
overlaps, and resizes the boundary to fit. The laid-out diagram is written
as a new file next to the input.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	// Layout flags
	cmd.Flags().StringVarP(&opts.Boundary, "boundary", "b", opts.Boundary, "boundary ID to lay out (default: root canvas)")
	cmd.Flags().StringVarP(&opts.Direction, "direction", "d", opts.Direction, "flow direction: TB (default), BT, LR, RL")
	cmd.Flags().StringVarP(&opts.Tier, "tier", "t", opts.Tier, "spacing tier: compact, comfortable (default), spacious")
	cmd.Flags().Float64Var(&opts.BaseUnit, "base-unit", opts.BaseUnit, "spacing base unit in pixels (0 = default)")
	cmd.Flags().Float64Var(&opts.Padding, "padding", opts.Padding, "boundary padding in pixels (0 = default)")
	cmd.Flags().BoolVar(&opts.AdjustAspectRatio, "aspect", opts.AdjustAspectRatio, "pull boundary size toward the direction's aspect band")
	cmd.Flags().BoolVar(&opts.SkipCollisions, "no-collisions", opts.SkipCollisions, "skip the collision cleanup pass")
	cmd.Flags().BoolVar(&opts.DevicesOnly, "devices-only", opts.DevicesOnly, "restrict collision checks to device pairs")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", opts.Refresh, "recompute even when a cached result exists")

	return cmd
}

// runLayout loads the diagram, computes the layout, and writes output.
func (c *CLI) runLayout(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	d, err := diagram.ReadFile(input)
	if err != nil {
		return fmt.Errorf("load diagram %s: %w", input, err)
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger
	track := newProgress(c.Logger)

	target := opts.Boundary
	if target == "" {
		target = "root canvas"
	}
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Laying out %s...", target))
	spinner.Start()

	result, cacheHit, err := runner.ApplyWithCacheInfo(ctx, d, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return fmt.Errorf("compute layout: %w", err)
	}
	spinner.Stop()
	track.done(fmt.Sprintf("Placed %d nodes", len(result.Positions)))

	if ctx.Err() != nil {
		return ctx.Err()
	}

	d.ApplyPositions(result.Positions)
	d.ApplySizes(result.Sizes)

	outputPath := output
	if outputPath == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		outputPath = base + ".layout.json"
	}

	if err := diagram.WriteFile(d, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(len(result.Positions), d.EdgeCount(), cacheHit)
	if result.Collision != nil && result.Collision.NudgedCount > 0 {
		printDetail("nudged %d overlapping nodes", result.Collision.NudgedCount)
	}
	printNewline()
	printNextStep("Inspect boundaries", "netcanvas boundaries "+outputPath)

	return nil
}
