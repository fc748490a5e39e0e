package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/colour"
	imageutil "github.com/jmylchreest/swatch/internal/image"
	"github.com/jmylchreest/swatch/internal/swatch"
)

// renderOptions holds the flags shared by the grid and dominant commands.
type renderOptions struct {
	size      int
	extractor colour.Config
	output    imageutil.OutputSpec
}

func newRenderOptions(output imageutil.OutputSpec) *renderOptions {
	return &renderOptions{
		size:      swatch.DefaultSize,
		extractor: colour.DefaultConfig(),
		output:    output,
	}
}

func (o *renderOptions) renderer(cmd *cobra.Command) (*swatch.Renderer, error) {
	extractor, err := colour.NewExtractor(o.extractor)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return swatch.NewRenderer(
		swatch.WithExtractor(extractor),
		swatch.WithLogger(newLogger(cmd)),
	), nil
}

func newGridCmd() *cobra.Command {
	opts := newRenderOptions(swatch.GridOutput())

	cmd := &cobra.Command{
		Use:   "grid <image>",
		Short: "Render a 2x2 grid of the four most dominant colours",
		Long: `Render a 2x2 grid of the four most dominant colours of an image.

Quadrants are filled top-left, top-right, bottom-left, bottom-right from
most to least dominant. The size must be even. Images with fewer than four
distinct colours are rejected.

Examples:
  # Write photo_top4.jpg next to photo.jpg
  swatch grid photo.jpg

  # 512px grid written to a chosen path
  swatch grid --size 512 -o preview.jpg photo.jpg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := opts.renderer(cmd)
			if err != nil {
				return err
			}
			out, err := renderer.SaveTop4Grid(args[0], opts.size, opts.output)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved top-4 color grid to: %s\n", out)
			return nil
		},
	}

	cmd.Flags().IntVarP(&opts.size, "size", "s", opts.size, "width and height of the grid in pixels (even)")
	addExtractorFlags(cmd.Flags(), &opts.extractor, false)
	addOutputFlags(cmd.Flags(), &opts.output)

	return cmd
}

func newDominantCmd() *cobra.Command {
	opts := newRenderOptions(swatch.DominantOutput())

	cmd := &cobra.Command{
		Use:   "dominant <image>",
		Short: "Render a square of the dominant colour",
		Long: `Render a solid square filled with the single most dominant colour of an image.

Examples:
  # Write photo_dominant.jpg next to photo.jpg
  swatch dominant photo.jpg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := opts.renderer(cmd)
			if err != nil {
				return err
			}
			out, err := renderer.SaveDominantSquare(args[0], opts.size, opts.output)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved dominant color square to: %s\n", out)
			return nil
		},
	}

	cmd.Flags().IntVarP(&opts.size, "size", "s", opts.size, "width and height of the square in pixels")
	addExtractorFlags(cmd.Flags(), &opts.extractor, false)
	addOutputFlags(cmd.Flags(), &opts.output)

	return cmd
}
