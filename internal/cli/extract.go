package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/swatch/internal/colour"
	imageutil "github.com/jmylchreest/swatch/internal/image"
)

type extractOptions struct {
	config  colour.Config
	format  string
	preview bool
}

func newExtractCmd() *cobra.Command {
	opts := &extractOptions{config: colour.DefaultConfig()}

	cmd := &cobra.Command{
		Use:   "extract <image>",
		Short: "Print the dominant colours of an image",
		Long: `Print the dominant colours of an image, most dominant first.

The image is stretched to a --resize x --resize square and its pixels are
clustered with k-means. Requesting more colours than the sample contains
distinct colours is an error.

Supported image formats: JPEG, PNG, GIF, WebP, BMP, TIFF

Examples:
  # Top 3 colours as a table
  swatch extract photo.jpg

  # Top 5 colours as JSON
  swatch extract -c 5 -f json photo.jpg

  # Hex codes with terminal colour previews
  swatch extract -f hex --preview photo.jpg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, args[0], opts)
		},
	}

	addExtractorFlags(cmd.Flags(), &opts.config, true)
	cmd.Flags().StringVarP(&opts.format, "format", "f", "table", "output format (table, hex, rgb, json)")
	cmd.Flags().BoolVar(&opts.preview, "preview", false, "show colour previews when writing to a terminal")

	return cmd
}

func runExtract(cmd *cobra.Command, imagePath string, opts *extractOptions) error {
	logger := newLogger(cmd)

	if err := imageutil.ValidateImagePath(imagePath); err != nil {
		return fmt.Errorf("invalid image path: %w", err)
	}
	if !imageutil.IsImageFile(imagePath) {
		logger.Debug("unrecognised image extension, relying on content sniffing",
			"path", imagePath, "supported", imageutil.SupportedImageExtensions())
	}
	if err := opts.config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger.Debug("extracting colours", "path", imagePath, "colours", opts.config.ColorCount,
		"algorithm", opts.config.Algorithm, "resize", opts.config.SampleSize, "seed", opts.config.Seed)

	palette, err := colour.TopColours(imageutil.NewFileLoader(), imagePath, opts.config)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	preview := opts.preview && isTerminal(out)

	output, err := formatPalette(palette, opts.format, preview)
	if err != nil {
		return err
	}

	_, err = io.WriteString(out, output)
	return err
}

// formatPalette formats the palette according to the specified format.
func formatPalette(palette *colour.Palette, format string, showPreview bool) (string, error) {
	switch format {
	case "table":
		return formatTable(palette, showPreview), nil
	case "hex":
		if showPreview {
			return formatLines(palette, func(c colour.RGB) string { return colour.FormatColourWithPreview(c, 8) }), nil
		}
		return formatLines(palette, colour.RGB.Hex), nil
	case "rgb":
		if showPreview {
			return formatLines(palette, func(c colour.RGB) string { return colour.ColourPreview(c, 8) + " " + c.String() }), nil
		}
		return formatLines(palette, colour.RGB.String), nil
	case "json":
		jsonBytes, err := palette.ToJSON()
		if err != nil {
			return "", fmt.Errorf("failed to convert to JSON: %w", err)
		}
		return string(jsonBytes) + "\n", nil
	default:
		return "", fmt.Errorf("unsupported format: %s (supported: table, hex, rgb, json)", format)
	}
}

func formatTable(palette *colour.Palette, showPreview bool) string {
	headers := []string{"RANK", "HEX", "RGB", "COUNT", "SHARE"}
	if showPreview {
		headers = append(headers, "PREVIEW")
	}

	table := NewTable(headers)
	table.SetRightAligned(0)
	table.SetRightAligned(3)
	table.SetRightAligned(4)
	for i, c := range palette.All() {
		row := []string{
			strconv.Itoa(i + 1),
			c.Colour.Hex(),
			c.Colour.String(),
			strconv.Itoa(c.Count),
			fmt.Sprintf("%.1f%%", palette.Weight(i)*100),
		}
		if showPreview {
			row = append(row, colour.ColourPreview(c.Colour, 8))
		}
		table.AddRow(row)
	}
	return table.Render()
}

func formatLines(palette *colour.Palette, line func(colour.RGB) string) string {
	var b strings.Builder
	for _, c := range palette.Colours() {
		b.WriteString(line(c))
		b.WriteString("\n")
	}
	return b.String()
}

// isTerminal reports whether w is a terminal file descriptor.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
