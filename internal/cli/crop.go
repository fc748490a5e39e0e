package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/crop"
)

func newCropCmd() *cobra.Command {
	var size int
	output := crop.SquareOutput()

	cmd := &cobra.Command{
		Use:   "crop <image>",
		Short: "Crop an image to its largest centred square",
		Long: `Crop an image to its largest centred square and optionally resize it.

Without --size the square keeps the length of the image's shorter side.

Examples:
  # Write photo_square.jpg next to photo.jpg
  swatch crop photo.jpg

  # Crop and scale to 1024x1024
  swatch crop --size 1024 photo.jpg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := crop.NewCropper(newLogger(cmd)).CropCenterSquare(args[0], size, output)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved cropped image to: %s\n", out)
			return nil
		},
	}

	cmd.Flags().IntVarP(&size, "size", "s", 0, "output side length in pixels (default: shorter side of the input)")
	addOutputFlags(cmd.Flags(), &output)

	return cmd
}
