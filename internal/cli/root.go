// Package cli provides the command-line interface for swatch.
package cli

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/swatch"
	"github.com/jmylchreest/swatch/internal/version"
)

// DefaultInputPath is the image rendered when swatch runs without arguments.
const DefaultInputPath = "./square_cropper/testing_image.jpeg"

// NewRootCmd builds the swatch command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "swatch",
		Short: "Dominant colour swatches and square crops",
		Long: `Swatch extracts the dominant colours of an image with k-means clustering
and renders them as JPEG previews: a solid square of the dominant colour or
a 2x2 grid of the top four colours. It can also crop an image to its
centred square.

Run without a subcommand to render the top-4 grid of ` + DefaultInputPath + `.`,
		Version:      version.Short(),
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			renderer := swatch.NewRenderer(swatch.WithLogger(newLogger(cmd)))
			out, err := renderer.SaveTop4Grid(DefaultInputPath, swatch.DefaultSize, swatch.GridOutput())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved top-4 color grid to: %s\n", out)
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress non-error output")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newExtractCmd())
	rootCmd.AddCommand(newDominantCmd())
	rootCmd.AddCommand(newGridCmd())
	rootCmd.AddCommand(newCropCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}

// newLogger builds the command's logger from the global verbosity flags.
// Progress goes to stderr so stdout only carries results.
func newLogger(cmd *cobra.Command) hclog.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	quiet, _ := cmd.Flags().GetBool("quiet")

	level := hclog.Warn
	switch {
	case quiet:
		level = hclog.Error
	case verbose:
		level = hclog.Debug
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "swatch",
		Output: cmd.ErrOrStderr(),
		Level:  level,
	})
}
