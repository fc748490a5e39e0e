package cli

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/jmylchreest/swatch/internal/colour"
	imageutil "github.com/jmylchreest/swatch/internal/image"
)

// algorithmValue adapts colour.Algorithm to pflag.Value.
type algorithmValue colour.Algorithm

func (a *algorithmValue) String() string { return string(*a) }

func (a *algorithmValue) Set(s string) error {
	alg := colour.Algorithm(s)
	if !colour.IsValidAlgorithm(alg) {
		return fmt.Errorf("must be one of %v", colour.ValidAlgorithms())
	}
	*a = algorithmValue(alg)
	return nil
}

func (a *algorithmValue) Type() string { return "algorithm" }

// addExtractorFlags registers the clustering flags shared by every command
// that extracts colours. The colour count is only exposed when withCount is set.
func addExtractorFlags(fs *pflag.FlagSet, cfg *colour.Config, withCount bool) {
	if withCount {
		fs.IntVarP(&cfg.ColorCount, "colours", "c", cfg.ColorCount, fmt.Sprintf("number of colours to extract (1-%d)", colour.MaxColourCount))
	}
	fs.IntVar(&cfg.SampleSize, "resize", cfg.SampleSize, "side of the square the image is stretched to before clustering")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "random seed for k-means initialisation (kmeans algorithm only)")
	fs.VarP((*algorithmValue)(&cfg.Algorithm), "algorithm", "a", fmt.Sprintf("extraction algorithm %v", colour.ValidAlgorithms()))
}

// addOutputFlags registers flags that override where and how output is written.
func addOutputFlags(fs *pflag.FlagSet, out *imageutil.OutputSpec) {
	fs.StringVarP(&out.Path, "output", "o", out.Path, "output file (default: input path with its extension replaced by "+out.Suffix+")")
	fs.IntVar(&out.Quality, "quality", out.Quality, "jpeg quality (1-100)")
}
