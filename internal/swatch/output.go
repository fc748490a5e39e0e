package swatch

import (
	imageutil "github.com/jmylchreest/swatch/internal/image"
)

// Output file suffixes that replace the input extension.
const (
	SuffixDominant = "_dominant.jpg"
	SuffixGrid     = "_top4.jpg"
)

// DominantOutput returns the output spec for dominant colour squares.
func DominantOutput() imageutil.OutputSpec {
	return imageutil.OutputSpec{Suffix: SuffixDominant, Quality: imageutil.DefaultJPEGQuality}
}

// GridOutput returns the output spec for top-4 colour grids.
func GridOutput() imageutil.OutputSpec {
	return imageutil.OutputSpec{Suffix: SuffixGrid, Quality: imageutil.DefaultJPEGQuality}
}
