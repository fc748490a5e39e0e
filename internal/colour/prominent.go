package colour

import (
	"fmt"
	"image"

	"github.com/EdlinOrg/prominentcolor"
)

// ProminentExtractor extracts colours with the prominentcolor k-means
// implementation. The image is resized to sampleSize pixels wide (aspect
// preserved) before clustering and no background colours are masked.
// The seed does not apply: prominentcolor seeds its own initialisation.
type ProminentExtractor struct {
	sampleSize int
}

// NewProminentExtractor creates a ProminentExtractor.
func NewProminentExtractor(sampleSize int) *ProminentExtractor {
	return &ProminentExtractor{sampleSize: sampleSize}
}

// Extract implements Extractor.
func (e *ProminentExtractor) Extract(img image.Image, count int) (*Palette, error) {
	if img == nil {
		return nil, fmt.Errorf("image cannot be nil")
	}
	if err := validateCount(count); err != nil {
		return nil, err
	}
	if e.sampleSize < 1 {
		return nil, fmt.Errorf("sample size must be at least 1, got %d", e.sampleSize)
	}

	items, err := prominentcolor.KmeansWithAll(
		count,
		img,
		prominentcolor.ArgumentNoCropping,
		uint(e.sampleSize),
		[]prominentcolor.ColorBackgroundMask{},
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrClustering, err)
	}
	if len(items) < count {
		return nil, fmt.Errorf("%w: cannot form %d clusters, found %d", ErrClustering, count, len(items))
	}

	result := make([]Cluster, len(items))
	for i, item := range items {
		result[i] = Cluster{
			Colour: RGB{R: clampChannel(item.Color.R), G: clampChannel(item.Color.G), B: clampChannel(item.Color.B)},
			Count:  item.Cnt,
		}
	}

	return NewPalette(result), nil
}

func clampChannel(v uint32) uint8 {
	if v > 255 {
		return 255
	}
	return uint8(v)
}
