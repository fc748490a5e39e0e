package colour

import (
	"fmt"

	imageutil "github.com/jmylchreest/swatch/internal/image"
)

// TopColours loads the image at path and returns its cfg.ColorCount most
// populous colours, most dominant first.
func TopColours(loader imageutil.Loader, path string, cfg Config) (*Palette, error) {
	extractor, err := NewExtractor(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create extractor: %w", err)
	}

	img, err := loader.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load image: %w", err)
	}

	palette, err := extractor.Extract(img, cfg.ColorCount)
	if err != nil {
		return nil, fmt.Errorf("failed to extract colours from %s: %w", path, err)
	}

	return palette, nil
}

// DominantColour returns the colour of the single most populous cluster.
// cfg.ColorCount is ignored.
func DominantColour(loader imageutil.Loader, path string, cfg Config) (RGB, error) {
	cfg.ColorCount = 1
	palette, err := TopColours(loader, path, cfg)
	if err != nil {
		return RGB{}, err
	}
	return palette.Dominant()
}
