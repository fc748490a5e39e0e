// Package swatch renders extracted colours as solid preview images.
package swatch

import (
	"errors"
	"fmt"
	"image"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/swatch/internal/colour"
	imageutil "github.com/jmylchreest/swatch/internal/image"
)

var (
	// ErrInsufficientColors is returned when the extractor yields fewer
	// colours than a layout has cells.
	ErrInsufficientColors = errors.New("insufficient colours")

	// ErrInvalidSize is returned for canvas sizes a layout cannot divide.
	ErrInvalidSize = errors.New("invalid size")
)

// DefaultSize is the side length of rendered swatches.
const DefaultSize = 256

// Renderer extracts colours from images and writes swatch previews.
type Renderer struct {
	loader    imageutil.Loader
	extractor colour.Extractor
	logger    hclog.Logger
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithLoader sets the image loader.
func WithLoader(l imageutil.Loader) Option {
	return func(r *Renderer) { r.loader = l }
}

// WithExtractor sets the colour extractor.
func WithExtractor(e colour.Extractor) Option {
	return func(r *Renderer) { r.extractor = e }
}

// WithLogger sets the logger.
func WithLogger(l hclog.Logger) Option {
	return func(r *Renderer) { r.logger = l }
}

// NewRenderer creates a Renderer using the file loader and seeded k-means
// extractor unless overridden.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		loader:    imageutil.NewFileLoader(),
		extractor: colour.NewKMeansExtractor(colour.DefaultSampleSize, colour.DefaultSeed),
		logger:    hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// SaveDominantSquare writes a size x size square filled with the dominant
// colour of the image at path and returns the output path.
func (r *Renderer) SaveDominantSquare(path string, size int, out imageutil.OutputSpec) (string, error) {
	if size < 1 {
		return "", fmt.Errorf("%w: square size must be at least 1, got %d", ErrInvalidSize, size)
	}
	if err := out.Validate(); err != nil {
		return "", fmt.Errorf("invalid output: %w", err)
	}

	palette, err := r.extract(path, 1)
	if err != nil {
		return "", err
	}
	dominant, err := palette.Dominant()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInsufficientColors, err)
	}

	return r.save(path, DominantSquare(dominant, size), out)
}

// SaveTop4Grid writes a size x size 2x2 grid of the four most dominant
// colours, filled top-left, top-right, bottom-left, bottom-right. size must
// be even. If fewer than four colours are extracted nothing is written and
// ErrInsufficientColors is returned.
func (r *Renderer) SaveTop4Grid(path string, size int, out imageutil.OutputSpec) (string, error) {
	if err := validateGridSize(size); err != nil {
		return "", err
	}
	if err := out.Validate(); err != nil {
		return "", fmt.Errorf("invalid output: %w", err)
	}

	palette, err := r.extract(path, 4)
	if err != nil {
		return "", err
	}

	grid, err := Grid(palette.Colours(), size)
	if err != nil {
		return "", err
	}

	return r.save(path, grid, out)
}

func (r *Renderer) extract(path string, count int) (*colour.Palette, error) {
	img, err := r.loader.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load image: %w", err)
	}

	bounds := img.Bounds()
	r.logger.Debug("image loaded", "path", path, "width", bounds.Dx(), "height", bounds.Dy())

	palette, err := r.extractor.Extract(img, count)
	if err != nil {
		return nil, fmt.Errorf("failed to extract colours: %w", err)
	}

	r.logger.Debug("colours extracted", "requested", count, "colours", palette.ToHex())
	return palette, nil
}

func (r *Renderer) save(input string, img image.Image, out imageutil.OutputSpec) (string, error) {
	outputPath, err := out.Save(input, img)
	if err != nil {
		return "", err
	}

	r.logger.Info("swatch written", "path", outputPath)
	return outputPath, nil
}
