// Package crop cuts images down to their largest centred square.
package crop

import (
	"errors"
	"fmt"
	"image"

	"github.com/hashicorp/go-hclog"
	"github.com/nfnt/resize"

	imageutil "github.com/jmylchreest/swatch/internal/image"
)

// SuffixSquare replaces the input extension on cropped outputs.
const SuffixSquare = "_square.jpg"

// ErrInvalidSize is returned for a negative output size.
var ErrInvalidSize = errors.New("invalid size")

// SquareOutput returns the output spec for centre-square crops.
func SquareOutput() imageutil.OutputSpec {
	return imageutil.OutputSpec{Suffix: SuffixSquare, Quality: imageutil.DefaultJPEGQuality}
}

// CenterSquare returns the largest square centred in bounds. Offsets are
// floored, so odd leftovers favour the top-left.
func CenterSquare(bounds image.Rectangle) image.Rectangle {
	side := min(bounds.Dx(), bounds.Dy())
	left := bounds.Min.X + (bounds.Dx()-side)/2
	top := bounds.Min.Y + (bounds.Dy()-side)/2
	return image.Rect(left, top, left+side, top+side)
}

// Cropper crops images on disk to their centred square.
type Cropper struct {
	loader *imageutil.FileLoader
	logger hclog.Logger
}

// NewCropper creates a Cropper. A nil logger discards output.
func NewCropper(logger hclog.Logger) *Cropper {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Cropper{
		loader: imageutil.NewFileLoader(),
		logger: logger,
	}
}

// Square crops img to its centred square and resizes it to outputSize with a
// Lanczos3 filter. An outputSize of 0 keeps the square's own side length.
func Square(img image.Image, outputSize int) (image.Image, error) {
	if outputSize < 0 {
		return nil, fmt.Errorf("%w: output size must not be negative, got %d", ErrInvalidSize, outputSize)
	}

	square := imageutil.Crop(img, CenterSquare(img.Bounds()))
	side := square.Bounds().Dx()
	if side == 0 {
		return nil, fmt.Errorf("%w: image has no pixels", ErrInvalidSize)
	}

	if outputSize == 0 || outputSize == side {
		return square, nil
	}
	return resize.Resize(uint(outputSize), uint(outputSize), square, resize.Lanczos3), nil
}

// CropCenterSquare writes the centred square of the image at path, resized
// to outputSize (0 keeps the original side), and returns the output path.
func (c *Cropper) CropCenterSquare(path string, outputSize int, out imageutil.OutputSpec) (string, error) {
	if err := out.Validate(); err != nil {
		return "", fmt.Errorf("invalid output: %w", err)
	}

	img, err := c.loader.Load(path)
	if err != nil {
		return "", fmt.Errorf("failed to load image: %w", err)
	}

	square, err := Square(img, outputSize)
	if err != nil {
		return "", err
	}

	outputPath, err := out.Save(path, square)
	if err != nil {
		return "", err
	}

	c.logger.Info("saved cropped image", "path", outputPath,
		"crop", CenterSquare(img.Bounds()).String(), "size", square.Bounds().Dx())
	return outputPath, nil
}
