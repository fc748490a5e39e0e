package swatch

import (
	"fmt"
	"image"

	"github.com/jmylchreest/swatch/internal/colour"
	imageutil "github.com/jmylchreest/swatch/internal/image"
)

// DominantSquare returns a size x size canvas filled with c.
func DominantSquare(c colour.RGB, size int) *image.RGBA {
	canvas := image.NewRGBA(image.Rect(0, 0, size, size))
	imageutil.Fill(canvas, canvas.Bounds(), c)
	return canvas
}

// Quadrants returns the four equal cells of a size x size canvas in paint
// order: top-left, top-right, bottom-left, bottom-right.
func Quadrants(size int) [4]image.Rectangle {
	half := size / 2
	return [4]image.Rectangle{
		image.Rect(0, 0, half, half),
		image.Rect(half, 0, size, half),
		image.Rect(0, half, half, size),
		image.Rect(half, half, size, size),
	}
}

// Grid paints the first four colours into the quadrants of a size x size
// canvas. Extra colours are ignored.
func Grid(colours []colour.RGB, size int) (*image.RGBA, error) {
	if err := validateGridSize(size); err != nil {
		return nil, err
	}
	cells := Quadrants(size)
	if len(colours) < len(cells) {
		return nil, fmt.Errorf("%w: grid needs %d colours, got %d", ErrInsufficientColors, len(cells), len(colours))
	}

	canvas := image.NewRGBA(image.Rect(0, 0, size, size))
	for i, cell := range cells {
		imageutil.Fill(canvas, cell, colours[i])
	}
	return canvas, nil
}

func validateGridSize(size int) error {
	if size < 2 || size%2 != 0 {
		return fmt.Errorf("%w: grid size must be an even number of at least 2, got %d", ErrInvalidSize, size)
	}
	return nil
}
