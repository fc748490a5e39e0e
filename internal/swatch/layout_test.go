package swatch

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/jmylchreest/swatch/internal/colour"
)

func TestQuadrants(t *testing.T) {
	got := Quadrants(256)
	want := [4]image.Rectangle{
		image.Rect(0, 0, 128, 128),
		image.Rect(128, 0, 256, 128),
		image.Rect(0, 128, 128, 256),
		image.Rect(128, 128, 256, 256),
	}
	if got != want {
		t.Errorf("Quadrants(256) = %v, want %v", got, want)
	}
}

func TestGrid(t *testing.T) {
	canvas, err := Grid(fourColours, 8)
	if err != nil {
		t.Fatalf("Grid() error = %v", err)
	}

	for i, cell := range Quadrants(8) {
		for y := cell.Min.Y; y < cell.Max.Y; y++ {
			for x := cell.Min.X; x < cell.Max.X; x++ {
				got := canvas.RGBAAt(x, y)
				c := fourColours[i]
				if got != (color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}) {
					t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, c)
				}
			}
		}
	}
}

func TestGridIgnoresExtraColours(t *testing.T) {
	colours := append(append([]colour.RGB{}, fourColours...), colour.RGB{R: 1, G: 2, B: 3})
	if _, err := Grid(colours, 4); err != nil {
		t.Errorf("Grid() with five colours error = %v", err)
	}
}

func TestGridErrors(t *testing.T) {
	tests := []struct {
		name    string
		colours []colour.RGB
		size    int
		want    error
	}{
		{name: "three colours", colours: fourColours[:3], size: 8, want: ErrInsufficientColors},
		{name: "no colours", colours: nil, size: 8, want: ErrInsufficientColors},
		{name: "odd size", colours: fourColours, size: 9, want: ErrInvalidSize},
		{name: "zero size", colours: fourColours, size: 0, want: ErrInvalidSize},
		{name: "negative size", colours: fourColours, size: -2, want: ErrInvalidSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Grid(tt.colours, tt.size); !errors.Is(err, tt.want) {
				t.Errorf("Grid() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestDominantSquare(t *testing.T) {
	c := colour.RGB{R: 1, G: 2, B: 3}
	canvas := DominantSquare(c, 5)
	if canvas.Bounds() != image.Rect(0, 0, 5, 5) {
		t.Fatalf("bounds = %v, want 5x5", canvas.Bounds())
	}
	if got := canvas.RGBAAt(4, 4); got != (color.RGBA{R: 1, G: 2, B: 3, A: 255}) {
		t.Errorf("pixel = %v, want %v", got, c)
	}
}
