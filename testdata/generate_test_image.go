// Test image generator for the default swatch input.
//
//	go run ./testdata/generate_test_image.go
package main

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"

	imageutil "github.com/jmylchreest/swatch/internal/image"
)

const output = "square_cropper/testing_image.jpeg"

func main() {
	// 400x300 landscape so the centred square crop has work to do.
	img := image.NewNRGBA(image.Rect(0, 0, 400, 300))

	// Stripe heights decrease so the top-4 ranking is unambiguous.
	stripes := []struct {
		c      color.NRGBA
		height int
	}{
		{color.NRGBA{R: 200, G: 40, B: 40, A: 255}, 120},
		{color.NRGBA{R: 40, G: 160, B: 60, A: 255}, 90},
		{color.NRGBA{R: 50, G: 70, B: 200, A: 255}, 60},
		{color.NRGBA{R: 230, G: 210, B: 60, A: 255}, 30},
	}

	y := 0
	for _, s := range stripes {
		imageutil.Fill(img, image.Rect(0, y, 400, y+s.height), s.c)
		y += s.height
	}

	if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating directory: %v\n", err)
		os.Exit(1)
	}
	if err := imageutil.SaveJPEG(output, img, imageutil.DefaultJPEGQuality); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing image: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Generated %s\n", output)
}
