package image

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
)

// DefaultJPEGQuality is the quality used for every rendered output.
const DefaultJPEGQuality = 95

// SaveJPEG encodes img as a JPEG at the given quality and writes it to path,
// replacing any existing file.
func SaveJPEG(path string, img image.Image, quality int) error {
	if path == "" {
		return fmt.Errorf("%w: output path cannot be empty", ErrEncode)
	}
	if quality < 1 || quality > 100 {
		return fmt.Errorf("%w: jpeg quality must be between 1 and 100, got %d", ErrEncode, quality)
	}

	file, err := os.Create(path) // #nosec G304 - Output path derived from user input, intended to be written
	if err != nil {
		return fmt.Errorf("%w: failed to create output file: %w", ErrEncode, err)
	}

	if err := jpeg.Encode(file, img, &jpeg.Options{Quality: quality}); err != nil {
		_ = file.Close()
		return fmt.Errorf("%w: failed to encode jpeg: %w", ErrEncode, err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("%w: failed to close output file: %w", ErrEncode, err)
	}

	return nil
}
