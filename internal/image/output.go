package image

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"
)

// OutputSpec describes where and how a rendered image is written.
type OutputSpec struct {
	// Suffix replaces the input path's extension when Path is empty.
	Suffix string

	// Quality is the JPEG quality, 1-100.
	Quality int

	// Path, when set, is used verbatim instead of a derived path.
	Path string
}

// Validate checks the spec can produce an output path.
func (o OutputSpec) Validate() error {
	if o.Path == "" && o.Suffix == "" {
		return fmt.Errorf("output spec needs either a path or a suffix")
	}
	if o.Quality < 1 || o.Quality > 100 {
		return fmt.Errorf("jpeg quality must be between 1 and 100, got %d", o.Quality)
	}
	return nil
}

// Resolve returns the output path for input.
func (o OutputSpec) Resolve(input string) string {
	if o.Path != "" {
		return o.Path
	}
	return DerivePath(input, o.Suffix)
}

// Save writes img as a JPEG to the path resolved for input and returns it.
func (o OutputSpec) Save(input string, img image.Image) (string, error) {
	path := o.Resolve(input)
	if err := SaveJPEG(path, img, o.Quality); err != nil {
		return "", err
	}
	return path, nil
}

// DerivePath strips the extension from input and appends suffix.
// "photos/cat.jpeg" with "_top4.jpg" becomes "photos/cat_top4.jpg".
// Leading dots of the file name never start an extension, so ".cat"
// becomes ".cat_top4.jpg".
func DerivePath(input, suffix string) string {
	name := strings.TrimLeft(filepath.Base(input), ".")
	ext := filepath.Ext(name)
	if ext == "" || !strings.HasSuffix(input, ext) {
		return input + suffix
	}
	return strings.TrimSuffix(input, ext) + suffix
}
