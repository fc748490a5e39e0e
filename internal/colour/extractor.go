package colour

import (
	"errors"
	"fmt"
	"image"
)

// ErrClustering is returned when the requested number of colours cannot be
// produced from the sampled pixels.
var ErrClustering = errors.New("clustering error")

// Extractor defines the interface for color extraction algorithms.
type Extractor interface {
	// Extract returns up to count clusters from img, most populous first.
	Extract(img image.Image, count int) (*Palette, error)
}

// Algorithm represents the color extraction algorithm type.
type Algorithm string

const (
	// AlgorithmKMeans uses seeded k-means++ clustering over a fixed-size sample.
	AlgorithmKMeans Algorithm = "kmeans"

	// AlgorithmProminent delegates to the prominentcolor k-means implementation.
	AlgorithmProminent Algorithm = "prominent"
)

const (
	// DefaultColourCount matches get_top_colors' default of three colours.
	DefaultColourCount = 3
	// DefaultSampleSize is the side of the square the image is stretched to before sampling.
	DefaultSampleSize = 50
	// DefaultSeed seeds k-means++ initialisation.
	DefaultSeed uint64 = 42
	// MaxColourCount bounds the number of clusters a caller may request.
	MaxColourCount = 256
)

// ValidAlgorithms returns a list of valid algorithm names.
func ValidAlgorithms() []Algorithm {
	return []Algorithm{
		AlgorithmKMeans,
		AlgorithmProminent,
	}
}

// IsValidAlgorithm checks if the given algorithm name is valid.
func IsValidAlgorithm(alg Algorithm) bool {
	for _, valid := range ValidAlgorithms() {
		if alg == valid {
			return true
		}
	}
	return false
}

// Config holds configuration for color extraction.
type Config struct {
	Algorithm  Algorithm
	ColorCount int
	SampleSize int
	Seed       uint64
}

// DefaultConfig returns the default extractor configuration.
func DefaultConfig() Config {
	return Config{
		Algorithm:  AlgorithmKMeans,
		ColorCount: DefaultColourCount,
		SampleSize: DefaultSampleSize,
		Seed:       DefaultSeed,
	}
}

// Validate validates the extractor configuration.
func (c Config) Validate() error {
	if !IsValidAlgorithm(c.Algorithm) {
		return fmt.Errorf("invalid algorithm: %s (valid algorithms: %v)", c.Algorithm, ValidAlgorithms())
	}
	if err := validateCount(c.ColorCount); err != nil {
		return err
	}
	if c.SampleSize < 1 {
		return fmt.Errorf("sample size must be at least 1, got %d", c.SampleSize)
	}
	if c.Algorithm == AlgorithmProminent && c.Seed != DefaultSeed {
		return fmt.Errorf("seed is not supported by the %s algorithm", AlgorithmProminent)
	}
	return nil
}

func validateCount(count int) error {
	if count < 1 {
		return fmt.Errorf("color count must be at least 1, got %d", count)
	}
	if count > MaxColourCount {
		return fmt.Errorf("color count too large: %d (maximum: %d)", count, MaxColourCount)
	}
	return nil
}

// NewExtractor creates a new Extractor based on cfg.Algorithm.
func NewExtractor(cfg Config) (Extractor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	switch cfg.Algorithm {
	case AlgorithmKMeans:
		return NewKMeansExtractor(cfg.SampleSize, cfg.Seed), nil
	case AlgorithmProminent:
		return NewProminentExtractor(cfg.SampleSize), nil
	default:
		return nil, fmt.Errorf("unknown algorithm: %s (valid algorithms: %v)", cfg.Algorithm, ValidAlgorithms())
	}
}
