package colour

import (
	"fmt"
	"image"
	"math/rand/v2"

	"github.com/muesli/clusters"

	imageutil "github.com/jmylchreest/swatch/internal/image"
)

// defaultMaxIterations caps Lloyd iterations when assignments keep changing.
const defaultMaxIterations = 300

// KMeansExtractor implements color extraction using k-means clustering.
// Initialisation is k-means++ driven by a seeded PCG source, so identical
// input and settings always yield identical clusters.
type KMeansExtractor struct {
	sampleSize    int
	seed          uint64
	maxIterations int
}

// NewKMeansExtractor creates a KMeansExtractor that samples a
// sampleSize x sampleSize stretch of the image.
func NewKMeansExtractor(sampleSize int, seed uint64) *KMeansExtractor {
	return &KMeansExtractor{
		sampleSize:    sampleSize,
		seed:          seed,
		maxIterations: defaultMaxIterations,
	}
}

// Extract extracts colors from an image using k-means clustering.
// It fails with ErrClustering if count exceeds the number of distinct
// sampled colours.
func (e *KMeansExtractor) Extract(img image.Image, count int) (*Palette, error) {
	if img == nil {
		return nil, fmt.Errorf("image cannot be nil")
	}
	if err := validateCount(count); err != nil {
		return nil, err
	}
	if e.sampleSize < 1 {
		return nil, fmt.Errorf("sample size must be at least 1, got %d", e.sampleSize)
	}

	samples := Sample(img, e.sampleSize)

	if distinct := countDistinct(samples); count > distinct {
		return nil, fmt.Errorf("%w: cannot form %d clusters from %d distinct colours", ErrClustering, count, distinct)
	}

	points := make(clusters.Observations, len(samples))
	for i, s := range samples {
		points[i] = clusters.Coordinates{float64(s.R), float64(s.G), float64(s.B)}
	}

	rng := rand.New(rand.NewPCG(e.seed, e.seed))
	cc := seedPlusPlus(points, count, rng)
	assignments := e.partition(cc, points)

	counts := make([]int, count)
	for _, a := range assignments {
		counts[a]++
	}

	result := make([]Cluster, count)
	for i, c := range cc {
		result[i] = Cluster{
			Colour: RGB{R: truncate(c.Center[0]), G: truncate(c.Center[1]), B: truncate(c.Center[2])},
			Count:  counts[i],
		}
	}

	return NewPalette(result), nil
}

// partition runs Lloyd iterations until assignments settle, returning the
// cluster index of every point.
func (e *KMeansExtractor) partition(cc clusters.Clusters, points clusters.Observations) []int {
	assignments := make([]int, len(points))
	for i := range assignments {
		assignments[i] = -1
	}

	for iter := 0; iter < e.maxIterations; iter++ {
		cc.Reset()
		changed := 0
		for i, p := range points {
			ci := cc.Nearest(p)
			cc[ci].Append(p)
			if assignments[i] != ci {
				assignments[i] = ci
				changed++
			}
		}

		if changed == 0 {
			break
		}

		relocateEmpty(cc, points, assignments)
		for i := range cc {
			if len(cc[i].Observations) > 0 {
				cc[i].Recenter()
			}
		}
	}

	return assignments
}

// relocateEmpty moves the centre of every empty cluster onto the point that
// lies farthest from its own centre. The next assignment step then gives the
// cluster at least that point.
func relocateEmpty(cc clusters.Clusters, points clusters.Observations, assignments []int) {
	taken := make(map[int]bool)
	for ci := range cc {
		if len(cc[ci].Observations) > 0 {
			continue
		}

		far, farDist := -1, -1.0
		for i, p := range points {
			if taken[i] {
				continue
			}
			d := squaredDistance(p.Coordinates(), cc[assignments[i]].Center)
			if d > farDist {
				far, farDist = i, d
			}
		}
		if far < 0 {
			return
		}

		taken[far] = true
		cc[ci].Center = append(clusters.Coordinates(nil), points[far].Coordinates()...)
	}
}

// seedPlusPlus picks k initial centres with the k-means++ D² weighting.
// The caller guarantees at least k distinct points.
func seedPlusPlus(points clusters.Observations, k int, rng *rand.Rand) clusters.Clusters {
	cc := make(clusters.Clusters, 0, k)
	first := points[rng.IntN(len(points))].Coordinates()
	cc = append(cc, clusters.Cluster{Center: append(clusters.Coordinates(nil), first...)})

	nearest := make([]float64, len(points))
	for i, p := range points {
		nearest[i] = squaredDistance(p.Coordinates(), first)
	}

	for len(cc) < k {
		total := 0.0
		for _, d := range nearest {
			total += d
		}
		if total == 0 {
			break
		}

		target := rng.Float64() * total
		chosen := -1
		cumulative := 0.0
		for i, d := range nearest {
			if d == 0 {
				continue
			}
			chosen = i
			cumulative += d
			if cumulative >= target {
				break
			}
		}

		centre := append(clusters.Coordinates(nil), points[chosen].Coordinates()...)
		cc = append(cc, clusters.Cluster{Center: centre})

		for i, p := range points {
			if d := squaredDistance(p.Coordinates(), centre); d < nearest[i] {
				nearest[i] = d
			}
		}
	}

	return cc
}

// squaredDistance returns the squared euclidean distance between a and b.
func squaredDistance(a, b clusters.Coordinates) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

// countDistinct returns the number of unique colours in samples.
func countDistinct(samples []RGB) int {
	seen := make(map[RGB]struct{}, len(samples))
	for _, s := range samples {
		seen[s] = struct{}{}
	}
	return len(seen)
}

// Sample stretches img to size x size and flattens it into RGB triples in
// row-major order.
func Sample(img image.Image, size int) []RGB {
	small := imageutil.Resize(img, size, size)

	samples := make([]RGB, 0, size*size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := small.NRGBAAt(x, y)
			samples = append(samples, RGB{R: c.R, G: c.G, B: c.B})
		}
	}
	return samples
}
