// Package colour provides dominant colour extraction using clustering.
package colour

import (
	"encoding/json"
	"fmt"
	"image/color"
	"math"
	"slices"
)

// RGB represents a color in RGB format.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB color as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB color as a hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// RGBA implements color.Color. The colour is always fully opaque.
func (rgb RGB) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 0xff}.RGBA()
}

// ToRGB converts a color.Color to RGB, discarding alpha.
func ToRGB(c color.Color) RGB {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB{R: n.R, G: n.G, B: n.B}
}

// truncate converts a centroid component to a channel value, clamping to
// [0,255] and truncating toward zero.
func truncate(v float64) uint8 {
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v)
	}
}

// Cluster is a centroid colour and the number of samples assigned to it.
type Cluster struct {
	Colour RGB `json:"colour"`
	Count  int `json:"count"`
}

// Palette is an ordered list of clusters, most populous first.
type Palette struct {
	Clusters []Cluster
}

// NewPalette creates a Palette sorted by descending Count.
// Clusters with equal counts keep their input order.
func NewPalette(clusters []Cluster) *Palette {
	sorted := slices.Clone(clusters)
	slices.SortStableFunc(sorted, func(a, b Cluster) int {
		return b.Count - a.Count
	})
	return &Palette{Clusters: sorted}
}

// Len returns the number of colors in the palette.
func (p *Palette) Len() int {
	return len(p.Clusters)
}

// Colours returns the cluster colours in rank order.
func (p *Palette) Colours() []RGB {
	out := make([]RGB, len(p.Clusters))
	for i, c := range p.Clusters {
		out[i] = c.Colour
	}
	return out
}

// Total returns the number of samples across all clusters.
func (p *Palette) Total() int {
	total := 0
	for _, c := range p.Clusters {
		total += c.Count
	}
	return total
}

// Weight returns the share of samples in cluster i, in [0,1].
func (p *Palette) Weight(i int) float64 {
	total := p.Total()
	if total == 0 || i < 0 || i >= len(p.Clusters) {
		return 0
	}
	return float64(p.Clusters[i].Count) / float64(total)
}

// Get returns the color at the specified index.
// Returns an error if the index is out of bounds.
func (p *Palette) Get(index int) (RGB, error) {
	if index < 0 || index >= len(p.Clusters) {
		return RGB{}, fmt.Errorf("index out of bounds: %d (palette has %d colors)", index, len(p.Clusters))
	}
	return p.Clusters[index].Colour, nil
}

// Dominant returns the colour of the most populous cluster.
func (p *Palette) Dominant() (RGB, error) {
	return p.Get(0)
}

// ToHex converts the palette colors to hex strings.
func (p *Palette) ToHex() []string {
	hexColors := make([]string, len(p.Clusters))
	for i, c := range p.Clusters {
		hexColors[i] = c.Colour.Hex()
	}
	return hexColors
}

// ColorJSON represents a color in JSON output format.
type ColorJSON struct {
	Hex    string  `json:"hex"`
	RGB    RGB     `json:"rgb"`
	Count  int     `json:"count"`
	Weight float64 `json:"weight"`
}

// PaletteJSON represents the palette in JSON format.
type PaletteJSON struct {
	Count  int         `json:"count"`
	Colors []ColorJSON `json:"colors"`
}

// ToJSON converts the palette to JSON format.
func (p *Palette) ToJSON() ([]byte, error) {
	colors := make([]ColorJSON, len(p.Clusters))
	for i, c := range p.Clusters {
		colors[i] = ColorJSON{
			Hex:    c.Colour.Hex(),
			RGB:    c.Colour,
			Count:  c.Count,
			Weight: p.Weight(i),
		}
	}

	return json.MarshalIndent(PaletteJSON{
		Count:  len(p.Clusters),
		Colors: colors,
	}, "", "  ")
}

// String returns a human-readable string representation of the palette.
func (p *Palette) String() string {
	if len(p.Clusters) == 0 {
		return "Empty palette"
	}

	result := fmt.Sprintf("Palette with %d colors:\n", len(p.Clusters))
	for i, c := range p.Clusters {
		result += fmt.Sprintf("  %2d: %s (%s) %5.1f%%\n", i+1, c.Colour.Hex(), c.Colour.String(), p.Weight(i)*100)
	}
	return result
}

// All returns an iterator over all clusters in rank order.
func (p *Palette) All() func(func(int, Cluster) bool) {
	return func(yield func(int, Cluster) bool) {
		for i, c := range p.Clusters {
			if !yield(i, c) {
				return
			}
		}
	}
}
