// Package palette holds the hand-picked color catalog wallpapers draw from.
package palette

import (
	"fmt"
	"image/color"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
)

// Size is the number of colors in every palette.
const Size = 5

// Palette is an ordered set of five opaque colors. Every background and
// pattern layer of a composition takes its colors from one Palette.
type Palette [Size]color.NRGBA

// Hand-picked palettes with contrast + harmony.
var catalogHex = [][Size]string{
	{"#0f0f1a", "#1b1f3b", "#533a71", "#a88fac", "#ffd6e0"},
	{"#0b1d26", "#1b263b", "#415a77", "#778da9", "#e0e1dd"},
	{"#0a0908", "#22333b", "#eae0d5", "#c6ac8f", "#5e503f"},
	{"#0f2027", "#203a43", "#2c5364", "#f5f7fa", "#c3cfe2"},
	{"#1e152a", "#23395b", "#406e8e", "#8ea8c3", "#cbf7ed"},
	{"#1b1b3a", "#693668", "#a74482", "#f84aa7", "#ff3562"},
	{"#051923", "#003554", "#006494", "#0582ca", "#00a6fb"},
	{"#2f1b41", "#87255b", "#a8dadc", "#f1faee", "#457b9d"},
	{"#141414", "#292929", "#fca311", "#e5e5e5", "#14213d"},
	{"#0f0f0f", "#2d6a4f", "#40916c", "#95d5b2", "#d8f3dc"},
	{"#1b262c", "#0f4c75", "#3282b8", "#bbe1fa", "#f7f7ff"},
	{"#1d1e22", "#2c2e33", "#3f4147", "#ffd166", "#ef476f"},
}

// catalog is parsed once at init; a malformed entry is a programming error.
var catalog = mustParseCatalog(catalogHex)

func mustParseCatalog(src [][Size]string) []Palette {
	out := make([]Palette, len(src))
	for i, hexes := range src {
		for j, h := range hexes {
			c, err := ParseHex(h)
			if err != nil {
				panic(fmt.Sprintf("palette %d color %d: %v", i, j, err))
			}
			out[i][j] = c
		}
	}
	return out
}

// ParseHex converts "#rrggbb" to an opaque color.
func ParseHex(s string) (color.NRGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}

// Catalog returns a copy of the built-in palettes in catalog order.
func Catalog() []Palette {
	out := make([]Palette, len(catalog))
	copy(out, catalog)
	return out
}

// Choose picks one catalog palette and shuffles its color order.
func Choose(rng *rand.Rand) Palette {
	p := catalog[rng.Intn(len(catalog))]
	rng.Shuffle(len(p), func(i, j int) { p[i], p[j] = p[j], p[i] })
	return p
}

// Random returns one color of p chosen uniformly.
func (p Palette) Random(rng *rand.Rand) color.NRGBA {
	return p[rng.Intn(len(p))]
}

// Hex renders the palette as "#rrggbb" strings.
func (p Palette) Hex() []string {
	out := make([]string, len(p))
	for i, c := range p {
		out[i] = fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return out
}

// Lightness returns the CIE L* of each color, useful for listing
// palettes from dark to light.
func (p Palette) Lightness() []float64 {
	out := make([]float64, len(p))
	for i, c := range p {
		cf, _ := colorful.MakeColor(c)
		l, _, _ := cf.Lab()
		out[i] = l
	}
	return out
}
