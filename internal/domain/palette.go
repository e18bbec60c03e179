package domain

import (
	"errors"
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// spectral10 is ColorBrewer's diverging Spectral scheme with ten classes,
// warm to cool. See https://colorbrewer2.org/#type=diverging&scheme=Spectral&n=10
var spectral10 = []string{
	"#9e0142", "#d53e4f", "#f46d43", "#fdae61", "#fee08b",
	"#e6f598", "#abdda4", "#66c2a5", "#3288bd", "#5e4fa2",
}

// Palette is an immutable ordered list of colors, one per temperature
// bucket. Index 0 colors the coolest bucket.
type Palette struct {
	colors []colorful.Color
	hex    []string
}

// NewPalette parses the given hex colors in bucket order.
func NewPalette(hexColors ...string) (Palette, error) {
	if len(hexColors) == 0 {
		return Palette{}, errors.New("palette needs at least one color")
	}
	p := Palette{
		colors: make([]colorful.Color, len(hexColors)),
		hex:    make([]string, len(hexColors)),
	}
	for i, h := range hexColors {
		c, err := colorful.Hex(h)
		if err != nil {
			return Palette{}, fmt.Errorf("palette color %d %q: %w", i, h, err)
		}
		p.colors[i] = c
		p.hex[i] = c.Hex()
	}
	return p, nil
}

// DefaultPalette returns Spectral-10 reversed so that cool temperatures map
// to blue and warm temperatures to red.
func DefaultPalette() Palette {
	rev := make([]string, len(spectral10))
	for i, h := range spectral10 {
		rev[len(spectral10)-1-i] = h
	}
	p, err := NewPalette(rev...)
	if err != nil {
		panic(err)
	}
	return p
}

// Len returns the number of colors.
func (p Palette) Len() int { return len(p.hex) }

// Hex returns the color at index i as "#rrggbb".
func (p Palette) Hex(i int) string { return p.hex[i] }

// Colors returns a copy of the palette as hex strings.
func (p Palette) Colors() []string {
	out := make([]string, len(p.hex))
	copy(out, p.hex)
	return out
}

// TextColor picks black or white, whichever reads better on color i.
func (p Palette) TextColor(i int) string {
	_, _, l := p.colors[i].Hcl()
	if l > 0.6 {
		return "#000000"
	}
	return "#ffffff"
}

// Swatch is one rectangle of the static color legend.
type Swatch struct {
	X      float64 `json:"x"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Fill   string  `json:"fill"`
}

// Swatches lays the palette out left to right. Slot 0 is left empty for the
// legend axis, so the first swatch starts at one swatch width.
func Swatches(p Palette, l Layout) []Swatch {
	out := make([]Swatch, p.Len())
	for i := range out {
		out[i] = Swatch{
			X:      float64(1+i) * l.PaletteWidth,
			Width:  l.PaletteWidth,
			Height: l.PaletteHeight,
			Fill:   p.hex[i],
		}
	}
	return out
}
