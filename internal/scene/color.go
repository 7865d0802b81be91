package scene

import (
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Palette is a fixed set of colours an effect family samples from.
type Palette []color.NRGBA

// MustPalette parses hex literals such as "#00ffff". It panics on a bad
// literal since palettes are compile-time constants.
func MustPalette(hexes ...string) Palette {
	p := make(Palette, 0, len(hexes))
	for _, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			panic("scene: bad palette colour " + h + ": " + err.Error())
		}
		r, g, b := c.RGB255()
		p = append(p, color.NRGBA{R: r, G: g, B: b, A: 0xff})
	}
	return p
}

// Pick samples one colour uniformly, with replacement.
func (p Palette) Pick(r *Rand) color.NRGBA {
	return p[r.IntN(len(p))]
}

// At cycles through the palette by index.
func (p Palette) At(i int) color.NRGBA {
	return p[i%len(p)]
}

func withAlpha(c color.NRGBA, alpha float64) color.NRGBA {
	c.A = uint8(math.Round(clamp01(alpha) * 0xff))
	return c
}

// hsl builds an opaque colour from hue in degrees and saturation/lightness in [0,1].
func hsl(h, s, l float64) colorful.Color {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return colorful.Hsl(h, s, l)
}

func toNRGBA(c colorful.Color) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}

func clamp01(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// wrap folds v into [0, size). A non-positive size collapses to 0.
func wrap(v, size float64) float64 {
	if size <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	v = math.Mod(v, size)
	if v < 0 {
		v += size
	}
	if v >= size {
		v = 0
	}
	return v
}
