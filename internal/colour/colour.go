package colour

import (
	"image/color"
	"math"
)

// RGB is a displayable colour triple with channels in 0..255.
type RGB struct {
	R, G, B int
}

// ToRGBA widens the triple for use with image/color consumers.
func (c RGB) ToRGBA() color.RGBA {
	return color.RGBA{R: uint8(c.R), G: uint8(c.G), B: uint8(c.B), A: 255}
}

// ToRGB converts hue (degrees), saturation and value (0..100 scales) into
// integer RGB channels. Out-of-range inputs are clamped, never rejected.
//
// Saturation 0 short-circuits to the achromatic grey without touching the
// sector logic. Otherwise the hue is split into a sector index and fractional
// remainder; sectors 5 and 6 share the final case, where 6 is reachable only
// at exactly hue=360 (a known edge: the pre-clamp guarantees i <= 6).
func ToRGB(h, s, v float64) (int, int, int) {
	h = clamp(h, 0, 360)
	s = clamp(s, 0, 100) / 100
	v = clamp(v, 0, 100) / 100

	if s == 0 {
		g := channel(v)
		return g, g, g
	}

	h /= 60
	i := int(math.Floor(h))
	f := h - float64(i)
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	var r, g, b float64
	switch i {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}
	return channel(r), channel(g), channel(b)
}

// Colour is a mutable HSV triple with an eagerly cached RGB representation.
// The cache is recomputed on every mutation so it is never stale.
type Colour struct {
	h, s, v float64
	rgb     RGB
}

func New(h, s, v float64) *Colour {
	c := &Colour{}
	c.Set(h, s, v)
	return c
}

func (c *Colour) Hue() float64        { return c.h }
func (c *Colour) Saturation() float64 { return c.s }
func (c *Colour) Value() float64      { return c.v }

// RGB returns the cached triple for the current HSV state.
func (c *Colour) RGB() RGB { return c.rgb }

// Set replaces the whole triple and recomputes the cache.
func (c *Colour) Set(h, s, v float64) {
	c.h, c.s, c.v = h, s, v
	r, g, b := ToRGB(h, s, v)
	c.rgb = RGB{R: r, G: g, B: b}
}

func (c *Colour) SetHue(h float64)        { c.Set(h, c.s, c.v) }
func (c *Colour) SetSaturation(s float64) { c.Set(c.h, s, c.v) }
func (c *Colour) SetValue(v float64)      { c.Set(c.h, c.s, v) }

func channel(x float64) int {
	return int(math.Round(x * 255))
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
