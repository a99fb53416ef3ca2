package core

import (
	"image/color"

	"github.com/chewxy/math32"
	"github.com/lucasb-eyer/go-colorful"
)

// ColorA is a linear RGB color with alpha. Channels are not bounded;
// texture adjustments may push them outside [0,1] unless clamping is on.
type ColorA struct {
	R, G, B, A float32
}

// NewColorA creates a new ColorA
func NewColorA(r, g, b, a float32) ColorA {
	return ColorA{R: r, G: g, B: b, A: a}
}

// Gray returns an opaque color with all three channels set to v
func Gray(v float32) ColorA {
	return ColorA{R: v, G: v, B: v, A: 1}
}

// ClampRGB01 returns the color with R, G and B clamped to [0,1]. Alpha is left alone.
func (c ColorA) ClampRGB01() ColorA {
	return ColorA{
		R: clamp01(c.R),
		G: clamp01(c.G),
		B: clamp01(c.B),
		A: c.A,
	}
}

func clamp01(v float32) float32 {
	return math32.Max(0, math32.Min(1, v))
}

// Brightness reduces the color to a scalar using Rec. 709 luma weights
func (c ColorA) Brightness() float32 {
	return 0.2126*c.R + 0.7152*c.G + 0.0722*c.B
}

// Add returns the channel-wise sum, alpha included
func (c ColorA) Add(other ColorA) ColorA {
	return ColorA{c.R + other.R, c.G + other.G, c.B + other.B, c.A + other.A}
}

// Scale multiplies every channel, alpha included, by s
func (c ColorA) Scale(s float32) ColorA {
	return ColorA{c.R * s, c.G * s, c.B * s, c.A * s}
}

// Lerp linearly interpolates from c to other by t
func (c ColorA) Lerp(other ColorA, t float32) ColorA {
	return c.Scale(1 - t).Add(other.Scale(t))
}

// Equals reports whether all four channels are within tolerance
func (c ColorA) Equals(other ColorA, tolerance float32) bool {
	return math32.Abs(c.R-other.R) <= tolerance &&
		math32.Abs(c.G-other.G) <= tolerance &&
		math32.Abs(c.B-other.B) <= tolerance &&
		math32.Abs(c.A-other.A) <= tolerance
}

// HSV converts the RGB part to hue (degrees, [0,360)), saturation and value.
// Out-of-gamut input is not rejected: when every channel is negative, v is the
// largest (least negative) channel and s = (max-min)/v comes out negative.
// Scaling that s and rebuilding with FromHSV still keeps v and moves the other
// channels toward it, as for in-gamut colors.
func (c ColorA) HSV() (h, s, v float32) {
	hh, ss, vv := colorful.Color{R: float64(c.R), G: float64(c.G), B: float64(c.B)}.Hsv()
	return float32(hh), float32(ss), float32(vv)
}

// FromHSV returns a color with RGB rebuilt from h, s, v and the alpha of c
func (c ColorA) FromHSV(h, s, v float32) ColorA {
	rgb := colorful.Hsv(float64(h), float64(s), float64(v))
	return ColorA{R: float32(rgb.R), G: float32(rgb.G), B: float32(rgb.B), A: c.A}
}

// RGBA64 converts to a 16-bit non-premultiplied color, clamping every channel
func (c ColorA) RGBA64() color.NRGBA64 {
	return color.NRGBA64{
		R: to16(c.R),
		G: to16(c.G),
		B: to16(c.B),
		A: to16(c.A),
	}
}

func to16(v float32) uint16 {
	return uint16(clamp01(v)*65535 + 0.5)
}

// ColorAFromColor converts any image/color value to a ColorA
func ColorAFromColor(c color.Color) ColorA {
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return ColorA{
		R: float32(n.R) / 65535,
		G: float32(n.G) / 65535,
		B: float32(n.B) / 65535,
		A: float32(n.A) / 65535,
	}
}
