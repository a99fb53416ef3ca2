package texture

import (
	"image"
	"math"

	"github.com/anthonynsimon/bild/blur"
	"github.com/chewxy/math32"

	"github.com/df07/go-texture-pipeline/pkg/core"
)

// Interpolation selects how ImageTexture reconstructs colors between texels
type Interpolation int

const (
	InterpolationNearest Interpolation = iota
	InterpolationBilinear
)

func (i Interpolation) String() string {
	switch i {
	case InterpolationBilinear:
		return "bilinear"
	default:
		return "none"
	}
}

// ImageTexture provides color from a 2D grid of texels.
// Continuous lookups take points in [-1,1]^2 with +Y up and repeat outside that range.
type ImageTexture struct {
	Width         int
	Height        int
	Pixels        []core.ColorA // Row-major: Pixels[y*Width + x], row 0 at the top
	Interpolation Interpolation
	Normalmap     bool

	postprocessed []core.ColorA // nil until PostProcessedCreate or PostProcessedBlur runs
}

// NewImageTexture creates a new image texture
func NewImageTexture(width, height int, pixels []core.ColorA) *ImageTexture {
	return &ImageTexture{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

func (t *ImageTexture) IsThreeD() bool    { return false }
func (t *ImageTexture) IsNormalmap() bool { return t.Normalmap }

// Resolution returns the texel counts; the Z extent of a 2D image is 1
func (t *ImageTexture) Resolution() (x, y, z int) {
	return t.Width, t.Height, 1
}

// InterpolationStep is the size of one texel in normalized coordinates along the longest side
func (t *ImageTexture) InterpolationStep() float32 {
	n := max(t.Width, t.Height)
	if n == 0 {
		return 0
	}
	return 1 / float32(n)
}

func (t *ImageTexture) source(fromPostprocessed bool) []core.ColorA {
	if fromPostprocessed && t.postprocessed != nil {
		return t.postprocessed
	}
	return t.Pixels
}

// ColorAt returns the texel at (x, y), clamped to the image bounds. z is ignored.
func (t *ImageTexture) ColorAt(x, y, z int, fromPostprocessed bool) core.ColorA {
	if t.Width == 0 || t.Height == 0 {
		return core.ColorA{}
	}
	x = max(0, min(t.Width-1, x))
	y = max(0, min(t.Height-1, y))
	return t.source(fromPostprocessed)[y*t.Width+x]
}

// Color samples the texture at p using the configured interpolation.
// A point with a NaN or infinite coordinate yields the zero color.
func (t *ImageTexture) Color(p core.Vec3, fromPostprocessed bool) core.ColorA {
	if t.Width == 0 || t.Height == 0 {
		return core.ColorA{}
	}

	if !finite(p.X) || !finite(p.Y) {
		return core.ColorA{}
	}
	u := wrap01((p.X + 1) * 0.5)
	v := wrap01((p.Y + 1) * 0.5)
	pixels := t.source(fromPostprocessed)

	if t.Interpolation == InterpolationBilinear {
		return t.bilinear(pixels, u, v)
	}

	// V=0 is bottom, V=1 is top (flip V for image coordinates where origin is top-left)
	x := min(int(u*float64(t.Width)), t.Width-1)
	y := min(int((1.0-v)*float64(t.Height)), t.Height-1)
	return pixels[y*t.Width+x]
}

func (t *ImageTexture) bilinear(pixels []core.ColorA, u, v float64) core.ColorA {
	fx := u*float64(t.Width) - 0.5
	fy := (1.0-v)*float64(t.Height) - 0.5
	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	dx := float32(fx - float64(x0))
	dy := float32(fy - float64(y0))

	x1 := wrapIndex(x0+1, t.Width)
	y1 := wrapIndex(y0+1, t.Height)
	x0 = wrapIndex(x0, t.Width)
	y0 = wrapIndex(y0, t.Height)

	top := pixels[y0*t.Width+x0].Lerp(pixels[y0*t.Width+x1], dx)
	bottom := pixels[y1*t.Width+x0].Lerp(pixels[y1*t.Width+x1], dx)
	return top.Lerp(bottom, dy)
}

// PostProcessedCreate caches an unfiltered copy of the texels
func (t *ImageTexture) PostProcessedCreate() {
	t.postprocessed = append([]core.ColorA(nil), t.Pixels...)
}

// PostProcessedBlur caches a Gaussian-blurred copy of the texels. The blur
// radius is blurFactor times half the longest side, in pixels; a
// non-positive factor caches an unfiltered copy.
func (t *ImageTexture) PostProcessedBlur(blurFactor float32) {
	radius := float64(blurFactor) * float64(max(t.Width, t.Height)) * 0.5
	if radius <= 0 || t.Width == 0 || t.Height == 0 {
		t.PostProcessedCreate()
		return
	}

	// The blur works on 8-bit channels, so values are normalized by the peak
	// first to keep HDR content from being clipped.
	peak := float32(1)
	for _, c := range t.Pixels {
		peak = math32.Max(peak, math32.Max(c.R, math32.Max(c.G, c.B)))
	}

	src := image.NewNRGBA64(image.Rect(0, 0, t.Width, t.Height))
	for y := 0; y < t.Height; y++ {
		for x := 0; x < t.Width; x++ {
			c := t.Pixels[y*t.Width+x]
			scaled := core.ColorA{R: c.R / peak, G: c.G / peak, B: c.B / peak, A: c.A}
			src.SetNRGBA64(x, y, scaled.RGBA64())
		}
	}

	blurred := blur.Gaussian(src, radius)

	out := make([]core.ColorA, len(t.Pixels))
	for y := 0; y < t.Height; y++ {
		for x := 0; x < t.Width; x++ {
			c := core.ColorAFromColor(blurred.At(x, y))
			out[y*t.Width+x] = core.ColorA{R: c.R * peak, G: c.G * peak, B: c.B * peak, A: c.A}
		}
	}
	t.postprocessed = out
}

// wrap01 keeps the fractional part of x in [0,1). Non-finite input maps to 0.
func wrap01(x float64) float64 {
	if !finite(x) {
		return 0
	}
	x -= math.Floor(x)
	if x >= 1 {
		x = 0
	}
	return x
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

func wrapIndex(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
