// Package texture defines the texture evaluation contract and the
// per-sample adjustment pipeline applied uniformly to every variant.
//
// A variant only has to implement Texture. Everything else is an opt-in
// capability discovered by interface assertion; the package-level
// functions below supply the defaults for variants that do not opt in.
package texture

import (
	"github.com/df07/go-texture-pipeline/pkg/core"
)

// Texture is the one capability every variant must provide: the raw color
// at a continuous point. For 2D variants p.Z is ignored.
type Texture interface {
	Color(p core.Vec3, fromPostprocessed bool) core.ColorA
}

// Discrete is implemented by grid-backed textures addressed by integer coordinates
type Discrete interface {
	Texture
	ColorAt(x, y, z int, fromPostprocessed bool) core.ColorA
	// Resolution returns the number of samples along each axis
	Resolution() (x, y, z int)
}

// Dimensional lets inherently 2D variants report that the third coordinate is unused
type Dimensional interface {
	IsThreeD() bool
}

// NormalMap marks variants whose channels encode a perturbation vector rather than a color
type NormalMap interface {
	IsNormalmap() bool
}

// RawSampler is implemented by variants that distinguish a pre-adjustment raw
// value from the value returned by Color.
type RawSampler interface {
	RawColor(p core.Vec3, fromPostprocessed bool) core.ColorA
}

// RawDiscrete is the integer-coordinate counterpart of RawSampler
type RawDiscrete interface {
	RawColorAt(x, y, z int, fromPostprocessed bool) core.ColorA
}

// FloatSampler lets a variant produce its raw scalar directly. The result
// must equal RawColor(p, false).Brightness().
type FloatSampler interface {
	RawFloat(p core.Vec3) float32
}

// DiscreteFloatSampler is the integer-coordinate counterpart of FloatSampler
type DiscreteFloatSampler interface {
	RawFloatAt(x, y, z int) float32
}

// Interpolated is implemented by variants with a defined interpolation step
type Interpolated interface {
	InterpolationStep() float32
}

// PostProcessable is implemented by variants that keep a precomputed filtered
// cache. Once PostProcessedCreate has run, lookups with fromPostprocessed set
// must read from that cache. Both hooks must complete before concurrent
// sampling starts.
type PostProcessable interface {
	PostProcessedCreate()
	PostProcessedBlur(blurFactor float32)
}

// IsDiscrete reports whether t is backed by a sample grid
func IsDiscrete(t Texture) bool {
	_, ok := t.(Discrete)
	return ok
}

// IsThreeD reports whether all three point coordinates are meaningful for t
func IsThreeD(t Texture) bool {
	if d, ok := t.(Dimensional); ok {
		return d.IsThreeD()
	}
	return true
}

// IsNormalmap reports whether t encodes normal perturbations
func IsNormalmap(t Texture) bool {
	if n, ok := t.(NormalMap); ok {
		return n.IsNormalmap()
	}
	return false
}

// ColorAt samples t at integer grid coordinates. Variants without grid
// addressing yield a fully transparent black.
func ColorAt(t Texture, x, y, z int, fromPostprocessed bool) core.ColorA {
	if d, ok := t.(Discrete); ok {
		return d.ColorAt(x, y, z, fromPostprocessed)
	}
	return core.ColorA{}
}

// RawColor returns the pre-adjustment color at p
func RawColor(t Texture, p core.Vec3, fromPostprocessed bool) core.ColorA {
	if r, ok := t.(RawSampler); ok {
		return r.RawColor(p, fromPostprocessed)
	}
	return t.Color(p, fromPostprocessed)
}

// RawColorAt returns the pre-adjustment color at integer grid coordinates
func RawColorAt(t Texture, x, y, z int, fromPostprocessed bool) core.ColorA {
	if r, ok := t.(RawDiscrete); ok {
		return r.RawColorAt(x, y, z, fromPostprocessed)
	}
	return ColorAt(t, x, y, z, fromPostprocessed)
}

// RawFloat returns the pre-adjustment scalar at p
func RawFloat(t Texture, p core.Vec3) float32 {
	if f, ok := t.(FloatSampler); ok {
		return f.RawFloat(p)
	}
	return RawColor(t, p, false).Brightness()
}

// RawFloatAt returns the pre-adjustment scalar at integer grid coordinates
func RawFloatAt(t Texture, x, y, z int) float32 {
	if f, ok := t.(DiscreteFloatSampler); ok {
		return f.RawFloatAt(x, y, z)
	}
	return RawColorAt(t, x, y, z, false).Brightness()
}

// Resolution returns the grid extents of t, or zeros for continuous variants
func Resolution(t Texture) (x, y, z int) {
	if d, ok := t.(Discrete); ok {
		return d.Resolution()
	}
	return 0, 0, 0
}

// InterpolationStep returns the interpolation step of t, or 0 when undefined
func InterpolationStep(t Texture) float32 {
	if i, ok := t.(Interpolated); ok {
		return i.InterpolationStep()
	}
	return 0
}

// PostProcessedCreate builds the post-processed cache of t if it keeps one
func PostProcessedCreate(t Texture) {
	if p, ok := t.(PostProcessable); ok {
		p.PostProcessedCreate()
	}
}

// PostProcessedBlur builds a blurred post-processed cache of t if it keeps one
func PostProcessedBlur(t Texture, blurFactor float32) {
	if p, ok := t.(PostProcessable); ok {
		p.PostProcessedBlur(blurFactor)
	}
}
