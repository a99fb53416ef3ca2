package texture

import (
	"math"

	"github.com/chewxy/math32"

	"github.com/df07/go-texture-pipeline/pkg/core"
)

// Checker is a procedural 3D checkerboard alternating between two colors
type Checker struct {
	even, odd core.ColorA
	scale     float64 // cells per unit length
}

// NewChecker creates a checkerboard with the given cell frequency.
// A non-positive scale falls back to one cell per unit.
func NewChecker(even, odd core.ColorA, scale float64) *Checker {
	if scale <= 0 {
		scale = 1
	}
	return &Checker{even: even, odd: odd, scale: scale}
}

// Color returns the cell color containing p
func (c *Checker) Color(p core.Vec3, fromPostprocessed bool) core.ColorA {
	ix := int64(math.Floor(p.X * c.scale))
	iy := int64(math.Floor(p.Y * c.scale))
	iz := int64(math.Floor(p.Z * c.scale))
	if (ix+iy+iz)&1 == 0 {
		return c.even
	}
	return c.odd
}

// Blend is a linear ramp along X, from "from" at x=-1 to "to" at x=1.
// It is flat in Y and Z.
type Blend struct {
	from, to       core.ColorA
	fromBri, toBri float32
}

// NewBlend creates a linear ramp between two colors
func NewBlend(from, to core.ColorA) *Blend {
	return &Blend{
		from:    from,
		to:      to,
		fromBri: from.Brightness(),
		toBri:   to.Brightness(),
	}
}

func (b *Blend) ramp(p core.Vec3) float32 {
	t := float32((p.X + 1) * 0.5)
	return math32.Max(0, math32.Min(1, t))
}

// Color interpolates between the two ramp colors
func (b *Blend) Color(p core.Vec3, fromPostprocessed bool) core.ColorA {
	return b.from.Lerp(b.to, b.ramp(p))
}

// RawFloat interpolates the precomputed endpoint brightness, which equals the
// brightness of Color since the reduction is linear.
func (b *Blend) RawFloat(p core.Vec3) float32 {
	t := b.ramp(p)
	return b.fromBri*(1-t) + b.toBri*t
}

func (b *Blend) IsThreeD() bool {
	return false
}
