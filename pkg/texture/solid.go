package texture

import (
	"github.com/df07/go-texture-pipeline/pkg/core"
)

// Solid provides a uniform color
type Solid struct {
	color core.ColorA
}

// NewSolid creates a new solid color texture
func NewSolid(color core.ColorA) *Solid {
	return &Solid{color: color}
}

// Color returns the solid color regardless of position
func (s *Solid) Color(p core.Vec3, fromPostprocessed bool) core.ColorA {
	return s.color
}

// IsThreeD is false: a constant does not depend on any coordinate
func (s *Solid) IsThreeD() bool {
	return false
}
