package texture

import (
	"github.com/df07/go-texture-pipeline/pkg/core"
	"github.com/df07/go-texture-pipeline/pkg/mapping"
)

// Environment is a direction-indexed texture. Lookups take a unit direction,
// project it to 2D with the configured mapping and sample the wrapped 2D
// texture at the resulting point.
type Environment struct {
	source     Texture
	projection mapping.Kind
}

// NewEnvironment wraps a 2D texture for direction lookups
func NewEnvironment(source Texture, projection mapping.Kind) *Environment {
	return &Environment{source: source, projection: projection}
}

// Projection returns the mapping used for lookups
func (e *Environment) Projection() mapping.Kind {
	return e.projection
}

// Source returns the wrapped 2D texture
func (e *Environment) Source() Texture {
	return e.source
}

// Color returns the color seen along dir. dir must be normalized.
func (e *Environment) Color(dir core.Vec3, fromPostprocessed bool) core.ColorA {
	return e.source.Color(e.projection.TexturePoint(dir), fromPostprocessed)
}

// RawColor returns the pre-adjustment color seen along dir
func (e *Environment) RawColor(dir core.Vec3, fromPostprocessed bool) core.ColorA {
	return RawColor(e.source, e.projection.TexturePoint(dir), fromPostprocessed)
}

// RawFloat returns the pre-adjustment scalar seen along dir
func (e *Environment) RawFloat(dir core.Vec3) float32 {
	return RawFloat(e.source, e.projection.TexturePoint(dir))
}

func (e *Environment) IsNormalmap() bool {
	return IsNormalmap(e.source)
}

func (e *Environment) InterpolationStep() float32 {
	return InterpolationStep(e.source)
}

func (e *Environment) PostProcessedCreate() {
	PostProcessedCreate(e.source)
}

func (e *Environment) PostProcessedBlur(blurFactor float32) {
	PostProcessedBlur(e.source, blurFactor)
}
