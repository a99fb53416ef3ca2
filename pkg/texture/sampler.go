package texture

import (
	"github.com/df07/go-texture-pipeline/pkg/core"
)

// Sampler binds a texture to its adjustments. It is the handle materials and
// render workers query; it never changes after construction, so any number
// of goroutines may sample it concurrently.
type Sampler struct {
	texture     Texture
	adjustments *Adjustments
	logger      core.Logger
}

// NewSampler creates a sampler for t. The adjustment trace is written to
// logger when params deviate from identity; a nil logger disables it.
func NewSampler(t Texture, params AdjustmentParams, logger core.Logger) *Sampler {
	if logger == nil {
		logger = core.NopLogger{}
	}
	s := &Sampler{
		texture:     t,
		adjustments: NewAdjustments(params),
		logger:      logger,
	}
	s.adjustments.Trace(logger)
	return s
}

// WithAdjustments returns a new sampler over the same texture with params
// replacing every adjustment setting. Calling it repeatedly with the same
// params yields equivalent samplers.
func (s *Sampler) WithAdjustments(params AdjustmentParams) *Sampler {
	return NewSampler(s.texture, params, s.logger)
}

// Texture returns the underlying variant
func (s *Sampler) Texture() Texture {
	return s.texture
}

// Adjustments returns the shared adjustment settings
func (s *Sampler) Adjustments() *Adjustments {
	return s.adjustments
}

func (s *Sampler) IsDiscrete() bool  { return IsDiscrete(s.texture) }
func (s *Sampler) IsThreeD() bool    { return IsThreeD(s.texture) }
func (s *Sampler) IsNormalmap() bool { return IsNormalmap(s.texture) }

// Color returns the adjusted color at p
func (s *Sampler) Color(p core.Vec3, fromPostprocessed bool) core.ColorA {
	return s.adjustments.ApplyColor(RawColor(s.texture, p, fromPostprocessed))
}

// ColorAt returns the adjusted color at integer grid coordinates
func (s *Sampler) ColorAt(x, y, z int, fromPostprocessed bool) core.ColorA {
	return s.adjustments.ApplyColor(RawColorAt(s.texture, x, y, z, fromPostprocessed))
}

// RawColor returns the color at p before adjustments
func (s *Sampler) RawColor(p core.Vec3, fromPostprocessed bool) core.ColorA {
	return RawColor(s.texture, p, fromPostprocessed)
}

// RawColorAt returns the color at integer grid coordinates before adjustments
func (s *Sampler) RawColorAt(x, y, z int, fromPostprocessed bool) core.ColorA {
	return RawColorAt(s.texture, x, y, z, fromPostprocessed)
}

// Float returns the adjusted scalar at p
func (s *Sampler) Float(p core.Vec3) float32 {
	return s.adjustments.ApplyFloat(RawFloat(s.texture, p))
}

// FloatAt returns the adjusted scalar at integer grid coordinates
func (s *Sampler) FloatAt(x, y, z int) float32 {
	return s.adjustments.ApplyFloat(RawFloatAt(s.texture, x, y, z))
}

// GridSize reports the grid extents of the underlying texture, zeros when continuous
func (s *Sampler) GridSize() (x, y, z int) {
	return Resolution(s.texture)
}

func (s *Sampler) InterpolationStep() float32 {
	return InterpolationStep(s.texture)
}

// PostProcessedCreate forwards to the texture. Call it before sampling starts.
func (s *Sampler) PostProcessedCreate() {
	PostProcessedCreate(s.texture)
}

// PostProcessedBlur forwards to the texture. Call it before sampling starts.
func (s *Sampler) PostProcessedBlur(blurFactor float32) {
	PostProcessedBlur(s.texture, blurFactor)
}
