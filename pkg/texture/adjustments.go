package texture

import (
	"fmt"
	"strings"

	"github.com/chewxy/math32"

	"github.com/df07/go-texture-pipeline/pkg/core"
)

// AdjustmentParams holds the user-facing adjustment settings.
// The zero value is NOT identity; start from DefaultAdjustmentParams.
type AdjustmentParams struct {
	Intensity   float32 `toml:"intensity"`
	Contrast    float32 `toml:"contrast"`
	Saturation  float32 `toml:"saturation"`
	Clamp       bool    `toml:"clamp"`
	FactorRed   float32 `toml:"factor_red"`
	FactorGreen float32 `toml:"factor_green"`
	FactorBlue  float32 `toml:"factor_blue"`
}

// DefaultAdjustmentParams returns the identity settings
func DefaultAdjustmentParams() AdjustmentParams {
	return AdjustmentParams{
		Intensity:   1,
		Contrast:    1,
		Saturation:  1,
		FactorRed:   1,
		FactorGreen: 1,
		FactorBlue:  1,
	}
}

// IsIdentity reports whether every setting is at its identity value
func (p AdjustmentParams) IsIdentity() bool {
	return p == DefaultAdjustmentParams()
}

// Adjustments is an immutable, validated set of adjustment settings.
// It is built once during setup and shared read-only by all samplers.
// A nil *Adjustments behaves as identity.
type Adjustments struct {
	params AdjustmentParams
	active bool
}

// NewAdjustments builds adjustments from p. Whether any work is needed at
// sample time is derived here and cannot change afterwards.
func NewAdjustments(p AdjustmentParams) *Adjustments {
	return &Adjustments{params: p, active: !p.IsIdentity()}
}

// Params returns a copy of the settings
func (a *Adjustments) Params() AdjustmentParams {
	if a == nil {
		return DefaultAdjustmentParams()
	}
	return a.params
}

// Active reports whether any setting deviates from identity
func (a *Adjustments) Active() bool {
	return a != nil && a.active
}

// String lists only the settings that differ from identity, e.g.
// " intensity=1.2 clamping=true". It is empty for identity adjustments.
func (a *Adjustments) String() string {
	if !a.Active() {
		return ""
	}
	p := a.params
	var sb strings.Builder
	field := func(name string, v float32) {
		if v != 1 {
			fmt.Fprintf(&sb, " %s=%g", name, v)
		}
	}
	field("intensity", p.Intensity)
	field("contrast", p.Contrast)
	field("saturation", p.Saturation)
	field("factor_red", p.FactorRed)
	field("factor_green", p.FactorGreen)
	field("factor_blue", p.FactorBlue)
	if p.Clamp {
		sb.WriteString(" clamping=true")
	}
	return sb.String()
}

// Trace writes the non-identity settings to logger. Nothing is written for identity adjustments.
func (a *Adjustments) Trace(logger core.Logger) {
	if logger == nil || !a.Active() {
		return
	}
	logger.Printf("Texture: modified texture adjustment values:%s\n", a.String())
}

// ApplyColor adjusts a raw color. The steps run in a fixed order:
// contrast/intensity, per-channel factors, clamp, then saturation followed
// by a second clamp since the HSV round trip can leave [0,1] again.
func (a *Adjustments) ApplyColor(raw core.ColorA) core.ColorA {
	if !a.Active() {
		return raw
	}
	p := a.params
	ret := raw

	if p.Intensity != 1 || p.Contrast != 1 {
		ret.R = (raw.R-0.5)*p.Contrast + p.Intensity - 0.5
		ret.G = (raw.G-0.5)*p.Contrast + p.Intensity - 0.5
		ret.B = (raw.B-0.5)*p.Contrast + p.Intensity - 0.5
	}

	if p.FactorRed != 1 {
		ret.R *= p.FactorRed
	}
	if p.FactorGreen != 1 {
		ret.G *= p.FactorGreen
	}
	if p.FactorBlue != 1 {
		ret.B *= p.FactorBlue
	}

	if p.Clamp {
		ret = ret.ClampRGB01()
	}

	if p.Saturation != 1 {
		h, s, v := ret.HSV()
		ret = ret.FromHSV(h, s*p.Saturation, v)
		if p.Clamp {
			ret = ret.ClampRGB01()
		}
	}

	return ret
}

// ApplyFloat adjusts a raw scalar. Only intensity, contrast and clamp apply;
// per-channel factors and saturation have no meaning for a scalar. Clamping
// alone does not trigger any work.
func (a *Adjustments) ApplyFloat(raw float32) float32 {
	p := a.Params()
	if p.Intensity == 1 && p.Contrast == 1 {
		return raw
	}

	ret := (raw-0.5)*p.Contrast + p.Intensity - 0.5
	if p.Clamp {
		ret = math32.Max(0, math32.Min(1, ret))
	}
	return ret
}
