// Package mapping converts unit directions to 2D texture coordinates for
// direction-indexed (environment) textures. None of the functions normalize
// their input; callers pass unit vectors.
package mapping

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/df07/go-texture-pipeline/pkg/core"
)

// AngMap projects a direction onto the angular (light probe) disk.
// The result lies in [-1,1]; a direction along the polar (Y) axis maps to (0,0).
func AngMap(p core.Vec3) (u, v float64) {
	r := p.X*p.X + p.Z*p.Z
	if r <= 0 {
		return 0, 0
	}
	phiRatio := math.Acos(clampUnit(p.Y)) / math.Pi // [0,1]
	r = phiRatio / math.Sqrt(r)
	return p.X * r, p.Z * r
}

// TubeMap is a cylindrical projection around the Z axis.
// v is a linear remap of Z and u the mirrored angle in the XY plane, both in [0,1].
func TubeMap(p core.Vec3) (u, v float64) {
	v = 1 - (p.Z+1)*0.5
	d := p.X*p.X + p.Y*p.Y
	if d > 0 {
		d = 1 / math.Sqrt(d)
		u = 0.5 * (1 - math.Atan2(p.X*d, p.Y*d)/math.Pi)
	}
	return u, v
}

// SphereMap maps a direction to longitude/latitude in [0,1].
// u is 0 when the direction lies on the Z axis and v is 0 for the zero vector.
func SphereMap(p core.Vec3) (u, v float64) {
	rPhi := p.X*p.X + p.Y*p.Y
	rTheta := rPhi + p.Z*p.Z

	if rPhi > 0 {
		phi := math.Acos(clampUnit(p.X / math.Sqrt(rPhi)))
		if p.Y < 0 {
			phi = 2*math.Pi - phi
		}
		u = 1 - phi/(2*math.Pi)
	}
	if rTheta > 0 {
		v = 1 - math.Acos(clampUnit(p.Z/math.Sqrt(rTheta)))/math.Pi
	}
	return u, v
}

// InvSphereMap is the inverse of SphereMap: it rebuilds the unit direction for (u,v) in [0,1].
func InvSphereMap(u, v float64) core.Vec3 {
	theta := v * math.Pi
	phi := -(u * 2 * math.Pi)
	sinTheta, cosTheta := math.Sincos(theta)
	sinPhi, cosPhi := math.Sincos(phi)
	return core.Vec3{
		X: sinTheta * cosPhi,
		Y: sinTheta * sinPhi,
		Z: -cosTheta,
	}
}

// clampUnit keeps acos arguments inside [-1,1] when rounding overshoots.
func clampUnit(x float64) float64 {
	return math.Max(-1, math.Min(1, x))
}

// ErrUnknownKind is returned by ParseKind for unrecognized mapping names
var ErrUnknownKind = errors.New("unknown projection mapping")

// Kind selects one of the forward projections
type Kind int

const (
	Sphere Kind = iota
	Angular
	Tube
)

var kindNames = map[Kind]string{
	Sphere:  "sphere",
	Angular: "angular",
	Tube:    "tube",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind resolves a mapping name such as "sphere", "angular" or "tube"
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	if name == "angmap" || name == "probe" {
		return Angular, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Project applies the forward mapping selected by k
func (k Kind) Project(dir core.Vec3) (u, v float64) {
	switch k {
	case Angular:
		return AngMap(dir)
	case Tube:
		return TubeMap(dir)
	default:
		return SphereMap(dir)
	}
}

// Centered reports whether Project already yields coordinates in [-1,1].
// The other mappings yield [0,1].
func (k Kind) Centered() bool {
	return k == Angular
}

// TexturePoint projects dir and returns the point used to look up a 2D
// texture whose domain is [-1,1]^2.
func (k Kind) TexturePoint(dir core.Vec3) core.Vec3 {
	uv := core.NewVec2(k.Project(dir))
	if !k.Centered() {
		uv = uv.Centered()
	}
	return uv.Point()
}
