package mapping

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df07/go-texture-pipeline/pkg/core"
)

const tolerance = 1e-9

func TestAngMap(t *testing.T) {
	tests := []struct {
		name  string
		dir   core.Vec3
		wantU float64
		wantV float64
	}{
		{"Pole up", core.NewVec3(0, 1, 0), 0, 0},
		{"Pole down", core.NewVec3(0, -1, 0), 0, 0},
		{"Equator +X", core.NewVec3(1, 0, 0), 0.5, 0},
		{"Equator +Z", core.NewVec3(0, 0, 1), 0, 0.5},
		{"Equator -X", core.NewVec3(-1, 0, 0), -0.5, 0},
		{"Back hemisphere", core.NewVec3(0, -math.Sqrt2/2, math.Sqrt2/2), 0, 0.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, v := AngMap(tt.dir)
			assert.InDelta(t, tt.wantU, u, tolerance)
			assert.InDelta(t, tt.wantV, v, tolerance)
		})
	}
}

func TestTubeMap(t *testing.T) {
	tests := []struct {
		name  string
		dir   core.Vec3
		wantU float64
		wantV float64
	}{
		{"Axis +Z", core.NewVec3(0, 0, 1), 0, 0},
		{"Axis -Z", core.NewVec3(0, 0, -1), 0, 1},
		{"+Y", core.NewVec3(0, 1, 0), 0.5, 0.5},
		{"+X", core.NewVec3(1, 0, 0), 0.25, 0.5},
		{"-X", core.NewVec3(-1, 0, 0), 0.75, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, v := TubeMap(tt.dir)
			assert.InDelta(t, tt.wantU, u, tolerance)
			assert.InDelta(t, tt.wantV, v, tolerance)
		})
	}
}

func TestSphereMap_Poles(t *testing.T) {
	u, v := SphereMap(core.NewVec3(0, 0, -1))
	assert.Equal(t, 0.0, u)
	assert.InDelta(t, 0.0, v, tolerance)

	u, v = SphereMap(core.NewVec3(0, 0, 1))
	assert.Equal(t, 0.0, u, "longitude is undefined on the pole and must default to 0")
	assert.InDelta(t, 1.0, v, tolerance)

	u, v = SphereMap(core.Vec3{})
	assert.Equal(t, 0.0, u)
	assert.Equal(t, 0.0, v)
}

func TestSphereMap_Equator(t *testing.T) {
	tests := []struct {
		name  string
		dir   core.Vec3
		wantU float64
	}{
		{"-Y", core.NewVec3(0, -1, 0), 0.25},
		{"-X", core.NewVec3(-1, 0, 0), 0.5},
		{"+Y", core.NewVec3(0, 1, 0), 0.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, v := SphereMap(tt.dir)
			assert.InDelta(t, tt.wantU, u, tolerance)
			assert.InDelta(t, 0.5, v, tolerance)
		})
	}
}

func TestSphereMapRoundTrip(t *testing.T) {
	dirs := []core.Vec3{
		core.NewVec3(1, 1, 1),
		core.NewVec3(-1, 2, 0.5),
		core.NewVec3(0.3, -0.8, -0.2),
		core.NewVec3(-0.9, -0.1, 0.4),
		core.NewVec3(0, 1, 0),
		core.NewVec3(-1, 0, 0),
		core.NewVec3(0.2, 0.1, -0.95),
	}

	for _, d := range dirs {
		dir := d.Normalize()
		u, v := SphereMap(dir)
		got := InvSphereMap(u, v)
		assert.InDelta(t, dir.X, got.X, 1e-9, "dir %v", dir)
		assert.InDelta(t, dir.Y, got.Y, 1e-9, "dir %v", dir)
		assert.InDelta(t, dir.Z, got.Z, 1e-9, "dir %v", dir)
	}
}

func TestInvSphereMap_UnitLength(t *testing.T) {
	for _, u := range []float64{0, 0.1, 0.33, 0.5, 0.9} {
		for _, v := range []float64{0, 0.25, 0.5, 0.75, 1} {
			assert.InDelta(t, 1.0, InvSphereMap(u, v).Length(), 1e-12)
		}
	}
}

func TestMappingsNeverProduceNaN(t *testing.T) {
	dirs := []core.Vec3{
		{},
		core.NewVec3(0, 1, 0),
		core.NewVec3(0, 0, 1),
		core.NewVec3(1, 0, 0),
		core.NewVec3(1+1e-12, 0, 0),
	}
	for _, dir := range dirs {
		for _, k := range []Kind{Sphere, Angular, Tube} {
			u, v := k.Project(dir)
			assert.False(t, math.IsNaN(u) || math.IsInf(u, 0), "%s u for %v", k, dir)
			assert.False(t, math.IsNaN(v) || math.IsInf(v, 0), "%s v for %v", k, dir)
		}
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
	}{
		{"sphere", Sphere},
		{"Angular", Angular},
		{" tube ", Tube},
		{"probe", Angular},
	}
	for _, tt := range tests {
		k, err := ParseKind(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, k)
		if tt.in != "probe" {
			assert.Equal(t, k, mustParse(t, k.String()))
		}
	}

	_, err := ParseKind("cube")
	assert.True(t, errors.Is(err, ErrUnknownKind))
}

func mustParse(t *testing.T, s string) Kind {
	t.Helper()
	k, err := ParseKind(s)
	require.NoError(t, err)
	return k
}

func TestKind_TexturePoint(t *testing.T) {
	dir := core.NewVec3(-1, 0, 0)

	p := Sphere.TexturePoint(dir)
	assert.InDelta(t, 0.0, p.X, tolerance) // u = 0.5 re-centred
	assert.InDelta(t, 0.0, p.Y, tolerance)
	assert.Equal(t, 0.0, p.Z)

	p = Angular.TexturePoint(dir)
	assert.InDelta(t, -0.5, p.X, tolerance)
	assert.InDelta(t, 0.0, p.Y, tolerance)
}
