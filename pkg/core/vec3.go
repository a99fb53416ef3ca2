package core

import (
	"math"
)

// Vec3 represents a 3D point or direction
type Vec3 struct {
	X, Y, Z float64
}

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Length returns the magnitude of the vector
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns a unit vector in the same direction
func (v Vec3) Normalize() Vec3 {
	length := v.Length()
	if length == 0 {
		return Vec3{0, 0, 0}
	}
	return Vec3{v.X / length, v.Y / length, v.Z / length}
}

// Vec2 represents a 2D texture coordinate
type Vec2 struct {
	X, Y float64
}

// NewVec2 creates a new Vec2
func NewVec2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Centered maps a coordinate from [0,1] to [-1,1]
func (v Vec2) Centered() Vec2 {
	return Vec2{X: 2*v.X - 1, Y: 2*v.Y - 1}
}

// Point lifts the coordinate to a 3D point with Z = 0
func (v Vec2) Point() Vec3 {
	return Vec3{X: v.X, Y: v.Y}
}
