// Package core provides fundamental types and utilities for the helix-drop game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect represents a 2D screen-space box used by the renderer.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Vec3 is a float64 3D vector in world units. Y is up.
type Vec3 struct {
	X, Y, Z float64
}

// V3 is shorthand for constructing a Vec3.
func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v * s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// LenSq returns the squared length of v.
func (v Vec3) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// RotateY rotates v about the Y axis by angle radians.
// Positive angles follow the right-handed convention (X toward -Z).
func (v Vec3) RotateY(angle float64) Vec3 {
	sin, cos := math.Sincos(angle)
	return Vec3{
		X: v.X*cos + v.Z*sin,
		Y: v.Y,
		Z: -v.X*sin + v.Z*cos,
	}
}

// Box is an axis-aligned bounding box.
type Box struct {
	Min, Max Vec3
}

// BoxAround builds a box from a center point and half extents.
func BoxAround(center, half Vec3) Box {
	return Box{Min: center.Sub(half), Max: center.Add(half)}
}

// Center returns the midpoint of the box.
func (b Box) Center() Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// HalfExtents returns half the box size on each axis.
func (b Box) HalfExtents() Vec3 {
	return b.Max.Sub(b.Min).Scale(0.5)
}

// Intersects reports whether two boxes overlap. Touching faces count as overlap.
func (b Box) Intersects(o Box) bool {
	return b.Min.X <= o.Max.X && b.Max.X >= o.Min.X &&
		b.Min.Y <= o.Max.Y && b.Max.Y >= o.Min.Y &&
		b.Min.Z <= o.Max.Z && b.Max.Z >= o.Min.Z
}

// ClosestPoint returns the point inside the box nearest to p.
func (b Box) ClosestPoint(p Vec3) Vec3 {
	return Vec3{
		X: ClampF(p.X, b.Min.X, b.Max.X),
		Y: ClampF(p.Y, b.Min.Y, b.Max.Y),
		Z: ClampF(p.Z, b.Min.Z, b.Max.Z),
	}
}

// RotatedY returns the axis-aligned bounds of this box after rotating it
// about the world Y axis by angle radians.
func (b Box) RotatedY(angle float64) Box {
	c := b.Center().RotateY(angle)
	h := b.HalfExtents()
	sin, cos := math.Sincos(angle)
	sin, cos = math.Abs(sin), math.Abs(cos)
	rh := Vec3{
		X: h.X*cos + h.Z*sin,
		Y: h.Y,
		Z: h.X*sin + h.Z*cos,
	}
	return BoxAround(c, rh)
}

// Sphere is a bounding sphere.
type Sphere struct {
	Center Vec3
	Radius float64
}

// IntersectsBox reports whether the sphere touches or overlaps the box.
func (s Sphere) IntersectsBox(b Box) bool {
	d := b.ClosestPoint(s.Center).Sub(s.Center)
	return d.LenSq() <= s.Radius*s.Radius
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// WrapAngle normalizes an angle to the range (-Pi, Pi].
func WrapAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a <= -math.Pi {
		a += 2 * math.Pi
	} else if a > math.Pi {
		a -= 2 * math.Pi
	}
	return a
}
