package kaleido

import "math"

// Vec2 is a 2D vector in canvas coordinates (y grows downward).
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Dist returns the distance between v and o.
func (v Vec2) Dist(o Vec2) float64 {
	return math.Hypot(v.X-o.X, v.Y-o.Y)
}

// Len returns the length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// rotatePoint rotates a point around the origin by the given angle (in radians)
func rotatePoint(p Vec2, angle float64) Vec2 {
	sinA := math.Sin(angle)
	cosA := math.Cos(angle)
	return Vec2{
		X: p.X*cosA - p.Y*sinA,
		Y: p.X*sinA + p.Y*cosA,
	}
}

// rotateAbout rotates p around pivot by the given angle.
func rotateAbout(p, pivot Vec2, angle float64) Vec2 {
	return rotatePoint(p.Sub(pivot), angle).Add(pivot)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
