package kaleido

import (
	"image/color"
	"math/rand"
)

// Star is a single background particle. Size, speed, and color are fixed
// at creation; only the position changes.
type Star struct {
	Pos   Vec2
	Size  float64
	Speed float64
	Color color.NRGBA
}

// StarField is the fixed-population scrolling background. Stars drift
// downward on their own tick and wrap to the top edge when they leave the
// bottom.
type StarField struct {
	Stars []Star
	rng   *rand.Rand
}

// NewStarField creates a field of count stars scattered over the canvas.
func NewStarField(rng *rand.Rand, count, width, height int) *StarField {
	stars := make([]Star, count)
	for i := range stars {
		shade := uint8(120 + rng.Intn(136))
		stars[i] = Star{
			Pos:   Vec2{rng.Float64() * float64(width), rng.Float64() * float64(height)},
			Size:  1 + rng.Float64()*2,
			Speed: 0.5 + rng.Float64()*2,
			Color: color.NRGBA{R: shade, G: shade, B: uint8(min(255, int(shade)+30)), A: 255},
		}
	}
	return &StarField{Stars: stars, rng: rng}
}

// Advance moves every star down by its speed and wraps stars that exit the
// bottom edge to a random x just above the top. The population never
// changes.
func (f *StarField) Advance(width, height int) {
	for i := range f.Stars {
		s := &f.Stars[i]
		s.Pos.Y += s.Speed
		if s.Pos.Y > float64(height) {
			s.Pos.X = f.rng.Float64() * float64(width)
			s.Pos.Y = -s.Size
		}
	}
}
