package kaleido

import (
	"image/color"
	"math/rand"
)

// Element is a single spawned shape instance. Elements are value types:
// history snapshots copy the whole slice and stay independent of later
// mutation.
type Element struct {
	// Pos is the element position in canvas coordinates
	Pos Vec2

	// Vel is the velocity in pixels per frame unit
	Vel Vec2

	// Size is the footprint diameter in pixels, fixed for the element's
	// lifetime
	Size float64

	// Shape is the outline variant, chosen at spawn time
	Shape Shape

	// Opacity fades from 1 to 0 at OpacityDecay per tick; the element is
	// pruned once it reaches 0
	Opacity float64

	// StartColor and EndColor are the oscillation endpoints; they swap
	// whenever Progress wraps
	StartColor color.NRGBA
	EndColor   color.NRGBA

	// Progress is the oscillation phase in [0,1)
	Progress float64
}

// NewElement creates an element at pos with a random shape and a random
// velocity bounded per axis by (rand-0.5)*speed.
func NewElement(rng *rand.Rand, pos Vec2, clr color.NRGBA, size, speed float64) Element {
	return Element{
		Pos:        pos,
		Vel:        Vec2{(rng.Float64() - 0.5) * speed, (rng.Float64() - 0.5) * speed},
		Size:       size,
		Shape:      Shape(rng.Intn(int(ShapeCount))),
		Opacity:    1.0,
		StartColor: clr,
		EndColor:   oscillationTarget(rng, clr),
	}
}

// oscillationTarget derives a far endpoint for the color oscillation by
// pushing each channel toward its opposite half.
func oscillationTarget(rng *rand.Rand, c color.NRGBA) color.NRGBA {
	flip := func(v uint8) uint8 {
		span := 96 + rng.Intn(96)
		if v >= 128 {
			return uint8(max(0, int(v)-span))
		}
		return uint8(min(255, int(v)+span))
	}
	return color.NRGBA{R: flip(c.R), G: flip(c.G), B: flip(c.B), A: c.A}
}

// advance moves the element by one tick: position scales with dt, opacity
// and color phase advance by their fixed per-tick increments.
func (e *Element) advance(dt float64) {
	step := dt / FrameUnit
	e.Pos.X += e.Vel.X * step
	e.Pos.Y += e.Vel.Y * step

	e.Opacity -= OpacityDecay
	if e.Opacity < 0 {
		e.Opacity = 0
	}

	e.Progress += ColorStep
	if e.Progress >= 1 {
		e.Progress = 0
		e.StartColor, e.EndColor = e.EndColor, e.StartColor
	}
}

// dead reports whether the element should leave the live set. With a zero
// bounds rectangle only opacity decay kills elements; with bounds supplied
// the check also prunes elements fully outside the canvas expanded by half
// the element size.
func (e *Element) dead(boundsW, boundsH float64) bool {
	if e.Opacity <= 0 {
		return true
	}
	if boundsW <= 0 || boundsH <= 0 {
		return false
	}
	half := e.Size / 2
	margin := e.Size
	return e.Pos.X+half < -margin || e.Pos.X-half > boundsW+margin ||
		e.Pos.Y+half < -margin || e.Pos.Y-half > boundsH+margin
}

// Color returns the current oscillated color, interpolated from StartColor
// toward EndColor by Progress.
func (e *Element) Color() color.NRGBA {
	lerp := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*e.Progress)
	}
	return color.NRGBA{
		R: lerp(e.StartColor.R, e.EndColor.R),
		G: lerp(e.StartColor.G, e.EndColor.G),
		B: lerp(e.StartColor.B, e.EndColor.B),
		A: lerp(e.StartColor.A, e.EndColor.A),
	}
}

// AdvanceElements advances every element by dt and prunes dead ones in
// place, preserving order. boundsW/boundsH of zero disable the offscreen
// check.
func AdvanceElements(elements []Element, dt, boundsW, boundsH float64) []Element {
	for i := range elements {
		elements[i].advance(dt)
	}
	// Reverse sweep so removal doesn't skip neighbors.
	for i := len(elements) - 1; i >= 0; i-- {
		if elements[i].dead(boundsW, boundsH) {
			elements = append(elements[:i], elements[i+1:]...)
		}
	}
	return elements
}
