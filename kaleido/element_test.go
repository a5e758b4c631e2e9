package kaleido

import (
	"image/color"
	"math"
	"math/rand"
	"testing"
)

func testElement(pos Vec2) Element {
	return Element{
		Pos:        pos,
		Size:       40,
		Shape:      ShapeCircle,
		Opacity:    1.0,
		StartColor: color.NRGBA{200, 40, 40, 255},
		EndColor:   color.NRGBA{40, 40, 200, 255},
	}
}

func TestOpacityDecay(t *testing.T) {
	els := []Element{testElement(Vec2{100, 100})}
	for n := 1; n <= 100; n++ {
		els = AdvanceElements(els, FrameUnit, 0, 0)
		want := 1 - float64(n)*OpacityDecay
		if math.Abs(els[0].Opacity-want) > 1e-9 {
			t.Fatalf("after %d ticks opacity = %f, want %f", n, els[0].Opacity, want)
		}
	}
}

func TestElementRemovedAtZeroOpacity(t *testing.T) {
	els := []Element{testElement(Vec2{100, 100})}
	ticks := int(1/OpacityDecay) + 1
	for n := 0; n < ticks; n++ {
		els = AdvanceElements(els, FrameUnit, 0, 0)
	}
	if len(els) != 0 {
		t.Fatalf("element still alive after %d ticks, opacity %f", ticks, els[0].Opacity)
	}
}

func TestPositionScalesWithDt(t *testing.T) {
	el := testElement(Vec2{0, 0})
	el.Vel = Vec2{3, -2}

	els := AdvanceElements([]Element{el}, FrameUnit, 0, 0)
	if els[0].Pos.X != 3 || els[0].Pos.Y != -2 {
		t.Errorf("one frame unit moved to %v, want (3,-2)", els[0].Pos)
	}

	els = AdvanceElements([]Element{el}, 2*FrameUnit, 0, 0)
	if els[0].Pos.X != 6 || els[0].Pos.Y != -4 {
		t.Errorf("double dt moved to %v, want (6,-4)", els[0].Pos)
	}
}

func TestColorOscillationSwap(t *testing.T) {
	el := testElement(Vec2{0, 0})
	start, end := el.StartColor, el.EndColor
	el.Progress = 1 - ColorStep/2 // next tick wraps

	els := AdvanceElements([]Element{el}, FrameUnit, 0, 0)
	if els[0].Progress != 0 {
		t.Errorf("progress after wrap = %f, want 0", els[0].Progress)
	}
	if els[0].StartColor != end || els[0].EndColor != start {
		t.Error("colors not swapped at wraparound")
	}

	// Swap-swap over two wraps is the identity.
	els[0].Progress = 1 - ColorStep/2
	els = AdvanceElements(els, FrameUnit, 0, 0)
	if els[0].StartColor != start || els[0].EndColor != end {
		t.Error("two wraps did not restore the original colors")
	}
}

func TestColorOscillationMonotonic(t *testing.T) {
	els := []Element{testElement(Vec2{0, 0})}
	prev := els[0].Progress
	for n := 0; n < 50; n++ {
		els = AdvanceElements(els, FrameUnit, 0, 0)
		got := els[0].Progress
		if got != 0 && got <= prev {
			t.Fatalf("progress not strictly increasing: %f -> %f", prev, got)
		}
		prev = got
	}
}

func TestCurrentColorInterpolation(t *testing.T) {
	el := testElement(Vec2{0, 0})
	el.Progress = 0
	if el.Color() != el.StartColor {
		t.Errorf("at progress 0 color = %v, want start %v", el.Color(), el.StartColor)
	}
	el.Progress = 0.5
	c := el.Color()
	if c.R != 120 || c.B != 120 {
		t.Errorf("midpoint color = %v, want R=120 B=120", c)
	}
}

func TestBoundsPruning(t *testing.T) {
	far := testElement(Vec2{5000, 5000})
	far.Opacity = 0.9

	// Without bounds the element survives.
	els := AdvanceElements([]Element{far}, FrameUnit, 0, 0)
	if len(els) != 1 {
		t.Fatal("element pruned without a bounds check")
	}

	// With bounds it is removed.
	els = AdvanceElements([]Element{far}, FrameUnit, 800, 600)
	if len(els) != 0 {
		t.Fatal("offscreen element not pruned with bounds supplied")
	}

	// An element just past the edge stays inside the expanded rectangle.
	near := testElement(Vec2{810, 300})
	els = AdvanceElements([]Element{near}, FrameUnit, 800, 600)
	if len(els) != 1 {
		t.Fatal("element inside the expanded rectangle was pruned")
	}
}

func TestNewElementRandomization(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	clr := color.NRGBA{10, 200, 90, 255}
	for i := 0; i < 100; i++ {
		el := NewElement(rng, Vec2{50, 60}, clr, 30, 4)
		if el.Shape < 0 || el.Shape >= ShapeCount {
			t.Fatalf("shape %v out of range", el.Shape)
		}
		if math.Abs(el.Vel.X) > 2 || math.Abs(el.Vel.Y) > 2 {
			t.Fatalf("velocity %v exceeds (rand-0.5)*speed bound", el.Vel)
		}
		if el.Opacity != 1 || el.Size != 30 || el.StartColor != clr {
			t.Fatalf("spawn state wrong: %+v", el)
		}
	}
}
