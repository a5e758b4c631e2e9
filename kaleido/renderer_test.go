package kaleido

import (
	"math"
	"testing"
)

func TestCopyTransformCount(t *testing.T) {
	for _, n := range []int{1, 2, 6, 12} {
		got := copyTransforms(Vec2{100, 50}, Vec2{400, 300}, n, 0)
		if len(got) != n {
			t.Errorf("symmetry %d produced %d copies", n, len(got))
		}
	}
}

func TestCopyTransformAngles(t *testing.T) {
	center := Vec2{400, 300}
	pos := Vec2{500, 300} // 100 to the right of center
	n := 4
	copies := copyTransforms(pos, center, n, 0)

	for i, c := range copies {
		want := rotateAbout(pos, center, float64(i)*2*math.Pi/float64(n))
		if c.Pos.Dist(want) > 1e-9 {
			t.Errorf("copy %d at %v, want %v", i, c.Pos, want)
		}
		// All copies keep the same distance from the pivot.
		if d := c.Pos.Dist(center); math.Abs(d-100) > 1e-9 {
			t.Errorf("copy %d at distance %f from center, want 100", i, d)
		}
	}

	// Quarter turns land on the axes.
	if copies[1].Pos.Dist(Vec2{400, 400}) > 1e-9 {
		t.Errorf("quarter-turn copy at %v, want (400,400)", copies[1].Pos)
	}
	if copies[2].Pos.Dist(Vec2{300, 300}) > 1e-9 {
		t.Errorf("half-turn copy at %v, want (300,300)", copies[2].Pos)
	}
}

func TestCopyTransformDegenerate(t *testing.T) {
	pos := Vec2{123, 45}
	copies := copyTransforms(pos, Vec2{400, 300}, 1, 0)
	if len(copies) != 1 {
		t.Fatalf("n=1 produced %d copies", len(copies))
	}
	if copies[0].Pos != pos {
		t.Errorf("n=1 moved the element to %v", copies[0].Pos)
	}
	if copies[0].Angle != 0 {
		t.Errorf("n=1 at time 0 has angle %f, want 0", copies[0].Angle)
	}
}

func TestPulseAndSpinAtTimeZero(t *testing.T) {
	if pulseScale(0) != 1 {
		t.Errorf("pulse at t=0 = %f, want 1", pulseScale(0))
	}
	if spinAngle(0) != 0 {
		t.Errorf("spin at t=0 = %f, want 0", spinAngle(0))
	}
}

func TestPulseRange(t *testing.T) {
	for ms := 0.0; ms < 10000; ms += 37 {
		p := pulseScale(ms)
		if p < 0.7-1e-9 || p > 1.3+1e-9 {
			t.Fatalf("pulse %f at %fms outside [0.7,1.3]", p, ms)
		}
	}
	// Peak of the sine: timeMs/500 = pi/2.
	if math.Abs(pulseScale(500*math.Pi/2)-1.3) > 1e-9 {
		t.Errorf("pulse peak = %f, want 1.3", pulseScale(500*math.Pi/2))
	}
}

func TestSpinAngleRate(t *testing.T) {
	// 3600ms of spin is 360 degrees.
	if math.Abs(spinAngle(3600)-2*math.Pi) > 1e-9 {
		t.Errorf("spin(3600ms) = %f, want 2pi", spinAngle(3600))
	}
}

func TestTimeDependence(t *testing.T) {
	pos, center := Vec2{500, 300}, Vec2{400, 300}
	a := copyTransforms(pos, center, 4, 0)
	b := copyTransforms(pos, center, 4, 250)
	if a[0].Angle == b[0].Angle && a[0].Scale == b[0].Scale {
		t.Error("transforms identical across time; spin/pulse not applied")
	}
	// Copy positions themselves do not depend on time.
	for i := range a {
		if a[i].Pos != b[i].Pos {
			t.Errorf("copy %d position moved with time", i)
		}
	}
}

func TestOutlineVerticesClosedPolygons(t *testing.T) {
	for shape := Shape(0); shape < ShapeCount; shape++ {
		pts := outlineVertices(Outline(shape, 20))
		if len(pts) < 3 {
			t.Errorf("%v flattens to %d points", shape, len(pts))
		}
	}
}

func TestFlattenCubicEndpoints(t *testing.T) {
	start := Vec2{0, 0}
	seg := CubicSegment{C1: Vec2{0, -10}, C2: Vec2{10, -10}, End: Vec2{10, 0}}
	pts := flattenCubic(nil, start, seg)
	if len(pts) != curveSegments {
		t.Fatalf("flattened to %d points, want %d", len(pts), curveSegments)
	}
	if pts[0] != start {
		t.Errorf("first sample %v, want the start point", pts[0])
	}
	// The last sample approaches, but excludes, the endpoint.
	if pts[len(pts)-1].Dist(seg.End) > 2 {
		t.Errorf("last sample %v too far from the endpoint", pts[len(pts)-1])
	}
}
