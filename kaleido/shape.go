package kaleido

import "math"

// Shape identifies one of the drawable shape variants
type Shape int

const (
	ShapeCircle Shape = iota
	ShapeSquare
	ShapeTriangle
	ShapeStar
	ShapeHexagon
	ShapePentagon
	ShapeOctagon
	ShapeHeart
	ShapeCount
)

// String returns the shape name
func (s Shape) String() string {
	switch s {
	case ShapeCircle:
		return "circle"
	case ShapeSquare:
		return "square"
	case ShapeTriangle:
		return "triangle"
	case ShapeStar:
		return "star"
	case ShapeHexagon:
		return "hexagon"
	case ShapePentagon:
		return "pentagon"
	case ShapeOctagon:
		return "octagon"
	case ShapeHeart:
		return "heart"
	default:
		return "unknown"
	}
}

// PathKind discriminates the outline representation
type PathKind int

const (
	// PathCircle is a plain disc of Outline.Radius
	PathCircle PathKind = iota
	// PathPolygon is a closed polygon over Outline.Points
	PathPolygon
	// PathCurves is a closed run of cubic Béziers from Outline.Start
	PathCurves
)

// CubicSegment is one cubic Bézier segment of a PathCurves outline
type CubicSegment struct {
	C1, C2, End Vec2
}

// OutlinePath is a closed outline centered at the local origin. The
// renderer positions, rotates, and scales it; the geometry itself is fixed.
type OutlinePath struct {
	Kind   PathKind
	Radius float64        // PathCircle only
	Points []Vec2         // PathPolygon only
	Start  Vec2           // PathCurves only
	Curves []CubicSegment // PathCurves only
}

// Outline returns the closed outline for a shape at the given radius.
// All outlines are centered at the origin with y growing downward.
func Outline(shape Shape, radius float64) OutlinePath {
	switch shape {
	case ShapeCircle:
		return OutlinePath{Kind: PathCircle, Radius: radius}

	case ShapeSquare:
		return OutlinePath{Kind: PathPolygon, Points: []Vec2{
			{-radius, -radius},
			{radius, -radius},
			{radius, radius},
			{-radius, radius},
		}}

	case ShapeTriangle:
		return OutlinePath{Kind: PathPolygon, Points: []Vec2{
			{0, -radius},
			{radius, radius},
			{-radius, radius},
		}}

	case ShapeStar:
		// 5-point star: alternate outer and half-inner radius,
		// starting at pi/2, stepping by pi/5.
		pts := make([]Vec2, 0, 10)
		for i := 0; i < 10; i++ {
			r := radius
			if i%2 == 1 {
				r = radius / 2
			}
			a := math.Pi/2 + float64(i)*math.Pi/5
			pts = append(pts, Vec2{r * math.Cos(a), r * math.Sin(a)})
		}
		return OutlinePath{Kind: PathPolygon, Points: pts}

	case ShapeHexagon:
		return OutlinePath{Kind: PathPolygon, Points: regularPolygon(6, radius, 0)}

	case ShapePentagon:
		return OutlinePath{Kind: PathPolygon, Points: regularPolygon(5, radius, math.Pi/2)}

	case ShapeOctagon:
		return OutlinePath{Kind: PathPolygon, Points: regularPolygon(8, radius, math.Pi/8)}

	case ShapeHeart:
		// Two cubic lobes: notch at (0, r/2), tip at (0, 1.5r).
		return OutlinePath{
			Kind:  PathCurves,
			Start: Vec2{0, radius / 2},
			Curves: []CubicSegment{
				{C1: Vec2{-radius, -radius / 2}, C2: Vec2{-radius, radius}, End: Vec2{0, 1.5 * radius}},
				{C1: Vec2{radius, radius}, C2: Vec2{radius, -radius / 2}, End: Vec2{0, radius / 2}},
			},
		}

	default:
		return OutlinePath{Kind: PathCircle, Radius: radius}
	}
}

// regularPolygon returns n vertices on a circle of the given radius,
// starting at startAngle and stepping by 2*pi/n.
func regularPolygon(n int, radius, startAngle float64) []Vec2 {
	pts := make([]Vec2, 0, n)
	for i := 0; i < n; i++ {
		a := startAngle + float64(i)*2*math.Pi/float64(n)
		pts = append(pts, Vec2{radius * math.Cos(a), radius * math.Sin(a)})
	}
	return pts
}

// Bounds returns the axis-aligned bounding box of the outline in local
// coordinates. Curve control points are included, which slightly
// over-covers the heart; the fade orientation only needs the diagonal.
func (o OutlinePath) Bounds() (min, max Vec2) {
	switch o.Kind {
	case PathCircle:
		return Vec2{-o.Radius, -o.Radius}, Vec2{o.Radius, o.Radius}
	case PathPolygon:
		return boundsOf(o.Points)
	default:
		pts := []Vec2{o.Start}
		for _, c := range o.Curves {
			pts = append(pts, c.C1, c.C2, c.End)
		}
		return boundsOf(pts)
	}
}

func boundsOf(pts []Vec2) (min, max Vec2) {
	if len(pts) == 0 {
		return
	}
	min, max = pts[0], pts[0]
	for _, p := range pts[1:] {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
	}
	return
}
