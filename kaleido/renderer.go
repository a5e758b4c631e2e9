package kaleido

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// CopyTransform places one symmetric copy of an element: the copy position,
// the copy's local rotation, and the pulsing scale factor.
type CopyTransform struct {
	Pos   Vec2
	Angle float64
	Scale float64
}

// spinAngle is the time-based local rotation: timeMs/10 in degrees.
func spinAngle(timeMs float64) float64 {
	return timeMs / 10 * math.Pi / 180
}

// pulseScale is the time-based sinusoidal footprint scale.
func pulseScale(timeMs float64) float64 {
	return 1 + 0.3*math.Sin(timeMs/500)
}

// copyTransforms computes the n symmetric copies of an element at pos:
// copy i sits at pos rotated about center by i*2*pi/n, spun by the shared
// time-based angle on top of its copy rotation, and scaled by the pulse.
// n <= 1 degenerates to the single unrotated element.
func copyTransforms(pos, center Vec2, n int, timeMs float64) []CopyTransform {
	if n < 1 {
		n = 1
	}
	spin := spinAngle(timeMs)
	scale := pulseScale(timeMs)

	out := make([]CopyTransform, 0, n)
	for i := 0; i < n; i++ {
		rot := float64(i) * 2 * math.Pi / float64(n)
		out = append(out, CopyTransform{
			Pos:   rotateAbout(pos, center, rot),
			Angle: rot + spin,
			Scale: scale,
		})
	}
	return out
}

// circleSegments is the flattening resolution for discs.
const circleSegments = 40

// curveSegments is the flattening resolution per cubic Bézier.
const curveSegments = 24

// outlineVertices flattens an outline to a closed polygon in local
// coordinates.
func outlineVertices(o OutlinePath) []Vec2 {
	switch o.Kind {
	case PathCircle:
		pts := make([]Vec2, 0, circleSegments)
		for i := 0; i < circleSegments; i++ {
			a := float64(i) * 2 * math.Pi / circleSegments
			pts = append(pts, Vec2{o.Radius * math.Cos(a), o.Radius * math.Sin(a)})
		}
		return pts
	case PathPolygon:
		return o.Points
	default:
		pts := make([]Vec2, 0, len(o.Curves)*curveSegments)
		start := o.Start
		for _, c := range o.Curves {
			pts = flattenCubic(pts, start, c)
			start = c.End
		}
		return pts
	}
}

// flattenCubic appends curveSegments points sampling the Bézier from start
// (inclusive) to seg.End (exclusive; the next segment supplies it).
func flattenCubic(dst []Vec2, start Vec2, seg CubicSegment) []Vec2 {
	for i := 0; i < curveSegments; i++ {
		t := float64(i) / curveSegments
		u := 1 - t
		dst = append(dst, Vec2{
			X: u*u*u*start.X + 3*u*u*t*seg.C1.X + 3*u*t*t*seg.C2.X + t*t*t*seg.End.X,
			Y: u*u*u*start.Y + 3*u*u*t*seg.C1.Y + 3*u*t*t*seg.C2.Y + t*t*t*seg.End.Y,
		})
	}
	return dst
}

// Renderer composites the starfield and the symmetric element copies into
// an ebiten image. Shape fills are triangle fans with per-vertex colors so
// each copy carries a corner-to-corner alpha fade.
type Renderer struct {
	whitePixel *ebiten.Image

	// Scratch buffers reused across draws
	vs []ebiten.Vertex
	is []uint16
}

// NewRenderer creates a renderer.
func NewRenderer() *Renderer {
	// 3x3 white source with a 1x1 interior sub-image so sampling never
	// bleeds past the texel edge.
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	return &Renderer{
		whitePixel: white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
}

// DrawStars renders the background star layer.
func (r *Renderer) DrawStars(screen *ebiten.Image, field *StarField) {
	for _, s := range field.Stars {
		vector.DrawFilledCircle(screen, float32(s.Pos.X), float32(s.Pos.Y), float32(s.Size), s.Color, false)
	}
}

// Draw renders every live element symmetry times around the canvas center.
// The output depends on timeMs through the spin and pulse terms, so it
// must be re-invoked every frame even for an unchanged element list.
func (r *Renderer) Draw(screen *ebiten.Image, elements []Element, symmetry int, center Vec2, timeMs float64) {
	for i := range elements {
		el := &elements[i]
		for _, t := range copyTransforms(el.Pos, center, symmetry, timeMs) {
			r.drawCopy(screen, el, t)
		}
	}
}

// drawCopy draws one transformed copy of an element.
func (r *Renderer) drawCopy(screen *ebiten.Image, el *Element, t CopyTransform) {
	radius := el.Size / 2 * t.Scale
	if radius <= 0 {
		return
	}
	outline := Outline(el.Shape, radius)
	local := outlineVertices(outline)
	if len(local) < 3 {
		return
	}

	min, max := outline.Bounds()
	span := (max.X - min.X) + (max.Y - min.Y)
	if span <= 0 {
		return
	}
	clr := el.Color()

	// Fan center: the vertex centroid. Every outline here is star-shaped
	// about it, including the heart.
	var fan Vec2
	for _, p := range local {
		fan = fan.Add(p)
	}
	fan = fan.Scale(1 / float64(len(local)))

	r.vs = r.vs[:0]
	r.is = r.is[:0]
	r.vs = append(r.vs, r.vertex(fan, min, span, clr, el.Opacity, t))
	for _, p := range local {
		r.vs = append(r.vs, r.vertex(p, min, span, clr, el.Opacity, t))
	}
	n := uint16(len(local))
	for i := uint16(0); i < n; i++ {
		r.is = append(r.is, 0, i+1, 1+(i+1)%n)
	}

	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	screen.DrawTriangles(r.vs, r.is, r.whitePixel, op)
}

// vertex builds one fan vertex: alpha fades from the element opacity at
// the bounding-box min corner to zero at the max corner, measured in the
// shape's local frame so the fade rotates with the copy.
func (r *Renderer) vertex(local, min Vec2, span float64, clr color.NRGBA, opacity float64, t CopyTransform) ebiten.Vertex {
	frac := ((local.X - min.X) + (local.Y - min.Y)) / span
	alpha := float32(opacity * (1 - clamp(frac, 0, 1)))

	world := rotatePoint(local, t.Angle).Add(t.Pos)
	return ebiten.Vertex{
		DstX:   float32(world.X),
		DstY:   float32(world.Y),
		SrcX:   1,
		SrcY:   1,
		ColorR: float32(clr.R) / 255 * alpha,
		ColorG: float32(clr.G) / 255 * alpha,
		ColorB: float32(clr.B) / 255 * alpha,
		ColorA: alpha,
	}
}
