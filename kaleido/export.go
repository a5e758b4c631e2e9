package kaleido

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/fogleman/gg"
	"github.com/ncruces/zenity"
	"golang.org/x/image/font/basicfont"
)

// Screenshot is one captured frame: raw RGBA bytes as read back from the
// frame sink.
type Screenshot struct {
	Pixels []byte
	Width  int
	Height int
}

// Image wraps the raw pixels as an image.RGBA without copying.
func (s Screenshot) Image() *image.RGBA {
	return &image.RGBA{
		Pix:    s.Pixels,
		Stride: 4 * s.Width,
		Rect:   image.Rect(0, 0, s.Width, s.Height),
	}
}

// promptSavePath asks the user for a destination file. A canceled dialog
// returns ok=false and is not an error.
func promptSavePath(defaultName string) (string, bool, error) {
	path, err := zenity.SelectFileSave(
		zenity.Title("Save Image"),
		zenity.Filename(defaultName),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "PNG image",
			Patterns: []string{"*.png"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", false, nil
		}
		return "", false, err
	}
	return path, true, nil
}

// writePNGAtomic encodes img to a temp file in the target directory and
// renames it into place, so an aborted export leaves no partial file.
func writePNGAtomic(path string, img image.Image) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".kaleido-*.png")
	if err != nil {
		return err
	}
	if err := png.Encode(tmp, img); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// SaveScreenshot prompts for a path and persists the captured frame.
// Returns the chosen path, or "" when the dialog was canceled.
func SaveScreenshot(shot Screenshot) (string, error) {
	if len(shot.Pixels) == 0 || shot.Width <= 0 || shot.Height <= 0 {
		// Capture failure: silently abort per the error taxonomy.
		return "", nil
	}
	name := fmt.Sprintf("kaleido-%s.png", time.Now().Format("20060102-150405"))
	path, ok, err := promptSavePath(name)
	if err != nil || !ok {
		return "", err
	}
	if err := writePNGAtomic(path, shot.Image()); err != nil {
		return "", err
	}
	return path, nil
}

// backgroundColor matches the interactive canvas clear color.
var backgroundColor = color.NRGBA{R: 6, G: 8, B: 20, A: 255}

// RenderPoster re-renders a composition offscreen at width x height.
// Canvas coordinates are scaled uniformly to fit and centered, so a
// poster whose aspect differs from the canvas gets letterboxed instead
// of stretched. Unlike the interactive renderer it draws true Bézier
// curves and resolution-independent gradients.
func RenderPoster(elements []Element, symmetry int, canvas Config, width, height int, timeMs float64) image.Image {
	dc := gg.NewContext(width, height)
	dc.SetColor(backgroundColor)
	dc.Clear()

	scale := float64(width) / float64(canvas.ScreenWidth)
	if s := float64(height) / float64(canvas.ScreenHeight); s < scale {
		scale = s
	}
	offset := Vec2{
		X: (float64(width) - float64(canvas.ScreenWidth)*scale) / 2,
		Y: (float64(height) - float64(canvas.ScreenHeight)*scale) / 2,
	}
	center := canvas.CanvasCenter().Scale(scale).Add(offset)

	for i := range elements {
		el := &elements[i]
		for _, t := range copyTransforms(el.Pos.Scale(scale).Add(offset), center, symmetry, timeMs) {
			drawPosterCopy(dc, el, t, scale)
		}
	}

	dc.SetFontFace(basicfont.Face7x13)
	dc.SetRGBA(1, 1, 1, 0.6)
	dc.DrawString(fmt.Sprintf("kaleido · %d-fold", symmetry), 12, float64(height)-12)

	return dc.Image()
}

// drawPosterCopy draws one symmetric copy with a corner-to-corner linear
// fade, full element color down to transparent.
func drawPosterCopy(dc *gg.Context, el *Element, t CopyTransform, scale float64) {
	radius := el.Size / 2 * t.Scale * scale
	if radius <= 0 {
		return
	}
	outline := Outline(el.Shape, radius)
	tracePosterPath(dc, outline, t)

	min, max := outline.Bounds()
	c0 := rotatePoint(min, t.Angle).Add(t.Pos)
	c1 := rotatePoint(max, t.Angle).Add(t.Pos)

	clr := el.Color()
	alpha := uint8(clamp(el.Opacity, 0, 1) * 255)
	grad := gg.NewLinearGradient(c0.X, c0.Y, c1.X, c1.Y)
	grad.AddColorStop(0, color.NRGBA{R: clr.R, G: clr.G, B: clr.B, A: alpha})
	grad.AddColorStop(1, color.NRGBA{R: clr.R, G: clr.G, B: clr.B, A: 0})
	dc.SetFillStyle(grad)
	dc.Fill()
}

// tracePosterPath traces the outline into the gg path under the copy
// transform.
func tracePosterPath(dc *gg.Context, o OutlinePath, t CopyTransform) {
	at := func(p Vec2) Vec2 { return rotatePoint(p, t.Angle).Add(t.Pos) }

	switch o.Kind {
	case PathCircle:
		dc.DrawCircle(t.Pos.X, t.Pos.Y, o.Radius)
	case PathPolygon:
		for i, p := range o.Points {
			w := at(p)
			if i == 0 {
				dc.MoveTo(w.X, w.Y)
			} else {
				dc.LineTo(w.X, w.Y)
			}
		}
		dc.ClosePath()
	case PathCurves:
		start := at(o.Start)
		dc.MoveTo(start.X, start.Y)
		for _, c := range o.Curves {
			c1, c2, end := at(c.C1), at(c.C2), at(c.End)
			dc.CubicTo(c1.X, c1.Y, c2.X, c2.Y, end.X, end.Y)
		}
		dc.ClosePath()
	}
}

// SavePoster renders the composition at the given size and writes it where
// the user chooses. Returns the chosen path, or "" on cancel.
func SavePoster(elements []Element, symmetry int, canvas Config, width, height int, timeMs float64) (string, error) {
	name := fmt.Sprintf("kaleido-poster-%s.png", time.Now().Format("20060102-150405"))
	path, ok, err := promptSavePath(name)
	if err != nil || !ok {
		return "", err
	}
	img := RenderPoster(elements, symmetry, canvas, width, height, timeMs)
	if err := writePNGAtomic(path, img); err != nil {
		return "", err
	}
	return path, nil
}

// WritePNG writes an image to path without a dialog, for headless use.
func WritePNG(path string, img image.Image) error {
	return writePNGAtomic(path, img)
}

// logExportError funnels fire-and-forget export failures into the log.
func logExportError(what string, err error) {
	if err != nil {
		log.Printf("%s export failed: %v", what, err)
	}
}
