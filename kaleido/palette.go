package kaleido

import (
	"image/color"
	"math/rand"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// PaletteGroup is a named, fixed set of related colors.
type PaletteGroup struct {
	Name   string
	Colors []color.NRGBA
}

// Palette is an ordered list of color groups with a cursor selecting the
// active group. Cycling advances the cursor and randomizes the pick within
// the new group.
type Palette struct {
	Groups []PaletteGroup
	cursor int
}

// groupSize is the number of colors derived per group.
const groupSize = 5

// NewPalette builds the default palette: one group per base hue, each
// group blended across lightness in HCL space.
func NewPalette() *Palette {
	bases := []struct {
		name string
		hue  float64
	}{
		{"ember", 30},
		{"meadow", 130},
		{"ocean", 230},
		{"violet", 290},
		{"rose", 350},
	}

	groups := make([]PaletteGroup, 0, len(bases))
	for _, b := range bases {
		dark := colorful.Hcl(b.hue, 0.6, 0.35)
		light := colorful.Hcl(b.hue, 0.5, 0.85)
		colors := make([]color.NRGBA, 0, groupSize)
		for j := 0; j < groupSize; j++ {
			t := float64(j) / float64(groupSize-1)
			c := dark.BlendHcl(light, t).Clamped()
			r, g, bb := c.RGB255()
			colors = append(colors, color.NRGBA{R: r, G: g, B: bb, A: 255})
		}
		groups = append(groups, PaletteGroup{Name: b.name, Colors: colors})
	}
	return &Palette{Groups: groups}
}

// Active returns the group under the cursor.
func (p *Palette) Active() PaletteGroup {
	return p.Groups[p.cursor]
}

// Cursor returns the active group index.
func (p *Palette) Cursor() int {
	return p.cursor
}

// Cycle advances the cursor (wrapping) and returns a random color from the
// newly active group.
func (p *Palette) Cycle(rng *rand.Rand) color.NRGBA {
	p.cursor = (p.cursor + 1) % len(p.Groups)
	return p.Pick(rng)
}

// Pick returns a random color from the active group without moving the
// cursor.
func (p *Palette) Pick(rng *rand.Rand) color.NRGBA {
	g := p.Active()
	return g.Colors[rng.Intn(len(g.Colors))]
}
