package kaleido

import (
	"math/rand"
	"testing"
)

func TestPaletteGroups(t *testing.T) {
	p := NewPalette()
	if len(p.Groups) == 0 {
		t.Fatal("no palette groups")
	}
	for _, g := range p.Groups {
		if g.Name == "" {
			t.Error("unnamed palette group")
		}
		if len(g.Colors) != groupSize {
			t.Errorf("group %s has %d colors, want %d", g.Name, len(g.Colors), groupSize)
		}
		for _, c := range g.Colors {
			if c.A != 255 {
				t.Errorf("group %s has translucent color %v", g.Name, c)
			}
		}
	}
}

func TestPaletteCycleWraps(t *testing.T) {
	p := NewPalette()
	rng := rand.New(rand.NewSource(1))
	n := len(p.Groups)
	for i := 0; i < n; i++ {
		p.Cycle(rng)
	}
	if p.Cursor() != 0 {
		t.Errorf("cursor %d after a full cycle, want 0", p.Cursor())
	}
}

func TestPalettePickFromActiveGroup(t *testing.T) {
	p := NewPalette()
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 20; i++ {
		c := p.Pick(rng)
		found := false
		for _, member := range p.Active().Colors {
			if member == c {
				found = true
			}
		}
		if !found {
			t.Fatalf("picked %v outside the active group", c)
		}
	}
}
