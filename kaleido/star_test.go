package kaleido

import (
	"math/rand"
	"testing"
)

func TestStarFieldPopulation(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	f := NewStarField(rng, 100, 800, 600)
	if len(f.Stars) != 100 {
		t.Fatalf("population %d, want 100", len(f.Stars))
	}
	for i := 0; i < 500; i++ {
		f.Advance(800, 600)
	}
	if len(f.Stars) != 100 {
		t.Fatalf("population changed to %d after ticks", len(f.Stars))
	}
}

func TestStarWraparound(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	f := NewStarField(rng, 1, 800, 600)
	s := &f.Stars[0]
	s.Pos = Vec2{123, 599.5}
	s.Speed = 2
	size, speed, clr := s.Size, s.Speed, s.Color

	f.Advance(800, 600)
	if s.Pos.Y != -s.Size {
		t.Errorf("wrapped y = %f, want %f", s.Pos.Y, -s.Size)
	}
	if s.Pos.X < 0 || s.Pos.X >= 800 {
		t.Errorf("wrapped x = %f, want in [0,800)", s.Pos.X)
	}
	if s.Size != size || s.Speed != speed || s.Color != clr {
		t.Error("wraparound changed size/speed/color")
	}
}

func TestStarDescends(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	f := NewStarField(rng, 1, 800, 600)
	s := &f.Stars[0]
	s.Pos = Vec2{100, 50}
	s.Speed = 1.5

	f.Advance(800, 600)
	if s.Pos.Y != 51.5 {
		t.Errorf("y after tick = %f, want 51.5", s.Pos.Y)
	}
	if s.Pos.X != 100 {
		t.Errorf("x changed to %f without wraparound", s.Pos.X)
	}
}
