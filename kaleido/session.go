package kaleido

import (
	"image/color"
	"math/rand"
	"time"
)

// Session owns the live element set, the history stack, the starfield, and
// the user-adjustable settings. All mutation happens on the single
// animation goroutine; the star tick and the auto-spawner are period
// accumulators inside Advance, not separate timers.
type Session struct {
	cfg Config
	rng *rand.Rand

	Elements []Element
	History  *History
	Stars    *StarField
	Palette  *Palette

	// Current spawn settings
	Color    color.NRGBA
	Size     float64
	Speed    float64
	Symmetry int

	// Drag gesture state
	dragging   bool
	dragAnchor Vec2
	dragTravel float64

	// Period accumulators (seconds)
	starAcc  float64
	spawnAcc float64

	// AutoSpawn enables the periodic random spawner
	AutoSpawn bool
}

// NewSession creates a session from a config. A zero config seed selects a
// time-based seed. The config is sanitized so hand-built values get the
// same guarantees as loaded ones.
func NewSession(cfg Config) *Session {
	cfg = cfg.sanitized()
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	pal := NewPalette()
	s := &Session{
		cfg:       cfg,
		rng:       rng,
		History:   NewHistory(),
		Stars:     NewStarField(rng, cfg.StarCount, cfg.ScreenWidth, cfg.ScreenHeight),
		Palette:   pal,
		Color:     pal.Pick(rng),
		Symmetry:  cfg.Symmetry,
		AutoSpawn: true,
	}
	s.SetSize(cfg.ElementSize)
	s.SetSpeed(cfg.SpawnSpeed)
	s.SetSymmetry(cfg.Symmetry)
	return s
}

// Config returns the session configuration.
func (s *Session) Config() Config {
	return s.cfg
}

// SpawnAt creates an element at pos with the current settings and records
// the resulting element set in the history.
func (s *Session) SpawnAt(pos Vec2) {
	s.Elements = append(s.Elements, NewElement(s.rng, pos, s.Color, s.Size, s.Speed))
	s.History.Record(s.Elements)
}

// SpawnRandom spawns at a uniformly random canvas position.
func (s *Session) SpawnRandom() {
	s.SpawnAt(Vec2{
		X: s.rng.Float64() * float64(s.cfg.ScreenWidth),
		Y: s.rng.Float64() * float64(s.cfg.ScreenHeight),
	})
}

// PointerDown starts a gesture: an immediate spawn plus drag tracking.
func (s *Session) PointerDown(pos Vec2) {
	s.SpawnAt(pos)
	s.dragging = true
	s.dragAnchor = pos
	s.dragTravel = 0
}

// PointerMove accumulates drag travel and spawns once the cumulative
// movement since the last spawn exceeds the threshold. This rate-limits
// spawn density during continuous gestures.
func (s *Session) PointerMove(pos Vec2) {
	if !s.dragging {
		return
	}
	s.dragTravel += pos.Dist(s.dragAnchor)
	s.dragAnchor = pos
	if s.dragTravel > DragSpawnThreshold {
		s.SpawnAt(pos)
		s.dragTravel = 0
	}
}

// PointerUp ends the current gesture.
func (s *Session) PointerUp() {
	s.dragging = false
	s.dragTravel = 0
}

// Advance runs one animation tick of dt seconds: the element simulation
// every call, the starfield and the auto-spawner on their own periods.
func (s *Session) Advance(dt float64) {
	var bw, bh float64
	if s.cfg.PruneOffscreen {
		bw, bh = float64(s.cfg.ScreenWidth), float64(s.cfg.ScreenHeight)
	}
	s.Elements = AdvanceElements(s.Elements, dt, bw, bh)

	s.starAcc += dt
	for s.starAcc >= s.cfg.StarTick {
		s.starAcc -= s.cfg.StarTick
		s.Stars.Advance(s.cfg.ScreenWidth, s.cfg.ScreenHeight)
	}

	if s.AutoSpawn {
		s.spawnAcc += dt
		for s.spawnAcc >= s.cfg.AutoSpawnEvery {
			s.spawnAcc -= s.cfg.AutoSpawnEvery
			s.SpawnRandom()
		}
	}
}

// Undo steps the history back and replaces the live set. No-op at the
// base.
func (s *Session) Undo() bool {
	snap, ok := s.History.Undo()
	if ok {
		s.Elements = snap
	}
	return ok
}

// Redo steps the history forward and replaces the live set. No-op at the
// tip.
func (s *Session) Redo() bool {
	snap, ok := s.History.Redo()
	if ok {
		s.Elements = snap
	}
	return ok
}

// Clear empties the live set and the history.
func (s *Session) Clear() {
	s.Elements = nil
	s.History.Clear()
}

// CyclePalette advances the palette group and re-rolls the current color.
func (s *Session) CyclePalette() {
	s.Color = s.Palette.Cycle(s.rng)
}

// SetSize clamps and applies the element size setting.
func (s *Session) SetSize(size float64) {
	s.Size = clamp(size, MinElementSize, MaxElementSize)
}

// SetSpeed clamps and applies the spawn speed setting.
func (s *Session) SetSpeed(speed float64) {
	s.Speed = clamp(speed, MinSpeed, MaxSpeed)
}

// SetSymmetry clamps and applies the symmetry order.
func (s *Session) SetSymmetry(n int) {
	if n < MinSymmetry {
		n = MinSymmetry
	}
	if n > MaxSymmetry {
		n = MaxSymmetry
	}
	s.Symmetry = n
}
