package kaleido

import (
	"fmt"
	"image/color"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Game is the ebiten shell around a session: it feeds pointer and key
// events into the session, drives the tick from wall-clock deltas, and
// hands the frame to the renderer.
type Game struct {
	session  *Session
	renderer *Renderer
	sounds   *SoundBank

	start      time.Time
	lastUpdate time.Time

	showHelp bool
	dragging bool

	// Screenshot capture is requested in Update and fulfilled in Draw,
	// where the frame pixels exist.
	captureRequested bool

	// Transient HUD notice; written by export goroutines.
	noticeMu    sync.Mutex
	notice      string
	noticeUntil time.Time

	hudFace font.Face
}

// NewGame creates the game shell and starts the audio bank. Audio failure
// degrades to silence.
func NewGame(cfg Config) *Game {
	g := &Game{
		session:    NewSession(cfg),
		renderer:   NewRenderer(),
		sounds:     NewSoundBank(),
		start:      time.Now(),
		lastUpdate: time.Now(),
		hudFace:    basicfont.Face7x13,
	}
	// Fire-and-forget: a machine with no audio device still gets the toy.
	_ = g.sounds.Initialize(cfg.Muted)
	return g
}

// Session exposes the underlying session.
func (g *Game) Session() *Session {
	return g.session
}

// Shutdown releases audio resources.
func (g *Game) Shutdown() {
	g.sounds.Close()
}

// timeMs is the animation clock driving the spin and pulse terms.
func (g *Game) timeMs() float64 {
	return float64(time.Since(g.start)) / float64(time.Millisecond)
}

// Update advances the simulation by the elapsed wall-clock time and
// processes input. All session mutation happens here, on the single
// ebiten update goroutine.
func (g *Game) Update() error {
	now := time.Now()
	dt := now.Sub(g.lastUpdate).Seconds()
	g.lastUpdate = now
	// Clamp dt to avoid teleporting after a stall (window drag, suspend).
	if dt > 0.1 {
		dt = 0.1
	}

	if err := g.handleInput(); err != nil {
		return err
	}
	g.session.Advance(dt)
	return nil
}

// handleInput maps pointer and key events onto session operations.
func (g *Game) handleInput() error {
	mx, my := ebiten.CursorPosition()
	pos := Vec2{float64(mx), float64(my)}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.session.PointerDown(pos)
		g.sounds.Play(CueSpawn)
		g.dragging = true
	} else if g.dragging && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		before := g.session.History.Len()
		g.session.PointerMove(pos)
		if g.session.History.Len() > before {
			g.sounds.Play(CueSpawn)
		}
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.session.PointerUp()
		g.dragging = false
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyU) || inpututil.IsKeyJustPressed(ebiten.KeyZ):
		if g.session.Undo() {
			g.sounds.Play(CueUndo)
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyY):
		if g.session.Redo() {
			g.sounds.Play(CueRedo)
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyX):
		g.session.Clear()
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		g.session.CyclePalette()
	case inpututil.IsKeyJustPressed(ebiten.KeyLeft):
		g.session.SetSymmetry(g.session.Symmetry - 1)
	case inpututil.IsKeyJustPressed(ebiten.KeyRight):
		g.session.SetSymmetry(g.session.Symmetry + 1)
	case inpututil.IsKeyJustPressed(ebiten.KeyUp):
		g.session.SetSize(g.session.Size + 5)
	case inpututil.IsKeyJustPressed(ebiten.KeyDown):
		g.session.SetSize(g.session.Size - 5)
	case inpututil.IsKeyJustPressed(ebiten.KeyPageUp):
		g.session.SetSpeed(g.session.Speed + 0.5)
	case inpututil.IsKeyJustPressed(ebiten.KeyPageDown):
		g.session.SetSpeed(g.session.Speed - 0.5)
	case inpututil.IsKeyJustPressed(ebiten.KeyA):
		g.session.AutoSpawn = !g.session.AutoSpawn
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		g.sounds.SetMuted(!g.sounds.Muted())
	case inpututil.IsKeyJustPressed(ebiten.KeyH):
		g.showHelp = !g.showHelp
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		g.captureRequested = true
	case inpututil.IsKeyJustPressed(ebiten.KeyO):
		g.exportPoster()
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ):
		return ebiten.Termination
	}
	return nil
}

// exportPoster snapshots the composition synchronously, then renders and
// writes it in the background.
func (g *Game) exportPoster() {
	elements := snapshot(g.session.Elements)
	symmetry := g.session.Symmetry
	cfg := g.session.Config()
	timeMs := g.timeMs()
	g.sounds.Play(CueShutter)

	go func() {
		path, err := SavePoster(elements, symmetry, cfg, cfg.ScreenWidth*2, cfg.ScreenHeight*2, timeMs)
		if err != nil {
			logExportError("poster", err)
			g.setNotice("poster export failed")
			return
		}
		if path != "" {
			g.setNotice("poster saved: " + path)
		}
	}()
}

// Draw renders the frame and, when requested, captures it for export.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	g.renderer.DrawStars(screen, g.session.Stars)

	cfg := g.session.Config()
	g.renderer.Draw(screen, g.session.Elements, g.session.Symmetry, cfg.CanvasCenter(), g.timeMs())

	if g.captureRequested {
		g.captureRequested = false
		g.captureScreenshot(screen)
	}

	g.drawHUD(screen)
}

// captureScreenshot reads the frame pixels and hands them to a background
// writer. The pixel read happens here; everything slow happens off-thread.
func (g *Game) captureScreenshot(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	pixels := make([]byte, 4*w*h)
	screen.ReadPixels(pixels)
	shot := Screenshot{Pixels: pixels, Width: w, Height: h}
	g.sounds.Play(CueShutter)

	go func() {
		path, err := SaveScreenshot(shot)
		if err != nil {
			logExportError("screenshot", err)
			g.setNotice("screenshot failed")
			return
		}
		if path != "" {
			g.setNotice("saved: " + path)
		}
	}()
}

// drawHUD draws the status line, transient notices, and the help overlay.
func (g *Game) drawHUD(screen *ebiten.Image) {
	s := g.session
	status := fmt.Sprintf("symmetry %d · %s · size %.0f · speed %.1f · %d shapes · history %d/%d",
		s.Symmetry, s.Palette.Active().Name, s.Size, s.Speed,
		len(s.Elements), s.History.Cursor()+1, s.History.Len())
	text.Draw(screen, status, g.hudFace, 12, 20, color.NRGBA{220, 225, 240, 255})

	g.noticeMu.Lock()
	notice := ""
	if time.Now().Before(g.noticeUntil) {
		notice = g.notice
	}
	g.noticeMu.Unlock()
	if notice != "" {
		text.Draw(screen, notice, g.hudFace, 12, 38, color.NRGBA{255, 220, 140, 255})
	}

	if g.showHelp {
		ebitenutil.DebugPrintAt(screen,
			"click/drag: spawn   u/z: undo   r/y: redo   x: clear\n"+
				"c: palette   left/right: symmetry   up/down: size   pgup/pgdn: speed\n"+
				"a: auto-spawn   p: screenshot   o: poster   m: mute   h: help   esc/q: quit",
			12, 52)
	} else {
		ebitenutil.DebugPrintAt(screen, "h: help", 12, 52)
	}
}

// setNotice posts a transient HUD message (safe from goroutines).
func (g *Game) setNotice(msg string) {
	g.noticeMu.Lock()
	g.notice = msg
	g.noticeUntil = time.Now().Add(4 * time.Second)
	g.noticeMu.Unlock()
}

// Layout reports the fixed logical canvas size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	cfg := g.session.Config()
	return cfg.ScreenWidth, cfg.ScreenHeight
}
