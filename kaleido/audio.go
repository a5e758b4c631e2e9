package kaleido

import (
	"log"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const audioSampleRate = beep.SampleRate(44100)

// Cue identifies a short synthesized sound effect
type Cue int

const (
	CueSpawn Cue = iota
	CueUndo
	CueRedo
	CueShutter
	cueCount
)

// SoundBank owns the speaker, a bank of pre-rendered cue buffers, and the
// looping ambient pad. Every playback path is fire-and-forget: failures are
// logged and never reach the simulation.
type SoundBank struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	cues        [cueCount]*beep.Buffer
	ambient     *beep.Ctrl
	initialized bool
	muted       bool
}

// NewSoundBank creates an uninitialized sound bank. All methods are safe
// to call even if Initialize fails or is never called.
func NewSoundBank() *SoundBank {
	return &SoundBank{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker, renders the cue bank, and starts the
// ambient loop. A speaker failure leaves the bank disabled rather than
// returning an error to the caller's hot path.
func (b *SoundBank) Initialize(muted bool) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.initialized {
		return nil
	}

	if err := speaker.Init(audioSampleRate, audioSampleRate.N(time.Millisecond*100)); err != nil {
		log.Printf("audio unavailable: %v", err)
		return err
	}

	format := beep.Format{SampleRate: audioSampleRate, NumChannels: 2, Precision: 2}
	for cue, gen := range map[Cue]func() []float64{
		CueSpawn:   generateSpawnCue,
		CueUndo:    generateUndoCue,
		CueRedo:    generateRedoCue,
		CueShutter: generateShutterCue,
	} {
		buf := beep.NewBuffer(format)
		buf.Append(&monoStreamer{samples: gen()})
		b.cues[cue] = buf
	}

	b.ambient = &beep.Ctrl{Streamer: newAmbientPad(), Paused: muted}
	b.mixer.Add(b.ambient)
	speaker.Play(b.mixer)

	b.initialized = true
	b.muted = muted
	return nil
}

// Play fires a cue and returns immediately. No-op when the bank is
// disabled or muted.
func (b *SoundBank) Play(cue Cue) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized || b.muted {
		return
	}
	buf := b.cues[cue]
	if buf == nil {
		return
	}
	shot := buf.Streamer(0, buf.Len())
	speaker.Lock()
	b.mixer.Add(shot)
	speaker.Unlock()
}

// SetMuted pauses or resumes the ambient pad and suppresses cues.
func (b *SoundBank) SetMuted(muted bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.muted = muted
	if b.ambient != nil {
		speaker.Lock()
		b.ambient.Paused = muted
		speaker.Unlock()
	}
}

// Muted reports the current mute state.
func (b *SoundBank) Muted() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.muted
}

// Close silences everything. The speaker itself has no close; clearing the
// mixer is enough to stop output.
func (b *SoundBank) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return
	}
	speaker.Lock()
	b.mixer.Clear()
	speaker.Unlock()
	b.initialized = false
}

// monoStreamer streams a mono float buffer to both channels once.
type monoStreamer struct {
	samples []float64
	pos     int
}

func (m *monoStreamer) Stream(out [][2]float64) (int, bool) {
	if m.pos >= len(m.samples) {
		return 0, false
	}
	n := 0
	for i := range out {
		if m.pos >= len(m.samples) {
			break
		}
		v := m.samples[m.pos]
		out[i][0], out[i][1] = v, v
		m.pos++
		n++
	}
	return n, true
}

func (m *monoStreamer) Err() error { return nil }

// --- Cue generators (unity gain mono buffers) ---

func durationToSamples(seconds float64) int {
	return int(seconds * float64(audioSampleRate))
}

// sineBuffer renders a sine sweep from f0 to f1 over the buffer.
func sineBuffer(f0, f1, seconds float64) []float64 {
	n := durationToSamples(seconds)
	buf := make([]float64, n)
	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		freq := f0 + (f1-f0)*t
		phase += freq / float64(audioSampleRate)
		buf[i] = math.Sin(2 * math.Pi * phase)
	}
	return buf
}

// applyEnvelope applies a linear attack/release envelope in place.
func applyEnvelope(buf []float64, attackSec, releaseSec float64) {
	attack := durationToSamples(attackSec)
	release := durationToSamples(releaseSec)
	releaseStart := len(buf) - release
	if releaseStart < attack {
		releaseStart = attack
	}
	for i := range buf {
		vol := 1.0
		if i < attack && attack > 0 {
			vol = float64(i) / float64(attack)
		} else if i >= releaseStart && release > 0 {
			vol = float64(len(buf)-i) / float64(release)
		}
		buf[i] *= vol
	}
}

func scaleBuffer(buf []float64, gain float64) []float64 {
	for i := range buf {
		buf[i] *= gain
	}
	return buf
}

// generateSpawnCue is a short upward pluck.
func generateSpawnCue() []float64 {
	buf := sineBuffer(520, 880, 0.09)
	applyEnvelope(buf, 0.005, 0.06)
	return scaleBuffer(buf, 0.35)
}

// generateUndoCue is a falling blip.
func generateUndoCue() []float64 {
	buf := sineBuffer(660, 330, 0.12)
	applyEnvelope(buf, 0.005, 0.08)
	return scaleBuffer(buf, 0.3)
}

// generateRedoCue is the undo blip mirrored upward.
func generateRedoCue() []float64 {
	buf := sineBuffer(330, 660, 0.12)
	applyEnvelope(buf, 0.005, 0.08)
	return scaleBuffer(buf, 0.3)
}

// generateShutterCue is a short noise burst, camera-shutter-ish.
func generateShutterCue() []float64 {
	n := durationToSamples(0.07)
	buf := make([]float64, n)
	rng := rand.New(rand.NewSource(1))
	for i := range buf {
		buf[i] = rng.Float64()*2 - 1
	}
	applyEnvelope(buf, 0.002, 0.05)
	return scaleBuffer(buf, 0.25)
}

// ambientPad is an endless low chord with a slow tremolo, used as the
// background track. It never ends and never errors.
type ambientPad struct {
	t float64
}

func newAmbientPad() beep.Streamer {
	return &ambientPad{}
}

func (p *ambientPad) Stream(out [][2]float64) (int, bool) {
	dt := 1 / float64(audioSampleRate)
	for i := range out {
		lfo := 0.5 + 0.5*math.Sin(2*math.Pi*0.07*p.t)
		v := 0.05 * lfo * (math.Sin(2*math.Pi*110*p.t) +
			0.6*math.Sin(2*math.Pi*165*p.t) +
			0.4*math.Sin(2*math.Pi*220*p.t))
		// Slight stereo detune on the right channel.
		w := 0.05 * lfo * (math.Sin(2*math.Pi*110.5*p.t) +
			0.6*math.Sin(2*math.Pi*165.5*p.t) +
			0.4*math.Sin(2*math.Pi*220.5*p.t))
		out[i][0], out[i][1] = v, w
		p.t += dt
	}
	return len(out), true
}

func (p *ambientPad) Err() error { return nil }
