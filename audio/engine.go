package audio

import (
	"fmt"
	"log"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
)

// Engine turns cues into short synthesized voices mixed onto one output
// Voices overlap without limit; each Emit adds an independent streamer to the shared mixer
type Engine struct {
	mu       sync.Mutex
	cfg      *Config
	out      Output
	mixer    *beep.Mixer
	rate     beep.SampleRate
	primed   bool
	silent   bool
	muted    bool
	disposed bool

	emitted    atomic.Int64
	suppressed atomic.Int64
}

// NewEngine creates an unprimed engine; nothing touches the output until Prime
func NewEngine(cfg *Config, out Output) *Engine {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Engine{
		cfg:    cfg,
		out:    out,
		mixer:  &beep.Mixer{},
		rate:   beep.SampleRate(cfg.SampleRate),
		silent: !cfg.Enabled || out == nil,
	}
}

// Prime opens the output and starts the mixer on the first call
// A failed open leaves the engine silent for its lifetime; later calls are no-ops
func (e *Engine) Prime() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.primed || e.silent || e.disposed {
		return nil
	}
	e.primed = true

	if err := e.out.Init(e.rate, e.rate.N(e.cfg.BufferDuration)); err != nil {
		e.silent = true
		return fmt.Errorf("audio init: %w", err)
	}
	e.out.Play(e.mixer)
	log.Printf("audio: primed at %d Hz", e.cfg.SampleRate)
	return nil
}

// Emit plays the cue; returns false when muted, silent, unprimed or disposed
func (e *Engine) Emit(c Cue) bool {
	if c >= cueCount {
		return false
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.muted || e.silent || !e.primed || e.disposed {
		e.suppressed.Add(1)
		return false
	}

	voice := newVoice(c, e.cfg.MasterVolume, e.rate)
	e.out.Lock()
	e.mixer.Add(voice)
	e.out.Unlock()

	e.emitted.Add(1)
	return true
}

// SetMuted sets the mute gate; voices already playing are unaffected
func (e *Engine) SetMuted(muted bool) {
	e.mu.Lock()
	e.muted = muted
	e.mu.Unlock()
}

// ToggleMute flips the mute gate and returns the new state
func (e *Engine) ToggleMute() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.muted = !e.muted
	return e.muted
}

func (e *Engine) IsMuted() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.muted
}

// IsSilent reports whether the engine can never produce sound
func (e *Engine) IsSilent() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.silent
}

// Voices returns the number of voices still playing in the mixer
func (e *Engine) Voices() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.primed || e.silent {
		return 0
	}
	e.out.Lock()
	defer e.out.Unlock()
	return e.mixer.Len()
}

// Stats returns emitted and suppressed cue counts
func (e *Engine) Stats() (emitted, suppressed int64) {
	return e.emitted.Load(), e.suppressed.Load()
}

// Dispose stops all voices and closes the output; repeated calls are no-ops
func (e *Engine) Dispose() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.disposed {
		return
	}
	e.disposed = true

	if !e.primed || e.silent {
		return
	}
	e.out.Lock()
	e.mixer.Clear()
	e.out.Unlock()
	e.out.Close()
}
