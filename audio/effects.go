package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/retro-handheld/constant"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveTriangle
)

// oscillator generates a raw wave with optional exponential pitch sweep
type oscillator struct {
	freqStart float64
	freqEnd   float64
	sweepLen  int
	phase     float64
	duration  int
	position  int
	wave      WaveType
	rate      beep.SampleRate
}

// NewOscillator creates a constant-pitch oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, 0, duration, wave, rate)
}

// NewSweep creates an oscillator whose pitch moves exponentially from start to end over sweep,
// then holds at end until duration
func NewSweep(start, end float64, sweep, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freqStart: start,
		freqEnd:   end,
		sweepLen:  rate.N(sweep),
		duration:  rate.N(duration),
		wave:      wave,
		rate:      rate,
	}
}

func (o *oscillator) freq() float64 {
	if o.sweepLen <= 0 || o.position >= o.sweepLen || o.freqStart <= 0 || o.freqEnd <= 0 {
		return o.freqEnd
	}
	t := float64(o.position) / float64(o.sweepLen)
	return o.freqStart * math.Pow(o.freqEnd/o.freqStart, t)
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveTriangle:
			val = 1.0 - 4.0*math.Abs(o.phase-0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq() / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack to peak followed by exponential decay to a floor gain
type envelope struct {
	streamer      beep.Streamer
	position      int
	attackSamples int
	decaySamples  int
	floor         float64
}

// NewEnvelope shapes s with a linear attack, then decay lasting decay, then holds at floor
func NewEnvelope(s beep.Streamer, attack, decay time.Duration, floor float64, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:      s,
		attackSamples: rate.N(attack),
		decaySamples:  rate.N(decay),
		floor:         floor,
	}
}

func (e *envelope) gain() float64 {
	if e.position < e.attackSamples {
		return float64(e.position) / float64(e.attackSamples)
	}
	if e.decaySamples <= 0 {
		return 1.0
	}
	d := e.position - e.attackSamples
	if d >= e.decaySamples {
		return e.floor
	}
	return math.Pow(e.floor, float64(d)/float64(e.decaySamples))
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		g := e.gain()
		samples[i][0] *= g
		samples[i][1] *= g
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// math.Log2(0) is -Inf, so zero volume becomes silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// newVoice builds a fresh one-shot streamer for the cue
func newVoice(c Cue, master float64, rate beep.SampleRate) beep.Streamer {
	vs := cueTable[c]

	end := vs.freqEnd
	if end == 0 {
		end = vs.freqStart
	}
	osc := NewSweep(vs.freqStart, end, vs.sweep, vs.duration, vs.wave, rate)

	var attack time.Duration
	if !vs.noAttack {
		attack = constant.CueAttack
	}
	decay := vs.decay
	if decay == 0 {
		decay = vs.duration - attack
	}
	shaped := NewEnvelope(osc, attack, decay, constant.CueFloorGain, rate)

	return newVolume(shaped, vs.gain*master)
}
