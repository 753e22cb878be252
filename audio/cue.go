package audio

import (
	"time"

	"github.com/lixenwraith/retro-handheld/constant"
)

// Cue names a short synthesized sound effect
type Cue uint8

const (
	CueClick Cue = iota
	CueNav
	CueConfirm
	CueCancel
	CueEat
	CueCrash
	CueLaser
	CueThrust
	CueHyperspace

	cueCount
)

var cueNames = [cueCount]string{
	CueClick:      "click",
	CueNav:        "nav",
	CueConfirm:    "confirm",
	CueCancel:     "cancel",
	CueEat:        "eat",
	CueCrash:      "crash",
	CueLaser:      "laser",
	CueThrust:     "thrust",
	CueHyperspace: "hyperspace",
}

func (c Cue) String() string {
	if c >= cueCount {
		return "unknown"
	}
	return cueNames[c]
}

// ParseCue resolves a cue by name
func ParseCue(name string) (Cue, bool) {
	for i, n := range cueNames {
		if n == name {
			return Cue(i), true
		}
	}
	return 0, false
}

// voiceSpec describes one cue voice
// Zero freqEnd holds pitch constant; zero decay spreads the decay over the remaining duration
type voiceSpec struct {
	wave      WaveType
	freqStart float64
	freqEnd   float64
	sweep     time.Duration
	duration  time.Duration
	decay     time.Duration
	gain      float64
	noAttack  bool
}

var cueTable = [cueCount]voiceSpec{
	CueClick: {wave: WaveSquare, freqStart: constant.ClickFreq, duration: constant.ClickDuration, gain: constant.ClickGain},
	CueNav:   {wave: WaveSquare, freqStart: constant.NavFreq, duration: constant.NavDuration, gain: constant.NavGain},
	CueConfirm: {
		wave:      WaveSquare,
		freqStart: constant.ConfirmFreqStart,
		freqEnd:   constant.ConfirmFreqEnd,
		sweep:     constant.ConfirmSweepDuration,
		duration:  constant.ConfirmDuration,
		gain:      constant.ConfirmGain,
		noAttack:  true,
	},
	CueCancel: {wave: WaveSaw, freqStart: constant.CancelFreq, duration: constant.CancelDuration, gain: constant.CancelGain},
	CueEat:    {wave: WaveTriangle, freqStart: constant.EatFreq, duration: constant.EatDuration, gain: constant.EatGain},
	CueCrash:  {wave: WaveSaw, freqStart: constant.CrashFreq, duration: constant.CrashDuration, gain: constant.CrashGain},
	CueLaser: {
		wave:      WaveSaw,
		freqStart: constant.LaserFreqStart,
		freqEnd:   constant.LaserFreqEnd,
		sweep:     constant.LaserSweepDuration,
		duration:  constant.LaserDuration,
		decay:     constant.LaserDecayDuration,
		gain:      constant.LaserGain,
		noAttack:  true,
	},
	CueThrust:     {wave: WaveSaw, freqStart: constant.ThrustFreq, duration: constant.ThrustDuration, gain: constant.ThrustGain},
	CueHyperspace: {wave: WaveSine, freqStart: constant.HyperspaceFreq, duration: constant.HyperspaceDuration, gain: constant.HyperspaceGain},
}

// Duration returns how long the cue plays
func (c Cue) Duration() time.Duration {
	if c >= cueCount {
		return 0
	}
	return cueTable[c].duration
}
