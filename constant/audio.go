package constant

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate     = 44100
	AudioBufferDuration = 50 * time.Millisecond
	AudioMasterVolume   = 0.8
)

// Voice envelope
const (
	// CueAttack is the linear ramp from silence to peak gain
	CueAttack = 10 * time.Millisecond

	// CueFloorGain is the level the exponential decay reaches at cue end
	CueFloorGain = 0.01
)

// Click / Nav blips
const (
	ClickFreq     = 800.0
	ClickDuration = 50 * time.Millisecond
	ClickGain     = 0.05

	NavFreq     = 300.0
	NavDuration = 50 * time.Millisecond
	NavGain     = 0.05
)

// Confirm: rising square sweep
const (
	ConfirmFreqStart     = 880.0
	ConfirmFreqEnd       = 1760.0
	ConfirmSweepDuration = 100 * time.Millisecond
	ConfirmDuration      = 300 * time.Millisecond
	ConfirmGain          = 0.1
)

// Cancel / Crash saw buzzes
const (
	CancelFreq     = 150.0
	CancelDuration = 200 * time.Millisecond
	CancelGain     = 0.08

	CrashFreq     = 100.0
	CrashDuration = 400 * time.Millisecond
	CrashGain     = 0.15
)

// Eat chirp
const (
	EatFreq     = 600.0
	EatDuration = 100 * time.Millisecond
	EatGain     = 0.1
)

// Laser: falling saw sweep, decay ends before the voice stops
const (
	LaserFreqStart     = 880.0
	LaserFreqEnd       = 110.0
	LaserSweepDuration = 150 * time.Millisecond
	LaserDecayDuration = 150 * time.Millisecond
	LaserDuration      = 200 * time.Millisecond
	LaserGain          = 0.1
)

// Thrust / Hyperspace
const (
	ThrustFreq     = 100.0
	ThrustDuration = 100 * time.Millisecond
	ThrustGain     = 0.05

	HyperspaceFreq     = 1200.0
	HyperspaceDuration = 300 * time.Millisecond
	HyperspaceGain     = 0.1
)
