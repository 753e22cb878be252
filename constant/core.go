package constant

import "time"

// Main Loop Timing
const (
	// FixedStep is the simulation step used by the continuous loops (Asteroids, Keychain)
	// Per-step constants below are tuned for this rate
	FixedStep = time.Second / 60

	// MaxStepsPerFrame bounds catch-up after a stalled frame
	MaxStepsPerFrame = 5

	// ClockUpdateInterval refreshes the device status bar clock
	ClockUpdateInterval = time.Second

	// InputChannelSize buffers terminal events between poller and main loop
	InputChannelSize = 256
)

// Input
const (
	// KeyRepeatWindow treats an identical key arriving sooner than this as terminal auto-repeat
	// Terminal repeat rates sit around 25-40Hz after the initial delay
	KeyRepeatWindow = 45 * time.Millisecond
)

// Persistent score keys
const (
	SnakeHighScoreKey     = "snake_highscore"
	AsteroidsHighScoreKey = "asteroids_highscore"
)
