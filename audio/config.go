package audio

import (
	"os"
	"strconv"
	"time"

	"github.com/lixenwraith/retro-handheld/constant"
)

// Config holds audio output settings
type Config struct {
	Enabled        bool
	MasterVolume   float64
	SampleRate     int
	BufferDuration time.Duration
}

// DefaultConfig returns the built-in audio settings
func DefaultConfig() *Config {
	return &Config{
		Enabled:        true,
		MasterVolume:   constant.AudioMasterVolume,
		SampleRate:     constant.AudioSampleRate,
		BufferDuration: constant.AudioBufferDuration,
	}
}

// ApplyEnv overrides fields from environment variables; unparseable values are ignored
func (c *Config) ApplyEnv() {
	if enabled := os.Getenv("HANDHELD_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			c.Enabled = val
		}
	}

	// Master volume 0-100 converted to 0.0-1.0
	if volume := os.Getenv("HANDHELD_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			c.SetVolumePercent(val)
		}
	}

	if sampleRate := os.Getenv("HANDHELD_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			c.SampleRate = val
		}
	}
}

// SetVolumePercent sets master volume from a 0-100 value, clamped
func (c *Config) SetVolumePercent(pct int) {
	v := float64(pct) / 100.0
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	c.MasterVolume = v
}
