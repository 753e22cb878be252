// Package config loads runtime settings from a TOML file and the environment
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/retro-handheld/audio"
)

// AudioSection is the [audio] table
type AudioSection struct {
	Enabled    bool `toml:"enabled"`
	Volume     int  `toml:"volume"` // 0-100
	SampleRate int  `toml:"sample_rate"`
}

// Config is the full runtime configuration
type Config struct {
	Audio      AudioSection        `toml:"audio"`
	FPS        int                 `toml:"fps"`
	Debug      bool                `toml:"debug"`
	ScoresPath string              `toml:"scores_path"`
	LogPath    string              `toml:"log_path"`
	Keys       map[string][]string `toml:"keys"` // action name -> key names
}

// Default returns built-in settings
func Default() *Config {
	a := audio.DefaultConfig()
	return &Config{
		Audio: AudioSection{
			Enabled:    a.Enabled,
			Volume:     int(a.MasterVolume*100 + 0.5),
			SampleRate: a.SampleRate,
		},
		FPS:     60,
		LogPath: filepath.Join(os.TempDir(), "retro-handheld.log"),
	}
}

// DefaultPath returns the per-user config file location, empty if unknown
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "retro-handheld", "config.toml")
}

// Load reads path over the defaults; a missing file is not an error
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}
	return cfg, cfg.Validate()
}

// ApplyEnv overrides fields from HANDHELD_* variables; unparseable values are ignored
func (c *Config) ApplyEnv() {
	a := c.AudioConfig()
	a.ApplyEnv()
	c.Audio.Enabled = a.Enabled
	c.Audio.Volume = int(a.MasterVolume*100 + 0.5)
	c.Audio.SampleRate = a.SampleRate

	if p := os.Getenv("HANDHELD_SCORES_PATH"); p != "" {
		c.ScoresPath = p
	}
	if fps := os.Getenv("HANDHELD_FPS"); fps != "" {
		if v, err := strconv.Atoi(fps); err == nil && v > 0 {
			c.FPS = v
		}
	}
}

// Validate rejects values the runtime cannot honour
func (c *Config) Validate() error {
	if c.FPS < 1 || c.FPS > 240 {
		return fmt.Errorf("config: fps %d out of range 1-240", c.FPS)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 100 {
		return fmt.Errorf("config: audio.volume %d out of range 0-100", c.Audio.Volume)
	}
	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("config: audio.sample_rate must be positive")
	}
	return nil
}

// AudioConfig converts the [audio] table into engine settings
func (c *Config) AudioConfig() *audio.Config {
	a := audio.DefaultConfig()
	a.Enabled = c.Audio.Enabled
	a.SetVolumePercent(c.Audio.Volume)
	a.SampleRate = c.Audio.SampleRate
	return a
}

// FrameInterval returns the render period for the configured FPS
func (c *Config) FrameInterval() time.Duration {
	if c.FPS <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.FPS)
}
