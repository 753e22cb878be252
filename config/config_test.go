package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// TestLoadMissing verifies a missing file yields defaults
func TestLoadMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cfg.FPS != 60 {
		t.Errorf("Expected default fps 60, got %d", cfg.FPS)
	}
	if !cfg.Audio.Enabled || cfg.Audio.Volume != 80 {
		t.Errorf("Expected default audio, got %+v", cfg.Audio)
	}
}

// TestLoadOverrides verifies file values replace defaults
func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
fps = 30
scores_path = "/tmp/s.toml"

[audio]
enabled = false
volume = 25

[keys]
BTN_A = ["space", "j"]
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.FPS != 30 {
		t.Errorf("Expected fps 30, got %d", cfg.FPS)
	}
	if cfg.Audio.Enabled {
		t.Error("Expected audio disabled")
	}
	if cfg.Audio.SampleRate != 44100 {
		t.Errorf("Expected unset sample rate to keep default, got %d", cfg.Audio.SampleRate)
	}
	if got := cfg.Keys["BTN_A"]; len(got) != 2 || got[0] != "space" {
		t.Errorf("Expected BTN_A bindings, got %v", got)
	}
	if a := cfg.AudioConfig(); a.MasterVolume != 0.25 {
		t.Errorf("Expected master volume 0.25, got %f", a.MasterVolume)
	}
	if cfg.FrameInterval() != time.Second/30 {
		t.Errorf("Expected 30fps interval, got %v", cfg.FrameInterval())
	}
}

// TestLoadRejects verifies unknown keys and out-of-range values fail
func TestLoadRejects(t *testing.T) {
	cases := map[string]string{
		"unknown key": "colour = \"red\"\n",
		"fps range":   "fps = 0\n",
		"volume":      "[audio]\nvolume = 300\n",
		"syntax":      "fps = = 1\n",
	}
	for name, content := range cases {
		if _, err := Load(writeConfig(t, content)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

// TestApplyEnv verifies environment overrides
func TestApplyEnv(t *testing.T) {
	t.Setenv("HANDHELD_MASTER_VOLUME", "40")
	t.Setenv("HANDHELD_SCORES_PATH", "/var/tmp/hs.toml")
	t.Setenv("HANDHELD_FPS", "120")

	cfg := Default()
	cfg.ApplyEnv()

	if cfg.Audio.Volume != 40 {
		t.Errorf("Expected volume 40, got %d", cfg.Audio.Volume)
	}
	if cfg.ScoresPath != "/var/tmp/hs.toml" {
		t.Errorf("Expected scores path override, got %q", cfg.ScoresPath)
	}
	if cfg.FPS != 120 {
		t.Errorf("Expected fps 120, got %d", cfg.FPS)
	}

	t.Setenv("HANDHELD_FPS", "-5")
	cfg = Default()
	cfg.ApplyEnv()
	if cfg.FPS != 60 {
		t.Errorf("Expected invalid fps ignored, got %d", cfg.FPS)
	}
}
