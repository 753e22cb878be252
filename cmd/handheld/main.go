// Command handheld runs the retro handheld console in a terminal
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/retro-handheld/audio"
	"github.com/lixenwraith/retro-handheld/config"
	"github.com/lixenwraith/retro-handheld/core"
	"github.com/lixenwraith/retro-handheld/engine"
	"github.com/lixenwraith/retro-handheld/input"
	"github.com/lixenwraith/retro-handheld/store"
)

var (
	configFlag = flag.String("config", config.DefaultPath(), "Config file (TOML)")
	scoresFlag = flag.String("scores", "", "High score file (default: per-user config dir)")
	logFlag    = flag.String("log", "", "Log file (default: from config)")
	muteFlag   = flag.Bool("mute", false, "Start with audio muted")
	debugFlag  = flag.Bool("debug", false, "Show the debug overlay")
	fpsFlag    = flag.Int("fps", 0, "Frame rate override")
)

func main() {
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	if f := setupLogging(cfg.LogPath); f != nil {
		defer f.Close()
	}
	log.Printf("handheld: start fps=%d audio=%t", cfg.FPS, cfg.Audio.Enabled)

	keys := input.DefaultKeyTable()
	if err := keys.ApplyBindings(cfg.Keys); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}

	scores := openScores(cfg.ScoresPath)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()
	screen.HideCursor()
	core.SetCrashScreen(screen)

	// Panic Recovery: restore the terminal even if a handler crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	h := newHandheld(cfg, screen, keys, audio.SpeakerOutput{}, scores, engine.NewTimeProvider(), time.Now().UnixNano())
	if *muteFlag {
		h.audio.SetMuted(true)
	}

	h.run()

	h.close()
	core.SetCrashScreen(nil)
	screen.Fini()
	log.Printf("handheld: exit")
}

// loadConfig layers defaults, the config file, the environment and flags
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv()

	if *scoresFlag != "" {
		cfg.ScoresPath = *scoresFlag
	}
	if *logFlag != "" {
		cfg.LogPath = *logFlag
	}
	if *fpsFlag > 0 {
		cfg.FPS = *fpsFlag
	}
	if *debugFlag {
		cfg.Debug = true
	}
	return cfg, cfg.Validate()
}

// openScores prefers the score file and falls back to memory when no path is usable
func openScores(path string) store.Store {
	if path == "" {
		p, err := store.DefaultPath()
		if err != nil {
			log.Printf("scores: %v, keeping scores in memory", err)
			return store.NewMemStore()
		}
		path = p
	}

	fs, err := store.OpenFileStore(path)
	switch {
	case errors.Is(err, store.ErrNoPath):
		return store.NewMemStore()
	case err != nil:
		log.Printf("scores: %v", err)
	}
	return fs
}
