package device

import (
	"github.com/lixenwraith/retro-handheld/asteroids"
	"github.com/lixenwraith/retro-handheld/calc"
	"github.com/lixenwraith/retro-handheld/host"
	"github.com/lixenwraith/retro-handheld/snake"
)

// Entry is one tile on the app picker
type Entry struct {
	ID    string
	Label string
	New   host.Factory
}

// DefaultApps returns the built-in apps in picker order
func DefaultApps() []Entry {
	return []Entry{
		{ID: calc.AppID, Label: calc.AppLabel, New: calc.Factory},
		{ID: snake.AppID, Label: snake.AppLabel, New: snake.Factory},
		{ID: asteroids.AppID, Label: asteroids.AppLabel, New: asteroids.Factory},
	}
}
