// Package host defines what the device hands to each mini-app while it is focused
package host

import (
	"math/rand"

	"github.com/lixenwraith/retro-handheld/audio"
	"github.com/lixenwraith/retro-handheld/engine"
	"github.com/lixenwraith/retro-handheld/event"
	"github.com/lixenwraith/retro-handheld/input"
	"github.com/lixenwraith/retro-handheld/store"
)

// Cues plays audio feedback
type Cues interface {
	Emit(c audio.Cue) bool
}

// Env is the set of collaborators an app may use between Mount and Unmount
type Env struct {
	Bus    *event.Bus[input.Action]
	Sched  *engine.Scheduler
	Cues   Cues
	Scores store.Store
	Rand   *rand.Rand

	// Close asks the device to defocus the app; the app must not touch Env afterwards
	Close func()
}

// App is a mini-application hosted on the device screen
// Mount subscribes to the bus and starts timers; Unmount must undo both
type App interface {
	ID() string
	Label() string
	Mount(env Env)
	Unmount()
}

// Factory builds a fresh app instance; world state never outlives focus
type Factory func() App
