// Package render draws the handheld into a tcell screen and resolves pointer positions
package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/retro-handheld/asteroids"
	"github.com/lixenwraith/retro-handheld/calc"
	"github.com/lixenwraith/retro-handheld/constant"
	"github.com/lixenwraith/retro-handheld/device"
	"github.com/lixenwraith/retro-handheld/input"
	"github.com/lixenwraith/retro-handheld/keychain"
	"github.com/lixenwraith/retro-handheld/snake"
)

// View is everything one frame shows
type View struct {
	Shell    *device.Shell
	Keychain *keychain.Spring
	Pressed  input.Action // Control drawn depressed this frame
	Debug    []string     // Overlay lines; nil hides the overlay
}

// Renderer owns the screen layout and the asteroids rasters
type Renderer struct {
	screen tcell.Screen
	layout Layout
	pad    input.ButtonPad
	canvas *Canvas
	haze   *Canvas // Fading particles, drawn in faint ink under the main raster
	tiles  int
}

// NewRenderer lays out the device for the screen's current size
func NewRenderer(screen tcell.Screen, tiles int) *Renderer {
	r := &Renderer{
		screen: screen,
		canvas: NewCanvas(constant.AsteroidsCanvasCols, constant.AsteroidsCanvasRows),
		haze:   NewCanvas(constant.AsteroidsCanvasCols, constant.AsteroidsCanvasRows),
		tiles:  tiles,
	}
	r.Resize()
	return r
}

// Resize recomputes the layout from the screen size
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.layout = NewLayout(w, h, r.tiles)
	if r.layout.Fits {
		r.pad.SetLayout(r.layout.Controls)
	} else {
		r.pad.SetLayout(nil)
	}
}

// Layout returns the current geometry for pointer hit-testing
func (r *Renderer) Layout() *Layout { return &r.layout }

// Pad resolves presses on the drawn D-pad and buttons
func (r *Renderer) Pad() *input.ButtonPad { return &r.pad }

// Draw renders one frame and shows it
func (r *Renderer) Draw(v View) {
	r.screen.Fill(' ', tcell.StyleDefault)

	if !r.layout.Fits {
		w, h := r.screen.Size()
		msg := fmt.Sprintf("terminal too small: need %dx%d", constant.DeviceCols+3, constant.DeviceRows)
		textCenter(r.screen, Rect{0, 0, w, h}, h/2, msg, tcell.StyleDefault)
		r.screen.Show()
		return
	}

	drawBody(r.screen, &r.layout, v.Shell.Muted())
	drawControls(r.screen, &r.layout, v.Pressed)

	lcd := newLcdStyles(v.Shell.Backlight())
	fill(r.screen, r.layout.LCD, ' ', lcd.bg)
	drawStatus(r.screen, &r.layout, lcd, v.Shell.StatusText())

	switch app := v.Shell.FocusedApp().(type) {
	case nil:
		drawPicker(r.screen, &r.layout, lcd, v.Shell)
	case *calc.App:
		drawCalc(r.screen, &r.layout, lcd, app.Calculator())
	case *snake.App:
		drawSnake(r.screen, &r.layout, lcd, app.Game().World())
	case *asteroids.App:
		r.drawAsteroids(lcd, app.Game().World())
	default:
		textCenter(r.screen, r.layout.LCD, r.layout.LCD.Y+r.layout.LCD.H/2, app.Label(), lcd.ink)
	}

	if v.Keychain != nil {
		drawKeychain(r.screen, v.Keychain)
	}
	if v.Debug != nil {
		drawOverlay(r.screen, v.Debug)
	}
	r.screen.Show()
}
