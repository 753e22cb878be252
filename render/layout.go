package render

import (
	"math"

	"github.com/lixenwraith/retro-handheld/calc"
	"github.com/lixenwraith/retro-handheld/constant"
	"github.com/lixenwraith/retro-handheld/input"
	"github.com/lixenwraith/retro-handheld/vmath"
)

// Rect is a cell rectangle
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether cell (x,y) is inside r
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// KeyRegion is one calculator key on the LCD
type KeyRegion struct {
	Rect
	Key rune
}

// Picker tile and keypad geometry
const (
	tileW   = 14
	tileH   = 7
	tileGap = 4
	tileTop = 6

	keyW    = 8
	keyH    = 3
	keyGap  = 1
	keyTop  = 6
	buttonW = 5
	buttonH = 3
)

// buttonOrder is the action button row, left to right
var buttonOrder = [...]input.Action{input.BtnStart, input.BtnY, input.BtnX, input.BtnB, input.BtnA}

// Layout places the device in a terminal of a given size
// All rectangles are absolute terminal cells
type Layout struct {
	Fits bool

	Device  Rect
	LCD     Rect // Inner screen, row 0 is the status bar
	Mute    Rect
	Lanyard Rect

	Controls []input.Region // D-pad arms and action buttons
	DpadHub  Rect
	Tiles    []Rect
	Keys     []KeyRegion // KeypadLayout order, then the reset key
}

// NewLayout centres the device in a termW x termH terminal with tiles picker entries
func NewLayout(termW, termH, tiles int) Layout {
	var l Layout
	l.Fits = termW >= constant.DeviceCols+3 && termH >= constant.DeviceRows

	// Leave room on the left for the lanyard loop
	ox := max(3, (termW-constant.DeviceCols)/2)
	oy := max(0, (termH-constant.DeviceRows)/2)

	l.Device = Rect{ox, oy, constant.DeviceCols, constant.DeviceRows}
	l.LCD = Rect{ox + constant.DeviceMarginX + 1, oy + 3, constant.ScreenCols, constant.ScreenRows}
	l.Mute = Rect{l.LCD.X + l.LCD.W - 4, oy + 1, 4, 1}
	l.Lanyard = Rect{ox - 2, oy + 3, 2, 2}

	l.layoutControls()
	l.layoutTiles(tiles)
	l.layoutKeys()
	return l
}

func (l *Layout) layoutControls() {
	ctrlTop := l.LCD.Y + l.LCD.H + 2
	dx := l.Device.X + 12
	dy := ctrlTop + 4

	l.DpadHub = Rect{dx - 2, dy - 1, 5, 3}
	l.Controls = []input.Region{
		{X: dx - 2, Y: dy - 3, W: 5, H: 2, Action: input.DpadUp},
		{X: dx - 2, Y: dy + 2, W: 5, H: 2, Action: input.DpadDown},
		{X: dx - 7, Y: dy - 1, W: 5, H: 3, Action: input.DpadLeft},
		{X: dx + 3, Y: dy - 1, W: 5, H: 3, Action: input.DpadRight},
	}

	x0 := l.Device.X + l.Device.W - constant.DeviceMarginX - len(buttonOrder)*(buttonW+1)
	for i, a := range buttonOrder {
		l.Controls = append(l.Controls, input.Region{
			X: x0 + i*(buttonW+1), Y: ctrlTop + 2, W: buttonW, H: buttonH, Action: a,
		})
	}
}

func (l *Layout) layoutTiles(n int) {
	if n <= 0 {
		return
	}
	total := n*tileW + (n-1)*tileGap
	x := l.LCD.X + (l.LCD.W-total)/2
	for i := 0; i < n; i++ {
		l.Tiles = append(l.Tiles, Rect{x + i*(tileW+tileGap), l.LCD.Y + tileTop, tileW, tileH})
	}
}

func (l *Layout) layoutKeys() {
	total := 4*keyW + 3*keyGap
	x := l.LCD.X + (l.LCD.W-total)/2
	for i, k := range calc.KeypadLayout {
		col, row := i%4, i/4
		l.Keys = append(l.Keys, KeyRegion{
			Rect: Rect{x + col*(keyW+keyGap), l.LCD.Y + keyTop + row*keyH, keyW, keyH},
			Key:  k,
		})
	}
	l.Keys = append(l.Keys, KeyRegion{
		Rect: Rect{x, l.LCD.Y + keyTop + 4*keyH, total, 1},
		Key:  calc.ResetKey,
	})
}

// TileAt returns the picker tile under (x,y)
func (l *Layout) TileAt(x, y int) (int, bool) {
	if !l.Fits {
		return 0, false
	}
	for i, t := range l.Tiles {
		if t.Contains(x, y) {
			return i, true
		}
	}
	return 0, false
}

// KeyAt returns the calculator key under (x,y)
func (l *Layout) KeyAt(x, y int) (rune, bool) {
	if !l.Fits {
		return 0, false
	}
	for _, k := range l.Keys {
		if k.Contains(x, y) {
			return k.Key, true
		}
	}
	return 0, false
}

// MuteAt reports whether (x,y) is on the speaker mute toggle
func (l *Layout) MuteAt(x, y int) bool {
	return l.Fits && l.Mute.Contains(x, y)
}

// PixelAt converts a cell to keychain pixel space, at the cell centre
func PixelAt(x, y int) vmath.Vec2F {
	return vmath.V2F(
		(float64(x)+0.5)*constant.KeychainPixelsPerCol,
		(float64(y)+0.5)*constant.KeychainPixelsPerRow,
	)
}

// CellAt converts a keychain pixel position to the cell containing it
func CellAt(p vmath.Vec2F) (int, int) {
	return int(math.Floor(p.X / constant.KeychainPixelsPerCol)), int(math.Floor(p.Y / constant.KeychainPixelsPerRow))
}

// Anchor returns the lanyard loop centre in keychain pixel space
func (l *Layout) Anchor() vmath.Vec2F {
	return vmath.V2F(
		float64(l.Lanyard.X)*constant.KeychainPixelsPerCol+float64(l.Lanyard.W)*constant.KeychainPixelsPerCol/2,
		float64(l.Lanyard.Y)*constant.KeychainPixelsPerRow+float64(l.Lanyard.H)*constant.KeychainPixelsPerRow/2,
	)
}
