package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/retro-handheld/input"
)

// drawBody paints the shell plastic, speaker row, LCD bezel and lanyard loop
func drawBody(s Surface, l *Layout, muted bool) {
	d := l.Device
	fill(s, d, ' ', styleBody)
	box(s, d, styleShadow)

	// Speaker grille and mute toggle
	for x := d.X + 3; x < d.X+13; x += 2 {
		put(s, x, d.Y+1, '▪', styleBody)
	}
	text(s, l.LCD.X+l.LCD.W/2-6, d.Y+1, "STEREO SOUND", styleBody)
	icon := "[♪]"
	if muted {
		icon = "[×]"
	}
	text(s, l.Mute.X, l.Mute.Y, icon, styleBody.Bold(true))

	bezel := Rect{l.LCD.X - 1, l.LCD.Y - 1, l.LCD.W + 2, l.LCD.H + 2}
	fill(s, bezel, ' ', styleBezel)
	box(s, bezel, styleBezel)

	textCenter(s, d, bezel.Y+bezel.H, "Handheld System", styleBody.Italic(true))

	// Lanyard loop hangs off the left edge
	fill(s, l.Lanyard, '▒', styleShadow)
}

// drawControls paints the D-pad cross and the action button row
func drawControls(s Surface, l *Layout, pressed input.Action) {
	fill(s, l.DpadHub, ' ', styleHub)
	put(s, l.DpadHub.X+2, l.DpadHub.Y+1, '●', styleHub)

	for _, rg := range l.Controls {
		r := Rect{rg.X, rg.Y, rg.W, rg.H}
		style := buttonStyle(rg.Action)
		if rg.Action == pressed {
			style = style.Reverse(true)
		}
		fill(s, r, ' ', style)

		cy := r.Y + r.H/2
		switch rg.Action {
		case input.DpadUp:
			put(s, r.X+2, cy, '▲', style)
		case input.DpadDown:
			put(s, r.X+2, cy, '▼', style)
		case input.DpadLeft:
			put(s, r.X+2, cy, '◀', style)
		case input.DpadRight:
			put(s, r.X+2, cy, '▶', style)
		case input.BtnStart:
			textCenter(s, Rect{r.X - 1, r.Y, r.W + 2, r.H}, r.Y+r.H, "START", styleBody)
		case input.BtnA:
			put(s, r.X+2, cy, 'A', style)
		case input.BtnB:
			put(s, r.X+2, cy, 'B', style)
		case input.BtnX:
			put(s, r.X+2, cy, 'X', style)
		case input.BtnY:
			put(s, r.X+2, cy, 'Y', style)
		case input.ActionNone:
		}
	}
}

func buttonStyle(a input.Action) tcell.Style {
	switch {
	case a.IsDpad():
		return styleDpad
	case a == input.BtnA:
		return styleButtonA
	case a == input.BtnStart:
		return styleStart
	default:
		return styleButton
	}
}

// drawStatus writes the LCD status bar on row 0
func drawStatus(s Surface, l *Layout, lcd lcdStyles, status string) {
	text(s, l.LCD.X+1, l.LCD.Y, status, lcd.ink)
	textRight(s, l.LCD.X+l.LCD.W-1, l.LCD.Y, "▕███▏", lcd.ink)
}
