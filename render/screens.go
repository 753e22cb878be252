package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/lixenwraith/retro-handheld/asteroids"
	"github.com/lixenwraith/retro-handheld/calc"
	"github.com/lixenwraith/retro-handheld/constant"
	"github.com/lixenwraith/retro-handheld/device"
	"github.com/lixenwraith/retro-handheld/snake"
	"github.com/lixenwraith/retro-handheld/vmath"
)

// tileIcons are keyed by app id; unknown apps get a generic glyph
var tileIcons = map[string]string{
	calc.AppID:      "±÷",
	snake.AppID:     "∿∿●",
	asteroids.AppID: "▲ ·",
}

func drawPicker(s Surface, l *Layout, lcd lcdStyles, shell *device.Shell) {
	apps := shell.Apps()
	for i, t := range l.Tiles {
		if i >= len(apps) {
			break
		}
		style := lcd.ink
		if i == shell.Highlight() {
			style = lcd.inv
			fill(s, t, ' ', style)
		}
		box(s, t, style)

		icon, ok := tileIcons[apps[i].ID]
		if !ok {
			icon = "▣"
		}
		textCenter(s, t, t.Y+2, icon, style)
		textCenter(s, t, t.Y+4, strings.ToUpper(apps[i].Label), style)
	}
	hint := "◀▶ SELECT   A OPEN   Y RANDOM   X LIGHT"
	textCenter(s, l.LCD, l.LCD.Y+l.LCD.H-2, hint, lcd.faint)
}

// Calculator

func isOperatorKey(k rune) bool {
	_, ok := calc.ParseOp(k)
	return ok
}

func drawCalc(s Surface, l *Layout, lcd lcdStyles, c *calc.Calculator) {
	x0, right := l.LCD.X+1, l.LCD.X+l.LCD.W-1
	text(s, x0, l.LCD.Y+1, "CALC-86", lcd.ink)
	textRight(s, right, l.LCD.Y+1, "B:EXIT", lcd.faint)

	screen := Rect{l.Keys[0].X, l.LCD.Y + 2, l.Keys[len(l.Keys)-1].W, 4}
	box(s, screen, lcd.faint)
	inner := screen.W - 3
	textRight(s, screen.X+screen.W-2, screen.Y+1, tail(c.Echo(), inner), lcd.bg)
	textRight(s, screen.X+screen.W-2, screen.Y+2, tail(c.Display(), inner), lcd.ink)

	for _, k := range l.Keys {
		if k.Key == calc.ResetKey {
			fill(s, k.Rect, ' ', lcd.inv)
			textCenter(s, k.Rect, k.Y, "RESET", lcd.inv)
			continue
		}
		style := lcd.ink
		if isOperatorKey(k.Key) {
			style = lcd.inv
			fill(s, k.Rect, ' ', style)
		}
		box(s, k.Rect, style)
		put(s, k.X+k.W/2, k.Y+1, k.Key, style)
	}
}

// tail keeps the last n runes of str, marking the cut with an ellipsis
func tail(str string, n int) string {
	r := []rune(str)
	if len(r) <= n || n < 2 {
		return str
	}
	return "…" + string(r[len(r)-n+1:])
}

// Snake

func drawSnake(s Surface, l *Layout, lcd lcdStyles, w *snake.World) {
	drawScores(s, l, lcd, w.Score, w.High)
	mode := "WALL"
	if w.Wrap {
		mode = "WRAP"
	}
	textCenter(s, l.LCD, l.LCD.Y+1, mode, lcd.faint)

	cw := constant.SnakeCellCols
	gx := l.LCD.X + (l.LCD.W-w.Width*cw)/2
	gy := l.LCD.Y + 3
	box(s, Rect{gx - 1, gy - 1, w.Width*cw + 2, w.Height + 2}, lcd.faint)

	for y := 0; y < w.Height; y++ {
		for x := 0; x < w.Width; x++ {
			put(s, gx+x*cw, gy+y, '·', lcd.faint)
		}
	}
	if w.HasFood {
		text(s, gx+w.Food.X*cw, gy+w.Food.Y, "◆", lcd.ink)
	}
	for i, p := range w.Body {
		seg := "▓▓"
		if i == 0 {
			seg = "██"
		}
		text(s, gx+p.X*cw, gy+p.Y, seg, lcd.ink)
	}

	grid := Rect{gx, gy, w.Width * cw, w.Height}
	overlay := Rect{grid.X + 4, grid.Y + 2, grid.W - 8, grid.H - 4}
	switch w.State {
	case snake.StateMenu:
		panel(s, overlay, lcd.ink, "SNAKE+", "", "PRESS A TO START")
	case snake.StatePaused:
		panel(s, overlay, lcd.ink, "PAUSED")
	case snake.StateGameOver:
		panel(s, overlay, lcd.ink, "GAME OVER", fmt.Sprintf("SCORE: %d", w.Score), "", "PRESS A TO RETRY")
	case snake.StatePlaying:
	}
}

func drawScores(s Surface, l *Layout, lcd lcdStyles, score, high int) {
	text(s, l.LCD.X+1, l.LCD.Y+1, fmt.Sprintf("SCORE:%d", score), lcd.ink)
	textRight(s, l.LCD.X+l.LCD.W-1, l.LCD.Y+1, fmt.Sprintf("HI:%d", high), lcd.ink)
}

// Asteroids

// particleDim is the fade below which a particle moves to the faint raster
const particleDim = 0.5

func (r *Renderer) drawAsteroids(lcd lcdStyles, w *asteroids.World) {
	s, l, c, haze := r.screen, &r.layout, r.canvas, r.haze
	drawScores(s, l, lcd, w.Score, w.High)

	c.Clear()
	haze.Clear()
	dw, _ := c.Size()
	scale := float64(dw) / w.Width
	dot := func(p vmath.Vec2F) (int, int) {
		return int(math.Round(p.X * scale)), int(math.Round(p.Y * scale))
	}
	poly := func(pts []vmath.Vec2F) {
		for i := range pts {
			x0, y0 := dot(pts[i])
			x1, y1 := dot(pts[(i+1)%len(pts)])
			c.Line(x0, y0, x1, y1)
		}
	}

	if w.State == asteroids.StatePlaying {
		ship := &w.Ship
		hull := ship.Hull()
		poly(hull[:])
		if ship.Thrust {
			tail := ship.Pos.Add(vmath.FromAngle(ship.Angle, -constant.ShipNozzleOffset))
			x0, y0 := dot(hull[2])
			x1, y1 := dot(tail)
			c.Line(x0, y0, x1, y1)
		}
		if ship.Shield > 0 {
			ring := make([]vmath.Vec2F, 12)
			for i := range ring {
				ring[i] = ship.Pos.Add(vmath.FromAngle(float64(i)*math.Pi/6, constant.ShipRadius+4))
			}
			poly(ring)
		}
	}

	for i := range w.Asteroids {
		a := &w.Asteroids[i]
		pts := make([]vmath.Vec2F, len(a.Verts))
		for j, v := range a.Verts {
			pts[j] = a.Pos.Add(v)
		}
		poly(pts)
	}
	for _, b := range w.Bullets {
		c.Set(dot(b.Pos))
	}
	for i := range w.Particles {
		p := &w.Particles[i]
		if p.Fade() >= particleDim {
			c.Set(dot(p.Pos))
		} else {
			haze.Set(dot(p.Pos))
		}
	}

	view := Rect{
		l.LCD.X + (l.LCD.W-constant.AsteroidsCanvasCols)/2,
		l.LCD.Y + 2,
		constant.AsteroidsCanvasCols,
		constant.AsteroidsCanvasRows,
	}
	for cy := 0; cy < view.H; cy++ {
		for cx := 0; cx < view.W; cx++ {
			if ch := c.Cell(cx, cy); ch != 0 {
				put(s, view.X+cx, view.Y+cy, ch, lcd.ink)
			} else if ch := haze.Cell(cx, cy); ch != 0 {
				put(s, view.X+cx, view.Y+cy, ch, lcd.faint)
			}
		}
	}

	overlay := Rect{view.X + 6, view.Y + 3, view.W - 12, view.H - 6}
	switch w.State {
	case asteroids.StateMenu:
		panel(s, overlay, lcd.ink, "ASTRO-VECTOR", "", "PRESS A TO START", "", "D-PAD: PILOT", "A: FIRE | B: WARP", "X: SHIELD")
	case asteroids.StateGameOver:
		panel(s, overlay, lcd.ink, "DESTROYED", fmt.Sprintf("FINAL: %d", w.Score), "", "PRESS A TO RETRY")
	case asteroids.StatePlaying:
	}
}
