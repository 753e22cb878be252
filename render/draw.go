package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Surface is the subset of tcell.Screen the draw helpers write to
type Surface interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// put writes one rune
func put(s Surface, x, y int, r rune, style tcell.Style) {
	s.SetContent(x, y, r, nil, style)
}

// text writes str from (x,y) and returns the column after the last rune
func text(s Surface, x, y int, str string, style tcell.Style) int {
	for _, r := range str {
		s.SetContent(x, y, r, nil, style)
		x += max(1, runewidth.RuneWidth(r))
	}
	return x
}

// textRight writes str so it ends at column right-1
func textRight(s Surface, right, y int, str string, style tcell.Style) {
	text(s, right-runewidth.StringWidth(str), y, str, style)
}

// textCenter centres str in r on row y
func textCenter(s Surface, r Rect, y int, str string, style tcell.Style) {
	text(s, r.X+(r.W-runewidth.StringWidth(str))/2, y, str, style)
}

// fill paints r with ch
func fill(s Surface, r Rect, ch rune, style tcell.Style) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			s.SetContent(x, y, ch, nil, style)
		}
	}
}

// box draws a single-line border on the edge of r, leaving the interior untouched
func box(s Surface, r Rect, style tcell.Style) {
	if r.W < 2 || r.H < 2 {
		return
	}
	x1, y1 := r.X+r.W-1, r.Y+r.H-1
	for x := r.X + 1; x < x1; x++ {
		put(s, x, r.Y, '─', style)
		put(s, x, y1, '─', style)
	}
	for y := r.Y + 1; y < y1; y++ {
		put(s, r.X, y, '│', style)
		put(s, x1, y, '│', style)
	}
	put(s, r.X, r.Y, '┌', style)
	put(s, x1, r.Y, '┐', style)
	put(s, r.X, y1, '└', style)
	put(s, x1, y1, '┘', style)
}

// panel fills r and frames it, used for in-screen modal overlays
func panel(s Surface, r Rect, style tcell.Style, lines ...string) {
	fill(s, r, ' ', style)
	box(s, r, style)
	top := r.Y + (r.H-len(lines))/2
	for i, l := range lines {
		textCenter(s, r, top+i, l, style)
	}
}
