package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/retro-handheld/constant"
	"github.com/lixenwraith/retro-handheld/keychain"
	"github.com/lixenwraith/retro-handheld/vmath"
)

var (
	styleString = tcell.StyleDefault.Foreground(RgbLanyard)
	styleRing   = tcell.StyleDefault.Foreground(RgbRing).Bold(true)
	styleTag    = tcell.StyleDefault.Background(RgbTag).Foreground(RgbHeart)
)

// drawKeychain strings the lanyard to the charm, on top of everything
func drawKeychain(s Surface, sp *keychain.Spring) {
	ax, ay := CellAt(sp.Anchor())
	cx, cy := CellAt(sp.Pos)

	toCells := func(p vmath.Vec2F) vmath.Vec2F {
		return vmath.V2F(p.X/constant.KeychainPixelsPerCol, p.Y/constant.KeychainPixelsPerRow)
	}
	vmath.Traverse(toCells(sp.Anchor()), toCells(sp.Pos), func(x, y int) bool {
		if (x != ax || y != ay) && (x != cx || y != cy) {
			put(s, x, y, '•', styleString)
		}
		return true
	})

	ring := 'O'
	if sp.Dragging {
		ring = '◉'
	}
	put(s, cx, cy, ring, styleRing)
	tag := " ♥ "
	text(s, cx-runewidth.StringWidth(tag)/2, cy+1, tag, styleTag)
}

// drawOverlay shows debug lines in the top-right corner
func drawOverlay(s tcell.Screen, lines []string) {
	w, _ := s.Size()
	width := 0
	for _, ln := range lines {
		width = max(width, runewidth.StringWidth(ln))
	}
	r := Rect{w - width - 4, 0, width + 4, len(lines) + 2}
	fill(s, r, ' ', styleOverlay)
	box(s, r, styleOverlay)
	for i, ln := range lines {
		text(s, r.X+2, r.Y+1+i, ln, styleOverlay)
	}
}
