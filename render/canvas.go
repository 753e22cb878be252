package render

// brailleBase is U+2800, the empty braille pattern
const brailleBase = 0x2800

// brailleBits maps a dot at (x%2, y%4) to its pattern bit
// Column 0 holds dots 1,2,3,7; column 1 holds 4,5,6,8
var brailleBits = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// Canvas is a dot raster packed 2x4 per terminal cell as braille patterns
type Canvas struct {
	cols, rows int
	cells      []uint8
}

// NewCanvas creates a canvas of cols x rows cells, (2*cols) x (4*rows) dots
func NewCanvas(cols, rows int) *Canvas {
	return &Canvas{
		cols:  cols,
		rows:  rows,
		cells: make([]uint8, cols*rows),
	}
}

// Size returns the dot dimensions
func (c *Canvas) Size() (w, h int) {
	return c.cols * 2, c.rows * 4
}

// Clear erases every dot
func (c *Canvas) Clear() {
	clear(c.cells)
}

// Set lights dot (x,y); out-of-range dots are dropped
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 || x >= c.cols*2 || y >= c.rows*4 {
		return
	}
	c.cells[(y/4)*c.cols+x/2] |= brailleBits[y&3][x&1]
}

// Line draws a dot line from (x0,y0) to (x1,y1) inclusive
func (c *Canvas) Line(x0, y0, x1, y1 int) {
	dx := x1 - x0
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y0
	if dy < 0 {
		dy = -dy
	}

	stepX := -1
	if x0 < x1 {
		stepX = 1
	}
	stepY := -1
	if y0 < y1 {
		stepY = 1
	}

	err := dx - dy
	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += stepX
		}
		if e2 < dx {
			err += dx
			y0 += stepY
		}
	}
}

// Cell returns the braille rune for cell (cx,cy), zero when the cell is empty
func (c *Canvas) Cell(cx, cy int) rune {
	if cx < 0 || cy < 0 || cx >= c.cols || cy >= c.rows {
		return 0
	}
	bits := c.cells[cy*c.cols+cx]
	if bits == 0 {
		return 0
	}
	return rune(brailleBase + int(bits))
}
