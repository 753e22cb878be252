package render

import (
	"testing"
)

// TestCanvasDotBits verifies each dot of a cell maps to its braille bit
func TestCanvasDotBits(t *testing.T) {
	c := NewCanvas(1, 1)
	c.Set(0, 0)
	if got := c.Cell(0, 0); got != '⠁' {
		t.Errorf("Expected ⠁, got %q", got)
	}
	c.Set(1, 3)
	if got := c.Cell(0, 0); got != '⢁' {
		t.Errorf("Expected ⢁, got %q", got)
	}

	c.Clear()
	for y := 0; y < 4; y++ {
		for x := 0; x < 2; x++ {
			c.Set(x, y)
		}
	}
	if got := c.Cell(0, 0); got != '⣿' {
		t.Errorf("Expected full cell ⣿, got %q", got)
	}
}

// TestCanvasBounds verifies out-of-range dots and cells are ignored
func TestCanvasBounds(t *testing.T) {
	c := NewCanvas(2, 2)
	c.Set(-1, 0)
	c.Set(4, 0)
	c.Set(0, 8)
	for cy := 0; cy < 2; cy++ {
		for cx := 0; cx < 2; cx++ {
			if c.Cell(cx, cy) != 0 {
				t.Errorf("Expected empty cell (%d,%d)", cx, cy)
			}
		}
	}
	if c.Cell(5, 5) != 0 {
		t.Error("Expected zero for out-of-range cell")
	}
	if w, h := c.Size(); w != 4 || h != 8 {
		t.Errorf("Expected 4x8 dots, got %dx%d", w, h)
	}
}

// TestCanvasLine verifies both endpoints are drawn and the line is continuous
func TestCanvasLine(t *testing.T) {
	c := NewCanvas(8, 2) // 16x8 dots
	c.Line(15, 7, 0, 0)

	lit := func(x, y int) bool {
		return c.cells[(y/4)*c.cols+x/2]&brailleBits[y&3][x&1] != 0
	}
	if !lit(0, 0) || !lit(15, 7) {
		t.Fatal("Expected both endpoints lit")
	}
	// One dot per column on a shallow line
	for x := 0; x < 16; x++ {
		found := false
		for y := 0; y < 8; y++ {
			if lit(x, y) {
				found = true
			}
		}
		if !found {
			t.Errorf("Expected a dot in column %d", x)
		}
	}

	c.Clear()
	c.Line(3, 2, 3, 2)
	if !lit(3, 2) {
		t.Error("Expected single-dot line")
	}
}
