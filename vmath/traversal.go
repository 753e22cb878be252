package vmath

import "math"

// Traverse visits every grid cell a segment from a to b passes through, in order
// Coordinates are in cell units; cell (x,y) covers [x,x+1) x [y,y+1)
// Supercover DDA: no cell along the segment is skipped, and both endpoint cells are visited
// Stops early when callback returns false
func Traverse(a, b Vec2F, callback func(x, y int) bool) {
	ix, iy := int(math.Floor(a.X)), int(math.Floor(a.Y))
	targetX, targetY := int(math.Floor(b.X)), int(math.Floor(b.Y))

	if !callback(ix, iy) || (ix == targetX && iy == targetY) {
		return
	}

	dx, dy := b.X-a.X, b.Y-a.Y
	stepX, stepY := 1, 1
	if dx < 0 {
		stepX, dx = -1, -dx
	}
	if dy < 0 {
		stepY, dy = -1, -dy
	}

	// tMax is the segment parameter at the next cell boundary, tDelta the parameter per cell
	tMaxX, tMaxY := math.Inf(1), math.Inf(1)
	var tDeltaX, tDeltaY float64
	if dx > 0 {
		tDeltaX = 1 / dx
		fx := a.X - math.Floor(a.X)
		if stepX > 0 {
			tMaxX = (1 - fx) * tDeltaX
		} else {
			tMaxX = fx * tDeltaX
		}
	}
	if dy > 0 {
		tDeltaY = 1 / dy
		fy := a.Y - math.Floor(a.Y)
		if stepY > 0 {
			tMaxY = (1 - fy) * tDeltaY
		} else {
			tMaxY = fy * tDeltaY
		}
	}

	for ix != targetX || iy != targetY {
		switch {
		case tMaxX < tMaxY:
			if ix != targetX {
				ix += stepX
				tMaxX += tDeltaX
			} else {
				// X is done, forced to step Y
				iy += stepY
				tMaxY += tDeltaY
			}
		case tMaxX > tMaxY:
			if iy != targetY {
				iy += stepY
				tMaxY += tDeltaY
			} else {
				ix += stepX
				tMaxX += tDeltaX
			}
		default:
			// Exact corner crossing
			if ix != targetX {
				ix += stepX
				tMaxX += tDeltaX
			}
			if iy != targetY {
				iy += stepY
				tMaxY += tDeltaY
			}
		}

		if !callback(ix, iy) {
			return
		}
	}
}
