// Package snake implements the grid snake game
package snake

// State is the game phase
type State uint8

const (
	StateMenu State = iota
	StatePlaying
	StatePaused
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "MENU"
	case StatePlaying:
		return "PLAYING"
	case StatePaused:
		return "PAUSED"
	case StateGameOver:
		return "GAME_OVER"
	}
	return "UNKNOWN"
}

// Point is a grid cell or a unit direction
type Point struct {
	X, Y int
}

func (p Point) Add(o Point) Point { return Point{p.X + o.X, p.Y + o.Y} }

var (
	dirUp    = Point{0, -1}
	dirDown  = Point{0, 1}
	dirLeft  = Point{-1, 0}
	dirRight = Point{1, 0}
)

// World is the complete mutable game state, updated in place each tick
type World struct {
	Width, Height int

	// Body is head first
	Body    []Point
	Food    Point
	HasFood bool

	Dir     Point
	NextDir Point
	Wrap    bool

	Score int
	High  int
	State State
}

// Occupied reports whether p is part of the body
func (w *World) Occupied(p Point) bool {
	for _, b := range w.Body {
		if b == p {
			return true
		}
	}
	return false
}

// Head returns the first body cell
func (w *World) Head() Point {
	return w.Body[0]
}

// inFoodRows reports whether y is outside the reserved top and bottom rows
func (w *World) inFoodRows(y int) bool {
	return y >= 1 && y <= w.Height-2
}
