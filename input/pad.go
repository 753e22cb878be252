package input

// Region is a rectangular on-screen button in terminal cells
type Region struct {
	X, Y, W, H int
	Action     Action
}

// Contains reports whether cell (x,y) falls inside the region
func (r Region) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// ButtonPad resolves pointer presses on the drawn controls into actions
// The renderer replaces the layout whenever the device is redrawn at a new origin
type ButtonPad struct {
	regions []Region
}

// SetLayout replaces all button regions
func (p *ButtonPad) SetLayout(regions []Region) {
	p.regions = append(p.regions[:0], regions...)
}

// Regions returns the current layout
func (p *ButtonPad) Regions() []Region {
	return p.regions
}

// Hit returns the action of the first region containing (x,y)
func (p *ButtonPad) Hit(x, y int) (Action, bool) {
	for _, r := range p.regions {
		if r.Contains(x, y) {
			return r.Action, true
		}
	}
	return ActionNone, false
}
