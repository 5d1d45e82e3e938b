package ui

// BoundsFunc returns the panel's position and size given terminal dimensions.
// Returns x, y, width, height.
type BoundsFunc func(width, height int) (x, y, w, h int)

// Panel hosts a View and knows its bounds within a layout.
type Panel struct {
	ID     string
	View   View
	Bounds BoundsFunc
}

// Contains reports whether the terminal cell (x, y) falls inside the panel when the
// terminal is width by height.
func (p Panel) Contains(width, height, x, y int) bool {
	if p.Bounds == nil {
		return false
	}
	px, py, pw, ph := p.Bounds(width, height)
	return x >= px && x < px+pw && y >= py && y < py+ph
}

// Local translates terminal coordinates into panel-relative ones.
func (p Panel) Local(width, height, x, y int) (int, int) {
	if p.Bounds == nil {
		return x, y
	}
	px, py, _, _ := p.Bounds(width, height)
	return x - px, y - py
}
