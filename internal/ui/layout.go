package ui

// Layout arranges panels and defines focus order.
type Layout interface {
	Panels() []Panel
	FocusOrder() []string // Tab order for focus
}

// panelAt returns the first panel of l containing (x, y).
func panelAt(l Layout, width, height, x, y int) (Panel, bool) {
	for _, p := range l.Panels() {
		if p.Contains(width, height, x, y) {
			return p, true
		}
	}
	return Panel{}, false
}
