package ui

import tea "github.com/charmbracelet/bubbletea"

// Overlay is a modal view drawn over the page, with the keys that dismiss it and the
// panel it occupies. Clicks outside the panel dismiss it too.
type Overlay struct {
	Panel       Panel
	DismissKeys []string // e.g. "esc", "q"
}

// IsDismissKey returns true if the given key string should dismiss this overlay.
func (o *Overlay) IsDismissKey(key string) bool {
	for _, k := range o.DismissKeys {
		if k == key {
			return true
		}
	}
	return false
}

// View returns the overlay's hosted view.
func (o *Overlay) View() View {
	return o.Panel.View
}

// OverlaySlot holds at most one overlay. Showing a new overlay replaces the current one.
type OverlaySlot struct {
	current *Overlay
}

// Show installs o, replacing any overlay already shown.
// Returns true if an overlay was replaced.
func (s *OverlaySlot) Show(o Overlay) bool {
	replaced := s.current != nil
	s.current = &o
	return replaced
}

// Dismiss removes the current overlay.
func (s *OverlaySlot) Dismiss() (Overlay, bool) {
	if s.current == nil {
		return Overlay{}, false
	}
	o := *s.current
	s.current = nil
	return o, true
}

// Active returns the current overlay, if any.
func (s *OverlaySlot) Active() (*Overlay, bool) {
	return s.current, s.current != nil
}

// Update passes msg to the overlay's view and replaces the view with the result.
// Returns the cmd from the view's Update. Caller must run the cmd.
func (s *OverlaySlot) Update(msg tea.Msg) (tea.Cmd, bool) {
	if s.current == nil {
		return nil, false
	}
	v, cmd := s.current.Panel.View.Update(msg)
	s.current.Panel.View = v
	return cmd, true
}
