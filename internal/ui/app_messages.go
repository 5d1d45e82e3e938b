package ui

import (
	"melodious/internal/catalog"
	"melodious/internal/selection"
)

// OpenCourseMsg is sent when the user explores a course card (enter or click).
// Course may name a card the catalog has no details for.
type OpenCourseMsg struct {
	Course string
}

// CloseOverlayMsg closes the course overlay (esc, q, close button, click outside).
type CloseOverlayMsg struct{}

// SelectLevelMsg requests a level for a course, from a card badge or an overlay button.
type SelectLevelMsg struct {
	Course string
	Level  catalog.Level
}

// levelSettledMsg is delivered when a deferred level change's fade delay has passed.
// It applies only if Token is still the course's pending token.
type levelSettledMsg struct {
	Course string
	Token  selection.Token
}

// NavigateMsg switches the page to Route (SPC g h/c/i/r or a navbar link).
type NavigateMsg struct {
	Route Route
}

// BackMsg returns to the previously visited route (SPC g b).
type BackMsg struct{}

// PickLevelMsg selects Level on the open course, or on the focused card when no
// overlay is open (SPC l b/i/a).
type PickLevelMsg struct {
	Level catalog.Level
}

// OpenFocusedMsg opens the overlay for the card under the cursor (SPC o).
type OpenFocusedMsg struct{}
