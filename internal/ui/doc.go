// Package ui is the Bubble Tea front end of the course catalog.
//
// Core pieces:
//   - View: a screen or region with its own model, update and view (Elm-style)
//   - Panel: a bounded region within the terminal that hosts a View
//   - Layout: arranges panels and defines focus order
//   - FocusManager: tracks and rotates focus across panels
//   - RouteHistory: back navigation between routes
//   - OverlaySlot: the single modal slot used by the course overlay
//
// AppModel owns the catalog, the selection board and the current page, and is the
// only place selection state changes. Deferred level changes come back as
// levelSettledMsg after the transition delay.
package ui
