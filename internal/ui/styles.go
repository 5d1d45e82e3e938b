package ui

import (
	"github.com/charmbracelet/lipgloss"

	"melodious/internal/catalog"
	"melodious/internal/ui/textutil"
)

// Theme colors used throughout the UI
const (
	ColorAccent    = "141" // Lavender - titles, brand
	ColorHighlight = "213" // Pink - focused card, active nav item
	ColorMusic     = "97"  // Deep purple - footer and overlay header
	ColorMuted     = "241" // Gray - dimmed text, hints
	ColorText      = "252" // Light gray - normal text
	ColorDim       = "237" // Dark gray - overlay backdrop
	ColorDanger    = "196" // Red - errors

	ColorBeginner     = "42"  // Green
	ColorIntermediate = "33"  // Blue
	ColorAdvanced     = "135" // Purple
)

// Styles contains shared style definitions used across views.
var Styles = struct {
	Title   lipgloss.Style // Bold accent color - page and overlay titles
	Brand   lipgloss.Style // Navbar school name
	Section lipgloss.Style // Overlay section headers

	Card        lipgloss.Style // Course card box
	CardFocused lipgloss.Style // Course card box under the cursor
	Panel       lipgloss.Style // Overlay panel box
	Footer      lipgloss.Style // Page footer band
	Placeholder lipgloss.Style // "Coming soon" box

	NavItem   lipgloss.Style
	NavActive lipgloss.Style
	NavCursor lipgloss.Style

	Button  lipgloss.Style // Card "Explore Course" button
	Muted   lipgloss.Style
	Normal  lipgloss.Style
	Hint    lipgloss.Style
	Empty   lipgloss.Style // Empty state text (muted, italic)
	Marker  lipgloss.Style // List bullets and numbers
	Divider lipgloss.Style
	Status  lipgloss.Style // Hint bar status message
	Error   lipgloss.Style // Hint bar error message
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Brand: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Section: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHighlight)),
	Card: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)).
		Padding(0, 1),
	CardFocused: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 1),
	Panel: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 2),
	Footer: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)).
		Background(lipgloss.Color(ColorMusic)).
		Padding(1, 2),
	Placeholder: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)).
		Padding(1, 4).
		Align(lipgloss.Center),
	NavItem: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)).
		Padding(0, 1),
	NavActive: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)).
		Bold(true).
		Underline(true).
		Padding(0, 1),
	NavCursor: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Reverse(true).
		Padding(0, 1),
	Button: lipgloss.NewStyle().
		Foreground(lipgloss.Color("230")).
		Background(lipgloss.Color(ColorMusic)).
		Bold(true),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Marker: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	Divider: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)).
		Bold(true),
}

// levelColor returns the badge color of l.
func levelColor(l catalog.Level) lipgloss.Color {
	switch l {
	case catalog.Beginner:
		return lipgloss.Color(ColorBeginner)
	case catalog.Intermediate:
		return lipgloss.Color(ColorIntermediate)
	default:
		return lipgloss.Color(ColorAdvanced)
	}
}

// levelIcon returns the glyph drawn before a level name.
func levelIcon(l catalog.Level) string {
	switch l {
	case catalog.Beginner:
		return "○"
	case catalog.Intermediate:
		return "◆"
	default:
		return "★"
	}
}

// badgeLabel is the text of a card badge; compact badges abbreviate the level name.
func badgeLabel(l catalog.Level, compact bool) string {
	name := l.String()
	if compact {
		name = textutil.Cut(name, 3)
	}
	return levelIcon(l) + " " + name
}

// LevelBadge renders l as a card badge. The selected badge is bold and bracketed.
// Selected and unselected badges have the same width.
func LevelBadge(l catalog.Level, selected, compact bool) string {
	st := lipgloss.NewStyle().Foreground(levelColor(l))
	label := badgeLabel(l, compact)
	if selected {
		return st.Bold(true).Underline(true).Render("[" + label + "]")
	}
	return st.Render(" " + label + " ")
}

// LevelButton renders l as an overlay level button.
func LevelButton(l catalog.Level, selected bool) string {
	st := lipgloss.NewStyle().Padding(0, 1)
	label := levelIcon(l) + " " + l.String()
	if selected {
		return st.Bold(true).
			Foreground(lipgloss.Color("232")).
			Background(levelColor(l)).
			Render(label + " ✓")
	}
	return st.Foreground(levelColor(l)).Render(label + "  ")
}

// EnrollButton renders the call to action for l.
func EnrollButton(l catalog.Level) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("232")).
		Background(levelColor(l)).
		Padding(0, 3).
		Render("★ Enroll in " + l.String() + " Course")
}
