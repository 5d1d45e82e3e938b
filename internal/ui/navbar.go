package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"melodious/internal/ui/textutil"
)

const (
	brandText  = "▶ Melodious Harmony ♫"
	navGap     = "   "
	navHeight  = 2
	navPadding = 1 // NavItem horizontal padding
)

// Navbar is the top bar: the school brand and the four route links.
type Navbar struct {
	Active  Route // route being shown
	Cursor  Route // link under the keyboard cursor when focused
	Focused bool
	Width   int
}

// Ensure Navbar implements View.
var _ View = (*Navbar)(nil)

// Init implements View.
func (n *Navbar) Init() tea.Cmd {
	return nil
}

// Update implements View. It only reacts to keys while focused: left and right move
// the cursor, enter navigates to the link under it.
func (n *Navbar) Update(msg tea.Msg) (View, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok || !n.Focused {
		return n, nil
	}
	switch {
	case key.Matches(km, pageKeys.Left):
		n.Move(-1)
	case key.Matches(km, pageKeys.Right):
		n.Move(1)
	case key.Matches(km, pageKeys.Open):
		r := n.Cursor
		return n, func() tea.Msg { return NavigateMsg{Route: r} }
	}
	return n, nil
}

// View renders the bar and the divider below it.
func (n *Navbar) View() string {
	var b strings.Builder
	b.WriteString(Styles.Brand.Render(brandText))
	b.WriteString(navGap)
	for i, r := range Routes() {
		if i > 0 {
			b.WriteString(" ")
		}
		st := Styles.NavItem
		switch {
		case n.Focused && r == n.Cursor:
			st = Styles.NavCursor
		case r == n.Active:
			st = Styles.NavActive
		}
		b.WriteString(st.Render(r.String()))
	}
	line := lipgloss.NewStyle().MaxWidth(max(n.Width, 1)).Render(b.String())
	return line + "\n" + Styles.Divider.Render(strings.Repeat("─", max(n.Width, 1)))
}

// ItemAt returns the route link at column x of the bar's first line.
func (n *Navbar) ItemAt(x int) (Route, bool) {
	pos := textutil.Width(brandText) + len(navGap)
	for i, r := range Routes() {
		if i > 0 {
			pos++
		}
		w := textutil.Width(r.String()) + 2*navPadding
		if x >= pos && x < pos+w {
			return r, true
		}
		pos += w
	}
	return RouteHome, false
}

// Move shifts the cursor by delta links, wrapping around.
func (n *Navbar) Move(delta int) {
	routes := Routes()
	idx := 0
	for i, r := range routes {
		if r == n.Cursor {
			idx = i
		}
	}
	count := len(routes)
	n.Cursor = routes[((idx+delta)%count+count)%count]
}
