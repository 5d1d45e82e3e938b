package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

func newHelpModel() help.Model {
	m := help.New()
	m.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	m.Styles.ShortDesc = Styles.Hint
	m.Styles.ShortSeparator = Styles.Hint
	return m
}

// RenderKeybindHelp produces the transient help view shown after SPC.
// Displays SPC-prefixed bindings in a compact bar format, filtered by route.
// When keyHandler is in leader mode with a buffer (e.g. "SPC g"), shows next-level hints.
func RenderKeybindHelp(keyHandler *KeyHandler, route Route) string {
	if keyHandler == nil {
		return ""
	}
	bindings := NewKeyMap(keyHandler.Registry, keyHandler, route).ShortHelp()
	if len(bindings) == 0 {
		return ""
	}

	helpModel := newHelpModel()
	helpContent := helpModel.ShortHelpView(bindings)

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1)

	prefix := keyHandler.Prefix()
	if prefix == "" {
		prefix = leaderSeq
	}
	content := Styles.Hint.Render(prefix) + " " + helpContent
	return boxStyle.Render(content)
}

// RenderHintBar renders the one-line key hints for the page or the open overlay.
func RenderHintBar(km help.KeyMap, width int) string {
	m := newHelpModel()
	m.Width = width
	return m.View(km)
}
