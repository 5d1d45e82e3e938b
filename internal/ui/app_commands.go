package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"melodious/internal/catalog"
	"melodious/internal/selection"
)

// settleCmd delivers levelSettledMsg for tok after delay. The message is always
// delivered; the board decides whether the token is still current.
func settleCmd(delay time.Duration, course string, tok selection.Token) tea.Cmd {
	msg := levelSettledMsg{Course: course, Token: tok}
	if delay <= 0 {
		return func() tea.Msg { return msg }
	}
	return tea.Tick(delay, func(time.Time) tea.Msg { return msg })
}

func openCourseCmd(course string) tea.Cmd {
	return func() tea.Msg { return OpenCourseMsg{Course: course} }
}

func closeOverlayCmd() tea.Cmd {
	return func() tea.Msg { return CloseOverlayMsg{} }
}

func selectLevelCmd(course string, l catalog.Level) tea.Cmd {
	return func() tea.Msg { return SelectLevelMsg{Course: course, Level: l} }
}

func navigateCmd(r Route) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Route: r} }
}

func backCmd() tea.Cmd {
	return func() tea.Msg { return BackMsg{} }
}

func pickLevelCmd(l catalog.Level) tea.Cmd {
	return func() tea.Msg { return PickLevelMsg{Level: l} }
}

func openFocusedCmd() tea.Cmd {
	return func() tea.Msg { return OpenFocusedMsg{} }
}
