package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// handleNavigate switches routes. The old page is torn down: the overlay closes and
// all selection state is discarded, so no pending settle survives the switch.
func (a *appModelAdapter) handleNavigate(msg NavigateMsg) (tea.Model, tea.Cmd) {
	if msg.Route == a.Route {
		return a, nil
	}
	a.History.Push(a.Route)
	return a.showRoute(msg.Route)
}

// handleBack returns to the previous route, if any.
func (a *appModelAdapter) handleBack() (tea.Model, tea.Cmd) {
	r, ok := a.History.Pop()
	if !ok {
		return a, nil
	}
	return a.showRoute(r)
}

func (a *appModelAdapter) showRoute(r Route) (tea.Model, tea.Cmd) {
	a.handleCloseOverlay()
	a.Board.Reset()
	a.Route = r
	a.Page.SetRoute(r)
	a.Logger.Debug("page shown", zap.String("route", r.Path()))
	return a, a.Page.Init()
}

func (a *appModelAdapter) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	a.width, a.height = msg.Width, msg.Height
	a.Page.SetSize(a.width, a.bodyHeight())
	cmd, _ := a.Overlay.Update(tea.WindowSizeMsg{Width: a.width, Height: a.bodyHeight()})
	return a, cmd
}

// leaderActive reports whether s belongs to the keybind system: the leader key
// itself or any key while a leader sequence is in progress.
func (a *AppModel) leaderActive(s string) bool {
	h := a.KeyHandler
	return h != nil && (h.LeaderWaiting || s == h.LeaderKey)
}

func (a *appModelAdapter) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := msg.String()
	a.Status = ""
	a.StatusIsError = false

	if s == "ctrl+c" {
		return a, tea.Quit
	}

	// The overlay takes every key except leader sequences.
	if o, ok := a.Overlay.Active(); ok && !a.leaderActive(s) {
		if o.IsDismissKey(s) {
			return a.handleCloseOverlay()
		}
		cmd, _ := a.Overlay.Update(msg)
		return a, cmd
	}

	if a.KeyHandler != nil {
		if consumed, keyCmd := a.KeyHandler.Handle(msg, a.Route); consumed {
			return a, keyCmd
		}
	}
	if key.Matches(msg, pageKeys.Quit) {
		return a, tea.Quit
	}

	_, cmd := a.Page.Update(msg)
	return a, cmd
}

func (a *appModelAdapter) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	w, h := a.width, a.bodyHeight()
	if o, ok := a.Overlay.Active(); ok {
		inside := o.Panel.Contains(w, h, msg.X, msg.Y)
		if !inside {
			if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
				return a.handleCloseOverlay()
			}
			return a, nil
		}
		local := msg
		local.X, local.Y = o.Panel.Local(w, h, msg.X, msg.Y)
		cmd, _ := a.Overlay.Update(local)
		return a, cmd
	}
	if msg.Y >= h {
		return a, nil
	}
	_, cmd := a.Page.Update(msg)
	return a, cmd
}
