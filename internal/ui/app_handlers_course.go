package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// overlayDismissKeys close the course overlay.
var overlayDismissKeys = []string{"esc", "q"}

// handleOpenCourse shows the overlay for msg.Course, replacing any other open course.
func (a *appModelAdapter) handleOpenCourse(msg OpenCourseMsg) (tea.Model, tea.Cmd) {
	if a.Board.IsOpen(msg.Course) {
		return a, nil
	}
	_, found := a.Catalog.Lookup(msg.Course)
	a.Board.Open(msg.Course)

	ov := NewCourseOverlay(msg.Course, a.Catalog, a.Board, a.width, a.bodyHeight())
	a.Overlay.Show(Overlay{
		Panel:       Panel{ID: "course", View: ov, Bounds: ov.Bounds},
		DismissKeys: overlayDismissKeys,
	})
	a.Telemetry.OverlayOpened(msg.Course, found)
	a.Logger.Info("overlay opened", zap.String("course", msg.Course), zap.Bool("found", found))
	return a, ov.Init()
}

// handleCloseOverlay closes the overlay and cancels its pending level change.
func (a *appModelAdapter) handleCloseOverlay() (tea.Model, tea.Cmd) {
	course, _ := a.Board.Active()
	a.Overlay.Dismiss()
	if a.Board.Close() {
		a.Telemetry.OverlayClosed()
		a.Logger.Info("overlay closed", zap.String("course", course))
	}
	return a, nil
}

// handleSelectLevel applies a badge selection immediately, or starts the fade when
// the course's overlay is open and schedules the settle.
func (a *appModelAdapter) handleSelectLevel(msg SelectLevelMsg) (tea.Model, tea.Cmd) {
	change, err := a.Board.Select(msg.Course, msg.Level)
	if err != nil {
		a.Status = fmt.Sprintf("Select level: %v", err)
		a.StatusIsError = true
		a.Logger.Warn("select level", zap.Error(err))
		return a, nil
	}
	a.Telemetry.LevelSelected(change.Course, change.Level.String(), change.Deferred())
	a.Logger.Debug("level selected",
		zap.String("course", change.Course),
		zap.Stringer("level", change.Level),
		zap.Bool("deferred", change.Deferred()),
		zap.Uint64("token", uint64(change.Token)),
	)
	if !change.Deferred() {
		return a, nil
	}
	return a, settleCmd(a.Delay, change.Course, change.Token)
}

// handleLevelSettled finishes a fade. Stale tokens (superseded, or cancelled by a
// close, another course opening or navigation) are dropped.
func (a *appModelAdapter) handleLevelSettled(msg levelSettledMsg) (tea.Model, tea.Cmd) {
	pending, _ := a.Board.State(msg.Course)
	applied := a.Board.Settle(msg.Course, msg.Token)
	level := pending.PendingLevel
	if !applied {
		a.Logger.Debug("stale settle dropped",
			zap.String("course", msg.Course),
			zap.Uint64("token", uint64(msg.Token)),
		)
		a.Telemetry.LevelSettled(msg.Course, "", false)
		return a, nil
	}
	a.Telemetry.LevelSettled(msg.Course, level.String(), true)
	a.Logger.Debug("level settled", zap.String("course", msg.Course), zap.Stringer("level", level))
	return a, nil
}

// handlePickLevel routes a leader level pick to the open course, or else to the
// focused card. Courses without that level report it on the status line.
func (a *appModelAdapter) handlePickLevel(msg PickLevelMsg) (tea.Model, tea.Cmd) {
	course, ok := a.Board.Active()
	if !ok {
		course, ok = a.Page.FocusedCourse()
	}
	if !ok {
		return a, nil
	}
	return a.handleSelectLevel(SelectLevelMsg{Course: course, Level: msg.Level})
}

func (a *appModelAdapter) handleOpenFocused() (tea.Model, tea.Cmd) {
	course, ok := a.Page.FocusedCourse()
	if !ok {
		return a, nil
	}
	return a.handleOpenCourse(OpenCourseMsg{Course: course})
}
