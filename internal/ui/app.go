package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"melodious/internal/catalog"
	"melodious/internal/selection"
	"melodious/internal/telemetry"
	"melodious/internal/ui/textutil"
)

// Options configures NewAppModel.
type Options struct {
	Catalog   *catalog.Catalog
	Logger    *zap.Logger         // nil = discard
	Telemetry *telemetry.Recorder // nil = no spans
	// Delay is how long level content stays hidden after a level change in the
	// overlay. Zero settles on the next message.
	Delay time.Duration
	Route Route
}

// AppModel is the root model: the navbar page, the single course overlay and the
// selection board both of them read.
type AppModel struct {
	Route      Route
	History    RouteHistory
	Catalog    *catalog.Catalog
	Board      *selection.Board
	Page       *CatalogPage
	Overlay    OverlaySlot
	KeyHandler *KeyHandler
	Logger     *zap.Logger
	Telemetry  *telemetry.Recorder
	Delay      time.Duration

	// Status is a one-line message shown in the hint bar until the next key.
	Status        string
	StatusIsError bool

	width  int
	height int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	a.Logger.Debug("page shown", zap.String("route", a.Route.Path()))
	return a.Page.Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return a.handleResize(msg)
	case OpenCourseMsg:
		return a.handleOpenCourse(msg)
	case CloseOverlayMsg:
		return a.handleCloseOverlay()
	case SelectLevelMsg:
		return a.handleSelectLevel(msg)
	case levelSettledMsg:
		return a.handleLevelSettled(msg)
	case PickLevelMsg:
		return a.handlePickLevel(msg)
	case OpenFocusedMsg:
		return a.handleOpenFocused()
	case NavigateMsg:
		return a.handleNavigate(msg)
	case BackMsg:
		return a.handleBack()
	case tea.MouseMsg:
		return a.handleMouse(msg)
	case tea.KeyMsg:
		return a.handleKey(msg)
	}
	return a, nil
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	body := a.Page.View()
	if o, ok := a.Overlay.Active(); ok {
		body = lipgloss.Place(a.width, a.bodyHeight(), lipgloss.Center, lipgloss.Center,
			o.View().View(),
			lipgloss.WithWhitespaceChars("╱"),
			lipgloss.WithWhitespaceForeground(lipgloss.Color(ColorDim)),
		)
	}

	bottom := a.hintBar()
	if a.KeyHandler != nil && a.KeyHandler.LeaderWaiting {
		bottom = RenderKeybindHelp(a.KeyHandler, a.Route)
	}
	room := max(a.height-lipgloss.Height(bottom), 0)
	return fitHeight(body, room) + "\n" + bottom
}

func (a *AppModel) hintBar() string {
	if a.Status != "" {
		st := Styles.Status
		if a.StatusIsError {
			st = Styles.Error
		}
		return st.Render(textutil.PadRight(a.Status, a.width))
	}
	if _, ok := a.Overlay.Active(); ok {
		return RenderHintBar(overlayKeys, a.width)
	}
	return RenderHintBar(pageKeys, a.width)
}

// bodyHeight is the terminal height less the hint bar.
func (a *AppModel) bodyHeight() int {
	return max(a.height-1, 1)
}

// fitHeight pads or cuts s to exactly n lines.
func fitHeight(s string, n int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > n {
		lines = lines[:n]
	}
	for len(lines) < n {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// NewAppModel creates the root application model.
func NewAppModel(opts Options) *AppModel {
	c := opts.Catalog
	if c == nil {
		c = catalog.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	board := selection.NewBoard(c)
	m := &AppModel{
		Route:     opts.Route,
		Catalog:   c,
		Board:     board,
		Page:      NewCatalogPage(c, board, opts.Route),
		Logger:    logger,
		Telemetry: opts.Telemetry,
		Delay:     opts.Delay,
		width:     defaultWidth,
		height:    defaultHeight,
	}
	m.KeyHandler = NewKeyHandler(m.newRegistry())
	m.Page.SetSize(m.width, m.bodyHeight())
	return m
}

// newRegistry builds the leader menu: routes under "g", level picks under "l",
// open and quit at the top level.
func (m *AppModel) newRegistry() *KeybindRegistry {
	reg := NewKeybindRegistry()
	grid := []Route{RouteHome, RouteCourses}

	reg.Add(Binding{Seq: "SPC o", Desc: "Open course", Cmd: openFocusedCmd(), Routes: grid})

	reg.Group("SPC l", "Level")
	for _, l := range catalog.Levels() {
		seq := "SPC l " + strings.ToLower(l.String()[:1])
		reg.Add(Binding{Seq: seq, Desc: l.String(), Cmd: pickLevelCmd(l), Routes: grid})
	}

	reg.Group("SPC g", "Go to")
	for _, r := range Routes() {
		others := make([]Route, 0, len(Routes())-1)
		for _, o := range Routes() {
			if o != r {
				others = append(others, o)
			}
		}
		seq := "SPC g " + strings.ToLower(r.String()[:1])
		reg.Add(Binding{Seq: seq, Desc: r.String(), Cmd: navigateCmd(r), Routes: others})
	}
	reg.Add(Binding{Seq: "SPC g b", Cmd: backCmd(), Label: func() string {
		if r, ok := m.History.Peek(); ok {
			return "Back to " + r.String()
		}
		return ""
	}})

	reg.Add(Binding{Seq: "SPC q", Desc: "Quit", Cmd: tea.Quit})
	return reg
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}
