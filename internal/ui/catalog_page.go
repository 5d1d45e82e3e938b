package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"melodious/internal/catalog"
	"melodious/internal/selection"
	"melodious/internal/ui/textutil"
)

const (
	heroTitle   = "Our Courses"
	heroTagline = "Discover your musical potential with our diverse range of courses taught by industry experts."

	footerName      = "Melodious Harmony"
	footerTagline   = "Discover your musical journey with us"
	footerCopyright = "© 2023 Melodious Harmony. All rights reserved."

	gridGap    = 2
	gridMargin = 2
	rowHeight  = cardHeight + 1

	defaultWidth  = 80
	defaultHeight = 24
)

// gridGeometry places cards for a given terminal width.
type gridGeometry struct {
	cols      int
	cardWidth int
	left      int // columns of indentation before the first card
}

// layoutGrid picks 1, 2 or 3 columns by width and centers the grid.
func layoutGrid(width int) gridGeometry {
	cols := 1
	switch {
	case width >= 3*cardMinWidth+2*gridGap+2*gridMargin+36:
		cols = 3
	case width >= 2*cardMinWidth+gridGap+2*gridMargin+24:
		cols = 2
	}
	cw := (width - 2*gridMargin - (cols-1)*gridGap) / cols
	cw = min(cw, cardMaxWidth)
	cw = max(cw, 8)
	total := cols*cw + (cols-1)*gridGap
	return gridGeometry{cols: cols, cardWidth: cw, left: max((width-total)/2, 0)}
}

// cell returns the card index at grid-relative (x, y) and the card-relative position.
func (g gridGeometry) cell(x, y, count int) (idx, cx, cy int, ok bool) {
	if x < 0 || y < 0 {
		return 0, 0, 0, false
	}
	row, cy := y/rowHeight, y%rowHeight
	col, cx := x/(g.cardWidth+gridGap), x%(g.cardWidth+gridGap)
	if cy >= cardHeight || cx >= g.cardWidth || col >= g.cols {
		return 0, 0, 0, false
	}
	idx = row*g.cols + col
	if idx >= count {
		return 0, 0, 0, false
	}
	return idx, cx, cy, true
}

// CatalogPage is the page under the navbar: the hero, card grid and footer on Home,
// the grid on Courses, and a "coming soon" panel on Instructors and Register.
// It reads selection state from the board but never writes it; level and open
// requests go out as messages.
type CatalogPage struct {
	Route   Route
	Catalog *catalog.Catalog
	Board   *selection.Board
	Nav     *Navbar
	Focus   *FocusManager

	cursor  int
	gridTop int // body line where the grid starts
	body    viewport.Model
	width   int
	height  int
}

// Ensure CatalogPage implements View and Layout.
var (
	_ View   = (*CatalogPage)(nil)
	_ Layout = (*CatalogPage)(nil)
)

// NewCatalogPage creates a page for route r.
func NewCatalogPage(c *catalog.Catalog, b *selection.Board, r Route) *CatalogPage {
	p := &CatalogPage{
		Route:   r,
		Catalog: c,
		Board:   b,
		Nav:     &Navbar{Active: r, Cursor: r, Width: defaultWidth},
		body:    viewport.New(defaultWidth, defaultHeight-navHeight),
		width:   defaultWidth,
		height:  defaultHeight,
	}
	p.Focus = NewFocusManager(p.FocusOrder())
	p.Focus.OnChange = func(_, to string) {
		p.Nav.Focused = to == FocusNav
		p.Nav.Cursor = p.Route
	}
	p.SetRoute(r)
	return p
}

// SetRoute switches the page to r, resetting cursor and scroll.
func (p *CatalogPage) SetRoute(r Route) {
	p.Route = r
	p.Nav.Active = r
	p.Nav.Cursor = r
	p.cursor = 0
	p.Focus.Order = p.FocusOrder()
	p.Focus.SetFocus(p.Focus.Order[len(p.Focus.Order)-1])
	p.Nav.Focused = p.Focus.Is(FocusNav)
	p.body.GotoTop()
}

// SetSize sets the area available to the page, navbar included.
func (p *CatalogPage) SetSize(width, height int) {
	p.width = max(width, 1)
	p.height = max(height, navHeight+1)
	p.Nav.Width = p.width
	p.body.Width = p.width
	p.body.Height = p.height - navHeight
	p.ensureVisible()
}

// Cursor returns the index of the focused card.
func (p *CatalogPage) Cursor() int {
	return p.cursor
}

// FocusedCourse returns the title of the card under the cursor.
func (p *CatalogPage) FocusedCourse() (string, bool) {
	cards := p.Catalog.Cards()
	if !p.Route.ShowsGrid() || p.cursor >= len(cards) {
		return "", false
	}
	return cards[p.cursor].Title, true
}

// Panels implements Layout.
func (p *CatalogPage) Panels() []Panel {
	return []Panel{
		{ID: FocusNav, View: p.Nav, Bounds: func(w, _ int) (int, int, int, int) {
			return 0, 0, w, navHeight
		}},
		{ID: FocusGrid, View: p, Bounds: func(w, h int) (int, int, int, int) {
			return 0, navHeight, w, h - navHeight
		}},
	}
}

// FocusOrder implements Layout. Routes without a grid only have the navbar.
func (p *CatalogPage) FocusOrder() []string {
	if p.Route.ShowsGrid() {
		return []string{FocusNav, FocusGrid}
	}
	return []string{FocusNav}
}

// Init implements View.
func (p *CatalogPage) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (p *CatalogPage) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.SetSize(msg.Width, msg.Height)
		return p, nil
	case tea.MouseMsg:
		return p, p.handleMouse(msg)
	case tea.KeyMsg:
		return p, p.handleKey(msg)
	}
	return p, nil
}

func (p *CatalogPage) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, pageKeys.Focus):
		p.Focus.Next()
		return nil
	case key.Matches(msg, pageKeys.FocusBack):
		p.Focus.Prev()
		return nil
	case key.Matches(msg, pageKeys.PageUp):
		p.body.PageUp()
		return nil
	case key.Matches(msg, pageKeys.PageDown):
		p.body.PageDown()
		return nil
	}

	if p.Focus.Is(FocusNav) {
		_, cmd := p.Nav.Update(msg)
		return cmd
	}
	if !p.Route.ShowsGrid() {
		return nil
	}

	cards := p.Catalog.Cards()
	if len(cards) == 0 {
		return nil
	}
	cols := layoutGrid(p.width).cols
	switch {
	case key.Matches(msg, pageKeys.Left):
		p.moveCursor(-1, len(cards))
	case key.Matches(msg, pageKeys.Right):
		p.moveCursor(1, len(cards))
	case key.Matches(msg, pageKeys.Up):
		p.moveCursor(-cols, len(cards))
	case key.Matches(msg, pageKeys.Down):
		p.moveCursor(cols, len(cards))
	case key.Matches(msg, pageKeys.Open):
		return openCourseCmd(cards[p.cursor].Title)
	case key.Matches(msg, pageKeys.Beginner):
		return p.badgeCmd(cards[p.cursor].Title, catalog.Beginner)
	case key.Matches(msg, pageKeys.Intermediate):
		return p.badgeCmd(cards[p.cursor].Title, catalog.Intermediate)
	case key.Matches(msg, pageKeys.Advanced):
		return p.badgeCmd(cards[p.cursor].Title, catalog.Advanced)
	}
	return nil
}

// moveCursor moves by delta cards. Moving down from a short row lands on the last card.
func (p *CatalogPage) moveCursor(delta, count int) {
	next := p.cursor + delta
	switch {
	case next < 0:
		next = p.cursor
		if delta == -1 {
			next = 0
		}
	case next >= count:
		cols := layoutGrid(p.width).cols
		if delta > 1 && p.cursor/cols < (count-1)/cols {
			next = count - 1
		} else {
			next = p.cursor
		}
	}
	p.cursor = next
	p.ensureVisible()
}

// badgeCmd requests a level for a card, or nothing if the card has no badges.
func (p *CatalogPage) badgeCmd(course string, l catalog.Level) tea.Cmd {
	c, ok := p.Catalog.Lookup(course)
	if !ok || !c.Has(l) {
		return nil
	}
	return selectLevelCmd(course, l)
}

func (p *CatalogPage) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
		var cmd tea.Cmd
		p.body, cmd = p.body.Update(msg)
		return cmd
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	panel, ok := panelAt(p, p.width, p.height, msg.X, msg.Y)
	if !ok {
		return nil
	}
	switch panel.ID {
	case FocusNav:
		if msg.Y != 0 {
			return nil
		}
		if r, ok := p.Nav.ItemAt(msg.X); ok {
			return navigateCmd(r)
		}
	case FocusGrid:
		if !p.Route.ShowsGrid() {
			return nil
		}
		p.syncBody()
		_, by := panel.Local(p.width, p.height, msg.X, msg.Y)
		by += p.body.YOffset
		g := layoutGrid(p.width)
		cards := p.Catalog.Cards()
		idx, cx, cy, ok := g.cell(msg.X-g.left, by-p.gridTop, len(cards))
		if !ok {
			return nil
		}
		p.cursor = idx
		p.Focus.SetFocus(FocusGrid)
		card := p.card(idx, g.cardWidth)
		if l, ok := card.BadgeAt(cx, cy); ok {
			return selectLevelCmd(card.Card.Title, l)
		}
		return openCourseCmd(card.Card.Title)
	}
	return nil
}

// ensureVisible scrolls the body so the focused card is on screen.
func (p *CatalogPage) ensureVisible() {
	p.syncBody()
	if !p.Route.ShowsGrid() {
		return
	}
	cols := layoutGrid(p.width).cols
	top := p.gridTop + (p.cursor/cols)*rowHeight
	bottom := top + cardHeight
	switch {
	case top < p.body.YOffset:
		p.body.SetYOffset(top)
	case bottom > p.body.YOffset+p.body.Height:
		p.body.SetYOffset(bottom - p.body.Height)
	}
}

// View implements View.
func (p *CatalogPage) View() string {
	p.syncBody()
	return p.Nav.View() + "\n" + p.body.View()
}

func (p *CatalogPage) syncBody() {
	content, gridTop := p.renderBody()
	p.gridTop = gridTop
	p.body.SetContent(content)
}

// renderBody returns the scrollable content and the line where the grid starts.
func (p *CatalogPage) renderBody() (string, int) {
	var sections []string
	gridTop := 0
	switch {
	case p.Route.ShowsHero():
		hero := p.renderHero()
		sections = append(sections, hero)
		gridTop = lipgloss.Height(hero)
	case p.Route.ShowsGrid():
		sections = append(sections, "")
		gridTop = 1
	}
	if p.Route.ShowsGrid() {
		sections = append(sections, p.renderGrid(), "")
	} else {
		sections = append(sections, "", p.renderComingSoon(), "")
	}
	if p.Route == RouteHome {
		sections = append(sections, p.renderFooter())
	}
	return strings.Join(sections, "\n"), gridTop
}

func (p *CatalogPage) renderHero() string {
	w := min(p.width-2*gridMargin, 70)
	tagline := strings.Join(textutil.Wrap(heroTagline, max(w, 1)), "\n")
	block := lipgloss.JoinVertical(lipgloss.Center,
		"",
		Styles.Title.Render(heroTitle),
		Styles.Marker.Render(strings.Repeat("━", 12)),
		"",
		Styles.Muted.Align(lipgloss.Center).Render(tagline),
		"",
	)
	return lipgloss.PlaceHorizontal(p.width, lipgloss.Center, block)
}

// card builds the card model for index idx.
func (p *CatalogPage) card(idx, width int) CourseCard {
	card := p.Catalog.Cards()[idx]
	cc := CourseCard{
		Card:    card,
		Focused: p.Focus.Is(FocusGrid) && idx == p.cursor,
		Width:   width,
	}
	if course, ok := p.Catalog.Lookup(card.Title); ok {
		cc.Levels = course.Levels()
		cc.Selected, _ = p.Board.Level(card.Title)
	}
	return cc
}

func (p *CatalogPage) renderGrid() string {
	g := layoutGrid(p.width)
	cards := p.Catalog.Cards()
	if len(cards) == 0 {
		return lipgloss.PlaceHorizontal(p.width, lipgloss.Center, Styles.Empty.Render("No courses yet."))
	}
	spacer := strings.Repeat(" ", gridGap)
	var rows []string
	for start := 0; start < len(cards); start += g.cols {
		var row []string
		for i := start; i < min(start+g.cols, len(cards)); i++ {
			if i > start {
				row = append(row, spacer)
			}
			row = append(row, p.card(i, g.cardWidth).View())
		}
		if len(rows) > 0 {
			rows = append(rows, "")
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	grid := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return lipgloss.NewStyle().MarginLeft(g.left).Render(grid)
}

func (p *CatalogPage) renderComingSoon() string {
	box := Styles.Placeholder.Render(
		Styles.Title.Render(p.Route.String()) + "\n\n" + Styles.Empty.Render("Coming soon."),
	)
	return lipgloss.PlaceHorizontal(p.width, lipgloss.Center, box)
}

func (p *CatalogPage) renderFooter() string {
	left := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Render(footerName),
		footerTagline,
	)
	inner := max(p.width-4, 1)
	var content string
	if lipgloss.Width(left)+lipgloss.Width(footerCopyright)+4 <= inner {
		gap := inner - lipgloss.Width(left) - lipgloss.Width(footerCopyright)
		content = lipgloss.JoinHorizontal(lipgloss.Bottom, left, strings.Repeat(" ", gap), footerCopyright)
	} else {
		content = lipgloss.JoinVertical(lipgloss.Left, left, "", footerCopyright)
	}
	return Styles.Footer.Width(p.width).Render(content)
}
