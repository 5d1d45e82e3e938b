package ui

import (
	"fmt"
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
	overlayMaxWidth  = 96
	overlayMinWidth  = 30
	overlayMaxHeight = 40
	overlayMinHeight = 12

	// rows above and below the viewport inside the panel border
	overlayHeaderRows = 4
	overlayFooterRows = 2
	// panel-relative offsets of the header content
	overlayInsetX     = 3 // border + padding
	overlayTitleRow   = 1
	overlayButtonsRow = 3

	closeLabel      = "✕ close"
	overlayNoDetail = "Course details are not available yet."
	overlayFooter   = "▦ Enrollments open year-round"
	overlaySubtitle = "♪ Choose your learning level"
)

// CourseOverlay shows one course's levels and the details of the selected level.
// Level requests go out as SelectLevelMsg; the board decides when they apply.
type CourseOverlay struct {
	Course  string
	Catalog *catalog.Catalog
	Board   *selection.Board

	viewport viewport.Model
	width    int // area the overlay is centered in
	height   int
	shown    catalog.Level
}

// Ensure CourseOverlay implements View.
var _ View = (*CourseOverlay)(nil)

// NewCourseOverlay creates the overlay for course, centered in a width by height area.
func NewCourseOverlay(course string, c *catalog.Catalog, b *selection.Board, width, height int) *CourseOverlay {
	o := &CourseOverlay{
		Course:   course,
		Catalog:  c,
		Board:    b,
		viewport: viewport.New(1, 1),
	}
	o.setSize(width, height)
	return o
}

// Bounds returns the panel position and size within a width by height area.
func (o *CourseOverlay) Bounds(width, height int) (x, y, w, h int) {
	w = min(width-4, overlayMaxWidth)
	w = max(w, min(width, overlayMinWidth))
	h = min(height-2, overlayMaxHeight)
	h = max(h, min(height, overlayMinHeight))
	return (width - w) / 2, (height - h) / 2, w, h
}

func (o *CourseOverlay) innerWidth() int {
	_, _, w, _ := o.Bounds(o.width, o.height)
	return max(w-2*overlayInsetX, 1)
}

func (o *CourseOverlay) setSize(width, height int) {
	o.width, o.height = width, height
	_, _, _, h := o.Bounds(width, height)
	o.viewport.Width = o.innerWidth()
	o.viewport.Height = max(h-2-overlayHeaderRows-overlayFooterRows, 1)
}

// Init implements View.
func (o *CourseOverlay) Init() tea.Cmd {
	return nil
}

// Update implements View. Mouse coordinates are expected relative to the panel.
func (o *CourseOverlay) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		o.setSize(msg.Width, msg.Height)
		return o, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, overlayKeys.Prev):
			return o, o.step(-1)
		case key.Matches(msg, overlayKeys.Next):
			return o, o.step(1)
		case key.Matches(msg, overlayKeys.Jump):
			return o, o.jump(msg.String())
		}
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if o.closeAt(msg.X, msg.Y) {
				return o, closeOverlayCmd()
			}
			if l, ok := o.LevelAt(msg.X, msg.Y); ok {
				return o, selectLevelCmd(o.Course, l)
			}
			return o, nil
		}
	}

	var cmd tea.Cmd
	o.viewport, cmd = o.viewport.Update(msg)
	return o, cmd
}

// target is the level the next step starts from: the pending one while fading.
func (o *CourseOverlay) target() catalog.Level {
	st, ok := o.Board.State(o.Course)
	if !ok {
		return ""
	}
	if st.Pending != 0 {
		return st.PendingLevel
	}
	return st.Level
}

func (o *CourseOverlay) levels() []catalog.Level {
	c, ok := o.Catalog.Lookup(o.Course)
	if !ok {
		return nil
	}
	return c.Levels()
}

// step requests the level delta positions away, wrapping around.
func (o *CourseOverlay) step(delta int) tea.Cmd {
	levels := o.levels()
	if len(levels) == 0 {
		return nil
	}
	cur := o.target()
	idx := 0
	for i, l := range levels {
		if l == cur {
			idx = i
		}
	}
	n := len(levels)
	return selectLevelCmd(o.Course, levels[((idx+delta)%n+n)%n])
}

// jump requests the level at 1-based position s.
func (o *CourseOverlay) jump(s string) tea.Cmd {
	levels := o.levels()
	var n int
	if _, err := fmt.Sscanf(s, "%d", &n); err != nil || n < 1 || n > len(levels) {
		return nil
	}
	return selectLevelCmd(o.Course, levels[n-1])
}

// LevelAt returns the level button at panel-relative cell (x, y), if any.
func (o *CourseOverlay) LevelAt(x, y int) (catalog.Level, bool) {
	if y != overlayButtonsRow {
		return "", false
	}
	pos := overlayInsetX
	for _, l := range o.levels() {
		w := lipgloss.Width(LevelButton(l, false))
		if x >= pos && x < pos+w {
			return l, true
		}
		pos += w + 1
	}
	return "", false
}

func (o *CourseOverlay) closeAt(x, y int) bool {
	if y != overlayTitleRow {
		return false
	}
	start := overlayInsetX + o.innerWidth() - textutil.Width(closeLabel)
	return x >= start && x < start+textutil.Width(closeLabel)
}

// View implements View.
func (o *CourseOverlay) View() string {
	w := o.innerWidth()
	level, _ := o.Board.Level(o.Course)
	if level != o.shown {
		o.shown = level
		o.viewport.GotoTop()
	}
	o.viewport.SetContent(o.renderBody(level, w))

	title := Styles.Title.Render(textutil.Truncate("♫ "+o.Course, w-textutil.Width(closeLabel)-1))
	gap := max(w-lipgloss.Width(title)-textutil.Width(closeLabel), 1)
	header := []string{
		title + strings.Repeat(" ", gap) + Styles.Hint.Render(closeLabel),
		Styles.Muted.Render(overlaySubtitle),
		o.renderButtons(level, w),
		Styles.Divider.Render(strings.Repeat("─", w)),
	}
	footer := []string{
		Styles.Divider.Render(strings.Repeat("─", w)),
		Styles.Muted.Render(overlayFooter),
	}
	content := strings.Join(header, "\n") + "\n" + o.viewport.View() + "\n" + strings.Join(footer, "\n")

	_, _, pw, ph := o.Bounds(o.width, o.height)
	return Styles.Panel.Width(pw - 2).Height(ph - 2).MaxHeight(ph).Render(content)
}

func (o *CourseOverlay) renderButtons(selected catalog.Level, w int) string {
	levels := o.levels()
	if len(levels) == 0 {
		return ""
	}
	parts := make([]string, len(levels))
	for i, l := range levels {
		parts[i] = LevelButton(l, l == selected)
	}
	return lipgloss.NewStyle().MaxWidth(w).Render(strings.Join(parts, " "))
}

// renderBody returns the scrollable level details. It is blank while a level change
// is fading and a placeholder for courses the catalog does not know.
func (o *CourseOverlay) renderBody(level catalog.Level, w int) string {
	d, err := o.Catalog.Details(o.Course, level)
	if err != nil {
		return "\n" + Styles.Empty.Render(overlayNoDetail)
	}
	if !o.Board.ContentVisible(o.Course) {
		return ""
	}

	var b strings.Builder
	b.WriteString(Styles.Section.Render("◷ Course Duration") + "\n")
	for _, line := range d.DurationLines() {
		b.WriteString(strings.Join(wrapItem("  ", line, w), "\n") + "\n")
	}
	b.WriteString("\n" + Styles.Section.Render("✓ Prerequisites") + "\n")
	for _, p := range d.Prerequisites {
		b.WriteString(strings.Join(wrapItem("  • ", p, w), "\n") + "\n")
	}
	b.WriteString("\n")

	highlights := numberedSection("Course Highlights", d.Highlights)
	outcomes := numberedSection("Learning Outcomes", d.Outcomes)
	if w >= 70 {
		colW := (w - 2) / 2
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.NewStyle().Width(colW).Render(highlights(colW)),
			"  ",
			lipgloss.NewStyle().Width(colW).Render(outcomes(colW)),
		))
		b.WriteString("\n")
	} else {
		b.WriteString(highlights(w) + "\n\n" + outcomes(w) + "\n")
	}

	b.WriteString("\n" + lipgloss.PlaceHorizontal(w, lipgloss.Center, EnrollButton(level)))
	return b.String()
}

// numberedSection returns a renderer for a titled numbered list at a given width.
func numberedSection(title string, items []string) func(int) string {
	return func(w int) string {
		lines := []string{Styles.Section.Render(title)}
		for i, it := range items {
			lines = append(lines, wrapItem(fmt.Sprintf("  %d. ", i+1), it, w)...)
		}
		return strings.Join(lines, "\n")
	}
}

// wrapItem wraps text after marker with a hanging indent.
func wrapItem(marker, text string, w int) []string {
	indent := textutil.Width(marker)
	lines := textutil.Wrap(text, max(w-indent, 1))
	if len(lines) == 0 {
		return []string{Styles.Marker.Render(marker)}
	}
	out := make([]string, len(lines))
	for i, l := range lines {
		if i == 0 {
			out[i] = Styles.Marker.Render(marker) + Styles.Normal.Render(l)
			continue
		}
		out[i] = strings.Repeat(" ", indent) + Styles.Normal.Render(l)
	}
	return out
}
