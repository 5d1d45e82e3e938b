package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"melodious/internal/catalog"
	"melodious/internal/ui/textutil"
)

const (
	cardDescLines = 3
	// cardHeight is the rendered height: border, banner, title, badges,
	// description lines and the button.
	cardHeight   = 2 + 3 + cardDescLines + 1
	cardBadgeRow = 3 // border + banner + title
	cardMinWidth = 24
	cardMaxWidth = 38
)

// CourseCard renders one grid card. Levels is empty when the catalog has no
// entry for the card's course; such cards show no badges.
type CourseCard struct {
	Card     catalog.Card
	Levels   []catalog.Level
	Selected catalog.Level
	Focused  bool
	Width    int // total width including border
}

func (c CourseCard) innerWidth() int {
	// border and one column of padding on each side
	return max(c.Width-4, 1)
}

// View renders the card at exactly cardHeight lines.
func (c CourseCard) View() string {
	w := c.innerWidth()
	lines := make([]string, 0, cardHeight-2)

	banner := lipgloss.PlaceHorizontal(w, lipgloss.Center, Styles.Muted.Render("♪ ♫ ♪"))
	lines = append(lines, banner)
	lines = append(lines, Styles.Title.Render(textutil.Truncate("♫ "+c.Card.Title, w)))
	lines = append(lines, c.badges())

	desc := textutil.Clamp(c.Card.Description, w, cardDescLines)
	for i := 0; i < cardDescLines; i++ {
		line := ""
		if i < len(desc) {
			line = desc[i]
		}
		lines = append(lines, Styles.Normal.Render(line))
	}

	label := textutil.Truncate(" Explore Course › ", w)
	lines = append(lines, lipgloss.PlaceHorizontal(w, lipgloss.Center, Styles.Button.Render(label)))

	st := Styles.Card
	if c.Focused {
		st = Styles.CardFocused
	}
	return st.Width(c.Width - 2).Render(strings.Join(lines, "\n"))
}

// compact reports whether full badge labels overflow the card.
func (c CourseCard) compact() bool {
	total := 0
	for _, l := range c.Levels {
		total += textutil.Width(badgeLabel(l, false)) + 2
	}
	return total > c.innerWidth()
}

func (c CourseCard) badges() string {
	if len(c.Levels) == 0 {
		return ""
	}
	compact := c.compact()
	parts := make([]string, len(c.Levels))
	for i, l := range c.Levels {
		parts[i] = LevelBadge(l, l == c.Selected, compact)
	}
	return lipgloss.NewStyle().MaxWidth(c.innerWidth()).Render(strings.Join(parts, ""))
}

// BadgeAt returns the level badge at card-relative cell (x, y), if any.
func (c CourseCard) BadgeAt(x, y int) (catalog.Level, bool) {
	if y != cardBadgeRow {
		return "", false
	}
	pos := 2 // left border and padding
	limit := pos + c.innerWidth()
	compact := c.compact()
	for _, l := range c.Levels {
		w := textutil.Width(badgeLabel(l, compact)) + 2
		if x >= pos && x < pos+w && x < limit {
			return l, true
		}
		pos += w
	}
	return "", false
}
