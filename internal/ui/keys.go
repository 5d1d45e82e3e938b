package ui

import "github.com/charmbracelet/bubbles/key"

// pageKeyMap holds the catalog page bindings.
type pageKeyMap struct {
	Up, Down, Left, Right key.Binding
	Open                  key.Binding
	Focus, FocusBack      key.Binding
	Beginner              key.Binding
	Intermediate          key.Binding
	Advanced              key.Binding
	PageUp, PageDown      key.Binding
	Leader                key.Binding
	Quit                  key.Binding
}

var pageKeys = pageKeyMap{
	Up:           key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:         key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Left:         key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
	Right:        key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
	Open:         key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "explore")),
	Focus:        key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "focus")),
	FocusBack:    key.NewBinding(key.WithKeys("shift+tab")),
	Beginner:     key.NewBinding(key.WithKeys("b"), key.WithHelp("b/i/a", "level")),
	Intermediate: key.NewBinding(key.WithKeys("i")),
	Advanced:     key.NewBinding(key.WithKeys("a")),
	PageUp:       key.NewBinding(key.WithKeys("pgup")),
	PageDown:     key.NewBinding(key.WithKeys("pgdown")),
	Leader:       key.NewBinding(key.WithKeys(" "), key.WithHelp("SPC", "menu")),
	Quit:         key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
}

// ShortHelp implements help.KeyMap.
func (k pageKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Open, k.Beginner, k.Focus, k.Leader, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k pageKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// overlayKeyMap holds the course overlay bindings.
type overlayKeyMap struct {
	Prev, Next key.Binding
	Jump       key.Binding
	Up, Down   key.Binding
	Close      key.Binding
}

var overlayKeys = overlayKeyMap{
	Prev:  key.NewBinding(key.WithKeys("left", "h", "shift+tab"), key.WithHelp("←", "prev level")),
	Next:  key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("→/tab", "next level")),
	Jump:  key.NewBinding(key.WithKeys("1", "2", "3"), key.WithHelp("1-3", "level")),
	Up:    key.NewBinding(key.WithKeys("up", "k", "pgup"), key.WithHelp("↑", "scroll")),
	Down:  key.NewBinding(key.WithKeys("down", "j", "pgdown"), key.WithHelp("↓", "scroll")),
	Close: key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("esc/q", "close")),
}

// ShortHelp implements help.KeyMap.
func (k overlayKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Jump, k.Up, k.Down, k.Close}
}

// FullHelp implements help.KeyMap.
func (k overlayKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
