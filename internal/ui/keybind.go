package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// leaderSeq is the first element of every leader sequence ("SPC g c").
const leaderSeq = "SPC"

// Binding is one entry of the leader menu.
type Binding struct {
	Seq    string  // e.g. "SPC g c"
	Desc   string  // menu text
	Cmd    tea.Cmd // run when the sequence completes
	Routes []Route // routes offering the binding; empty means every route

	// Label, when set, replaces Desc at render time. An empty label hides and
	// disables the binding.
	Label func() string
}

func (b Binding) text() string {
	if b.Label != nil {
		return b.Label()
	}
	return b.Desc
}

func (b Binding) offeredOn(r Route) bool {
	if b.Label != nil && b.Label() == "" {
		return false
	}
	if len(b.Routes) == 0 {
		return true
	}
	for _, rt := range b.Routes {
		if rt == r {
			return true
		}
	}
	return false
}

// MenuItem is one row of the leader help: the next key and what it does.
type MenuItem struct {
	Key     string
	Desc    string
	Submenu bool
}

// KeybindRegistry holds the leader menu in registration order. Sequences use
// spacemacs notation: "SPC" for space, then one token per key.
type KeybindRegistry struct {
	bindings []Binding
	index    map[string]int
	groups   map[string]string // prefix -> submenu label
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{
		index:  make(map[string]int),
		groups: make(map[string]string),
	}
}

// Add registers b. A binding for the same sequence is replaced in place, keeping
// its menu position.
func (r *KeybindRegistry) Add(b Binding) {
	b.Seq = normalizeSeq(b.Seq)
	if i, ok := r.index[b.Seq]; ok {
		r.bindings[i] = b
		return
	}
	r.index[b.Seq] = len(r.bindings)
	r.bindings = append(r.bindings, b)
}

// Group names the submenu opened by prefix, e.g. "SPC g" → "Go to".
func (r *KeybindRegistry) Group(prefix, label string) {
	r.groups[normalizeSeq(prefix)] = label
}

// Lookup returns the command bound to seq if the binding is offered on route.
func (r *KeybindRegistry) Lookup(seq string, route Route) tea.Cmd {
	i, ok := r.index[normalizeSeq(seq)]
	if !ok || !r.bindings[i].offeredOn(route) {
		return nil
	}
	return r.bindings[i].Cmd
}

// HasPrefix reports whether any binding continues seq with more keys.
func (r *KeybindRegistry) HasPrefix(seq string) bool {
	prefix := normalizeSeq(seq) + " "
	for _, b := range r.bindings {
		if strings.HasPrefix(b.Seq, prefix) {
			return true
		}
	}
	return false
}

// Menu lists the keys that may follow prefix on route, in registration order.
// A key leading into a submenu appears once, under its group label.
func (r *KeybindRegistry) Menu(prefix string, route Route) []MenuItem {
	if prefix == "" {
		prefix = leaderSeq
	}
	prefix = normalizeSeq(prefix) + " "

	var items []MenuItem
	seen := make(map[string]bool)
	for _, b := range r.bindings {
		if b.Cmd == nil || !strings.HasPrefix(b.Seq, prefix) || !b.offeredOn(route) {
			continue
		}
		rest := strings.Fields(strings.TrimPrefix(b.Seq, prefix))
		if len(rest) == 0 || seen[rest[0]] {
			continue
		}
		k := rest[0]
		seen[k] = true
		if len(rest) == 1 {
			items = append(items, MenuItem{Key: k, Desc: b.text()})
			continue
		}
		label, ok := r.groups[prefix+k]
		if !ok {
			label = k + "…"
		}
		items = append(items, MenuItem{Key: k, Desc: label, Submenu: true})
	}
	return items
}

// normalizeSeq converts tea key strings to registry notation.
func normalizeSeq(seq string) string {
	parts := strings.Fields(seq)
	for i, p := range parts {
		parts[i] = keyToSeqPart(p)
	}
	return strings.Join(parts, " ")
}

func keyToSeqPart(s string) string {
	if s == " " || s == "space" {
		return leaderSeq
	}
	return s
}

// KeyHandler tracks a leader sequence in progress and dispatches completed ones.
type KeyHandler struct {
	Registry      *KeybindRegistry
	LeaderKey     string   // tea.KeyMsg.String() of the leader; space is " "
	LeaderWaiting bool     // a sequence has started
	Buffer        []string // keys so far, starting with "SPC"
}

// NewKeyHandler creates a handler with space as leader.
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{Registry: reg, LeaderKey: " "}
}

func (h *KeyHandler) reset() {
	h.LeaderWaiting = false
	h.Buffer = nil
}

// Handle consumes the leader key and every key of a sequence in progress. Keys
// outside a sequence are left for the views. The returned command is the completed
// binding's, if the sequence exists on route.
func (h *KeyHandler) Handle(msg tea.KeyMsg, route Route) (consumed bool, cmd tea.Cmd) {
	s := msg.String()
	if !h.LeaderWaiting {
		if s != h.LeaderKey {
			return false, nil
		}
		h.LeaderWaiting = true
		h.Buffer = []string{leaderSeq}
		return true, nil
	}

	if s == "esc" {
		h.reset()
		return true, nil
	}
	h.Buffer = append(h.Buffer, keyToSeqPart(s))
	seq := strings.Join(h.Buffer, " ")
	if c := h.Registry.Lookup(seq, route); c != nil {
		h.reset()
		return true, c
	}
	if !h.Registry.HasPrefix(seq) {
		h.reset()
	}
	return true, nil
}

// Prefix returns the sequence typed so far, or "" outside leader mode.
func (h *KeyHandler) Prefix() string {
	if h == nil || !h.LeaderWaiting {
		return ""
	}
	return strings.Join(h.Buffer, " ")
}

// leaderKeyMap adapts the current leader menu to help.KeyMap.
type leaderKeyMap struct {
	items []MenuItem
}

// NewKeyMap returns the help bindings for the menu after the handler's current
// prefix on route.
func NewKeyMap(registry *KeybindRegistry, keyHandler *KeyHandler, route Route) help.KeyMap {
	if registry == nil {
		return leaderKeyMap{}
	}
	return leaderKeyMap{items: registry.Menu(keyHandler.Prefix(), route)}
}

// ShortHelp implements help.KeyMap. It ends with the esc binding that cancels
// the sequence.
func (km leaderKeyMap) ShortHelp() []key.Binding {
	if len(km.items) == 0 {
		return nil
	}
	bindings := make([]key.Binding, 0, len(km.items)+1)
	for _, it := range km.items {
		bindings = append(bindings, key.NewBinding(key.WithKeys(it.Key), key.WithHelp(it.Key, it.Desc)))
	}
	return append(bindings, key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")))
}

// FullHelp implements help.KeyMap.
func (km leaderKeyMap) FullHelp() [][]key.Binding {
	if short := km.ShortHelp(); len(short) > 0 {
		return [][]key.Binding{short}
	}
	return nil
}
