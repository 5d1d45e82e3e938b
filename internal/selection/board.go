// Package selection tracks which level each course shows and whether the course
// overlay is open.
//
// Level changes made while a course's overlay is open are two-phase: Select hides the
// content and hands back a Token, and the caller delivers that token to Settle after
// the fade delay. Only the newest token for a course can settle. Closing the overlay,
// opening another course, or resetting the board cancels outstanding tokens, so a
// late settle is a no-op instead of a write to state nobody is showing.
package selection

import (
	"fmt"

	"melodious/internal/catalog"
)

// Token identifies one deferred level change. The zero Token means "applied now".
type Token uint64

// Change describes the result of a Select call.
type Change struct {
	Course string
	Level  catalog.Level
	Token  Token
}

// Deferred reports whether the change waits for Settle.
func (c Change) Deferred() bool {
	return c.Token != 0
}

// State is a snapshot of one course's selection.
type State struct {
	Level          catalog.Level
	ContentVisible bool
	Pending        Token
	PendingLevel   catalog.Level
}

type courseState struct {
	level        catalog.Level
	visible      bool
	pending      Token
	pendingLevel catalog.Level
}

func (s *courseState) cancel() {
	s.pending = 0
	s.pendingLevel = ""
	s.visible = true
}

// Board holds selection state for every course on a page, keyed by course name,
// and the identity of the course whose overlay is open.
// It is owned by the page and mutated only from the UI event loop.
type Board struct {
	catalog *catalog.Catalog
	states  map[string]*courseState
	active  string
	open    bool
	last    Token
}

// NewBoard creates an empty board over c.
func NewBoard(c *catalog.Catalog) *Board {
	return &Board{
		catalog: c,
		states:  make(map[string]*courseState),
	}
}

// state returns the state for course, creating it at the course's default level.
// Courses missing from the catalog have no state.
func (b *Board) state(course string) (*courseState, bool) {
	if s, ok := b.states[course]; ok {
		return s, true
	}
	c, ok := b.catalog.Lookup(course)
	if !ok || c.Len() == 0 {
		return nil, false
	}
	s := &courseState{level: c.DefaultLevel(), visible: true}
	b.states[course] = s
	return s, true
}

// Open shows the overlay for course, replacing any other open course.
// Courses missing from the catalog can be opened; they simply have no level state.
func (b *Board) Open(course string) {
	if b.open && b.active == course {
		return
	}
	if b.open {
		b.cancel(b.active)
	}
	b.active = course
	b.open = true
	b.state(course)
}

// Close hides the overlay and cancels its pending level change.
// Returns false if no overlay was open.
func (b *Board) Close() bool {
	if !b.open {
		return false
	}
	b.cancel(b.active)
	b.open = false
	b.active = ""
	return true
}

// Active returns the course whose overlay is open.
func (b *Board) Active() (string, bool) {
	return b.active, b.open
}

// IsOpen reports whether the overlay is showing course.
func (b *Board) IsOpen(course string) bool {
	return b.open && b.active == course
}

// Select changes the level of course. While that course's overlay is open the change
// is deferred: content is hidden and the returned Change carries the token to settle.
// Otherwise the level applies immediately and any pending change is dropped.
func (b *Board) Select(course string, level catalog.Level) (Change, error) {
	c, ok := b.catalog.Lookup(course)
	if !ok {
		return Change{}, fmt.Errorf("select %s: course %q: %w", level, course, catalog.ErrUnknownCourse)
	}
	if !c.Has(level) {
		return Change{}, fmt.Errorf("select %s: course %q: %w", level, course, catalog.ErrUnknownLevel)
	}
	s, _ := b.state(course)
	if b.IsOpen(course) {
		b.last++
		s.pending = b.last
		s.pendingLevel = level
		s.visible = false
		return Change{Course: course, Level: level, Token: s.pending}, nil
	}
	s.cancel()
	s.level = level
	return Change{Course: course, Level: level}, nil
}

// Settle applies the deferred change identified by tok.
// Returns false when tok is stale: superseded, cancelled, or unknown.
func (b *Board) Settle(course string, tok Token) bool {
	s, ok := b.states[course]
	if !ok || tok == 0 || s.pending != tok {
		return false
	}
	s.level = s.pendingLevel
	s.cancel()
	return true
}

// Level returns the displayed level of course.
func (b *Board) Level(course string) (catalog.Level, bool) {
	s, ok := b.state(course)
	if !ok {
		return "", false
	}
	return s.level, true
}

// ContentVisible reports whether course's level content should be drawn.
// It is false only between a deferred Select and its Settle.
func (b *Board) ContentVisible(course string) bool {
	s, ok := b.states[course]
	if !ok {
		return true
	}
	return s.visible
}

// State returns a snapshot of course's selection.
func (b *Board) State(course string) (State, bool) {
	s, ok := b.state(course)
	if !ok {
		return State{}, false
	}
	return State{
		Level:          s.level,
		ContentVisible: s.visible,
		Pending:        s.pending,
		PendingLevel:   s.pendingLevel,
	}, true
}

// Reset discards all selection state, as when the page is torn down.
// Tokens issued before Reset never settle.
func (b *Board) Reset() {
	b.states = make(map[string]*courseState)
	b.open = false
	b.active = ""
}

func (b *Board) cancel(course string) {
	if s, ok := b.states[course]; ok {
		s.cancel()
	}
}
