// Package catalog holds the school's course table: course name -> level -> details.
//
// A Catalog is built once at startup (from the bundled data or a file named on the
// command line) and is never written afterwards, so it is safe to share without locks.
package catalog

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownCourse is returned when a course name has no catalog entry.
	ErrUnknownCourse = errors.New("unknown course")
	// ErrUnknownLevel is returned when a course does not offer the requested level.
	ErrUnknownLevel = errors.New("unknown level")
)

// LevelDetails describes one level of a course.
type LevelDetails struct {
	Duration      string   `yaml:"duration" json:"duration"`
	Prerequisites []string `yaml:"prerequisites" json:"prerequisites"`
	Highlights    []string `yaml:"highlights" json:"highlights"`
	Outcomes      []string `yaml:"outcomes" json:"outcomes"`
}

// DurationLines splits the duration text into display lines.
func (d LevelDetails) DurationLines() []string {
	var out []string
	for _, line := range strings.Split(d.Duration, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

func (d LevelDetails) clone() LevelDetails {
	return LevelDetails{
		Duration:      d.Duration,
		Prerequisites: append([]string(nil), d.Prerequisites...),
		Highlights:    append([]string(nil), d.Highlights...),
		Outcomes:      append([]string(nil), d.Outcomes...),
	}
}

// LevelEntry pairs a level with its details, used to build a Course in order.
type LevelEntry struct {
	Level   Level
	Details LevelDetails
}

// Course maps levels to their details, remembering the order they were authored in.
// The zero Course offers no levels.
type Course struct {
	levels  []Level
	details map[Level]LevelDetails
}

// NewCourse builds a course from entries in order.
// A repeated level keeps its first position and takes the last details.
func NewCourse(entries ...LevelEntry) Course {
	c := Course{details: make(map[Level]LevelDetails, len(entries))}
	for _, e := range entries {
		if _, seen := c.details[e.Level]; !seen {
			c.levels = append(c.levels, e.Level)
		}
		c.details[e.Level] = e.Details.clone()
	}
	return c
}

// Levels returns the levels this course offers in authored order.
func (c Course) Levels() []Level {
	return append([]Level(nil), c.levels...)
}

// Has reports whether the course offers level l.
func (c Course) Has(l Level) bool {
	_, ok := c.details[l]
	return ok
}

// Details returns a copy of the details for level l.
func (c Course) Details(l Level) (LevelDetails, bool) {
	d, ok := c.details[l]
	if !ok {
		return LevelDetails{}, false
	}
	return d.clone(), true
}

// DefaultLevel is Beginner when offered, otherwise the first authored level.
// Returns "" for a course with no levels.
func (c Course) DefaultLevel() Level {
	if c.Has(Beginner) {
		return Beginner
	}
	if len(c.levels) > 0 {
		return c.levels[0]
	}
	return ""
}

// Len returns the number of levels.
func (c Course) Len() int {
	return len(c.levels)
}

// Card is the summary shown in the course grid.
// Cards are authored separately from courses and match them by exact title.
type Card struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	Image       string `yaml:"image,omitempty" json:"image,omitempty"`
}

// Entry is a named course, used to build a Catalog in order.
type Entry struct {
	Name   string
	Course Course
}

// Catalog is the read-only course table plus the cards shown for it.
type Catalog struct {
	names   []string
	courses map[string]Course
	cards   []Card
}

// New builds and validates a catalog.
func New(entries []Entry, cards []Card) (*Catalog, error) {
	c := &Catalog{
		courses: make(map[string]Course, len(entries)),
		cards:   append([]Card(nil), cards...),
	}
	for _, e := range entries {
		if _, dup := c.courses[e.Name]; dup {
			return nil, fmt.Errorf("catalog: duplicate course %q", e.Name)
		}
		c.names = append(c.names, e.Name)
		c.courses[e.Name] = e.Course
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Lookup returns the course with exactly this name.
func (c *Catalog) Lookup(name string) (Course, bool) {
	if c == nil {
		return Course{}, false
	}
	course, ok := c.courses[name]
	return course, ok
}

// Details returns the details of one course level.
func (c *Catalog) Details(name string, level Level) (LevelDetails, error) {
	course, ok := c.Lookup(name)
	if !ok {
		return LevelDetails{}, fmt.Errorf("course %q: %w", name, ErrUnknownCourse)
	}
	d, ok := course.Details(level)
	if !ok {
		return LevelDetails{}, fmt.Errorf("course %q level %q: %w", name, level, ErrUnknownLevel)
	}
	return d, nil
}

// Names returns course names in authored order.
func (c *Catalog) Names() []string {
	if c == nil {
		return nil
	}
	return append([]string(nil), c.names...)
}

// Cards returns the grid cards in authored order.
func (c *Catalog) Cards() []Card {
	if c == nil {
		return nil
	}
	return append([]Card(nil), c.cards...)
}

// Validate checks that every course has at least one level, every level is named and
// has a duration, and card titles are present and unique.
func (c *Catalog) Validate() error {
	var errs []error
	for _, name := range c.names {
		if strings.TrimSpace(name) == "" {
			errs = append(errs, errors.New("course with empty name"))
			continue
		}
		course := c.courses[name]
		if course.Len() == 0 {
			errs = append(errs, fmt.Errorf("course %q: no levels", name))
		}
		for _, l := range course.levels {
			if strings.TrimSpace(string(l)) == "" {
				errs = append(errs, fmt.Errorf("course %q: level with empty name", name))
				continue
			}
			if strings.TrimSpace(course.details[l].Duration) == "" {
				errs = append(errs, fmt.Errorf("course %q level %q: missing duration", name, l))
			}
		}
	}
	titles := make(map[string]bool, len(c.cards))
	for i, card := range c.cards {
		if strings.TrimSpace(card.Title) == "" {
			errs = append(errs, fmt.Errorf("card %d: missing title", i))
			continue
		}
		if titles[card.Title] {
			errs = append(errs, fmt.Errorf("card %q: duplicate title", card.Title))
		}
		titles[card.Title] = true
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("catalog: %w", err)
	}
	return nil
}
