package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// Level names a difficulty tier of a course.
type Level string

const (
	Beginner     Level = "Beginner"
	Intermediate Level = "Intermediate"
	Advanced     Level = "Advanced"
)

// canonical is the display order for the levels the school offers.
var canonical = []Level{Beginner, Intermediate, Advanced}

// Levels returns the standard levels in display order.
func Levels() []Level {
	out := make([]Level, len(canonical))
	copy(out, canonical)
	return out
}

func (l Level) String() string {
	return string(l)
}

// Rank returns the position of l in the standard order.
// Levels outside the standard set rank after all of them.
func (l Level) Rank() int {
	for i, c := range canonical {
		if c == l {
			return i
		}
	}
	return len(canonical)
}

// ParseLevel resolves user input ("beginner", "B", "advanced") to a standard level.
func ParseLevel(s string) (Level, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("parse level: empty: %w", ErrUnknownLevel)
	}
	for _, l := range canonical {
		if strings.EqualFold(s, string(l)) {
			return l, nil
		}
	}
	if len(s) == 1 {
		for _, l := range canonical {
			if strings.EqualFold(s, string(l)[:1]) {
				return l, nil
			}
		}
	}
	return "", fmt.Errorf("parse level %q: %w", s, ErrUnknownLevel)
}

// sortLevels orders standard levels first, then any others alphabetically.
func sortLevels(ls []Level) {
	sort.SliceStable(ls, func(i, j int) bool {
		ri, rj := ls[i].Rank(), ls[j].Rank()
		if ri != rj {
			return ri < rj
		}
		return ls[i] < ls[j]
	})
}
