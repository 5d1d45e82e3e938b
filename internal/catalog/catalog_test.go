package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jazzYAML = `
cards:
  - title: Jazz Basics
    description: Swing from day one.
courses:
  Jazz Basics:
    Beginner:
      duration: |-
        8 weeks
        1 class per week
      prerequisites: [None]
      highlights: [Swing feel, Blues scale]
      outcomes: [Comp a twelve-bar blues]
`

func TestLookup_JazzScenario(t *testing.T) {
	c, err := Parse([]byte(jazzYAML), FormatYAML)
	require.NoError(t, err)

	course, ok := c.Lookup("Jazz Basics")
	require.True(t, ok, "Jazz Basics should be found")
	assert.Equal(t, []Level{Beginner}, course.Levels())

	d, ok := course.Details(Beginner)
	require.True(t, ok)
	want := LevelDetails{
		Duration:      "8 weeks\n1 class per week",
		Prerequisites: []string{"None"},
		Highlights:    []string{"Swing feel", "Blues scale"},
		Outcomes:      []string{"Comp a twelve-bar blues"},
	}
	if diff := cmp.Diff(want, d); diff != "" {
		t.Errorf("Beginner details mismatch (-want +got):\n%s", diff)
	}

	_, ok = c.Lookup("Opera")
	assert.False(t, ok, "Opera should be absent")
}

func TestLookup_ExactMatchOnly(t *testing.T) {
	c := Default()
	for _, name := range []string{"carnatic vocals", "Carnatic  Vocals", " Carnatic Vocals", "Carnatic"} {
		_, ok := c.Lookup(name)
		assert.False(t, ok, "lookup %q should not match", name)
	}
}

func TestLookup_NilCatalog(t *testing.T) {
	var c *Catalog
	_, ok := c.Lookup("Carnatic Vocals")
	assert.False(t, ok)
	assert.Nil(t, c.Names())
	assert.Nil(t, c.Cards())
}

func TestDefault_EveryCourseHasBeginner(t *testing.T) {
	c := Default()
	names := c.Names()
	require.Equal(t, []string{"Carnatic Vocals", "Western Vocals", "English Pop"}, names)
	for _, name := range names {
		course, ok := c.Lookup(name)
		require.True(t, ok, name)
		assert.True(t, course.Has(Beginner), "%s should offer Beginner", name)
		assert.Equal(t, Levels(), course.Levels(), "%s level order", name)
		assert.Equal(t, Beginner, course.DefaultLevel())
	}
}

func TestDefault_CardsMatchCatalog(t *testing.T) {
	c := Default()
	var titles []string
	for _, card := range c.Cards() {
		titles = append(titles, card.Title)
	}
	assert.Equal(t, []string{"Carnatic Vocals", "Tamil Film Songs", "English Pop", "Western Vocals"}, titles)

	_, ok := c.Lookup("Tamil Film Songs")
	assert.False(t, ok, "Tamil Film Songs has a card but no level data")
}

func TestDefault_DurationLines(t *testing.T) {
	d, err := Default().Details("Western Vocals", Advanced)
	require.NoError(t, err)
	assert.Equal(t, []string{"12 months (48 weeks)", "2 classes per week, 2 hours each"}, d.DurationLines())
}

func TestDetails_Errors(t *testing.T) {
	c := Default()

	_, err := c.Details("Opera", Beginner)
	assert.True(t, errors.Is(err, ErrUnknownCourse), "got %v", err)

	_, err = c.Details("English Pop", Level("Expert"))
	assert.True(t, errors.Is(err, ErrUnknownLevel), "got %v", err)
}

func TestDetails_ReturnsCopy(t *testing.T) {
	c := Default()
	d, err := c.Details("English Pop", Beginner)
	require.NoError(t, err)
	d.Highlights[0] = "mutated"

	again, err := c.Details("English Pop", Beginner)
	require.NoError(t, err)
	assert.Equal(t, "Basics of pop vocal technique", again.Highlights[0])
}

func TestNewCourse_DefaultLevelWithoutBeginner(t *testing.T) {
	course := NewCourse(
		LevelEntry{Level: Advanced, Details: LevelDetails{Duration: "1 year"}},
		LevelEntry{Level: Intermediate, Details: LevelDetails{Duration: "6 months"}},
	)
	assert.Equal(t, Advanced, course.DefaultLevel())
	assert.Equal(t, []Level{Advanced, Intermediate}, course.Levels())
	assert.Equal(t, Level(""), Course{}.DefaultLevel())
}

func TestNewCourse_RepeatedLevelKeepsPosition(t *testing.T) {
	course := NewCourse(
		LevelEntry{Level: Beginner, Details: LevelDetails{Duration: "first"}},
		LevelEntry{Level: Advanced, Details: LevelDetails{Duration: "adv"}},
		LevelEntry{Level: Beginner, Details: LevelDetails{Duration: "second"}},
	)
	assert.Equal(t, []Level{Beginner, Advanced}, course.Levels())
	d, _ := course.Details(Beginner)
	assert.Equal(t, "second", d.Duration)
}

func TestParse_YAMLPreservesLevelOrder(t *testing.T) {
	data := `
courses:
  Drums:
    Advanced: {duration: long}
    Masterclass: {duration: longer}
    Beginner: {duration: short}
`
	c, err := Parse([]byte(data), FormatYAML)
	require.NoError(t, err)
	course, _ := c.Lookup("Drums")
	assert.Equal(t, []Level{Advanced, Level("Masterclass"), Beginner}, course.Levels())
}

func TestParse_JSONOrdersLevelsCanonically(t *testing.T) {
	data := `{
  "cards": [{"title": "Drums", "description": "Keep time."}],
  "courses": {
    "Violin": {"Advanced": {"duration": "a"}, "Beginner": {"duration": "b"}},
    "Drums": {"Masterclass": {"duration": "m"}, "Intermediate": {"duration": "i"}, "Beginner": {"duration": "b"}}
  }
}`
	c, err := Parse([]byte(data), FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, []string{"Drums", "Violin"}, c.Names())

	drums, _ := c.Lookup("Drums")
	assert.Equal(t, []Level{Beginner, Intermediate, Level("Masterclass")}, drums.Levels())
	violin, _ := c.Lookup("Violin")
	assert.Equal(t, []Level{Beginner, Advanced}, violin.Levels())
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format Format
		want   string
	}{
		{"unknown field", "courses: {}\ninstructors: []\n", FormatYAML, "instructors"},
		{"courses not mapping", "courses: [a, b]\n", FormatYAML, "courses must be a mapping"},
		{"course not mapping", "courses:\n  Drums: loud\n", FormatYAML, "a course must be a mapping"},
		{"duplicate level", "courses:\n  Drums:\n    Beginner: {duration: a}\n    Beginner: {duration: b}\n", FormatYAML, "duplicate level"},
		{"duplicate course", "courses:\n  Drums:\n    Beginner: {duration: a}\n  Drums:\n    Beginner: {duration: b}\n", FormatYAML, "duplicate course"},
		{"missing duration", "courses:\n  Drums:\n    Beginner: {highlights: [x]}\n", FormatYAML, "missing duration"},
		{"no levels", "courses:\n  Drums: {}\n", FormatYAML, "no levels"},
		{"duplicate card", "cards:\n  - {title: A}\n  - {title: A}\n", FormatYAML, "duplicate title"},
		{"bad json", "{", FormatJSON, "decode json"},
		{"json courses array", `{"courses": []}`, FormatJSON, "courses"},
		{"json unknown top-level field", `{"courses": {}, "instructors": []}`, FormatJSON, `unknown field "instructors"`},
		{"json unknown level field", `{"courses": {"A": {"Beginner": {"duration": "x", "prerequisite": ["y"]}}}}`, FormatJSON, `unknown field "prerequisite"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), tt.format)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "school.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(jazzYAML), 0o644))
	c, err := LoadFile(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"Jazz Basics"}, c.Names())

	jsonPath := filepath.Join(dir, "school.JSON")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"courses":{"Sitar":{"Beginner":{"duration":"3 months"}}}}`), 0o644))
	c, err = LoadFile(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"Sitar"}, c.Names())

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"Beginner", Beginner, false},
		{"intermediate", Intermediate, false},
		{" ADVANCED ", Advanced, false},
		{"b", Beginner, false},
		{"I", Intermediate, false},
		{"a", Advanced, false},
		{"", "", true},
		{"expert", "", true},
		{"x", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrUnknownLevel), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMarkdown(t *testing.T) {
	md, err := Default().Markdown("Carnatic Vocals", Intermediate)
	require.NoError(t, err)

	for _, want := range []string{
		"# Carnatic Vocals\n",
		"_Intermediate level_",
		"## Course Duration\n\n- 7 months depending on the student's progress\n- 1 class per week, 40 minute session\n",
		"## Prerequisites\n\n- Completion of beginner level\n",
		"## Course Highlights\n\n1. Advanced Alankaras and Varnams\n2. Detailed study of Ragas\n",
		"## Learning Outcomes\n\n1. Ability to sing complex compositions\n",
	} {
		assert.True(t, strings.Contains(md, want), "markdown missing %q:\n%s", want, md)
	}

	_, err = Default().Markdown("Tamil Film Songs", Beginner)
	assert.True(t, errors.Is(err, ErrUnknownCourse))
}
