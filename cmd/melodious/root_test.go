package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"melodious/internal/catalog"
)

// run executes the root command with args from an empty working directory.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCourses_Table(t *testing.T) {
	out, err := run(t, "courses")
	require.NoError(t, err)
	assert.Contains(t, out, "COURSE")
	assert.Contains(t, out, "Carnatic Vocals")
	assert.Contains(t, out, "Beginner, Intermediate, Advanced")
	assert.NotContains(t, out, "Tamil Film Songs", "cards without course data are not courses")

	var rows []string
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "│") {
			rows = append(rows, strings.TrimSpace(strings.Split(line, "│")[1]))
		}
	}
	if diff := cmp.Diff([]string{"COURSE", "Carnatic Vocals", "Western Vocals", "English Pop"}, rows); diff != "" {
		t.Errorf("table rows (-want +got):\n%s", diff)
	}
}

func TestCourses_JSON(t *testing.T) {
	out, err := run(t, "courses", "--json")
	require.NoError(t, err)

	var rows []courseSummary
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	var names []string
	for _, r := range rows {
		names = append(names, r.Name)
		assert.Equal(t, "Beginner", r.DefaultLevel, r.Name)
	}
	if diff := cmp.Diff([]string{"Carnatic Vocals", "Western Vocals", "English Pop"}, names); diff != "" {
		t.Errorf("course order (-want +got):\n%s", diff)
	}
}

func TestCourses_CustomCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jazz.json")
	data := `{
  "cards": [{"title": "Jazz Basics"}],
  "courses": {"Jazz Basics": {"Beginner": {"duration": "8 weeks"}}}
}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	out, err := run(t, "--catalog", path, "courses", "--json")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"name":"Jazz Basics","levels":["Beginner"],"defaultLevel":"Beginner"}]`, out)
}

func TestCourses_BadCatalog(t *testing.T) {
	_, err := run(t, "--catalog", filepath.Join(t.TempDir(), "missing.yaml"), "courses")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load catalog")
}

func TestShow_RendersLevel(t *testing.T) {
	out, err := run(t, "show", "Carnatic Vocals", "--level", "a", "--style", "notty")
	require.NoError(t, err)
	assert.Contains(t, out, "Carnatic Vocals")
	assert.Contains(t, out, "Course Duration")
	assert.Contains(t, out, "Ragam Tanam Pallavi")
	assert.NotContains(t, out, "Basic Alankaras", "beginner content leaks into advanced")
}

func TestShow_DefaultsToBeginner(t *testing.T) {
	out, err := run(t, "show", "Carnatic Vocals", "--style", "notty")
	require.NoError(t, err)
	assert.Contains(t, out, "Basic Alankaras")
}

func TestShow_Errors(t *testing.T) {
	_, err := run(t, "show", "Opera", "--style", "notty")
	assert.ErrorIs(t, err, catalog.ErrUnknownCourse)

	_, err = run(t, "show", "Carnatic Vocals", "--level", "expert", "--style", "notty")
	assert.ErrorIs(t, err, catalog.ErrUnknownLevel)

	_, err = run(t, "show")
	assert.Error(t, err)
}
