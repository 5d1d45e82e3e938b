package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"melodious/internal/jsonutil"

	"gopkg.in/yaml.v3"
)

//go:embed courses.yaml
var bundled []byte

// Format selects the decoder for catalog data.
type Format int

const (
	FormatYAML Format = iota
	FormatJSON
)

var bundledCatalog = sync.OnceValues(func() (*Catalog, error) {
	return Parse(bundled, FormatYAML)
})

// Default returns the catalog compiled into the binary.
// It panics if the bundled data is invalid; tests guard against that.
func Default() *Catalog {
	c, err := bundledCatalog()
	if err != nil {
		panic(fmt.Sprintf("catalog: bundled data: %v", err))
	}
	return c
}

// LoadFile reads a catalog from path. Files ending in .json are decoded as JSON,
// everything else as YAML.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	f := FormatYAML
	if strings.EqualFold(filepath.Ext(path), ".json") {
		f = FormatJSON
	}
	c, err := Parse(data, f)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	return c, nil
}

// document is the on-disk shape shared by YAML and JSON catalogs.
type document struct {
	Cards   []Card     `yaml:"cards" json:"cards"`
	Courses courseList `yaml:"courses" json:"courses"`
}

// Parse decodes and validates catalog data.
func Parse(data []byte, f Format) (*Catalog, error) {
	var doc document
	switch f {
	case FormatJSON:
		if err := jsonutil.UnmarshalWithContext(data, &doc, "decode json"); err != nil {
			return nil, err
		}
	default:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	}
	return New(doc.Courses, doc.Cards)
}

// courseList keeps courses in the order they appear in the source.
type courseList []Entry

func (l *courseList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: courses must be a mapping of name to levels", node.Line)
	}
	seen := make(map[string]bool, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		name := node.Content[i].Value
		if seen[name] {
			return fmt.Errorf("line %d: duplicate course %q", node.Content[i].Line, name)
		}
		seen[name] = true
		var c Course
		if err := node.Content[i+1].Decode(&c); err != nil {
			return fmt.Errorf("course %q: %w", name, err)
		}
		*l = append(*l, Entry{Name: name, Course: c})
	}
	return nil
}

// UnmarshalJSON sorts courses by name since JSON objects carry no order.
func (l *courseList) UnmarshalJSON(data []byte) error {
	m, err := jsonutil.UnmarshalObject[Course](data, "courses")
	if err != nil {
		return err
	}
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		*l = append(*l, Entry{Name: name, Course: m[name]})
	}
	return nil
}

func (c *Course) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: a course must be a mapping of level to details", node.Line)
	}
	var entries []LevelEntry
	seen := make(map[Level]bool, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		level := Level(node.Content[i].Value)
		if seen[level] {
			return fmt.Errorf("line %d: duplicate level %q", node.Content[i].Line, level)
		}
		seen[level] = true
		var d LevelDetails
		if err := node.Content[i+1].Decode(&d); err != nil {
			return fmt.Errorf("level %q: %w", level, err)
		}
		entries = append(entries, LevelEntry{Level: level, Details: d})
	}
	*c = NewCourse(entries...)
	return nil
}

// UnmarshalJSON orders levels Beginner, Intermediate, Advanced, then the rest by name.
func (c *Course) UnmarshalJSON(data []byte) error {
	m, err := jsonutil.UnmarshalObject[LevelDetails](data, "course")
	if err != nil {
		return err
	}
	levels := make([]Level, 0, len(m))
	for l := range m {
		levels = append(levels, Level(l))
	}
	sortLevels(levels)
	entries := make([]LevelEntry, 0, len(levels))
	for _, l := range levels {
		entries = append(entries, LevelEntry{Level: l, Details: m[string(l)]})
	}
	*c = NewCourse(entries...)
	return nil
}
