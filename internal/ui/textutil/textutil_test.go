package textutil

import (
	"testing"
	"unicode/utf8"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{"fits", "English Pop", 20, "English Pop"},
		{"exact", "English Pop", 11, "English Pop"},
		{"cut", "Carnatic Vocals", 8, "Carnati…"},
		{"zero", "anything", 0, ""},
		{"wide runes", "音楽の学校", 5, "音楽…"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.in, tt.width)
			if got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
			}
			if Width(got) > tt.width {
				t.Errorf("Truncate(%q, %d) is %d columns wide", tt.in, tt.width, Width(got))
			}
		})
	}
}

func TestWrap(t *testing.T) {
	got := Wrap("Master the ancient art of Carnatic music", 16)
	want := []string{"Master the", "ancient art of", "Carnatic music"}
	if len(got) != len(want) {
		t.Fatalf("Wrap() = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}

	if lines := Wrap("supercalifragilistic", 6); len(lines) != 1 || lines[0] != "super…" {
		t.Errorf("long word: got %q", lines)
	}
	if lines := Wrap("   ", 10); len(lines) != 0 {
		t.Errorf("blank input: got %q", lines)
	}
	if lines := Wrap("a b", 0); lines != nil {
		t.Errorf("zero width: got %q", lines)
	}
}

func TestClamp(t *testing.T) {
	s := "Learn to sing popular Tamil cinema melodies and express emotions through music."
	lines := Clamp(s, 20, 2)
	if len(lines) != 2 {
		t.Fatalf("Clamp() returned %d lines: %q", len(lines), lines)
	}
	last := lines[1]
	if got := last[len(last)-len(Ellipsis):]; got != Ellipsis {
		t.Errorf("last line %q should end with ellipsis", last)
	}
	for i, l := range lines {
		if Width(l) > 20 {
			t.Errorf("line %d %q exceeds width", i, l)
		}
	}

	short := Clamp("Short text", 20, 3)
	if len(short) != 1 || short[0] != "Short text" {
		t.Errorf("short text: got %q", short)
	}
}

func TestPadRight(t *testing.T) {
	if got := PadRight("Pop", 6); got != "Pop   " {
		t.Errorf("PadRight = %q", got)
	}
	if got := PadRight("Western Vocals", 8); Width(got) != 8 {
		t.Errorf("PadRight overflow = %q (%d cols)", got, Width(got))
	}
}

func TestCut(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"Intermediate", 3, "Int"},
		{"Niño", 3, "Niñ"},
		{"Ñandú", 2, "Ña"},
		{"初級者", 3, "初"},
		{"Pop", 5, "Pop"},
		{"Pop", 0, ""},
	}
	for _, tt := range tests {
		got := Cut(tt.in, tt.width)
		if got != tt.want {
			t.Errorf("Cut(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
		if !utf8.ValidString(got) {
			t.Errorf("Cut(%q, %d) split a character: %q", tt.in, tt.width, got)
		}
	}
}
