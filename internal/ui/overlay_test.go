package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

type stubView struct {
	updates int
}

func (s *stubView) Init() tea.Cmd { return nil }

func (s *stubView) Update(tea.Msg) (View, tea.Cmd) {
	s.updates++
	return s, nil
}

func (s *stubView) View() string { return "stub" }

func fixedBounds(x, y, w, h int) BoundsFunc {
	return func(int, int) (int, int, int, int) { return x, y, w, h }
}

func TestOverlaySlot_ShowReplaces(t *testing.T) {
	var s OverlaySlot
	first, second := &stubView{}, &stubView{}

	if s.Show(Overlay{Panel: Panel{ID: "a", View: first}}) {
		t.Error("first Show should not report a replacement")
	}
	if !s.Show(Overlay{Panel: Panel{ID: "b", View: second}}) {
		t.Error("second Show should replace")
	}
	o, ok := s.Active()
	if !ok || o.Panel.ID != "b" {
		t.Fatalf("Active() = %+v, %v", o, ok)
	}

	if _, ok := s.Update(tea.KeyMsg{}); !ok {
		t.Error("Update with an overlay should report handled")
	}
	if first.updates != 0 || second.updates != 1 {
		t.Errorf("updates first=%d second=%d", first.updates, second.updates)
	}

	if _, ok := s.Dismiss(); !ok {
		t.Error("Dismiss should remove the overlay")
	}
	if _, ok := s.Dismiss(); ok {
		t.Error("second Dismiss should find nothing")
	}
	if _, ok := s.Update(tea.KeyMsg{}); ok {
		t.Error("Update without an overlay should report unhandled")
	}
}

func TestOverlay_IsDismissKey(t *testing.T) {
	o := Overlay{DismissKeys: overlayDismissKeys}
	for _, k := range []string{"esc", "q"} {
		if !o.IsDismissKey(k) {
			t.Errorf("%q should dismiss", k)
		}
	}
	if o.IsDismissKey("enter") {
		t.Error("enter should not dismiss")
	}
}

func TestPanel_ContainsAndLocal(t *testing.T) {
	p := Panel{ID: "box", Bounds: fixedBounds(10, 5, 20, 8)}
	tests := []struct {
		x, y int
		want bool
	}{
		{10, 5, true},
		{29, 12, true},
		{30, 12, false},
		{29, 13, false},
		{9, 5, false},
	}
	for _, tt := range tests {
		if got := p.Contains(80, 24, tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
	if x, y := p.Local(80, 24, 15, 7); x != 5 || y != 2 {
		t.Errorf("Local = (%d,%d), want (5,2)", x, y)
	}
	if (Panel{}).Contains(80, 24, 0, 0) {
		t.Error("panel without bounds contains nothing")
	}
}
