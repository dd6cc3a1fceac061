package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ndmitriev/pixelpole/internal/physics"
	"github.com/ndmitriev/pixelpole/internal/render"
	"github.com/ndmitriev/pixelpole/internal/visual"
)

func TestRenderFrameLineCount(t *testing.T) {
	f := render.Rasterize(physics.State{}, visual.DefaultPalette(), render.DefaultGeometry(5.0, 2.4))

	out := RenderFrame(&f)
	lines := strings.Split(out, "\n")

	// Two pixel rows per terminal line.
	if len(lines) != render.Height/2 {
		t.Errorf("rendered %d lines, want %d", len(lines), render.Height/2)
	}
	for i, line := range lines {
		if !strings.Contains(line, "▀") {
			t.Errorf("line %d contains no half-block glyphs", i)
		}
	}
}

func TestKeyMapper(t *testing.T) {
	km := NewKeyMapper()

	cases := []struct {
		key    string
		action physics.Action
		ok     bool
	}{
		{"left", physics.ActionLeft, true},
		{"a", physics.ActionLeft, true},
		{"right", physics.ActionRight, true},
		{"d", physics.ActionRight, true},
		{"x", 0, false},
	}
	for _, tc := range cases {
		msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(tc.key)}
		if tc.key == "left" {
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		}
		if tc.key == "right" {
			msg = tea.KeyMsg{Type: tea.KeyRight}
		}
		action, ok := km.MapKey(msg)
		if ok != tc.ok || (ok && action != tc.action) {
			t.Errorf("MapKey(%q) = %v, %v; want %v, %v", tc.key, action, ok, tc.action, tc.ok)
		}
	}

	if !km.IsQuit(tea.KeyMsg{Type: tea.KeyCtrlC}) {
		t.Error("ctrl+c should quit")
	}
	if !km.IsQuit(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}) {
		t.Error("q should quit")
	}
	if !km.IsRestart(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")}) {
		t.Error("r should restart")
	}
}
