package layout

import (
	"strings"
	"testing"
)

func TestFrameRender(t *testing.T) {
	f := Frame{
		Title:  "The Bench",
		Status: "Passed 1/4",
		Hints:  []KeyHint{{Key: "Tab", Description: "Switch"}, {Key: "Esc", Description: "Back"}},
	}

	var gotW, gotH int
	out := f.Render(100, 30, func(w, h int) string {
		gotW, gotH = w, h
		return "mainspring barrel"
	})

	for _, want := range []string{"Apprentice", "The Bench", "Passed 1/4", "Tab", "Back", "mainspring barrel"} {
		if !strings.Contains(out, want) {
			t.Errorf("frame missing %q", want)
		}
	}
	if gotW != 100 {
		t.Errorf("body width = %d, want 100", gotW)
	}
	// Header and footer are three rows each.
	if gotH != 24 {
		t.Errorf("body height = %d, want 24", gotH)
	}
	if lines := strings.Count(out, "\n") + 1; lines != 30 {
		t.Errorf("frame is %d lines, want 30", lines)
	}
}

func TestFrameFooterDropsOverflow(t *testing.T) {
	hints := make([]KeyHint, 0, 20)
	for range 20 {
		hints = append(hints, KeyHint{Key: "Ctrl+X", Description: "Something long"})
	}
	hints = append(hints, KeyHint{Key: "Zz", Description: "Last"})

	out := Frame{Hints: hints}.footer(80)
	if strings.Contains(out, "Last") {
		t.Error("hints past the width should be dropped")
	}
	if !strings.Contains(out, "Ctrl+X") {
		t.Error("leading hints should be kept")
	}
}

func TestFrameTooSmall(t *testing.T) {
	called := false
	out := Frame{Title: "The Bench"}.Render(60, 20, func(int, int) string {
		called = true
		return ""
	})
	if called {
		t.Error("body should not render in an undersized terminal")
	}
	if !strings.Contains(out, "at least 80 x 24") {
		t.Errorf("missing resize notice:\n%s", out)
	}
}

func TestIsCompactWidth(t *testing.T) {
	if !IsCompactWidth(99) || IsCompactWidth(100) {
		t.Error("compact threshold should be 100 columns")
	}
}
