package tooltip

import (
	"testing"

	"github.com/sadopc/floatbar/internal/toolbar/option"
)

func TestPositionFor(t *testing.T) {
	tests := map[option.Anchor]Position{
		option.BottomCenter: Top,
		option.BottomLeft:   Top,
		option.TopRight:     Bottom,
		option.CenterLeft:   Right,
		option.CenterRight:  Left,
		option.Center:       Auto,
	}
	for a, want := range tests {
		if got := PositionFor(a); got != want {
			t.Errorf("PositionFor(%s) = %s, want %s", a, got, want)
		}
	}
}

func TestRegistryLifecycle(t *testing.T) {
	r := NewRegistry()
	r.Init("save", Spec{Text: "Save", Shortcut: "Ctrl+S"})
	r.Init("save", Spec{Text: "Save", Shortcut: "Ctrl+S"})
	if got := r.Handles(); len(got) != 1 {
		t.Fatalf("redundant Init duplicated: %v", got)
	}
	s, _ := r.Get("save")
	if s.Position != Auto {
		t.Errorf("default position = %q", s.Position)
	}

	r.UpdateText("save", "Save file")
	r.UpdateShortcut("save", "⌘S")
	s, _ = r.Get("save")
	if s.Text != "Save file" || s.Shortcut != "⌘S" {
		t.Errorf("updates lost: %+v", s)
	}

	r.UpdateText("ghost", "x")
	if _, ok := r.Get("ghost"); ok {
		t.Error("update must not create tooltips")
	}

	if !r.Show("save") {
		t.Fatal("Show failed")
	}
	if h, _, ok := r.Shown(); !ok || h != "save" {
		t.Fatal("shown tooltip not tracked")
	}
	r.Remove("save")
	r.Remove("save")
	if _, _, ok := r.Shown(); ok {
		t.Error("removing the open tooltip should close it")
	}
	if r.Show("save") {
		t.Error("Show on removed tooltip should fail")
	}
}

func TestInitWithoutText(t *testing.T) {
	r := NewRegistry()
	r.Init("a", Spec{Text: "A"})
	r.Init("a", Spec{})
	if _, ok := r.Get("a"); ok {
		t.Fatal("empty text should detach the tooltip")
	}
}
