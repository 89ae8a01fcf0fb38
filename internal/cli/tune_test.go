package cli

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/soerensenkarl/DrawTruss/pkg/geom"
	"github.com/soerensenkarl/DrawTruss/pkg/sketch"
	"github.com/soerensenkarl/DrawTruss/pkg/truss"
)

// tuneSketch has two strokes whose endpoints sit 6 units apart, so they
// merge at snap radius 10 and stay separate at radius 5.
func tuneSketch() sketch.Sketch {
	return sketch.Sketch{
		Strokes: [][]geom.Point{
			{{X: 0, Y: 0}, {X: 100, Y: 0}},
			{{X: 106, Y: 0}, {X: 200, Y: 0}},
		},
	}
}

func keyPress(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestTuneModelRadiusAdjustsGraph(t *testing.T) {
	m := newTuneModel(tuneSketch(), 10, "unused")

	if got := m.graph.NodeCount(); got != 3 {
		t.Fatalf("initial NodeCount = %d, want 3", got)
	}

	// Drop the radius below the 6 unit endpoint gap.
	var model tea.Model = m
	for i := 0; i < 5; i++ {
		model, _ = model.(tuneModel).Update(keyPress("j"))
	}

	tm := model.(tuneModel)
	if tm.radius != 5 {
		t.Errorf("radius = %v, want 5", tm.radius)
	}
	if got := tm.graph.NodeCount(); got != 4 {
		t.Errorf("NodeCount at radius 5 = %d, want 4", got)
	}
	if got := tm.graph.EdgeCount(); got != 2 {
		t.Errorf("EdgeCount at radius 5 = %d, want 2", got)
	}
}

func TestTuneModelRadiusFloor(t *testing.T) {
	m := newTuneModel(tuneSketch(), 3, "unused")

	var model tea.Model = m
	for i := 0; i < 4; i++ {
		model, _ = model.(tuneModel).Update(keyPress("J"))
	}

	if got := model.(tuneModel).radius; got != 1 {
		t.Errorf("radius = %v, want floor of 1", got)
	}
}

func TestTuneModelSaveWritesGraph(t *testing.T) {
	out := filepath.Join(t.TempDir(), "tuned.graph.json")
	m := newTuneModel(tuneSketch(), 10, out)

	model, cmd := m.Update(keyPress("s"))
	tm := model.(tuneModel)

	if tm.saveErr != nil {
		t.Fatalf("saveErr = %v", tm.saveErr)
	}
	if tm.savedAt != out {
		t.Errorf("savedAt = %q, want %q", tm.savedAt, out)
	}
	if cmd == nil {
		t.Error("save should return tea.Quit")
	}

	g, err := truss.ReadFile(out)
	if err != nil {
		t.Fatalf("ReadFile(%q) error: %v", out, err)
	}
	if g.NodeCount() != 3 || g.EdgeCount() != 2 {
		t.Errorf("saved graph has %d nodes / %d edges, want 3 / 2", g.NodeCount(), g.EdgeCount())
	}
}

func TestTuneModelQuitKeys(t *testing.T) {
	for _, key := range []string{"q"} {
		m := newTuneModel(tuneSketch(), 10, "unused")
		_, cmd := m.Update(keyPress(key))
		if cmd == nil {
			t.Errorf("key %q should quit", key)
		}
	}
}
