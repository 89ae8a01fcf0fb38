package sketch

import (
	"bytes"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/soerensenkarl/DrawTruss/pkg/errors"
	"github.com/soerensenkarl/DrawTruss/pkg/geom"
)

const sampleDoc = `{
  "strokes": [
    [[0, 0], [48.5, 2.1], [100, 0]],
    [[50, -20], [50, 80]]
  ],
  "snap_radius": 10,
  "epsilon": 5
}`

func TestReadJSON(t *testing.T) {
	s, err := ReadJSON(strings.NewReader(sampleDoc))
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if s.StrokeCount() != 2 {
		t.Errorf("StrokeCount = %d, want 2", s.StrokeCount())
	}
	if s.PointCount() != 5 {
		t.Errorf("PointCount = %d, want 5", s.PointCount())
	}
	if s.SnapRadius != 10 || s.Epsilon != 5 {
		t.Errorf("params = %v/%v, want 10/5", s.SnapRadius, s.Epsilon)
	}
	want := geom.Point{X: 48.5, Y: 2.1}
	if s.Strokes[0][1] != want {
		t.Errorf("point = %v, want %v", s.Strokes[0][1], want)
	}
}

func TestReadJSONRejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"malformed", `{"strokes": [[[1`},
		{"non-numeric point", `{"strokes": [[["a", "b"]]]}`},
		{"negative snap radius", `{"strokes": [], "snap_radius": -1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadJSON(strings.NewReader(tt.doc)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestReadJSONRejectsNonFinite(t *testing.T) {
	// Out-of-range exponents fail at decode time; JSON has no way to spell
	// NaN or Inf, so the finiteness guard closes the whole class.
	doc := `{"strokes": [[[1e500, 0], [1, 1]]]}`
	_, err := ReadJSON(strings.NewReader(doc))
	if err == nil {
		t.Fatal("expected error for non-finite coordinate")
	}
	if !errors.Is(err, errors.ErrCodeInvalidSketch) {
		t.Errorf("wrong code: %v", err)
	}
}

func TestReadJSONEmpty(t *testing.T) {
	s, err := ReadJSON(strings.NewReader(`{"strokes": []}`))
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if s.StrokeCount() != 0 {
		t.Errorf("StrokeCount = %d, want 0", s.StrokeCount())
	}
}

func TestRoundTrip(t *testing.T) {
	s := Sketch{
		Strokes: [][]geom.Point{
			{{X: 0, Y: 0}, {X: 10.25, Y: -3.5}},
			{{X: 1, Y: 1}},
		},
		SnapRadius: 8,
	}

	var buf bytes.Buffer
	if err := WriteJSON(s, &buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	back, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if !reflect.DeepEqual(s, back) {
		t.Errorf("round trip changed sketch:\n%v\nvs\n%v", s, back)
	}
}

func TestImportExportFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sketch.json")
	s := Sketch{Strokes: [][]geom.Point{{{X: 0, Y: 0}, {X: 5, Y: 5}}}}

	if err := ExportJSON(s, path); err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}
	back, err := ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON: %v", err)
	}
	if !reflect.DeepEqual(s, back) {
		t.Errorf("file round trip changed sketch")
	}

	if _, err := ImportJSON(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}
