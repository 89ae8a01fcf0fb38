// Package sketch reads and writes stroke capture files.
//
// A sketch document is the raw input to vectorization: the point sequences
// recorded while drawing, plus optional vectorization defaults captured
// alongside them. Points are stored as [x, y] pairs:
//
//	{
//	  "strokes": [
//	    [[0, 0], [48.5, 2.1], [100, 0]],
//	    [[50, -20], [50, 80]]
//	  ],
//	  "snap_radius": 10,
//	  "epsilon": 5
//	}
//
// Coordinates must be finite; the vectorization core treats NaN and
// infinity as undefined behavior, so this boundary rejects them.
package sketch

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/soerensenkarl/DrawTruss/pkg/errors"
	"github.com/soerensenkarl/DrawTruss/pkg/geom"
)

// Sketch is a decoded stroke capture.
type Sketch struct {
	// Strokes holds one point sequence per pen motion, in draw order.
	Strokes [][]geom.Point

	// SnapRadius is an optional default merge distance embedded in the
	// file. Zero means not set.
	SnapRadius float64

	// Epsilon is an optional default simplification tolerance embedded in
	// the file. Zero means not set.
	Epsilon float64
}

// StrokeCount returns the number of recorded strokes.
func (s Sketch) StrokeCount() int { return len(s.Strokes) }

// PointCount returns the total number of captured points across strokes.
func (s Sketch) PointCount() int {
	n := 0
	for _, stroke := range s.Strokes {
		n += len(stroke)
	}
	return n
}

// document is the wire form: strokes as [x, y] pair arrays.
type document struct {
	Strokes    [][][2]float64 `json:"strokes"`
	SnapRadius float64        `json:"snap_radius,omitempty"`
	Epsilon    float64        `json:"epsilon,omitempty"`
}

// ReadJSON decodes a sketch document from r and validates every
// coordinate. Malformed JSON and non-finite coordinates are both errors;
// empty stroke lists are not.
func ReadJSON(r io.Reader) (Sketch, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Sketch{}, errors.Wrap(errors.ErrCodeInvalidSketch, err, "decode sketch")
	}

	s := Sketch{
		Strokes:    make([][]geom.Point, len(doc.Strokes)),
		SnapRadius: doc.SnapRadius,
		Epsilon:    doc.Epsilon,
	}
	for i, raw := range doc.Strokes {
		stroke := make([]geom.Point, len(raw))
		for j, xy := range raw {
			p := geom.Point{X: xy[0], Y: xy[1]}
			if !p.IsFinite() {
				return Sketch{}, errors.New(errors.ErrCodeInvalidSketch,
					"stroke %d point %d has non-finite coordinates", i, j)
			}
			stroke[j] = p
		}
		s.Strokes[i] = stroke
	}

	if err := errors.ValidateSketchParams(s.SnapRadius, s.Epsilon); err != nil {
		return Sketch{}, err
	}
	return s, nil
}

// WriteJSON encodes a sketch document to w in the wire form accepted by
// [ReadJSON].
func WriteJSON(s Sketch, w io.Writer) error {
	doc := document{
		Strokes:    make([][][2]float64, len(s.Strokes)),
		SnapRadius: s.SnapRadius,
		Epsilon:    s.Epsilon,
	}
	for i, stroke := range s.Strokes {
		raw := make([][2]float64, len(stroke))
		for j, p := range stroke {
			raw[j] = [2]float64{p.X, p.Y}
		}
		doc.Strokes[i] = raw
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ImportJSON reads a sketch file at path. Errors wrap the underlying cause
// with the file path for context.
func ImportJSON(path string) (Sketch, error) {
	f, err := os.Open(path)
	if err != nil {
		return Sketch{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}

// ExportJSON writes a sketch to a JSON file at path.
func ExportJSON(s Sketch, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(s, f)
}
