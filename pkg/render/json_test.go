package render

import (
	"encoding/json"
	"testing"

	"github.com/soerensenkarl/DrawTruss/pkg/truss"
)

func TestExportJSON(t *testing.T) {
	g := truss.Graph{
		Nodes: []truss.Node{
			{ID: 0, X: 0.04, Y: 0},
			{ID: 1, X: 99.96, Y: 0.15},
		},
		Edges: []truss.Edge{{ID: 0, N1: 0, N2: 1}},
	}

	data, err := ExportJSON(g)
	if err != nil {
		t.Fatalf("ExportJSON() error = %v", err)
	}

	var out struct {
		Nodes []struct {
			ID int     `json:"id"`
			X  float64 `json:"x"`
			Y  float64 `json:"y"`
		} `json:"nodes"`
		Edges []struct {
			ID   int `json:"id"`
			From int `json:"from"`
			To   int `json:"to"`
		} `json:"edges"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if len(out.Nodes) != 2 || len(out.Edges) != 1 {
		t.Fatalf("got %d nodes, %d edges; want 2, 1", len(out.Nodes), len(out.Edges))
	}

	// Coordinates rounded to one decimal place.
	if out.Nodes[0].X != 0.0 {
		t.Errorf("Nodes[0].X = %v, want 0.0", out.Nodes[0].X)
	}
	if out.Nodes[1].X != 100.0 {
		t.Errorf("Nodes[1].X = %v, want 100.0", out.Nodes[1].X)
	}
	if out.Nodes[1].Y != 0.2 {
		t.Errorf("Nodes[1].Y = %v, want 0.2", out.Nodes[1].Y)
	}

	if out.Edges[0].From != 0 || out.Edges[0].To != 1 {
		t.Errorf("edge endpoints = (%d, %d), want (0, 1)", out.Edges[0].From, out.Edges[0].To)
	}
}

func TestExportJSON_Empty(t *testing.T) {
	data, err := ExportJSON(truss.Graph{})
	if err != nil {
		t.Fatalf("ExportJSON() error = %v", err)
	}
	var out map[string]json.RawMessage
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	// Empty collections serialize as arrays, not null.
	if string(out["nodes"]) != "[]" || string(out["edges"]) != "[]" {
		t.Errorf("empty graph should export [] collections, got %s", data)
	}
}

func TestRound1(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{1.04, 1.0},
		{1.05, 1.1},
		{-2.35, -2.4}, // half rounds away from zero
		{100, 100},
	}
	for _, tt := range tests {
		if got := round1(tt.in); got != tt.want {
			t.Errorf("round1(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
