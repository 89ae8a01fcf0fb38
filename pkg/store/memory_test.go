package store

import (
	"context"
	"testing"
	"time"

	"github.com/soerensenkarl/DrawTruss/pkg/errors"
	"github.com/soerensenkarl/DrawTruss/pkg/truss"
)

func testGraph() truss.Graph {
	return truss.Graph{
		Nodes: []truss.Node{{ID: 0, X: 0, Y: 0}, {ID: 1, X: 100, Y: 0}},
		Edges: []truss.Edge{{ID: 0, N1: 0, N2: 1}},
	}
}

func TestMemoryStoreSaveAssignsID(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	rec, err := s.Save(ctx, Record{Name: "bridge", Graph: testGraph()})
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if rec.ID == "" {
		t.Error("Save() should assign an id")
	}
	if rec.CreatedAt.IsZero() {
		t.Error("Save() should assign a timestamp")
	}

	got, err := s.Get(ctx, rec.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Name != "bridge" || len(got.Graph.Nodes) != 2 {
		t.Errorf("Get() = %+v, want saved record", got)
	}
}

func TestMemoryStoreSaveKeepsExplicitID(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	rec, err := s.Save(ctx, Record{ID: "fixed-id", Graph: testGraph()})
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if rec.ID != "fixed-id" {
		t.Errorf("Save() replaced explicit id with %q", rec.ID)
	}

	// Saving again with the same id overwrites.
	rec.Name = "updated"
	if _, err := s.Save(ctx, rec); err != nil {
		t.Fatal(err)
	}
	got, _ := s.Get(ctx, "fixed-id")
	if got.Name != "updated" {
		t.Errorf("overwrite lost: Name = %q", got.Name)
	}
	list, _ := s.List(ctx)
	if len(list) != 1 {
		t.Errorf("overwrite should not duplicate, got %d records", len(list))
	}
}

func TestMemoryStoreGetMissing(t *testing.T) {
	s := NewMemoryStore()
	_, err := s.Get(context.Background(), "nope")
	if !errors.Is(err, errors.ErrCodeGraphNotFound) {
		t.Errorf("Get() error = %v, want GRAPH_NOT_FOUND", err)
	}
}

func TestMemoryStoreDelete(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	rec, _ := s.Save(ctx, Record{Graph: testGraph()})

	if err := s.Delete(ctx, rec.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := s.Get(ctx, rec.ID); !errors.Is(err, errors.ErrCodeGraphNotFound) {
		t.Errorf("deleted record should be gone, got %v", err)
	}
	if err := s.Delete(ctx, rec.ID); !errors.Is(err, errors.ErrCodeGraphNotFound) {
		t.Errorf("double delete should report GRAPH_NOT_FOUND, got %v", err)
	}
}

func TestMemoryStoreListOrder(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, id := range []string{"c", "a", "b"} {
		_, err := s.Save(ctx, Record{ID: id, CreatedAt: base.Add(time.Duration(i) * time.Minute), Graph: testGraph()})
		if err != nil {
			t.Fatal(err)
		}
	}

	list, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	var ids []string
	for _, rec := range list {
		ids = append(ids, rec.ID)
	}
	want := []string{"c", "a", "b"} // creation order, not id order
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("List() order = %v, want %v", ids, want)
		}
	}
}

func TestMemoryStoreListEmpty(t *testing.T) {
	s := NewMemoryStore()
	list, err := s.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if list == nil || len(list) != 0 {
		t.Errorf("empty store should list a non-nil empty slice, got %#v", list)
	}
}
