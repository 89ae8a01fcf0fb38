// Package store persists vectorized truss graphs.
//
// A [GraphStore] keeps named graph records with server-assigned uuid
// ids and creation timestamps. Two implementations are provided:
// [MemoryStore] for tests and single-process use, and [MongoStore]
// backed by MongoDB for the API server.
package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/soerensenkarl/DrawTruss/pkg/truss"
)

// Record is a stored graph with its metadata.
type Record struct {
	ID        string      `json:"id" bson:"_id"`
	Name      string      `json:"name,omitempty" bson:"name,omitempty"`
	Graph     truss.Graph `json:"graph" bson:"graph"`
	CreatedAt time.Time   `json:"created_at" bson:"created_at"`
}

// GraphStore is the persistence interface for truss graphs.
//
// Save assigns a new uuid and timestamp when the record has none and
// returns the stored record. Get and Delete report a GRAPH_NOT_FOUND
// coded error for unknown ids. List returns records ordered by
// creation time, oldest first.
type GraphStore interface {
	Save(ctx context.Context, rec Record) (Record, error)
	Get(ctx context.Context, id string) (Record, error)
	List(ctx context.Context) ([]Record, error)
	Delete(ctx context.Context, id string) error
	Close(ctx context.Context) error
}

// newID returns a fresh record identifier.
func newID() string {
	return uuid.NewString()
}
