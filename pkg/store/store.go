// Package store provides diagram persistence behind a storage-agnostic
// interface.
//
// Two implementations exist: [MongoStore] for server deployments and
// [MemoryStore] for tests and the embedded CLI workflow. The store owns
// node identity and lifetime; the layout engine only ever sees copies and
// returns diffs.
package store

import (
	"context"

	"github.com/netcanvas/netcanvas/pkg/diagram"
	"github.com/netcanvas/netcanvas/pkg/errors"
)

// Store persists diagrams keyed by ID.
type Store interface {
	// Get retrieves a diagram. Returns ErrCodeDiagramNotFound when absent.
	Get(ctx context.Context, id string) (*diagram.Diagram, error)

	// Put stores or replaces a diagram under its ID.
	Put(ctx context.Context, d *diagram.Diagram) error

	// Delete removes a diagram. Deleting a missing diagram is an error.
	Delete(ctx context.Context, id string) error

	// List returns summaries of all stored diagrams.
	List(ctx context.Context) ([]Summary, error)

	// Close releases the underlying connection.
	Close(ctx context.Context) error
}

// Summary is a lightweight listing entry.
type Summary struct {
	ID        string `json:"id" bson:"id"`
	Name      string `json:"name,omitempty" bson:"name,omitempty"`
	NodeCount int    `json:"node_count" bson:"node_count"`
	EdgeCount int    `json:"edge_count" bson:"edge_count"`
}

// notFound builds the standard missing-diagram error.
func notFound(id string) error {
	return errors.New(errors.ErrCodeDiagramNotFound, "diagram %q not found", id)
}
