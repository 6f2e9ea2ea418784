package store

import (
	"context"
	"sort"
	"sync"

	"github.com/netcanvas/netcanvas/pkg/diagram"
)

// MemoryStore is an in-memory Store for tests and single-process use.
// Safe for concurrent access.
type MemoryStore struct {
	mu       sync.RWMutex
	diagrams map[string]*diagram.Diagram
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{diagrams: map[string]*diagram.Diagram{}}
}

// Get retrieves a diagram by ID.
func (s *MemoryStore) Get(ctx context.Context, id string) (*diagram.Diagram, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.diagrams[id]
	if !ok {
		return nil, notFound(id)
	}
	return d.Clone(), nil
}

// Put stores or replaces a diagram.
func (s *MemoryStore) Put(ctx context.Context, d *diagram.Diagram) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.diagrams[d.ID] = d.Clone()
	return nil
}

// Delete removes a diagram.
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.diagrams[id]; !ok {
		return notFound(id)
	}
	delete(s.diagrams, id)
	return nil
}

// List returns summaries of all stored diagrams, sorted by ID.
func (s *MemoryStore) List(ctx context.Context) ([]Summary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Summary, 0, len(s.diagrams))
	for _, d := range s.diagrams {
		out = append(out, Summary{
			ID:        d.ID,
			Name:      d.Name,
			NodeCount: d.NodeCount(),
			EdgeCount: d.EdgeCount(),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Close does nothing for the in-memory store.
func (s *MemoryStore) Close(ctx context.Context) error {
	return nil
}

// Ensure MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)
