package store

import (
	"context"
	"testing"

	"github.com/netcanvas/netcanvas/pkg/diagram"
	"github.com/netcanvas/netcanvas/pkg/errors"
)

func testDiagram(id, name string) *diagram.Diagram {
	return &diagram.Diagram{
		ID:   id,
		Name: name,
		Nodes: []diagram.Node{
			{ID: "dmz", Kind: diagram.KindBoundary},
			{ID: "fw", Kind: diagram.KindDevice, ParentID: "dmz"},
		},
		Edges: []diagram.Edge{},
	}
}

func TestMemoryStoreCRUD(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	if _, err := s.Get(ctx, "missing"); !errors.Is(err, errors.ErrCodeDiagramNotFound) {
		t.Errorf("Get(missing) = %v, want DIAGRAM_NOT_FOUND", err)
	}

	d := testDiagram("d-1", "office")
	if err := s.Put(ctx, d); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, err := s.Get(ctx, "d-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Name != "office" || got.NodeCount() != 2 {
		t.Errorf("Get = %+v", got)
	}

	// Replacing is allowed.
	d.Name = "office-v2"
	if err := s.Put(ctx, d); err != nil {
		t.Fatalf("Put replace: %v", err)
	}
	got, _ = s.Get(ctx, "d-1")
	if got.Name != "office-v2" {
		t.Errorf("replace did not stick: %s", got.Name)
	}

	if err := s.Delete(ctx, "d-1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := s.Delete(ctx, "d-1"); !errors.Is(err, errors.ErrCodeDiagramNotFound) {
		t.Errorf("double Delete = %v, want DIAGRAM_NOT_FOUND", err)
	}
}

func TestMemoryStoreIsolation(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	d := testDiagram("d-1", "office")
	if err := s.Put(ctx, d); err != nil {
		t.Fatalf("Put: %v", err)
	}

	// Mutating the caller's copy after Put must not affect the store.
	d.Nodes[0].Label = "tampered"
	got, _ := s.Get(ctx, "d-1")
	if got.Nodes[0].Label == "tampered" {
		t.Error("store shares memory with the caller's diagram")
	}

	// Mutating a retrieved copy must not affect later reads.
	got.Nodes[0].Label = "also tampered"
	again, _ := s.Get(ctx, "d-1")
	if again.Nodes[0].Label == "also tampered" {
		t.Error("store hands out shared copies")
	}
}

func TestMemoryStoreList(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	for _, id := range []string{"c", "a", "b"} {
		if err := s.Put(ctx, testDiagram(id, "diagram-"+id)); err != nil {
			t.Fatalf("Put(%s): %v", id, err)
		}
	}

	summaries, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(summaries) != 3 {
		t.Fatalf("len = %d, want 3", len(summaries))
	}
	for i, want := range []string{"a", "b", "c"} {
		if summaries[i].ID != want {
			t.Errorf("summaries[%d].ID = %s, want %s", i, summaries[i].ID, want)
		}
	}
	if summaries[0].NodeCount != 2 || summaries[0].EdgeCount != 0 {
		t.Errorf("summary counts = %+v", summaries[0])
	}
}
