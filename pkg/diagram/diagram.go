package diagram

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// =============================================================================
// Diagram - Canonical Serialization Format
// =============================================================================

// Diagram is the canonical serialization format for network diagrams.
// Used for API requests/responses, storage, and caching.
//
// The format is human-readable and designed for round-trip fidelity:
// import → layout → export → re-import produces identical results.
type Diagram struct {
	ID    string `json:"id,omitempty" bson:"id,omitempty"`
	Name  string `json:"name,omitempty" bson:"name,omitempty"`
	Nodes []Node `json:"nodes" bson:"nodes"`
	Edges []Edge `json:"edges" bson:"edges"`
}

// NodeCount returns the number of nodes.
func (d *Diagram) NodeCount() int { return len(d.Nodes) }

// EdgeCount returns the number of edges.
func (d *Diagram) EdgeCount() int { return len(d.Edges) }

// Node returns the node with the given ID, if present.
func (d *Diagram) Node(id string) (*Node, bool) {
	for i := range d.Nodes {
		if d.Nodes[i].ID == id {
			return &d.Nodes[i], true
		}
	}
	return nil, false
}

// ChildrenOf returns the direct children of the given container. An empty
// parentID selects root-level nodes (those with no parent). The returned
// slice holds copies; callers merge changes back via ApplyPositions.
func (d *Diagram) ChildrenOf(parentID string) []Node {
	var out []Node
	for _, n := range d.Nodes {
		if n.ParentID == parentID {
			out = append(out, n)
		}
	}
	return out
}

// Boundaries returns all boundary nodes in the diagram.
func (d *Diagram) Boundaries() []Node {
	var out []Node
	for _, n := range d.Nodes {
		if n.IsBoundary() {
			out = append(out, n)
		}
	}
	return out
}

// EdgesAmong returns the edges whose endpoints both lie in the given ID set.
// This is the edge subset fed to layered layout when a single container is
// being laid out: cross-boundary and containment relations never reach the
// layout primitive.
func (d *Diagram) EdgesAmong(ids map[string]struct{}) []Edge {
	var out []Edge
	for _, e := range d.Edges {
		if _, ok := ids[e.Source]; !ok {
			continue
		}
		if _, ok := ids[e.Target]; !ok {
			continue
		}
		out = append(out, e)
	}
	return out
}

// ApplyPositions merges a sparse position diff into the diagram. Unknown IDs
// are ignored - the diff may refer to nodes another client already deleted.
func (d *Diagram) ApplyPositions(positions map[string]Point) {
	for i := range d.Nodes {
		if p, ok := positions[d.Nodes[i].ID]; ok {
			d.Nodes[i].Position = p
		}
	}
}

// ApplySizes merges a sparse size diff into the diagram.
func (d *Diagram) ApplySizes(sizes map[string]Size) {
	for i := range d.Nodes {
		if s, ok := sizes[d.Nodes[i].ID]; ok {
			d.Nodes[i].Width = s.Width
			d.Nodes[i].Height = s.Height
		}
	}
}

// Clone returns a deep copy of the diagram.
func (d *Diagram) Clone() *Diagram {
	out := &Diagram{
		ID:    d.ID,
		Name:  d.Name,
		Nodes: make([]Node, len(d.Nodes)),
		Edges: make([]Edge, len(d.Edges)),
	}
	copy(out.Edges, d.Edges)
	for i, n := range d.Nodes {
		if n.Meta != nil {
			meta := make(map[string]any, len(n.Meta))
			for k, v := range n.Meta {
				meta[k] = v
			}
			n.Meta = meta
		}
		out.Nodes[i] = n
	}
	return out
}

// =============================================================================
// Serialization API
// =============================================================================

// Marshal serializes a Diagram to pretty-printed JSON bytes.
func Marshal(d *Diagram) ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// Unmarshal deserializes JSON bytes into a Diagram.
func Unmarshal(data []byte) (*Diagram, error) {
	var d Diagram
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("unmarshal diagram: %w", err)
	}
	return &d, nil
}

// Read reads a Diagram from r.
func Read(r io.Reader) (*Diagram, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Unmarshal(data)
}

// Write writes a Diagram to w as JSON.
func Write(d *Diagram, w io.Writer) error {
	data, err := Marshal(d)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// ReadFile reads a Diagram from a JSON file.
func ReadFile(path string) (*Diagram, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return Unmarshal(data)
}

// WriteFile writes a Diagram to a JSON file.
func WriteFile(d *Diagram, path string) error {
	data, err := Marshal(d)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
