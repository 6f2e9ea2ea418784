package errors

import (
	"unicode"

	"github.com/netcanvas/netcanvas/pkg/diagram"
)

// ValidateNodeID validates an element ID for safety and correctness.
//
// The validation rules are intentionally conservative:
//   - No empty IDs
//   - No control characters
//   - Maximum length of 256 characters
func ValidateNodeID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidNode, "node id cannot be empty")
	}
	if len(id) > 256 {
		return New(ErrCodeInvalidNode, "node id too long (max 256 characters)")
	}
	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidNode, "node id contains control characters")
		}
	}
	return nil
}

// ValidateDiagram checks a diagram's structural invariants before it enters
// the store or the layout engine:
//   - node IDs are valid and unique
//   - every edge references known nodes
//   - every parent reference names an existing boundary node
//   - containment contains no cycles (a boundary cannot, transitively,
//     contain itself)
//
// Geometric degeneracy (negative positions, zero sizes) is NOT rejected
// here; the layout core is total over such input.
func ValidateDiagram(d *diagram.Diagram) error {
	if d == nil {
		return New(ErrCodeInvalidDiagram, "diagram is nil")
	}

	byID := make(map[string]*diagram.Node, len(d.Nodes))
	for i := range d.Nodes {
		n := &d.Nodes[i]
		if err := ValidateNodeID(n.ID); err != nil {
			return err
		}
		if _, dup := byID[n.ID]; dup {
			return New(ErrCodeInvalidDiagram, "duplicate node id: %s", n.ID)
		}
		if n.Kind != diagram.KindDevice && n.Kind != diagram.KindBoundary {
			return New(ErrCodeInvalidNode, "node %s has unknown kind %q", n.ID, n.Kind)
		}
		byID[n.ID] = n
	}

	for _, e := range d.Edges {
		if _, ok := byID[e.Source]; !ok {
			return New(ErrCodeInvalidDiagram, "edge source %q does not exist", e.Source)
		}
		if _, ok := byID[e.Target]; !ok {
			return New(ErrCodeInvalidDiagram, "edge target %q does not exist", e.Target)
		}
	}

	for _, n := range byID {
		if n.ParentID == "" {
			continue
		}
		parent, ok := byID[n.ParentID]
		if !ok {
			return New(ErrCodeInvalidDiagram, "node %s references missing parent %q", n.ID, n.ParentID)
		}
		if !parent.IsBoundary() {
			return New(ErrCodeInvalidDiagram, "node %s has non-boundary parent %q", n.ID, n.ParentID)
		}
	}

	// Walk each containment chain; a cycle revisits a node before the chain
	// terminates at the root canvas.
	for id := range byID {
		seen := map[string]bool{id: true}
		for cur := byID[id]; cur.ParentID != ""; {
			if seen[cur.ParentID] {
				return New(ErrCodeInvalidDiagram, "containment cycle through %q", cur.ParentID)
			}
			seen[cur.ParentID] = true
			cur = byID[cur.ParentID]
		}
	}

	return nil
}
