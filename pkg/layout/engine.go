package layout

import (
	"context"

	"github.com/netcanvas/netcanvas/pkg/diagram"
)

// Engine is the external layered-layout primitive: a Sugiyama-style
// hierarchical graph-drawing algorithm that assigns nodes to ranks along the
// given direction and positions them to minimize edge crossings. The engine
// is consumed as an opaque service; rank assignment and crossing
// minimization are entirely its business.
//
// Layout returns top-left positions keyed by node ID, in an arbitrary
// coordinate frame: callers translate the result into container-local
// coordinates themselves. Every node passed in must appear in the result.
// Edges reference node IDs; edges mentioning unknown IDs are ignored.
type Engine interface {
	Layout(ctx context.Context, nodes []diagram.Node, edges []diagram.Edge, spacing Spacing, dir Direction) (map[string]diagram.Point, error)
}
