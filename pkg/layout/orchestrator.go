package layout

import (
	"context"
	"fmt"

	"github.com/netcanvas/netcanvas/pkg/diagram"
)

// =============================================================================
// Layout Orchestration
// =============================================================================

// Options configures a full layout pass over one container.
type Options struct {
	// Direction is the flow direction for the layered layout.
	Direction Direction

	// Tier selects the spacing tier. Unknown values fall back to comfortable.
	Tier Tier

	// BaseUnit is the spacing base unit; 0 selects DefaultBaseUnit.
	BaseUnit float64

	// Sizing configures the boundary container resize step.
	Sizing SizeOptions

	// AvoidCollisions enables the collision cleanup pass after layout. The
	// layered engine does not guarantee minimum clearance between same-rank
	// siblings, so this is on in every UI code path.
	AvoidCollisions bool

	// Collision configures the cleanup pass when AvoidCollisions is set.
	Collision CollisionOptions
}

// withDefaults normalizes zero-valued options.
func (o Options) withDefaults() Options {
	if o.Direction == "" {
		o.Direction = DefaultDirection
	}
	if o.Tier == "" {
		o.Tier = DefaultTier
	}
	if o.BaseUnit <= 0 {
		o.BaseUnit = DefaultBaseUnit
	}
	return o
}

// Result is the outcome of a layout pass: a sparse diff the caller merges
// into the authoritative diagram state. Input slices are never mutated.
type Result struct {
	// Positions holds new container-local positions for the laid-out
	// children, plus nothing else.
	Positions map[string]diagram.Point `json:"positions" bson:"positions"`

	// Sizes holds the resized boundary container, when one was targeted.
	Sizes map[string]diagram.Size `json:"sizes,omitempty" bson:"sizes,omitempty"`

	// Spacing is the density-adjusted spacing that was fed to the engine.
	Spacing Spacing `json:"spacing" bson:"spacing"`

	// Collision reports the cleanup pass, when one ran.
	Collision *CollisionResult `json:"collision,omitempty" bson:"collision,omitempty"`
}

// Apply lays out the direct children of one container. boundaryID names a
// boundary node in nodes, or is empty to target the root canvas.
//
// The pass computes density-adjusted spacing from the edges among the
// children, hands the children to the layered engine, translates the result
// into padded container-local coordinates, resizes the boundary to fit, and
// optionally runs collision cleanup. Containment is expressed by ParentID
// and is never fed to the engine as an edge.
func Apply(ctx context.Context, engine Engine, boundaryID string, nodes []diagram.Node, edges []diagram.Edge, opts Options) (Result, error) {
	opts = opts.withDefaults()

	var boundary *diagram.Node
	if boundaryID != "" {
		for i := range nodes {
			if nodes[i].ID == boundaryID {
				boundary = &nodes[i]
				break
			}
		}
		if boundary == nil || !boundary.IsBoundary() {
			return Result{}, fmt.Errorf("boundary %q not found", boundaryID)
		}
	}

	children := childrenOf(nodes, boundaryID)
	result := Result{Positions: map[string]diagram.Point{}}
	if len(children) == 0 {
		if boundary != nil {
			// Empty boundaries still collapse to the configured floor.
			size := OptimalBoundarySize(nil, opts.Direction, opts.Sizing)
			result.Sizes = map[string]diagram.Size{
				boundary.ID: {Width: size.Width, Height: size.Height},
			}
		}
		return result, nil
	}

	childEdges := edgesAmong(children, edges)
	result.Spacing = OptimalSpacing(children, childEdges, opts.Tier, opts.BaseUnit)

	positions, err := engine.Layout(ctx, children, childEdges, result.Spacing, opts.Direction)
	if err != nil {
		return Result{}, fmt.Errorf("layered layout: %w", err)
	}

	// Reposition children into padded container-local coordinates,
	// independent of where the engine happened to place them.
	placed := make([]diagram.Node, len(children))
	for i, c := range children {
		if p, ok := positions[c.ID]; ok {
			c.Position = p
		}
		placed[i] = c
	}
	padding := opts.Sizing.withDefaults().Padding
	if bounds, ok := ChildrenBounds(placed); ok {
		dx, dy := ChildrenOffset(bounds, padding)
		for i := range placed {
			placed[i].Position.X += dx
			placed[i].Position.Y += dy
		}
	}

	if opts.AvoidCollisions {
		cr := ResolveCollisions(placed, opts.Collision)
		result.Collision = &cr
		for i := range placed {
			if p, ok := cr.NudgedPositions[placed[i].ID]; ok {
				placed[i].Position = p
			}
		}
	}

	for _, c := range placed {
		result.Positions[c.ID] = c.Position
	}

	if boundary != nil {
		size := OptimalBoundarySize(placed, opts.Direction, opts.Sizing)
		result.Sizes = map[string]diagram.Size{
			boundary.ID: {Width: size.Width, Height: size.Height},
		}
	}

	return result, nil
}

// childrenOf filters nodes to the direct children of parentID.
func childrenOf(nodes []diagram.Node, parentID string) []diagram.Node {
	var out []diagram.Node
	for _, n := range nodes {
		if n.ParentID == parentID {
			out = append(out, n)
		}
	}
	return out
}

// edgesAmong filters edges to those connecting two of the given nodes.
func edgesAmong(nodes []diagram.Node, edges []diagram.Edge) []diagram.Edge {
	ids := make(map[string]struct{}, len(nodes))
	for _, n := range nodes {
		ids[n.ID] = struct{}{}
	}
	var out []diagram.Edge
	for _, e := range edges {
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
