// Package layout is the auto-layout core for network diagrams: it turns a
// set of devices, nested security boundaries, and connections into concrete,
// non-overlapping canvas geometry.
//
// # Architecture
//
// The package is a pure function of (nodes, edges, options) → (positions,
// sizes). It owns everything around the layered graph-drawing primitive but
// not the primitive itself:
//
//   - Spacing: [EdgeDensity], [DensityFactor], [OptimalSpacing] derive
//     separation parameters adaptively from graph density and a spacing tier.
//   - Sizing: [OptimalBoundarySize] fits a boundary container exactly around
//     its children with padding and direction-aware aspect preferences;
//     [ChildrenOffset] translates children into container-local coordinates.
//   - Collision: [ResolveCollisions] iteratively nudges overlapping siblings
//     apart; [AvoidCollisionForDragged] is the single-node variant for live
//     drag interactions.
//   - Orchestration: [Apply] runs the full pass for one container.
//
// Rank assignment and crossing minimization belong to the [Engine]
// implementation (see pkg/layered for the Graphviz-backed one).
//
// # Error Policy
//
// The core favors silent, total functions over errors: every function
// returns a well-defined result for empty and degenerate input - zero
// nodes, one node, disconnected graphs, coincident positions. Unknown
// direction or tier strings fall back to documented defaults. The only
// error path in [Apply] is a missing boundary or a failing engine.
//
// # Usage
//
//	engine := layered.NewGraphviz()
//	res, err := layout.Apply(ctx, engine, "dmz", d.Nodes, d.Edges, layout.Options{
//	    Direction:       layout.DirectionTB,
//	    Tier:            layout.TierComfortable,
//	    AvoidCollisions: true,
//	})
//	if err != nil {
//	    return err
//	}
//	d.ApplyPositions(res.Positions)
//	d.ApplySizes(res.Sizes)
//
// All results are sparse diffs; input slices are never mutated, and nothing
// in this package persists state across calls.
package layout
