package layout

import (
	"math"

	"github.com/netcanvas/netcanvas/pkg/diagram"
)

// =============================================================================
// Collision Avoidance
// =============================================================================

// Default collision parameters.
const (
	DefaultMinClearance     = 20.0
	DefaultMaxIterations    = 10
	DefaultMaxNudgeDistance = 50.0
)

// CollisionOptions configures overlap detection and resolution.
type CollisionOptions struct {
	// MinClearance is the required edge-to-edge gap between two sibling
	// rectangles, in canvas pixels.
	MinClearance float64

	// MaxIterations bounds the resolution loop. Exhausting it is a reported
	// outcome, not an error: the layout is left partially resolved.
	MaxIterations int

	// MaxNudgeDistance caps how far a single node moves per iteration.
	MaxNudgeDistance float64

	// DraggedNodeIDs are pinned nodes under user control. They still exert
	// repulsion on others but are never moved themselves.
	DraggedNodeIDs []string

	// DevicesOnly restricts pairwise checks to device nodes. Boundaries are
	// then skipped as collision candidates but still scope their children.
	DevicesOnly bool
}

// withDefaults fills zero-valued options with the package defaults.
func (o CollisionOptions) withDefaults() CollisionOptions {
	if o.MinClearance <= 0 {
		o.MinClearance = DefaultMinClearance
	}
	if o.MaxIterations <= 0 {
		o.MaxIterations = DefaultMaxIterations
	}
	if o.MaxNudgeDistance <= 0 {
		o.MaxNudgeDistance = DefaultMaxNudgeDistance
	}
	return o
}

// CollisionResult reports the outcome of a resolution pass as a sparse diff.
// Callers merge NudgedPositions into their own authoritative node set; this
// package never owns node identity or lifetime.
type CollisionResult struct {
	// HadCollisions reports that at least one overlapping or under-cleared
	// pair was detected during the run. Combined with a non-empty diff it
	// means progress was made, not that every overlap was resolved.
	HadCollisions bool `json:"had_collisions" bson:"had_collisions"`

	// NudgedCount is the number of distinct nodes that were moved.
	NudgedCount int `json:"nudged_count" bson:"nudged_count"`

	// NudgedPositions holds the new position of every moved node.
	NudgedPositions map[string]diagram.Point `json:"nudged_positions,omitempty" bson:"nudged_positions,omitempty"`
}

// rect is an axis-aligned rectangle used for pairwise checks.
type rect struct {
	minX, minY, maxX, maxY float64
}

func (r rect) centerX() float64 { return (r.minX + r.maxX) / 2 }
func (r rect) centerY() float64 { return (r.minY + r.maxY) / 2 }

// expandedRect returns the node's occupied rectangle at the given position,
// grown outward by margin on each side.
func expandedRect(pos diagram.Point, size diagram.Size, margin float64) rect {
	return rect{
		minX: pos.X - margin,
		minY: pos.Y - margin,
		maxX: pos.X + size.Width + margin,
		maxY: pos.Y + size.Height + margin,
	}
}

// overlap returns the penetration depths of two rectangles along each axis.
// Both are positive only when the rectangles properly intersect; touching
// edges do not count as a collision.
func overlap(a, b rect) (ox, oy float64) {
	ox = math.Min(a.maxX, b.maxX) - math.Max(a.minX, b.minX)
	oy = math.Min(a.maxY, b.maxY) - math.Max(a.minY, b.minY)
	return ox, oy
}

// repulsion returns the unit vector pushing b away from a, derived from the
// line between rectangle centers. Exactly coincident centers fall back to a
// deterministic +x direction so no pair ever produces a zero vector.
func repulsion(a, b rect) (dx, dy float64) {
	dx = b.centerX() - a.centerX()
	dy = b.centerY() - a.centerY()
	length := math.Hypot(dx, dy)
	if length == 0 {
		return 1, 0
	}
	return dx / length, dy / length
}

// =============================================================================
// Iterative Resolution
// =============================================================================

// ResolveCollisions iteratively separates overlapping or under-cleared
// sibling nodes. Two nodes are only collision candidates when they share the
// same parent (both root-level counts as sharing); nodes in different
// containers never collide by definition.
//
// Each iteration detects every colliding pair, accumulates per-node
// repulsion vectors along the line between rectangle centers, caps each
// node's total movement at MaxNudgeDistance, and applies the nudges. Pinned
// nodes (DraggedNodeIDs) exert repulsion but never move. The loop stops
// early once an iteration is collision-free and otherwise ends when
// MaxIterations is exhausted, leaving the layout partially resolved.
func ResolveCollisions(nodes []diagram.Node, opts CollisionOptions) CollisionResult {
	opts = opts.withDefaults()

	result := CollisionResult{NudgedPositions: map[string]diagram.Point{}}
	candidates := collisionCandidates(nodes, opts.DevicesOnly)
	if len(candidates) < 2 {
		return result
	}

	pinned := make(map[string]bool, len(opts.DraggedNodeIDs))
	for _, id := range opts.DraggedNodeIDs {
		pinned[id] = true
	}

	// Working positions, updated in place across iterations.
	pos := make(map[string]diagram.Point, len(candidates))
	for _, n := range candidates {
		pos[n.ID] = n.Position
	}

	margin := opts.MinClearance / 2

	for iter := 0; iter < opts.MaxIterations; iter++ {
		type nudge struct {
			dx, dy float64
		}
		nudges := map[string]nudge{}
		collided := false

		for i := 0; i < len(candidates); i++ {
			for j := i + 1; j < len(candidates); j++ {
				a, b := candidates[i], candidates[j]
				if a.ParentID != b.ParentID {
					continue
				}

				ra := expandedRect(pos[a.ID], a.Size(), margin)
				rb := expandedRect(pos[b.ID], b.Size(), margin)
				ox, oy := overlap(ra, rb)
				if ox <= 0 || oy <= 0 {
					continue
				}
				collided = true

				// Separating by the smaller penetration depth along the
				// center line clears the expanded rectangles, which leaves
				// the real rectangles MinClearance apart.
				push := math.Min(ox, oy)
				dx, dy := repulsion(ra, rb)

				switch {
				case pinned[a.ID] && pinned[b.ID]:
					// Both under user control; leave them alone.
				case pinned[a.ID]:
					n := nudges[b.ID]
					nudges[b.ID] = nudge{n.dx + dx*push, n.dy + dy*push}
				case pinned[b.ID]:
					n := nudges[a.ID]
					nudges[a.ID] = nudge{n.dx - dx*push, n.dy - dy*push}
				default:
					half := push / 2
					na := nudges[a.ID]
					nudges[a.ID] = nudge{na.dx - dx*half, na.dy - dy*half}
					nb := nudges[b.ID]
					nudges[b.ID] = nudge{nb.dx + dx*half, nb.dy + dy*half}
				}
			}
		}

		if collided {
			result.HadCollisions = true
		} else {
			break
		}

		for id, n := range nudges {
			dx, dy := capNudge(n.dx, n.dy, opts.MaxNudgeDistance)
			if dx == 0 && dy == 0 {
				continue
			}
			p := pos[id]
			p.X += dx
			p.Y += dy
			pos[id] = p
			result.NudgedPositions[id] = p
		}
	}

	result.NudgedCount = len(result.NudgedPositions)
	return result
}

// collisionCandidates filters the node set to in-scope collision candidates.
func collisionCandidates(nodes []diagram.Node, devicesOnly bool) []diagram.Node {
	if !devicesOnly {
		return nodes
	}
	var out []diagram.Node
	for _, n := range nodes {
		if n.IsDevice() {
			out = append(out, n)
		}
	}
	return out
}

// capNudge limits a displacement vector to the given magnitude.
func capNudge(dx, dy, maxDist float64) (float64, float64) {
	length := math.Hypot(dx, dy)
	if length <= maxDist || length == 0 {
		return dx, dy
	}
	scale := maxDist / length
	return dx * scale, dy * scale
}

// =============================================================================
// Live-Drag Variant
// =============================================================================

// AvoidCollisionForDragged computes the separation the dragged node should
// receive from all siblings it currently overlaps, averaged so several
// simultaneous collisions do not compound into runaway displacement. It
// returns nil when there is no collision, or when DevicesOnly excludes the
// dragged node's kind. Callers re-invoke this on every pointer-move tick;
// debouncing is their concern.
func AvoidCollisionForDragged(dragged diagram.Node, others []diagram.Node, opts CollisionOptions) *diagram.Point {
	opts = opts.withDefaults()

	if opts.DevicesOnly && !dragged.IsDevice() {
		return nil
	}

	margin := opts.MinClearance / 2
	rd := expandedRect(dragged.Position, dragged.Size(), margin)

	var sumX, sumY float64
	count := 0
	for _, other := range others {
		if other.ID == dragged.ID || other.ParentID != dragged.ParentID {
			continue
		}
		if opts.DevicesOnly && !other.IsDevice() {
			continue
		}

		ro := expandedRect(other.Position, other.Size(), margin)
		ox, oy := overlap(ro, rd)
		if ox <= 0 || oy <= 0 {
			continue
		}

		push := math.Min(ox, oy)
		dx, dy := repulsion(ro, rd)
		sumX += dx * push
		sumY += dy * push
		count++
	}

	if count == 0 {
		return nil
	}

	dx, dy := capNudge(sumX/float64(count), sumY/float64(count), opts.MaxNudgeDistance)
	return &diagram.Point{
		X: dragged.Position.X + dx,
		Y: dragged.Position.Y + dy,
	}
}
