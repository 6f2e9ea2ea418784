package layout

import "github.com/netcanvas/netcanvas/pkg/diagram"

// Bounds is the axis-aligned bounding box of a node set, derived from the
// current positions and effective sizes. It is recomputed on every sizing
// and collision pass and never cached across calls.
type Bounds struct {
	MinX float64 `json:"min_x" bson:"min_x"`
	MinY float64 `json:"min_y" bson:"min_y"`
	MaxX float64 `json:"max_x" bson:"max_x"`
	MaxY float64 `json:"max_y" bson:"max_y"`
}

// Width returns the content width of the bounds.
func (b Bounds) Width() float64 { return b.MaxX - b.MinX }

// Height returns the content height of the bounds.
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// ChildrenBounds computes the bounding box over the occupied rectangles of
// the given nodes, [position, position+size] each. Negative or far-off
// positions are accepted as-is; the math is translation-invariant. The
// second return is false when the node set is empty and no bounds exist.
func ChildrenBounds(children []diagram.Node) (Bounds, bool) {
	if len(children) == 0 {
		return Bounds{}, false
	}

	b := Bounds{
		MinX: children[0].Position.X,
		MinY: children[0].Position.Y,
		MaxX: children[0].Position.X,
		MaxY: children[0].Position.Y,
	}
	for _, n := range children {
		s := n.Size()
		if n.Position.X < b.MinX {
			b.MinX = n.Position.X
		}
		if n.Position.Y < b.MinY {
			b.MinY = n.Position.Y
		}
		if x := n.Position.X + s.Width; x > b.MaxX {
			b.MaxX = x
		}
		if y := n.Position.Y + s.Height; y > b.MaxY {
			b.MaxY = y
		}
	}
	return b, true
}

// ChildrenOffset returns the translation that places the nearest child
// exactly padding pixels from its container's top-left corner. Applying it
// to every child keeps coordinates container-relative regardless of where
// the layered layout pass happened to place them.
func ChildrenOffset(b Bounds, padding float64) (dx, dy float64) {
	return padding - b.MinX, padding - b.MinY
}
