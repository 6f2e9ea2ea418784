package diagram

// =============================================================================
// Constants - Single Source of Truth
// =============================================================================

// Node kinds.
const (
	KindDevice   = "device"
	KindBoundary = "boundary"
)

// Default device dimensions in canvas pixels. Devices that were created
// without an explicit size occupy this rectangle for all geometry purposes.
const (
	DefaultDeviceWidth  = 140.0
	DefaultDeviceHeight = 110.0
)

// Default boundary dimensions. These match the sizing floors used by the
// layout engine, so a freshly created boundary never has zero extent.
const (
	DefaultBoundaryWidth  = 300.0
	DefaultBoundaryHeight = 200.0
)

// =============================================================================
// Point - Canvas Coordinates
// =============================================================================

// Point is a position on the canvas. For nodes it is the top-left corner,
// expressed in the local coordinate space of the containing boundary
// (or the root canvas when the node has no parent).
type Point struct {
	X float64 `json:"x" bson:"x"`
	Y float64 `json:"y" bson:"y"`
}

// Size is a width/height pair in canvas pixels.
type Size struct {
	Width  float64 `json:"width" bson:"width"`
	Height float64 `json:"height" bson:"height"`
}

// =============================================================================
// Node - Unified Node Type
// =============================================================================

// Node is the unified element type for all serialization contexts: devices
// and the security boundaries that contain them.
//
// ParentID expresses containment only. It is a lookup key into the same node
// set, never an ownership relation - node lifetime belongs to the diagram
// store, and a node with ParentID set is positioned relative to that
// container's local origin.
type Node struct {
	ID       string         `json:"id" bson:"id"`
	Kind     string         `json:"kind" bson:"kind"`
	Label    string         `json:"label,omitempty" bson:"label,omitempty"` // Display label (defaults to ID)
	Position Point          `json:"position" bson:"position"`
	Width    float64        `json:"width,omitempty" bson:"width,omitempty"`   // 0 = use kind default
	Height   float64        `json:"height,omitempty" bson:"height,omitempty"` // 0 = use kind default
	ParentID string         `json:"parent_id,omitempty" bson:"parent_id,omitempty"`
	Meta     map[string]any `json:"meta,omitempty" bson:"meta,omitempty"`
}

// IsDevice returns true if this node is a device.
func (n *Node) IsDevice() bool { return n.Kind == KindDevice }

// IsBoundary returns true if this node is a boundary container.
func (n *Node) IsBoundary() bool { return n.Kind == KindBoundary }

// DisplayLabel returns the label if set, otherwise the ID.
func (n *Node) DisplayLabel() string {
	if n.Label != "" {
		return n.Label
	}
	return n.ID
}

// Size returns the node's effective size, falling back to the kind-specific
// default for any dimension that was never set. Boundaries keep their
// last-known size; the defaults only cover nodes that were never sized.
func (n *Node) Size() Size {
	s := Size{Width: n.Width, Height: n.Height}
	if n.IsBoundary() {
		if s.Width <= 0 {
			s.Width = DefaultBoundaryWidth
		}
		if s.Height <= 0 {
			s.Height = DefaultBoundaryHeight
		}
		return s
	}
	if s.Width <= 0 {
		s.Width = DefaultDeviceWidth
	}
	if s.Height <= 0 {
		s.Height = DefaultDeviceHeight
	}
	return s
}

// =============================================================================
// Edge - Connection Between Elements
// =============================================================================

// Edge represents a connection between two elements, referenced by ID.
// Edges are directed for layered layout and treated as undirected for
// density analysis. Containment is never expressed as an edge.
type Edge struct {
	Source string `json:"source" bson:"source"`
	Target string `json:"target" bson:"target"`
}
