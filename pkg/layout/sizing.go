package layout

import "github.com/netcanvas/netcanvas/pkg/diagram"

// =============================================================================
// Boundary Sizing
// =============================================================================

// Default sizing parameters for boundary containers.
const (
	DefaultPadding   = 40.0
	DefaultMinWidth  = 300.0
	DefaultMinHeight = 200.0
)

// Aspect-ratio preference bands (width/height). Vertical flows prefer
// containers taller than wide; horizontal flows prefer the opposite.
const (
	verticalRatioMin   = 0.6
	verticalRatioMax   = 0.9
	horizontalRatioMin = 1.2
	horizontalRatioMax = 1.8
)

// SizeOptions configures boundary sizing.
type SizeOptions struct {
	// Padding is the clearance kept between the container border and the
	// nearest child on every side.
	Padding float64

	// MinWidth and MinHeight are the dimension floors. A boundary never
	// shrinks below them, children or not. There is no upper bound: large
	// diagrams grow the container arbitrarily.
	MinWidth  float64
	MinHeight float64

	// AdjustAspectRatio pulls the result toward the direction-specific
	// preferred aspect band by growing one dimension. The padded content
	// size is never shrunk.
	AdjustAspectRatio bool
}

// withDefaults fills zero-valued options with the package defaults.
func (o SizeOptions) withDefaults() SizeOptions {
	if o.Padding <= 0 {
		o.Padding = DefaultPadding
	}
	if o.MinWidth <= 0 {
		o.MinWidth = DefaultMinWidth
	}
	if o.MinHeight <= 0 {
		o.MinHeight = DefaultMinHeight
	}
	return o
}

// OptimalSize is the result of a boundary sizing pass.
type OptimalSize struct {
	Width       float64 `json:"width" bson:"width"`
	Height      float64 `json:"height" bson:"height"`
	AspectRatio float64 `json:"aspect_ratio" bson:"aspect_ratio"`
	Children    Bounds  `json:"children_bounds" bson:"children_bounds"`

	// UsedMinimum reports that at least one dimension was clamped to its
	// configured floor rather than derived from the padded content size.
	UsedMinimum bool `json:"used_minimum" bson:"used_minimum"`
}

// OptimalBoundarySize computes the smallest enclosing size for a boundary
// holding the given direct children, honoring padding, the dimension floors,
// and - when requested - the direction's preferred aspect band.
//
// An empty child set yields exactly the configured minimum dimensions with
// UsedMinimum set.
func OptimalBoundarySize(children []diagram.Node, dir Direction, opts SizeOptions) OptimalSize {
	opts = opts.withDefaults()

	bounds, ok := ChildrenBounds(children)
	if !ok {
		return OptimalSize{
			Width:       opts.MinWidth,
			Height:      opts.MinHeight,
			AspectRatio: opts.MinWidth / opts.MinHeight,
			UsedMinimum: true,
		}
	}

	width := bounds.Width() + 2*opts.Padding
	height := bounds.Height() + 2*opts.Padding

	usedMinimum := false
	if width < opts.MinWidth {
		width = opts.MinWidth
		usedMinimum = true
	}
	if height < opts.MinHeight {
		height = opts.MinHeight
		usedMinimum = true
	}

	if opts.AdjustAspectRatio {
		width, height = adjustAspect(width, height, dir)
	}

	return OptimalSize{
		Width:       width,
		Height:      height,
		AspectRatio: width / height,
		Children:    bounds,
		UsedMinimum: usedMinimum,
	}
}

// adjustAspect pulls width/height toward the direction's preferred band.
// Out-of-band ratios are corrected by growing a single dimension: the ratio
// can only be lowered by growing height and raised by growing width, so the
// padded content size is never violated. In-band ratios are left untouched.
func adjustAspect(width, height float64, dir Direction) (float64, float64) {
	lo, hi := horizontalRatioMin, horizontalRatioMax
	if dir.IsVertical() {
		lo, hi = verticalRatioMin, verticalRatioMax
	}

	ratio := width / height
	switch {
	case ratio > hi:
		height = width / hi
	case ratio < lo:
		width = height * lo
	}
	return width, height
}
