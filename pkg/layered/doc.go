// Package layered provides the Graphviz-backed layered layout engine.
//
// The auto-layout core (pkg/layout) treats layered graph drawing as an
// opaque external primitive behind the [layout.Engine] interface. This
// package supplies the default implementation: it renders the node set as a
// DOT digraph of fixed-size boxes, runs the Graphviz dot algorithm via
// goccy/go-graphviz, and reads the computed positions back out of the
// attributed output.
//
// Coordinates are converted at the boundary: canvas pixels map onto
// Graphviz points, and the y axis is flipped from Graphviz's bottom-left
// origin to the canvas's top-left one. Returned positions are top-left
// corners in an arbitrary frame; the orchestrator translates them into
// container-local coordinates.
package layered
