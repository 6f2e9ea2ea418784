package layered

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/netcanvas/netcanvas/pkg/diagram"
	"github.com/netcanvas/netcanvas/pkg/layout"
)

// Graphviz is a [layout.Engine] backed by the Graphviz dot algorithm, the
// canonical Sugiyama-style layered layout. Each Layout call is independent;
// the zero value is ready to use and safe for concurrent callers.
type Graphviz struct{}

// NewGraphviz creates a Graphviz-backed layered layout engine.
func NewGraphviz() *Graphviz {
	return &Graphviz{}
}

// Layout runs the dot algorithm over the node set and returns top-left
// positions keyed by node ID. Nodes are laid out as fixed-size boxes
// matching their canvas rectangles, so rank and sibling separation follow
// the provided spacing exactly. An empty node set returns an empty map
// without invoking Graphviz.
func (g *Graphviz) Layout(ctx context.Context, nodes []diagram.Node, edges []diagram.Edge, spacing layout.Spacing, dir layout.Direction) (map[string]diagram.Point, error) {
	if len(nodes) == 0 {
		return map[string]diagram.Point{}, nil
	}

	dot := buildDOT(nodes, edges, spacing, dir)

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	parsed, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer parsed.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, parsed, graphviz.XDOT, &buf); err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}

	return parsePositions(buf.Bytes(), nodes)
}

// Ensure Graphviz implements layout.Engine.
var _ layout.Engine = (*Graphviz)(nil)
