package layout_test

import (
	"fmt"

	"github.com/netcanvas/netcanvas/pkg/diagram"
	"github.com/netcanvas/netcanvas/pkg/layout"
)

func ExampleOptimalSpacing() {
	// A four-device chain: density 0.5, squarely in the neutral band.
	nodes := []diagram.Node{
		{ID: "a", Kind: diagram.KindDevice},
		{ID: "b", Kind: diagram.KindDevice},
		{ID: "c", Kind: diagram.KindDevice},
		{ID: "d", Kind: diagram.KindDevice},
	}
	edges := []diagram.Edge{
		{Source: "a", Target: "b"},
		{Source: "b", Target: "c"},
		{Source: "c", Target: "d"},
	}

	s := layout.OptimalSpacing(nodes, edges, layout.TierComfortable, 0)
	fmt.Println("nodesep:", s.NodeSep)
	fmt.Println("ranksep:", s.RankSep)
	fmt.Println("edgesep:", s.EdgeSep)
	// Output:
	// nodesep: 99
	// ranksep: 133
	// edgesep: 23
}

func ExampleOptimalBoundarySize() {
	children := []diagram.Node{
		{ID: "fw", Kind: diagram.KindDevice, Width: 250, Height: 150},
	}

	size := layout.OptimalBoundarySize(children, layout.DirectionTB, layout.SizeOptions{
		Padding: 50,
	})
	fmt.Printf("%.0fx%.0f\n", size.Width, size.Height)
	fmt.Println("clamped to floor:", size.UsedMinimum)
	// Output:
	// 350x250
	// clamped to floor: false
}
