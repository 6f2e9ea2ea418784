package diagram_test

import (
	"fmt"

	"github.com/netcanvas/netcanvas/pkg/diagram"
)

func ExampleDiagram_ChildrenOf() {
	d := &diagram.Diagram{
		Nodes: []diagram.Node{
			{ID: "dmz", Kind: diagram.KindBoundary},
			{ID: "fw", Kind: diagram.KindDevice, ParentID: "dmz"},
			{ID: "web", Kind: diagram.KindDevice, ParentID: "dmz"},
			{ID: "laptop", Kind: diagram.KindDevice},
		},
	}

	for _, child := range d.ChildrenOf("dmz") {
		fmt.Println(child.ID)
	}
	// Output:
	// fw
	// web
}

func ExampleDiagram_ApplyPositions() {
	d := &diagram.Diagram{
		Nodes: []diagram.Node{
			{ID: "fw", Kind: diagram.KindDevice},
		},
	}

	d.ApplyPositions(map[string]diagram.Point{
		"fw": {X: 120, Y: 40},
	})

	n, _ := d.Node("fw")
	fmt.Printf("%.0f,%.0f\n", n.Position.X, n.Position.Y)
	// Output:
	// 120,40
}
