package errors

import (
	"testing"

	"github.com/netcanvas/netcanvas/pkg/diagram"
)

func TestValidateDiagram(t *testing.T) {
	tests := []struct {
		name     string
		diagram  *diagram.Diagram
		wantCode Code
	}{
		{
			name:     "Nil",
			diagram:  nil,
			wantCode: ErrCodeInvalidDiagram,
		},
		{
			name:    "Empty",
			diagram: &diagram.Diagram{},
		},
		{
			name: "Valid",
			diagram: &diagram.Diagram{
				Nodes: []diagram.Node{
					{ID: "dmz", Kind: diagram.KindBoundary},
					{ID: "fw", Kind: diagram.KindDevice, ParentID: "dmz"},
					{ID: "web", Kind: diagram.KindDevice, ParentID: "dmz"},
				},
				Edges: []diagram.Edge{{Source: "fw", Target: "web"}},
			},
		},
		{
			name: "DuplicateID",
			diagram: &diagram.Diagram{
				Nodes: []diagram.Node{
					{ID: "fw", Kind: diagram.KindDevice},
					{ID: "fw", Kind: diagram.KindDevice},
				},
			},
			wantCode: ErrCodeInvalidDiagram,
		},
		{
			name: "UnknownKind",
			diagram: &diagram.Diagram{
				Nodes: []diagram.Node{{ID: "x", Kind: "cloud"}},
			},
			wantCode: ErrCodeInvalidNode,
		},
		{
			name: "EdgeToNowhere",
			diagram: &diagram.Diagram{
				Nodes: []diagram.Node{{ID: "fw", Kind: diagram.KindDevice}},
				Edges: []diagram.Edge{{Source: "fw", Target: "ghost"}},
			},
			wantCode: ErrCodeInvalidDiagram,
		},
		{
			name: "MissingParent",
			diagram: &diagram.Diagram{
				Nodes: []diagram.Node{
					{ID: "fw", Kind: diagram.KindDevice, ParentID: "ghost"},
				},
			},
			wantCode: ErrCodeInvalidDiagram,
		},
		{
			name: "DeviceParent",
			diagram: &diagram.Diagram{
				Nodes: []diagram.Node{
					{ID: "fw", Kind: diagram.KindDevice},
					{ID: "web", Kind: diagram.KindDevice, ParentID: "fw"},
				},
			},
			wantCode: ErrCodeInvalidDiagram,
		},
		{
			name: "NestedBoundariesOK",
			diagram: &diagram.Diagram{
				Nodes: []diagram.Node{
					{ID: "campus", Kind: diagram.KindBoundary},
					{ID: "dmz", Kind: diagram.KindBoundary, ParentID: "campus"},
					{ID: "fw", Kind: diagram.KindDevice, ParentID: "dmz"},
				},
			},
		},
		{
			name: "ContainmentCycle",
			diagram: &diagram.Diagram{
				Nodes: []diagram.Node{
					{ID: "a", Kind: diagram.KindBoundary, ParentID: "b"},
					{ID: "b", Kind: diagram.KindBoundary, ParentID: "a"},
				},
			},
			wantCode: ErrCodeInvalidDiagram,
		},
		{
			name: "SelfContainment",
			diagram: &diagram.Diagram{
				Nodes: []diagram.Node{
					{ID: "a", Kind: diagram.KindBoundary, ParentID: "a"},
				},
			},
			wantCode: ErrCodeInvalidDiagram,
		},
		{
			// Geometric degeneracy is accepted; the layout core is total
			// over it.
			name: "NegativePositionsOK",
			diagram: &diagram.Diagram{
				Nodes: []diagram.Node{
					{ID: "fw", Kind: diagram.KindDevice, Position: diagram.Point{X: -5000, Y: -5000}},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDiagram(tt.diagram)
			if tt.wantCode == "" {
				if err != nil {
					t.Errorf("ValidateDiagram = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("ValidateDiagram = nil, want error")
			}
			if got := GetCode(err); got != tt.wantCode {
				t.Errorf("code = %q, want %q", got, tt.wantCode)
			}
		})
	}
}
