package diagram

import (
	"path/filepath"
	"testing"
)

func sample() *Diagram {
	return &Diagram{
		ID:   "d-1",
		Name: "office",
		Nodes: []Node{
			{ID: "dmz", Kind: KindBoundary, Label: "DMZ"},
			{ID: "fw", Kind: KindDevice, ParentID: "dmz", Position: Point{X: 40, Y: 40}},
			{ID: "web", Kind: KindDevice, ParentID: "dmz", Position: Point{X: 300, Y: 40}},
			{ID: "router", Kind: KindDevice, Position: Point{X: 10, Y: 10}},
		},
		Edges: []Edge{
			{Source: "router", Target: "fw"},
			{Source: "fw", Target: "web"},
		},
	}
}

func TestChildrenOf(t *testing.T) {
	d := sample()

	tests := []struct {
		name     string
		parentID string
		want     []string
	}{
		{name: "Boundary", parentID: "dmz", want: []string{"fw", "web"}},
		{name: "Root", parentID: "", want: []string{"dmz", "router"}},
		{name: "Unknown", parentID: "nope", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := d.ChildrenOf(tt.parentID)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d children, want %d", len(got), len(tt.want))
			}
			for i, id := range tt.want {
				if got[i].ID != id {
					t.Errorf("child[%d] = %s, want %s", i, got[i].ID, id)
				}
			}
		})
	}
}

func TestBoundaries(t *testing.T) {
	d := sample()
	got := d.Boundaries()
	if len(got) != 1 || got[0].ID != "dmz" {
		t.Errorf("Boundaries = %v, want [dmz]", got)
	}
}

func TestEdgesAmong(t *testing.T) {
	d := sample()

	ids := map[string]struct{}{"fw": {}, "web": {}}
	got := d.EdgesAmong(ids)
	if len(got) != 1 {
		t.Fatalf("got %d edges, want 1", len(got))
	}
	if got[0].Source != "fw" || got[0].Target != "web" {
		t.Errorf("edge = %+v, want fw->web", got[0])
	}
}

func TestApplyPositionsAndSizes(t *testing.T) {
	d := sample()

	d.ApplyPositions(map[string]Point{
		"fw":      {X: 99, Y: 77},
		"deleted": {X: 1, Y: 1}, // stale diff entry, must be ignored
	})
	d.ApplySizes(map[string]Size{"dmz": {Width: 640, Height: 480}})

	fw, _ := d.Node("fw")
	if fw.Position != (Point{X: 99, Y: 77}) {
		t.Errorf("fw position = %+v", fw.Position)
	}
	dmz, _ := d.Node("dmz")
	if dmz.Width != 640 || dmz.Height != 480 {
		t.Errorf("dmz size = %vx%v, want 640x480", dmz.Width, dmz.Height)
	}
	if _, ok := d.Node("deleted"); ok {
		t.Error("stale diff entry materialized a node")
	}
}

func TestCloneIsDeep(t *testing.T) {
	d := sample()
	d.Nodes[1].Meta = map[string]any{"vendor": "acme"}

	c := d.Clone()
	c.Nodes[1].Position.X = 12345
	c.Nodes[1].Meta["vendor"] = "other"
	c.Edges[0].Target = "web"

	if d.Nodes[1].Position.X == 12345 {
		t.Error("clone shares node storage")
	}
	if d.Nodes[1].Meta["vendor"] != "acme" {
		t.Error("clone shares metadata maps")
	}
	if d.Edges[0].Target != "fw" {
		t.Error("clone shares edge storage")
	}
}

func TestNodeSizeDefaults(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want Size
	}{
		{
			name: "UnsizedDevice",
			node: Node{ID: "d", Kind: KindDevice},
			want: Size{Width: DefaultDeviceWidth, Height: DefaultDeviceHeight},
		},
		{
			name: "SizedDevice",
			node: Node{ID: "d", Kind: KindDevice, Width: 55, Height: 66},
			want: Size{Width: 55, Height: 66},
		},
		{
			name: "UnsizedBoundary",
			node: Node{ID: "b", Kind: KindBoundary},
			want: Size{Width: DefaultBoundaryWidth, Height: DefaultBoundaryHeight},
		},
		{
			name: "PartiallySized",
			node: Node{ID: "d", Kind: KindDevice, Width: 90},
			want: Size{Width: 90, Height: DefaultDeviceHeight},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.Size(); got != tt.want {
				t.Errorf("Size() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDisplayLabel(t *testing.T) {
	labeled := Node{ID: "fw-1", Label: "Firewall"}
	if got := labeled.DisplayLabel(); got != "Firewall" {
		t.Errorf("DisplayLabel = %q, want Firewall", got)
	}
	bare := Node{ID: "fw-1"}
	if got := bare.DisplayLabel(); got != "fw-1" {
		t.Errorf("DisplayLabel = %q, want fw-1", got)
	}
}

func TestFileRoundTrip(t *testing.T) {
	d := sample()
	path := filepath.Join(t.TempDir(), "office.json")

	if err := WriteFile(d, path); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	if got.ID != d.ID || got.Name != d.Name {
		t.Errorf("identity changed: %s/%s", got.ID, got.Name)
	}
	if got.NodeCount() != d.NodeCount() || got.EdgeCount() != d.EdgeCount() {
		t.Errorf("counts changed: %d nodes, %d edges", got.NodeCount(), got.EdgeCount())
	}
	fw, ok := got.Node("fw")
	if !ok || fw.ParentID != "dmz" || fw.Position != (Point{X: 40, Y: 40}) {
		t.Errorf("fw did not survive the round trip: %+v", fw)
	}
}

func TestUnmarshalRejectsGarbage(t *testing.T) {
	if _, err := Unmarshal([]byte("{not json")); err == nil {
		t.Error("expected error for malformed JSON")
	}
}
