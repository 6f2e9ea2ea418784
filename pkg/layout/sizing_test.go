package layout

import (
	"testing"

	"github.com/netcanvas/netcanvas/pkg/diagram"
)

func device(id string, x, y, w, h float64) diagram.Node {
	return diagram.Node{
		ID:       id,
		Kind:     diagram.KindDevice,
		Position: diagram.Point{X: x, Y: y},
		Width:    w,
		Height:   h,
	}
}

func TestChildrenBounds(t *testing.T) {
	tests := []struct {
		name     string
		children []diagram.Node
		want     Bounds
		wantOK   bool
	}{
		{
			name:   "Empty",
			wantOK: false,
		},
		{
			name:     "Single",
			children: []diagram.Node{device("a", 10, 20, 100, 50)},
			want:     Bounds{MinX: 10, MinY: 20, MaxX: 110, MaxY: 70},
			wantOK:   true,
		},
		{
			name: "Two",
			children: []diagram.Node{
				device("a", 0, 0, 100, 50),
				device("b", 200, 100, 100, 50),
			},
			want:   Bounds{MinX: 0, MinY: 0, MaxX: 300, MaxY: 150},
			wantOK: true,
		},
		{
			name: "NegativePositions",
			children: []diagram.Node{
				device("a", -50, -30, 100, 50),
				device("b", 10, 10, 20, 20),
			},
			want:   Bounds{MinX: -50, MinY: -30, MaxX: 50, MaxY: 30},
			wantOK: true,
		},
		{
			// Unsized devices fall back to the 140x110 default rectangle.
			name:     "DefaultDeviceSize",
			children: []diagram.Node{device("a", 0, 0, 0, 0)},
			want:     Bounds{MinX: 0, MinY: 0, MaxX: 140, MaxY: 110},
			wantOK:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ChildrenBounds(tt.children)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("bounds = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestChildrenOffset(t *testing.T) {
	b := Bounds{MinX: -30, MinY: 120, MaxX: 200, MaxY: 400}
	dx, dy := ChildrenOffset(b, 40)
	if dx != 70 || dy != -80 {
		t.Errorf("offset = (%v, %v), want (70, -80)", dx, dy)
	}

	// Applying the offset puts the min corner exactly at (padding, padding).
	if b.MinX+dx != 40 || b.MinY+dy != 40 {
		t.Errorf("translated min = (%v, %v), want (40, 40)", b.MinX+dx, b.MinY+dy)
	}
}

func TestOptimalBoundarySize(t *testing.T) {
	tests := []struct {
		name       string
		children   []diagram.Node
		dir        Direction
		opts       SizeOptions
		wantW      float64
		wantH      float64
		wantUsed   bool
		wantRatio  float64
		checkRatio bool
	}{
		{
			name:     "EmptyUsesMinimums",
			children: nil,
			dir:      DirectionTB,
			wantW:    300,
			wantH:    200,
			wantUsed: true,
		},
		{
			name:     "EmptyCustomMinimums",
			children: nil,
			dir:      DirectionTB,
			opts:     SizeOptions{MinWidth: 500, MinHeight: 400},
			wantW:    500,
			wantH:    400,
			wantUsed: true,
		},
		{
			name:     "ContentPlusPadding",
			children: []diagram.Node{device("a", 0, 0, 250, 150)},
			dir:      DirectionTB,
			opts:     SizeOptions{Padding: 50},
			wantW:    350,
			wantH:    250,
			wantUsed: false,
		},
		{
			name:     "SmallContentClampsToFloor",
			children: []diagram.Node{device("a", 0, 0, 50, 40)},
			dir:      DirectionTB,
			wantW:    300,
			wantH:    200,
			wantUsed: true,
		},
		{
			// One dimension clamped, the other derived.
			name:     "PartialClamp",
			children: []diagram.Node{device("a", 0, 0, 400, 40)},
			dir:      DirectionTB,
			wantW:    480,
			wantH:    200,
			wantUsed: true,
		},
		{
			// 480x200 has ratio 2.4; the TB band tops out at 0.9, so height
			// grows to 480/0.9 and width stays put.
			name:       "AspectVerticalGrowsHeight",
			children:   []diagram.Node{device("a", 0, 0, 400, 40)},
			dir:        DirectionTB,
			opts:       SizeOptions{AdjustAspectRatio: true},
			wantW:      480,
			wantH:      480 / 0.9,
			wantUsed:   true,
			wantRatio:  0.9,
			checkRatio: true,
		},
		{
			// 300x420 has ratio ~0.71; the LR band starts at 1.2, so width
			// grows to 420*1.2.
			name:       "AspectHorizontalGrowsWidth",
			children:   []diagram.Node{device("a", 0, 0, 180, 340)},
			dir:        DirectionLR,
			opts:       SizeOptions{AdjustAspectRatio: true},
			wantW:      504,
			wantH:      420,
			wantUsed:   true,
			wantRatio:  1.2,
			checkRatio: true,
		},
		{
			// Ratio already inside the band: untouched.
			name:     "AspectInBandUntouched",
			children: []diagram.Node{device("a", 0, 0, 240, 340)},
			dir:      DirectionTB,
			opts:     SizeOptions{AdjustAspectRatio: true},
			wantW:    320,
			wantH:    420,
			wantUsed: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OptimalBoundarySize(tt.children, tt.dir, tt.opts)
			if got.Width != tt.wantW {
				t.Errorf("Width = %v, want %v", got.Width, tt.wantW)
			}
			if got.Height != tt.wantH {
				t.Errorf("Height = %v, want %v", got.Height, tt.wantH)
			}
			if got.UsedMinimum != tt.wantUsed {
				t.Errorf("UsedMinimum = %v, want %v", got.UsedMinimum, tt.wantUsed)
			}
			if tt.checkRatio && !nearlyEqual(got.AspectRatio, tt.wantRatio) {
				t.Errorf("AspectRatio = %v, want %v", got.AspectRatio, tt.wantRatio)
			}
		})
	}
}

// Sizing must be idempotent: feeding the same children back in yields the
// same container size.
func TestOptimalBoundarySizeIdempotent(t *testing.T) {
	children := []diagram.Node{
		device("a", 40, 40, 200, 100),
		device("b", 300, 200, 150, 80),
	}
	opts := SizeOptions{AdjustAspectRatio: true}

	first := OptimalBoundarySize(children, DirectionTB, opts)
	second := OptimalBoundarySize(children, DirectionTB, opts)
	if first != second {
		t.Errorf("not idempotent: %+v vs %+v", first, second)
	}
}

// Growing the padding can never shrink the container.
func TestOptimalBoundarySizePaddingMonotonic(t *testing.T) {
	children := []diagram.Node{
		device("a", 0, 0, 400, 300),
		device("b", 500, 400, 200, 100),
	}

	prev := OptimalBoundarySize(children, DirectionTB, SizeOptions{Padding: 10})
	for _, padding := range []float64{20, 40, 80, 160} {
		cur := OptimalBoundarySize(children, DirectionTB, SizeOptions{Padding: padding})
		if cur.Width < prev.Width || cur.Height < prev.Height {
			t.Errorf("padding %v shrank container: %+v -> %+v", padding, prev, cur)
		}
		prev = cur
	}
}

func nearlyEqual(a, b float64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff < 1e-9
}
