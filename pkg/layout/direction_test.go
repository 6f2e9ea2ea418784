package layout

import "testing"

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in   string
		want Direction
	}{
		{"TB", DirectionTB},
		{"BT", DirectionBT},
		{"LR", DirectionLR},
		{"RL", DirectionRL},
		{"dagre-tb", DirectionTB},
		{"dagre-bt", DirectionBT},
		{"dagre-lr", DirectionLR},
		{"dagre-rl", DirectionRL},
		{"", DirectionTB},
		{"tb", DirectionTB},
		{"diagonal", DirectionTB},
	}

	for _, tt := range tests {
		if got := ParseDirection(tt.in); got != tt.want {
			t.Errorf("ParseDirection(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestIsVertical(t *testing.T) {
	vertical := map[Direction]bool{
		DirectionTB: true,
		DirectionBT: true,
		DirectionLR: false,
		DirectionRL: false,
	}
	for dir, want := range vertical {
		if got := dir.IsVertical(); got != want {
			t.Errorf("%v.IsVertical() = %v, want %v", dir, got, want)
		}
	}
}
