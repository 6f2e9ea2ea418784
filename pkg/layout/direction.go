package layout

// Direction is the flow direction for layered layout.
type Direction string

// Layout directions, matching the rankdir values of Sugiyama-style engines.
const (
	DirectionTB Direction = "TB" // top to bottom
	DirectionBT Direction = "BT" // bottom to top
	DirectionLR Direction = "LR" // left to right
	DirectionRL Direction = "RL" // right to left
)

// DefaultDirection is used when a direction string cannot be parsed.
const DefaultDirection = DirectionTB

// directionAliases maps device-alignment identifiers used by the canvas UI
// onto layout directions.
var directionAliases = map[string]Direction{
	"TB":       DirectionTB,
	"BT":       DirectionBT,
	"LR":       DirectionLR,
	"RL":       DirectionRL,
	"dagre-tb": DirectionTB,
	"dagre-bt": DirectionBT,
	"dagre-lr": DirectionLR,
	"dagre-rl": DirectionRL,
}

// ParseDirection maps a direction string to a Direction. Both the plain
// rankdir form ("TB") and the alignment-identifier form ("dagre-tb") are
// accepted. Unknown values fall back to [DefaultDirection] rather than
// failing - the engine never rejects input over a bad direction string.
func ParseDirection(s string) Direction {
	if d, ok := directionAliases[s]; ok {
		return d
	}
	return DefaultDirection
}

// IsVertical returns true for the top-bottom directions (TB, BT).
func (d Direction) IsVertical() bool {
	return d == DirectionTB || d == DirectionBT
}
