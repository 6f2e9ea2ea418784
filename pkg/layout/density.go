package layout

import (
	"math"

	"github.com/netcanvas/netcanvas/pkg/diagram"
)

// =============================================================================
// Edge Density
// =============================================================================

// Density adjustment policy. Dense graphs get tighter spacing so they stay
// readable at a given zoom; sparse graphs get extra room for edge routing.
const (
	densityHigh = 0.5 // exclusive upper band threshold
	densityLow  = 0.2 // exclusive lower band threshold

	factorDense  = 0.8
	factorSparse = 1.15
	factorNormal = 1.0
)

// EdgeDensity returns the normalized edge density of a graph: the edge count
// divided by the maximum possible number of undirected edges between distinct
// nodes. With one node or fewer there are no possible edges and the density
// is exactly 0. Parallel edges can push the result above 1, which is valid
// for multigraphs, not an error.
func EdgeDensity(nodeCount, edgeCount int) float64 {
	if nodeCount <= 1 {
		return 0
	}
	maxPossible := float64(nodeCount) * float64(nodeCount-1) / 2
	return float64(edgeCount) / maxPossible
}

// DensityFactor maps a density to a spacing multiplier using a three-bucket
// step function. The band boundaries 0.2 and 0.5 belong to the middle bucket.
func DensityFactor(density float64) float64 {
	switch {
	case density > densityHigh:
		return factorDense
	case density < densityLow:
		return factorSparse
	default:
		return factorNormal
	}
}

// =============================================================================
// Spacing Tiers
// =============================================================================

// Tier selects how generous layout separation should be.
type Tier string

// Spacing tiers, from tightest to loosest.
const (
	TierCompact     Tier = "compact"
	TierComfortable Tier = "comfortable"
	TierSpacious    Tier = "spacious"
)

// DefaultTier is used when a tier string cannot be parsed.
const DefaultTier = TierComfortable

// DefaultBaseUnit is the base spacing unit in canvas pixels that tier
// multipliers scale.
const DefaultBaseUnit = 38.0

// tierMultiplier holds the per-axis spacing multipliers of one tier.
type tierMultiplier struct {
	nodeSep float64
	rankSep float64
	edgeSep float64
}

// tierMultipliers is the fixed tier table. Multipliers strictly increase
// compact → comfortable → spacious on every axis.
var tierMultipliers = map[Tier]tierMultiplier{
	TierCompact:     {nodeSep: 2.0, rankSep: 2.5, edgeSep: 0.4},
	TierComfortable: {nodeSep: 2.6, rankSep: 3.5, edgeSep: 0.6},
	TierSpacious:    {nodeSep: 3.5, rankSep: 5.0, edgeSep: 0.8},
}

// ParseTier maps a tier string to a Tier, falling back to [DefaultTier] for
// unknown values.
func ParseTier(s string) Tier {
	t := Tier(s)
	if _, ok := tierMultipliers[t]; ok {
		return t
	}
	return DefaultTier
}

// =============================================================================
// Spacing Calculation
// =============================================================================

// Spacing holds concrete separation parameters for a layered layout pass,
// in canvas pixels. NodeSep separates siblings within a rank, RankSep
// separates ranks, EdgeSep separates parallel edge routes.
type Spacing struct {
	NodeSep int `json:"nodesep" bson:"nodesep"`
	RankSep int `json:"ranksep" bson:"ranksep"`
	EdgeSep int `json:"edgesep" bson:"edgesep"`
}

// OptimalSpacing derives separation parameters for the given node and edge
// set: each output is round(baseUnit x tier multiplier x density factor).
// A baseUnit of 0 or less selects [DefaultBaseUnit]; unknown tiers fall back
// to [DefaultTier]. Outputs are always whole pixels.
func OptimalSpacing(nodes []diagram.Node, edges []diagram.Edge, tier Tier, baseUnit float64) Spacing {
	if baseUnit <= 0 {
		baseUnit = DefaultBaseUnit
	}
	mult, ok := tierMultipliers[tier]
	if !ok {
		mult = tierMultipliers[DefaultTier]
	}

	factor := DensityFactor(EdgeDensity(len(nodes), len(edges)))
	unit := baseUnit * factor

	return Spacing{
		NodeSep: int(math.Round(unit * mult.nodeSep)),
		RankSep: int(math.Round(unit * mult.rankSep)),
		EdgeSep: int(math.Round(unit * mult.edgeSep)),
	}
}
