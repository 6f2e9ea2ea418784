// Package pipeline provides the cached layout pipeline for NetCanvas.
//
// This package wraps the pure layout core (pkg/layout) with option
// validation and result caching so the CLI and the API server share one
// code path. Layout is a deterministic function of (diagram, options), which
// makes its results ideal cache entries: the diagram content hash plus the
// layout options form the key.
//
// # Usage
//
// Create a Runner and apply layout:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Boundary:  "dmz",
//	    Direction: "TB",
//	    Tier:      "comfortable",
//	}
//	res, err := runner.Apply(ctx, d, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	d.ApplyPositions(res.Positions)
//	d.ApplySizes(res.Sizes)
package pipeline

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/netcanvas/netcanvas/pkg/cache"
	"github.com/netcanvas/netcanvas/pkg/layout"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultDirection is the default flow direction.
	DefaultDirection = string(layout.DirectionTB)

	// DefaultTier is the default spacing tier.
	DefaultTier = string(layout.TierComfortable)
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for a layout pass.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Boundary is the ID of the container to lay out. Empty targets the
	// root canvas.
	Boundary string `json:"boundary,omitempty"`

	// Direction is the flow direction: TB, BT, LR, RL, or a dagre-*
	// alignment identifier. Unknown values fall back to TB.
	Direction string `json:"direction,omitempty"`

	// Tier is the spacing tier: compact, comfortable, or spacious.
	// Unknown values fall back to comfortable.
	Tier string `json:"tier,omitempty"`

	// BaseUnit overrides the spacing base unit; 0 keeps the default.
	BaseUnit float64 `json:"base_unit,omitempty"`

	// Padding overrides the boundary padding; 0 keeps the default.
	Padding float64 `json:"padding,omitempty"`

	// AdjustAspectRatio pulls the resized boundary toward the direction's
	// preferred aspect band.
	AdjustAspectRatio bool `json:"adjust_aspect_ratio,omitempty"`

	// SkipCollisions disables the collision cleanup pass
	// (default: false = collisions are resolved).
	SkipCollisions bool `json:"skip_collisions,omitempty"`

	// DevicesOnly restricts collision checks to device pairs.
	DevicesOnly bool `json:"devices_only,omitempty"`

	// DraggedNodeIDs pins nodes under active user control.
	DraggedNodeIDs []string `json:"dragged_node_ids,omitempty"`

	// Refresh bypasses the cache and recomputes.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger   `json:"-"`
	Engine layout.Engine `json:"-"`
}

// SetDefaults normalizes empty fields to the pipeline defaults.
// This method is idempotent.
func (o *Options) SetDefaults() {
	if o.Direction == "" {
		o.Direction = DefaultDirection
	}
	if o.Tier == "" {
		o.Tier = DefaultTier
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// LayoutOptions lowers pipeline options into core layout options.
func (o *Options) LayoutOptions() layout.Options {
	return layout.Options{
		Direction: layout.ParseDirection(o.Direction),
		Tier:      layout.ParseTier(o.Tier),
		BaseUnit:  o.BaseUnit,
		Sizing: layout.SizeOptions{
			Padding:           o.Padding,
			AdjustAspectRatio: o.AdjustAspectRatio,
		},
		AvoidCollisions: !o.SkipCollisions,
		Collision: layout.CollisionOptions{
			DraggedNodeIDs: o.DraggedNodeIDs,
			DevicesOnly:    o.DevicesOnly,
		},
	}
}

// LayoutKeyOpts returns cache key options for this layout pass.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		Boundary:          o.Boundary,
		Direction:         string(layout.ParseDirection(o.Direction)),
		Tier:              string(layout.ParseTier(o.Tier)),
		BaseUnit:          o.BaseUnit,
		Padding:           o.Padding,
		AdjustAspectRatio: o.AdjustAspectRatio,
		AvoidCollisions:   !o.SkipCollisions,
		DevicesOnly:       o.DevicesOnly,
	}
}

// Cacheable reports whether this pass may be served from cache. Passes with
// pinned nodes depend on transient interaction state and are never cached.
func (o *Options) Cacheable() bool {
	return len(o.DraggedNodeIDs) == 0
}
