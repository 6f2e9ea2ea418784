// Package cache provides caching for computed layouts and stored diagrams.
//
// Layout passes are deterministic functions of (diagram, options), so their
// results cache well: the CLI caches to disk under the XDG cache directory,
// and the server caches to Redis. Both sit behind the [Cache] interface;
// [Keyer] centralizes key construction so every component derives identical
// keys for identical work.
package cache

import (
	"context"
	"fmt"
	"time"
)

// =============================================================================
// TTLs - Single Source of Truth
// =============================================================================

// Cache TTLs per entry type.
const (
	// TTLLayout applies to computed layout results. Layouts are pure
	// derivations; the TTL only bounds storage, not correctness.
	TTLLayout = 7 * 24 * time.Hour

	// TTLDiagram applies to diagram snapshots cached in front of the store.
	TTLDiagram = time.Hour
)

// =============================================================================
// Cache Interface
// =============================================================================

// Cache is a byte-oriented key-value cache with TTL support.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL. A TTL of 0 means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// =============================================================================
// Keyer - Cache Key Construction
// =============================================================================

// LayoutKeyOpts are the layout parameters that distinguish cached results.
// Two layout passes with equal diagram hashes and equal options are
// interchangeable.
type LayoutKeyOpts struct {
	Boundary          string  `json:"boundary"`
	Direction         string  `json:"direction"`
	Tier              string  `json:"tier"`
	BaseUnit          float64 `json:"base_unit"`
	Padding           float64 `json:"padding"`
	AdjustAspectRatio bool    `json:"adjust_aspect_ratio"`
	AvoidCollisions   bool    `json:"avoid_collisions"`
	DevicesOnly       bool    `json:"devices_only"`
}

// Keyer generates cache keys for the different entry types.
type Keyer interface {
	// LayoutKey generates a key for a computed layout, from the content
	// hash of the diagram and the layout options.
	LayoutKey(diagramHash string, opts LayoutKeyOpts) string

	// DiagramKey generates a key for a cached diagram snapshot.
	DiagramKey(id string) string
}

// DefaultKeyer is the standard Keyer implementation.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// LayoutKey generates a key for a computed layout.
func (k *DefaultKeyer) LayoutKey(diagramHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", diagramHash, opts)
}

// DiagramKey generates a key for a cached diagram snapshot.
func (k *DefaultKeyer) DiagramKey(id string) string {
	return fmt.Sprintf("diagram:%s", id)
}
