// Package pkg provides the core libraries for NetCanvas network-diagram layout.
//
// # Overview
//
// NetCanvas computes positions and sizes for network diagrams: devices,
// boundary containers, and the connections between them. The pkg directory
// is organized into three main areas:
//
//  1. [diagram], [errors] - The domain model and its validation rules
//  2. [layout], [layered] - Layout algorithms (spacing, sizing, collisions,
//     layered placement)
//  3. [pipeline], [cache], [store], [config] - Orchestration and infrastructure
//
// # Architecture
//
// The typical data flow through NetCanvas:
//
//	Diagram (nodes + edges + containment)
//	         ↓
//	    [layout] spacing from edge density and tier
//	         ↓
//	    [layered] Sugiyama placement via Graphviz dot
//	         ↓
//	    [layout] boundary sizing + collision avoidance
//	         ↓
//	    position/size diff, merged back into the diagram
//
// # Quick Start
//
// Lay out a diagram and apply the result:
//
//	import (
//	    "context"
//	    "github.com/netcanvas/netcanvas/pkg/diagram"
//	    "github.com/netcanvas/netcanvas/pkg/pipeline"
//	)
//
//	d, _ := diagram.ReadFile("office.json")
//	runner := pipeline.NewRunner(nil, nil, nil)
//	res, _ := runner.Apply(context.Background(), d, pipeline.Options{
//	    Direction: "TB",
//	    Tier:      "comfortable",
//	})
//	d.ApplyPositions(res.Positions)
//	d.ApplySizes(res.Sizes)
//
// # Main Packages
//
// ## Domain Model
//
// [diagram] - Nodes (devices and boundaries), edges, containment, and the
// JSON file format. Positions are top-left corners in pixels.
//
// [errors] - Coded errors and diagram validation: ID rules, containment
// cycles, edge endpoint checks.
//
// ## Layout Algorithms
//
// [layout] - Density-adjusted spacing, boundary container sizing with aspect
// bands, and the iterative collision-avoidance pass. [layout.Apply] runs the
// full sequence for a canvas or a single boundary.
//
// [layered] - The layered placement engine. Builds a DOT document, renders it
// with Graphviz dot, and parses node positions back out.
//
// ## Orchestration and Infrastructure
//
// [pipeline] - The runner that validates, checks the cache, invokes the
// engine, and shapes results. The HTTP server and the CLI both sit on top of
// it.
//
// [cache] - Layout result caching: file-backed for the CLI, Redis for the
// server, with content-addressed keys.
//
// [store] - Diagram persistence: in-memory for tests and single-process use,
// MongoDB for the server.
//
// [config] - TOML server configuration with validation.
package pkg
