// Package diagram provides serialization types for network diagrams.
//
// This package defines the canonical wire format for NetCanvas diagram data,
// used for JSON files, API requests and responses, caching, and storage.
//
// # Core Types
//
//   - [Diagram]: Node-link format for a full diagram
//   - [Node]: A positioned element - a device or a security boundary
//   - [Edge]: A connection between two elements
//   - [Point], [Size]: Canvas geometry primitives
//
// # Containment
//
// Boundaries contain other nodes through the ParentID field. Containment is
// a relation, not ownership: ParentID is a lookup key into the same node
// slice, and a contained node's Position is expressed in its container's
// local coordinate space. Containment is never expressed as an [Edge].
//
// # Serialization
//
// Diagrams use a simple node-link JSON format:
//
//	{
//	  "nodes": [
//	    {"id": "dmz", "kind": "boundary", "position": {"x": 0, "y": 0}},
//	    {"id": "web-1", "kind": "device", "parent_id": "dmz", "position": {"x": 40, "y": 40}}
//	  ],
//	  "edges": [{"source": "web-1", "target": "db-1"}]
//	}
//
// Common operations:
//
//	d, _ := diagram.ReadFile("network.json")
//	diagram.WriteFile(d, "network.layout.json")
//	data, _ := diagram.Marshal(d)
//	parsed, _ := diagram.Unmarshal(data)
//
// All types carry BSON tags alongside JSON for document-store persistence.
package diagram
