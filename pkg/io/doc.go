// Package io reads and writes trees as JSON or TOML documents.
//
// # Overview
//
// Documents are a loading convenience for the birch CLI and for fixtures.
// They describe one tree plus the edges registered on its nodes. The format
// is not a stable interchange contract.
//
// # Document Format
//
//	{
//	  "root": {
//	    "id": "root",
//	    "value": "R",
//	    "features": {"tag": "S"},
//	    "children": [
//	      {"id": "a", "value": "A"},
//	      {"id": "b", "value": "B", "children": [{"id": "c"}]}
//	    ]
//	  },
//	  "edges": [
//	    {"from": "a", "to": "c", "directed": true, "direction": "c", "direction_is_node": true}
//	  ]
//	}
//
// The same structure in TOML uses [root], [[root.children]] and [[edges]].
//
// # Node Fields
//
//   - id: identifier; a random UUID is assigned when omitted
//   - value: arbitrary payload
//   - features: object whose keys become [tree.Symbol] feature keys
//   - children: nested nodes in order
//
// # Edge Fields
//
//   - from, to: endpoint ids, resolved from the root with [tree.Tree.Find]
//     (the root itself matches its own id first; duplicates resolve to the
//     first match)
//   - on: id of the node the edge is registered on (defaults to from)
//   - directed: boolean
//   - direction: optional marker; omitted means [tree.NoDirection]
//   - has_direction: the edge carries a direction even when it is null
//   - direction_is_node: resolve direction as a node id
//
// # Errors
//
// Malformed documents fail with INVALID_FORMAT, unknown edge endpoints and
// invalid ids with INVALID_INPUT, and feature keys that are not
// [tree.Symbol] values fail export with UNSUPPORTED (see package
// github.com/matzehuels/birch/pkg/errors).
package io
