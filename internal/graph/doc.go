// Package graph implements the module dependency graph (spec C8 / §4.5): a
// directed graph over module handles with deduplicated nodes and
// deduplicated outgoing edges, used to compute a dependency-order
// traversal of parsed modules.
//
// # Shape
//
// Graph is generic over any comparable handle type so callers can key it
// by whatever identifies a module to them — a file path, a logical import
// name, or a source.FileID. AddNode and AddEdge are both idempotent
// (spec §4.5): calling either twice with the same arguments is a no-op
// the second time.
//
// # Ordering
//
// OrderedElements performs depth-first resolution tracking "resolved" and
// "in-progress" node sets, exactly as spec §4.5 describes. On success it
// returns a list ordered so that every dependency appears before its
// dependent (the "leaves first" order a linker or later compiler phase
// needs). On revisiting an in-progress node it instead returns a Cycle
// naming the two participating handles and stops.
//
// # Consumers
//
//   - cmd/choir builds a Graph[string] from each parsed module's import
//     declarations (see BuildFromModules) to decide a processing order
//     before any later phase that needs one module's exports visible to
//     another.
package graph
