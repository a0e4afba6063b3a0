// Package analysis runs the full pathing analysis of one map and exposes
// the results read-only.
//
// Stages, in order:
//
//  1. Build one pathing graph per movement type (shortestpath.New).
//  2. Assign patches to every base.
//  3. Compute openness for the configured movement types, then the
//     neighborhood openness of every base.
//  4. Locate the main choke of every start location.
//
// Lower layers raise invariant violations (non-empty priority queue,
// key increase, strict out-of-bounds access) by panic. Analyze recovers
// them and returns an error wrapping both ErrAborted and the original
// sentinel, so a caller can stop this map and carry on with the next.
//
// A Map and its Engine are not safe for concurrent use; distance queries
// after Analyze still fill the engine cache.
package analysis
