// Package shortestpath provides distance and route queries between nodes,
// map points and bases under any movement type, backed by a lazily filled
// per-source Dijkstra cache.
//
// What:
//
//   - Distance / Predecessor / Path between nodes of one movement type.
//   - PointDistance: endpoints resolved from map coordinates.
//   - NodeBaseDistance, PointBaseDistance, BaseDistance: endpoints resolved
//     through a base's patch set (bases may sit on unpathable cells).
//   - AirDistance: Euclidean distance, graph independent.
//   - AssignPatches: builds a base's patch set by ray casting.
//
// Failure classes:
//
//   - Expected "no result": unpathable query point, disconnected nodes.
//     Reported as Infinity (see EffectivelyInfinite) or a false ok flag.
//   - Invariant violations: ErrQueueNotEmpty, ErrReentrant, ErrUnknownType,
//     plus the pqueue sentinels. Raised by panic with a wrapped sentinel.
//   - ErrNoPatch: returned when a base has no pathable cell nearby.
//
// Example:
//
//	e := shortestpath.New(grid)
//	d := e.PointDistance(a, b, pathing.GroundWithObstacles)
//	if shortestpath.EffectivelyInfinite(d) {
//	    // no ground route
//	}
package shortestpath
