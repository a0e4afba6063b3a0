// Package choke locates the main choke of every start location: the
// narrowest point on the routes out of the main toward the other starts.
//
// What
//
//   - SpanDistance: how far a straight walk from a cell stays on pathable
//     cells in one of eight unit directions.
//   - ChokeDistance: the smallest sum of two opposite spans over the four
//     axes (horizontal, vertical, both diagonals).
//   - Candidate: walks the shortest route from one start toward another,
//     over the first half of its length, and keeps the local minimum of the
//     choke distance once it drops below the detection threshold.
//   - Locate / LocateAll: candidates toward every other start must agree
//     within the agreement tolerance; the choke is their average.
//
// Failure handling
//
//	A start on an unpathable cell is an error (ErrStartUnpathable). Pairs
//	without a route are skipped. Disagreeing candidates, a pair whose walk
//	never trips the threshold, or no candidate at all are logged as
//	warnings and reported as NotFound; analysis goes on.
//
// Complexity
//
//	One Dijkstra run per start (cached by the engine) plus O(L × S) span
//	steps per pair, L the walked route length and S the span length.
package choke
