// Package openness computes, per pathable cell, the graph distance to the
// nearest unpathable cell or map edge.
//
// What
//
//   - Seed pass: every node missing at least one cardinal neighbor gets 1.
//   - Layered passes: a node not yet set takes the minimum, over neighbors
//     already set before the pass, of the neighbor's value plus the edge
//     weight (the same 1 / √2 / √5 table as shortest paths).
//   - Stops once every node is set; Max, Average and Passes are kept for
//     reporting.
//   - NeighborhoodAverage samples a disk around a cell, counting unset and
//     unpathable cells as 0.
//
// Why
//
//   - Openness is a cheap proxy for how much room an army has around a
//     location; bases and chokes are scored with it.
//
// Termination
//
//	The topmost node of any connected component has no northern neighbor,
//	so every component seeds and the loop ends after at most
//	(longest layer chain) passes. A pass that sets nothing means the graph
//	and the pathable count disagree; Compute returns ErrStalled instead of
//	spinning.
//
// Complexity (V = nodes, P = passes)
//
//   - Time:   O(P × 16V)
//   - Memory: O(V + W×H)
package openness
