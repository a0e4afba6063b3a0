// Package pathgraph builds the immutable 16-neighbor pathing graph of one
// movement type from a pathing.Oracle.
//
// What:
//
//   - Node arena: dense NodeID in row-major order, O(1) id→node and cell→id.
//   - Neighbor pattern: 4 cardinal, 4 diagonal and 8 knight slots with the
//     fixed Weights table (1, √2, √5) shared with openness.
//   - Build: one pass to allocate nodes, one pass to link edges.
//
// Why:
//
//   - Sixteen directions approximate straight-line movement well while
//     keeping Dijkstra cheap; longer lines are composed from these steps.
//   - Integer ids instead of pointers keep the graph trivially shareable and
//     let per-query scratch live in flat slices.
//
// The graph never changes after Build. Per-query state (heap slot,
// tentative key, computed flag) lives in the shortestpath engine.
package pathgraph
