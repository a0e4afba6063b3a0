// Package pathmap is the pathing core of a grid-map analyzer: per-movement
// graphs, cached shortest paths, openness and main chokes.
//
// What is pathmap?
//
//	A single-threaded library that takes a pathability oracle (one flag per
//	cell and movement type) and answers:
//		• distance and predecessor between nodes, map points and bases
//		• straight-line (air) distance
//		• openness: distance from a cell to the nearest obstacle
//		• the main choke of every start location
//
// Packages:
//
//	pathing/      — oracle interface, dense Grid, text fixtures, coordinates
//	pqueue/       — indexable binary min-heap with decrease-key
//	pathgraph/    — immutable 16-neighbor graph per movement type
//	shortestpath/ — lazily cached single-source Dijkstra, base patches
//	openness/     — layered distance-to-obstacle field
//	choke/        — span sampling and choke agreement
//	config/       — YAML parameters with embedded defaults
//	analysis/     — runs every stage for one map, contains fatal panics
//	cmd/pathmap   — command-line driver over fixture files
//
// Quick ASCII example (two rooms and a doorway):
//
//	#########
//	#S..#...#
//	#.......#   the doorway at (4, 2) is the main choke of both starts
//	#...#..S#
//	#########
//
//	go install github.com/katalvlaran/pathmap/cmd/pathmap@latest
package pathmap
