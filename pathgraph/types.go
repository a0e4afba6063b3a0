// Package pathgraph defines node identifiers, the 16-slot neighbor pattern
// and the edge weight table shared by shortest paths and openness.
package pathgraph

import (
	"math"

	"github.com/katalvlaran/pathmap/pathing"
)

// NodeID identifies a node inside one movement type's graph. Ids are dense,
// assigned 0..Len()-1 in row-major scan order.
type NodeID int32

// NoNode marks an absent neighbor or predecessor.
const NoNode NodeID = -1

// NumNeighbors is the size of the neighbor pattern.
const NumNeighbors = 16

// Neighbor slots around a node u:
//
//	        15       8
//	         .       .
//	    14 . 7 . 0 . 4 . 9
//	         .   .   .
//	         3 . u . 1
//	         .   .   .
//	    13 . 6 . 2 . 5 . 10
//	         .       .
//	        12       11
//
// Slots 0-3 are cardinal, 4-7 diagonal, 8-15 knight jumps. Longer straight
// lines need no direct link; they are built from these steps.
var Offsets = [NumNeighbors]pathing.Cell{
	{X: 0, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: -1}, {X: -1, Y: 0},
	{X: 1, Y: 1}, {X: 1, Y: -1}, {X: -1, Y: -1}, {X: -1, Y: 1},
	{X: 1, Y: 2}, {X: 2, Y: 1}, {X: 2, Y: -1}, {X: 1, Y: -2},
	{X: -1, Y: -2}, {X: -2, Y: -1}, {X: -2, Y: 1}, {X: -1, Y: 2},
}

// Weights holds the edge length of each slot: 1 cardinal, √2 diagonal,
// √5 knight.
var Weights = [NumNeighbors]float64{
	1, 1, 1, 1,
	math.Sqrt2, math.Sqrt2, math.Sqrt2, math.Sqrt2,
	sqrt5, sqrt5, sqrt5, sqrt5,
	sqrt5, sqrt5, sqrt5, sqrt5,
}

const sqrt5 = 2.23606797749979

// forwardSlots are the slots a node writes itself; the neighbor receives
// the opposite slot.
var forwardSlots = [...]int{0, 1, 4, 5, 8, 9, 10, 11}

// knightVia lists, per knight slot, the two intermediate cells that must
// both hold nodes for the jump to exist.
var knightVia = [NumNeighbors][2]pathing.Cell{
	8:  {{X: 0, Y: 1}, {X: 1, Y: 1}},
	9:  {{X: 1, Y: 0}, {X: 1, Y: 1}},
	10: {{X: 1, Y: 0}, {X: 1, Y: -1}},
	11: {{X: 0, Y: -1}, {X: 1, Y: -1}},
}

// IsCardinal reports whether slot is one of the four unit steps.
func IsCardinal(slot int) bool { return slot >= 0 && slot < 4 }

// IsDiagonal reports whether slot is one of the four diagonal steps.
func IsDiagonal(slot int) bool { return slot >= 4 && slot < 8 }

// IsKnight reports whether slot is one of the eight knight jumps.
func IsKnight(slot int) bool { return slot >= 8 && slot < NumNeighbors }

// Opposite returns the slot pointing back along slot's edge.
// Cardinal and diagonal slots pair up two apart within their group of four;
// knight slots pair up four apart within their group of eight.
func Opposite(slot int) int {
	switch {
	case slot < 8:
		return slot&^3 | (slot+2)&3
	default:
		return 8 + (slot-8+4)&7
	}
}

// Node is one pathable cell under one movement type.
type Node struct {
	ID        NodeID
	Cell      pathing.Cell
	Neighbors [NumNeighbors]NodeID
}

// Graph is the immutable pathing graph of one movement type.
// Nodes live in a dense arena addressed by NodeID; byCell maps each playable
// cell to its node or NoNode.
type Graph struct {
	mt     pathing.MovementType
	bounds pathing.Bounds
	nodes  []Node
	byCell []NodeID
	edges  int
}
