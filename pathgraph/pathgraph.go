// Package pathgraph turns a pathability oracle into one node-and-edge graph
// per movement type.
//
// Edge policy per slot class:
//
//   - cardinal: linked iff the neighbor cell has a node.
//   - diagonal: linked iff the neighbor cell has a node. No adjacent cardinal
//     cell is required; true per-pixel diagonal visibility is unavailable
//     from cell data and some real paths only connect through a diagonal.
//   - knight:   linked iff the neighbor has a node and both intermediate
//     cardinal cells hold nodes, so no jump cuts a blocked corner.
//
// Every undirected edge is written once: u fills its forward slot and v the
// Opposite slot.
//
// Complexity: Build is O(W×H) time and memory.
package pathgraph

import (
	"github.com/katalvlaran/pathmap/pathing"
)

// Build constructs the graph of movement type t from o. Cells are scanned
// row-major (y outer, x inner) and probed with PathingOutOfBoundsOK, so
// the builder never trips the strict accessor at the map edge.
func Build(o pathing.Oracle, t pathing.MovementType) *Graph {
	b := o.Bounds()
	g := &Graph{
		mt:     t,
		bounds: b,
		nodes:  make([]Node, 0, o.PathableCount(t)),
		byCell: make([]NodeID, b.Size()),
	}

	// 1) one node per pathable cell
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			c := pathing.Cell{X: x, Y: y}
			idx := b.Index(c)
			if !o.PathingOutOfBoundsOK(c, t) {
				g.byCell[idx] = NoNode
				continue
			}
			n := Node{ID: NodeID(len(g.nodes)), Cell: c}
			for i := range n.Neighbors {
				n.Neighbors[i] = NoNode
			}
			g.byCell[idx] = n.ID
			g.nodes = append(g.nodes, n)
		}
	}

	// 2) link the forward half of the pattern; the other half is written
	//    by the neighbor's perspective through Opposite.
	for i := range g.nodes {
		u := &g.nodes[i]
		for _, slot := range forwardSlots {
			vid, ok := g.At(u.Cell.Add(Offsets[slot]))
			if !ok {
				continue
			}
			if IsKnight(slot) && !g.knightClear(u.Cell, slot) {
				continue
			}
			u.Neighbors[slot] = vid
			g.nodes[vid].Neighbors[Opposite(slot)] = u.ID
			g.edges++
		}
	}

	return g
}

// knightClear reports whether both cells between c and its knight
// neighbor in slot hold nodes.
func (g *Graph) knightClear(c pathing.Cell, slot int) bool {
	for _, via := range knightVia[slot] {
		if _, ok := g.At(c.Add(via)); !ok {
			return false
		}
	}

	return true
}

// Type returns the movement type the graph was built for.
func (g *Graph) Type() pathing.MovementType {
	return g.mt
}

// Bounds returns the playable area the graph covers.
func (g *Graph) Bounds() pathing.Bounds {
	return g.bounds
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int {
	return g.edges
}

// Node returns the node with the given id. The pointer refers into the
// arena and must not be modified.
func (g *Graph) Node(id NodeID) *Node {
	return &g.nodes[id]
}

// At returns the node occupying c. Unplayable or unpathable cells report
// false; callers probe past the map edge routinely.
func (g *Graph) At(c pathing.Cell) (NodeID, bool) {
	if !g.bounds.Contains(c) {
		return NoNode, false
	}
	id := g.byCell[g.bounds.Index(c)]

	return id, id != NoNode
}

// AtPoint resolves a map-frame point to the node of its cell.
func (g *Graph) AtPoint(p pathing.Point) (NodeID, bool) {
	return g.At(g.bounds.CellOf(p))
}

// Center returns the map-frame center of node id's cell.
func (g *Graph) Center(id NodeID) pathing.Point {
	return g.bounds.CellCenter(g.nodes[id].Cell)
}

// Neighbors calls fn for every linked slot of id with the neighbor and the
// edge weight.
func (g *Graph) Neighbors(id NodeID, fn func(slot int, v NodeID, w float64)) {
	n := &g.nodes[id]
	for slot, v := range n.Neighbors {
		if v == NoNode {
			continue
		}
		fn(slot, v, Weights[slot])
	}
}
