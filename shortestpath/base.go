package shortestpath

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/pathmap/pathgraph"
	"github.com/katalvlaran/pathmap/pathing"
)

// patchRays are the eight cast directions used when a base sits on
// unpathable cells.
var patchRays = [8]pathing.Cell{
	{X: 1, Y: 0}, {X: 1, Y: -1}, {X: 0, Y: -1}, {X: -1, Y: -1},
	{X: -1, Y: 0}, {X: -1, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 1},
}

// AirDistance is the straight-line distance between two map points,
// independent of any graph.
func AirDistance(p, q pathing.Point) float64 {
	return r2.Norm(r2.Sub(p.Vec(), q.Vec()))
}

// AssignPatches fills b.Patches for every movement type of the engine.
//
// If the base's own cell holds a node, that node is the single patch.
// Otherwise a ray is cast in each of eight directions for up to castCells
// cells and the first node hit on each ray becomes a patch. A movement
// type without any patch yields ErrNoPatch. castCells ≤ 0 selects
// DefaultPatchCastCells.
func (e *Engine) AssignPatches(b *Base, castCells int) error {
	if castCells <= 0 {
		castCells = DefaultPatchCastCells
	}
	start := e.bounds.CellOf(b.Loc)

	for _, t := range e.types {
		g := e.graphs[t]
		b.Patches[t] = b.Patches[t][:0]

		if n, ok := g.At(start); ok {
			b.Patches[t] = append(b.Patches[t], Patch{Node: n, Dist: AirDistance(g.Center(n), b.Loc)})
			continue
		}

		for _, dir := range patchRays {
			c := start
			for step := 0; step < castCells; step++ {
				c = c.Add(dir)
				n, ok := g.At(c)
				if !ok {
					continue
				}
				b.addPatch(t, Patch{Node: n, Dist: AirDistance(g.Center(n), b.Loc)})
				break
			}
		}

		if len(b.Patches[t]) == 0 {
			return fmt.Errorf("%w: base %q, movement type %s", ErrNoPatch, b.Name, t)
		}
	}

	return nil
}

// addPatch appends p unless its node is already patched.
func (b *Base) addPatch(t pathing.MovementType, p Patch) {
	for _, have := range b.Patches[t] {
		if have.Node == p.Node {
			return
		}
	}
	b.Patches[t] = append(b.Patches[t], p)
}

// NodeBaseDistance returns min over b's patches of patch distance plus the
// route from u to the patch node.
func (e *Engine) NodeBaseDistance(u pathgraph.NodeID, b *Base, t pathing.MovementType) float64 {
	best := Infinity
	for _, p := range b.Patches[t] {
		if d := p.Dist + e.Distance(u, p.Node, t); d < best {
			best = d
		}
	}

	return best
}

// PointBaseDistance is NodeBaseDistance from a map point; unpathable points
// give Infinity.
func (e *Engine) PointBaseDistance(p pathing.Point, b *Base, t pathing.MovementType) float64 {
	u, ok := e.PointNode(p, t)
	if !ok {
		return Infinity
	}

	return e.NodeBaseDistance(u, b, t)
}

// BaseDistance minimizes over the cross product of both patch sets.
func (e *Engine) BaseDistance(b1, b2 *Base, t pathing.MovementType) float64 {
	best := Infinity
	for _, p1 := range b1.Patches[t] {
		for _, p2 := range b2.Patches[t] {
			if d := p1.Dist + p2.Dist + e.Distance(p1.Node, p2.Node, t); d < best {
				best = d
			}
		}
	}

	return best
}

// BasePredecessor returns the patch node of b closest to u by route, or
// false if no patch is reachable.
func (e *Engine) BasePredecessor(u pathgraph.NodeID, b *Base, t pathing.MovementType) (pathgraph.NodeID, bool) {
	best, pred := Infinity, pathgraph.NoNode
	for _, p := range b.Patches[t] {
		if d := p.Dist + e.Distance(u, p.Node, t); d < best {
			best, pred = d, p.Node
		}
	}

	return pred, pred != pathgraph.NoNode
}

// BasePredecessors returns the pair of patch nodes, one per base, that
// realizes BaseDistance, or false if the bases are disconnected.
func (e *Engine) BasePredecessors(b1, b2 *Base, t pathing.MovementType) (u, v pathgraph.NodeID, ok bool) {
	best := Infinity
	u, v = pathgraph.NoNode, pathgraph.NoNode
	for _, p1 := range b1.Patches[t] {
		for _, p2 := range b2.Patches[t] {
			if d := p1.Dist + p2.Dist + e.Distance(p1.Node, p2.Node, t); d < best {
				best, u, v = d, p1.Node, p2.Node
			}
		}
	}

	return u, v, u != pathgraph.NoNode
}
