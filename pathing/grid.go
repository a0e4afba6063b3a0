package pathing

import "fmt"

// Grid is a dense in-memory Oracle. Every playable cell stores one flag per
// movement type. A new Grid starts fully unpathable.
//
// Grid is not safe for concurrent mutation; analysis treats it as read-only
// once built.
type Grid struct {
	bounds  Bounds
	pathing []bool // NumMovementTypes flags per cell, row-major
	counts  [NumMovementTypes]int
	dirty   bool
}

// NewGrid allocates an unpathable Grid covering b.
// Returns ErrEmptyGrid if b has no rows or no columns.
// Complexity: O(W×H) time and memory.
func NewGrid(b Bounds) (*Grid, error) {
	if b.Width <= 0 || b.Height <= 0 {
		return nil, ErrEmptyGrid
	}

	return &Grid{
		bounds:  b,
		pathing: make([]bool, b.Size()*int(NumMovementTypes)),
	}, nil
}

// Bounds returns the playable area.
func (g *Grid) Bounds() Bounds {
	return g.bounds
}

// IsPlayable reports whether c lies inside the playable area.
func (g *Grid) IsPlayable(c Cell) bool {
	return g.bounds.Contains(c)
}

// Pathing reports whether c is pathable for t.
// It panics with ErrOutOfBounds when c is not playable.
func (g *Grid) Pathing(c Cell, t MovementType) bool {
	if !g.bounds.Contains(c) {
		panic(fmt.Errorf("%w: (%d, %d)", ErrOutOfBounds, c.X, c.Y))
	}

	return g.pathing[g.slot(c, t)]
}

// PathingOutOfBoundsOK is Pathing that returns false for unplayable cells.
func (g *Grid) PathingOutOfBoundsOK(c Cell, t MovementType) bool {
	if !g.bounds.Contains(c) {
		return false
	}

	return g.pathing[g.slot(c, t)]
}

// PathableCount returns the number of pathable cells for t.
func (g *Grid) PathableCount(t MovementType) int {
	if g.dirty {
		g.recount()
	}

	return g.counts[t]
}

// SetPathing sets the flag of c for t. Unplayable cells are ignored.
func (g *Grid) SetPathing(c Cell, t MovementType, p bool) {
	if !g.bounds.Contains(c) || !t.Valid() {
		return
	}
	g.pathing[g.slot(c, t)] = p
	g.dirty = true
}

// SetPathingAll sets the flag of c for every movement type.
func (g *Grid) SetPathingAll(c Cell, p bool) {
	for t := MovementType(0); t < NumMovementTypes; t++ {
		g.SetPathing(c, t, p)
	}
}

// SetPathingGround sets every non-cliff-walking movement type.
func (g *Grid) SetPathingGround(c Cell, p bool) {
	g.SetPathing(c, GroundClear, p)
	g.SetPathing(c, GroundWithObstacles, p)
	g.SetPathing(c, GroundWithObstaclesNoResources, p)
	g.SetPathing(c, Buildable, p)
	g.SetPathing(c, BuildableMain, p)
}

// SetPathingCliff sets both cliff-walking movement types.
func (g *Grid) SetPathingCliff(c Cell, p bool) {
	g.SetPathing(c, CliffWalkClear, p)
	g.SetPathing(c, CliffWalkWithObstacles, p)
}

// SetPathingBuildable sets both buildable movement types.
func (g *Grid) SetPathingBuildable(c Cell, p bool) {
	g.SetPathing(c, Buildable, p)
	g.SetPathing(c, BuildableMain, p)
}

// slot maps (c, t) into the flat flag slice.
func (g *Grid) slot(c Cell, t MovementType) int {
	return int(NumMovementTypes)*g.bounds.Index(c) + int(t)
}

func (g *Grid) recount() {
	g.counts = [NumMovementTypes]int{}
	for i, p := range g.pathing {
		if p {
			g.counts[i%int(NumMovementTypes)]++
		}
	}
	g.dirty = false
}
