// Package pathing defines core types, sentinel errors and the pathability
// oracle contract shared by every other pathmap package.
package pathing

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Sentinel errors for pathing operations.
var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("pathing: grid must have at least one row and one column")
	// ErrNonRectangular indicates fixture rows of differing lengths.
	ErrNonRectangular = errors.New("pathing: all rows must have the same length")
	// ErrUnknownGlyph indicates a fixture character outside the legend.
	ErrUnknownGlyph = errors.New("pathing: unknown fixture glyph")
	// ErrOutOfBounds is raised (via panic) by strict accessors on unplayable cells.
	ErrOutOfBounds = errors.New("pathing: access to unplayable cell")
	// ErrUnknownMovementType indicates an unparsable movement type name.
	ErrUnknownMovementType = errors.New("pathing: unknown movement type")
)

// MovementType selects one of the independent movement-permission rules.
// Each movement type owns its own pathing graph over the same grid.
type MovementType int

const (
	// GroundClear is ground movement with destructible obstacles cleared.
	GroundClear MovementType = iota
	// GroundWithObstacles is ground movement blocked by destructible obstacles.
	GroundWithObstacles
	// CliffWalkClear is cliff-walking movement with obstacles cleared.
	CliffWalkClear
	// CliffWalkWithObstacles is cliff-walking movement blocked by obstacles.
	CliffWalkWithObstacles
	// GroundWithObstaclesNoResources is GroundWithObstacles where resource
	// fields do not block.
	GroundWithObstaclesNoResources
	// Buildable marks cells where structures may be placed.
	Buildable
	// BuildableMain is Buildable restricted to the main base area.
	BuildableMain

	// NumMovementTypes is the number of movement types.
	NumMovementTypes
)

var movementTypeNames = [NumMovementTypes]string{
	"ground-clear",
	"ground-with-obstacles",
	"cliff-walk-clear",
	"cliff-walk-with-obstacles",
	"ground-with-obstacles-no-resources",
	"buildable",
	"buildable-main",
}

// String returns the stable configuration name of t.
func (t MovementType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("movement-type(%d)", int(t))
	}

	return movementTypeNames[t]
}

// Valid reports whether t is one of the seven movement types.
func (t MovementType) Valid() bool {
	return t >= 0 && t < NumMovementTypes
}

// ParseMovementType resolves a configuration name into a MovementType.
func ParseMovementType(name string) (MovementType, error) {
	for i, n := range movementTypeNames {
		if n == name {
			return MovementType(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownMovementType, name)
}

// AllMovementTypes lists every movement type in declaration order.
func AllMovementTypes() []MovementType {
	out := make([]MovementType, NumMovementTypes)
	for i := range out {
		out[i] = MovementType(i)
	}

	return out
}

// Cell is an integer coordinate in the playable cell frame.
// (0,0) is the bottom-left playable cell.
type Cell struct {
	X, Y int
}

// Add returns the cell offset by d.
func (c Cell) Add(d Cell) Cell {
	return Cell{X: c.X + d.X, Y: c.Y + d.Y}
}

// Point is a coordinate in the map frame. Cell centers end in .5.
type Point struct {
	X, Y float64
}

// Vec returns p as a gonum planar vector.
func (p Point) Vec() r2.Vec {
	return r2.Vec{X: p.X, Y: p.Y}
}

// PointOf converts a gonum planar vector back to a Point.
func PointOf(v r2.Vec) Point {
	return Point{X: v.X, Y: v.Y}
}

// Bounds describes the playable area: its bottom-left corner in the map cell
// frame and its size in cells.
type Bounds struct {
	Left, Bottom  int
	Width, Height int
}

// Size returns the number of playable cells.
func (b Bounds) Size() int {
	return b.Width * b.Height
}

// Contains reports whether c lies inside the playable area.
// Complexity: O(1).
func (b Bounds) Contains(c Cell) bool {
	return c.X >= 0 && c.X < b.Width && c.Y >= 0 && c.Y < b.Height
}

// Index maps c to a row-major index: Y*Width + X.
// The caller must ensure Contains(c).
func (b Bounds) Index(c Cell) int {
	return c.Y*b.Width + c.X
}

// Coordinate converts a row-major index back to a Cell.
func (b Bounds) Coordinate(idx int) Cell {
	return Cell{X: idx % b.Width, Y: idx / b.Width}
}

// CellCenter returns the map-frame center of c.
func (b Bounds) CellCenter(c Cell) Point {
	return Point{
		X: float64(b.Left+c.X) + 0.5,
		Y: float64(b.Bottom+c.Y) + 0.5,
	}
}

// CellOf returns the cell containing p. The result may lie outside the
// playable area; check with Contains.
func (b Bounds) CellOf(p Point) Cell {
	return Cell{
		X: int(math.Floor(p.X)) - b.Left,
		Y: int(math.Floor(p.Y)) - b.Bottom,
	}
}

// Oracle answers per-cell, per-movement-type pathability.
// Implementations are read-only for the lifetime of one map analysis.
type Oracle interface {
	// Bounds returns the playable area.
	Bounds() Bounds
	// IsPlayable reports whether c lies inside the playable area.
	IsPlayable(c Cell) bool
	// Pathing is the strict accessor; it panics with ErrOutOfBounds
	// when c is not playable.
	Pathing(c Cell, t MovementType) bool
	// PathingOutOfBoundsOK returns false for unplayable cells instead of panicking.
	PathingOutOfBoundsOK(c Cell, t MovementType) bool
	// PathableCount returns the number of pathable cells for t.
	PathableCount(t MovementType) int
}
