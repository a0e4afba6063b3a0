package pathing

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Fixture is a Grid decoded from the plain-text fixture format together with
// the start locations and base positions marked in it.
type Fixture struct {
	Grid   *Grid
	Starts []Point
	Bases  []Point
}

// ParseGrid decodes a plain-text fixture. Each non-blank line is one row of
// cells; the first line is the top row (highest Y). Legend:
//
//	.  open for every movement type
//	#  blocked for every movement type
//	r  destructible obstacle, blocked for the with-obstacles types
//	m  resource, blocked for every type except GroundWithObstaclesNoResources
//	c  cliff, pathable only for the cliff-walking types
//	n  open but not buildable
//	N  open but not buildable in the main
//	S  start location on an open cell
//	B  base on an open cell
//	b  base on a destructible obstacle
//
// Returns ErrEmptyGrid, ErrNonRectangular or a wrapped ErrUnknownGlyph.
// Complexity: O(W×H).
func ParseGrid(r io.Reader) (*Fixture, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), " \t\r")
		if line == "" {
			continue
		}
		rows = append(rows, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("pathing: read fixture: %w", err)
	}

	return FromRows(rows)
}

// FromRows decodes fixture rows already split into lines. See ParseGrid.
func FromRows(rows []string) (*Fixture, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	g, err := NewGrid(Bounds{Width: w, Height: len(rows)})
	if err != nil {
		return nil, err
	}
	fx := &Fixture{Grid: g}

	h := len(rows)
	for line, row := range rows {
		y := h - 1 - line
		for x, glyph := range row {
			c := Cell{X: x, Y: y}
			if err = fx.apply(c, glyph); err != nil {
				return nil, fmt.Errorf("%w: %q at line %d column %d", err, glyph, line+1, x+1)
			}
		}
	}

	return fx, nil
}

// apply paints a single glyph into the grid.
func (fx *Fixture) apply(c Cell, glyph rune) error {
	g := fx.Grid
	switch glyph {
	case '.':
		g.SetPathingAll(c, true)
	case '#':
		g.SetPathingAll(c, false)
	case 'r', 'b':
		g.SetPathingAll(c, true)
		g.SetPathing(c, GroundWithObstacles, false)
		g.SetPathing(c, CliffWalkWithObstacles, false)
		g.SetPathing(c, GroundWithObstaclesNoResources, false)
		if glyph == 'b' {
			fx.Bases = append(fx.Bases, g.bounds.CellCenter(c))
		}
	case 'm':
		g.SetPathingAll(c, false)
		g.SetPathing(c, GroundWithObstaclesNoResources, true)
	case 'c':
		g.SetPathingAll(c, false)
		g.SetPathingCliff(c, true)
	case 'n':
		g.SetPathingAll(c, true)
		g.SetPathingBuildable(c, false)
	case 'N':
		g.SetPathingAll(c, true)
		g.SetPathing(c, BuildableMain, false)
	case 'S':
		g.SetPathingAll(c, true)
		fx.Starts = append(fx.Starts, g.bounds.CellCenter(c))
	case 'B':
		g.SetPathingAll(c, true)
		fx.Bases = append(fx.Bases, g.bounds.CellCenter(c))
	default:
		return ErrUnknownGlyph
	}

	return nil
}
