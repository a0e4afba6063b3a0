// Package pathing is the read-only boundary between map decoding and the
// pathing core: it names the seven movement types, the cell and map
// coordinate frames, and the Oracle that answers "is this cell pathable for
// this movement type".
//
// What:
//
//   - MovementType: closed enumeration; each value defines its own graph.
//   - Cell / Point / Bounds: playable cell frame, map frame, and conversions.
//   - Oracle: strict and out-of-bounds-tolerant pathability accessors.
//   - Grid: dense in-memory Oracle with the editors map decoders use.
//   - ParseGrid: plain-text fixtures for tests and the pathmap driver.
//
// Coordinate frames:
//
//	map frame     float, origin at the map's bottom-left corner
//	cell frame    int, (0,0) is the bottom-left playable cell
//	CellCenter(c) = (Left + c.X + 0.5, Bottom + c.Y + 0.5)
//
// Errors:
//
//   - ErrEmptyGrid, ErrNonRectangular, ErrUnknownGlyph: fixture and grid construction.
//   - ErrOutOfBounds: raised by panic from the strict Pathing accessor.
//   - ErrUnknownMovementType: ParseMovementType on an unknown name.
package pathing
