package core

import "fmt"

// Position is a (row, column) location on the board.
type Position struct {
	Row, Col int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Step returns the position n steps away along d.
func (p Position) Step(d Direction, n int) Position {
	return Position{Row: p.Row + d.DR*n, Col: p.Col + d.DC*n}
}

// IsValid checks if the position is within an h x w board
func (p Position) IsValid(h, w int) bool {
	return p.Row >= 0 && p.Row < h && p.Col >= 0 && p.Col < w
}

// Direction is a unit step on the grid.
type Direction struct {
	DR, DC int
}

// The four line orientations a connection can run along.
var (
	Horizontal   = Direction{DR: 0, DC: 1}
	Vertical     = Direction{DR: 1, DC: 0}
	DiagonalDown = Direction{DR: 1, DC: 1}  // "\"
	DiagonalUp   = Direction{DR: -1, DC: 1} // "/"
)

// Axes lists every orientation once.
var Axes = [4]Direction{Vertical, Horizontal, DiagonalDown, DiagonalUp}

func (d Direction) String() string {
	switch d {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case DiagonalDown:
		return "diagonal-down"
	case DiagonalUp:
		return "diagonal-up"
	default:
		return fmt.Sprintf("(%d,%d)", d.DR, d.DC)
	}
}
