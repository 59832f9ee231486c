package core

// NoMove marks the absence of a column, e.g. a search leaf.
const NoMove = -1

// Move records a single applied drop.
type Move struct {
	Player Cell
	Row    int
	Col    int
}

// Position returns where the piece landed.
func (m Move) Position() Position {
	return Position{Row: m.Row, Col: m.Col}
}
