package core

// Cell is the content of a single board slot. Player pieces reuse the same
// values so a Cell can be compared directly against the player to move.
type Cell int8

const (
	Empty Cell = iota
	Player1
	Player2
)

// Opponent returns the other player. Empty has no opponent and is returned as is.
func (c Cell) Opponent() Cell {
	switch c {
	case Player1:
		return Player2
	case Player2:
		return Player1
	default:
		return Empty
	}
}

// IsPlayer reports whether c holds a piece.
func (c Cell) IsPlayer() bool { return c == Player1 || c == Player2 }

func (c Cell) String() string {
	switch c {
	case Empty:
		return "empty"
	case Player1:
		return "player 1"
	case Player2:
		return "player 2"
	default:
		return "unknown"
	}
}

// Board is a fixed H x W grid. Row 0 is the top, row H-1 the bottom.
type Board struct {
	W, H int
	T    []Cell // length = W*H (row-major)
}

func NewBoard(w, h int) *Board {
	return &Board{W: w, H: h, T: make([]Cell, w*h)}
}

func (b *Board) Idx(row, col int) int      { return row*b.W + col }
func (b *Board) RowCol(idx int) (int, int) { return idx / b.W, idx % b.W }

// InBounds checks if coordinates are within board boundaries
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.H && col >= 0 && col < b.W
}

// Get returns the cell at (row, col). Out of range reads return Empty.
func (b *Board) Get(row, col int) Cell {
	if !b.InBounds(row, col) {
		return Empty
	}
	return b.T[b.Idx(row, col)]
}

func (b *Board) Set(row, col int, c Cell) {
	b.T[b.Idx(row, col)] = c
}

// Rows copies the grid into a fresh slice of rows, top row first.
func (b *Board) Rows() [][]Cell {
	rows := make([][]Cell, b.H)
	for r := range rows {
		rows[r] = make([]Cell, b.W)
		copy(rows[r], b.T[r*b.W:(r+1)*b.W])
	}
	return rows
}

func (b *Board) Clone() *Board {
	t := make([]Cell, len(b.T))
	copy(t, b.T)
	return &Board{W: b.W, H: b.H, T: t}
}
