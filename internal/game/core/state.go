package core

import "fmt"

const (
	// MinDim is the smallest allowed height or width.
	MinDim = 6
	// WinLength is the number of aligned pieces that decides a game.
	WinLength = 4
)

// Status is the terminal status of a game.
type Status int

const (
	InProgress Status = iota
	Tied
	Player1Wins
	Player2Wins
)

func (s Status) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Tied:
		return "tied"
	case Player1Wins:
		return "player 1 wins"
	case Player2Wins:
		return "player 2 wins"
	default:
		return fmt.Sprintf("Unknown(%d)", int(s))
	}
}

// IsTerminal returns true once the game accepts no further moves.
func (s Status) IsTerminal() bool { return s != InProgress }

// Winner returns the winning player, or Empty for a tie or running game.
func (s Status) Winner() Cell {
	switch s {
	case Player1Wins:
		return Player1
	case Player2Wins:
		return Player2
	default:
		return Empty
	}
}

// WinStatus maps a player to its winning status.
func WinStatus(p Cell) Status {
	if p == Player2 {
		return Player2Wins
	}
	return Player1Wins
}

// GameState owns a single game: the grid, per-column fill counts, move
// history, the player to move and the terminal status.
//
// Invariants: fillCount[c] equals the number of Empty cells in column c and
// movesLeft equals the sum of fillCount.
type GameState struct {
	board     *Board
	fillCount []int
	movesLeft int
	current   Cell
	status    Status
	history   []Move
}

// NewGameState creates an empty height x width game with Player1 to move.
func NewGameState(height, width int) (*GameState, error) {
	if height < MinDim || width < MinDim {
		return nil, fmt.Errorf("%dx%d: both dimensions must be at least %d: %w",
			height, width, MinDim, ErrInvalidDimensions)
	}

	fill := make([]int, width)
	for c := range fill {
		fill[c] = height
	}

	return &GameState{
		board:     NewBoard(width, height),
		fillCount: fill,
		movesLeft: height * width,
		current:   Player1,
		status:    InProgress,
		history:   make([]Move, 0, height*width),
	}, nil
}

// Public accessors
func (gs *GameState) Height() int            { return gs.board.H }
func (gs *GameState) Width() int             { return gs.board.W }
func (gs *GameState) CurrentPlayer() Cell    { return gs.current }
func (gs *GameState) Status() Status         { return gs.status }
func (gs *GameState) MovesLeft() int         { return gs.movesLeft }
func (gs *GameState) Cell(row, col int) Cell { return gs.board.Get(row, col) }

// FillCount returns the number of empty slots left in col, or 0 for a column
// outside the board.
func (gs *GameState) FillCount(col int) int {
	if col < 0 || col >= len(gs.fillCount) {
		return 0
	}
	return gs.fillCount[col]
}

// History returns the columns played so far, oldest first.
func (gs *GameState) History() []int {
	cols := make([]int, len(gs.history))
	for i, m := range gs.history {
		cols[i] = m.Col
	}
	return cols
}

// LastMove returns the most recent move, if any.
func (gs *GameState) LastMove() (Move, bool) {
	if len(gs.history) == 0 {
		return Move{}, false
	}
	return gs.history[len(gs.history)-1], true
}

// Snapshot returns a deep copy of the grid for rendering, top row first.
func (gs *GameState) Snapshot() [][]Cell {
	return gs.board.Rows()
}

// Clone returns an independent copy that can be mutated without affecting gs.
func (gs *GameState) Clone() *GameState {
	fill := make([]int, len(gs.fillCount))
	copy(fill, gs.fillCount)
	history := make([]Move, len(gs.history), cap(gs.history))
	copy(history, gs.history)

	return &GameState{
		board:     gs.board.Clone(),
		fillCount: fill,
		movesLeft: gs.movesLeft,
		current:   gs.current,
		status:    gs.status,
		history:   history,
	}
}
