package core

// LegalMoves returns every column that still has room, in ascending order.
// Each call returns a fresh slice.
func (gs *GameState) LegalMoves() []int {
	moves := make([]int, 0, len(gs.fillCount))
	for col, free := range gs.fillCount {
		if free > 0 {
			moves = append(moves, col)
		}
	}
	return moves
}

// IsLegal reports whether col can be played right now.
func (gs *GameState) IsLegal(col int) bool {
	return gs.validate(col) == nil
}

func (gs *GameState) validate(col int) error {
	if gs.status != InProgress {
		return WrapMoveError(col, ReasonGameOver, ErrIllegalMove)
	}
	if col < 0 || col >= gs.board.W {
		return WrapMoveError(col, ReasonOutOfRange, ErrIllegalMove)
	}
	if gs.fillCount[col] == 0 {
		return WrapMoveError(col, ReasonColumnFull, ErrIllegalMove)
	}
	return nil
}

// ApplyMove drops the current player's piece into col, updates the status
// and hands the turn to the opponent. A rejected move leaves gs untouched.
func (gs *GameState) ApplyMove(col int) error {
	if err := gs.validate(col); err != nil {
		return err
	}

	row := gs.fillCount[col] - 1
	gs.board.Set(row, col, gs.current)
	gs.fillCount[col]--
	gs.movesLeft--
	gs.history = append(gs.history, Move{Player: gs.current, Row: row, Col: col})

	gs.updateStatus(row, col)

	gs.current = gs.current.Opponent()
	return nil
}

// UndoMove takes back the last move and always leaves the game in progress.
func (gs *GameState) UndoMove() error {
	if len(gs.history) == 0 {
		return ErrNoHistory
	}

	last := gs.history[len(gs.history)-1]
	gs.history = gs.history[:len(gs.history)-1]

	gs.current = gs.current.Opponent()
	gs.fillCount[last.Col]++
	gs.board.Set(gs.fillCount[last.Col]-1, last.Col, Empty)
	gs.movesLeft++
	gs.status = InProgress
	return nil
}
