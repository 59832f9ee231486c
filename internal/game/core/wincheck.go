package core

// reach is how far a line extends on each side of the placed piece.
const reach = WinLength - 1

// updateStatus checks the four lines through (row, col) for the player who
// just moved there. Runs once per applied move.
func (gs *GameState) updateStatus(row, col int) {
	player := gs.board.Get(row, col)
	origin := Position{Row: row, Col: col}

	for _, d := range Axes {
		if gs.lineWins(origin, d, player) {
			gs.status = WinStatus(player)
			return
		}
	}

	if gs.movesLeft == 0 {
		gs.status = Tied
	}
}

// lineWins extracts the cells through origin along d, at most reach steps
// each way and clipped to the board, and scans them for a run of WinLength.
func (gs *GameState) lineWins(origin Position, d Direction, player Cell) bool {
	h, w := gs.board.H, gs.board.W

	back := 0
	for back < reach && origin.Step(d, -(back+1)).IsValid(h, w) {
		back++
	}
	fwd := 0
	for fwd < reach && origin.Step(d, fwd+1).IsValid(h, w) {
		fwd++
	}

	var line [2*reach + 1]Cell
	n := 0
	for i := -back; i <= fwd; i++ {
		p := origin.Step(d, i)
		line[n] = gs.board.Get(p.Row, p.Col)
		n++
	}

	return containsRun(line[:n], player)
}

// containsRun reports whether line holds WinLength consecutive player cells.
func containsRun(line []Cell, player Cell) bool {
	count := 0
	for _, c := range line {
		if c == player {
			count++
		} else {
			count = 0
		}
		if count == WinLength {
			return true
		}
	}
	return false
}

// hasWinner scans every occupied cell for a completed line owned by player.
func (gs *GameState) hasWinner(player Cell) bool {
	for idx, c := range gs.board.T {
		if c != player {
			continue
		}
		row, col := gs.board.RowCol(idx)
		origin := Position{Row: row, Col: col}
		for _, d := range Axes {
			if gs.lineWins(origin, d, player) {
				return true
			}
		}
	}
	return false
}
