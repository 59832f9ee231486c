package core

import (
	"fmt"
	"strings"
)

// ParseBoard builds a game from a picture of the grid, top row first.
// '.' or '-' is empty, 'X' or '1' is Player1, 'O' or '2' is Player2.
// Pieces must rest on the bottom or on another piece and Player1 must have
// made the same number of moves as Player2 or one more. The player to move
// and the status are derived from the picture; the history starts empty.
func ParseBoard(rows ...string) (*GameState, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("no rows: %w", ErrInvalidDimensions)
	}

	height, width := len(rows), len(strings.TrimSpace(rows[0]))
	gs, err := NewGameState(height, width)
	if err != nil {
		return nil, err
	}

	counts := map[Cell]int{}
	for r, line := range rows {
		line = strings.TrimSpace(line)
		if len(line) != width {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", r, len(line), width, ErrInvalidDimensions)
		}
		for c, ch := range line {
			cell, err := parseCell(ch)
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", r, c, err)
			}
			gs.board.Set(r, c, cell)
			counts[cell]++
		}
	}

	for c := 0; c < width; c++ {
		free := 0
		for free < height && gs.board.Get(free, c) == Empty {
			free++
		}
		for r := free; r < height; r++ {
			if gs.board.Get(r, c) == Empty {
				return nil, fmt.Errorf("floating piece above (%d,%d): %w", r, c, ErrInvalidPosition)
			}
		}
		gs.fillCount[c] = free
	}
	gs.movesLeft = counts[Empty]

	switch counts[Player1] - counts[Player2] {
	case 0:
		gs.current = Player1
	case 1:
		gs.current = Player2
	default:
		return nil, fmt.Errorf("player 1 has %d pieces and player 2 has %d: %w",
			counts[Player1], counts[Player2], ErrInvalidPosition)
	}

	p1, p2 := gs.hasWinner(Player1), gs.hasWinner(Player2)
	switch {
	case p1 && p2:
		return nil, fmt.Errorf("both players have four in a row: %w", ErrInvalidPosition)
	case p1 && gs.current != Player2, p2 && gs.current != Player1:
		return nil, fmt.Errorf("winner did not make the last move: %w", ErrInvalidPosition)
	case p1:
		gs.status = Player1Wins
	case p2:
		gs.status = Player2Wins
	case gs.movesLeft == 0:
		gs.status = Tied
	}

	return gs, nil
}

func parseCell(ch rune) (Cell, error) {
	switch ch {
	case '.', '-':
		return Empty, nil
	case 'X', 'x', '1':
		return Player1, nil
	case 'O', 'o', '2':
		return Player2, nil
	default:
		return Empty, fmt.Errorf("unknown cell %q: %w", ch, ErrInvalidPosition)
	}
}
