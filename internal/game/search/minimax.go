// Package search picks moves for the automated player with a fixed-depth
// minimax over a single game that is mutated and restored in place.
//
// Scores are always from player 2's point of view: positive favours
// player 2, negative favours player 1.
package search

import (
	"errors"
	"fmt"
	"math"

	"github.com/alejandro-mc/connect4/internal/game/core"
)

const (
	DefaultDepth = 4

	WinScore  = 100  // player 2 has won
	LossScore = -100 // player 1 has won
	TieScore  = 0
)

var (
	ErrTerminalState = errors.New("game is already decided")
	ErrInvalidDepth  = errors.New("search depth must be at least 1")
)

// State is the part of a game the search reads and mutates.
// *core.GameState implements it.
type State interface {
	Height() int
	Width() int
	Cell(row, col int) core.Cell
	CurrentPlayer() core.Cell
	Status() core.Status
	LegalMoves() []int
	ApplyMove(col int) error
	UndoMove() error
}

// SelectMove returns the column chosen for the player to move. Player 2
// takes the maximising move, player 1 the minimising one. s is left exactly
// as it was passed in.
func SelectMove(s State, depth int) (int, error) {
	move, _, err := selectMove(s, depth, nil)
	return move, err
}

func selectMove(s State, depth int, c *counter) (int, int, error) {
	if depth < 1 {
		return core.NoMove, 0, fmt.Errorf("depth %d: %w", depth, ErrInvalidDepth)
	}
	if st := s.Status(); st.IsTerminal() {
		return core.NoMove, 0, fmt.Errorf("%s: %w", st, ErrTerminalState)
	}

	var score, move int
	if s.CurrentPlayer() == core.Player2 {
		score, move = maxScore(s, depth, c)
	} else {
		score, move = minScore(s, depth, c)
	}
	return move, score, nil
}

// MaxScore searches depth plies for the maximising side. A leaf at depth 0
// is scored with StaticEval.
func MaxScore(s State, depth int) (score, move int) {
	return maxScore(s, depth, nil)
}

// MinScore searches depth plies for the minimising side. A non-terminal
// leaf at depth 0 scores a flat 0, unlike MaxScore which evaluates it.
func MinScore(s State, depth int) (score, move int) {
	return minScore(s, depth, nil)
}

func maxScore(s State, depth int, c *counter) (int, int) {
	c.visit()
	if st := s.Status(); st.IsTerminal() {
		return terminalScore(st), core.NoMove
	}
	if depth == 0 {
		return StaticEval(s), core.NoMove
	}

	best, bestMove := math.MinInt, core.NoMove
	for _, col := range s.LegalMoves() {
		mustApply(s, col)
		score, _ := minScore(s, depth-1, c)
		mustUndo(s)

		if score > best {
			best, bestMove = score, col
		}
	}
	return best, bestMove
}

func minScore(s State, depth int, c *counter) (int, int) {
	c.visit()
	if st := s.Status(); st.IsTerminal() {
		return terminalScore(st), core.NoMove
	}
	if depth == 0 {
		return 0, core.NoMove
	}

	best, bestMove := math.MaxInt, core.NoMove
	for _, col := range s.LegalMoves() {
		mustApply(s, col)
		score, _ := maxScore(s, depth-1, c)
		mustUndo(s)

		if score < best {
			best, bestMove = score, col
		}
	}
	return best, bestMove
}

// TerminalScore scores a decided game. It returns TieScore while the game
// is still in progress.
func TerminalScore(s State) int {
	return terminalScore(s.Status())
}

func terminalScore(st core.Status) int {
	switch st {
	case core.Player1Wins:
		return LossScore
	case core.Player2Wins:
		return WinScore
	default:
		return TieScore
	}
}

// The search only plays columns it got from LegalMoves and undoes exactly
// what it applied, so a failure here means the State broke its contract.
func mustApply(s State, col int) {
	if err := s.ApplyMove(col); err != nil {
		panic(fmt.Sprintf("search: applying legal column %d: %v", col, err))
	}
}

func mustUndo(s State) {
	if err := s.UndoMove(); err != nil {
		panic(fmt.Sprintf("search: undoing speculative move: %v", err))
	}
}

// counter tallies visited nodes. A nil counter discards the count.
type counter struct {
	nodes int
}

func (c *counter) visit() {
	if c != nil {
		c.nodes++
	}
}
