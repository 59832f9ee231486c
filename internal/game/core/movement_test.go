package core

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tieSequence fills a 6x7 board row by row without ever lining up four.
// Bottom-up the rows read XXOOXXO / OOXXOOX alternately.
var tieSequence = func() []int {
	block := []int{0, 2, 1, 3, 4, 6, 5}
	seq := make([]int, 0, 42)
	for i := 0; i < 6; i++ {
		seq = append(seq, block...)
	}
	return seq
}()

func newStandardGame(t *testing.T) *GameState {
	t.Helper()
	gs, err := NewGameState(6, 7)
	require.NoError(t, err)
	return gs
}

func play(t *testing.T, gs *GameState, cols ...int) {
	t.Helper()
	for i, c := range cols {
		require.NoError(t, gs.ApplyMove(c), "move %d (column %d)", i, c)
	}
}

func sumFill(gs *GameState) int {
	total := 0
	for c := 0; c < gs.Width(); c++ {
		total += gs.FillCount(c)
	}
	return total
}

func TestApplyMove_PlacesPieceAtBottom(t *testing.T) {
	gs := newStandardGame(t)

	require.NoError(t, gs.ApplyMove(3))
	assert.Equal(t, Player1, gs.Cell(5, 3))
	assert.Equal(t, 5, gs.FillCount(3))
	assert.Equal(t, 41, gs.MovesLeft())
	assert.Equal(t, Player2, gs.CurrentPlayer())
	assert.Equal(t, []int{3}, gs.History())

	require.NoError(t, gs.ApplyMove(3))
	assert.Equal(t, Player2, gs.Cell(4, 3))
	assert.Equal(t, Player1, gs.CurrentPlayer())

	last, ok := gs.LastMove()
	require.True(t, ok)
	assert.Equal(t, Move{Player: Player2, Row: 4, Col: 3}, last)
	assert.Equal(t, Position{Row: 4, Col: 3}, last.Position())
}

func TestApplyMove_Rejected(t *testing.T) {
	tests := []struct {
		name   string
		setup  []int
		col    int
		reason string
	}{
		{"negative column", nil, -1, ReasonOutOfRange},
		{"column past the edge", nil, 7, ReasonOutOfRange},
		{"full column", []int{2, 2, 2, 2, 2, 2}, 2, ReasonColumnFull},
		{"game already won", []int{0, 1, 0, 1, 0, 1, 0}, 4, ReasonGameOver},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs := newStandardGame(t)
			play(t, gs, tt.setup...)

			before := gs.Clone()
			err := gs.ApplyMove(tt.col)

			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrIllegalMove))
			var moveErr *MoveError
			require.True(t, errors.As(err, &moveErr))
			assert.Equal(t, tt.reason, moveErr.Reason)
			assert.Equal(t, tt.col, moveErr.Column)

			assert.Equal(t, before, gs, "rejected move must not mutate state")
			assert.False(t, gs.IsLegal(tt.col))
		})
	}
}

func TestUndoMove_EmptyHistory(t *testing.T) {
	gs := newStandardGame(t)

	err := gs.UndoMove()
	assert.ErrorIs(t, err, ErrNoHistory)
	assert.Equal(t, 42, gs.MovesLeft())
	assert.Equal(t, Player1, gs.CurrentPlayer())
}

func TestApplyUndo_RoundTrip(t *testing.T) {
	gs := newStandardGame(t)
	play(t, gs, 3, 3, 4, 2, 6)

	for _, col := range gs.LegalMoves() {
		before := gs.Clone()

		require.NoError(t, gs.ApplyMove(col))
		require.NoError(t, gs.UndoMove())

		assert.Equal(t, before.Snapshot(), gs.Snapshot(), "column %d", col)
		assert.Equal(t, before.MovesLeft(), gs.MovesLeft())
		assert.Equal(t, before.CurrentPlayer(), gs.CurrentPlayer())
		assert.Equal(t, before.Status(), gs.Status())
		assert.Equal(t, before.History(), gs.History())
		for c := 0; c < gs.Width(); c++ {
			assert.Equal(t, before.FillCount(c), gs.FillCount(c))
		}
	}
}

func TestUndoMove_ClearsTerminalStatus(t *testing.T) {
	gs := newStandardGame(t)
	play(t, gs, 0, 1, 0, 1, 0, 1, 0)
	require.Equal(t, Player1Wins, gs.Status())

	require.NoError(t, gs.UndoMove())
	assert.Equal(t, InProgress, gs.Status())
	assert.Equal(t, Player1, gs.CurrentPlayer(), "turn returns to the player who made the undone move")
	assert.Equal(t, Empty, gs.Cell(2, 0))
	assert.Equal(t, 3, gs.FillCount(0))

	require.NoError(t, gs.ApplyMove(0))
	assert.Equal(t, Player1Wins, gs.Status())
}

func TestMovesLeft_Invariant(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for game := 0; game < 20; game++ {
		gs, err := NewGameState(6+rng.Intn(3), 6+rng.Intn(4))
		require.NoError(t, err)

		for gs.Status() == InProgress {
			moves := gs.LegalMoves()
			before := gs.MovesLeft()

			require.NoError(t, gs.ApplyMove(moves[rng.Intn(len(moves))]))
			assert.Equal(t, before-1, gs.MovesLeft())
			assert.Equal(t, sumFill(gs), gs.MovesLeft())
		}

		for len(gs.History()) > 0 {
			before := gs.MovesLeft()
			require.NoError(t, gs.UndoMove())
			assert.Equal(t, before+1, gs.MovesLeft())
			assert.Equal(t, sumFill(gs), gs.MovesLeft())
		}
		assert.Equal(t, gs.Height()*gs.Width(), gs.MovesLeft())
	}
}

func TestLegalMoves(t *testing.T) {
	gs := newStandardGame(t)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, gs.LegalMoves())

	play(t, gs, 5, 5, 5, 5, 5, 5)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 6}, gs.LegalMoves())

	first := gs.LegalMoves()
	first[0] = 99
	assert.Equal(t, 0, gs.LegalMoves()[0], "each call returns a fresh slice")
}

func TestTiedWhenBoardFills(t *testing.T) {
	gs := newStandardGame(t)

	for i, col := range tieSequence {
		require.NoError(t, gs.ApplyMove(col), "move %d", i)
		if i < len(tieSequence)-1 {
			require.Equal(t, InProgress, gs.Status(), "move %d", i)
		}
	}

	assert.Equal(t, 0, gs.MovesLeft())
	assert.Equal(t, Tied, gs.Status())
	assert.Empty(t, gs.LegalMoves())
}
