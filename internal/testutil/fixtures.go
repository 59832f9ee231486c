package testutil

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alejandro-mc/connect4/internal/game/core"
)

// NewStandardGame creates an empty 6x7 game
func NewStandardGame(t testing.TB) *core.GameState {
	t.Helper()
	gs, err := core.NewGameState(6, 7)
	require.NoError(t, err)
	return gs
}

// BoardFromRows builds a game from a picture of the grid, top row first
func BoardFromRows(t testing.TB, rows ...string) *core.GameState {
	t.Helper()
	gs, err := core.ParseBoard(rows...)
	require.NoError(t, err)
	return gs
}

// MustPlay applies the given columns in order and fails the test on any error
func MustPlay(t testing.TB, gs *core.GameState, cols ...int) {
	t.Helper()
	for i, c := range cols {
		require.NoError(t, gs.ApplyMove(c), "move %d (column %d)", i, c)
	}
}

// RandomPosition plays up to n random legal moves, stopping early if the
// game ends. The game returned may therefore be terminal.
func RandomPosition(t testing.TB, rng *rand.Rand, height, width, n int) *core.GameState {
	t.Helper()
	gs, err := core.NewGameState(height, width)
	require.NoError(t, err)

	for i := 0; i < n && gs.Status() == core.InProgress; i++ {
		moves := gs.LegalMoves()
		require.NoError(t, gs.ApplyMove(moves[rng.Intn(len(moves))]))
	}
	return gs
}
