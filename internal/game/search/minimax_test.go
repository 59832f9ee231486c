package search

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alejandro-mc/connect4/internal/game/core"
	"github.com/alejandro-mc/connect4/internal/testutil"
)

func TestSelectMove_CompletesWinForPlayer2(t *testing.T) {
	tests := []struct {
		name     string
		rows     []string
		depths   []int
		expected int
	}{
		{
			name: "vertical three in the first column",
			rows: []string{
				".......",
				".......",
				"O......",
				"O......",
				"O......",
				"X.X.X.X",
			},
			depths:   []int{1, 2, 3, DefaultDepth},
			expected: 0,
		},
		{
			name: "horizontal three with a gap on the right",
			rows: []string{
				".......",
				".......",
				".......",
				".......",
				"X......",
				"XOOO.XX",
			},
			depths:   []int{1, 2},
			expected: 4,
		},
	}

	for _, tt := range tests {
		for _, depth := range tt.depths {
			t.Run(tt.name, func(t *testing.T) {
				gs := testutil.BoardFromRows(t, tt.rows...)
				require.Equal(t, core.Player2, gs.CurrentPlayer())

				move, err := SelectMove(gs, depth)
				require.NoError(t, err)
				assert.Equal(t, tt.expected, move, "depth %d", depth)
			})
		}
	}
}

func TestSelectMove_CompletesWinForPlayer1(t *testing.T) {
	gs := testutil.BoardFromRows(t,
		".......",
		".......",
		".......",
		"X......",
		"XO.....",
		"XO.O...",
	)
	require.Equal(t, core.Player1, gs.CurrentPlayer())

	for _, depth := range []int{1, 2, DefaultDepth} {
		move, err := SelectMove(gs, depth)
		require.NoError(t, err)
		assert.Equal(t, 0, move, "depth %d", depth)
	}
}

func TestSelectMove_BlocksImmediateThreat(t *testing.T) {
	gs := testutil.BoardFromRows(t,
		".......",
		".......",
		".......",
		"...X...",
		"...X...",
		"O..XO..",
	)
	require.Equal(t, core.Player2, gs.CurrentPlayer())

	move, err := SelectMove(gs, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, move)
}

func TestSelectMove_LeavesStateUntouched(t *testing.T) {
	gs := testutil.NewStandardGame(t)
	testutil.MustPlay(t, gs, 3, 3, 2, 4, 4)

	before := gs.Clone()
	move, err := SelectMove(gs, DefaultDepth)
	require.NoError(t, err)

	assert.Contains(t, gs.LegalMoves(), move)
	assert.Equal(t, before, gs)
}

func TestSelectMove_Preconditions(t *testing.T) {
	t.Run("terminal state", func(t *testing.T) {
		gs := testutil.NewStandardGame(t)
		testutil.MustPlay(t, gs, 0, 1, 0, 1, 0, 1, 0)

		move, err := SelectMove(gs, DefaultDepth)
		assert.True(t, errors.Is(err, ErrTerminalState))
		assert.Equal(t, core.NoMove, move)
	})

	t.Run("zero depth", func(t *testing.T) {
		gs := testutil.NewStandardGame(t)

		move, err := SelectMove(gs, 0)
		assert.True(t, errors.Is(err, ErrInvalidDepth))
		assert.Equal(t, core.NoMove, move)
	})
}

func TestSelectMove_TiesKeepLowestColumn(t *testing.T) {
	// On an empty board every reply at depth 1 scores the flat 0 of
	// MinScore, so the first column examined is kept.
	gs := testutil.NewStandardGame(t)
	testutil.MustPlay(t, gs, 6)

	move, err := SelectMove(gs, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, move)
}

// Depth-0 leaves are scored differently on each side: MaxScore evaluates
// the board, MinScore returns 0. This is relied on by move selection.
func TestDepthZero_Asymmetry(t *testing.T) {
	gs := testutil.BoardFromRows(t,
		".......",
		".......",
		".......",
		".......",
		"X.....X",
		"OOO...X",
	)
	require.Equal(t, 1, StaticEval(gs))

	score, move := MaxScore(gs, 0)
	assert.Equal(t, 1, score)
	assert.Equal(t, core.NoMove, move)

	score, move = MinScore(gs, 0)
	assert.Equal(t, 0, score)
	assert.Equal(t, core.NoMove, move)
}

func TestTerminalScore(t *testing.T) {
	tests := []struct {
		name     string
		moves    []int
		expected int
	}{
		{"player 1 wins", []int{0, 1, 0, 1, 0, 1, 0}, LossScore},
		{"player 2 wins", []int{0, 1, 2, 1, 2, 1, 0, 1}, WinScore},
		{"in progress", []int{3}, TieScore},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs := testutil.NewStandardGame(t)
			testutil.MustPlay(t, gs, tt.moves...)
			assert.Equal(t, tt.expected, TerminalScore(gs))
		})
	}

	t.Run("tied", func(t *testing.T) {
		gs := testutil.BoardFromRows(t,
			"OOXXOOX",
			"XXOOXXO",
			"OOXXOOX",
			"XXOOXXO",
			"OOXXOOX",
			"XXOOXXO",
		)
		require.Equal(t, core.Tied, gs.Status())
		assert.Equal(t, TieScore, TerminalScore(gs))
	})
}

func TestTerminalStateIgnoresDepth(t *testing.T) {
	gs := testutil.NewStandardGame(t)
	testutil.MustPlay(t, gs, 0, 1, 2, 1, 2, 1, 0, 1)
	require.Equal(t, core.Player2Wins, gs.Status())

	for _, depth := range []int{0, 1, 3} {
		score, move := MaxScore(gs, depth)
		assert.Equal(t, WinScore, score)
		assert.Equal(t, core.NoMove, move)

		score, move = MinScore(gs, depth)
		assert.Equal(t, WinScore, score)
		assert.Equal(t, core.NoMove, move)
	}
}

func TestNodeCount(t *testing.T) {
	gs := testutil.NewStandardGame(t)

	c := &counter{}
	_, _, err := selectMove(gs, 1, c)
	require.NoError(t, err)
	assert.Equal(t, 8, c.nodes, "root plus one node per column")

	c = &counter{}
	_, _, err = selectMove(gs, 2, c)
	require.NoError(t, err)
	assert.Equal(t, 1+7+49, c.nodes)
}

// brokenState accepts no moves even though it reports some as legal.
type brokenState struct {
	*core.GameState
}

func (brokenState) ApplyMove(int) error { return core.ErrIllegalMove }

func TestSearch_PanicsOnBrokenState(t *testing.T) {
	s := brokenState{testutil.NewStandardGame(t)}
	testutil.AssertPanic(t, func() { MaxScore(s, 1) }, "applying a legal column must not fail")
}

func BenchmarkSelectMove(b *testing.B) {
	gs := testutil.NewStandardGame(b)
	testutil.MustPlay(b, gs, 3, 3, 2)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := SelectMove(gs, DefaultDepth); err != nil {
			b.Fatal(err)
		}
	}
}
