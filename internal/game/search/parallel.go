package search

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/alejandro-mc/connect4/internal/game/core"
)

// SelectMoveParallel returns the same column as SelectMove but scores each
// root column concurrently, every branch on its own clone of gs. gs itself
// is never mutated. Cancelling ctx stops branches that have not started.
func SelectMoveParallel(ctx context.Context, gs *core.GameState, depth int) (int, error) {
	move, _, _, err := selectMoveParallel(ctx, gs, depth)
	return move, err
}

func selectMoveParallel(ctx context.Context, gs *core.GameState, depth int) (move, score, nodes int, err error) {
	if depth < 1 {
		return core.NoMove, 0, 0, fmt.Errorf("depth %d: %w", depth, ErrInvalidDepth)
	}
	if st := gs.Status(); st.IsTerminal() {
		return core.NoMove, 0, 0, fmt.Errorf("%s: %w", st, ErrTerminalState)
	}

	maximizing := gs.CurrentPlayer() == core.Player2
	moves := gs.LegalMoves()
	scores := make([]int, len(moves))
	counts := make([]counter, len(moves))

	g, gctx := errgroup.WithContext(ctx)
	for i, col := range moves {
		i, col := i, col
		branch := gs.Clone()
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := branch.ApplyMove(col); err != nil {
				return err
			}
			if maximizing {
				scores[i], _ = minScore(branch, depth-1, &counts[i])
			} else {
				scores[i], _ = maxScore(branch, depth-1, &counts[i])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return core.NoMove, 0, 0, err
	}

	// Mirror the sequential tie-break: first strictly better column wins.
	nodes = 1
	move, score = core.NoMove, math.MinInt
	if !maximizing {
		score = math.MaxInt
	}
	for i, col := range moves {
		nodes += counts[i].nodes
		if (maximizing && scores[i] > score) || (!maximizing && scores[i] < score) {
			move, score = col, scores[i]
		}
	}
	return move, score, nodes, nil
}
