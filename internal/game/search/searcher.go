package search

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/alejandro-mc/connect4/internal/game/core"
)

// Stats describes the most recent search.
type Stats struct {
	Depth    int
	Move     int
	Score    int
	Nodes    int
	Parallel bool
	Elapsed  time.Duration
}

// Searcher wraps SelectMove with logging and statistics for the computer
// player. A Searcher is not safe for concurrent use.
type Searcher struct {
	logger   zerolog.Logger
	depth    int
	parallel bool
	last     Stats
}

// NewSearcher creates a searcher for the given depth. When parallel is set
// each root column is explored on its own copy of the game.
func NewSearcher(logger zerolog.Logger, depth int, parallel bool) *Searcher {
	return &Searcher{
		logger:   logger.With().Str("component", "Searcher").Logger(),
		depth:    depth,
		parallel: parallel,
	}
}

func (s *Searcher) Depth() int         { return s.depth }
func (s *Searcher) LastStats() Stats   { return s.last }
func (s *Searcher) SetDepth(depth int) { s.depth = depth }

// SelectMove picks a column for the player to move in gs. A sequential
// search only checks ctx before it starts.
func (s *Searcher) SelectMove(ctx context.Context, gs *core.GameState) (int, error) {
	if err := ctx.Err(); err != nil {
		return core.NoMove, err
	}

	start := time.Now()
	stats := Stats{Depth: s.depth, Parallel: s.parallel}

	var (
		move, score int
		err         error
	)
	if s.parallel {
		move, score, stats.Nodes, err = selectMoveParallel(ctx, gs, s.depth)
	} else {
		c := &counter{}
		move, score, err = selectMove(gs, s.depth, c)
		stats.Nodes = c.nodes
	}
	if err != nil {
		s.logger.Warn().Err(err).Int("depth", s.depth).Msg("Search rejected")
		return core.NoMove, err
	}

	stats.Move, stats.Score, stats.Elapsed = move, score, time.Since(start)
	s.last = stats

	s.logger.Debug().
		Str("player", gs.CurrentPlayer().String()).
		Int("depth", stats.Depth).
		Int("move", stats.Move).
		Int("score", stats.Score).
		Int("nodes", stats.Nodes).
		Bool("parallel", stats.Parallel).
		Dur("elapsed", stats.Elapsed).
		Msg("Move selected")

	return move, nil
}
