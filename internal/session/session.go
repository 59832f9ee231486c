// Package session runs one player's sequence of games: menu choices, the
// current board, and the computer opponent.
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/alejandro-mc/connect4/internal/config"
	"github.com/alejandro-mc/connect4/internal/game/core"
	"github.com/alejandro-mc/connect4/internal/game/events"
	"github.com/alejandro-mc/connect4/internal/game/search"
	"github.com/alejandro-mc/connect4/internal/game/states"
)

var (
	ErrNoGame       = errors.New("no game to resume")
	ErrNotPlaying   = errors.New("game is not accepting moves")
	ErrComputerTurn = errors.New("waiting for the computer to move")
	ErrInvalidMode  = errors.New("invalid player mode")
)

// Options are the settings a new game starts with.
type Options struct {
	Height         int
	Width          int
	MinDim         int
	Mode           string
	ComputerPlayer core.Cell
	Depth          int
	Parallel       bool
}

// OptionsFromConfig copies the game and search settings out of c.
func OptionsFromConfig(c *config.Config) Options {
	return Options{
		Height:         c.Game.Board.Height,
		Width:          c.Game.Board.Width,
		MinDim:         c.Game.MinDim,
		Mode:           c.Game.Mode,
		ComputerPlayer: core.Cell(c.Game.ComputerPlayer),
		Depth:          c.Search.Depth,
		Parallel:       c.Search.Parallel,
	}
}

func (o Options) validate() error {
	if o.MinDim < core.MinDim {
		return fmt.Errorf("minimum dimension %d below %d: %w", o.MinDim, core.MinDim, core.ErrInvalidDimensions)
	}
	if o.Height < o.MinDim || o.Width < o.MinDim {
		return fmt.Errorf("%dx%d: %w", o.Height, o.Width, core.ErrInvalidDimensions)
	}
	if o.Mode != config.ModeSingle && o.Mode != config.ModeMulti {
		return fmt.Errorf("%q: %w", o.Mode, ErrInvalidMode)
	}
	if !o.ComputerPlayer.IsPlayer() {
		return fmt.Errorf("computer player %d: %w", o.ComputerPlayer, ErrInvalidMode)
	}
	if o.Depth < 1 {
		return fmt.Errorf("depth %d: %w", o.Depth, search.ErrInvalidDepth)
	}
	return nil
}

// Session holds the current game and the settings for the next one. It is
// not safe for concurrent use.
type Session struct {
	logger    zerolog.Logger
	opts      Options
	publisher events.Publisher
	searcher  *search.Searcher
	machine   *states.StateMachine

	game   *core.GameState
	gameID string
}

// New creates a session at the main menu. A nil publisher drops all events.
func New(opts Options, publisher events.Publisher, logger zerolog.Logger) (*Session, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if publisher == nil {
		publisher = events.NopPublisher{}
	}

	sessionLogger := logger.With().Str("component", "Session").Logger()

	return &Session{
		logger:    sessionLogger,
		opts:      opts,
		publisher: publisher,
		searcher:  search.NewSearcher(logger, opts.Depth, opts.Parallel),
		machine:   states.NewStateMachine(states.NewGameContext("", sessionLogger), publisher),
	}, nil
}

func (s *Session) Options() Options             { return s.opts }
func (s *Session) Phase() states.GamePhase      { return s.machine.CurrentPhase() }
func (s *Session) GameID() string               { return s.gameID }
func (s *Session) LastSearch() search.Stats     { return s.searcher.LastStats() }
func (s *Session) History() []states.Transition { return s.machine.GetHistory() }

// Game returns the current board, or nil at the menu. Callers must not
// modify it.
func (s *Session) Game() *core.GameState { return s.game }

// NewGame discards any current game and starts an empty board with the
// session's options.
func (s *Session) NewGame() error {
	gs, err := core.NewGameState(s.opts.Height, s.opts.Width)
	if err != nil {
		return err
	}

	if s.Phase() == states.PhasePlaying {
		if err := s.machine.TransitionTo(states.PhaseSuspended, "new game requested"); err != nil {
			return err
		}
	}

	id := uuid.NewString()
	s.machine.GetContext().StartGame(id)
	if err := s.machine.TransitionTo(states.PhasePlaying, "new game"); err != nil {
		return err
	}
	s.game, s.gameID = gs, id

	computer := core.Empty
	if s.opts.Mode == config.ModeSingle {
		computer = s.opts.ComputerPlayer
	}
	s.publisher.Publish(events.NewGameStartedEvent(id, gs.Height(), gs.Width(), computer))
	s.logger.Info().
		Str("game_id", id).
		Int("height", gs.Height()).
		Int("width", gs.Width()).
		Str("mode", s.opts.Mode).
		Msg("New game")
	return nil
}

// IsComputerTurn reports whether the computer should move next.
func (s *Session) IsComputerTurn() bool {
	return s.opts.Mode == config.ModeSingle &&
		s.game != nil &&
		s.Phase().CanReceiveMoves() &&
		s.game.CurrentPlayer() == s.opts.ComputerPlayer
}

// Play drops a piece for the human player to move.
func (s *Session) Play(col int) error {
	if !s.Phase().CanReceiveMoves() {
		return ErrNotPlaying
	}
	if s.IsComputerTurn() {
		return ErrComputerTurn
	}
	return s.apply(col)
}

// ComputerMove searches for and plays a move for whichever player is to
// move, returning the column played.
func (s *Session) ComputerMove(ctx context.Context) (int, error) {
	if !s.Phase().CanReceiveMoves() {
		return core.NoMove, ErrNotPlaying
	}

	player := s.game.CurrentPlayer()
	col, err := s.searcher.SelectMove(ctx, s.game)
	if err != nil {
		return core.NoMove, err
	}

	stats := s.searcher.LastStats()
	s.publisher.Publish(events.NewComputerMovedEvent(s.gameID, player, col,
		stats.Score, stats.Depth, stats.Nodes, stats.Elapsed))

	if err := s.apply(col); err != nil {
		return core.NoMove, fmt.Errorf("search chose column %d: %w", col, err)
	}
	return col, nil
}

// AdvanceComputer plays computer moves until it is a human's turn or the
// game ends, returning the columns played.
func (s *Session) AdvanceComputer(ctx context.Context) ([]int, error) {
	var played []int
	for s.IsComputerTurn() {
		col, err := s.ComputerMove(ctx)
		if err != nil {
			return played, err
		}
		played = append(played, col)
	}
	return played, nil
}

func (s *Session) apply(col int) error {
	player := s.game.CurrentPlayer()
	if err := s.game.ApplyMove(col); err != nil {
		reason := err.Error()
		var moveErr *core.MoveError
		if errors.As(err, &moveErr) {
			reason = moveErr.Reason
		}
		s.publisher.Publish(events.NewMoveRejectedEvent(s.gameID, player, col, reason))
		return err
	}

	move, _ := s.game.LastMove()
	status := s.game.Status()
	s.publisher.Publish(events.NewMoveAppliedEvent(s.gameID, move, s.game.MovesLeft(), status))

	if status.IsTerminal() {
		gameCtx := s.machine.GetContext()
		gameCtx.Result = status
		s.publisher.Publish(events.NewGameEndedEvent(s.gameID, status,
			len(s.game.History()), gameCtx.GetElapsedTime()))
		return s.machine.TransitionTo(states.PhaseFinished, status.String())
	}
	return nil
}

// Undo takes back the last move. In single player mode it keeps undoing
// until a human is to move, so the computer's reply goes with the human
// move that prompted it. It returns the number of moves taken back.
func (s *Session) Undo() (int, error) {
	phase := s.Phase()
	if phase != states.PhasePlaying && phase != states.PhaseFinished {
		return 0, ErrNotPlaying
	}

	undone := 0
	for {
		move, ok := s.game.LastMove()
		if !ok {
			if undone == 0 {
				return 0, core.ErrNoHistory
			}
			break
		}
		if err := s.game.UndoMove(); err != nil {
			return undone, err
		}
		undone++
		s.publisher.Publish(events.NewMoveUndoneEvent(s.gameID, move))

		if s.opts.Mode != config.ModeSingle || s.game.CurrentPlayer() != s.opts.ComputerPlayer {
			break
		}
	}

	if phase == states.PhaseFinished {
		if err := s.machine.TransitionTo(states.PhasePlaying, "move undone"); err != nil {
			return undone, err
		}
	}
	return undone, nil
}

// Suspend leaves the current game for the menu. A finished game cannot be
// resumed and is dropped instead.
func (s *Session) Suspend() error {
	switch s.Phase() {
	case states.PhasePlaying:
		return s.machine.TransitionTo(states.PhaseSuspended, "returned to menu")
	case states.PhaseFinished:
		return s.Abandon()
	default:
		return nil
	}
}

// Resume continues a suspended game.
func (s *Session) Resume() error {
	if s.Phase() != states.PhaseSuspended {
		return ErrNoGame
	}
	return s.machine.TransitionTo(states.PhasePlaying, "resumed")
}

// CanResume reports whether the menu should offer to resume.
func (s *Session) CanResume() bool {
	return s.Phase() == states.PhaseSuspended
}

// Abandon drops a suspended or finished game and returns to the menu.
func (s *Session) Abandon() error {
	phase := s.Phase()
	if phase == states.PhaseMenu {
		return nil
	}
	if phase == states.PhasePlaying {
		if err := s.machine.TransitionTo(states.PhaseSuspended, "abandoned"); err != nil {
			return err
		}
	}
	if err := s.machine.TransitionTo(states.PhaseMenu, "abandoned"); err != nil {
		return err
	}
	s.game, s.gameID = nil, ""
	return nil
}

// SetBoardSize changes the size of the next game. A game waiting at the
// menu no longer fits the new size and is dropped.
func (s *Session) SetBoardSize(height, width int) error {
	if height < s.opts.MinDim || width < s.opts.MinDim {
		return fmt.Errorf("%dx%d, minimum is %d: %w", height, width, s.opts.MinDim, core.ErrInvalidDimensions)
	}
	s.opts.Height, s.opts.Width = height, width
	if s.Phase() != states.PhasePlaying {
		return s.Abandon()
	}
	return nil
}

// SetMode switches between single player (against the computer) and two
// player games. It applies immediately, including to a game in progress.
func (s *Session) SetMode(mode string) error {
	if mode != config.ModeSingle && mode != config.ModeMulti {
		return fmt.Errorf("%q: %w", mode, ErrInvalidMode)
	}
	s.opts.Mode = mode
	s.logger.Debug().Str("mode", mode).Msg("Player mode changed")
	return nil
}

// SetDepth changes how many plies the computer searches.
func (s *Session) SetDepth(depth int) error {
	if depth < 1 {
		return fmt.Errorf("depth %d: %w", depth, search.ErrInvalidDepth)
	}
	s.opts.Depth = depth
	s.searcher.SetDepth(depth)
	return nil
}
