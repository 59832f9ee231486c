package states

import (
	"fmt"
	"time"

	"github.com/alejandro-mc/connect4/internal/game/core"
)

// MenuState represents the main menu with no game on the board
type MenuState struct{}

func NewMenuState() State {
	return &MenuState{}
}

func (s *MenuState) Phase() GamePhase {
	return PhaseMenu
}

func (s *MenuState) Enter(ctx *GameContext) error {
	ctx.Logger.Debug().Msg("Entering menu")
	return nil
}

func (s *MenuState) Exit(ctx *GameContext) error {
	return nil
}

func (s *MenuState) Validate(ctx *GameContext) error {
	return nil
}

// PlayingState represents active gameplay
type PlayingState struct{}

func NewPlayingState() State {
	return &PlayingState{}
}

func (s *PlayingState) Phase() GamePhase {
	return PhasePlaying
}

func (s *PlayingState) Enter(ctx *GameContext) error {
	if ctx.StartTime.IsZero() {
		ctx.StartTime = time.Now()
		ctx.Logger.Info().
			Str("game_id", ctx.GameID).
			Time("start_time", ctx.StartTime).
			Msg("Game started")
	}
	// Undoing the deciding move reopens the game
	ctx.Result = core.InProgress
	return nil
}

func (s *PlayingState) Exit(ctx *GameContext) error {
	ctx.Logger.Debug().
		Dur("elapsed", ctx.GetElapsedTime()).
		Msg("Leaving play")
	return nil
}

func (s *PlayingState) Validate(ctx *GameContext) error {
	if ctx.GameID == "" {
		return fmt.Errorf("cannot play without a game id")
	}
	return nil
}

// SuspendedState represents a game left for the menu that can be resumed
type SuspendedState struct{}

func NewSuspendedState() State {
	return &SuspendedState{}
}

func (s *SuspendedState) Phase() GamePhase {
	return PhaseSuspended
}

func (s *SuspendedState) Enter(ctx *GameContext) error {
	ctx.SuspendTime = time.Now()
	ctx.Logger.Info().Str("game_id", ctx.GameID).Msg("Game suspended")
	return nil
}

func (s *SuspendedState) Exit(ctx *GameContext) error {
	if !ctx.SuspendTime.IsZero() {
		suspended := time.Since(ctx.SuspendTime)
		ctx.TotalSuspendDuration += suspended
		ctx.SuspendTime = time.Time{}
		ctx.Logger.Info().
			Dur("suspend_duration", suspended).
			Msg("Game resumed")
	}
	return nil
}

func (s *SuspendedState) Validate(ctx *GameContext) error {
	return nil
}

// FinishedState represents a decided game
type FinishedState struct{}

func NewFinishedState() State {
	return &FinishedState{}
}

func (s *FinishedState) Phase() GamePhase {
	return PhaseFinished
}

func (s *FinishedState) Enter(ctx *GameContext) error {
	ctx.Logger.Info().
		Str("game_id", ctx.GameID).
		Str("result", ctx.Result.String()).
		Dur("duration", ctx.GetElapsedTime()).
		Msg("Game finished")
	return nil
}

func (s *FinishedState) Exit(ctx *GameContext) error {
	return nil
}

func (s *FinishedState) Validate(ctx *GameContext) error {
	if !ctx.Result.IsTerminal() {
		return fmt.Errorf("cannot finish a game that is %s", ctx.Result)
	}
	return nil
}
