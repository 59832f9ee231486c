package states

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/alejandro-mc/connect4/internal/game/core"
)

// GameContext provides game-specific information to states for making decisions
type GameContext struct {
	// GameID identifies the current game; it changes with every new game
	GameID string

	// Logger for state-specific logging
	Logger zerolog.Logger

	// StartTime is when the current game first entered PhasePlaying
	StartTime time.Time

	// SuspendTime is when the game was suspended (if suspended)
	SuspendTime time.Time

	// TotalSuspendDuration tracks total time spent suspended
	TotalSuspendDuration time.Duration

	// Result is the status of the game when it finished
	Result core.Status
}

// NewGameContext creates a new game context
func NewGameContext(gameID string, logger zerolog.Logger) *GameContext {
	return &GameContext{
		GameID: gameID,
		Logger: logger,
		Result: core.InProgress,
	}
}

// StartGame clears the timing and result of the previous game.
func (gc *GameContext) StartGame(gameID string) {
	gc.GameID = gameID
	gc.StartTime = time.Time{}
	gc.SuspendTime = time.Time{}
	gc.TotalSuspendDuration = 0
	gc.Result = core.InProgress
}

// GetElapsedTime returns the time elapsed since game start, excluding suspensions
func (gc *GameContext) GetElapsedTime() time.Duration {
	if gc.StartTime.IsZero() {
		return 0
	}

	elapsed := time.Since(gc.StartTime) - gc.TotalSuspendDuration
	if !gc.SuspendTime.IsZero() {
		elapsed -= time.Since(gc.SuspendTime)
	}
	return elapsed
}
