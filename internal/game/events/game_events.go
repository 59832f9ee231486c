package events

import (
	"time"

	"github.com/alejandro-mc/connect4/internal/game/core"
)

// Event type constants
const (
	TypeGameStarted     = "game.started"
	TypeGameEnded       = "game.ended"
	TypeMoveApplied     = "move.applied"
	TypeMoveRejected    = "move.rejected"
	TypeMoveUndone      = "move.undone"
	TypeComputerMoved   = "computer.moved"
	TypeStateTransition = "state.transition"
)

// IsKnownType reports whether t names an event this package publishes.
func IsKnownType(t string) bool {
	switch t {
	case TypeGameStarted, TypeGameEnded, TypeMoveApplied, TypeMoveRejected,
		TypeMoveUndone, TypeComputerMoved, TypeStateTransition:
		return true
	}
	return false
}

// GameStartedEvent is published when a new game begins
type GameStartedEvent struct {
	BaseEvent
	Height int
	Width  int
	// Computer is the player the computer controls, or core.Empty when
	// both sides are human.
	Computer core.Cell
}

// NewGameStartedEvent creates a new GameStartedEvent
func NewGameStartedEvent(gameID string, height, width int, computer core.Cell) *GameStartedEvent {
	return &GameStartedEvent{
		BaseEvent: newBase(TypeGameStarted, gameID),
		Height:    height,
		Width:     width,
		Computer:  computer,
	}
}

// GameEndedEvent is published when a move decides the game
type GameEndedEvent struct {
	BaseEvent
	Status   core.Status
	Moves    int
	Duration time.Duration
}

// NewGameEndedEvent creates a new GameEndedEvent
func NewGameEndedEvent(gameID string, status core.Status, moves int, duration time.Duration) *GameEndedEvent {
	return &GameEndedEvent{
		BaseEvent: newBase(TypeGameEnded, gameID),
		Status:    status,
		Moves:     moves,
		Duration:  duration,
	}
}

// Winner returns the winning player, or core.Empty for a tie.
func (e *GameEndedEvent) Winner() core.Cell {
	return e.Status.Winner()
}

// MoveAppliedEvent is published after a piece is dropped
type MoveAppliedEvent struct {
	BaseEvent
	Move      core.Move
	MovesLeft int
	Status    core.Status
}

// NewMoveAppliedEvent creates a new MoveAppliedEvent
func NewMoveAppliedEvent(gameID string, move core.Move, movesLeft int, status core.Status) *MoveAppliedEvent {
	return &MoveAppliedEvent{
		BaseEvent: newBase(TypeMoveApplied, gameID),
		Move:      move,
		MovesLeft: movesLeft,
		Status:    status,
	}
}

// MoveRejectedEvent is published when a requested column cannot be played
type MoveRejectedEvent struct {
	BaseEvent
	Player core.Cell
	Column int
	Reason string
}

// NewMoveRejectedEvent creates a new MoveRejectedEvent
func NewMoveRejectedEvent(gameID string, player core.Cell, column int, reason string) *MoveRejectedEvent {
	return &MoveRejectedEvent{
		BaseEvent: newBase(TypeMoveRejected, gameID),
		Player:    player,
		Column:    column,
		Reason:    reason,
	}
}

// MoveUndoneEvent is published when the last move is taken back
type MoveUndoneEvent struct {
	BaseEvent
	Move core.Move
}

// NewMoveUndoneEvent creates a new MoveUndoneEvent
func NewMoveUndoneEvent(gameID string, move core.Move) *MoveUndoneEvent {
	return &MoveUndoneEvent{
		BaseEvent: newBase(TypeMoveUndone, gameID),
		Move:      move,
	}
}

// ComputerMovedEvent describes the search behind a computer move
type ComputerMovedEvent struct {
	BaseEvent
	Player  core.Cell
	Column  int
	Score   int
	Depth   int
	Nodes   int
	Elapsed time.Duration
}

// NewComputerMovedEvent creates a new ComputerMovedEvent
func NewComputerMovedEvent(gameID string, player core.Cell, column, score, depth, nodes int, elapsed time.Duration) *ComputerMovedEvent {
	return &ComputerMovedEvent{
		BaseEvent: newBase(TypeComputerMoved, gameID),
		Player:    player,
		Column:    column,
		Score:     score,
		Depth:     depth,
		Nodes:     nodes,
		Elapsed:   elapsed,
	}
}

// StateTransitionEvent is published when the session state machine transitions between phases
type StateTransitionEvent struct {
	BaseEvent
	FromPhase string
	ToPhase   string
	Reason    string
}

// NewStateTransitionEvent creates a new StateTransitionEvent
func NewStateTransitionEvent(gameID, fromPhase, toPhase, reason string) *StateTransitionEvent {
	return &StateTransitionEvent{
		BaseEvent: newBase(TypeStateTransition, gameID),
		FromPhase: fromPhase,
		ToPhase:   toPhase,
		Reason:    reason,
	}
}
