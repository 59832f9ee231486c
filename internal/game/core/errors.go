package core

import (
	"errors"
	"fmt"
)

var (
	ErrIllegalMove       = errors.New("illegal move")
	ErrNoHistory         = errors.New("no moves to undo")
	ErrInvalidDimensions = errors.New("invalid board dimensions")
	ErrInvalidPosition   = errors.New("invalid board position")
)

// Reasons attached to a rejected move.
const (
	ReasonGameOver   = "game is over"
	ReasonOutOfRange = "column out of range"
	ReasonColumnFull = "column is full"
)

// MoveError describes why a drop into a column was rejected.
type MoveError struct {
	Column int
	Reason string
	Err    error
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("column %d: %s: %v", e.Column, e.Reason, e.Err)
}

func (e *MoveError) Unwrap() error { return e.Err }

// WrapMoveError attaches the column and reason to err. A nil err stays nil.
func WrapMoveError(col int, reason string, err error) error {
	if err == nil {
		return nil
	}
	return &MoveError{Column: col, Reason: reason, Err: err}
}
