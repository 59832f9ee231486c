package view

import (
	"fmt"

	"github.com/alejandro-mc/connect4/internal/game/core"
	"github.com/alejandro-mc/connect4/internal/game/states"
	"github.com/alejandro-mc/connect4/internal/session"
)

// StatusLine describes what the session is waiting for.
func StatusLine(s *session.Session) string {
	if !s.Phase().HasGame() {
		return "Press N to start a new game"
	}
	gs := s.Game()

	switch s.Phase() {
	case states.PhaseFinished:
		switch gs.Status() {
		case core.Tied:
			return "It's a tie! N: new game, U: undo"
		default:
			return fmt.Sprintf("Player %d wins! N: new game, U: undo", gs.Status().Winner())
		}
	case states.PhasePlaying:
		if s.IsComputerTurn() {
			return "Your computer is playing..."
		}
		return fmt.Sprintf("Player %d to move (U: undo, N: new game)", gs.CurrentPlayer())
	default:
		return "Game suspended. Press N for a new game"
	}
}
