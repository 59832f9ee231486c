package states

import "fmt"

// GamePhase represents where a session is between games
type GamePhase int

const (
	// PhaseMenu - No game in progress
	PhaseMenu GamePhase = iota

	// PhasePlaying - A game is accepting moves
	PhasePlaying

	// PhaseSuspended - Back at the menu with a game that can be resumed
	PhaseSuspended

	// PhaseFinished - The last move decided the game
	PhaseFinished
)

// String returns the string representation of a GamePhase
func (p GamePhase) String() string {
	switch p {
	case PhaseMenu:
		return "Menu"
	case PhasePlaying:
		return "Playing"
	case PhaseSuspended:
		return "Suspended"
	case PhaseFinished:
		return "Finished"
	default:
		return fmt.Sprintf("Unknown(%d)", p)
	}
}

// CanReceiveMoves returns true if moves may be played in this phase
func (p GamePhase) CanReceiveMoves() bool {
	return p == PhasePlaying
}

// HasGame returns true if a board exists that can be shown or resumed
func (p GamePhase) HasGame() bool {
	return p != PhaseMenu
}

// AllowedTransitions returns the valid phases this phase can transition to.
// Finished returns to Playing when the deciding move is undone or a new
// game starts.
func (p GamePhase) AllowedTransitions() []GamePhase {
	switch p {
	case PhaseMenu:
		return []GamePhase{PhasePlaying}
	case PhasePlaying:
		return []GamePhase{PhaseSuspended, PhaseFinished}
	case PhaseSuspended:
		return []GamePhase{PhasePlaying, PhaseMenu}
	case PhaseFinished:
		return []GamePhase{PhasePlaying, PhaseMenu}
	default:
		return []GamePhase{}
	}
}

// CanTransitionTo checks if a transition from this phase to the target phase is allowed
func (p GamePhase) CanTransitionTo(target GamePhase) bool {
	for _, phase := range p.AllowedTransitions() {
		if phase == target {
			return true
		}
	}
	return false
}
