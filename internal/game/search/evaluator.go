package search

import "github.com/alejandro-mc/connect4/internal/game/core"

// Window sums that carry a score. A cell contributes its value cubed, so
// Empty=0, Player1=1 and Player2=8, and each sum below has exactly one
// composition: three pieces of one player plus an empty cell.
const (
	player2Sum = 24 // +1
	player1Sum = 3  // -1
)

// StaticEval scores every run of WinLength cells that fits on the board in
// all four orientations by the cube sum of its cells. Windows summing to 24
// score +1, windows summing to 3 score -1, everything else 0. A full line of
// four (sum 32 or 4) scores 0.
func StaticEval(s State) int {
	h, w := s.Height(), s.Width()
	score := 0

	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			origin := core.Position{Row: row, Col: col}
			for _, d := range core.Axes {
				if !origin.Step(d, core.WinLength-1).IsValid(h, w) {
					continue
				}
				score += windowScore(s, origin, d)
			}
		}
	}
	return score
}

func windowScore(s State, origin core.Position, d core.Direction) int {
	sum := 0
	for i := 0; i < core.WinLength; i++ {
		p := origin.Step(d, i)
		sum += cube(s.Cell(p.Row, p.Col))
	}

	switch sum {
	case player2Sum:
		return 1
	case player1Sum:
		return -1
	default:
		return 0
	}
}

func cube(c core.Cell) int {
	v := int(c)
	return v * v * v
}
