package view

import (
	"image/color"

	"github.com/alejandro-mc/connect4/internal/config"
	"github.com/alejandro-mc/connect4/internal/game/core"
)

// Palette holds the colours the board is drawn with.
type Palette struct {
	Board     color.RGBA
	Empty     color.RGBA
	Player1   color.RGBA
	Player2   color.RGBA
	Highlight color.RGBA
}

// NewPalette converts configured RGB triples into opaque colours.
func NewPalette(c config.ColorsConfig) Palette {
	return Palette{
		Board:     rgb(c.Board),
		Empty:     rgb(c.Empty),
		Player1:   rgb(c.Player1),
		Player2:   rgb(c.Player2),
		Highlight: rgb(c.Highlight),
	}
}

// Cell returns the disc colour for a cell.
func (p Palette) Cell(c core.Cell) color.RGBA {
	switch c {
	case core.Player1:
		return p.Player1
	case core.Player2:
		return p.Player2
	default:
		return p.Empty
	}
}

func rgb(v [3]int) color.RGBA {
	return color.RGBA{R: uint8(v[0]), G: uint8(v[1]), B: uint8(v[2]), A: 255}
}
