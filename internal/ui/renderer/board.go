package renderer

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"github.com/alejandro-mc/connect4/internal/game/core"
	"github.com/alejandro-mc/connect4/internal/ui/view"
)

var (
	BackgroundColor = color.RGBA{40, 40, 40, 255}
	TextColor       = color.White
)

// discRatio is the disc diameter relative to the cell size.
const discRatio = 0.8

type BoardRenderer struct {
	palette     view.Palette
	defaultFont font.Face
}

// NewBoardRenderer returns a renderer ready to use.
func NewBoardRenderer(palette view.Palette, f font.Face) *BoardRenderer {
	return &BoardRenderer{palette: palette, defaultFont: f}
}

// Draw renders the grid on the supplied Ebiten screen. hoverCol is
// outlined when hover is set; last marks the most recent move.
func (br *BoardRenderer) Draw(screen *ebiten.Image, grid [][]core.Cell, l view.Layout, hoverCol int, hover bool, last core.Move, hasLast bool) {
	if len(grid) == 0 {
		return
	}

	b := l.Bounds()
	vector.DrawFilledRect(screen, float32(b.Min.X), float32(b.Min.Y),
		float32(b.Dx()), float32(b.Dy()), br.palette.Board, false)

	radius := float32(l.CellSize) * discRatio / 2
	for row, cells := range grid {
		for col, cell := range cells {
			r := l.CellRect(row, col)
			cx := float32(r.Min.X) + float32(l.CellSize)/2
			cy := float32(r.Min.Y) + float32(l.CellSize)/2
			vector.DrawFilledCircle(screen, cx, cy, radius, br.palette.Cell(cell), true)

			if hasLast && last.Row == row && last.Col == col {
				vector.StrokeCircle(screen, cx, cy, radius, 3, br.palette.Highlight, true)
			}
		}
	}

	if hover && hoverCol >= 0 && hoverCol < l.Cols {
		top := l.CellRect(0, hoverCol)
		vector.StrokeRect(screen, float32(top.Min.X), float32(top.Min.Y),
			float32(l.CellSize), float32(l.Rows*l.CellSize), 2, br.palette.Highlight, false)
	}
}

// DrawStatus writes msg centred in the header band.
func (br *BoardRenderer) DrawStatus(screen *ebiten.Image, msg string, screenWidth int) {
	if br.defaultFont == nil || msg == "" {
		return
	}
	bounds := text.BoundString(br.defaultFont, msg)
	x := (screenWidth - bounds.Dx()) / 2
	y := (view.HeaderHeight + bounds.Dy()) / 2
	text.Draw(screen, msg, br.defaultFont, x, y, TextColor)
}
