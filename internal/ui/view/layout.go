// Package view holds the screen geometry and text of the graphical client.
// It does not depend on ebiten so it can be tested headless.
package view

import "image"

// HeaderHeight is the band above the board used for the status line.
const HeaderHeight = 40

// Layout places a rows x cols board on a screen.
type Layout struct {
	CellSize int
	Rows     int
	Cols     int
	OffsetX  int
	OffsetY  int
}

// NewLayout centres the board horizontally below the header. The cell size
// shrinks when the board would not fit the screen.
func NewLayout(cellSize, rows, cols, screenW, screenH int) Layout {
	if rows <= 0 || cols <= 0 {
		return Layout{CellSize: cellSize}
	}
	if fit := screenW / cols; fit < cellSize {
		cellSize = fit
	}
	if fit := (screenH - HeaderHeight) / rows; fit < cellSize {
		cellSize = fit
	}
	if cellSize < 1 {
		cellSize = 1
	}

	offsetX := (screenW - cols*cellSize) / 2
	if offsetX < 0 {
		offsetX = 0
	}
	return Layout{
		CellSize: cellSize,
		Rows:     rows,
		Cols:     cols,
		OffsetX:  offsetX,
		OffsetY:  HeaderHeight,
	}
}

// Bounds is the screen rectangle covered by the board.
func (l Layout) Bounds() image.Rectangle {
	return image.Rect(l.OffsetX, l.OffsetY, l.OffsetX+l.Cols*l.CellSize, l.OffsetY+l.Rows*l.CellSize)
}

// CellRect is the screen rectangle of one cell.
func (l Layout) CellRect(row, col int) image.Rectangle {
	x := l.OffsetX + col*l.CellSize
	y := l.OffsetY + row*l.CellSize
	return image.Rect(x, y, x+l.CellSize, y+l.CellSize)
}

// ColumnAt returns the column under a screen point. Points in the header
// above a column count, so a piece can be dropped from above the board.
func (l Layout) ColumnAt(x, y int) (int, bool) {
	b := l.Bounds()
	if x < b.Min.X || x >= b.Max.X || y < 0 || y >= b.Max.Y {
		return 0, false
	}
	return (x - l.OffsetX) / l.CellSize, true
}
