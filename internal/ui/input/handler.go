package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/alejandro-mc/connect4/internal/ui/view"
)

// Handler turns mouse and keyboard input into column drops and commands.
// Commands are latched until taken so a frame that cannot act on them does
// not lose them.
type Handler struct {
	mouseX, mouseY int
	layout         view.Layout

	clickedCol int
	clicked    bool
	undo       bool
	newGame    bool
}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) SetLayout(l view.Layout) {
	h.layout = l
}

// Update polls ebiten for this frame's input.
func (h *Handler) Update() {
	h.mouseX, h.mouseY = GetCursorPosition()

	if IsLeftClickJustPressed() {
		h.handleLeftClick(h.mouseX, h.mouseY)
	}
	h.handleKeys(
		inpututil.IsKeyJustPressed(ebiten.KeyU) || inpututil.IsKeyJustPressed(ebiten.KeyBackspace),
		inpututil.IsKeyJustPressed(ebiten.KeyN),
	)
}

func (h *Handler) handleLeftClick(x, y int) {
	if col, ok := h.layout.ColumnAt(x, y); ok {
		h.clickedCol, h.clicked = col, true
	}
}

func (h *Handler) handleKeys(undo, newGame bool) {
	h.undo = h.undo || undo
	h.newGame = h.newGame || newGame
}

// HoveredColumn returns the column under the cursor.
func (h *Handler) HoveredColumn() (int, bool) {
	return h.layout.ColumnAt(h.mouseX, h.mouseY)
}

// TakeClick returns and clears the last clicked column.
func (h *Handler) TakeClick() (int, bool) {
	col, ok := h.clickedCol, h.clicked
	h.clicked = false
	return col, ok
}

// TakeUndo returns and clears a pending undo request.
func (h *Handler) TakeUndo() bool {
	u := h.undo
	h.undo = false
	return u
}

// TakeNewGame returns and clears a pending new game request.
func (h *Handler) TakeNewGame() bool {
	n := h.newGame
	h.newGame = false
	return n
}

// ClearClick drops a click made while no move could be played.
func (h *Handler) ClearClick() {
	h.clicked = false
}
