package ui

import (
	"context"
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"golang.org/x/image/font/basicfont"

	"github.com/alejandro-mc/connect4/internal/config"
	"github.com/alejandro-mc/connect4/internal/game/core"
	"github.com/alejandro-mc/connect4/internal/session"
	"github.com/alejandro-mc/connect4/internal/ui/input"
	"github.com/alejandro-mc/connect4/internal/ui/renderer"
	"github.com/alejandro-mc/connect4/internal/ui/view"
)

// UIGame adapts a session to ebiten's game loop.
type UIGame struct {
	sess          *session.Session
	boardRenderer *renderer.BoardRenderer
	inputHandler  *input.Handler
	logger        zerolog.Logger

	screenWidth   int
	screenHeight  int
	cellSize      int
	computerDelay int // Frames to wait before the computer moves

	timer   int
	message string
}

// NewUIGame creates a new Ebitengine game instance and starts the first game.
func NewUIGame(sess *session.Session, cfg *config.Config, logger zerolog.Logger) (*UIGame, error) {
	g := &UIGame{
		sess:          sess,
		boardRenderer: renderer.NewBoardRenderer(view.NewPalette(cfg.Colors), basicfont.Face7x13),
		inputHandler:  input.NewHandler(),
		logger:        logger.With().Str("component", "UIGame").Logger(),
		screenWidth:   cfg.UI.Window.Width,
		screenHeight:  cfg.UI.Window.Height,
		cellSize:      cfg.UI.Game.CellSize,
		computerDelay: cfg.UI.Game.ComputerDelay,
	}

	if err := sess.NewGame(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *UIGame) layout() view.Layout {
	opts := g.sess.Options()
	if gs := g.sess.Game(); gs != nil {
		return view.NewLayout(g.cellSize, gs.Height(), gs.Width(), g.screenWidth, g.screenHeight)
	}
	return view.NewLayout(g.cellSize, opts.Height, opts.Width, g.screenWidth, g.screenHeight)
}

// Update proceeds the game state.
func (g *UIGame) Update() error {
	g.inputHandler.SetLayout(g.layout())
	g.inputHandler.Update()

	if g.inputHandler.TakeNewGame() {
		g.timer = 0
		g.message = ""
		return g.sess.NewGame()
	}

	if g.inputHandler.TakeUndo() {
		g.timer = 0
		if _, err := g.sess.Undo(); err != nil {
			g.report(err)
		}
	}

	if !g.sess.Phase().CanReceiveMoves() {
		g.inputHandler.ClearClick()
		return nil
	}

	if g.sess.IsComputerTurn() {
		g.inputHandler.ClearClick()
		g.timer++
		if g.timer < g.computerDelay {
			return nil
		}
		g.timer = 0
		_, err := g.sess.ComputerMove(context.Background())
		return err
	}

	if col, ok := g.inputHandler.TakeClick(); ok {
		g.message = ""
		if err := g.sess.Play(col); err != nil {
			g.report(err)
		}
	}
	return nil
}

// report shows a rejected player action in the status line.
func (g *UIGame) report(err error) {
	var moveErr *core.MoveError
	switch {
	case errors.As(err, &moveErr):
		g.message = moveErr.Reason
	case errors.Is(err, core.ErrNoHistory):
		g.message = "no moves to undo"
	default:
		g.message = err.Error()
	}
	g.logger.Debug().Err(err).Msg("Action rejected")
}

// Draw renders the game screen.
func (g *UIGame) Draw(screen *ebiten.Image) {
	screen.Fill(renderer.BackgroundColor)

	status := view.StatusLine(g.sess)
	if g.message != "" {
		status = g.message + " - " + status
	}
	g.boardRenderer.DrawStatus(screen, status, g.screenWidth)

	if !g.sess.Phase().HasGame() {
		return
	}
	gs := g.sess.Game()
	hoverCol, hover := g.inputHandler.HoveredColumn()
	last, hasLast := gs.LastMove()
	g.boardRenderer.Draw(screen, gs.Snapshot(), g.layout(), hoverCol, hover && gs.IsLegal(hoverCol), last, hasLast)
}

// Layout defines the Ebitengine screen size.
func (g *UIGame) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.screenWidth, g.screenHeight
}
