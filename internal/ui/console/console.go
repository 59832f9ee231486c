// Package console plays games over a line-oriented text interface.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/alejandro-mc/connect4/internal/config"
	"github.com/alejandro-mc/connect4/internal/game/core"
	"github.com/alejandro-mc/connect4/internal/game/events"
	"github.com/alejandro-mc/connect4/internal/game/states"
	"github.com/alejandro-mc/connect4/internal/session"
)

// Main menu options
const (
	optNewGame    = 1
	optQuit       = 2
	optPlayerMode = 3
	optBoardSize  = 4
	optResume     = 5
)

// errInputClosed ends the menu loop when the reader runs dry.
var errInputClosed = errors.New("input closed")

type inputLine struct {
	text string
	err  error
}

// Console drives a session from text commands.
type Console struct {
	sess    *session.Session
	in      *bufio.Scanner
	out     io.Writer
	symbols [3]string
	logger  zerolog.Logger

	startReader sync.Once
	lines       chan inputLine
}

// New creates a console reading commands from in and writing to out. The
// computer's moves are announced from the computer.moved events on bus,
// which must be the bus the session publishes to.
func New(sess *session.Session, bus events.Bus, in io.Reader, out io.Writer, symbols [3]string, logger zerolog.Logger) *Console {
	c := &Console{
		sess:    sess,
		in:      bufio.NewScanner(in),
		out:     out,
		symbols: symbols,
		logger:  logger.With().Str("component", "Console").Logger(),
		lines:   make(chan inputLine),
	}
	bus.SubscribeFunc(events.TypeComputerMoved, c.announceComputerMove)
	return c
}

func (c *Console) announceComputerMove(e events.Event) {
	if moved, ok := e.(*events.ComputerMovedEvent); ok {
		c.printf("Computer plays column %d\n", moved.Column+1)
	}
}

// Run shows the main menu until the player quits, input ends, or ctx is
// cancelled. Cancellation returns ctx.Err().
func (c *Console) Run(ctx context.Context) error {
	c.println("######### CONNECT-4 ##############")
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		opt, err := c.readMenu(ctx)
		if err != nil {
			if errors.Is(err, errInputClosed) {
				return nil
			}
			return err
		}

		switch opt {
		case optNewGame:
			if err := c.sess.NewGame(); err != nil {
				return err
			}
			err = c.play(ctx)
		case optQuit:
			c.println("Goodbye!!")
			return nil
		case optPlayerMode:
			err = c.setPlayerMode(ctx)
		case optBoardSize:
			err = c.setBoardSize(ctx)
		case optResume:
			if err := c.sess.Resume(); err != nil {
				return err
			}
			err = c.play(ctx)
		}

		if errors.Is(err, errInputClosed) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (c *Console) readMenu(ctx context.Context) (int, error) {
	c.println("######### MAIN MENU ##############")
	c.println("1 New Game")
	c.println("2 Quit")
	c.println("3 Player Mode")
	c.println("4 Board Size")
	options := []int{optNewGame, optQuit, optPlayerMode, optBoardSize}
	if c.sess.CanResume() {
		c.println("5 Resume")
		options = append(options, optResume)
	}

	for {
		n, ok, err := c.readInt(ctx, "Please select an option: ")
		if err != nil {
			return 0, err
		}
		if !ok {
			c.println("Option must be an integer.")
			continue
		}
		if contains(options, n) {
			return n, nil
		}
		c.println("The selected option is not available.")
	}
}

// play runs the current game until it ends or the player returns to the menu.
func (c *Console) play(ctx context.Context) error {
	for c.sess.Phase() == states.PhasePlaying {
		if err := ctx.Err(); err != nil {
			return err
		}
		if c.sess.IsComputerTurn() {
			c.println("Your computer is playing!!")
			if _, err := c.sess.ComputerMove(ctx); err != nil {
				return err
			}
			continue
		}

		done, err := c.readMove(ctx)
		if err != nil || done {
			return err
		}
	}

	gs := c.sess.Game()
	c.println(ResultMessage(gs.Status()))
	if err := RenderBoard(c.out, gs.Snapshot(), c.symbols); err != nil {
		return err
	}
	return c.sess.Suspend()
}

// readMove prompts until the player makes a move, undoes, or leaves. done
// reports a return to the main menu.
func (c *Console) readMove(ctx context.Context) (done bool, err error) {
	gs := c.sess.Game()
	c.println("######### Board View ############")
	if err := RenderBoard(c.out, gs.Snapshot(), c.symbols); err != nil {
		return false, err
	}

	for {
		c.println("Enter column number, u to undo or 0 to return to main menu.")
		line, err := c.readLine(ctx, fmt.Sprintf("Player %d >> ", gs.CurrentPlayer()))
		if err != nil {
			return false, err
		}

		if strings.EqualFold(line, "u") {
			if _, err := c.sess.Undo(); err != nil {
				if errors.Is(err, core.ErrNoHistory) {
					c.println("There is no move to undo.")
					continue
				}
				return false, err
			}
			return false, nil
		}

		n, err := strconv.Atoi(line)
		if err != nil {
			c.println("Option must be an integer.")
			continue
		}
		if n == 0 {
			return true, c.sess.Suspend()
		}
		if !gs.IsLegal(n - 1) {
			c.println("The selected move is not available.")
			continue
		}
		return false, c.sess.Play(n - 1)
	}
}

func (c *Console) setPlayerMode(ctx context.Context) error {
	c.println("########## Player Mode ###########")
	c.println("1 Single Player")
	c.println("2 Two Players")
	c.println("3 Return to Main Menu")

	for {
		n, ok, err := c.readInt(ctx, "Please enter an option: ")
		if err != nil {
			return err
		}
		if !ok {
			c.println("Option must be an integer!!")
			continue
		}
		switch n {
		case 1:
			return c.sess.SetMode(config.ModeSingle)
		case 2:
			return c.sess.SetMode(config.ModeMulti)
		case 3:
			return nil
		default:
			c.println("This option is not available.")
		}
	}
}

func (c *Console) setBoardSize(ctx context.Context) error {
	opts := c.sess.Options()

	height, ok, err := c.readDimension(ctx, "height", opts.MinDim)
	if err != nil || !ok {
		return err
	}
	width, ok, err := c.readDimension(ctx, "width", opts.MinDim)
	if err != nil || !ok {
		return err
	}

	if err := c.sess.SetBoardSize(height, width); err != nil {
		return err
	}
	c.printf("Board size set to %dx%d\n", height, width)
	return nil
}

// readDimension asks for one side of the board. Anything that is not a
// number returns to the main menu with ok false.
func (c *Console) readDimension(ctx context.Context, name string, minDim int) (n int, ok bool, err error) {
	for {
		n, ok, err = c.readInt(ctx, fmt.Sprintf("Enter new board %s or r to return to main menu: ", name))
		if err != nil {
			return 0, false, err
		}
		if !ok {
			opts := c.sess.Options()
			c.println("Returning to main menu.")
			c.printf("Current board size is %dx%d\n", opts.Height, opts.Width)
			return 0, false, nil
		}
		if n < minDim {
			c.printf("%s cannot be less than %d.\n", strings.ToUpper(name[:1])+name[1:], minDim)
			continue
		}
		return n, true, nil
	}
}

// readLine prompts and waits for the next line of input or for ctx to be
// cancelled, whichever comes first.
func (c *Console) readLine(ctx context.Context, prompt string) (string, error) {
	c.startReader.Do(func() { go c.scan() })

	fmt.Fprint(c.out, prompt)
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l, ok := <-c.lines:
		if !ok {
			return "", errInputClosed
		}
		if l.err != nil {
			return "", l.err
		}
		return l.text, nil
	}
}

// scan feeds input lines to readLine. A blocked read cannot be interrupted,
// so after cancellation the goroutine stays parked until the reader returns.
func (c *Console) scan() {
	defer close(c.lines)
	for c.in.Scan() {
		c.lines <- inputLine{text: strings.TrimSpace(c.in.Text())}
	}
	if err := c.in.Err(); err != nil {
		c.lines <- inputLine{err: fmt.Errorf("reading input: %w", err)}
		return
	}
	c.logger.Debug().Msg("Input closed")
}

// readInt reads one line as a number. ok is false when the line is not a
// number; err is only set when input fails.
func (c *Console) readInt(ctx context.Context, prompt string) (n int, ok bool, err error) {
	line, err := c.readLine(ctx, prompt)
	if err != nil {
		return 0, false, err
	}
	n, convErr := strconv.Atoi(line)
	return n, convErr == nil, nil
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}

func (c *Console) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format, args...)
}

func contains(list []int, n int) bool {
	for _, v := range list {
		if v == n {
			return true
		}
	}
	return false
}
