package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alejandro-mc/connect4/internal/game/core"
)

// DefaultSymbols are drawn for empty cells, player 1 and player 2.
var DefaultSymbols = [3]string{"-", "X", "O"}

// SymbolsFrom converts a configured symbol list, falling back to the
// defaults when it does not have exactly three entries.
func SymbolsFrom(list []string) [3]string {
	if len(list) != 3 {
		return DefaultSymbols
	}
	return [3]string{list[0], list[1], list[2]}
}

// RenderBoard writes the 1-based column header followed by one line per
// row, top row first.
func RenderBoard(w io.Writer, grid [][]core.Cell, symbols [3]string) error {
	if len(grid) == 0 {
		return nil
	}
	width := len(strconv.Itoa(len(grid[0])))
	for _, s := range symbols {
		if len(s) > width {
			width = len(s)
		}
	}

	var sb strings.Builder
	cells := make([]string, len(grid[0]))
	for c := range cells {
		cells[c] = pad(strconv.Itoa(c+1), width)
	}
	sb.WriteString(strings.TrimRight(strings.Join(cells, " "), " "))
	sb.WriteString("\n")

	for _, row := range grid {
		for c, cell := range row {
			cells[c] = pad(symbols[cell], width)
		}
		sb.WriteString(strings.TrimRight(strings.Join(cells, " "), " "))
		sb.WriteString("\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func pad(s string, width int) string {
	return fmt.Sprintf("%-*s", width, s)
}

// ResultMessage describes how a finished game ended.
func ResultMessage(st core.Status) string {
	switch st {
	case core.Player1Wins:
		return "Player 1 wins!!"
	case core.Player2Wins:
		return "Player 2 wins!!"
	case core.Tied:
		return "It's a tie!!"
	default:
		return ""
	}
}
