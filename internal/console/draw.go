package console

import (
	"fmt"
	"strings"

	"github.com/lk16/othello/internal/othello"
	"github.com/muesli/termenv"
)

// glyph returns the styled notation character of a cell.
func (c *Console) glyph(cell othello.Cell) string {
	style := c.out.String(string(cell.Glyph()))

	switch cell {
	case othello.CellBlack:
		return style.Foreground(termenv.ANSIBrightRed).Bold().String()
	case othello.CellWhite:
		return style.Foreground(termenv.ANSIBrightWhite).Bold().String()
	default:
		return style.Faint().String()
	}
}

func (c *Console) boardLines(board othello.Board) []string {
	lines := make([]string, 0, othello.Size+1)

	header := make([]string, othello.Size)
	for col := range othello.Size {
		header[col] = fmt.Sprintf("%d", col+1)
	}
	lines = append(lines, "  "+strings.Join(header, " "))

	for row := 1; row <= othello.Size; row++ {
		glyphs := make([]string, othello.Size)
		for col := 1; col <= othello.Size; col++ {
			cell, _ := board.At(othello.Square{Row: row, Col: col})
			glyphs[col-1] = c.glyph(cell)
		}
		lines = append(lines, fmt.Sprintf("%d %s", row, strings.Join(glyphs, " ")))
	}

	return lines
}
