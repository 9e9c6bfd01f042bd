package othello

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	Size    = 8
	Squares = Size * Size
)

// directions holds the row and column steps of the eight compass directions.
var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Square is a 1-indexed board coordinate.
type Square struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (s Square) String() string {
	return fmt.Sprintf("(%d, %d)", s.Row, s.Col)
}

// IsOnBoard reports whether both coordinates lie within 1..8.
func IsOnBoard(row, col int) bool {
	return row >= 1 && row <= Size && col >= 1 && col <= Size
}

// Board represents the 8x8 grid of an Othello game.
type Board struct {
	cells [Size][Size]Cell
}

// NewBoardStart creates a board with the four center discs.
func NewBoardStart() Board {
	var b Board
	b.set(4, 4, CellWhite)
	b.set(5, 5, CellWhite)
	b.set(4, 5, CellBlack)
	b.set(5, 4, CellBlack)
	return b
}

// NewBoardEmpty creates a board without any discs.
func NewBoardEmpty() Board {
	return Board{}
}

// NewBoardFromString parses the 64 character notation produced by String.
// Whitespace is ignored, so boards can be written as eight lines.
func NewBoardFromString(s string) (Board, error) {
	var b Board

	i := 0
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}

		if i >= Squares {
			return Board{}, fmt.Errorf("%w: more than %d squares", ErrInvalidNotation, Squares)
		}

		cell, ok := cellFromGlyph(r)
		if !ok {
			return Board{}, fmt.Errorf("%w: unexpected character %q", ErrInvalidNotation, r)
		}

		b.cells[i/Size][i%Size] = cell
		i++
	}

	if i != Squares {
		return Board{}, fmt.Errorf("%w: expected %d squares, got %d", ErrInvalidNotation, Squares, i)
	}

	return b, nil
}

// NewBoardFromStringMust is like NewBoardFromString but panics on invalid input.
func NewBoardFromStringMust(s string) Board {
	b, err := NewBoardFromString(s)
	if err != nil {
		panic(err)
	}
	return b
}

func (b Board) get(row, col int) Cell {
	return b.cells[row-1][col-1]
}

func (b *Board) set(row, col int, cell Cell) {
	b.cells[row-1][col-1] = cell
}

// At returns the cell at a square.
func (b Board) At(sq Square) (Cell, error) {
	if !IsOnBoard(sq.Row, sq.Col) {
		return CellEmpty, fmt.Errorf("%w: %s", ErrOffBoard, sq)
	}
	return b.get(sq.Row, sq.Col), nil
}

// bracketed returns the opponent discs between sq and the closest own disc
// in one direction, or nil when no own disc closes the run.
func (b Board) bracketed(side Side, sq Square, dRow, dCol int) []Square {
	own := side.Cell()
	opp := side.Opponent().Cell()

	var run []Square

	row, col := sq.Row+dRow, sq.Col+dCol
	for IsOnBoard(row, col) && b.get(row, col) == opp {
		run = append(run, Square{Row: row, Col: col})
		row += dRow
		col += dCol
	}

	if len(run) == 0 || !IsOnBoard(row, col) || b.get(row, col) != own {
		return nil
	}

	return run
}

// IsLegalMove reports whether side may place a disc on sq.
func (b Board) IsLegalMove(side Side, sq Square) bool {
	if !IsOnBoard(sq.Row, sq.Col) || b.get(sq.Row, sq.Col) != CellEmpty {
		return false
	}

	for _, dir := range directions {
		if len(b.bracketed(side, sq, dir[0], dir[1])) > 0 {
			return true
		}
	}

	return false
}

// Flips returns every disc that a move by side on sq would flip.
// The result is empty for illegal moves.
func (b Board) Flips(side Side, sq Square) []Square {
	if !IsOnBoard(sq.Row, sq.Col) || b.get(sq.Row, sq.Col) != CellEmpty {
		return nil
	}

	var flips []Square
	for _, dir := range directions {
		flips = append(flips, b.bracketed(side, sq, dir[0], dir[1])...)
	}

	return flips
}

// AvailablePositions returns the legal moves for side in row-major order.
func (b Board) AvailablePositions(side Side) []Square {
	positions := make([]Square, 0)

	for row := 1; row <= Size; row++ {
		for col := 1; col <= Size; col++ {
			sq := Square{Row: row, Col: col}
			if b.IsLegalMove(side, sq) {
				positions = append(positions, sq)
			}
		}
	}

	return positions
}

// HasMoves reports whether side has at least one legal move.
func (b Board) HasMoves(side Side) bool {
	for row := 1; row <= Size; row++ {
		for col := 1; col <= Size; col++ {
			if b.IsLegalMove(side, Square{Row: row, Col: col}) {
				return true
			}
		}
	}
	return false
}

// IsGameOver reports whether neither side can move.
func (b Board) IsGameOver() bool {
	return !b.HasMoves(Black) && !b.HasMoves(White)
}

// ApplyMove places a disc for side on sq and flips all bracketed discs.
// It returns the flipped squares. An illegal move leaves the board untouched.
func (b *Board) ApplyMove(side Side, sq Square) ([]Square, error) {
	// Runs are collected on the unmodified board before anything is flipped.
	flips := b.Flips(side, sq)
	if len(flips) == 0 {
		return nil, fmt.Errorf("%w: %s for %s", ErrIllegalMove, sq, side)
	}

	own := side.Cell()
	b.set(sq.Row, sq.Col, own)
	for _, f := range flips {
		b.set(f.Row, f.Col, own)
	}

	return flips, nil
}

// Count returns the number of squares holding cell.
func (b Board) Count(cell Cell) int {
	count := 0
	for _, row := range b.cells {
		for _, c := range row {
			if c == cell {
				count++
			}
		}
	}
	return count
}

// Score returns the disc counts of white and black.
func (b Board) Score() (int, int) {
	return b.Count(CellWhite), b.Count(CellBlack)
}

// Winner compares the disc counts and names the winning player.
func (b Board) Winner(players *Players) Outcome {
	white, black := b.Score()

	outcome := Outcome{White: white, Black: black}

	switch {
	case white > black:
		outcome.Result = WhiteWins
		outcome.Winner = players.nameOf(White)
	case black > white:
		outcome.Result = BlackWins
		outcome.Winner = players.nameOf(Black)
	default:
		outcome.Result = Draw
	}

	return outcome
}

// ASCIIArtLines returns the board labeled 1-8 on both axes.
func (b Board) ASCIIArtLines() []string {
	lines := make([]string, 0, Size+1)

	header := make([]string, Size)
	for col := range Size {
		header[col] = fmt.Sprintf("%d", col+1)
	}
	lines = append(lines, "  "+strings.Join(header, " "))

	for row := range Size {
		glyphs := make([]string, Size)
		for col := range Size {
			glyphs[col] = string(b.cells[row][col].Glyph())
		}
		lines = append(lines, fmt.Sprintf("%d %s", row+1, strings.Join(glyphs, " ")))
	}

	return lines
}

// Print prints the board to the console. This is used for debugging.
func (b Board) Print() {
	for _, line := range b.ASCIIArtLines() {
		fmt.Println(line)
	}
}

// String returns the 64 character row-major notation of the board.
func (b Board) String() string {
	var sb strings.Builder
	sb.Grow(Squares)

	for _, row := range b.cells {
		for _, c := range row {
			sb.WriteByte(c.Glyph())
		}
	}

	return sb.String()
}
