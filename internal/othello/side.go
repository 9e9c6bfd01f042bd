package othello

import (
	"fmt"
	"strings"
)

// Side is one of the two competing colors.
type Side int

const (
	Black Side = iota
	White
)

// ParseSide parses a side name, ignoring case.
func ParseSide(name string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "black":
		return Black, nil
	case "white":
		return White, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidSide, name)
	}
}

// Opponent returns the other side.
func (s Side) Opponent() Side {
	return Black + White - s
}

// Cell returns the cell value holding a disc of this side.
func (s Side) Cell() Cell {
	if s == White {
		return CellWhite
	}
	return CellBlack
}

func (s Side) String() string {
	if s == White {
		return "white"
	}
	return "black"
}

// MarshalText implements encoding.TextMarshaler.
func (s Side) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Side) UnmarshalText(text []byte) error {
	side, err := ParseSide(string(text))
	if err != nil {
		return err
	}
	*s = side
	return nil
}

// Cell is the content of a single square.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellBlack
	CellWhite
)

// Glyph returns the notation character of the cell.
func (c Cell) Glyph() byte {
	switch c {
	case CellBlack:
		return 'X'
	case CellWhite:
		return 'O'
	default:
		return '.'
	}
}

func cellFromGlyph(glyph rune) (Cell, bool) {
	switch glyph {
	case '.':
		return CellEmpty, true
	case 'X', 'x':
		return CellBlack, true
	case 'O', 'o':
		return CellWhite, true
	default:
		return CellEmpty, false
	}
}
