package models

import (
	"errors"
	"fmt"

	"github.com/lk16/othello/internal/othello"
)

var ErrMissingField = errors.New("missing field")

// MovesPayload asks for the legal moves of a side.
type MovesPayload struct {
	Board string        `json:"board"`
	Side  *othello.Side `json:"side"`
}

// Validate parses the board and checks the side is present.
func (p *MovesPayload) Validate() (othello.Board, othello.Side, error) {
	return parseBoardAndSide(p.Board, p.Side)
}

// MovesResponse lists the legal moves in row-major order.
type MovesResponse struct {
	Side  othello.Side     `json:"side"`
	Moves []othello.Square `json:"moves"`
	Count int              `json:"count"`
}

// ApplyMovePayload asks to play a move on a board.
type ApplyMovePayload struct {
	Board string        `json:"board"`
	Side  *othello.Side `json:"side"`
	Row   int           `json:"row"`
	Col   int           `json:"col"`
}

// Validate parses the board and checks the side and square.
func (p *ApplyMovePayload) Validate() (othello.Board, othello.Side, othello.Square, error) {
	board, side, err := parseBoardAndSide(p.Board, p.Side)
	if err != nil {
		return othello.Board{}, 0, othello.Square{}, err
	}

	if !othello.IsOnBoard(p.Row, p.Col) {
		return othello.Board{}, 0, othello.Square{}, fmt.Errorf("%w: (%d, %d)", othello.ErrOffBoard, p.Row, p.Col)
	}

	return board, side, othello.Square{Row: p.Row, Col: p.Col}, nil
}

// ApplyMoveResponse holds the board after the move.
type ApplyMoveResponse struct {
	Board   string           `json:"board"`
	Flipped []othello.Square `json:"flipped"`
	Score   ScoreResponse    `json:"score"`
}

// ScorePayload asks for the disc counts of a board.
type ScorePayload struct {
	Board string `json:"board"`
}

// Validate parses the board.
func (p *ScorePayload) Validate() (othello.Board, error) {
	if p.Board == "" {
		return othello.Board{}, fmt.Errorf("%w: board", ErrMissingField)
	}
	return othello.NewBoardFromString(p.Board)
}

// ScoreResponse holds disc counts and the result if the game ended now.
type ScoreResponse struct {
	White    int            `json:"white"`
	Black    int            `json:"black"`
	Empty    int            `json:"empty"`
	Result   othello.Result `json:"result"`
	GameOver bool           `json:"game_over"`
}

func parseBoardAndSide(notation string, side *othello.Side) (othello.Board, othello.Side, error) {
	if notation == "" {
		return othello.Board{}, 0, fmt.Errorf("%w: board", ErrMissingField)
	}

	if side == nil {
		return othello.Board{}, 0, fmt.Errorf("%w: side", ErrMissingField)
	}

	board, err := othello.NewBoardFromString(notation)
	if err != nil {
		return othello.Board{}, 0, err
	}

	return board, *side, nil
}
