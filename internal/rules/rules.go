// Package rules answers rule questions about boards sent by clients.
// Nothing is kept between calls.
package rules

import (
	"errors"
	"net/http"

	"github.com/lk16/othello/internal/models"
	"github.com/lk16/othello/internal/othello"
)

// Moves returns the legal moves for the requested side.
func Moves(payload models.MovesPayload) (*models.MovesResponse, error) {
	board, side, err := payload.Validate()
	if err != nil {
		return nil, err
	}

	moves := board.AvailablePositions(side)

	return &models.MovesResponse{
		Side:  side,
		Moves: moves,
		Count: len(moves),
	}, nil
}

// Apply plays the requested move and returns the resulting board.
func Apply(payload models.ApplyMovePayload) (*models.ApplyMoveResponse, error) {
	board, side, sq, err := payload.Validate()
	if err != nil {
		return nil, err
	}

	flipped, err := board.ApplyMove(side, sq)
	if err != nil {
		return nil, err
	}

	return &models.ApplyMoveResponse{
		Board:   board.String(),
		Flipped: flipped,
		Score:   score(board),
	}, nil
}

// Score returns the disc counts of the board.
func Score(payload models.ScorePayload) (*models.ScoreResponse, error) {
	board, err := payload.Validate()
	if err != nil {
		return nil, err
	}

	resp := score(board)
	return &resp, nil
}

func score(board othello.Board) models.ScoreResponse {
	outcome := board.Winner(nil)

	return models.ScoreResponse{
		White:    outcome.White,
		Black:    outcome.Black,
		Empty:    board.Count(othello.CellEmpty),
		Result:   outcome.Result,
		GameOver: board.IsGameOver(),
	}
}

// StatusCode maps an error returned by this package to an HTTP status code.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, othello.ErrIllegalMove), errors.Is(err, othello.ErrOffBoard):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadRequest
	}
}
