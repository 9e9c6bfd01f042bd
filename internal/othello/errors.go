package othello

import "errors"

var (
	ErrInvalidSide     = errors.New("invalid color, choose between black and white")
	ErrTooManyPlayers  = errors.New("cannot add more than two players")
	ErrSideTaken       = errors.New("color is already taken")
	ErrMissingPlayer   = errors.New("both colors need a player")
	ErrPlayersLocked   = errors.New("players cannot change once the game started")
	ErrIllegalMove     = errors.New("illegal move")
	ErrOffBoard        = errors.New("position is off the board")
	ErrInvalidNotation = errors.New("invalid board notation")
	ErrGameOver        = errors.New("game is over")
	ErrGameNotOver     = errors.New("game is not over yet")
)
