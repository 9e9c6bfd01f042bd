package othello

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// StateKind enumerates the turn controller states.
type StateKind int

const (
	AwaitingMove StateKind = iota
	Skipped
	GameOver
)

func (k StateKind) String() string {
	switch k {
	case Skipped:
		return "skipped"
	case GameOver:
		return "game_over"
	default:
		return "awaiting_move"
	}
}

// State is the current state of the turn controller. Side is the side to
// move for AwaitingMove and the side that passed for Skipped.
type State struct {
	Kind StateKind
	Side Side
}

// ToMove returns the side whose turn it is.
func (s State) ToMove() Side {
	if s.Kind == Skipped {
		return s.Side.Opponent()
	}
	return s.Side
}

func (s State) String() string {
	if s.Kind == GameOver {
		return s.Kind.String()
	}
	return fmt.Sprintf("%s(%s)", s.Kind, s.Side)
}

// Move is an entry of the game history. Pass moves have no square.
type Move struct {
	Side    Side
	Square  Square
	Pass    bool
	Flipped int
}

// Collaborator is the presentation layer driven by the turn controller.
type Collaborator interface {
	// ShowBoard displays the board before a turn is played.
	ShowBoard(board Board)

	// ChooseMove blocks until the player picks one of the available squares.
	ChooseMove(ctx context.Context, player Player, available []Square) (Square, error)

	// Skipped announces that player has no legal move.
	Skipped(player Player)

	// Finished announces the final outcome.
	Finished(outcome Outcome)
}

// Game drives the alternating turns of an Othello game.
type Game struct {
	id      uuid.UUID
	board   Board
	players *Players
	state   State
	moves   []Move
	logger  *slog.Logger
}

// NewGame creates a game from the starting position with black to move.
func NewGame(players *Players) (*Game, error) {
	return NewGameWithStart(players, NewBoardStart(), Black)
}

// NewGameWithStart creates a game from a custom position. This allows testing
// endgames without playing the opening.
func NewGameWithStart(players *Players, start Board, toMove Side) (*Game, error) {
	if err := players.Ready(); err != nil {
		return nil, err
	}

	players.lock()

	id := uuid.New()

	return &Game{
		id:      id,
		board:   start,
		players: players,
		state:   State{Kind: AwaitingMove, Side: toMove},
		moves:   make([]Move, 0),
		logger:  slog.With("game_id", id.String()),
	}, nil
}

// ID returns the unique identifier of the game.
func (g *Game) ID() uuid.UUID {
	return g.id
}

// Board returns a copy of the current board.
func (g *Game) Board() Board {
	return g.board
}

// State returns the controller state.
func (g *Game) State() State {
	return g.state
}

// Players returns the players of the game.
func (g *Game) Players() *Players {
	return g.players
}

// Moves returns a copy of the move history, passes included.
func (g *Game) Moves() []Move {
	moves := make([]Move, len(g.moves))
	copy(moves, g.moves)
	return moves
}

// Outcome returns the result of a finished game.
func (g *Game) Outcome() (Outcome, error) {
	if g.state.Kind != GameOver {
		return Outcome{}, ErrGameNotOver
	}
	return g.board.Winner(g.players), nil
}

func (g *Game) player(side Side) Player {
	player, _ := g.players.BySide(side)
	return player
}

// Step plays a single turn: a move, a pass or the transition to GameOver.
// A move rejected by the board leaves the state unchanged.
func (g *Game) Step(ctx context.Context, c Collaborator) error {
	if g.state.Kind == GameOver {
		return ErrGameOver
	}

	side := g.state.ToMove()
	c.ShowBoard(g.board)

	available := g.board.AvailablePositions(side)
	if len(available) == 0 {
		if !g.board.HasMoves(side.Opponent()) {
			g.finish(c)
			return nil
		}

		g.moves = append(g.moves, Move{Side: side, Pass: true})
		g.state = State{Kind: Skipped, Side: side}
		g.logger.Debug("Turn skipped", "side", side)
		c.Skipped(g.player(side))
		return nil
	}

	sq, err := c.ChooseMove(ctx, g.player(side), available)
	if err != nil {
		return fmt.Errorf("failed to choose move: %w", err)
	}

	flipped, err := g.board.ApplyMove(side, sq)
	if err != nil {
		return fmt.Errorf("move rejected: %w", err)
	}

	g.moves = append(g.moves, Move{Side: side, Square: sq, Flipped: len(flipped)})
	g.state = State{Kind: AwaitingMove, Side: side.Opponent()}
	g.logger.Debug("Move played", "side", side, "square", sq.String(), "flipped", len(flipped))
	return nil
}

func (g *Game) finish(c Collaborator) {
	g.state = State{Kind: GameOver}

	outcome := g.board.Winner(g.players)
	g.logger.Info(
		"Game over",
		"result", outcome.Result.String(),
		"white", outcome.White,
		"black", outcome.Black,
		"moves", len(g.moves),
	)
	c.Finished(outcome)
}

// Play steps until the game is over and returns the outcome.
func (g *Game) Play(ctx context.Context, c Collaborator) (Outcome, error) {
	g.logger.Info(
		"Game started",
		"black", g.player(Black).Name,
		"white", g.player(White).Name,
	)

	for g.state.Kind != GameOver {
		if err := ctx.Err(); err != nil {
			return Outcome{}, fmt.Errorf("game abandoned: %w", err)
		}

		if err := g.Step(ctx, c); err != nil {
			return Outcome{}, err
		}
	}

	return g.Outcome()
}
